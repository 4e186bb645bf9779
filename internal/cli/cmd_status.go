package cli

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/MKhiriev/go-pass-sync/internal/client"
	"github.com/MKhiriev/go-pass-sync/internal/tui"
	"github.com/spf13/cobra"
)

type statusOutput struct {
	Server       serverConfigOutput `json:"server"`
	ActiveDomain string             `json:"activeDomain"`
	Domains      int                `json:"domains"`
	AutoSync     bool               `json:"autoSync"`
}

func newStatusCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show a summary of the sync state",
		Args:  cobra.NoArgs,
		RunE: rt.withApp(func(ctx context.Context, a *client.App, p *printer, _ []string) error {
			e := a.Engine()
			cfg, err := e.ServerConfig()
			if err != nil {
				return err
			}
			domains, err := e.Domains()
			if err != nil {
				return err
			}
			active, err := e.ActiveDomain(ctx)
			if err != nil {
				rt.logger.Warn().Err(err).Msg("cannot read the active domain")
			}

			out := statusOutput{
				Server:       serverConfigView(cfg),
				ActiveDomain: active,
				Domains:      len(domains),
				AutoSync:     e.AutoSyncRunning(),
			}
			return p.result(out, func() {
				p.item("Server URL", orNone(out.Server.ServerURL))
				p.item("Pass", orNone(out.Server.Pass))
				p.item("Encryption", onOff(out.Server.EncryptionEnabled))
				p.item("Active domain", orNone(out.ActiveDomain))
				p.item("Configured domains", strconv.Itoa(out.Domains))
			})
		}),
	}
}

func newDaemonCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Run auto-sync in the foreground",
		Long: `Run the auto-sync job on the configured interval and sync the active
domain whenever the host profile changes. Stops on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: rt.withApp(func(ctx context.Context, a *client.App, _ *printer, _ []string) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.RunDaemon(ctx)
		}),
	}
}

func newTUICmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dashboard",
		Args:  cobra.NoArgs,
		RunE: rt.withApp(func(ctx context.Context, a *client.App, _ *printer, _ []string) error {
			if err := a.Engine().StartAutoSync(ctx); err != nil {
				return err
			}
			defer a.Engine().StopAutoSync()

			return tui.New(a.Engine(), rt.logger).Run(ctx)
		}),
	}
}

func newVersionCmd(rt *runtime) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:         "version",
		Short:       "Show version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoApp: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := rt.printer(cmd.OutOrStdout())
			if short {
				return p.result(map[string]string{"version": rt.build.Version}, func() {
					p.line("%s", rt.build.Version)
				})
			}
			return p.result(rt.build, func() {
				p.item("Build version", rt.build.Version)
				p.item("Build date", rt.build.Date)
				p.item("Build commit", rt.build.Commit)
			})
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only the version number")
	return cmd
}
