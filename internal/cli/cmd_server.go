package cli

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/client"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var errNothingToChange = errors.New("nothing to change, pass at least one flag")

func newServerCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Configure and inspect the Pass server",
	}

	cmd.AddCommand(
		newServerShowCmd(rt),
		newServerSetCmd(rt),
		newServerTestCmd(rt),
		newServerStatsCmd(rt),
	)
	return cmd
}

func newServerShowCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the server configuration",
		Args:  cobra.NoArgs,
		RunE: rt.withApp(func(_ context.Context, a *client.App, p *printer, _ []string) error {
			cfg, err := a.Engine().ServerConfig()
			if err != nil {
				return err
			}

			view := serverConfigView(cfg)
			return p.result(view, func() {
				p.item("Server URL", orNone(view.ServerURL))
				p.item("Pass", orNone(view.Pass))
				p.item("Encryption", onOff(view.EncryptionEnabled))
				p.item("Sync interval", strconv.Itoa(view.SyncIntervalMinutes)+" min")
				p.item("Max versions", strconv.Itoa(view.MaxVersions))
				p.item("Min server versions", strconv.Itoa(view.MinServerVersions))
			})
		}),
	}
}

func newServerSetCmd(rt *runtime) *cobra.Command {
	var (
		serverURL   string
		pass        string
		key         string
		encrypt     bool
		interval    int
		maxVersions int
		minServer   int
		patchJSON   string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change server settings",
		Long: `Change one or more server settings. Only the flags that are passed are
updated. When a server url is configured a pass token is created or
validated against the server.

--json takes the whole change as one object with the keys shown by
"server show -o json" (plus "encryptionKey"); it cannot be combined with
the individual flags.`,
		Example: `  pass-sync server set --url https://sync.example.com
  pass-sync server set --key "shared secret" --encrypt
  pass-sync server set --interval 10 --max-versions 8
  pass-sync server set --json '{"maxVersions":8,"encryptionEnabled":true}'`,
		Args: cobra.NoArgs,
	}

	cmd.RunE = rt.withApp(func(ctx context.Context, a *client.App, p *printer, _ []string) error {
		var patch models.ServerConfigPatch
		flags := cmd.Flags()
		if flags.Changed("json") {
			var err error
			if patch, err = models.ParseServerConfigPatch([]byte(patchJSON)); err != nil {
				return err
			}
		}
		if flags.Changed("url") {
			patch.ServerURL = &serverURL
		}
		if flags.Changed("pass") {
			pp := models.Pass(pass)
			patch.Pass = &pp
		}
		if flags.Changed("key") {
			patch.EncryptionKey = &key
		}
		if flags.Changed("encrypt") {
			patch.EncryptionEnabled = &encrypt
		}
		if flags.Changed("interval") {
			patch.SyncIntervalMinutes = &interval
		}
		if flags.Changed("max-versions") {
			patch.MaxVersions = &maxVersions
		}
		if flags.Changed("min-server-versions") {
			patch.MinServerVersions = &minServer
		}
		if patch.IsEmpty() {
			return errNothingToChange
		}

		cfg, err := a.Engine().SaveServerConfig(ctx, patch)
		if err != nil {
			return err
		}

		view := serverConfigView(cfg)
		return p.result(view, func() {
			p.line("%s", okStyle.Render("Server settings saved"))
			if view.Pass != "" {
				p.item("Pass", view.Pass)
			}
		})
	})

	cmd.Flags().StringVar(&serverURL, "url", "", "Server base url (empty to disconnect)")
	cmd.Flags().StringVar(&pass, "pass", "", "Use an existing pass token")
	cmd.Flags().StringVar(&key, "key", "", "Shared encryption key")
	cmd.Flags().BoolVar(&encrypt, "encrypt", false, "Encrypt uploaded data with the shared key")
	cmd.Flags().IntVar(&interval, "interval", 0, "Auto-sync interval in minutes")
	cmd.Flags().IntVar(&maxVersions, "max-versions", 0, "Versions kept per domain and type")
	cmd.Flags().IntVar(&minServer, "min-server-versions", 0, "Server versions always kept among them")
	cmd.Flags().StringVar(&patchJSON, "json", "", "Apply a JSON patch of server settings")
	for _, name := range []string{"url", "pass", "key", "encrypt", "interval", "max-versions", "min-server-versions"} {
		cmd.MarkFlagsMutuallyExclusive("json", name)
	}

	return cmd
}

func newServerTestCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Check that the server is reachable and compatible",
		Args:  cobra.NoArgs,
		RunE: rt.withApp(func(ctx context.Context, a *client.App, p *printer, _ []string) error {
			health, err := a.Engine().TestServerConnection(ctx)
			if err != nil {
				return err
			}
			return p.result(health, func() {
				p.line("%s", okStyle.Render("Server is reachable"))
				p.item("Status", health.Status)
				p.item("Version", orNone(health.Version))
			})
		}),
	}
}

func newServerStatsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show what the server stores for this pass",
		Args:  cobra.NoArgs,
		RunE: rt.withApp(func(ctx context.Context, a *client.App, p *printer, _ []string) error {
			stats, err := a.Engine().Stats(ctx)
			if err != nil {
				return err
			}
			return p.result(stats, func() {
				p.item("Pass", stats.Pass.Masked())
				p.item("Domains", strconv.Itoa(stats.DomainCount))
				p.item("Total size", humanize.Bytes(uint64(max(stats.TotalSize, 0))))
				if stats.LastActivity != nil {
					p.item("Last activity", humanize.Time(stats.LastActivity.Time))
				}
				if len(stats.Domains) == 0 {
					return
				}
				rows := make([][]string, 0, len(stats.Domains))
				for _, d := range stats.Domains {
					rows = append(rows, []string{
						d.Domain,
						strconv.Itoa(d.VersionCount),
						humanize.Bytes(uint64(max(d.Size, 0))),
						d.LastModified.Format(time.DateTime),
					})
				}
				p.table([]string{"DOMAIN", "VERSIONS", "SIZE", "LAST MODIFIED"}, rows)
			})
		}),
	}
}

// serverConfigOutput hides the key and most of the pass.
type serverConfigOutput struct {
	ServerURL           string `json:"serverUrl"`
	Pass                string `json:"pass"`
	EncryptionEnabled   bool   `json:"encryptionEnabled"`
	EncryptionKeySet    bool   `json:"encryptionKeySet"`
	SyncIntervalMinutes int    `json:"syncIntervalMinutes"`
	MaxVersions         int    `json:"maxVersions"`
	MinServerVersions   int    `json:"minServerVersions"`
}

func serverConfigView(cfg models.ServerConfig) serverConfigOutput {
	out := serverConfigOutput{
		ServerURL:           cfg.ServerURL,
		EncryptionEnabled:   cfg.EncryptionEnabled,
		EncryptionKeySet:    cfg.EncryptionKey != "",
		SyncIntervalMinutes: cfg.SyncIntervalMinutes,
		MaxVersions:         cfg.MaxVersions,
		MinServerVersions:   cfg.MinServerVersions,
	}
	if !cfg.Pass.IsZero() {
		out.Pass = cfg.Pass.Masked()
	}
	return out
}

func orNone(s string) string {
	if s == "" {
		return mutedStyle.Render("(none)")
	}
	return s
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
