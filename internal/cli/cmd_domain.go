package cli

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/client"
	"github.com/MKhiriev/go-pass-sync/internal/host"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

type domainOutput struct {
	Domain string `json:"domain"`
	models.DomainConfig
}

func newDomainCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "domain",
		Aliases: []string{"domains"},
		Short:   "Choose which domains are synced",
	}

	cmd.AddCommand(
		newDomainListCmd(rt),
		newDomainEnableCmd(rt),
		newDomainDisableCmd(rt),
	)
	return cmd
}

func newDomainListCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List configured domains",
		Args:    cobra.NoArgs,
		RunE: rt.withApp(func(_ context.Context, a *client.App, p *printer, _ []string) error {
			domains, err := a.Engine().Domains()
			if err != nil {
				return err
			}

			out := make([]domainOutput, 0, len(domains))
			for _, d := range domains {
				cfg, err := a.Engine().DomainConfig(d)
				if err != nil {
					return err
				}
				out = append(out, domainOutput{Domain: d, DomainConfig: cfg})
			}

			return p.result(out, func() {
				if len(out) == 0 {
					p.line("%s", mutedStyle.Render("No domains configured"))
					return
				}
				now := time.Now()
				rows := make([][]string, 0, len(out))
				for _, d := range out {
					rows = append(rows, []string{d.Domain, onOff(d.CookieSyncEnabled), onOff(d.StorageSyncEnabled), lastSyncText(d.DomainConfig, now)})
				}
				p.table([]string{"DOMAIN", "COOKIES", "STORAGE", "LAST SYNC"}, rows)
			})
		}),
	}
}

func newDomainEnableCmd(rt *runtime) *cobra.Command {
	var cookies, storage bool

	cmd := &cobra.Command{
		Use:   "enable <domain>",
		Short: "Enable sync for a domain",
		Long: `Enable sync for a domain. Without flags both cookies and storage are
enabled; with flags only the named categories are.`,
		Example: `  pass-sync domain enable example.com
  pass-sync domain enable example.com --cookies`,
		Args: cobra.ExactArgs(1),
	}

	cmd.RunE = rt.withApp(func(ctx context.Context, a *client.App, p *printer, args []string) error {
		if !cmd.Flags().Changed("cookies") && !cmd.Flags().Changed("storage") {
			cookies, storage = true, true
		}
		return saveDomain(ctx, a, p, args[0], cookies, storage)
	})

	cmd.Flags().BoolVar(&cookies, "cookies", false, "Sync cookies")
	cmd.Flags().BoolVar(&storage, "storage", false, "Sync key-value storage")
	return cmd
}

func newDomainDisableCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "disable <domain>",
		Short: "Stop syncing a domain",
		Args:  cobra.ExactArgs(1),
		RunE: rt.withApp(func(ctx context.Context, a *client.App, p *printer, args []string) error {
			return saveDomain(ctx, a, p, args[0], false, false)
		}),
	}
}

func saveDomain(ctx context.Context, a *client.App, p *printer, domain string, cookies, storage bool) error {
	domain = host.NormalizeDomain(domain)
	cfg, err := a.Engine().SaveDomainConfig(ctx, domain, cookies, storage)
	if err != nil {
		return err
	}

	out := domainOutput{Domain: domain, DomainConfig: cfg}
	return p.result(out, func() {
		p.line("%s", okStyle.Render("Saved "+domain))
		p.item("Cookies", onOff(cfg.CookieSyncEnabled))
		p.item("Storage", onOff(cfg.StorageSyncEnabled))
	})
}

func lastSyncText(cfg models.DomainConfig, now time.Time) string {
	if cfg.LastSyncTime == nil {
		return "never"
	}
	out := humanize.RelTime(*cfg.LastSyncTime, now, "ago", "from now")
	if cfg.LastSyncSource != "" {
		out += " (" + string(cfg.LastSyncSource) + ")"
	}
	return out
}
