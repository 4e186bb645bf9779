package cli

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-sync/internal/client"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/spf13/cobra"
)

// errSyncFailed is returned after a failed result has been printed, so the
// process exits non-zero.
var errSyncFailed = errors.New("sync failed")

func newSyncCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "sync [domain]",
		Short: "Sync a domain with the server",
		Long: `Compare local and remote data of a domain and move the newer side over
the older one. Without a domain the domain of the active document is synced.`,
		Example: `  pass-sync sync example.com
  pass-sync sync`,
		Args: cobra.MaximumNArgs(1),
		RunE: rt.withApp(func(ctx context.Context, a *client.App, p *printer, args []string) error {
			if len(args) == 0 {
				return printResult(p, a.Engine().PerformAutoSync(ctx))
			}
			return printResult(p, a.Engine().SyncDomain(ctx, args[0]))
		}),
	}
}

func newUploadCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <domain>",
		Short: "Overwrite server data of a domain with local data",
		Args:  cobra.ExactArgs(1),
		RunE: rt.withApp(func(ctx context.Context, a *client.App, p *printer, args []string) error {
			return printResult(p, a.Engine().ForceUpload(ctx, args[0]))
		}),
	}
}

func newDownloadCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "download <domain>",
		Short: "Overwrite local data of a domain with server data",
		Args:  cobra.ExactArgs(1),
		RunE: rt.withApp(func(ctx context.Context, a *client.App, p *printer, args []string) error {
			return printResult(p, a.Engine().ForceDownload(ctx, args[0]))
		}),
	}
}

func printResult(p *printer, res models.SyncResult) error {
	if res.Err != nil && res.Error == "" {
		res.Error = res.Err.Error()
	}

	err := p.result(res, func() {
		switch {
		case res.Success:
			p.line("%s", okStyle.Render(res.Domain+": "+string(res.Action)))
			if res.Reason != "" {
				p.item("Reason", res.Reason)
			}
		case res.Skipped:
			p.line("%s", warnStyle.Render(orDash(res.Domain)+": skipped"))
			p.item("Reason", res.Reason)
		default:
			p.line("%s", warnStyle.Render(orDash(res.Domain)+": failed"))
			if res.Reason != "" {
				p.item("Reason", res.Reason)
			}
		}
	})
	if err != nil {
		return err
	}

	if !res.Success && !res.Skipped {
		if res.Err != nil {
			return res.Err
		}
		return errSyncFailed
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
