package cli

import (
	"context"
	"strconv"

	"github.com/MKhiriev/go-pass-sync/internal/client"
	"github.com/spf13/cobra"
)

type profileOutput struct {
	Path        string `json:"path"`
	ActiveURL   string `json:"activeUrl"`
	Cookies     int    `json:"cookies"`
	StorageDocs int    `json:"storageDocuments"`
}

func newProfileCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Inspect the host profile cookies and storage are read from",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the host profile summary",
			Args:  cobra.NoArgs,
			RunE: rt.withApp(func(_ context.Context, a *client.App, p *printer, _ []string) error {
				snap := a.Host().Snapshot()
				out := profileOutput{
					Path:        a.Host().Path(),
					ActiveURL:   snap.ActiveURL,
					Cookies:     len(snap.Cookies),
					StorageDocs: len(snap.LocalStorage),
				}
				return p.result(out, func() {
					p.item("Path", out.Path)
					p.item("Active document", orNone(out.ActiveURL))
					p.item("Cookies", strconv.Itoa(out.Cookies))
					p.item("Storage documents", strconv.Itoa(out.StorageDocs))
				})
			}),
		},
		&cobra.Command{
			Use:   "open <url>",
			Short: "Make url the active document",
			Long: `Make url the active document. Sync without a domain, the daemon and
the key-value storage all work on the active document.`,
			Args: cobra.ExactArgs(1),
			RunE: rt.withApp(func(ctx context.Context, a *client.App, p *printer, args []string) error {
				if err := a.Host().SetActiveURL(ctx, args[0]); err != nil {
					return err
				}
				domain, err := a.Engine().ActiveDomain(ctx)
				if err != nil {
					return err
				}
				return p.result(map[string]string{"activeUrl": args[0], "domain": domain}, func() {
					p.line("%s", okStyle.Render("Active document: "+args[0]))
				})
			}),
		},
		&cobra.Command{
			Use:   "close",
			Short: "Clear the active document",
			Args:  cobra.NoArgs,
			RunE: rt.withApp(func(ctx context.Context, a *client.App, p *printer, _ []string) error {
				if err := a.Host().SetActiveURL(ctx, ""); err != nil {
					return err
				}
				return p.result(map[string]string{"activeUrl": ""}, func() {
					p.line("%s", okStyle.Render("Active document cleared"))
				})
			}),
		},
	)
	return cmd
}
