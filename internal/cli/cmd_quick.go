package cli

import (
	"context"

	"github.com/MKhiriev/go-pass-sync/internal/client"
	"github.com/spf13/cobra"
)

type quickOutput struct {
	URL    string `json:"url"`
	Copied bool   `json:"copied"`
}

func newQuickCmd(rt *runtime) *cobra.Command {
	var copyURL bool

	cmd := &cobra.Command{
		Use:   "quick <domain>",
		Short: "Print the quick-access url of a domain",
		Long: `Print a url that shows the latest server data of a domain in a browser.
The url carries the pass token, so treat it like a password.`,
		Args: cobra.ExactArgs(1),
	}

	cmd.RunE = rt.withApp(func(ctx context.Context, a *client.App, p *printer, args []string) error {
		var (
			url string
			err error
		)
		if copyURL {
			url, err = a.Engine().CopyQuickAccessURL(ctx, args[0])
		} else {
			url, err = a.Engine().QuickAccessURL(ctx, args[0])
		}
		if err != nil {
			return err
		}

		return p.result(quickOutput{URL: url, Copied: copyURL}, func() {
			p.line("%s", url)
			if copyURL {
				p.line("%s", mutedStyle.Render("copied to clipboard"))
			}
		})
	})

	cmd.Flags().BoolVar(&copyURL, "copy", false, "Also copy the url to the clipboard")
	return cmd
}
