package cli

import (
	"context"

	"github.com/MKhiriev/go-pass-sync/internal/client"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/spf13/cobra"
)

type passOutput struct {
	Pass models.Pass `json:"pass"`
}

func newPassCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pass",
		Short: "Manage the pass token shared by your devices",
		Long: `The pass token identifies your data on the server. Configure the same
token on every device that should share cookies and storage.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the full pass token",
			Args:  cobra.NoArgs,
			RunE: rt.withApp(func(_ context.Context, a *client.App, p *printer, _ []string) error {
				cfg, err := a.Engine().ServerConfig()
				if err != nil {
					return err
				}
				return printPass(p, cfg.Pass)
			}),
		},
		&cobra.Command{
			Use:   "create",
			Short: "Ask the server for a new pass token",
			Args:  cobra.NoArgs,
			RunE: rt.withApp(func(ctx context.Context, a *client.App, p *printer, _ []string) error {
				pass, err := a.Engine().CreatePass(ctx)
				if err != nil {
					return err
				}
				return printPass(p, pass)
			}),
		},
		&cobra.Command{
			Use:   "ensure",
			Short: "Validate the pass token and replace it if the server forgot it",
			Args:  cobra.NoArgs,
			RunE: rt.withApp(func(ctx context.Context, a *client.App, p *printer, _ []string) error {
				pass, err := a.Engine().EnsurePass(ctx)
				if err != nil {
					return err
				}
				return printPass(p, pass)
			}),
		},
	)
	return cmd
}

func printPass(p *printer, pass models.Pass) error {
	return p.result(passOutput{Pass: pass}, func() {
		p.line("%s", orNone(pass.String()))
	})
}
