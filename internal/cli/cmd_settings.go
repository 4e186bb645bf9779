package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-pass-sync/internal/client"
	"github.com/spf13/cobra"
)

func newSettingsCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Local engine settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "max-value-length [n]",
		Short: "Show or set the longest storage value that is synced",
		Long: `Show or set the longest key-value storage value, in characters, that is
captured for sync. Longer values are skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: rt.withApp(func(ctx context.Context, a *client.App, p *printer, args []string) error {
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid length %q", args[0])
				}
				if err = a.Engine().SetMaxValueLength(ctx, n); err != nil {
					return err
				}
			}

			n, err := a.Engine().MaxValueLength()
			if err != nil {
				return err
			}
			return p.result(map[string]int{"maxValueLength": n}, func() {
				p.item("Max value length", strconv.Itoa(n))
			})
		}),
	})
	return cmd
}
