package cli

import (
	"context"
	"strconv"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/client"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newHistoryCmd(rt *runtime) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <domain>",
		Short: "List stored versions of a domain",
		Long: `List server versions of a domain, newest first. When no server is
configured or it cannot be reached the local version cache is shown.`,
		Args: cobra.ExactArgs(1),
	}

	cmd.RunE = rt.withApp(func(ctx context.Context, a *client.App, p *printer, args []string) error {
		versions, err := a.Engine().VersionHistory(ctx, args[0], limit)
		if err != nil {
			return err
		}
		if versions == nil {
			versions = []models.VersionInfo{}
		}

		return p.result(versions, func() {
			if len(versions) == 0 {
				p.line("%s", mutedStyle.Render("No versions stored"))
				return
			}
			rows := make([][]string, 0, len(versions))
			for _, v := range versions {
				rows = append(rows, []string{
					v.ID,
					v.Timestamp.Local().Format(time.DateTime),
					string(v.Source),
					string(v.Type),
					humanize.Bytes(uint64(max(v.Size, 0))),
				})
			}
			p.table([]string{"ID", "TIME", "SOURCE", "TYPE", "SIZE"}, rows)
		})
	})

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of versions (0 for all)")
	return cmd
}

func newRestoreCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "restore <domain> <version-id>",
		Short:   "Apply a stored version to the local document",
		Example: "  pass-sync history example.com\n  pass-sync restore example.com 42",
		Args:    cobra.ExactArgs(2),
		RunE: rt.withApp(func(ctx context.Context, a *client.App, p *printer, args []string) error {
			return printResult(p, a.Engine().RestoreVersion(ctx, args[0], args[1]))
		}),
	}
}

type deleteOutput struct {
	Domain  string `json:"domain"`
	Deleted int64  `json:"deleted"`
}

func newDeleteRemoteCmd(rt *runtime) *cobra.Command {
	var versionID string

	cmd := &cobra.Command{
		Use:   "delete-remote <domain>",
		Short: "Delete server data of a domain",
		Long: `Delete every server version of a domain, or only one version with
--version. Local data is not touched.`,
		Args: cobra.ExactArgs(1),
	}

	cmd.RunE = rt.withApp(func(ctx context.Context, a *client.App, p *printer, args []string) error {
		deleted, err := a.Engine().DeleteRemoteData(ctx, args[0], versionID)
		if err != nil {
			return err
		}

		out := deleteOutput{Domain: args[0], Deleted: deleted}
		return p.result(out, func() {
			p.line("%s", okStyle.Render("Deleted "+strconv.FormatInt(deleted, 10)+" version(s) of "+args[0]))
		})
	})

	cmd.Flags().StringVar(&versionID, "version", "", "Delete only this version")
	return cmd
}
