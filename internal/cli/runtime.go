package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-sync/internal/app"
	"github.com/MKhiriev/go-pass-sync/internal/client"
	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle  = lipgloss.NewStyle().Padding(0, 1)
)

// runtime is the state shared by all commands of one root.
type runtime struct {
	flags  *config.ClientFlags
	output string

	cfg    *config.ClientConfig
	app    *client.App
	logger *logger.Logger
	build  BuildInfo
}

// withApp runs fn with an initialized app. An app opened here is closed when
// fn returns; an injected one is left open.
func (r *runtime) withApp(fn func(ctx context.Context, a *client.App, p *printer, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		p := r.printer(cmd.OutOrStdout())

		if r.app != nil {
			return describe(fn(ctx, r.app, p, args))
		}

		a, err := client.NewApp(ctx, r.cfg, r.logger)
		if err != nil {
			return describe(err)
		}
		defer func() {
			if cerr := a.Close(); cerr != nil {
				r.logger.Err(cerr).Msg("failed to close client app")
			}
		}()

		return describe(fn(ctx, a, p, args))
	}
}

func (r *runtime) printer(w io.Writer) *printer {
	return &printer{w: w, json: r.output == formatJSON}
}

// describe replaces err with its user-facing message while keeping it
// matchable with errors.Is.
func describe(err error) error {
	if err == nil {
		return nil
	}
	msg := app.Describe(err)
	if msg == err.Error() {
		return err
	}
	return &userError{msg: msg, err: err}
}

type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.err }

type printer struct {
	w    io.Writer
	json bool
}

// result prints v as indented JSON, or calls text otherwise.
func (p *printer) result(v any, text func()) error {
	if p.json {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text()
	return nil
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) item(key, value string) {
	fmt.Fprintf(p.w, "%-22s %s\n", key+":", value)
}

func (p *printer) table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headStyle
			}
			return cellStyle
		})
	fmt.Fprintln(p.w, t.Render())
}
