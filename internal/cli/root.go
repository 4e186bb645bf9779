// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/MKhiriev/go-pass-sync/internal/client"
	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/spf13/cobra"
)

const (
	appName = "pass-sync"

	// annotationNoApp marks commands that run without config or state.
	annotationNoApp = "no-app"
)

// Option configures the root command.
type Option func(*runtime)

// WithApp makes every command use app instead of opening one from the
// configuration. The caller keeps ownership of app.
func WithApp(app *client.App) Option {
	return func(r *runtime) {
		r.app = app
	}
}

// WithLogger replaces the rotating file logger.
func WithLogger(log *logger.Logger) Option {
	return func(r *runtime) {
		r.logger = log
	}
}

// BuildInfo is printed by the version command.
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// WithBuildInfo sets the linker-provided build metadata.
func WithBuildInfo(info BuildInfo) Option {
	return func(r *runtime) {
		r.build = info
	}
}

// NewRootCmd creates the pass-sync command tree.
func NewRootCmd(opts ...Option) *cobra.Command {
	rt := &runtime{build: BuildInfo{Version: "N/A", Date: "N/A", Commit: "N/A"}}
	for _, opt := range opts {
		opt(rt)
	}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Sync cookies and local storage between devices through a Pass server",
		Long: `pass-sync keeps cookies and key-value storage of selected domains in sync
between devices. Every device configured with the same pass token shares the
same server-side data, optionally encrypted with a shared key.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.init(cmd.Annotations[annotationNoApp] == "true")
		},
	}

	rt.flags = config.BindClientFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().StringVarP(&rt.output, "output", "o", "text", "Output format: text or json")

	rootCmd.AddCommand(
		newServerCmd(rt),
		newPassCmd(rt),
		newDomainCmd(rt),
		newProfileCmd(rt),
		newSettingsCmd(rt),
		newSyncCmd(rt),
		newUploadCmd(rt),
		newDownloadCmd(rt),
		newHistoryCmd(rt),
		newRestoreCmd(rt),
		newDeleteRemoteCmd(rt),
		newQuickCmd(rt),
		newStatusCmd(rt),
		newDaemonCmd(rt),
		newTUICmd(rt),
		newVersionCmd(rt),
	)

	return rootCmd
}

func (r *runtime) init(noApp bool) error {
	switch r.output {
	case formatText, formatJSON:
	default:
		return fmt.Errorf("unknown output format %q", r.output)
	}

	if noApp || r.app != nil {
		if r.logger == nil {
			r.logger = logger.Nop()
		}
		return nil
	}

	cfg, err := config.GetClientConfig(r.flags)
	if err != nil {
		return err
	}
	r.cfg = cfg

	if r.logger == nil {
		r.logger = logger.NewClientLogger(appName, logger.FileOptions{
			Path:  cfg.Log.File,
			Debug: cfg.Log.Debug,
		})
	}
	return nil
}
