package tui

import (
	"context"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	engine Engine
	logger *logger.Logger
}

func New(engine Engine, logger *logger.Logger) *TUI {
	return &TUI{engine: engine, logger: logger}
}

// Run shows the domain dashboard until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	_, err := tea.NewProgram(newDashboardModel(ctx, t.engine), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Msg("tui stopped with error")
	}
	return err
}
