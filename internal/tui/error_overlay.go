package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-sync/internal/app"
)

// errorOverlayModel covers the dashboard until the user dismisses it. When
// retry is set, the refresh key closes the overlay and runs it again.
type errorOverlayModel struct {
	title   string
	domain  string
	message string
	retry   tea.Cmd
}

func newErrorOverlay(title, domain string, err error, retry tea.Cmd) *errorOverlayModel {
	return &errorOverlayModel{
		title:   title,
		domain:  domain,
		message: app.Describe(err),
		retry:   retry,
	}
}

func (m errorOverlayModel) View() string {
	var b strings.Builder
	b.WriteString(errorStyle.Render(m.title))
	if m.domain != "" {
		b.WriteString(" " + selectedStyle.Render(m.domain))
	}
	b.WriteString("\n\n" + m.message + "\n\n")

	hint := "enter / esc закрыть"
	if m.retry != nil {
		hint = "f повторить · " + hint
	}
	b.WriteString(helpStyle.Render(hint))

	return overlayBoxStyle.Render(b.String())
}
