package tui

import "github.com/charmbracelet/lipgloss"

type confirmModel struct {
	question string
}

func (m confirmModel) View() string {
	content := lipgloss.JoinVertical(lipgloss.Left, m.question, "", "y да    n нет")
	return overlayBoxStyle.Render(content)
}
