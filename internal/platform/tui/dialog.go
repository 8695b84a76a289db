package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-lander/internal/lander"
)

var (
	dialogBox   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#e5a80d")).Padding(1, 3)
	dialogTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dialogHint  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// renderDialog draws a message box centered in a width x height area.
func renderDialog(d lander.Dialog, hint string, width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		dialogTitle.Render(d.Title),
		"",
		lipgloss.NewStyle().Align(lipgloss.Center).Render(d.Body),
		"",
		dialogHint.Render(hint),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, dialogBox.Render(content))
}
