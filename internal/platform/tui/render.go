package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-lander/internal/core"
)

const skyBlue = lipgloss.Color("#002868")

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorSky:     lipgloss.NewStyle().Background(skyBlue),
	core.ColorStar:    lipgloss.NewStyle().Background(skyBlue).Foreground(lipgloss.Color("15")),
	core.ColorGround:  lipgloss.NewStyle().Background(skyBlue).Foreground(lipgloss.Color("245")),
	core.ColorHull:    lipgloss.NewStyle().Background(skyBlue).Foreground(lipgloss.Color("#e5a80d")),
	core.ColorCabin:   lipgloss.NewStyle().Background(skyBlue).Foreground(lipgloss.Color("250")),
	core.ColorFlame:   lipgloss.NewStyle().Background(skyBlue).Foreground(lipgloss.Color("9")),
	core.ColorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorAxis:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorTrace:   lipgloss.NewStyle().Foreground(lipgloss.Color("#e5a80d")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
