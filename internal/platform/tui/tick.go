// Package tui provides the Bubble Tea front end for the lander.
// It owns the terminal, maps keys to the input controller and draws what
// the simulation loop reports each tick.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
// The loop measures the real gap itself, so late ticks only lengthen dt.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
