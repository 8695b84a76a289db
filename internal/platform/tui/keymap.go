package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// KeyMap defines the key bindings of the flight screens.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	ThrustUp   key.Binding
	ThrustDown key.Binding
	Cut        key.Binding
	Preset     key.Binding
	Confirm    key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.ThrustUp, k.ThrustDown, k.Preset, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.ThrustUp, k.ThrustDown, k.Cut, k.Preset},
		{k.Confirm, k.Restart, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "tilt left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "tilt right"),
		),
		ThrustUp: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "more thrust"),
		),
		ThrustDown: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "less thrust"),
		),
		Cut: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "cut engine"),
		),
		Preset: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "thrust in tenths"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "continue"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new flight"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to an action.
// Digit presets are not actions; see ThrustPreset.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot
	case key.Matches(msg, k.Left):
		return core.ActionRotateLeft
	case key.Matches(msg, k.Right):
		return core.ActionRotateRight
	case key.Matches(msg, k.ThrustUp):
		return core.ActionThrustUp
	case key.Matches(msg, k.ThrustDown):
		return core.ActionThrustDown
	case key.Matches(msg, k.Cut):
		return core.ActionThrustCut
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// ThrustPreset returns the slider fraction for a digit key: 1 is 10%,
// 9 is 90% and 0 is full thrust.
func (k KeyMap) ThrustPreset(msg tea.KeyMsg) (float64, bool) {
	if !key.Matches(msg, k.Preset) {
		return 0, false
	}
	d := msg.String()[0] - '0'
	if d == 0 {
		return 1, true
	}
	return float64(d) / 10, true
}
