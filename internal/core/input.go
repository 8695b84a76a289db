package core

// Action represents a semantic player intent, abstracted from physical key presses.
// The platform maps keys to actions; the lander only ever sees actions.
type Action int

const (
	ActionNone        Action = iota
	ActionRotateLeft         // A, Left arrow - tilt counter-clockwise
	ActionRotateRight        // D, Right arrow - tilt clockwise
	ActionThrustUp           // W, Up arrow - raise the thrust slider one step
	ActionThrustDown         // S, Down arrow - lower the thrust slider one step
	ActionThrustCut          // X - slider to zero
	ActionConfirm            // Enter, Space - dismiss welcome/outcome screens
	ActionRestart            // R - new flight after the outcome screen
	ActionScreenshot         // Ctrl+S - dump the screen to a text file
	ActionQuit               // Q, Ctrl+C - close the surface
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionThrustUp:
		return "ThrustUp"
	case ActionThrustDown:
		return "ThrustDown"
	case ActionThrustCut:
		return "ThrustCut"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
