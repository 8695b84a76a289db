package lander

import "github.com/vovakirdan/tui-lander/internal/config"

// Autopilot is a bang-bang descent controller for headless runs: it coasts
// until the stopping distance at full thrust, padded by a margin, reaches
// the current height, then burns.
type Autopilot struct {
	gravity   float64
	maxThrust float64
	margin    float64
}

// NewAutopilot creates an autopilot for the configured craft.
// Margins below 1 are raised to 1.
func NewAutopilot(cfg config.LanderConfig, margin float64) Autopilot {
	if margin < 1 {
		margin = 1
	}
	return Autopilot{
		gravity:   cfg.Physics.Gravity,
		maxThrust: cfg.Lander.MaxThrust,
		margin:    margin,
	}
}

// Thrust returns the thrust to request for the given state.
func (a Autopilot) Thrust(st LanderState) float64 {
	if st.Fuel <= 0 || st.VY >= 0 || st.Mass <= 0 {
		return 0
	}

	brake := a.maxThrust/st.Mass - a.gravity
	if brake <= 0 {
		// The engine cannot stop the fall; slow it as much as possible.
		return a.maxThrust
	}

	stopping := st.VY * st.VY / (2 * brake)
	if st.Height <= stopping*a.margin {
		return a.maxThrust
	}
	return 0
}
