package lander

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/config"
)

// Stepper advances the lander state by one measured time slice.
type Stepper struct {
	gravity   float64
	burnRate  float64
	startMass float64
	startFuel float64
}

// NewStepper creates a stepper from the physics and craft configuration.
func NewStepper(cfg config.LanderConfig) Stepper {
	return Stepper{
		gravity:   cfg.Physics.Gravity,
		burnRate:  cfg.Physics.BurnRate,
		startMass: cfg.Lander.StartMass,
		startFuel: cfg.Lander.StartFuel,
	}
}

// EffectiveThrust returns the thrust the engine actually delivers.
// An empty tank delivers nothing regardless of the request.
func (s Stepper) EffectiveThrust(st LanderState, requested float64) float64 {
	if st.Fuel > 0 {
		return requested
	}
	return 0
}

// MassFor returns the craft mass carrying the given amount of fuel.
func (s Stepper) MassFor(fuel float64) float64 {
	return s.startMass - 0.5*(s.startFuel-fuel)
}

// Step integrates one tick of length dt seconds.
//
// Velocity and position advance with the acceleration from the previous
// tick; the new acceleration comes from this tick's thrust and is only felt
// on the next call. θ is left alone.
func (s Stepper) Step(st LanderState, in ControlInput, dt float64) LanderState {
	next := st

	next.VX = st.VX + st.AX*dt
	next.VY = st.VY + st.AY*dt
	next.X = st.X + st.VX*dt + 0.5*st.AX*dt*dt
	next.Height = st.Height + st.VY*dt + 0.5*st.AY*dt*dt

	thrust := s.EffectiveThrust(st, in.Thrust)
	next.AY = (thrust*math.Cos(st.Theta) - st.Mass*s.gravity) / st.Mass
	next.AX = thrust * math.Sin(st.Theta) / st.Mass

	next.Fuel = math.Max(0, st.Fuel-s.burnRate*thrust*dt)
	next.Mass = s.MassFor(next.Fuel)

	return next
}
