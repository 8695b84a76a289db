// Package lander implements the lunar lander simulation: terrain generation,
// the point-mass physics step, the input controller, outcome classification
// and the real-time loop that ties them together.
//
// Nothing here depends on Bubble Tea; the platform feeds key presses and
// ticks in and reads frames back out.
package lander

import "github.com/vovakirdan/tui-lander/internal/config"

// TiltCommand is a discrete rotation request from the player.
type TiltCommand int

const (
	TiltNone TiltCommand = iota
	TiltLeft
	TiltRight
)

// Sign returns the rotation direction: -1 for left, +1 for right, 0 otherwise.
func (c TiltCommand) Sign() float64 {
	switch c {
	case TiltLeft:
		return -1
	case TiltRight:
		return 1
	default:
		return 0
	}
}

func (c TiltCommand) String() string {
	switch c {
	case TiltNone:
		return "none"
	case TiltLeft:
		return "left"
	case TiltRight:
		return "right"
	default:
		return "unknown"
	}
}

// ControlInput is what the physics step sees for one tick.
type ControlInput struct {
	Tilt   TiltCommand // Last tilt command applied this tick
	Thrust float64     // Requested thrust in newtons, 0..max
}

// LanderState is the full physical state of the craft.
// Heights are measured from the baseline, positive up; θ is positive clockwise.
type LanderState struct {
	Height float64 // m
	X      float64 // m
	VX     float64 // m/s
	VY     float64 // m/s
	AX     float64 // m/s^2
	AY     float64 // m/s^2
	Theta  float64 // rad
	Fuel   float64
	Mass   float64 // kg
}

// InitialState returns the state at ignition: at rest, upright, full tank.
func InitialState(cfg config.LanderConfig) LanderState {
	return LanderState{
		Height: cfg.Lander.StartHeight,
		X:      cfg.Lander.StartX,
		Fuel:   cfg.Lander.StartFuel,
		Mass:   cfg.Lander.StartMass,
	}
}
