package lander

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/config"
)

// Outcome is the terminal classification of a flight.
type Outcome int

const (
	// OutcomeNone means no classification was made: the flight is still
	// running or was aborted by closing the surface.
	OutcomeNone Outcome = iota
	OutcomeSuccess
	OutcomeHardLanding
	OutcomeBadAngle
	OutcomeOutOfFuel
)

// String returns the identifier stored in the flight log.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeSuccess:
		return "success"
	case OutcomeHardLanding:
		return "hard_landing"
	case OutcomeBadAngle:
		return "bad_angle"
	case OutcomeOutOfFuel:
		return "out_of_fuel"
	default:
		return "unknown"
	}
}

// ParseOutcome is the inverse of Outcome.String.
func ParseOutcome(s string) (Outcome, bool) {
	for _, o := range []Outcome{OutcomeNone, OutcomeSuccess, OutcomeHardLanding, OutcomeBadAngle, OutcomeOutOfFuel} {
		if o.String() == s {
			return o, true
		}
	}
	return OutcomeNone, false
}

// Crashed reports whether the outcome is one of the crash variants.
func (o Outcome) Crashed() bool {
	return o == OutcomeHardLanding || o == OutcomeBadAngle || o == OutcomeOutOfFuel
}

// Evaluator classifies the final state of a flight.
type Evaluator struct {
	maxSpeed float64
	maxAngle float64
}

// NewEvaluator creates an evaluator from the landing limits.
func NewEvaluator(cfg config.LandingConfig) Evaluator {
	return Evaluator{maxSpeed: cfg.MaxSpeed, maxAngle: cfg.MaxAngle}
}

// Evaluate returns the outcome of a touchdown. The checks form a priority
// chain and the first match wins:
//
//  1. slow and upright (both strictly inside the limits): success
//  2. fuel left in the tank: hard landing
//  3. tilted past the limit: bad angle
//  4. otherwise: out of fuel
func (e Evaluator) Evaluate(final LanderState) Outcome {
	speed := math.Abs(final.VY)
	angle := math.Abs(final.Theta)

	switch {
	case speed < e.maxSpeed && angle < e.maxAngle:
		return OutcomeSuccess
	case final.Fuel > 0:
		return OutcomeHardLanding
	case angle > e.maxAngle:
		return OutcomeBadAngle
	default:
		return OutcomeOutOfFuel
	}
}
