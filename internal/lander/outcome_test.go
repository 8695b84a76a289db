package lander

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/config"
)

func TestEvaluatePriorityChain(t *testing.T) {
	e := NewEvaluator(config.DefaultLanderConfig().Landing)
	limit := math.Pi / 5

	tests := []struct {
		name  string
		vy    float64
		theta float64
		fuel  float64
		want  Outcome
	}{
		{"soft and upright, empty tank", -3, 0, 0, OutcomeSuccess},
		{"soft and upright, fuel left", -3, 0, 200, OutcomeSuccess},
		{"fast with fuel", -10, 0, 50, OutcomeHardLanding},
		{"slow but tilted, empty", -3, 1.0, 0, OutcomeBadAngle},
		{"fast and tilted, empty", -10, 1.0, 0, OutcomeBadAngle},
		{"fast and tilted, fuel left", -10, 1.0, 50, OutcomeHardLanding},
		{"fast and upright, empty", -10, 0, 0, OutcomeOutOfFuel},
		{"tilted left counts too", -3, -1.0, 0, OutcomeBadAngle},
		{"upward velocity uses magnitude", 3, 0, 0, OutcomeSuccess},

		// Both limits are strict: sitting exactly on one fails success.
		{"speed on the limit, fuel left", -6, 0, 10, OutcomeHardLanding},
		{"speed on the limit, empty", -6, 0, 0, OutcomeOutOfFuel},
		{"angle on the limit, fuel left", -3, limit, 10, OutcomeHardLanding},
		{"angle on the limit, empty", -3, limit, 0, OutcomeOutOfFuel},
		{"just inside both limits", -5.999, limit - 1e-6, 0, OutcomeSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Evaluate(LanderState{VY: tt.vy, Theta: tt.theta, Fuel: tt.fuel})
			if got != tt.want {
				t.Errorf("Evaluate(vy=%v, θ=%v, fuel=%v) = %v, want %v", tt.vy, tt.theta, tt.fuel, got, tt.want)
			}
		})
	}
}

func TestOutcomeStrings(t *testing.T) {
	for _, o := range []Outcome{OutcomeNone, OutcomeSuccess, OutcomeHardLanding, OutcomeBadAngle, OutcomeOutOfFuel} {
		got, ok := ParseOutcome(o.String())
		if !ok || got != o {
			t.Errorf("ParseOutcome(%q) = %v, %v", o.String(), got, ok)
		}
	}
	if _, ok := ParseOutcome("exploded"); ok {
		t.Error("ParseOutcome accepted an unknown name")
	}
}

func TestOutcomeCrashed(t *testing.T) {
	if OutcomeSuccess.Crashed() || OutcomeNone.Crashed() {
		t.Error("success and none must not count as crashes")
	}
	for _, o := range []Outcome{OutcomeHardLanding, OutcomeBadAngle, OutcomeOutOfFuel} {
		if !o.Crashed() {
			t.Errorf("%v.Crashed() = false", o)
		}
	}
}
