package lander

import (
	"testing"
	"time"
)

func TestFixedStopwatch(t *testing.T) {
	sw := NewFixedStopwatch(0.02)

	if got := sw.Lap(); got != 0 {
		t.Errorf("first Lap() = %v, want 0", got)
	}
	for i := 0; i < 3; i++ {
		if got := sw.Lap(); got != 0.02 {
			t.Errorf("Lap() = %v, want 0.02", got)
		}
	}
}

func TestWallStopwatch(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	times := []time.Time{
		base,
		base.Add(16 * time.Millisecond),
		base.Add(50 * time.Millisecond),
		base.Add(40 * time.Millisecond), // clock stepped back
	}
	i := 0
	sw := &WallStopwatch{now: func() time.Time {
		now := times[i]
		i++
		return now
	}}

	want := []float64{0, 0.016, 0.034, 0}
	for k, w := range want {
		if got := sw.Lap(); !near(got, w, 1e-12) {
			t.Errorf("lap %d = %v, want %v", k, got, w)
		}
	}
}
