package lander

import "time"

// Stopwatch measures the time slice each tick integrates over.
// Lap returns seconds since the previous call, and 0 on the first call.
type Stopwatch interface {
	Lap() float64
}

// WallStopwatch measures real elapsed time, so dt varies with load.
type WallStopwatch struct {
	now     func() time.Time
	last    time.Time
	started bool
}

// NewWallStopwatch creates a stopwatch on the system clock.
func NewWallStopwatch() *WallStopwatch {
	return &WallStopwatch{now: time.Now}
}

// Lap implements Stopwatch.
func (w *WallStopwatch) Lap() float64 {
	t := w.now()
	if !w.started {
		w.started = true
		w.last = t
		return 0
	}
	dt := t.Sub(w.last).Seconds()
	w.last = t
	if dt < 0 {
		return 0
	}
	return dt
}

// FixedStopwatch reports a constant step after the first lap, which makes
// flights reproducible.
type FixedStopwatch struct {
	step    float64
	started bool
}

// NewFixedStopwatch creates a stopwatch with the given step in seconds.
func NewFixedStopwatch(step float64) *FixedStopwatch {
	return &FixedStopwatch{step: step}
}

// Lap implements Stopwatch.
func (f *FixedStopwatch) Lap() float64 {
	if !f.started {
		f.started = true
		return 0
	}
	return f.step
}
