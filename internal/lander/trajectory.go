package lander

// TrajectorySample is one (time, height) point of a flight.
type TrajectorySample struct {
	Time   float64 // s since ignition
	Height float64 // m
}

// Trajectory is the ordered flight trace, one sample per tick.
type Trajectory []TrajectorySample

// Times returns the sample times.
func (t Trajectory) Times() []float64 {
	out := make([]float64, len(t))
	for i, s := range t {
		out[i] = s.Time
	}
	return out
}

// Heights returns the sample heights.
func (t Trajectory) Heights() []float64 {
	out := make([]float64, len(t))
	for i, s := range t {
		out[i] = s.Height
	}
	return out
}

// Duration returns the time of the last sample.
func (t Trajectory) Duration() float64 {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].Time
}

// MaxHeight returns the highest recorded height, or 0 for an empty trace.
func (t Trajectory) MaxHeight() float64 {
	maxH := 0.0
	for i, s := range t {
		if i == 0 || s.Height > maxH {
			maxH = s.Height
		}
	}
	return maxH
}
