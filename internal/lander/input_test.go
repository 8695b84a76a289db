package lander

import (
	"math"
	"testing"
)

func TestThrustSliderClamps(t *testing.T) {
	s := NewThrustSlider(27000, 1350)

	tests := []struct {
		set  float64
		want float64
	}{
		{-5, 0},
		{0, 0},
		{12000, 12000},
		{27000, 27000},
		{40000, 27000},
		{math.NaN(), 0},
		{math.Inf(1), 27000},
	}
	for _, tt := range tests {
		s.Set(tt.set)
		if got := s.Value(); got != tt.want {
			t.Errorf("Set(%v) -> %v, want %v", tt.set, got, tt.want)
		}
	}
}

func TestThrustSliderNudgeAndFraction(t *testing.T) {
	s := NewThrustSlider(27000, 1350)

	s.Nudge(2)
	if got := s.Value(); got != 2700 {
		t.Errorf("after Nudge(2) value = %v, want 2700", got)
	}
	s.Nudge(-5)
	if got := s.Value(); got != 0 {
		t.Errorf("nudging below zero gave %v", got)
	}

	s.SetFraction(0.5)
	if got := s.Value(); got != 13500 {
		t.Errorf("SetFraction(0.5) = %v, want 13500", got)
	}
	if got := s.Fraction(); got != 0.5 {
		t.Errorf("Fraction() = %v, want 0.5", got)
	}

	zero := NewThrustSlider(0, 1)
	zero.Set(10)
	if zero.Value() != 0 || zero.Fraction() != 0 {
		t.Errorf("zero-range slider = %v (%v)", zero.Value(), zero.Fraction())
	}
}

func TestInputControllerUsesPreviousDt(t *testing.T) {
	slider := NewThrustSlider(27000, 1350)
	c := NewInputController(slider)
	st := LanderState{}

	// Nothing has run yet, so the first command turns by zero.
	c.Press(TiltRight)
	in := c.Refresh(&st)
	if st.Theta != 0 {
		t.Errorf("first tick rotated to %v", st.Theta)
	}
	if in.Tilt != TiltRight {
		t.Errorf("Tilt = %v, want right", in.Tilt)
	}
	c.Observe(0.1)

	c.Press(TiltRight)
	c.Press(TiltRight)
	c.Refresh(&st)
	if want := 2 * 0.1 * math.Pi; !near(st.Theta, want, eps) {
		t.Errorf("Theta = %v, want %v", st.Theta, want)
	}
	c.Observe(0.25)

	c.Press(TiltLeft)
	c.Refresh(&st)
	if want := 0.2*math.Pi - 0.25*math.Pi; !near(st.Theta, want, eps) {
		t.Errorf("Theta = %v, want %v", st.Theta, want)
	}
}

func TestInputControllerIgnoresOtherCommands(t *testing.T) {
	c := NewInputController(NewThrustSlider(100, 10))
	c.Observe(1)

	c.Press(TiltNone)
	c.Press(TiltCommand(42))
	if c.Pending() != 0 {
		t.Fatalf("Pending() = %d, want 0", c.Pending())
	}

	st := LanderState{Theta: 0.3}
	in := c.Refresh(&st)
	if st.Theta != 0.3 || in.Tilt != TiltNone {
		t.Errorf("no-op commands changed state: θ=%v tilt=%v", st.Theta, in.Tilt)
	}
}

func TestInputControllerReadsSliderFresh(t *testing.T) {
	slider := NewThrustSlider(27000, 1350)
	c := NewInputController(slider)
	st := LanderState{}

	slider.Set(5000)
	if in := c.Refresh(&st); in.Thrust != 5000 {
		t.Errorf("Thrust = %v, want 5000", in.Thrust)
	}
	slider.Set(0)
	if in := c.Refresh(&st); in.Thrust != 0 {
		t.Errorf("Thrust = %v, want 0", in.Thrust)
	}
}

func TestInputControllerReset(t *testing.T) {
	slider := NewThrustSlider(100, 10)
	slider.Set(50)
	c := NewInputController(slider)
	c.Observe(0.5)
	c.Press(TiltLeft)

	c.Reset()

	if c.Pending() != 0 {
		t.Errorf("Pending() = %d after Reset", c.Pending())
	}
	c.Press(TiltLeft)
	st := LanderState{}
	c.Refresh(&st)
	if st.Theta != 0 {
		t.Errorf("Reset kept the previous dt: θ=%v", st.Theta)
	}
	if slider.Value() != 50 {
		t.Errorf("Reset moved the slider to %v", slider.Value())
	}
}
