package lander

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// RotationRate is how far one tilt command turns the craft per second of
// the previous tick's duration.
const RotationRate = math.Pi

// ThrustSlider is the continuous thrust control, ranged [0, max].
type ThrustSlider struct {
	value float64
	max   float64
	step  float64
}

// NewThrustSlider creates a slider at zero thrust.
func NewThrustSlider(max, step float64) *ThrustSlider {
	return &ThrustSlider{max: math.Max(max, 0), step: step}
}

// Value returns the current slider position in newtons.
func (s *ThrustSlider) Value() float64 {
	return s.value
}

// Max returns the top of the slider range.
func (s *ThrustSlider) Max() float64 {
	return s.max
}

// Fraction returns the slider position as a share of its range.
func (s *ThrustSlider) Fraction() float64 {
	if s.max == 0 {
		return 0
	}
	return s.value / s.max
}

// Set moves the slider, clamping to the range. NaN is treated as zero.
func (s *ThrustSlider) Set(v float64) {
	if math.IsNaN(v) {
		v = 0
	}
	s.value = core.ClampF(v, 0, s.max)
}

// SetFraction moves the slider to a share of its range.
func (s *ThrustSlider) SetFraction(f float64) {
	s.Set(f * s.max)
}

// Nudge moves the slider by whole steps, negative steps lower it.
func (s *ThrustSlider) Nudge(steps int) {
	s.Set(s.value + float64(steps)*s.step)
}

// InputController turns player input into the control vector for each tick.
//
// Tilt commands may arrive at any time between ticks; they are queued and
// applied on the next Refresh. Each one rotates the craft by
// RotationRate times the duration of the previous tick, so the turn rate
// follows the frame rate.
type InputController struct {
	slider  *ThrustSlider
	pending []TiltCommand
	prevDt  float64
}

// NewInputController creates a controller reading thrust from slider.
func NewInputController(slider *ThrustSlider) *InputController {
	return &InputController{
		slider:  slider,
		pending: make([]TiltCommand, 0, 4),
	}
}

// Slider returns the thrust slider.
func (c *InputController) Slider() *ThrustSlider {
	return c.slider
}

// Press queues a tilt command. Anything other than left or right is ignored.
// Never blocks.
func (c *InputController) Press(cmd TiltCommand) {
	if cmd != TiltLeft && cmd != TiltRight {
		return
	}
	c.pending = append(c.pending, cmd)
}

// Pending returns how many tilt commands are waiting for the next tick.
func (c *InputController) Pending() int {
	return len(c.pending)
}

// Refresh applies queued tilt commands to st and reads the slider.
func (c *InputController) Refresh(st *LanderState) ControlInput {
	in := ControlInput{Tilt: TiltNone, Thrust: c.slider.Value()}

	for _, cmd := range c.pending {
		st.Theta += cmd.Sign() * c.prevDt * RotationRate
		in.Tilt = cmd
	}
	c.pending = c.pending[:0]

	return in
}

// Observe records the duration of the tick that just ran; the next tick's
// rotations use it.
func (c *InputController) Observe(dt float64) {
	c.prevDt = dt
}

// Reset drops queued commands and timing, keeping the slider position.
func (c *InputController) Reset() {
	c.pending = c.pending[:0]
	c.prevDt = 0
}
