package lander

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-lander/internal/config"
)

// Status is the loop's state machine position.
type Status int

const (
	StatusRunning Status = iota
	StatusTerminated
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// SurfaceProbe reports whether the presentation surface is still open.
// A closed surface aborts the flight on the next tick.
type SurfaceProbe interface {
	Open() bool
}

// ProbeFunc adapts a function to SurfaceProbe.
type ProbeFunc func() bool

// Open implements SurfaceProbe.
func (f ProbeFunc) Open() bool {
	return f()
}

// Frame is what the presentation needs to draw one tick.
type Frame struct {
	Tick            int
	Elapsed         float64 // s since ignition
	Dt              float64 // s, length of this tick
	State           LanderState
	Thrust          float64 // N requested by the slider
	EffectiveThrust float64 // N delivered by the engine
	FuelFraction    float64 // 0..1 of the starting fuel
	Speed           float64 // |vertical velocity|, m/s
}

// Result is the record of a finished flight.
type Result struct {
	Outcome    Outcome // OutcomeNone when aborted
	Aborted    bool
	Final      LanderState
	Elapsed    float64
	Ticks      int
	Trajectory Trajectory
}

// Loop drives one flight from ignition to touchdown.
// It owns the lander state; nothing else mutates it.
type Loop struct {
	stepper    Stepper
	evaluator  Evaluator
	controller *InputController
	clock      Stopwatch
	probe      SurfaceProbe
	startFuel  float64

	state         LanderState
	status        Status
	tick          int
	elapsed       float64
	lastDt        float64
	lastInput     ControlInput
	lastEffective float64
	trajectory    Trajectory
	outcome       Outcome
	aborted       bool
}

// NewLoop validates the configuration and creates a loop in the Running state.
// A nil probe means the surface never closes.
func NewLoop(cfg config.LanderConfig, controller *InputController, clock Stopwatch, probe SurfaceProbe) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("lander: %w", err)
	}
	if controller == nil {
		return nil, fmt.Errorf("lander: input controller is required")
	}
	if clock == nil {
		clock = NewWallStopwatch()
	}

	return &Loop{
		stepper:    NewStepper(cfg),
		evaluator:  NewEvaluator(cfg.Landing),
		controller: controller,
		clock:      clock,
		probe:      probe,
		startFuel:  cfg.Lander.StartFuel,
		state:      InitialState(cfg),
		status:     StatusRunning,
		trajectory: make(Trajectory, 0, 1024),
	}, nil
}

// Tick runs one iteration of the loop and returns the resulting status.
// Ticking a terminated loop does nothing.
func (l *Loop) Tick() Status {
	if l.status == StatusTerminated {
		return l.status
	}

	if l.probe != nil && !l.probe.Open() {
		l.Abort()
		return l.status
	}

	dt := l.clock.Lap()
	in := l.controller.Refresh(&l.state)
	l.lastEffective = l.stepper.EffectiveThrust(l.state, in.Thrust)
	l.state = l.stepper.Step(l.state, in, dt)
	l.controller.Observe(dt)

	l.tick++
	l.elapsed += dt
	l.lastDt = dt
	l.lastInput = in
	l.trajectory = append(l.trajectory, TrajectorySample{Time: l.elapsed, Height: l.state.Height})

	if l.state.Height <= 0 {
		l.status = StatusTerminated
		l.outcome = l.evaluator.Evaluate(l.state)
	}
	return l.status
}

// Abort ends the flight without classifying it.
func (l *Loop) Abort() {
	if l.status == StatusTerminated {
		return
	}
	l.status = StatusTerminated
	l.aborted = true
}

// Status returns the current state machine position.
func (l *Loop) Status() Status {
	return l.status
}

// State returns a copy of the lander state.
func (l *Loop) State() LanderState {
	return l.state
}

// Frame returns the presentation view of the latest tick.
func (l *Loop) Frame() Frame {
	fuelFraction := 0.0
	if l.startFuel > 0 {
		fuelFraction = l.state.Fuel / l.startFuel
	}

	return Frame{
		Tick:            l.tick,
		Elapsed:         l.elapsed,
		Dt:              l.lastDt,
		State:           l.state,
		Thrust:          l.lastInput.Thrust,
		EffectiveThrust: l.lastEffective,
		FuelFraction:    fuelFraction,
		Speed:           math.Abs(l.state.VY),
	}
}

// Result returns the flight record. The outcome is only set once the loop
// has terminated through touchdown.
func (l *Loop) Result() Result {
	return Result{
		Outcome:    l.outcome,
		Aborted:    l.aborted,
		Final:      l.state,
		Elapsed:    l.elapsed,
		Ticks:      l.tick,
		Trajectory: append(Trajectory(nil), l.trajectory...),
	}
}

// Run ticks until the loop terminates or ctx is cancelled, which counts as
// closing the surface. With a positive pace it waits that long between
// ticks; otherwise it runs flat out. observe, if set, sees every frame.
func (l *Loop) Run(ctx context.Context, pace time.Duration, observe func(Frame)) Result {
	var ticker *time.Ticker
	if pace > 0 {
		ticker = time.NewTicker(pace)
		defer ticker.Stop()
	}

	for l.status == StatusRunning {
		if ctx.Err() != nil {
			l.Abort()
			break
		}

		l.Tick()
		if l.aborted {
			break
		}
		if observe != nil {
			observe(l.Frame())
		}

		if ticker != nil && l.status == StatusRunning {
			select {
			case <-ctx.Done():
			case <-ticker.C:
			}
		}
	}

	return l.Result()
}
