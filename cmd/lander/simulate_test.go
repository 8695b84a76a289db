package main

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/lander"
)

func withSimFlags(t *testing.T, dt, thrust float64, autopilot bool) {
	t.Helper()
	oldDt, oldThrust, oldAuto, oldRealtime := flagDt, flagThrust, flagAutopilot, flagRealtime
	flagDt, flagThrust, flagAutopilot, flagRealtime = dt, thrust, autopilot, false
	t.Cleanup(func() {
		flagDt, flagThrust, flagAutopilot, flagRealtime = oldDt, oldThrust, oldAuto, oldRealtime
	})
}

func TestSimulateFreeFall(t *testing.T) {
	withSimFlags(t, 0.05, 0, false)

	res, err := simulate(context.Background(), config.DefaultLanderConfig(), log.New(io.Discard))
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if res.Aborted {
		t.Fatal("flight aborted")
	}
	if res.Outcome != lander.OutcomeHardLanding {
		t.Errorf("Outcome = %v, want hard landing", res.Outcome)
	}
	if len(res.Trajectory) != res.Ticks {
		t.Errorf("trajectory has %d samples for %d ticks", len(res.Trajectory), res.Ticks)
	}
}

func TestSimulateCancelledAborts(t *testing.T) {
	withSimFlags(t, 0.05, 0, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := simulate(ctx, config.DefaultLanderConfig(), log.New(io.Discard))
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if !res.Aborted || res.Outcome != lander.OutcomeNone {
		t.Errorf("aborted=%v outcome=%v, want aborted flight", res.Aborted, res.Outcome)
	}
}

func TestSimulateAutopilotBurns(t *testing.T) {
	withSimFlags(t, 0.05, 0, true)

	cfg := config.DefaultLanderConfig()
	res, err := simulate(context.Background(), cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if res.Final.Fuel >= cfg.Lander.StartFuel {
		t.Error("autopilot never fired the engine")
	}
}

func TestSimulateRejectsBadConfig(t *testing.T) {
	withSimFlags(t, 0.05, 0, false)

	cfg := config.DefaultLanderConfig()
	cfg.Physics.Gravity = 0
	if _, err := simulate(context.Background(), cfg, log.New(io.Discard)); err == nil {
		t.Error("simulate accepted zero gravity")
	}
}

func TestSimulateRejectsFreeEngine(t *testing.T) {
	withSimFlags(t, 0.05, 27000, false)

	cfg := config.DefaultLanderConfig()
	cfg.Physics.BurnRate = 0
	if _, err := simulate(context.Background(), cfg, log.New(io.Discard)); err == nil {
		t.Error("simulate accepted an engine that never burns fuel")
	}
}

func TestHeadlessRecordHasNoSeed(t *testing.T) {
	oldDifficulty := flagDifficulty
	flagDifficulty = "hard"
	t.Cleanup(func() { flagDifficulty = oldDifficulty })

	res := lander.Result{
		Outcome: lander.OutcomeSuccess,
		Elapsed: 12.5,
		Final:   lander.LanderState{VY: -3, Theta: 0.1, Fuel: 200, X: 50},
	}
	rec := headlessRecord(res)

	if rec.Seed != 0 {
		t.Errorf("Seed = %d, want 0 for a flight without terrain", rec.Seed)
	}
	if rec.Outcome != "success" || rec.ImpactSpeed != 3 || rec.FuelLeft != 200 || rec.Difficulty != "hard" {
		t.Errorf("record = %+v", rec)
	}
}
