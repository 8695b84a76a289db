package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/chart"
	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/lander"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

var (
	flagDt        float64
	flagRealtime  bool
	flagThrust    float64
	flagAutopilot bool
	flagMargin    float64
	flagSimChart  string
	flagSimCSV    string
	flagNoRecord  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a flight without a terminal UI",
	Long: `Fly the lander headless and print the outcome.

By default every tick advances the simulation by --dt seconds and the run
finishes as fast as possible. With --realtime the wall clock drives the
simulation at --fps.

Thrust is either held at --thrust newtons or chosen every tick by a simple
autopilot that coasts until it has to brake at full thrust. --margin pads
the braking distance.

Examples:
  lander simulate
  lander simulate --thrust 16000
  lander simulate --autopilot --margin 1.2 --verbose
  lander simulate --autopilot --chart ./flight.png --csv ./flight.csv`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&flagDt, "dt", 0.05, "Fixed timestep in seconds")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace the flight with the wall clock")
	simulateCmd.Flags().Float64Var(&flagThrust, "thrust", 0, "Constant requested thrust in newtons")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the autopilot fly")
	simulateCmd.Flags().Float64Var(&flagMargin, "margin", 1.1, "Autopilot braking distance factor (>= 1)")
	simulateCmd.Flags().StringVar(&flagSimChart, "chart", "", "Save the trajectory chart as PNG")
	simulateCmd.Flags().StringVar(&flagSimCSV, "csv", "", "Save the trajectory samples as CSV")
	simulateCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not add the flight to the log")
}

func runSimulate(cmd *cobra.Command, args []string) {
	if !flagRealtime && flagDt <= 0 {
		fatalf("--dt must be positive, got %v", flagDt)
	}

	cfg, err := loadConfig()
	if err != nil {
		fatalf("%v", err)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fatalf("%v", err)
	}
	defer closeLog()

	// Ctrl+C closes the surface and aborts the flight.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := simulate(ctx, cfg, logger)
	if err != nil {
		fatalf("%v", err)
	}

	if res.Aborted {
		fmt.Println("Flight aborted.")
		return
	}
	printResult(res)

	if !flagNoRecord {
		recordFlight(res, logger)
	}
	exportTrajectory(res.Trajectory, logger)
}

// simulate flies one headless flight with the configured control source.
func simulate(ctx context.Context, cfg config.LanderConfig, logger *log.Logger) (lander.Result, error) {
	slider := lander.NewThrustSlider(cfg.Lander.MaxThrust, cfg.Controls.ThrustStep)
	slider.Set(flagThrust)
	control := lander.NewInputController(slider)

	var (
		clock lander.Stopwatch = lander.NewFixedStopwatch(flagDt)
		pace  time.Duration
	)
	if flagRealtime {
		clock = lander.NewWallStopwatch()
		pace = core.RuntimeConfig{TickRate: flagFPS}.TickInterval()
	}

	loop, err := lander.NewLoop(cfg, control, clock, nil)
	if err != nil {
		return lander.Result{}, err
	}

	var autopilot *lander.Autopilot
	if flagAutopilot {
		ap := lander.NewAutopilot(cfg, flagMargin)
		autopilot = &ap
		slider.Set(ap.Thrust(loop.State()))
	}

	logger.Info("ignition",
		"fuel", cfg.Lander.StartFuel,
		"mass", cfg.Lander.StartMass,
		"height", cfg.Lander.StartHeight,
		"autopilot", flagAutopilot,
		"realtime", flagRealtime,
	)

	res := loop.Run(ctx, pace, func(f lander.Frame) {
		logger.Debug("tick",
			"n", f.Tick,
			"t", round2(f.Elapsed),
			"height", round2(f.State.Height),
			"vy", round2(f.State.VY),
			"fuel", round2(f.State.Fuel),
			"thrust", f.EffectiveThrust,
		)
		if autopilot != nil {
			slider.Set(autopilot.Thrust(f.State))
		}
	})

	if res.Aborted {
		logger.Warn("flight aborted", "elapsed", round2(res.Elapsed), "ticks", res.Ticks)
		return res, nil
	}
	logger.Info("touchdown",
		"outcome", res.Outcome,
		"speed", round2(math.Abs(res.Final.VY)),
		"theta", round2(res.Final.Theta),
		"fuel", round2(res.Final.Fuel),
		"time", round2(res.Elapsed),
		"ticks", res.Ticks,
	)
	return res, nil
}

func printResult(res lander.Result) {
	if d, ok := lander.DialogFor(res.Outcome); ok {
		fmt.Println(d.Title)
		fmt.Println()
		fmt.Println(d.Body)
		fmt.Println()
	}

	fmt.Printf("  %-14s %s\n", "Outcome", res.Outcome)
	fmt.Printf("  %-14s %.2f s\n", "Flight time", res.Elapsed)
	fmt.Printf("  %-14s %.2f m/s\n", "Impact speed", math.Abs(res.Final.VY))
	fmt.Printf("  %-14s %+.3f rad\n", "Tilt", res.Final.Theta)
	fmt.Printf("  %-14s %.1f kg\n", "Fuel left", res.Final.Fuel)
}

// recordFlight adds a finished flight to the log. Failures only warn.
func recordFlight(res lander.Result, logger *log.Logger) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open flight log", "err", err)
		return
	}
	defer store.Close()

	if _, err := store.SaveFlight(headlessRecord(res)); err != nil {
		logger.Warn("flight not recorded", "err", err)
	}
}

// headlessRecord builds the log entry for a simulated flight. Headless
// flights have no terrain, so the seed is left at 0.
func headlessRecord(res lander.Result) storage.FlightRecord {
	return storage.FlightRecord{
		Outcome:     res.Outcome.String(),
		FlightTime:  res.Elapsed,
		FuelLeft:    res.Final.Fuel,
		ImpactSpeed: math.Abs(res.Final.VY),
		Tilt:        res.Final.Theta,
		Difficulty:  flagDifficulty,
	}
}

func exportTrajectory(traj lander.Trajectory, logger *log.Logger) {
	if flagSimChart != "" {
		if err := chart.SavePNG(flagSimChart, traj); err != nil {
			logger.Error("chart not saved", "err", err)
		} else {
			fmt.Printf("Chart saved to %s\n", flagSimChart)
		}
	}
	if flagSimCSV != "" {
		if err := chart.SaveCSV(flagSimCSV, traj); err != nil {
			logger.Error("trajectory not saved", "err", err)
		} else {
			fmt.Printf("Trajectory saved to %s\n", flagSimCSV)
		}
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
