package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/platform/tui"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

var flagPlayChart string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly the lander",
	Long: `Start an interactive flight.

Controls:
  A/Left     - Rotate left
  D/Right    - Rotate right
  W/Up       - More thrust
  S/Down     - Less thrust
  0-9        - Set thrust to a tenth of full (0 = full)
  X          - Cut the engine
  R          - Fly again (after landing)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - A third more fuel
  normal - The configured fuel load
  hard   - A third less fuel

Examples:
  lander play
  lander play --difficulty easy
  lander play --seed 42 --chart ./flight.png
  lander play --config ./my-lander.yaml --log ./lander.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayChart, "chart", "", "Save a trajectory PNG here after each landing")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatalf("%v", err)
	}

	// The alternate screen owns the terminal, so logs only go to --log.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fatalf("%v", err)
	}
	defer closeLog()

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	// Open flight log
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open flight log: %v\n", err)
		// Continue without storage - flying still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config:     cfg,
		Runtime:    rt,
		Difficulty: flagDifficulty,
		Store:      store,
		Logger:     logger,
		ChartPath:  flagPlayChart,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fatalf("running lander: %v", runErr)
	}
}
