// lander is a lunar lander flight simulator for the terminal.
//
// Usage:
//
//	lander play              - Fly the lander interactively
//	lander simulate          - Run a flight headless with fixed thrust or the autopilot
//	lander history           - Show the flight log
//	lander config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set terrain seed for reproducible flights
//	--db <path>           - Set database path (default: ~/.lunar/flights.db)
//	--config <path>       - Load a custom lander.yaml
//	--difficulty <preset> - easy, normal or hard
//	--log <path>          - Append logs to a file
//	--verbose             - Log every tick
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lander",
	Short: "Lunar Lander - Land on the moon from your terminal",
	Long: `Lunar Lander is a terminal flight simulator. Trim the thrust and keep
the craft upright to set it down gently before the fuel runs out.

Available commands:
  play      - Fly the lander interactively
  simulate  - Run a flight without a terminal UI
  history   - View the flight log
  config    - Print the effective configuration

Examples:
  lander play
  lander play --difficulty hard --chart ./flight.png
  lander simulate --autopilot --csv ./flight.csv
  lander history`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Terrain seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lunar/flights.db", "Path to flight log database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom lander config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log every simulation tick")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file and applies the difficulty preset.
func loadConfig() (config.LanderConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.LanderConfig{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.LanderConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.LanderConfig{}, err
	}
	return cfg, nil
}

// newLogger builds the shared logger. When --log is set it writes there
// instead of fallback; the returned closer releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closer := func() {}

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "lander",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// fatalf prints an error and exits.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
