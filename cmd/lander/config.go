package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a flight would use, after the config file
search and the difficulty preset, as YAML.

Save the output, edit it and pass it back with --config.

Examples:
  lander config
  lander config --difficulty hard
  lander config --defaults > ~/.lunar/configs/lander.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fatalf("%v", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fatalf("encoding config: %v", err)
	}
	fmt.Print(string(data))
}
