package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aretw0/cascade/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "cascade",
	Short: "Cascade is a terminal hazard-sweeping game",
	Long: `Cascade is a grid game driven by a bounded action dispatcher.
Revealing an empty cell floods its region through injected follow-up actions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	addConfigFlags(rootCmd.PersistentFlags())
}

func addConfigFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "Path to a YAML or JSON configuration file")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.Int64("seed", 0, "Seed for hazard placement (0 picks a random seed)")
	flags.String("difficulty", "", "Board difficulty (beginner, intermediate, expert)")
	flags.String("metrics-addr", "", "Serve /metrics, /state and /healthz on this address")
}

// loadConfig resolves the configuration: defaults, then the file, then the
// environment, then explicit flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("difficulty") {
		cfg.Difficulty, _ = flags.GetString("difficulty")
		// An explicit difficulty wins over a configured custom board.
		cfg.Board = config.BoardConfig{}
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
	}
	return cfg, cfg.Validate()
}
