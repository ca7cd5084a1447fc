package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/levercalc/config"
)

var rootCmd = &cobra.Command{
	Use:   "levercalc",
	Short: "A leverage and capital-requirement calculator for planned trades",
	Long: `Levercalc derives the dependent metrics of a planned leveraged trade
(leverage, notional value, capital requirements, liquidation thresholds)
from a handful of input parameters, recomputing everything whenever any
input changes.

It provides tools for:
  - One-shot derivation of all metrics from flags or a config file
  - An interactive session that recomputes after every edit
  - Exporting a session's edit history for offline review

Complete documentation is available at https://github.com/rustyeddy/levercalc`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig builds the effective configuration: defaults, then the config
// file when given, then LEVERCALC_* environment overrides on top.
func loadConfig(path string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.FromEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
