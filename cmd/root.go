// Package cmd wires the calculation engines to the terminal. State lives in
// scenario files owned by the user; every command loads, computes, renders,
// and exits. Nothing is cached or persisted.
package cmd

import (
	"fmt"
	"os"

	"hearth/internal/config"
	"hearth/internal/finance"

	"github.com/spf13/cobra"
)

var flagScenario string

var rootCmd = &cobra.Command{
	Use:   "hearth",
	Short: "Home-purchase decision toolkit",
	Long:  "Estimate affordability, rehearse the decision, and check your cash-flow flexibility.",
	RunE:  runAfford,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagScenario, "scenario", "s", "", "Scenario file (TOML)")
}

// loadScenario resolves the scenario path from the flag or the config file
// and parses it. Shared by every command that reads household state.
func loadScenario() (config.Scenario, error) {
	path := flagScenario
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return config.Scenario{}, err
		}
		path = cfg.General.ScenarioPath
	}
	if path == "" {
		return config.Scenario{}, fmt.Errorf("no scenario file: pass --scenario or run `hearth setup`")
	}
	return config.LoadScenario(path)
}

// loadAssumptions resolves the policy constants with any config overrides.
func loadAssumptions() finance.Assumptions {
	cfg, err := config.Load()
	if err != nil {
		// A broken config file should not block a calculation; fall back
		// to the registry defaults and tell the user.
		fmt.Fprintf(os.Stderr, "  config unreadable (%v), using defaults\n", err)
		return finance.DefaultAssumptions()
	}
	return cfg.Assumptions.Resolve()
}
