package cmd

import (
	"fmt"

	"hearth/internal/cli"
	"hearth/internal/config"
	"hearth/internal/rehearsal"

	"github.com/spf13/cobra"
)

var flagMode string

var rehearseCmd = &cobra.Command{
	Use:   "rehearse",
	Short: "Score decision readiness from the scenario's sliders",
	RunE:  runRehearse,
}

func init() {
	rehearseCmd.Flags().StringVarP(&flagMode, "mode", "m", "", "Decision mode: clarify, location, or offer")
	rootCmd.AddCommand(rehearseCmd)
}

func runRehearse(_ *cobra.Command, _ []string) error {
	scenario, err := loadScenario()
	if err != nil {
		return err
	}

	mode := resolveMode(scenario)
	r := rehearsal.Compute(mode, scenario.SliderState(), scenario.ToggleState())

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("REHEARSAL  %s", mode)))
	fmt.Println()

	fmt.Printf("  Steadiness  %s  %s\n", cli.RenderScoreBar(r.Score, 40), r.Band.Label)
	fmt.Printf("  %s\n\n", cli.Muted(fmt.Sprintf(
		"resource %.0f · demand %.0f · whiplash %.0f", r.Resource, r.Demand, r.Whiplash)))

	rows := make([][]string, 0, len(r.Protections)+len(r.Pressures)+1)
	for _, f := range r.Protections {
		rows = append(rows, []string{"+ " + f.Name, cli.FormatScore(f.Value)})
	}
	rows = append(rows, []string{"---"})
	for _, f := range r.Pressures {
		rows = append(rows, []string{"- " + f.Name, cli.FormatScore(f.Value)})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Factor", "Weight"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Printf("  Pattern: %s\n", r.Pattern.Tag)
	fmt.Printf("  %s\n", r.Pattern.Summary)
	for _, d := range r.Pattern.Drivers {
		fmt.Printf("    · %s\n", d)
	}
	if len(r.Pattern.Experiments) > 0 {
		fmt.Println()
		fmt.Println("  Try:")
		for _, e := range r.Pattern.Experiments {
			fmt.Printf("    → %s\n", e)
		}
	}
	fmt.Println()

	return nil
}

// resolveMode picks the mode from the flag, then the scenario, then the
// config default.
func resolveMode(scenario config.Scenario) rehearsal.Mode {
	if flagMode != "" {
		return rehearsal.Mode(flagMode)
	}
	if scenario.Rehearsal.Mode != "" {
		return rehearsal.Mode(scenario.Rehearsal.Mode)
	}
	cfg, err := config.Load()
	if err == nil && cfg.General.DefaultMode != "" {
		return rehearsal.Mode(cfg.General.DefaultMode)
	}
	return rehearsal.ModeClarify
}
