package cmd

import (
	"fmt"

	"hearth/internal/config"
	"hearth/internal/tui"
	"hearth/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive what-if dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	scenario, err := loadScenario()
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err == nil {
		theme.SetActive(cfg.Appearance.Theme)
	}

	app := tui.New(
		scenario.FinancialInputs(),
		resolveMode(scenario),
		scenario.SliderState(),
		scenario.ToggleState(),
		loadAssumptions(),
	)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
