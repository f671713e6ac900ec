package cmd

import (
	"fmt"
	"strconv"

	"hearth/internal/config"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create a starter scenario file",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	var (
		income   string
		expenses string
		debts    string
		down     string
		rate     string
		term     string
		strategy string
		path     = "scenario.toml"
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Annual gross income").
				Placeholder("65000").
				Validate(validNumber).
				Value(&income),
			huh.NewInput().
				Title("Monthly expenses").
				Placeholder("2500").
				Validate(validNumber).
				Value(&expenses),
			huh.NewInput().
				Title("Fixed monthly debt payments").
				Placeholder("400").
				Validate(validNumber).
				Value(&debts),
			huh.NewInput().
				Title("Available down payment").
				Placeholder("25000").
				Validate(validNumber).
				Value(&down),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Interest rate (%)").
				Placeholder("6.5").
				Validate(validNumber).
				Value(&rate),
			huh.NewInput().
				Title("Loan term (years)").
				Placeholder("30").
				Validate(validNumber).
				Value(&term),
			huh.NewSelect[string]().
				Title("If your down payment exceeds the target").
				Options(
					huh.NewOption("Keep the extra in savings", "save"),
					huh.NewOption("Put it all down, lower the payment", "reduce-payment"),
					huh.NewOption("Stretch to a bigger house", "increase-price"),
				).
				Value(&strategy),
			huh.NewInput().
				Title("Save scenario as").
				Value(&path),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	termYears, _ := strconv.Atoi(term)
	if termYears <= 0 {
		termYears = 30
	}

	// Derive the take-home figure from the itemized withholding defaults
	// so downstream commands never fall back to the flat estimate.
	grossAnnual := parseNumber(income)
	takeHome := loadAssumptions().MonthlyTakeHome(grossAnnual / 12)

	scenario := config.Scenario{
		Financial: config.FinancialSection{
			AnnualGrossIncome:    grossAnnual,
			MonthlyExpenses:      parseNumber(expenses),
			MonthlyDebts:         parseNumber(debts),
			AvailableDownPayment: parseNumber(down),
			InterestRate:         parseNumber(rate),
			LoanTermYears:        termYears,
			TakeHomeMonthly:      takeHome,
			ExcessStrategy:       strategy,
		},
		Rehearsal: config.RehearsalSection{
			// Neutral starting position for every dimension.
			Buffer: 50, Lifestyle: 50, Risk: 50, Finance: 50,
			Deal: 50, Attach: 50, Lev: 50,
		},
	}

	if err := config.SaveScenario(path, scenario); err != nil {
		return err
	}

	// Remember the scenario path so bare commands work without --scenario.
	cfg, _ := config.Load()
	cfg.General.ScenarioPath = path
	if err := config.Save(cfg); err != nil {
		fmt.Printf("  Scenario saved to %s (config not updated: %v)\n", path, err)
		return nil
	}

	fmt.Println()
	fmt.Printf("  Scenario saved to %s\n", path)
	fmt.Println("  Run `hearth afford` to see what it buys.")
	fmt.Println()
	return nil
}

func validNumber(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

func parseNumber(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
