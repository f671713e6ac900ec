package cmd

import (
	"fmt"

	"hearth/internal/afford"
	"hearth/internal/cli"

	"github.com/spf13/cobra"
)

var affordCmd = &cobra.Command{
	Use:   "afford",
	Short: "Maximum affordability for the scenario",
	RunE:  runAfford,
}

func init() {
	rootCmd.AddCommand(affordCmd)
}

func runAfford(_ *cobra.Command, _ []string) error {
	scenario, err := loadScenario()
	if err != nil {
		return err
	}

	r := afford.MaxAffordability(scenario.FinancialInputs(), loadAssumptions())

	fmt.Println()
	fmt.Println(cli.RenderTitle("AFFORDABILITY"))
	fmt.Println()

	rows := [][]string{
		{"Max purchase price", cli.FormatMoney(r.MaxPurchasePrice)},
		{"Ideal purchase price", cli.FormatMoney(r.IdealPurchasePrice)},
		{"Loan amount", cli.FormatMoney(r.LoanAmount)},
		{"---"},
		{"Max monthly payment", cli.FormatMoney(r.MaxMonthlyPayment)},
		{"Actual monthly payment", cli.FormatMoney(r.ActualMonthlyPayment)},
		{"Principal & interest", cli.FormatMoney(r.PrincipalAndInterest)},
		{"Property tax", cli.FormatMoney(r.PropertyTaxMonthly)},
		{"Insurance", cli.FormatMoney(r.InsuranceMonthly)},
	}
	if r.PMIMonthly > 0 {
		rows = append(rows, []string{"PMI", cli.FormatMoney(r.PMIMonthly)})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Gross monthly income", cli.FormatMoney(r.GrossMonthlyIncome)},
		[]string{"Take-home income", cli.FormatMoney(r.TakeHomeMonthly)},
		[]string{"DTI", cli.FormatPercent(r.DTIPercent)},
		[]string{"Remaining budget", cli.FormatMoney(r.RemainingBudget)},
	)

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	fmt.Println()
	dp := r.DownPayment
	fmt.Printf("  Down payment: %s  (required %s, available %s)\n",
		cli.StatusText(string(dp.Status), dp.Status != afford.StatusShortfall),
		cli.FormatMoney(dp.Required), cli.FormatMoney(dp.Available))
	switch dp.Status {
	case afford.StatusExcess:
		fmt.Printf("  Excess funds: %s\n", cli.FormatMoney(dp.ExcessAmount))
	case afford.StatusShortfall:
		fmt.Printf("  Shortfall: %s\n", cli.FormatMoney(dp.ShortfallAmount))
	}

	if len(r.Constraints) > 0 {
		fmt.Println()
		for _, c := range r.Constraints {
			fmt.Printf("  ! %s\n", c)
		}
	}
	if len(r.Opportunities) > 0 {
		fmt.Println()
		for _, o := range r.Opportunities {
			fmt.Printf("  + %s\n", o)
		}
	}
	fmt.Println()

	return nil
}
