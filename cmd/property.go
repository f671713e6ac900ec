package cmd

import (
	"fmt"
	"strconv"

	"hearth/internal/afford"
	"hearth/internal/cli"

	"github.com/spf13/cobra"
)

var (
	flagPropTaxRate float64
	flagPropHOA     float64
)

var propertyCmd = &cobra.Command{
	Use:   "property <price>",
	Short: "Score one listing against the scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runProperty,
}

func init() {
	propertyCmd.Flags().Float64Var(&flagPropTaxRate, "tax-rate", 0, "Annual property tax rate percent (default from config)")
	propertyCmd.Flags().Float64Var(&flagPropHOA, "hoa", 0, "Monthly HOA dues")
	rootCmd.AddCommand(propertyCmd)
}

func runProperty(_ *cobra.Command, args []string) error {
	price, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", args[0], err)
	}

	scenario, err := loadScenario()
	if err != nil {
		return err
	}
	inputs := scenario.FinancialInputs()
	assumptions := loadAssumptions()

	prop := afford.Property{
		Price:           price,
		PropertyTaxRate: flagPropTaxRate,
		MonthlyHOA:      flagPropHOA,
	}
	score := afford.ScoreProperty(prop, inputs, assumptions)
	check := afford.CheckScenario(price, inputs, assumptions)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PROPERTY  %s", cli.FormatMoney(price))))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Monthly payment", cli.FormatMoney(score.Monthly)},
			{"Payment ceiling", cli.FormatMoney(score.PaymentCeiling)},
			{"Loan amount", cli.FormatMoney(score.LoanAmount)},
			{"Down payment required", cli.FormatMoney(score.DownPaymentReq)},
			{"DTI", cli.FormatPercent(score.DTIPercent)},
			{"Remaining budget", cli.FormatMoney(score.RemainingBudget)},
			{"---"},
			{"Affordability score", cli.FormatScore(score.Score)},
		},
	}))

	fmt.Println()
	fmt.Printf("  Quick check: %s  (P&I %s, budget left %s)\n",
		cli.StatusText(verdict(check.CanAfford), check.CanAfford),
		cli.FormatMoney(check.PrincipalAndInterest),
		cli.FormatMoney(check.RemainingBudget))
	fmt.Println()

	return nil
}

func verdict(ok bool) string {
	if ok {
		return "within reach"
	}
	return "out of reach"
}
