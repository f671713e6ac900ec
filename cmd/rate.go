package cmd

import (
	"fmt"

	"hearth/internal/afford"
	"hearth/internal/cli"

	"github.com/spf13/cobra"
)

var (
	flagCreditScore int
	flagRateTerm    int
	flagRateDown    float64
	flagBaseRate    float64
)

var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Ballpark an interest rate from credit score, term, and down payment",
	RunE:  runRate,
}

func init() {
	rateCmd.Flags().IntVar(&flagCreditScore, "credit", 740, "Credit score")
	rateCmd.Flags().IntVar(&flagRateTerm, "term", 30, "Loan term in years")
	rateCmd.Flags().Float64Var(&flagRateDown, "down", 20, "Down payment percent")
	rateCmd.Flags().Float64Var(&flagBaseRate, "base", 6.5, "Market base rate percent")
	rootCmd.AddCommand(rateCmd)
}

func runRate(_ *cobra.Command, _ []string) error {
	rate := afford.EstimateRate(flagCreditScore, flagRateTerm, flagRateDown, flagBaseRate)

	fmt.Println()
	fmt.Printf("  Estimated rate: %s\n", cli.FormatRate(rate))
	fmt.Printf("  %s\n", cli.Muted(fmt.Sprintf(
		"credit %d, %d-year term, %.0f%% down, %.3f%% base",
		flagCreditScore, flagRateTerm, flagRateDown, flagBaseRate)))
	fmt.Println()
	return nil
}
