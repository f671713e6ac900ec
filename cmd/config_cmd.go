package cmd

import (
	"fmt"

	"hearth/internal/cli"
	"hearth/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration and policy assumptions",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a := cfg.Assumptions.Resolve()

	fmt.Println()
	fmt.Printf("  Config file: %s", config.ConfigPath())
	if !config.Exists() {
		fmt.Print(cli.Muted("  (not created yet, showing defaults)"))
	}
	fmt.Println()
	if cfg.General.ScenarioPath != "" {
		fmt.Printf("  Scenario:    %s\n", cfg.General.ScenarioPath)
	}
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Assumptions",
		Headers: []string{"Policy", "Value"},
		Rows: [][]string{
			{"Property tax rate", cli.FormatPercent(a.PropertyTaxRate)},
			{"Annual insurance", cli.FormatMoney(a.AnnualInsurance)},
			{"PMI annual rate", cli.FormatPercent(a.PMIAnnualRate)},
			{"PMI threshold", cli.FormatPercent(a.PMIThresholdPct)},
			{"DTI cap", cli.FormatPercent(a.DTICapPercent)},
			{"Housing ratio", cli.FormatPercent(a.HousingRatioPct)},
			{"Take-home fallback", cli.FormatPercent(a.TakeHomePercent)},
			{"Down-payment tolerance", cli.FormatPercent(a.ExcessTolerancePct)},
			{"---"},
			{"Income tax withholding", cli.FormatPercent(a.Withholding.IncomeTaxPct)},
			{"Retirement withholding", cli.FormatPercent(a.Withholding.RetirementPct)},
			{"Healthcare withholding", cli.FormatPercent(a.Withholding.HealthcarePct)},
			{"HSA withholding", cli.FormatPercent(a.Withholding.HSAPct)},
		},
	}))
	fmt.Println()

	return nil
}
