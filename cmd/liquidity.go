package cmd

import (
	"fmt"
	"sort"

	"hearth/internal/cli"
	"hearth/internal/liquidity"

	"github.com/spf13/cobra"
)

var liquidityCmd = &cobra.Command{
	Use:   "liquidity",
	Short: "Bucket funding, reserve status, and the elasticity index",
	RunE:  runLiquidity,
}

func init() {
	rootCmd.AddCommand(liquidityCmd)
}

func runLiquidity(_ *cobra.Command, _ []string) error {
	scenario, err := loadScenario()
	if err != nil {
		return err
	}

	buckets := scenario.BucketList()
	obligations := scenario.ObligationList()
	charges := scenario.ChargeList()
	series := scenario.ShieldSeries()

	fmt.Println()
	fmt.Println(cli.RenderTitle("LIQUIDITY"))
	fmt.Println()

	// Bucket table, active only.
	active := liquidity.ActiveBuckets(buckets, "")
	rows := make([][]string, 0, len(active))
	for _, b := range active {
		rows = append(rows, []string{
			b.Name, string(b.Type),
			cli.FormatMoney(b.Balance), cli.FormatMoney(b.Target),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Buckets",
		Headers: []string{"Name", "Type", "Balance", "Target"},
		Rows:    rows,
	}))
	if dormant := len(buckets) - len(active); dormant > 0 {
		fmt.Printf("  %s\n", cli.Muted(fmt.Sprintf("%d dormant bucket(s) excluded", dormant)))
	}
	fmt.Println()

	// Annual reserve.
	required := liquidity.RequiredAnnualReserve(obligations)
	balance := liquidity.AnnualReserveBalance(buckets)
	excess := liquidity.AnnualExcess(balance, required, scenario.Liquidity.ReserveBuffer)

	if len(obligations) > 0 {
		oblRows := make([][]string, 0, len(obligations))
		for _, o := range obligations {
			status := "due"
			if o.Paid {
				status = "paid"
			}
			oblRows = append(oblRows, []string{
				o.Name, cli.FormatMonth(o.DueMonth),
				cli.FormatMoney(o.ExpectedCost), status,
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Obligations",
			Headers: []string{"Obligation", "Due", "Cost", "Status"},
			Rows:    oblRows,
		}))
		fmt.Println()
	}

	fmt.Printf("  Annual reserve: %s of %s required, %s  (buffer %s, excess %s)\n",
		cli.FormatMoney(balance), cli.FormatMoney(required),
		cli.FormatDelta(balance, required),
		cli.FormatMoney(scenario.Liquidity.ReserveBuffer), cli.FormatMoney(excess))

	if entries := scenario.LedgerList(); len(entries) > 0 {
		fmt.Println()
		fmt.Println("  Reserve withdrawals:")
		for _, e := range entries {
			fmt.Printf("    %-20s %s  %s\n",
				e.BucketID, cli.FormatMoney(e.Amount), cli.Muted(e.Memo))
		}
	}

	if liquidity.PressureValveEligible(excess, scenario.Liquidity.ValveThreshold) {
		targets := redistributionTargets(buckets)
		plan := liquidity.RedistributionPlan(excess, targets)
		if len(plan) > 0 {
			fmt.Println()
			fmt.Println(cli.Info("  Pressure valve open, redistribution preview:"))
			for _, a := range plan {
				fmt.Printf("    %-20s %s  (%s)\n",
					a.Target, cli.FormatMoney(a.Amount), cli.FormatRatio(a.Weight))
			}
		}
	}

	// Peak-funding shield.
	shield := liquidity.PeakFundingShield(series)
	if shield.PeakTotal > 0 {
		fmt.Println()
		fmt.Printf("  Peak funding: peak %s, avg %s, absorbed %s (shield %s)\n",
			cli.FormatMoney(shield.PeakTotal), cli.FormatMoney(shield.AvgTotal),
			cli.FormatMoney(shield.AbsorbedTotal), cli.FormatRatio(shield.ShieldRatio))
		for _, name := range sortedCategories(series) {
			s := series[name]
			fmt.Printf("    %-16s %s\n", name, cli.RenderSparkline(s[:]))
		}
	}

	// Clearing workflow.
	outstanding := liquidity.OutstandingTotal(charges)
	funded := liquidity.FundedChargesTotal(charges)
	clearingBalance := liquidity.BalanceOf(buckets, liquidity.TypeClearing)
	exposure := liquidity.ClearingFloat(outstanding, funded, clearingBalance)
	integrity := liquidity.ClearingIntegrity(funded, exposure)

	fmt.Println()
	fmt.Printf("  Clearing: %s outstanding, %s funded, float %s, integrity %s\n",
		cli.FormatMoney(outstanding), cli.FormatMoney(funded),
		cli.FormatMoney(exposure), cli.FormatRatio(integrity))

	// Composite index.
	lei := liquidity.LiquidityElasticityIndex(liquidity.LEIInput{
		Buckets:          buckets,
		Obligations:      obligations,
		Charges:          charges,
		ReserveBuffer:    scenario.Liquidity.ReserveBuffer,
		SeriesByCategory: series,
	})

	fmt.Println()
	fmt.Printf("  Elasticity index  %s\n", cli.RenderScoreBar(lei.LEI, 40))
	b := lei.Breakdown
	fmt.Printf("  %s\n", cli.Muted(fmt.Sprintf(
		"reallocatable %s · constraints %s · elasticity %.2f",
		cli.FormatMoney(b.Reallocatable), cli.FormatMoney(b.Constraints), b.Elasticity)))
	fmt.Println()

	return nil
}

// redistributionTargets proposes underfunded active buckets, weighted by
// their funding gap.
func redistributionTargets(buckets []liquidity.Bucket) []liquidity.WeightedTarget {
	var targets []liquidity.WeightedTarget
	for _, b := range liquidity.ActiveBuckets(buckets, "") {
		if b.Type == liquidity.TypeLedgerReserve {
			continue
		}
		targets = append(targets, liquidity.WeightedTarget{
			Name:   b.Name,
			Weight: b.Target - b.Balance,
		})
	}
	return targets
}

func sortedCategories(series map[string][12]float64) []string {
	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
