package afford

import (
	"fmt"

	"hearth/internal/finance"
)

// Advisory thresholds. These are user-facing product judgment, kept as
// named constants so the strings and the numbers cannot drift apart.
const (
	dtiWarnPercent     = 40.0
	marginFloorDollars = 1000.0
	pricePerMarginUSD  = 200.0 // ≈ $200 of home price per $1 of monthly margin
)

// adviceFor generates the constraint and opportunity messages for a result.
// The strings are advisory text, not load-bearing numbers, but the
// thresholds behind them are part of the behavioral contract.
func adviceFor(r Result, strategy Strategy, effectiveDownPct float64, a finance.Assumptions) (constraints, opportunities []string) {
	if r.DTIPercent > dtiWarnPercent && r.DTIPercent < dtiInvalidSentinel {
		constraints = append(constraints, fmt.Sprintf(
			"Debt-to-income ratio of %.0f%% is above the %.0f%% comfort line; lenders may price this loan higher.",
			r.DTIPercent, dtiWarnPercent))
	}
	if r.GrossMonthlyIncome <= 0 {
		constraints = append(constraints,
			"No income entered yet, so every ratio here is a placeholder.")
	}
	if r.RemainingBudget < 0 {
		constraints = append(constraints, fmt.Sprintf(
			"This payment overruns your monthly budget by $%.0f.", -r.RemainingBudget))
	}
	if r.DownPayment.Status == StatusShortfall {
		constraints = append(constraints, fmt.Sprintf(
			"Down payment is $%.0f short of the target, capping the price at $%.0f.",
			r.DownPayment.ShortfallAmount, r.MaxPurchasePrice))
	}
	if r.PMIMonthly > 0 {
		constraints = append(constraints, fmt.Sprintf(
			"With %.1f%% down, PMI applies below %.0f%%, adding $%.0f/mo.",
			effectiveDownPct, a.PMIThresholdPct, r.PMIMonthly))
	}

	if r.RemainingBudget > marginFloorDollars {
		opportunities = append(opportunities, fmt.Sprintf(
			"With $%.0f/mo of margin you could afford roughly $%.0f more home.",
			r.RemainingBudget, r.RemainingBudget*pricePerMarginUSD))
	}
	if r.DownPayment.Status == StatusExcess {
		switch strategy {
		case StrategyReducePayment:
			opportunities = append(opportunities, fmt.Sprintf(
				"Putting the extra $%.0f down drops the payment to $%.0f/mo.",
				r.DownPayment.ExcessAmount, r.ActualMonthlyPayment))
		case StrategyIncreasePrice:
			opportunities = append(opportunities, fmt.Sprintf(
				"The extra $%.0f stretches the price to $%.0f.",
				r.DownPayment.ExcessAmount, r.MaxPurchasePrice))
		default:
			opportunities = append(opportunities, fmt.Sprintf(
				"You keep $%.0f in reserve after the down payment.",
				r.DownPayment.ExcessAmount))
		}
	}
	return constraints, opportunities
}
