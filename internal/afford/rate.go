package afford

import (
	"math"

	"hearth/internal/finance"
)

// creditTiers maps credit-score floors to rate adjustments, best tier
// first. Scores below the last floor take the final (worst) adjustment.
var creditTiers = []struct {
	minScore int
	adjust   float64
}{
	{760, -0.25},
	{740, 0},
	{720, 0.25},
	{680, 0.625},
	{620, 1.25},
	{0, 2.25},
}

// EstimateRate produces a ballpark quote from a market base rate using an
// additive adjustment model: credit tier, loan term, and down-payment size.
// The result is rounded to the nearest 0.125, the usual rate-sheet step.
func EstimateRate(creditScore, termYears int, downPaymentPct, marketBaseRate float64) float64 {
	rate := finance.SafeZero(marketBaseRate)

	for _, tier := range creditTiers {
		if creditScore >= tier.minScore {
			rate += tier.adjust
			break
		}
	}

	switch {
	case termYears <= 15:
		rate -= 0.5
	case termYears <= 20:
		rate -= 0.25
	}

	downPaymentPct = finance.SafeZero(downPaymentPct)
	switch {
	case downPaymentPct >= 20:
		// no adjustment
	case downPaymentPct >= 10:
		rate += 0.125
	case downPaymentPct >= 5:
		rate += 0.25
	default:
		rate += 0.375
	}

	return finance.NonNeg(math.Round(rate*8) / 8)
}
