package finance

import "math"

// Solver bounds. Both loops are capped by iteration count, not just by
// convergence, so pathological inputs still terminate.
const (
	fixedPointStart     = 400_000.0
	fixedPointMaxIter   = 50
	fixedPointTolerance = 1_000.0
	binarySearchCeiling = 5_000_000.0
	binarySearchMaxIter = 60
	binarySearchBracket = 100.0
)

// Terms holds the loan terms shared by both price-solving strategies.
type Terms struct {
	AnnualRatePercent float64
	TermYears         int
	PropertyTaxRate   float64 // annual, percent of price
	AnnualInsurance   float64
	MonthlyHOA        float64
	PMIAnnualRate     float64
	PMIThresholdPct   float64
}

// DownPaymentRule selects how the down payment scales with the candidate
// price. There is one solver; the rule is the only thing that varies.
type DownPaymentRule struct {
	// fixed percent of price when capped is false
	percent float64

	// capped: down payment = min(available, price × capPct/100)
	capped    bool
	available float64
	capPct    float64
}

// FixedPercent keeps the down payment at a constant share of the price.
func FixedPercent(pct float64) DownPaymentRule {
	return DownPaymentRule{percent: Clamp(SafeZero(pct), 0, 99)}
}

// CappedFunds limits the down payment to available cash, never exceeding
// capPct of the price.
func CappedFunds(available, capPct float64) DownPaymentRule {
	return DownPaymentRule{
		capped:    true,
		available: NonNeg(SafeZero(available)),
		capPct:    Clamp(SafeZero(capPct), 0, 99),
	}
}

// SolvePrice finds the purchase price whose PITI matches the monthly budget
// under the given terms and down-payment rule. A fixed-percent rule uses
// fixed-point iteration on the inverse annuity; a capped rule makes the
// down-payment percent price-dependent, so the solver bisects instead
// (PITI is non-decreasing in price, which makes bisection sound).
// A nonpositive budget yields a price of 0.
func SolvePrice(monthlyBudget float64, t Terms, rule DownPaymentRule) float64 {
	monthlyBudget = SafeZero(monthlyBudget)
	if monthlyBudget <= 0 {
		return 0
	}
	if rule.capped {
		return solveByBisection(monthlyBudget, t, rule)
	}
	return solveByFixedPoint(monthlyBudget, t, rule.percent)
}

func solveByFixedPoint(budget float64, t Terms, downPct float64) float64 {
	financedShare := 1 - downPct/100
	if financedShare <= 0 {
		return 0
	}

	est := fixedPointStart
	for i := 0; i < fixedPointMaxIter; i++ {
		carrying := est*SafeZero(t.PropertyTaxRate)/100/12 +
			NonNeg(SafeZero(t.AnnualInsurance))/12 +
			NonNeg(SafeZero(t.MonthlyHOA))

		piBudget := budget - carrying
		if piBudget <= 0 {
			// Carrying costs at this estimate already exceed the budget.
			// Shrink and retry instead of letting the loan go negative.
			est *= 0.8
			continue
		}

		loan := loanForPayment(piBudget, SafeZero(t.AnnualRatePercent)/100/12, t.TermYears*12)
		next := loan / financedShare

		if math.Abs(next-est) < fixedPointTolerance {
			return NonNeg(next)
		}
		est = next
	}
	return NonNeg(est)
}

func solveByBisection(budget float64, t Terms, rule DownPaymentRule) float64 {
	lo, hi := 0.0, binarySearchCeiling

	for i := 0; i < binarySearchMaxIter && hi-lo > binarySearchBracket; i++ {
		mid := (lo + hi) / 2

		down := math.Min(rule.available, mid*rule.capPct/100)
		downPct := 0.0
		if mid > 0 {
			downPct = down / mid * 100
		}

		monthly := PITI(PITIParams{
			PurchasePrice:      mid,
			DownPaymentPercent: downPct,
			AnnualRatePercent:  t.AnnualRatePercent,
			TermYears:          t.TermYears,
			PropertyTaxRate:    t.PropertyTaxRate,
			AnnualInsurance:    t.AnnualInsurance,
			MonthlyHOA:         t.MonthlyHOA,
			PMIAnnualRate:      t.PMIAnnualRate,
			PMIThresholdPct:    t.PMIThresholdPct,
		}).Monthly

		if monthly > budget {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo
}

// loanForPayment inverts the annuity formula: the largest loan a fixed
// monthly payment can amortize at the given rate and term.
func loanForPayment(payment, monthlyRate float64, n int) float64 {
	if n <= 0 || payment <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return payment * float64(n)
	}
	growth := math.Pow(1+monthlyRate, float64(n))
	return payment * (growth - 1) / (monthlyRate * growth)
}
