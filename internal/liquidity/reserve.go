package liquidity

// Obligation is an annual recurring cost tracked against the reserve.
// Only unpaid obligations count toward the requirement; this is a
// point-in-time snapshot that shrinks as obligations are marked paid
// across the year.
type Obligation struct {
	Name         string
	ExpectedCost float64
	DueMonth     int // 1-12
	Paid         bool
}

// RequiredAnnualReserve sums the expected cost of unpaid obligations.
func RequiredAnnualReserve(obligations []Obligation) float64 {
	var sum float64
	for _, o := range obligations {
		if !o.Paid {
			sum += o.ExpectedCost
		}
	}
	return sum
}

// AnnualReserveBalance sums the balances of active ledger_reserve buckets.
func AnnualReserveBalance(buckets []Bucket) float64 {
	return BalanceOf(buckets, TypeLedgerReserve)
}

// AnnualExcess is the reserve above both the hard requirement and the
// safety buffer. Excess only exists past both.
func AnnualExcess(balance, required, buffer float64) float64 {
	excess := balance - (required + buffer)
	if excess < 0 {
		return 0
	}
	return excess
}

// PressureValveEligible reports whether excess is large enough to trigger
// a redistribution event. Strictly greater: landing exactly on the
// threshold never triggers.
func PressureValveEligible(excess, threshold float64) bool {
	return excess > threshold
}

// Allocation is one target's share of a redistribution.
type Allocation struct {
	Target string
	Weight float64
	Amount float64
}

// WeightedTarget names a destination and its relative share.
type WeightedTarget struct {
	Name   string
	Weight float64
}

// RedistributionPlan splits excess across targets in proportion to their
// positive weights. Nonpositive weights are excluded entirely, including
// from the denominator. The returned amounts sum to the excess (within
// float tolerance); the plan is empty when excess is nonpositive or no
// target has positive weight.
func RedistributionPlan(excess float64, targets []WeightedTarget) []Allocation {
	if excess <= 0 {
		return nil
	}

	var totalWeight float64
	for _, t := range targets {
		if t.Weight > 0 {
			totalWeight += t.Weight
		}
	}
	if totalWeight <= 0 {
		return nil
	}

	plan := make([]Allocation, 0, len(targets))
	for _, t := range targets {
		if t.Weight <= 0 {
			continue
		}
		plan = append(plan, Allocation{
			Target: t.Name,
			Weight: t.Weight / totalWeight,
			Amount: excess * t.Weight / totalWeight,
		})
	}
	return plan
}
