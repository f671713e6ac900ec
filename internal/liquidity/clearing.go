package liquidity

// ChargeState is the lifecycle of a tracked credit-card transaction:
// unmatched → matched_unfunded → funded → cleared, or unmatched → ignored.
// Transitions happen in the calling application; the engine only reads the
// current state to compute aggregate exposure.
type ChargeState string

const (
	ChargeUnmatched       ChargeState = "unmatched"
	ChargeMatchedUnfunded ChargeState = "matched_unfunded"
	ChargeFunded          ChargeState = "funded"
	ChargeCleared         ChargeState = "cleared"
	ChargeIgnored         ChargeState = "ignored"
)

// Charge is one tracked credit-card transaction.
type Charge struct {
	ID     string
	Memo   string
	Amount float64
	State  ChargeState
}

// OutstandingTotal sums charges still in flight: everything except
// ignored and cleared.
func OutstandingTotal(charges []Charge) float64 {
	var sum float64
	for _, c := range charges {
		if c.State == ChargeIgnored || c.State == ChargeCleared {
			continue
		}
		sum += c.Amount
	}
	return sum
}

// FundedChargesTotal sums charges that have money set aside: funded or
// already cleared.
func FundedChargesTotal(charges []Charge) float64 {
	var sum float64
	for _, c := range charges {
		if c.State == ChargeFunded || c.State == ChargeCleared {
			sum += c.Amount
		}
	}
	return sum
}

// ClearingFloat is the unfunded exposure the clearing bucket cannot
// currently cover: outstanding minus funded minus the bucket balance,
// floored at zero.
func ClearingFloat(outstanding, funded, clearingBucketBalance float64) float64 {
	float := outstanding - funded - clearingBucketBalance
	if float < 0 {
		return 0
	}
	return float
}

// ClearingIntegrity grades charge-clearing health in [0,1]. Nothing
// outstanding is trivially clean (1.0), as is zero exposure; otherwise the
// funded share of funded-plus-exposure.
func ClearingIntegrity(funded, exposure float64) float64 {
	if funded <= 0 && exposure <= 0 {
		return 1
	}
	if exposure <= 0 {
		return 1
	}
	v := funded / (funded + exposure)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
