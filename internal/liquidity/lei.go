package liquidity

import "hearth/internal/finance"

// LEI factor weights and the division guard for zero constraints.
const (
	leiElasticityWeight = 0.60
	leiShieldWeight     = 0.20
	leiClearingWeight   = 0.20
	defaultEpsilon      = 0.01
)

// LEIInput bundles everything the composite index reads.
type LEIInput struct {
	Buckets          []Bucket
	Obligations      []Obligation
	Charges          []Charge
	ReserveBuffer    float64 // safety margin above the required reserve
	SeriesByCategory map[string][12]float64
	Epsilon          float64 // zero selects the default guard
}

// LEIBreakdown exposes every intermediate so consumers can explain the
// final number.
type LEIBreakdown struct {
	SoftLiquidity     float64 // active smoothing balances
	AnnualExcess      float64
	Reallocatable     float64 // soft liquidity + annual excess
	RequiredReserve   float64
	ClearingFloat     float64
	Constraints       float64 // required reserve + clearing float
	Elasticity        float64 // reallocatable / (constraints + epsilon)
	ElasticityNorm    float64 // elasticity / (elasticity + 1), in [0,1)
	VolatilityShield  float64
	ClearingIntegrity float64
}

// LEIResult is the composite index with its factor breakdown.
type LEIResult struct {
	LEI       float64 // 0-100
	Breakdown LEIBreakdown
}

// LiquidityElasticityIndex blends reallocatable liquidity against committed
// constraints with volatility-shielding and charge-clearing health into a
// single 0-100 flexibility score. The elasticity ratio is unbounded, so it
// is normalized through e/(e+1) rather than hard-clamped; the weighted
// blend is then clamped to [0,1] and scaled.
func LiquidityElasticityIndex(in LEIInput) LEIResult {
	eps := in.Epsilon
	if eps <= 0 {
		eps = defaultEpsilon
	}

	var b LEIBreakdown
	b.SoftLiquidity = BalanceOf(in.Buckets, TypeSmoothing)
	b.RequiredReserve = RequiredAnnualReserve(in.Obligations)
	b.AnnualExcess = AnnualExcess(AnnualReserveBalance(in.Buckets), b.RequiredReserve, in.ReserveBuffer)
	b.Reallocatable = b.SoftLiquidity + b.AnnualExcess

	outstanding := OutstandingTotal(in.Charges)
	funded := FundedChargesTotal(in.Charges)
	clearingBalance := BalanceOf(in.Buckets, TypeClearing)
	b.ClearingFloat = ClearingFloat(outstanding, funded, clearingBalance)
	b.ClearingIntegrity = ClearingIntegrity(funded, b.ClearingFloat)

	b.Constraints = b.RequiredReserve + b.ClearingFloat
	b.Elasticity = b.Reallocatable / (b.Constraints + eps)
	b.ElasticityNorm = b.Elasticity / (b.Elasticity + 1)

	b.VolatilityShield = PeakFundingShield(in.SeriesByCategory).ShieldRatio

	blend := leiElasticityWeight*b.ElasticityNorm +
		leiShieldWeight*b.VolatilityShield +
		leiClearingWeight*b.ClearingIntegrity

	return LEIResult{
		LEI:       100 * finance.Clamp(blend, 0, 1),
		Breakdown: b,
	}
}
