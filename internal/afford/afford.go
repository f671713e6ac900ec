// Package afford turns a household financial profile into a recommended
// purchase price, payment, and down-payment strategy outcome.
package afford

import (
	"hearth/internal/finance"
)

// Strategy chooses what to do with down-payment funds beyond the target.
type Strategy string

const (
	StrategySave          Strategy = "save"
	StrategyReducePayment Strategy = "reduce-payment"
	StrategyIncreasePrice Strategy = "increase-price"
)

// DownPaymentStatus classifies available funds against the required down
// payment for the ideal price.
type DownPaymentStatus string

const (
	StatusOnTarget  DownPaymentStatus = "on-target"
	StatusExcess    DownPaymentStatus = "excess"
	StatusShortfall DownPaymentStatus = "shortfall"
)

// FinancialInputs is one scenario's household profile. Zero values on the
// optional fields select the registry defaults.
type FinancialInputs struct {
	AnnualGrossIncome    float64
	MonthlyExpenses      float64
	MonthlyDebts         float64 // fixed debt payments
	AvailableDownPayment float64
	InterestRate         float64 // annual percent
	LoanTermYears        int

	// Optional overrides.
	HousingPercent        float64  // livability share of take-home
	DownPaymentPercent    float64  // target down payment, percent of price
	PropertyTaxRate       float64  // annual percent of price
	TakeHomeMonthly       float64  // precomputed itemized take-home, preferred over the flat estimate
	FutureMonthlyIncome   float64
	FutureMonthlyExpenses float64
	ExcessStrategy        Strategy // "" means save
}

// DownPaymentOutcome reports the gap classification and the funds actually
// committed under the chosen strategy.
type DownPaymentOutcome struct {
	Status          DownPaymentStatus
	Required        float64
	Available       float64
	Used            float64
	ExcessAmount    float64
	ShortfallAmount float64
}

// Result is a fresh value on every call; nothing in it is reused or mutated.
type Result struct {
	MaxPurchasePrice     float64 // final price after strategy resolution
	IdealPurchasePrice   float64 // price the payment budget alone supports
	MaxMonthlyPayment    float64
	ActualMonthlyPayment float64
	LoanAmount           float64
	PrincipalAndInterest float64
	PropertyTaxMonthly   float64
	InsuranceMonthly     float64
	PMIMonthly           float64

	GrossMonthlyIncome float64
	TakeHomeMonthly    float64
	DTIPercent         float64
	RemainingBudget    float64

	DownPayment   DownPaymentOutcome
	Constraints   []string
	Opportunities []string
}

// dtiInvalidSentinel is returned as the DTI when gross income is zero, so
// the error state is impossible to mistake for a healthy ratio.
const dtiInvalidSentinel = 1000.0

// MaxAffordability runs the five-stage pipeline: income normalization, the
// most-conservative-wins payment ceiling, iterative ideal-price solving,
// down-payment gap classification, and strategy-dependent final resolution.
func MaxAffordability(in FinancialInputs, a finance.Assumptions) Result {
	housingPct := orDefault(in.HousingPercent, a.HousingRatioPct)
	downPct := orDefault(in.DownPaymentPercent, a.PMIThresholdPct)
	taxRate := orDefault(in.PropertyTaxRate, a.PropertyTaxRate)

	// Stage 1: income normalization. Itemized take-home wins when the
	// caller computed one; the flat estimate is a fallback only.
	grossMonthly := finance.SafeZero(in.AnnualGrossIncome)/12 +
		finance.SafeZero(in.FutureMonthlyIncome)
	takeHome := finance.SafeZero(in.TakeHomeMonthly)
	if takeHome <= 0 {
		takeHome = grossMonthly * a.TakeHomePercent / 100
	}

	expenses := finance.SafeZero(in.MonthlyExpenses)
	debts := finance.SafeZero(in.MonthlyDebts)
	available := finance.NonNeg(finance.SafeZero(in.AvailableDownPayment))

	// Stage 2: the binding payment ceiling is the minimum of three
	// independent limits, so no single generous assumption can override a
	// tighter real constraint.
	dtiCeiling := grossMonthly*a.DTICapPercent/100 - debts
	livabilityCeiling := takeHome * housingPct / 100
	residualCeiling := takeHome - expenses - debts
	maxPayment := finance.NonNeg(min3(dtiCeiling, livabilityCeiling, residualCeiling))

	terms := finance.Terms{
		AnnualRatePercent: in.InterestRate,
		TermYears:         in.LoanTermYears,
		PropertyTaxRate:   taxRate,
		AnnualInsurance:   a.AnnualInsurance,
		PMIAnnualRate:     a.PMIAnnualRate,
		PMIThresholdPct:   a.PMIThresholdPct,
	}

	// Stage 3: ideal price from the payment budget alone.
	idealPrice := finance.SolvePrice(maxPayment, terms, finance.FixedPercent(downPct))

	// Stage 4: classify the down-payment gap inside a tolerance band so
	// rounding noise near the boundary cannot flap the status.
	outcome := classifyDownPayment(idealPrice, downPct, available, a.ExcessTolerancePct)

	// Stage 5: resolve the final price and payment per strategy. The price
	// may differ from stage 3, so everything is recomputed from scratch.
	strategy := in.ExcessStrategy
	if strategy == "" {
		strategy = StrategySave
	}
	finalPrice, finalDownPct := resolveStrategy(idealPrice, downPct, strategy, &outcome)

	p := finance.PITI(finance.PITIParams{
		PurchasePrice:      finalPrice,
		DownPaymentPercent: finalDownPct,
		AnnualRatePercent:  terms.AnnualRatePercent,
		TermYears:          terms.TermYears,
		PropertyTaxRate:    terms.PropertyTaxRate,
		AnnualInsurance:    terms.AnnualInsurance,
		PMIAnnualRate:      terms.PMIAnnualRate,
		PMIThresholdPct:    terms.PMIThresholdPct,
	})

	actualPayment := p.Monthly
	if outcome.Status == StatusOnTarget ||
		(outcome.Status == StatusExcess && strategy == StrategySave) {
		// The price still equals the ideal here, so the payment is the
		// budget ceiling by construction; the solver only converges to
		// within its tolerance, so the ceiling stays the contract number.
		if actualPayment > maxPayment {
			actualPayment = maxPayment
		}
	}

	dti := dtiInvalidSentinel
	if grossMonthly > 0 {
		dti = (actualPayment + debts) / grossMonthly * 100
	}

	remaining := takeHome - actualPayment - expenses - debts -
		finance.SafeZero(in.FutureMonthlyExpenses)

	r := Result{
		MaxPurchasePrice:     finalPrice,
		IdealPurchasePrice:   idealPrice,
		MaxMonthlyPayment:    maxPayment,
		ActualMonthlyPayment: actualPayment,
		LoanAmount:           p.LoanAmount,
		PrincipalAndInterest: p.PrincipalAndInterest,
		PropertyTaxMonthly:   p.PropertyTax,
		InsuranceMonthly:     p.Insurance,
		PMIMonthly:           p.PMI,
		GrossMonthlyIncome:   grossMonthly,
		TakeHomeMonthly:      takeHome,
		DTIPercent:           dti,
		RemainingBudget:      remaining,
		DownPayment:          outcome,
	}
	r.Constraints, r.Opportunities = adviceFor(r, strategy, finalDownPct, a)
	return r
}

func classifyDownPayment(idealPrice, downPct, available, tolerancePct float64) DownPaymentOutcome {
	required := finance.NonNeg(idealPrice * downPct / 100)
	tolerance := required * tolerancePct / 100

	out := DownPaymentOutcome{
		Required:  required,
		Available: available,
	}

	switch {
	case available < required-tolerance:
		out.Status = StatusShortfall
		out.ShortfallAmount = required - available
	case available > required+tolerance:
		out.Status = StatusExcess
		out.ExcessAmount = available - required
	default:
		out.Status = StatusOnTarget
	}
	return out
}

// resolveStrategy picks the final price and the effective down-payment
// percent at that price, and records the funds actually committed.
func resolveStrategy(idealPrice, downPct float64, strategy Strategy, out *DownPaymentOutcome) (price, effectivePct float64) {
	switch {
	case out.Status == StatusShortfall:
		// The household cannot reach the ideal price; the affordable price
		// shrinks to what the available funds buy at the target percent.
		if downPct <= 0 {
			out.Used = 0
			return 0, 0
		}
		out.Used = out.Available
		return out.Available / (downPct / 100), downPct

	case out.Status == StatusExcess && strategy == StrategyIncreasePrice:
		price = idealPrice + out.ExcessAmount
		out.Used = out.Available
		return price, pctOf(out.Available, price)

	case out.Status == StatusExcess && strategy == StrategyReducePayment:
		out.Used = out.Available
		return idealPrice, pctOf(out.Available, idealPrice)

	case out.Status == StatusExcess: // save: surplus stays unspent
		out.Used = out.Required
		return idealPrice, downPct

	default: // on-target
		out.Used = out.Available
		return idealPrice, downPct
	}
}

func pctOf(amount, price float64) float64 {
	if price <= 0 {
		return 0
	}
	return finance.Clamp(amount/price*100, 0, 100)
}

func orDefault(v, def float64) float64 {
	v = finance.SafeZero(v)
	if v <= 0 {
		return def
	}
	return v
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
