package afford

import "hearth/internal/finance"

// Property is a single listing being checked against a scenario.
type Property struct {
	Price           float64
	PropertyTaxRate float64 // annual percent; 0 selects the registry default
	AnnualInsurance float64 // 0 selects the registry default
	MonthlyHOA      float64
}

// PropertyAffordability scores one listing against the household profile.
// The check uses the standard quick-screen assumptions: 20% down, a
// payment ceiling at the housing share of gross income, and the DTI cap.
type PropertyAffordability struct {
	Monthly         float64
	LoanAmount      float64
	DTIPercent      float64
	DownPaymentReq  float64
	PaymentCeiling  float64
	RemainingBudget float64
	Score           float64 // 0-100 composite
	CanAfford       bool
}

// ScoreProperty computes the quick affordability screen for a listing.
// The composite score is the unweighted average of four sub-scores, each
// clamped to [0,100] before averaging: payment headroom, DTI headroom,
// down-payment sufficiency, and budget-margin sufficiency.
func ScoreProperty(prop Property, in FinancialInputs, a finance.Assumptions) PropertyAffordability {
	grossMonthly := finance.SafeZero(in.AnnualGrossIncome) / 12
	takeHome := finance.SafeZero(in.TakeHomeMonthly)
	if takeHome <= 0 {
		takeHome = grossMonthly * a.TakeHomePercent / 100
	}
	debts := finance.SafeZero(in.MonthlyDebts)
	expenses := finance.SafeZero(in.MonthlyExpenses)
	available := finance.NonNeg(finance.SafeZero(in.AvailableDownPayment))

	taxRate := orDefault(prop.PropertyTaxRate, a.PropertyTaxRate)
	insurance := orDefault(prop.AnnualInsurance, a.AnnualInsurance)

	p := finance.PITI(finance.PITIParams{
		PurchasePrice:      prop.Price,
		DownPaymentPercent: a.PMIThresholdPct, // quick screen assumes 20% down
		AnnualRatePercent:  in.InterestRate,
		TermYears:          in.LoanTermYears,
		PropertyTaxRate:    taxRate,
		AnnualInsurance:    insurance,
		MonthlyHOA:         prop.MonthlyHOA,
		PMIAnnualRate:      a.PMIAnnualRate,
		PMIThresholdPct:    a.PMIThresholdPct,
	})

	ceiling := grossMonthly * a.HousingRatioPct / 100
	required := finance.NonNeg(prop.Price) * a.PMIThresholdPct / 100

	dti := dtiInvalidSentinel
	if grossMonthly > 0 {
		dti = (p.Monthly + debts) / grossMonthly * 100
	}

	remaining := takeHome - p.Monthly - expenses - debts

	paymentScore := ratioScore(ceiling, p.Monthly)
	dtiScore := finance.Clamp((a.DTICapPercent-dti)/a.DTICapPercent*100, 0, 100)
	downScore := ratioScore(available, required)
	marginScore := finance.Clamp(remaining/marginFloorDollars*100, 0, 100)

	return PropertyAffordability{
		Monthly:         p.Monthly,
		LoanAmount:      p.LoanAmount,
		DTIPercent:      dti,
		DownPaymentReq:  required,
		PaymentCeiling:  ceiling,
		RemainingBudget: remaining,
		Score:           (paymentScore + dtiScore + downScore + marginScore) / 4,
		CanAfford: p.Monthly <= ceiling &&
			dti <= a.DTICapPercent &&
			available >= required &&
			remaining >= 0,
	}
}

// ratioScore grades how comfortably have covers need: 100 when need is
// zero, scaled down and clamped as the payment approaches the limit.
func ratioScore(have, need float64) float64 {
	if need <= 0 {
		return 100
	}
	return finance.Clamp(have/need*100, 0, 100)
}
