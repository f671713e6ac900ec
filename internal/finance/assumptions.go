package finance

// Assumptions is the single registry of policy constants used across the
// engines. Call sites must take these as inputs rather than hardcoding
// their own copies; overrides come in through the config layer.
type Assumptions struct {
	PropertyTaxRate float64 // annual, percent of purchase price
	AnnualInsurance float64 // dollars per year
	PMIAnnualRate   float64 // percent of loan
	PMIThresholdPct float64 // down-payment percent at which PMI drops off

	DTICapPercent      float64 // lender debt-to-income ceiling
	HousingRatioPct    float64 // gross-income share for a single property check
	TakeHomePercent    float64 // flat take-home fallback when no itemized withholding
	ExcessTolerancePct float64 // down-payment status band, percent of required

	Withholding Withholding
}

// Withholding holds the per-paycheck deduction percentages used by the
// itemized take-home calculation.
type Withholding struct {
	IncomeTaxPct  float64
	RetirementPct float64
	HealthcarePct float64
	HSAPct        float64
}

// TotalPct is the combined withholding share of gross income.
func (w Withholding) TotalPct() float64 {
	return w.IncomeTaxPct + w.RetirementPct + w.HealthcarePct + w.HSAPct
}

// MonthlyTakeHome applies the itemized withholding to a gross monthly
// income. This is the canonical take-home figure; the flat TakeHomePercent
// estimate is only for callers that never saw the paycheck breakdown.
func (a Assumptions) MonthlyTakeHome(grossMonthly float64) float64 {
	return NonNeg(SafeZero(grossMonthly) * (1 - a.Withholding.TotalPct()/100))
}

// DefaultAssumptions returns the standard policy constants.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		PropertyTaxRate:    1.5,
		AnnualInsurance:    1800,
		PMIAnnualRate:      0.5,
		PMIThresholdPct:    20,
		DTICapPercent:      43,
		HousingRatioPct:    28,
		TakeHomePercent:    70,
		ExcessTolerancePct: 5,
		Withholding: Withholding{
			IncomeTaxPct:  22,
			RetirementPct: 6,
			HealthcarePct: 2,
			HSAPct:        1,
		},
	}
}
