package finance

import "math"

// Pmt computes the fixed monthly payment that amortizes principal over n
// payments at the given monthly rate. A zero rate degrades to straight-line
// principal/n. Nonpositive principal or term yields 0 rather than an error.
func Pmt(principal, monthlyRate float64, n int) float64 {
	principal = SafeZero(principal)
	monthlyRate = SafeZero(monthlyRate)

	if n <= 0 || principal <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return principal / float64(n)
	}

	growth := math.Pow(1+monthlyRate, float64(n))
	return principal * monthlyRate * growth / (growth - 1)
}

// PITIParams describes one monthly-payment computation. The down payment is
// a percentage of the purchase price, not an absolute, so the function stays
// purchase-price-relative and composes with the price solvers.
type PITIParams struct {
	PurchasePrice      float64
	DownPaymentPercent float64
	AnnualRatePercent  float64
	TermYears          int
	PropertyTaxRate    float64 // annual, percent of price
	AnnualInsurance    float64
	MonthlyHOA         float64
	PMIAnnualRate      float64 // percent of loan, charged below PMIThreshold
	PMIThresholdPct    float64 // down-payment percent at which PMI drops off
}

// PITIResult is the monthly payment broken into its components.
type PITIResult struct {
	Monthly              float64
	PrincipalAndInterest float64
	PropertyTax          float64
	Insurance            float64
	HOA                  float64
	PMI                  float64
	LoanAmount           float64
}

// PITI bundles principal and interest with monthly property tax, insurance,
// HOA, and PMI when the down payment is under the PMI threshold.
func PITI(p PITIParams) PITIResult {
	price := NonNeg(SafeZero(p.PurchasePrice))
	downPct := Clamp(SafeZero(p.DownPaymentPercent), 0, 100)
	rate := SafeZero(p.AnnualRatePercent)

	loan := NonNeg(price * (1 - downPct/100))

	r := PITIResult{
		LoanAmount:           loan,
		PrincipalAndInterest: Pmt(loan, rate/100/12, p.TermYears*12),
		PropertyTax:          price * SafeZero(p.PropertyTaxRate) / 100 / 12,
		Insurance:            NonNeg(SafeZero(p.AnnualInsurance)) / 12,
		HOA:                  NonNeg(SafeZero(p.MonthlyHOA)),
	}

	if downPct < p.PMIThresholdPct && loan > 0 {
		r.PMI = loan * SafeZero(p.PMIAnnualRate) / 100 / 12
	}

	r.Monthly = r.PrincipalAndInterest + r.PropertyTax + r.Insurance + r.HOA + r.PMI
	return r
}
