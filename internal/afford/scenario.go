package afford

import "hearth/internal/finance"

// ScenarioCheck is the quick solvency screen for one property against one
// household: can the essentials survive on take-home pay, and does the
// financed payment fit inside what gross income leaves after them.
type ScenarioCheck struct {
	PrincipalAndInterest float64
	DTIPercent           float64
	RemainingBudget      float64 // gross monthly minus P&I, expenses, debts
	EssentialsCovered    bool    // expenses + debts fit within take-home
	CanAfford            bool
}

// CheckScenario screens a purchase at the given price with the household's
// actual down-payment funds applied. It is deliberately coarser than
// MaxAffordability: a yes/no gut check, not a strategy recommendation.
func CheckScenario(price float64, in FinancialInputs, a finance.Assumptions) ScenarioCheck {
	price = finance.NonNeg(finance.SafeZero(price))
	grossMonthly := finance.SafeZero(in.AnnualGrossIncome) / 12
	takeHome := finance.SafeZero(in.TakeHomeMonthly)
	if takeHome <= 0 {
		takeHome = grossMonthly * a.TakeHomePercent / 100
	}
	expenses := finance.SafeZero(in.MonthlyExpenses)
	debts := finance.SafeZero(in.MonthlyDebts)
	available := finance.NonNeg(finance.SafeZero(in.AvailableDownPayment))

	loan := finance.NonNeg(price - available)
	pi := finance.Pmt(loan, finance.SafeZero(in.InterestRate)/100/12, in.LoanTermYears*12)

	dti := dtiInvalidSentinel
	if grossMonthly > 0 {
		dti = (pi + debts) / grossMonthly * 100
	}

	remaining := grossMonthly - pi - expenses - debts
	essentials := takeHome-expenses-debts > 0

	return ScenarioCheck{
		PrincipalAndInterest: pi,
		DTIPercent:           dti,
		RemainingBudget:      remaining,
		EssentialsCovered:    essentials,
		CanAfford:            essentials && remaining > 0,
	}
}
