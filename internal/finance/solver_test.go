package finance

import (
	"math"
	"testing"
)

func testTerms() Terms {
	return Terms{
		AnnualRatePercent: 6.5,
		TermYears:         30,
		PropertyTaxRate:   1.5,
		AnnualInsurance:   1800,
		PMIAnnualRate:     0.5,
		PMIThresholdPct:   20,
	}
}

func TestSolvePrice_FixedPercentHitsBudget(t *testing.T) {
	terms := testTerms()
	budget := 2400.0

	price := SolvePrice(budget, terms, FixedPercent(20))
	if price <= 0 {
		t.Fatalf("solved price = %v, want > 0", price)
	}

	monthly := PITI(PITIParams{
		PurchasePrice:      price,
		DownPaymentPercent: 20,
		AnnualRatePercent:  terms.AnnualRatePercent,
		TermYears:          terms.TermYears,
		PropertyTaxRate:    terms.PropertyTaxRate,
		AnnualInsurance:    terms.AnnualInsurance,
		PMIAnnualRate:      terms.PMIAnnualRate,
		PMIThresholdPct:    terms.PMIThresholdPct,
	}).Monthly

	// Convergence tolerance is $1,000 of price, roughly $10 of payment.
	if math.Abs(monthly-budget) > 25 {
		t.Fatalf("PITI at solved price = %v, want ≈ %v", monthly, budget)
	}
}

func TestSolvePrice_CappedFundsBracketsBudget(t *testing.T) {
	terms := testTerms()
	budget := 2400.0

	price := SolvePrice(budget, terms, CappedFunds(100_000, 20))
	if price <= 0 {
		t.Fatalf("solved price = %v, want > 0", price)
	}

	pitiAt := func(p float64) float64 {
		down := math.Min(100_000, p*0.20)
		return PITI(PITIParams{
			PurchasePrice:      p,
			DownPaymentPercent: down / p * 100,
			AnnualRatePercent:  terms.AnnualRatePercent,
			TermYears:          terms.TermYears,
			PropertyTaxRate:    terms.PropertyTaxRate,
			AnnualInsurance:    terms.AnnualInsurance,
			PMIAnnualRate:      terms.PMIAnnualRate,
			PMIThresholdPct:    terms.PMIThresholdPct,
		}).Monthly
	}

	if got := pitiAt(price); got > budget {
		t.Fatalf("PITI at solved price = %v, exceeds budget %v", got, budget)
	}
	if got := pitiAt(price + 2*binarySearchBracket); got <= budget {
		t.Fatalf("PITI just above solved price = %v, want > budget %v", got, budget)
	}
}

func TestSolvePrice_NonpositiveBudget(t *testing.T) {
	terms := testTerms()
	for _, budget := range []float64{0, -500, math.NaN()} {
		if got := SolvePrice(budget, terms, FixedPercent(20)); got != 0 {
			t.Fatalf("SolvePrice(budget=%v) = %v, want 0", budget, got)
		}
		if got := SolvePrice(budget, terms, CappedFunds(50_000, 20)); got != 0 {
			t.Fatalf("SolvePrice(capped, budget=%v) = %v, want 0", budget, got)
		}
	}
}

func TestSolvePrice_TinyBudgetShrinksInsteadOfDiverging(t *testing.T) {
	terms := testTerms()
	// $160/mo cannot even cover insurance plus tax at the starting
	// estimate; the solver must shrink and still terminate.
	price := SolvePrice(160, terms, FixedPercent(20))
	if price < 0 {
		t.Fatalf("solved price = %v, want >= 0", price)
	}
	if price > fixedPointStart {
		t.Fatalf("solved price = %v for a tiny budget, want well under the start estimate", price)
	}
}

func TestSolvePrice_PathologicalInputsTerminate(t *testing.T) {
	// Negative rates, zero terms, absurd tax rates: the caps guarantee
	// termination and the result must still be usable.
	cases := []Terms{
		{AnnualRatePercent: -5, TermYears: 30, PropertyTaxRate: 1.5, AnnualInsurance: 1800},
		{AnnualRatePercent: 6.5, TermYears: 0, PropertyTaxRate: 1.5, AnnualInsurance: 1800},
		{AnnualRatePercent: 6.5, TermYears: 30, PropertyTaxRate: 95, AnnualInsurance: 1800},
	}
	for _, terms := range cases {
		got := SolvePrice(2000, terms, FixedPercent(20))
		if math.IsNaN(got) || math.IsInf(got, 0) || got < 0 {
			t.Fatalf("SolvePrice(%+v) = %v, want a finite nonnegative price", terms, got)
		}
	}
}

func TestSolvePrice_Idempotent(t *testing.T) {
	terms := testTerms()
	first := SolvePrice(2400, terms, CappedFunds(80_000, 20))
	second := SolvePrice(2400, terms, CappedFunds(80_000, 20))
	if first != second {
		t.Fatalf("SolvePrice not idempotent: %v vs %v", first, second)
	}
}
