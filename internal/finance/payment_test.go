package finance

import (
	"math"
	"testing"
)

func approx(t *testing.T, got, want, tol float64, label string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %v, want %v (±%v)", label, got, want, tol)
	}
}

func TestPmt_ZeroRateDegradesToStraightLine(t *testing.T) {
	got := Pmt(120_000, 0, 360)
	approx(t, got, 333.33, 0.01, "Pmt(120000, 0, 360)")
}

func TestPmt_GuardsBadInputs(t *testing.T) {
	cases := []struct {
		name      string
		principal float64
		rate      float64
		n         int
	}{
		{"zero principal", 0, 0.005, 360},
		{"negative principal", -100_000, 0.005, 360},
		{"zero term", 200_000, 0.005, 0},
		{"negative term", 200_000, 0.005, -12},
		{"NaN principal", math.NaN(), 0.005, 360},
		{"infinite rate", 200_000, math.Inf(1), 360},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Pmt(tc.principal, tc.rate, tc.n)
			if tc.name == "infinite rate" {
				// Rate coerces to 0, so the payment degrades to
				// straight-line rather than failing.
				approx(t, got, 200_000.0/360, 0.01, "Pmt")
				return
			}
			if got != 0 {
				t.Fatalf("Pmt(%v, %v, %d) = %v, want 0", tc.principal, tc.rate, tc.n, got)
			}
		})
	}
}

func TestSafe(t *testing.T) {
	if got := Safe(math.NaN(), 7); got != 7 {
		t.Fatalf("Safe(NaN, 7) = %v, want 7", got)
	}
	if got := Safe(math.Inf(-1), 0); got != 0 {
		t.Fatalf("Safe(-Inf, 0) = %v, want 0", got)
	}
	if got := Safe(42.5, 0); got != 42.5 {
		t.Fatalf("Safe(42.5, 0) = %v, want 42.5", got)
	}
}

func testParams(price, downPct float64) PITIParams {
	return PITIParams{
		PurchasePrice:      price,
		DownPaymentPercent: downPct,
		AnnualRatePercent:  6.5,
		TermYears:          30,
		PropertyTaxRate:    1.5,
		AnnualInsurance:    1800,
		PMIAnnualRate:      0.5,
		PMIThresholdPct:    20,
	}
}

func TestPITI_PMIThreshold(t *testing.T) {
	at20 := PITI(testParams(300_000, 20))
	if at20.PMI != 0 {
		t.Fatalf("PMI at 20%% down = %v, want 0", at20.PMI)
	}

	at10 := PITI(testParams(300_000, 10))
	if at10.PMI <= 0 {
		t.Fatalf("PMI at 10%% down = %v, want > 0", at10.PMI)
	}
	// 270k loan at 0.5%/yr
	approx(t, at10.PMI, 270_000*0.005/12, 0.01, "PMI amount")
}

func TestPITI_Components(t *testing.T) {
	r := PITI(testParams(300_000, 20))

	approx(t, r.LoanAmount, 240_000, 0.01, "loan amount")
	approx(t, r.PropertyTax, 300_000*0.015/12, 0.01, "property tax")
	approx(t, r.Insurance, 150, 0.01, "insurance")
	approx(t, r.Monthly, r.PrincipalAndInterest+r.PropertyTax+r.Insurance, 0.001, "monthly total")
}

func TestPITI_MonotonicInPrice(t *testing.T) {
	prev := PITI(testParams(50_000, 20)).Monthly
	for price := 100_000.0; price <= 2_000_000; price += 50_000 {
		cur := PITI(testParams(price, 20)).Monthly
		if cur <= prev {
			t.Fatalf("PITI at %v = %v, not greater than %v at lower price", price, cur, prev)
		}
		prev = cur
	}
}

func TestPITI_Idempotent(t *testing.T) {
	p := testParams(425_000, 15)
	first := PITI(p)
	second := PITI(p)
	if first != second {
		t.Fatalf("PITI not idempotent: %+v vs %+v", first, second)
	}
}
