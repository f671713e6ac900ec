package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"

	"hearth/internal/liquidity"
)

func TestScenarioRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.toml")

	in := Scenario{
		Financial: FinancialSection{
			AnnualGrossIncome:    95_000,
			MonthlyExpenses:      2_400,
			MonthlyDebts:         350,
			AvailableDownPayment: 60_000,
			InterestRate:         6.5,
			LoanTermYears:        30,
			ExcessStrategy:       "reduce-payment",
		},
		Rehearsal: RehearsalSection{
			Mode: "offer", Buffer: 70, Lifestyle: 60, Risk: 40,
			Finance: 55, Deal: 65, Attach: 45, Lev: 50,
			Deadline: true,
		},
		Liquidity: LiquiditySection{
			ReserveBuffer:  200,
			ValveThreshold: 500,
			Series:         map[string][]float64{"utilities": {100, 100, 220}},
		},
		Buckets: []BucketSection{
			{ID: "b1", Name: "rainy day", Type: "smoothing", Balance: 3_000},
		},
		Obligations: []ObligationSection{
			{Name: "property tax", ExpectedCost: 4_800, DueMonth: 11},
		},
		Charges: []ChargeSection{
			{ID: "c1", Amount: 250, State: "funded"},
		},
		Ledger: []LedgerSection{
			{BucketID: "r1", Amount: 600, Memo: "q3 property tax installment"},
		},
	}

	if err := SaveScenario(path, in); err != nil {
		t.Fatalf("SaveScenario: %v", err)
	}
	got, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}

	if got.Financial != in.Financial {
		t.Fatalf("financial section changed across round trip:\n%+v\n%+v", got.Financial, in.Financial)
	}
	if got.Rehearsal != in.Rehearsal {
		t.Fatalf("rehearsal section changed across round trip:\n%+v\n%+v", got.Rehearsal, in.Rehearsal)
	}
	if len(got.Buckets) != 1 || got.Buckets[0] != in.Buckets[0] {
		t.Fatalf("buckets changed across round trip: %+v", got.Buckets)
	}
	if len(got.Liquidity.Series["utilities"]) != 3 {
		t.Fatalf("series changed across round trip: %+v", got.Liquidity.Series)
	}
	if len(got.Ledger) != 1 || got.Ledger[0] != in.Ledger[0] {
		t.Fatalf("ledger changed across round trip: %+v", got.Ledger)
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected an error for a missing scenario file")
	}
}

func TestLoadScenario_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[financial\nincome = "), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScenario(path); err == nil {
		t.Fatal("expected a parse error for malformed TOML")
	}
}

func TestScenario_EngineConversions(t *testing.T) {
	s := Scenario{
		Financial: FinancialSection{
			AnnualGrossIncome: 80_000,
			ExcessStrategy:    "increase-price",
		},
		Rehearsal: RehearsalSection{
			Buffer: 70, Deadline: true, InfoGap: true,
		},
		Buckets: []BucketSection{
			{ID: "b1", Name: "checking", Type: "operating", Balance: 500},
			{ID: "b2", Name: "old pot", Type: "smoothing", Status: "dormant", Balance: 900},
		},
		Charges: []ChargeSection{
			{ID: "c1", Amount: 120, State: "matched_unfunded"},
		},
	}

	in := s.FinancialInputs()
	if in.AnnualGrossIncome != 80_000 {
		t.Fatalf("income = %v, want 80000", in.AnnualGrossIncome)
	}
	if string(in.ExcessStrategy) != "increase-price" {
		t.Fatalf("strategy = %s, want increase-price", in.ExcessStrategy)
	}

	sliders := s.SliderState()
	if sliders.Buffer != 70 {
		t.Fatalf("buffer slider = %v, want 70", sliders.Buffer)
	}

	toggles := s.ToggleState()
	if !toggles.Deadline || !toggles.InfoGap || toggles.Competition {
		t.Fatalf("toggles = %+v, want deadline and info gap only", toggles)
	}

	buckets := s.BucketList()
	if len(buckets) != 2 {
		t.Fatalf("bucket count = %d, want 2", len(buckets))
	}
	// Empty status defaults to active; explicit statuses pass through.
	if buckets[0].Status != liquidity.StatusActive {
		t.Fatalf("default bucket status = %s, want active", buckets[0].Status)
	}
	if buckets[1].Status != liquidity.StatusDormant {
		t.Fatalf("explicit bucket status = %s, want dormant", buckets[1].Status)
	}

	charges := s.ChargeList()
	if charges[0].State != liquidity.ChargeMatchedUnfunded {
		t.Fatalf("charge state = %s, want matched_unfunded", charges[0].State)
	}
}

func TestScenario_LedgerList(t *testing.T) {
	s := Scenario{Ledger: []LedgerSection{
		{BucketID: "r1", Amount: 600, Memo: "q3 property tax installment"},
		{BucketID: "r1", Amount: 150},
	}}

	entries := s.LedgerList()
	if len(entries) != 2 {
		t.Fatalf("entry count = %d, want 2", len(entries))
	}
	want := liquidity.LedgerEntry{BucketID: "r1", Amount: 600, Memo: "q3 property tax installment"}
	if entries[0] != want {
		t.Fatalf("entry = %+v, want %+v", entries[0], want)
	}
	if entries[1].Memo != "" {
		t.Fatalf("memo = %q, want empty", entries[1].Memo)
	}

	if got := (Scenario{}).LedgerList(); len(got) != 0 {
		t.Fatalf("empty scenario produced %d ledger entries", len(got))
	}
}

func TestShieldSeries_PadsAndTruncates(t *testing.T) {
	s := Scenario{Liquidity: LiquiditySection{Series: map[string][]float64{
		"short": {10, 20},
		"long":  {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14},
	}}}

	out := s.ShieldSeries()

	short := out["short"]
	if short[0] != 10 || short[1] != 20 || short[11] != 0 {
		t.Fatalf("short series = %v, want zero-padded to 12", short)
	}
	long := out["long"]
	if long[11] != 12 {
		t.Fatalf("long series tail = %v, want truncated at 12 entries", long[11])
	}
}

func TestAssumptionOverrides_Resolve(t *testing.T) {
	src := `
[assumptions]
property_tax_rate = 2.1
dti_cap_percent = 36.0
`
	var cfg Config
	if err := toml.Unmarshal([]byte(src), &cfg); err != nil {
		t.Fatalf("parsing overrides: %v", err)
	}

	a := cfg.Assumptions.Resolve()
	if a.PropertyTaxRate != 2.1 {
		t.Fatalf("tax rate = %v, want the override 2.1", a.PropertyTaxRate)
	}
	if a.DTICapPercent != 36 {
		t.Fatalf("DTI cap = %v, want the override 36", a.DTICapPercent)
	}
	// Untouched fields keep the registry defaults.
	if a.AnnualInsurance != 1800 {
		t.Fatalf("insurance = %v, want the default 1800", a.AnnualInsurance)
	}
	if a.PMIThresholdPct != 20 {
		t.Fatalf("PMI threshold = %v, want the default 20", a.PMIThresholdPct)
	}
}

func TestAssumptionOverrides_EmptyKeepsDefaults(t *testing.T) {
	a := AssumptionOverrides{}.Resolve()
	if a.TakeHomePercent != 70 || a.HousingRatioPct != 28 {
		t.Fatalf("empty overrides changed defaults: %+v", a)
	}
}
