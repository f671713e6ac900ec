package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"hearth/internal/afford"
	"hearth/internal/liquidity"
	"hearth/internal/rehearsal"
)

// Scenario is one household's session state as a TOML file. It is input
// only: hearth never writes results back, and nothing is cached between
// runs.
type Scenario struct {
	Financial   FinancialSection    `toml:"financial"`
	Rehearsal   RehearsalSection    `toml:"rehearsal"`
	Liquidity   LiquiditySection    `toml:"liquidity"`
	Buckets     []BucketSection     `toml:"buckets"`
	Obligations []ObligationSection `toml:"obligations"`
	Charges     []ChargeSection     `toml:"charges"`
	Ledger      []LedgerSection     `toml:"ledger"`
}

// FinancialSection mirrors afford.FinancialInputs in TOML shape.
type FinancialSection struct {
	AnnualGrossIncome    float64 `toml:"annual_gross_income"`
	MonthlyExpenses      float64 `toml:"monthly_expenses"`
	MonthlyDebts         float64 `toml:"monthly_debts"`
	AvailableDownPayment float64 `toml:"available_down_payment"`
	InterestRate         float64 `toml:"interest_rate"`
	LoanTermYears        int     `toml:"loan_term_years"`

	HousingPercent        float64 `toml:"housing_percent,omitempty"`
	DownPaymentPercent    float64 `toml:"down_payment_percent,omitempty"`
	PropertyTaxRate       float64 `toml:"property_tax_rate,omitempty"`
	TakeHomeMonthly       float64 `toml:"take_home_monthly,omitempty"`
	FutureMonthlyIncome   float64 `toml:"future_monthly_income,omitempty"`
	FutureMonthlyExpenses float64 `toml:"future_monthly_expenses,omitempty"`
	ExcessStrategy        string  `toml:"excess_strategy,omitempty"`
}

// RehearsalSection holds the slider and toggle state.
type RehearsalSection struct {
	Mode string `toml:"mode,omitempty"`

	Buffer    float64 `toml:"buffer"`
	Lifestyle float64 `toml:"lifestyle"`
	Risk      float64 `toml:"risk"`
	Finance   float64 `toml:"finance"`
	Deal      float64 `toml:"deal"`
	Attach    float64 `toml:"attach"`
	Lev       float64 `toml:"lev"`

	Deadline        bool `toml:"deadline"`
	Competition     bool `toml:"competition"`
	OutsidePressure bool `toml:"outside_pressure"`
	RecentSetback   bool `toml:"recent_setback"`
	InfoGap         bool `toml:"info_gap"`
	LifeEvent       bool `toml:"life_event"`
}

// LiquiditySection holds reserve policy and the 12-month spend series used
// by the peak-funding shield.
type LiquiditySection struct {
	ReserveBuffer  float64              `toml:"reserve_buffer"`
	ValveThreshold float64              `toml:"valve_threshold"`
	Series         map[string][]float64 `toml:"series,omitempty"`
}

// BucketSection mirrors liquidity.Bucket.
type BucketSection struct {
	ID          string  `toml:"id"`
	Name        string  `toml:"name"`
	Type        string  `toml:"type"`
	Status      string  `toml:"status,omitempty"`
	Archived    bool    `toml:"archived,omitempty"`
	Balance     float64 `toml:"balance"`
	Target      float64 `toml:"target,omitempty"`
	Constrained bool    `toml:"constrained,omitempty"`
}

// ObligationSection mirrors liquidity.Obligation.
type ObligationSection struct {
	Name         string  `toml:"name"`
	ExpectedCost float64 `toml:"expected_cost"`
	DueMonth     int     `toml:"due_month"`
	Paid         bool    `toml:"paid"`
}

// LedgerSection mirrors liquidity.LedgerEntry: one recorded withdrawal
// from a ledger_reserve bucket.
type LedgerSection struct {
	BucketID string  `toml:"bucket_id"`
	Amount   float64 `toml:"amount"`
	Memo     string  `toml:"memo,omitempty"`
}

// ChargeSection mirrors liquidity.Charge.
type ChargeSection struct {
	ID     string  `toml:"id"`
	Memo   string  `toml:"memo,omitempty"`
	Amount float64 `toml:"amount"`
	State  string  `toml:"state"`
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (Scenario, error) {
	var s Scenario
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading scenario: %w", err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing scenario: %w", err)
	}
	return s, nil
}

// SaveScenario writes a scenario file, used by the setup wizard.
func SaveScenario(path string, s Scenario) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating scenario file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(s)
}

// FinancialInputs converts the financial section into engine input.
func (s Scenario) FinancialInputs() afford.FinancialInputs {
	f := s.Financial
	return afford.FinancialInputs{
		AnnualGrossIncome:     f.AnnualGrossIncome,
		MonthlyExpenses:       f.MonthlyExpenses,
		MonthlyDebts:          f.MonthlyDebts,
		AvailableDownPayment:  f.AvailableDownPayment,
		InterestRate:          f.InterestRate,
		LoanTermYears:         f.LoanTermYears,
		HousingPercent:        f.HousingPercent,
		DownPaymentPercent:    f.DownPaymentPercent,
		PropertyTaxRate:       f.PropertyTaxRate,
		TakeHomeMonthly:       f.TakeHomeMonthly,
		FutureMonthlyIncome:   f.FutureMonthlyIncome,
		FutureMonthlyExpenses: f.FutureMonthlyExpenses,
		ExcessStrategy:        afford.Strategy(f.ExcessStrategy),
	}
}

// SliderState converts the rehearsal section's sliders.
func (s Scenario) SliderState() rehearsal.Sliders {
	r := s.Rehearsal
	return rehearsal.Sliders{
		Buffer:    r.Buffer,
		Lifestyle: r.Lifestyle,
		Risk:      r.Risk,
		Finance:   r.Finance,
		Deal:      r.Deal,
		Attach:    r.Attach,
		Lev:       r.Lev,
	}
}

// ToggleState converts the rehearsal section's stress toggles.
func (s Scenario) ToggleState() rehearsal.Toggles {
	r := s.Rehearsal
	return rehearsal.Toggles{
		Deadline:        r.Deadline,
		Competition:     r.Competition,
		OutsidePressure: r.OutsidePressure,
		RecentSetback:   r.RecentSetback,
		InfoGap:         r.InfoGap,
		LifeEvent:       r.LifeEvent,
	}
}

// BucketList converts the bucket sections.
func (s Scenario) BucketList() []liquidity.Bucket {
	out := make([]liquidity.Bucket, 0, len(s.Buckets))
	for _, b := range s.Buckets {
		status := liquidity.BucketStatus(b.Status)
		if status == "" {
			status = liquidity.StatusActive
		}
		out = append(out, liquidity.Bucket{
			ID:          b.ID,
			Name:        b.Name,
			Type:        liquidity.BucketType(b.Type),
			Status:      status,
			Archived:    b.Archived,
			Balance:     b.Balance,
			Target:      b.Target,
			Constrained: b.Constrained,
		})
	}
	return out
}

// ObligationList converts the obligation sections.
func (s Scenario) ObligationList() []liquidity.Obligation {
	out := make([]liquidity.Obligation, 0, len(s.Obligations))
	for _, o := range s.Obligations {
		out = append(out, liquidity.Obligation{
			Name:         o.Name,
			ExpectedCost: o.ExpectedCost,
			DueMonth:     o.DueMonth,
			Paid:         o.Paid,
		})
	}
	return out
}

// ChargeList converts the charge sections.
func (s Scenario) ChargeList() []liquidity.Charge {
	out := make([]liquidity.Charge, 0, len(s.Charges))
	for _, c := range s.Charges {
		out = append(out, liquidity.Charge{
			ID:     c.ID,
			Memo:   c.Memo,
			Amount: c.Amount,
			State:  liquidity.ChargeState(c.State),
		})
	}
	return out
}

// LedgerList converts the ledger sections.
func (s Scenario) LedgerList() []liquidity.LedgerEntry {
	out := make([]liquidity.LedgerEntry, 0, len(s.Ledger))
	for _, e := range s.Ledger {
		out = append(out, liquidity.LedgerEntry{
			BucketID: e.BucketID,
			Amount:   e.Amount,
			Memo:     e.Memo,
		})
	}
	return out
}

// ShieldSeries converts the per-category monthly spend lists into fixed
// 12-month series. Short lists are zero-padded; long ones are truncated.
func (s Scenario) ShieldSeries() map[string][12]float64 {
	out := make(map[string][12]float64, len(s.Liquidity.Series))
	for name, values := range s.Liquidity.Series {
		var series [12]float64
		for i := 0; i < len(values) && i < 12; i++ {
			series[i] = values[i]
		}
		out[name] = series
	}
	return out
}
