// Package rehearsal scores decision readiness: seven slider dimensions and
// six stress toggles, read through one of three decision modes, reduce to a
// 0-100 steadiness score with a pressure/protection breakdown, a band, and
// a detected behavioral pattern.
package rehearsal

import (
	"math"

	"hearth/internal/finance"
)

// Mode selects which decision is being rehearsed. The same seven physical
// sliders are relabeled per mode; the numeric contract is mode-independent.
type Mode string

const (
	ModeClarify  Mode = "clarify"
	ModeLocation Mode = "location"
	ModeOffer    Mode = "offer"
)

// Sliders holds the seven physical inputs, each constrained to [0,100].
type Sliders struct {
	Buffer    float64
	Lifestyle float64
	Risk      float64
	Finance   float64
	Deal      float64
	Attach    float64
	Lev       float64
}

// clamped returns a copy with every dimension coerced into [0,100].
func (s Sliders) clamped() Sliders {
	c := func(v float64) float64 { return finance.Clamp(finance.SafeZero(v), 0, 100) }
	return Sliders{
		Buffer:    c(s.Buffer),
		Lifestyle: c(s.Lifestyle),
		Risk:      c(s.Risk),
		Finance:   c(s.Finance),
		Deal:      c(s.Deal),
		Attach:    c(s.Attach),
		Lev:       c(s.Lev),
	}
}

// Toggles are six independent situational stressors. Which of them matter,
// and how much, depends on the mode.
type Toggles struct {
	Deadline        bool
	Competition     bool
	OutsidePressure bool
	RecentSetback   bool
	InfoGap         bool
	LifeEvent       bool
}

// Factor is one named, weighted contribution to the resource or demand side.
type Factor struct {
	Name  string
	Value float64
}

// Pattern is a qualitative diagnosis selected by per-mode threshold rules.
type Pattern struct {
	Tag         string
	Summary     string
	Drivers     []string
	Experiments []string
}

// Result is the full scoring output. Fresh value every call.
type Result struct {
	Score    float64 // 0-100 steadiness
	Resource float64 // 0-100 weighted resource index
	Demand   float64 // 0-100 weighted demand index
	Whiplash float64 // 0-100 fragility-under-shock indicator

	Protections []Factor // resource-side breakdown, fixed order
	Pressures   []Factor // demand-side breakdown, fixed order

	Band    Band
	Pattern Pattern
}

// modeParams are the per-mode tuning constants. They were tuned for feel;
// they are fixed tables, not derived values.
type modeParams struct {
	scale          float64
	bonus          float64
	sigmoidDivisor float64
}

var params = map[Mode]modeParams{
	ModeClarify:  {scale: 0.85, bonus: 0.45, sigmoidDivisor: 12},
	ModeLocation: {scale: 0.90, bonus: 0.35, sigmoidDivisor: 12},
	ModeOffer:    {scale: 1.05, bonus: 0.50, sigmoidDivisor: 11},
}

// Compute scores the given slider and toggle state under a mode. Unknown
// modes fall back to clarify rather than failing; the result is always
// usable.
func Compute(mode Mode, s Sliders, t Toggles) Result {
	s = s.clamped()

	var r Result
	switch mode {
	case ModeLocation:
		r = computeLocation(s, t)
	case ModeOffer:
		r = computeOffer(s, t)
	default:
		r = computeClarify(s, t)
	}

	p := params[mode]
	if _, ok := params[mode]; !ok {
		p = params[ModeClarify]
	}

	raw := 50 + (r.Resource-r.Demand)*p.scale
	if r.Resource > 75 {
		// Strong footing is rewarded disproportionately. Deliberate
		// non-linearity: a household at 90 resource is qualitatively
		// steadier than two at 45.
		raw += (r.Resource - 75) * p.bonus
	}

	r.Score = sigmoid(raw, p.sigmoidDivisor)
	r.Band = BandFor(r.Score)
	r.Pattern = detectPattern(mode, s)
	return r
}

// sigmoid squashes an unbounded raw value into [0,100], centered at 50.
// Extreme raw values are cushioned instead of hitting a cliff edge.
func sigmoid(raw, divisor float64) float64 {
	return 100 / (1 + math.Exp(-(raw-50)/divisor))
}
