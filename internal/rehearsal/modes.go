package rehearsal

import "hearth/internal/finance"

// Per-mode toggle weights, in struct field order: deadline, competition,
// outside pressure, recent setback, info gap, life event. A zero weight
// means the stressor is irrelevant to that mode.
var (
	clarifyToggleWeights  = [6]float64{6, 0, 6, 5, 4, 5}
	locationToggleWeights = [6]float64{5, 0, 6, 5, 5, 7}
	offerToggleWeights    = [6]float64{10, 10, 8, 10, 10, 10}
)

// offerToggleScale and cap normalize the offer-mode stressor sum into a
// 0-100 index before it joins the weighted demand blend.
const (
	offerToggleScale = 1.4
	offerToggleCap   = 100.0
)

func toggleSum(t Toggles, weights [6]float64) float64 {
	flags := [6]bool{t.Deadline, t.Competition, t.OutsidePressure, t.RecentSetback, t.InfoGap, t.LifeEvent}
	var sum float64
	for i, on := range flags {
		if on {
			sum += weights[i]
		}
	}
	return sum
}

// computeClarify reads the sliders as: emotional grounding (buffer),
// identity clarity (lifestyle), ambiguity (risk), flexibility (finance),
// urgency (deal), attachment (attach), support (lev).
func computeClarify(s Sliders, t Toggles) Result {
	grounding := s.Buffer
	clarity := s.Lifestyle
	ambiguity := s.Risk
	flexibility := s.Finance
	urgency := s.Deal
	attachment := s.Attach
	support := s.Lev

	// More agency means urgency stings less: raw urgency is dampened by up
	// to 35% as the flexibility/support average rises.
	agency := (flexibility + support) / 2
	urgencyAdjusted := urgency * (1 - 0.35*agency/100)

	boost := toggleSum(t, clarifyToggleWeights)

	resource := 0.28*clarity + 0.28*grounding + 0.26*flexibility + 0.18*support
	demand := finance.Clamp(0.33*attachment+0.37*ambiguity+0.24*urgencyAdjusted+boost, 0, 100)

	whiplash := finance.Clamp(
		0.45*ambiguity+0.30*attachment+0.25*urgencyAdjusted-0.35*grounding, 0, 100)

	return Result{
		Resource: resource,
		Demand:   demand,
		Whiplash: whiplash,
		Protections: []Factor{
			{"Identity clarity", 0.28 * clarity},
			{"Emotional grounding", 0.28 * grounding},
			{"Flexibility", 0.26 * flexibility},
			{"Support", 0.18 * support},
		},
		Pressures: []Factor{
			{"Ambiguity", 0.37 * ambiguity},
			{"Attachment", 0.33 * attachment},
			{"Urgency", 0.24 * urgencyAdjusted},
			{"Stressors", boost},
		},
	}
}

// computeLocation reads the sliders as: financial buffer (buffer),
// lifestyle fit (lifestyle), volatility (risk), cost strain (finance),
// opportunity (deal), pull toward the current place (attach), support
// proximity (lev).
func computeLocation(s Sliders, t Toggles) Result {
	buffer := s.Buffer
	lifestyle := s.Lifestyle
	volatility := s.Risk
	costStrain := s.Finance
	opportunity := s.Deal
	pull := s.Attach
	proximity := s.Lev

	// Emotional pull only destabilizes when conditions are already
	// strained; calm conditions absorb it.
	pullPenalty := pull * ((volatility + costStrain) / 2) / 100

	boost := toggleSum(t, locationToggleWeights)

	resource := 0.28*lifestyle + 0.24*buffer + 0.24*proximity + 0.24*opportunity
	demand := finance.Clamp(0.38*costStrain+0.34*volatility+0.18*pullPenalty+boost, 0, 100)

	whiplash := finance.Clamp(
		0.45*volatility+0.35*costStrain+0.20*pullPenalty-0.35*buffer, 0, 100)

	return Result{
		Resource: resource,
		Demand:   demand,
		Whiplash: whiplash,
		Protections: []Factor{
			{"Lifestyle fit", 0.28 * lifestyle},
			{"Financial buffer", 0.24 * buffer},
			{"Support proximity", 0.24 * proximity},
			{"Opportunity", 0.24 * opportunity},
		},
		Pressures: []Factor{
			{"Cost strain", 0.38 * costStrain},
			{"Volatility", 0.34 * volatility},
			{"Pull of the familiar", 0.18 * pullPenalty},
			{"Stressors", boost},
		},
	}
}

// computeOffer reads the sliders as: cash cushion (buffer), fit
// (lifestyle), inspection surprises (risk), budget tightness (finance),
// walk-away power (deal), attachment (attach), safeguards (lev).
func computeOffer(s Sliders, t Toggles) Result {
	cushion := s.Buffer
	fit := s.Lifestyle
	surprises := s.Risk
	tightness := s.Finance
	walkaway := s.Deal
	attachment := s.Attach
	safeguards := s.Lev

	// Fit caps at 80 and discounts by up to 25% as attachment rises: loving
	// the house too much makes the fit reading less trustworthy.
	effectiveFit := fit
	if effectiveFit > 80 {
		effectiveFit = 80
	}
	effectiveFit *= 1 - 0.25*attachment/100

	// Cushion discounts attachment's sting by up to 40%.
	attachmentImpact := attachment * (1 - 0.40*cushion/100)

	normalizedToggles := finance.Clamp(
		toggleSum(t, offerToggleWeights)*offerToggleScale, 0, offerToggleCap)

	resource := 0.34*cushion + 0.28*safeguards + 0.28*walkaway + 0.10*effectiveFit
	demand := finance.Clamp(
		0.30*tightness+0.28*surprises+0.26*attachmentImpact+0.16*normalizedToggles, 0, 100)

	whiplash := finance.Clamp(
		0.40*surprises+0.35*tightness+0.25*attachmentImpact-0.40*cushion, 0, 100)

	return Result{
		Resource: resource,
		Demand:   demand,
		Whiplash: whiplash,
		Protections: []Factor{
			{"Cash cushion", 0.34 * cushion},
			{"Safeguards", 0.28 * safeguards},
			{"Walk-away power", 0.28 * walkaway},
			{"Fit", 0.10 * effectiveFit},
		},
		Pressures: []Factor{
			{"Budget tightness", 0.30 * tightness},
			{"Surprises", 0.28 * surprises},
			{"Attachment", 0.26 * attachmentImpact},
			{"Stressors", 0.16 * normalizedToggles},
		},
	}
}
