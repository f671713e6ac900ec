package rehearsal

import (
	"math"
	"reflect"
	"testing"
)

func neutral() Sliders {
	return Sliders{Buffer: 50, Lifestyle: 50, Risk: 50, Finance: 50, Deal: 50, Attach: 50, Lev: 50}
}

func strong() Sliders {
	return Sliders{Buffer: 90, Lifestyle: 85, Risk: 10, Finance: 85, Deal: 85, Attach: 15, Lev: 90}
}

func weak() Sliders {
	return Sliders{Buffer: 10, Lifestyle: 15, Risk: 90, Finance: 15, Deal: 15, Attach: 90, Lev: 10}
}

func TestBandFor_Boundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0, "fragile"},
		{30, "fragile"},
		{30.5, "reactive"},
		{31, "reactive"},
		{50, "reactive"},
		{51, "managing"},
		{70, "managing"},
		{71, "stable"},
		{85, "stable"},
		{86, "resilient"},
		{100, "resilient"},
	}
	for _, tc := range cases {
		if got := BandFor(tc.score); got.Tag != tc.want {
			t.Fatalf("BandFor(%v) = %s, want %s", tc.score, got.Tag, tc.want)
		}
	}
}

func TestCompute_ScoreWithinRange(t *testing.T) {
	for _, mode := range []Mode{ModeClarify, ModeLocation, ModeOffer} {
		for _, s := range []Sliders{neutral(), strong(), weak(), {}} {
			r := Compute(mode, s, Toggles{})
			if r.Score < 0 || r.Score > 100 {
				t.Fatalf("%s score = %v, want within [0,100]", mode, r.Score)
			}
			if r.Whiplash < 0 || r.Whiplash > 100 {
				t.Fatalf("%s whiplash = %v, want within [0,100]", mode, r.Whiplash)
			}
		}
	}
}

func TestCompute_StrongBeatsWeak(t *testing.T) {
	for _, mode := range []Mode{ModeClarify, ModeLocation, ModeOffer} {
		hi := Compute(mode, strong(), Toggles{})
		lo := Compute(mode, weak(), Toggles{})
		if hi.Score <= lo.Score {
			t.Fatalf("%s: strong profile scored %v, weak scored %v", mode, hi.Score, lo.Score)
		}
		if hi.Band.Tag == "fragile" {
			t.Fatalf("%s: strong profile landed in the fragile band", mode)
		}
	}
}

func TestCompute_TogglesRaiseDemand(t *testing.T) {
	all := Toggles{Deadline: true, Competition: true, OutsidePressure: true,
		RecentSetback: true, InfoGap: true, LifeEvent: true}

	for _, mode := range []Mode{ModeClarify, ModeLocation, ModeOffer} {
		calm := Compute(mode, neutral(), Toggles{})
		stressed := Compute(mode, neutral(), all)
		if stressed.Demand <= calm.Demand {
			t.Fatalf("%s: demand with all stressors = %v, want > %v", mode, stressed.Demand, calm.Demand)
		}
		if stressed.Score >= calm.Score {
			t.Fatalf("%s: score with all stressors = %v, want < %v", mode, stressed.Score, calm.Score)
		}
	}
}

func TestCompute_CompetitionIgnoredOutsideOffers(t *testing.T) {
	comp := Toggles{Competition: true}
	for _, mode := range []Mode{ModeClarify, ModeLocation} {
		base := Compute(mode, neutral(), Toggles{})
		got := Compute(mode, neutral(), comp)
		if got.Score != base.Score {
			t.Fatalf("%s: competition toggle moved the score from %v to %v", mode, base.Score, got.Score)
		}
	}

	base := Compute(ModeOffer, neutral(), Toggles{})
	got := Compute(ModeOffer, neutral(), comp)
	if got.Score >= base.Score {
		t.Fatalf("offer: competition toggle should lower the score, got %v vs %v", got.Score, base.Score)
	}
}

func TestCompute_ClampsOutOfRangeSliders(t *testing.T) {
	wild := Sliders{Buffer: 900, Lifestyle: -50, Risk: math.NaN(), Finance: math.Inf(1),
		Deal: 50, Attach: 50, Lev: 50}
	r := Compute(ModeClarify, wild, Toggles{})
	if r.Score < 0 || r.Score > 100 {
		t.Fatalf("score from out-of-range sliders = %v, want within [0,100]", r.Score)
	}

	// NaN and ±Inf coerce to zero before clamping; only finite values clamp
	// to the range edges.
	capped := Sliders{Buffer: 100, Lifestyle: 0, Risk: 0, Finance: 0,
		Deal: 50, Attach: 50, Lev: 50}
	want := Compute(ModeClarify, capped, Toggles{})
	if r.Score != want.Score {
		t.Fatalf("clamped score = %v, want %v (same as explicit bounds)", r.Score, want.Score)
	}
}

func TestCompute_UnknownModeFallsBackToClarify(t *testing.T) {
	got := Compute(Mode("negotiate"), neutral(), Toggles{})
	want := Compute(ModeClarify, neutral(), Toggles{})
	if got.Score != want.Score {
		t.Fatalf("unknown mode score = %v, want clarify score %v", got.Score, want.Score)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	s := Sliders{Buffer: 62, Lifestyle: 40, Risk: 71, Finance: 55, Deal: 33, Attach: 80, Lev: 47}
	tg := Toggles{Deadline: true, InfoGap: true}
	first := Compute(ModeOffer, s, tg)
	second := Compute(ModeOffer, s, tg)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ across identical calls:\n%+v\n%+v", first, second)
	}
}

func TestCompute_ScoreMonotonicInGrounding(t *testing.T) {
	// Raising a pure resource slider, everything else fixed, must never
	// lower the score.
	tg := Toggles{Deadline: true}
	prev := -1.0
	for buffer := 0.0; buffer <= 100; buffer += 10 {
		s := neutral()
		s.Buffer = buffer
		got := Compute(ModeClarify, s, tg).Score
		if got < prev {
			t.Fatalf("score dropped from %v to %v as grounding rose to %v", prev, got, buffer)
		}
		prev = got
	}
}

func TestCompute_ResourceBonusKicksInAbove75(t *testing.T) {
	// Two profiles with the same resource-demand gap; the higher-resource
	// one must come out ahead because of the strong-footing bonus.
	// Clarify resources: 0.28*clarity + 0.28*grounding + 0.26*flex + 0.18*support.
	high := Sliders{Buffer: 90, Lifestyle: 90, Finance: 90, Lev: 90, Risk: 40, Attach: 40, Deal: 40}
	mid := Sliders{Buffer: 60, Lifestyle: 60, Finance: 60, Lev: 60, Risk: 10, Attach: 10, Deal: 10}

	hi := Compute(ModeClarify, high, Toggles{})
	md := Compute(ModeClarify, mid, Toggles{})
	if hi.Resource <= 75 {
		t.Fatalf("high profile resource = %v, want above the bonus threshold", hi.Resource)
	}
	gapHi := hi.Resource - hi.Demand
	gapMd := md.Resource - md.Demand
	if gapHi > gapMd && hi.Score <= md.Score {
		t.Fatalf("bonus failed: gap %v scored %v, gap %v scored %v", gapHi, hi.Score, gapMd, md.Score)
	}
}

func TestDetectPattern_OfferRules(t *testing.T) {
	cases := []struct {
		name string
		s    Sliders
		want string
	}{
		{"attached and unable to walk", Sliders{Attach: 65, Deal: 45, Buffer: 50, Finance: 50, Risk: 30, Lev: 60}, "hard-to-let-go"},
		{"tight budget thin cushion", Sliders{Finance: 70, Buffer: 40, Attach: 30, Deal: 60, Risk: 30, Lev: 60}, "stretched-thin"},
		{"inspection risk no safeguards", Sliders{Risk: 60, Lev: 50, Attach: 30, Deal: 60, Finance: 40, Buffer: 60}, "exposed-to-surprises"},
		{"balanced", Sliders{Buffer: 60, Lifestyle: 60, Risk: 30, Finance: 40, Deal: 60, Attach: 30, Lev: 60}, "steady-hand"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Compute(ModeOffer, tc.s, Toggles{})
			if r.Pattern.Tag != tc.want {
				t.Fatalf("pattern = %s, want %s", r.Pattern.Tag, tc.want)
			}
		})
	}
}

func TestDetectPattern_FirstMatchWins(t *testing.T) {
	// Qualifies for both hard-to-let-go and stretched-thin; the earlier rule
	// takes precedence.
	s := Sliders{Attach: 80, Deal: 20, Finance: 90, Buffer: 20, Risk: 70, Lev: 30}
	r := Compute(ModeOffer, s, Toggles{})
	if r.Pattern.Tag != "hard-to-let-go" {
		t.Fatalf("pattern = %s, want hard-to-let-go (first matching rule)", r.Pattern.Tag)
	}
}

func TestDetectPattern_ClarifyAndLocationDefaults(t *testing.T) {
	s := Sliders{Buffer: 60, Lifestyle: 60, Risk: 30, Finance: 60, Deal: 50, Attach: 30, Lev: 60}
	if got := Compute(ModeClarify, s, Toggles{}).Pattern.Tag; got != "quiet-compass" {
		t.Fatalf("clarify default pattern = %s, want quiet-compass", got)
	}
	if got := Compute(ModeLocation, s, Toggles{}).Pattern.Tag; got != "rooted-choice" {
		t.Fatalf("location default pattern = %s, want rooted-choice", got)
	}
}

func TestFactorBreakdown_FixedOrder(t *testing.T) {
	r := Compute(ModeOffer, neutral(), Toggles{})
	wantProtections := []string{"Cash cushion", "Safeguards", "Walk-away power", "Fit"}
	if len(r.Protections) != len(wantProtections) {
		t.Fatalf("protections count = %d, want %d", len(r.Protections), len(wantProtections))
	}
	for i, f := range r.Protections {
		if f.Name != wantProtections[i] {
			t.Fatalf("protections[%d] = %s, want %s", i, f.Name, wantProtections[i])
		}
	}
	wantPressures := []string{"Budget tightness", "Surprises", "Attachment", "Stressors"}
	for i, f := range r.Pressures {
		if f.Name != wantPressures[i] {
			t.Fatalf("pressures[%d] = %s, want %s", i, f.Name, wantPressures[i])
		}
	}
}
