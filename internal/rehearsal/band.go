package rehearsal

// Band is one of five fixed steadiness tiers, identical across modes.
type Band struct {
	Tag   string
	Label string
	Min   float64
	Max   float64
}

// bands in ascending order. Boundaries are inclusive on the upper edge:
// a score of exactly 30 is still fragile, 31 is reactive.
var bands = []Band{
	{"fragile", "Fragile", 0, 30},
	{"reactive", "Reactive", 31, 50},
	{"managing", "Managing", 51, 70},
	{"stable", "Stable", 71, 85},
	{"resilient", "Resilient", 86, 100},
}

// BandFor returns the tier a score falls into.
func BandFor(score float64) Band {
	for _, b := range bands[:len(bands)-1] {
		if score <= b.Max {
			return b
		}
	}
	return bands[len(bands)-1]
}
