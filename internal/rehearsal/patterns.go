package rehearsal

// patternRule pairs a threshold condition with a canned diagnosis. Rules
// are tested in order and the first match wins; the last rule in each
// mode's list has a nil condition and acts as the steady default. The
// thresholds encode product judgment and are fixed values.
type patternRule struct {
	match   func(Sliders) bool
	pattern Pattern
}

func detectPattern(mode Mode, s Sliders) Pattern {
	var rules []patternRule
	switch mode {
	case ModeLocation:
		rules = locationPatterns
	case ModeOffer:
		rules = offerPatterns
	default:
		rules = clarifyPatterns
	}

	for _, r := range rules {
		if r.match == nil || r.match(s) {
			return r.pattern
		}
	}
	return rules[len(rules)-1].pattern
}

// Clarify mode sliders: grounding=Buffer, clarity=Lifestyle,
// ambiguity=Risk, flexibility=Finance, urgency=Deal, attachment=Attach,
// support=Lev.
var clarifyPatterns = []patternRule{
	{
		match: func(s Sliders) bool { return s.Risk >= 65 && s.Lifestyle <= 45 },
		pattern: Pattern{
			Tag:     "fog-first",
			Summary: "The unknowns are loud and your own picture of what you want is still faint. Decisions made in this state tend to chase someone else's criteria.",
			Drivers: []string{
				"Ambiguity is high while identity clarity is low.",
				"Without a clear picture, every open question feels urgent.",
			},
			Experiments: []string{
				"Write three sentences describing the life you want in five years before looking at another listing.",
				"Pick one unknown and resolve it this week; ignore the rest.",
			},
		},
	},
	{
		match: func(s Sliders) bool { return s.Attach >= 60 && s.Finance <= 40 },
		pattern: Pattern{
			Tag:     "anchored",
			Summary: "You're attached to a particular outcome and short on room to maneuver. That combination turns preferences into pressure.",
			Drivers: []string{
				"Attachment is high while flexibility is low.",
				"A single fixed outcome leaves no graceful exit.",
			},
			Experiments: []string{
				"Sketch one genuinely acceptable plan B in writing.",
			},
		},
	},
	{
		match: func(s Sliders) bool { return s.Deal >= 70 && s.Lev <= 40 },
		pattern: Pattern{
			Tag:     "racing-solo",
			Summary: "The clock feels loud and you're carrying the decision alone. Urgency without support narrows thinking.",
			Drivers: []string{
				"Urgency is high while support is low.",
				"Nobody is positioned to catch a rushed call.",
			},
			Experiments: []string{
				"Ask one person you trust to hear the decision out loud this week.",
				"Name the real deadline; most felt deadlines are softer than they sound.",
			},
		},
	},
	{
		pattern: Pattern{
			Tag:     "quiet-compass",
			Summary: "Nothing here is pulling hard against you. You know roughly what you want and the unknowns are at a workable volume.",
			Drivers: []string{
				"No single dimension is dominating the picture.",
			},
			Experiments: []string{
				"Keep a one-line decision journal; steadiness is easiest to keep when you can see it.",
			},
		},
	},
}

// Location mode sliders: buffer=Buffer, lifestyle=Lifestyle,
// volatility=Risk, costStrain=Finance, opportunity=Deal, pull=Attach,
// proximity=Lev.
var locationPatterns = []patternRule{
	{
		match: func(s Sliders) bool { return s.Finance >= 70 && s.Buffer <= 40 },
		pattern: Pattern{
			Tag:     "priced-out-pressure",
			Summary: "The cost of the place you're considering is leaning hard on a thin cushion. Strain like this compounds quietly.",
			Drivers: []string{
				"Cost strain is high while the financial buffer is low.",
				"A thin buffer turns every surprise bill into a crisis.",
			},
			Experiments: []string{
				"Price the same life one neighborhood ring further out.",
				"Run three months of the new budget on paper before committing.",
			},
		},
	},
	{
		match: func(s Sliders) bool { return s.Attach >= 60 && s.Deal <= 45 },
		pattern: Pattern{
			Tag:     "backward-glance",
			Summary: "The pull of where you are outweighs what the new place offers. Moves made against that grain rarely settle well.",
			Drivers: []string{
				"Pull toward the current place is high while opportunity reads low.",
			},
			Experiments: []string{
				"List what the current place gives you that the new one must replace, item by item.",
			},
		},
	},
	{
		match: func(s Sliders) bool { return s.Risk >= 65 && s.Lev <= 40 },
		pattern: Pattern{
			Tag:     "unsteady-ground",
			Summary: "Conditions are volatile and your support network would be far away. Volatility is survivable with people nearby; alone it grinds.",
			Drivers: []string{
				"Volatility is high while support proximity is low.",
				"Distance multiplies the cost of every setback.",
			},
			Experiments: []string{
				"Identify two people within an hour of the new place before deciding.",
			},
		},
	},
	{
		pattern: Pattern{
			Tag:     "rooted-choice",
			Summary: "The trade-offs here look survivable from every angle you've rated. This reads like a decision you could stand behind either way.",
			Drivers: []string{
				"Resources and demands are near balance.",
			},
			Experiments: []string{
				"Spend an unscripted day in the new area before signing anything.",
			},
		},
	},
}

// Offer mode sliders: cushion=Buffer, fit=Lifestyle, surprises=Risk,
// tightness=Finance, walkaway=Deal, attachment=Attach, safeguards=Lev.
var offerPatterns = []patternRule{
	{
		match: func(s Sliders) bool { return s.Attach >= 65 && s.Deal <= 45 },
		pattern: Pattern{
			Tag:     "hard-to-let-go",
			Summary: "You want this house more than you can afford to walk away from it. That imbalance is exactly what overbidding is made of.",
			Drivers: []string{
				"Attachment is high while walk-away power is low.",
				"Sellers and agents can read this posture.",
			},
			Experiments: []string{
				"Write your absolute ceiling on paper before the next conversation, and hand it to someone who will hold you to it.",
				"Tour one more comparable listing, even casually.",
			},
		},
	},
	{
		match: func(s Sliders) bool { return s.Finance >= 70 && s.Buffer <= 40 },
		pattern: Pattern{
			Tag:     "stretched-thin",
			Summary: "The numbers only work if nothing goes wrong. Tight budgets with thin cushions make ordinary surprises expensive.",
			Drivers: []string{
				"Budget tightness is high while the cash cushion is low.",
			},
			Experiments: []string{
				"Re-run the offer at 95% of your current number and see what changes.",
			},
		},
	},
	{
		match: func(s Sliders) bool { return s.Risk >= 60 && s.Lev <= 50 },
		pattern: Pattern{
			Tag:     "exposed-to-surprises",
			Summary: "There's real inspection risk on the table and your contractual protections are light. Surprises you can't negotiate are surprises you pay for.",
			Drivers: []string{
				"Surprise risk is high while safeguards are modest.",
				"Waived contingencies convert unknowns into sunk cost.",
			},
			Experiments: []string{
				"Price a full inspection plus specialist follow-ups; it's cheap against the downside.",
			},
		},
	},
	{
		pattern: Pattern{
			Tag:     "steady-hand",
			Summary: "You're negotiating from footing, not from want. Keep the posture that got you here.",
			Drivers: []string{
				"No pressure dimension dominates the resources behind you.",
			},
			Experiments: []string{
				"Decide now what news would make you withdraw, so the decision is pre-made if it arrives.",
			},
		},
	},
}
