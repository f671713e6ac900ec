// Package finance provides the mortgage payment primitives: amortization,
// PITI bundling, and purchase-price solving under a monthly budget.
//
// Every exported function coerces its inputs through Safe before any
// arithmetic. Inputs arrive from interactive editing and may be transiently
// NaN or infinite while the user is mid-keystroke; the engines degrade to a
// usable result instead of failing.
package finance

import "math"

// Safe maps NaN and ±Inf to fallback so partial input never poisons a result.
func Safe(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// SafeZero is Safe with a zero fallback, the common case.
func SafeZero(v float64) float64 {
	return Safe(v, 0)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NonNeg clamps negative values to zero. Negative loans and payments are
// never meaningful; they are cut off where they are computed rather than
// left to propagate.
func NonNeg(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
