// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats a USD amount, dropping cents as values grow.
// e.g., 1234567.8 -> "$1,234,568", 42.5 -> "$42.50"
func FormatMoney(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	var s string
	switch {
	case v >= 1000:
		s = "$" + FormatNumber(int64(math.Round(v)))
	case v >= 100:
		s = fmt.Sprintf("$%.0f", v)
	default:
		s = fmt.Sprintf("$%.2f", v)
	}

	if neg {
		return "-" + s
	}
	return s
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a percentage value (already 0-100 scaled).
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// FormatRatio formats a 0-1 ratio as a percentage string.
func FormatRatio(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatRate formats an interest rate with rate-sheet precision.
func FormatRate(v float64) string {
	return fmt.Sprintf("%.3f%%", v)
}

// FormatScore formats a 0-100 score with one decimal.
func FormatScore(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// FormatDelta formats a money delta with an explicit sign.
func FormatDelta(current, previous float64) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatMoney(delta)
	}
	return "-" + FormatMoney(-delta)
}

// FormatMonth returns a 3-letter month abbreviation from a 1-12 month.
func FormatMonth(month int) string {
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	if month >= 1 && month <= 12 {
		return months[month-1]
	}
	return "???"
}
