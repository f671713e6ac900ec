package liquidity

// ShieldResult measures how much monthly volatility a fund-to-the-peak
// strategy absorbs versus budgeting to the average.
type ShieldResult struct {
	PeakTotal     float64 // sum of per-category peaks
	AvgTotal      float64 // sum of per-category means
	AbsorbedTotal float64 // peak minus average, summed
	ShieldRatio   float64 // absorbed / peak, 0 when peak is 0
}

// PeakFundingShield takes twelve monthly spend values per category and
// reports the volatility absorbed by funding each category at its peak.
// Categories with no data contribute nothing.
func PeakFundingShield(seriesByCategory map[string][12]float64) ShieldResult {
	var r ShieldResult
	for _, series := range seriesByCategory {
		peak := series[0]
		var sum float64
		for _, v := range series {
			if v > peak {
				peak = v
			}
			sum += v
		}
		avg := sum / 12

		r.PeakTotal += peak
		r.AvgTotal += avg
	}

	r.AbsorbedTotal = r.PeakTotal - r.AvgTotal
	if r.PeakTotal > 0 {
		r.ShieldRatio = r.AbsorbedTotal / r.PeakTotal
	}
	return r
}
