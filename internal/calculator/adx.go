package calculator

import (
	"math"

	"RotationSentinel/internal/model"
)

// MinADXBuffer is the history headroom required beyond the ADX period before
// the trend filter reports a value at all.
const MinADXBuffer = 50

// ADX computes the Average Directional Index used by the trend filter. The
// smoothing is a simple rolling mean over the period, not Wilder exponential
// smoothing; downstream thresholds are calibrated to this variant, so it
// must not be "fixed".
//
// The latest value is returned. ok is false when the series is shorter than
// period+MinADXBuffer points or the latest value is still inside the warmup
// window; callers treat that as a permissive pass, never a trading halt.
func ADX(s *model.PriceSeries, period int) (value float64, ok bool) {
	n := s.Len()
	if period <= 0 || n < period+MinADXBuffer {
		return 0, false
	}

	tr := make([]float64, n)
	plusDM := make([]float64, n)
	minusDM := make([]float64, n)
	for i := 0; i < n; i++ {
		p := s.Points[i]
		if i == 0 {
			// No previous close: true range degrades to the bar range,
			// directional movement stays zero.
			tr[i] = p.High - p.Low
			continue
		}
		prev := s.Points[i-1]
		tr[i] = math.Max(p.High-p.Low,
			math.Max(math.Abs(p.High-prev.Close), math.Abs(p.Low-prev.Close)))
		up := p.High - prev.High
		down := prev.Low - p.Low
		if up > down && up > 0 {
			plusDM[i] = up
		}
		if down > up && down > 0 {
			minusDM[i] = down
		}
	}

	atr := RollingMean(tr, period)
	plusMean := RollingMean(plusDM, period)
	minusMean := RollingMean(minusDM, period)

	dx := make([]float64, n)
	for i := range dx {
		if math.IsNaN(atr[i]) || atr[i] == 0 {
			dx[i] = math.NaN()
			continue
		}
		plusDI := 100 * plusMean[i] / atr[i]
		minusDI := 100 * minusMean[i] / atr[i]
		sum := plusDI + minusDI
		if math.IsNaN(sum) || sum == 0 {
			dx[i] = math.NaN()
			continue
		}
		dx[i] = 100 * math.Abs(plusDI-minusDI) / sum
	}

	adx := RollingMean(dx, period)
	last := adx[n-1]
	if math.IsNaN(last) || math.IsInf(last, 0) {
		return 0, false
	}
	return last, true
}
