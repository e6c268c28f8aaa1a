package calculator

import (
	"errors"
	"fmt"
	"math"

	"RotationSentinel/internal/model"
)

// Momentum returns the trailing percent change of the close over the given
// period: close[last]/close[last-period] - 1. Requires at least period+1
// points; assets without that much history are excluded from ranking.
func Momentum(s *model.PriceSeries, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	n := s.Len()
	if n < period+1 {
		return 0, fmt.Errorf("not enough data: have %d points, need %d", n, period+1)
	}
	base := s.Points[n-1-period].Close
	if base == 0 {
		return 0, errors.New("zero base close")
	}
	return s.Points[n-1].Close/base - 1, nil
}

// DailyReturns returns the day-over-day percent change per position; the
// first entry is NaN.
func DailyReturns(closes []float64) []float64 {
	out := make([]float64, len(closes))
	if len(out) > 0 {
		out[0] = math.NaN()
	}
	for i := 1; i < len(closes); i++ {
		out[i] = closes[i]/closes[i-1] - 1
	}
	return out
}

// TrailingReturns returns the percent change over the trailing period per
// position; the first period entries are NaN.
func TrailingReturns(closes []float64, period int) []float64 {
	out := make([]float64, len(closes))
	for i := range out {
		if i < period {
			out[i] = math.NaN()
			continue
		}
		out[i] = closes[i]/closes[i-period] - 1
	}
	return out
}
