package health

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RotationSentinel/internal/model"
)

func seriesOf(closes []float64) *model.PriceSeries {
	points := make([]model.PricePoint, len(closes))
	for i, c := range closes {
		points[i] = model.PricePoint{Close: c, High: c, Low: c}
	}
	return &model.PriceSeries{Code: "sz.399006", Points: points}
}

func compoundingCloses(n int, rate float64) []float64 {
	closes := make([]float64, n)
	v := 100.0
	for i := range closes {
		closes[i] = v
		v *= 1 + rate
	}
	return closes
}

func TestEvaluate_InsufficientHistoryIsNeutral(t *testing.T) {
	snap := Evaluate(seriesOf(compoundingCloses(199, 0.001)), 20)
	assert.Equal(t, 50, snap.Score)
	assert.Equal(t, model.HealthCaution, snap.Status)
	assert.Zero(t, snap.WinRate)
	assert.Zero(t, snap.ConsecutiveLosses)
	assert.Zero(t, snap.CurrentDrawdown)
	assert.Zero(t, snap.SharpeRatio)
}

func TestEvaluate_NilSeriesIsNeutral(t *testing.T) {
	snap := Evaluate(nil, 20)
	assert.Equal(t, 50, snap.Score)
	assert.Equal(t, model.HealthCaution, snap.Status)
}

func TestEvaluate_SteadyBullMarket(t *testing.T) {
	// Constant compounding: the signal turns on once at day 20 and stays on.
	// The single closed segment is the flat warmup, forced to zero return,
	// so the win rate reads zero while everything else is pristine.
	snap := Evaluate(seriesOf(compoundingCloses(250, 0.005)), 20)
	assert.Zero(t, snap.WinRate)
	assert.Equal(t, 1, snap.ConsecutiveLosses)
	assert.InDelta(t, 0, snap.CurrentDrawdown, 1e-12)
	assert.Greater(t, snap.SharpeRatio, 1.0)
	assert.Equal(t, 70, snap.Score)
	assert.Equal(t, model.HealthHealthy, snap.Status)
}

func TestEvaluate_MetricsStayInRange(t *testing.T) {
	// A cyclic market producing several signal flips.
	closes := make([]float64, 320)
	v := 100.0
	for i := range closes {
		closes[i] = v * (1 + 0.1*math.Sin(float64(i)/25))
	}
	snap := Evaluate(seriesOf(closes), 20)
	require.NotNil(t, snap)
	assert.GreaterOrEqual(t, snap.WinRate, 0.0)
	assert.LessOrEqual(t, snap.WinRate, 1.0)
	assert.GreaterOrEqual(t, snap.ConsecutiveLosses, 0)
	assert.LessOrEqual(t, snap.CurrentDrawdown, 0.0)
	assert.GreaterOrEqual(t, snap.Score, 0)
	assert.LessOrEqual(t, snap.Score, 100)
}

func TestScore_MonotonicPerMetric(t *testing.T) {
	base := model.HealthSnapshot{
		WinRate:           0.35,
		ConsecutiveLosses: 4,
		CurrentDrawdown:   -0.12,
		SharpeRatio:       0.3,
	}

	winRates := []float64{0.1, 0.3, 0.35, 0.4, 0.9}
	prev := -1
	for _, w := range winRates {
		h := base
		h.WinRate = w
		got := score(&h)
		assert.GreaterOrEqual(t, got, prev, "winRate %.2f", w)
		prev = got
	}

	losses := []int{9, 5, 4, 2, 0} // improving
	prev = -1
	for _, l := range losses {
		h := base
		h.ConsecutiveLosses = l
		got := score(&h)
		assert.GreaterOrEqual(t, got, prev, "losses %d", l)
		prev = got
	}

	drawdowns := []float64{-0.3, -0.15, -0.10, -0.05, 0}
	prev = -1
	for _, d := range drawdowns {
		h := base
		h.CurrentDrawdown = d
		got := score(&h)
		assert.GreaterOrEqual(t, got, prev, "drawdown %.2f", d)
		prev = got
	}

	ratios := []float64{-1, 0, 0.5, 1.0, 3.0}
	prev = -1
	for _, r := range ratios {
		h := base
		h.SharpeRatio = r
		got := score(&h)
		assert.GreaterOrEqual(t, got, prev, "ratio %.2f", r)
		prev = got
	}
}

func TestStatusBands(t *testing.T) {
	tests := []struct {
		score int
		want  model.HealthStatus
	}{
		{100, model.HealthHealthy},
		{70, model.HealthHealthy},
		{69, model.HealthCaution},
		{40, model.HealthCaution},
		{39, model.HealthWarning},
		{0, model.HealthWarning},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.score), "score %d", tt.score)
	}
}
