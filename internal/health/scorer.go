package health

import (
	"math"

	"RotationSentinel/internal/calculator"
	"RotationSentinel/internal/model"
)

const (
	minHistory   = 200
	recentTrades = 10
	riskFreeRate = 0.02
	tradingDays  = 252
)

// Evaluate replays a binary trailing-return signal over the reference
// index's own history and scores recent strategy reliability. The replay is
// a single-index proxy for the live multi-asset rotation, an intentional
// simplification. Decisions execute with one full day of delay.
//
// Fewer than 200 points short-circuits to a neutral snapshot: score 50,
// all sub-metrics zero.
func Evaluate(s *model.PriceSeries, period int) *model.HealthSnapshot {
	if s == nil || s.Len() < minHistory {
		snap := &model.HealthSnapshot{Score: 50}
		snap.Status = statusFor(snap.Score)
		return snap
	}

	closes := s.Closes()
	n := len(closes)
	trailing := calculator.TrailingReturns(closes, period)
	daily := calculator.DailyReturns(closes)

	// Binary position signal: long while the trailing return is positive.
	// Warmup positions count as flat.
	sig := make([]int, n)
	for i := range sig {
		if !math.IsNaN(trailing[i]) && trailing[i] > 0 {
			sig[i] = 1
		}
	}

	// Lagged strategy returns and the cumulative nav.
	strat := make([]float64, n)
	nav := make([]float64, n)
	acc := 1.0
	for i := range strat {
		if i == 0 || math.IsNaN(daily[i]) {
			strat[i] = math.NaN()
		} else {
			strat[i] = float64(sig[i-1]) * daily[i]
			acc *= 1 + strat[i]
		}
		nav[i] = acc
	}

	// Trade segments begin wherever the signal flips; day zero opens the
	// first segment. A segment's realized return is the price ratio between
	// its boundaries, forced to zero for flat segments.
	var marks []int
	for i := 0; i < n; i++ {
		if i == 0 || sig[i] != sig[i-1] {
			marks = append(marks, i)
		}
	}
	var tradeReturns []float64
	for k := 0; k+1 < len(marks); k++ {
		start, end := marks[k], marks[k+1]
		ret := closes[end]/closes[start] - 1
		if sig[start] == 0 {
			ret = 0
		}
		tradeReturns = append(tradeReturns, ret)
	}

	snap := &model.HealthSnapshot{
		WinRate:           winRate(tradeReturns),
		ConsecutiveLosses: trailingLosses(tradeReturns),
		CurrentDrawdown:   currentDrawdown(nav),
		SharpeRatio:       sharpeRatio(strat),
	}
	snap.Score = score(snap)
	snap.Status = statusFor(snap.Score)
	return snap
}

// winRate is the fraction of the trailing trades with positive return.
func winRate(tradeReturns []float64) float64 {
	recent := tradeReturns
	if len(recent) > recentTrades {
		recent = recent[len(recent)-recentTrades:]
	}
	if len(recent) == 0 {
		return 0
	}
	wins := 0
	for _, r := range recent {
		if r > 0 {
			wins++
		}
	}
	return float64(wins) / float64(len(recent))
}

// trailingLosses counts non-positive trade returns going backward from the
// most recent trade until the first winner.
func trailingLosses(tradeReturns []float64) int {
	losses := 0
	for i := len(tradeReturns) - 1; i >= 0; i-- {
		if tradeReturns[i] > 0 {
			break
		}
		losses++
	}
	return losses
}

// currentDrawdown is the latest nav relative to its running peak, <= 0.
func currentDrawdown(nav []float64) float64 {
	peak := math.Inf(-1)
	dd := 0.0
	for _, v := range nav {
		if v > peak {
			peak = v
		}
		dd = (v - peak) / peak
	}
	return dd
}

// sharpeRatio annualizes the mean daily strategy return over its sample
// standard deviation, net of the risk-free rate. Zero when volatility is
// zero or there is no data.
func sharpeRatio(strat []float64) float64 {
	var vals []float64
	for _, v := range strat {
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	if len(vals) < 2 {
		return 0
	}
	mean := 0.0
	for _, v := range vals {
		mean += v
	}
	mean /= float64(len(vals))
	var ss float64
	for _, v := range vals {
		ss += (v - mean) * (v - mean)
	}
	std := math.Sqrt(ss / float64(len(vals)-1))
	if std == 0 {
		return 0
	}
	return (mean*tradingDays - riskFreeRate) / (std * math.Sqrt(tradingDays))
}
