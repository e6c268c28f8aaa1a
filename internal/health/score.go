package health

import "RotationSentinel/internal/model"

// score sums four independent bucket scores into 0-100. Each bucket is
// monotonic in its metric, so improving one metric never lowers the total.
func score(h *model.HealthSnapshot) int {
	s := 0
	switch {
	case h.WinRate >= 0.4:
		s += 30
	case h.WinRate >= 0.35:
		s += 20
	case h.WinRate >= 0.3:
		s += 10
	}
	switch {
	case h.ConsecutiveLosses <= 2:
		s += 25
	case h.ConsecutiveLosses <= 4:
		s += 15
	case h.ConsecutiveLosses <= 5:
		s += 5
	}
	switch {
	case h.CurrentDrawdown >= -0.05:
		s += 25
	case h.CurrentDrawdown >= -0.10:
		s += 15
	case h.CurrentDrawdown >= -0.15:
		s += 5
	}
	switch {
	case h.SharpeRatio >= 1.0:
		s += 20
	case h.SharpeRatio >= 0.5:
		s += 10
	case h.SharpeRatio >= 0:
		s += 5
	}
	return s
}

// statusFor maps a score to its advisory band.
func statusFor(score int) model.HealthStatus {
	switch {
	case score >= 70:
		return model.HealthHealthy
	case score >= 40:
		return model.HealthCaution
	default:
		return model.HealthWarning
	}
}
