package model

// HealthStatus is the advisory band derived from the health score.
type HealthStatus string

const (
	HealthHealthy HealthStatus = "healthy" // proceed
	HealthCaution HealthStatus = "caution" // monitor, do not stop
	HealthWarning HealthStatus = "warning" // advise suspending trading
)

// HealthSnapshot rates the recent reliability of the strategy on a 0-100
// scale. It is derived from a single-index historical replay and is
// independent of the live multi-asset decision.
type HealthSnapshot struct {
	Score             int
	Status            HealthStatus
	WinRate           float64 // fraction of trailing trades with positive return
	ConsecutiveLosses int     // trailing non-positive trades
	CurrentDrawdown   float64 // nav vs running peak, <= 0
	SharpeRatio       float64 // annualized excess return over volatility
}
