package model

import "time"

// RunSnapshot is the read-only view of a completed run, handed as-is to the
// report renderer and the notifier.
type RunSnapshot struct {
	Date         string
	Decision     *Decision
	Health       *HealthSnapshot
	Rankings     []AssetMomentum
	ActiveEvents []Event
	MarketADX    float64
	ADXValid     bool
	TrendStatus  string // "trending", "choppy" or "unknown"
	Warnings     []string
	GeneratedAt  time.Time
}
