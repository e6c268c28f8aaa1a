package model

// SignalLogRecord is one append-only row of the signal history log. Records
// are written once per run and never mutated or deleted.
type SignalLogRecord struct {
	Date         string
	AssetName    string
	ETFCode      string
	MarketADX    float64
	ADXValid     bool
	TopMomentum  float64
	HealthScore  int
	HealthStatus string
}
