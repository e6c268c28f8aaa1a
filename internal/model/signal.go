package model

import "fmt"

// SignalKind classifies the rotation decision.
type SignalKind string

const (
	SignalStrongBuy    SignalKind = "STRONG_BUY"
	SignalCautiousHold SignalKind = "CAUTIOUS_HOLD"
	SignalOverride     SignalKind = "OVERRIDE"
	SignalFlat         SignalKind = "FLAT"
)

// PositionBand is the suggested position-size range, as fractions of capital.
// A forced override collapses the band to a single ratio.
type PositionBand struct {
	Low  float64
	High float64
}

func (b PositionBand) String() string {
	if b.Low == b.High {
		return fmt.Sprintf("%.0f%%", b.Low*100)
	}
	return fmt.Sprintf("%.0f%%-%.0f%%", b.Low*100, b.High*100)
}

// Decision is the terminal output of the rotation engine, computed once per
// run.
type Decision struct {
	Signal   SignalKind
	Label    string         // human-readable signal line
	Asset    *AssetMomentum // nil when holding the cash instrument
	ETFCode  string         // target instrument; the cash ETF when flat
	Position PositionBand
	Reason   string // populated for flat decisions
}
