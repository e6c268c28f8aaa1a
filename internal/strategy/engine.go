package strategy

import (
	"fmt"
	"strings"

	"RotationSentinel/internal/events"
	"RotationSentinel/internal/model"
)

// Thresholds carries the decision parameters. They are threaded explicitly
// through every call instead of living as package globals.
type Thresholds struct {
	Buy      float64 // adjusted momentum above this: strong buy
	Sell     float64 // adjusted momentum above this: cautious hold
	TrendMin float64 // ADX at or above this: trending market
	CashETF  string  // instrument held when flat
}

// TrendFilter is the latest market-regime reading. Valid=false means the
// filter could not be computed; it then passes everything and never halts
// trading.
type TrendFilter struct {
	ADX   float64
	Valid bool
}

// Pass reports whether the gate allows new entries.
func (t TrendFilter) Pass(min float64) bool {
	return !t.Valid || t.ADX >= min
}

// Choppy reports a definite non-trending reading.
func (t TrendFilter) Choppy(min float64) bool {
	return t.Valid && t.ADX < min
}

// positionBand maps adjusted momentum to the suggested position-size range.
func positionBand(adjusted float64) model.PositionBand {
	switch {
	case adjusted > 0.15:
		return model.PositionBand{Low: 0.8, High: 1.0}
	case adjusted > 0.08:
		return model.PositionBand{Low: 0.5, High: 0.8}
	case adjusted > 0.02:
		return model.PositionBand{Low: 0.2, High: 0.5}
	default:
		return model.PositionBand{}
	}
}

// Decide runs the rotation state machine once per run. Priority order:
// forced event override, then trend-gated momentum, then flat into the cash
// instrument. The result is a pure function of its inputs.
func Decide(ranked []model.AssetMomentum, trend TrendFilter, ov *events.Overrides, th Thresholds) *model.Decision {
	// 1. A forced override selects its asset unconditionally, regardless of
	// momentum sign or trend reading.
	for _, name := range ov.ForcedOrder {
		for i := range ranked {
			if ranked[i].Name != name {
				continue
			}
			a := ranked[i]
			ratio := ov.ForceRatios[name]
			return &model.Decision{
				Signal:   model.SignalOverride,
				Label:    fmt.Sprintf("manual override: allocate to %s", a.Name),
				Asset:    &a,
				ETFCode:  a.ETFCode,
				Position: model.PositionBand{Low: ratio, High: ratio},
			}
		}
	}

	// 2. Trend-gated momentum selection.
	if len(ranked) > 0 && trend.Pass(th.TrendMin) {
		top := ranked[0]
		if top.AdjustedMomentum > th.Buy {
			return &model.Decision{
				Signal:   model.SignalStrongBuy,
				Label:    fmt.Sprintf("strong buy %s", top.Name),
				Asset:    &top,
				ETFCode:  top.ETFCode,
				Position: positionBand(top.AdjustedMomentum),
			}
		}
		if top.AdjustedMomentum > th.Sell {
			return &model.Decision{
				Signal:   model.SignalCautiousHold,
				Label:    fmt.Sprintf("cautious hold %s", top.Name),
				Asset:    &top,
				ETFCode:  top.ETFCode,
				Position: positionBand(top.AdjustedMomentum),
			}
		}
	}

	// 3. Flat: hold the cash instrument with a composed reason.
	var reasons []string
	if trend.Choppy(th.TrendMin) {
		reasons = append(reasons, "choppy market")
	}
	if len(ranked) > 0 && ranked[0].Momentum <= th.Sell {
		reasons = append(reasons, "momentum too low")
	}
	reason := strings.Join(reasons, " / ")
	if reason == "" {
		reason = "no suitable asset"
	}
	return &model.Decision{
		Signal:  model.SignalFlat,
		Label:   fmt.Sprintf("flat (%s)", reason),
		ETFCode: th.CashETF,
		Reason:  reason,
	}
}
