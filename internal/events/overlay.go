package events

import "RotationSentinel/internal/model"

// Overrides holds the merged effect of all active events.
//
// Merge rules: factors for the same asset compound multiplicatively; the
// forced ratio per asset is last-write-wins across active events; ForcedOrder
// records first-mention config order, which resolves the winning forced asset
// when several events force different names.
type Overrides struct {
	Factors     map[string]float64
	ForceRatios map[string]float64
	ForcedOrder []string
}

// BuildOverrides folds the active events, in config order, into typed
// override maps.
func BuildOverrides(active []model.Event) *Overrides {
	o := &Overrides{
		Factors:     make(map[string]float64),
		ForceRatios: make(map[string]float64),
	}
	for _, e := range active {
		for _, name := range e.AffectedAssets {
			if e.Factor != nil {
				cur, ok := o.Factors[name]
				if !ok {
					cur = 1.0
				}
				o.Factors[name] = cur * *e.Factor
			}
			if e.ForceRatio != nil {
				if _, seen := o.ForceRatios[name]; !seen {
					o.ForcedOrder = append(o.ForcedOrder, name)
				}
				o.ForceRatios[name] = *e.ForceRatio
			}
		}
	}
	return o
}

// Factor returns the momentum multiplier for an asset, 1.0 by default.
func (o *Overrides) Factor(name string) float64 {
	if f, ok := o.Factors[name]; ok {
		return f
	}
	return 1.0
}
