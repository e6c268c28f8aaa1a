package strategy

import (
	"sort"

	"RotationSentinel/internal/events"
	"RotationSentinel/internal/model"
)

// Rank applies event factors to raw momentum and sorts descending by the
// adjusted value. The sort is stable, so ties keep configuration order.
func Rank(moms []model.AssetMomentum, ov *events.Overrides) []model.AssetMomentum {
	ranked := make([]model.AssetMomentum, len(moms))
	copy(ranked, moms)
	for i := range ranked {
		ranked[i].AdjustedMomentum = ranked[i].Momentum * ov.Factor(ranked[i].Name)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AdjustedMomentum > ranked[j].AdjustedMomentum
	})
	return ranked
}
