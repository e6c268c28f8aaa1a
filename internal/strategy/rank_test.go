package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RotationSentinel/internal/events"
	"RotationSentinel/internal/model"
)

func factor(v float64) *float64 { return &v }

func TestRank_DescendingByAdjustedMomentum(t *testing.T) {
	ov := events.BuildOverrides([]model.Event{
		{Name: "boost", AffectedAssets: []string{"电力"}, Factor: factor(2.0)},
	})
	r := Rank([]model.AssetMomentum{
		{Name: "创业板", Momentum: 0.06},
		{Name: "电力", Momentum: 0.05},
	}, ov)
	require.Len(t, r, 2)
	assert.Equal(t, "电力", r[0].Name, "factor lifts adjusted momentum above the raw leader")
	assert.InDelta(t, 0.10, r[0].AdjustedMomentum, 1e-12)
	assert.InDelta(t, 0.05, r[0].Momentum, 1e-12, "raw momentum is preserved")
}

func TestRank_StableOnTies(t *testing.T) {
	r := Rank([]model.AssetMomentum{
		{Name: "first", Momentum: 0.05},
		{Name: "second", Momentum: 0.05},
		{Name: "third", Momentum: 0.05},
	}, events.BuildOverrides(nil))
	assert.Equal(t, "first", r[0].Name)
	assert.Equal(t, "second", r[1].Name)
	assert.Equal(t, "third", r[2].Name)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	in := []model.AssetMomentum{
		{Name: "a", Momentum: 0.01},
		{Name: "b", Momentum: 0.09},
	}
	_ = Rank(in, events.BuildOverrides(nil))
	assert.Equal(t, "a", in[0].Name)
}
