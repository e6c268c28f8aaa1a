package events

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RotationSentinel/internal/model"
)

func f(v float64) *float64 { return &v }

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	evs := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Empty(t, evs)
}

func TestLoad_MalformedFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	assert.Empty(t, Load(path))
}

func TestLoad_ParsesOrderedList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	payload := `[
		{"name":"policy boost","description":"subsidy news","start_date":"2026-08-01","end_date":"2026-09-30","affected_assets":["电力"],"factor":1.3},
		{"name":"gold hedge","start_date":"2026-09-01","end_date":"2026-09-10","affected_assets":["黄金"],"force_ratio":0.5}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))
	evs := Load(path)
	require.Len(t, evs, 2)
	assert.Equal(t, "policy boost", evs[0].Name)
	require.NotNil(t, evs[0].Factor)
	assert.InDelta(t, 1.3, *evs[0].Factor, 1e-12)
	require.NotNil(t, evs[1].ForceRatio)
	assert.InDelta(t, 0.5, *evs[1].ForceRatio, 1e-12)
}

func TestActiveOn_InclusiveWindow(t *testing.T) {
	evs := []model.Event{
		{Name: "a", StartDate: "2026-09-01", EndDate: "2026-09-10"},
		{Name: "b", StartDate: "2026-09-02", EndDate: "2026-09-02"},
		{Name: "c", StartDate: "2026-10-01", EndDate: "2026-10-05"},
	}
	assert.Len(t, ActiveOn(evs, "2026-09-01"), 1)
	assert.Len(t, ActiveOn(evs, "2026-09-02"), 2)
	assert.Len(t, ActiveOn(evs, "2026-09-10"), 1)
	assert.Empty(t, ActiveOn(evs, "2026-09-11"))
}

func TestBuildOverrides_FactorsCompound(t *testing.T) {
	active := []model.Event{
		{Name: "a", AffectedAssets: []string{"创业板"}, Factor: f(1.2)},
		{Name: "b", AffectedAssets: []string{"创业板", "黄金"}, Factor: f(1.5)},
	}
	o := BuildOverrides(active)
	assert.InDelta(t, 1.8, o.Factor("创业板"), 1e-12)
	assert.InDelta(t, 1.5, o.Factor("黄金"), 1e-12)
	assert.InDelta(t, 1.0, o.Factor("沪深300"), 1e-12, "unaffected assets default to 1.0")
}

func TestBuildOverrides_ForceLastWriteWinsFirstMentionOrder(t *testing.T) {
	active := []model.Event{
		{Name: "a", AffectedAssets: []string{"黄金"}, ForceRatio: f(0.2)},
		{Name: "b", AffectedAssets: []string{"电力"}, ForceRatio: f(0.4)},
		{Name: "c", AffectedAssets: []string{"黄金"}, ForceRatio: f(0.3)},
	}
	o := BuildOverrides(active)
	assert.Equal(t, []string{"黄金", "电力"}, o.ForcedOrder)
	assert.InDelta(t, 0.3, o.ForceRatios["黄金"], 1e-12, "later event overwrites the ratio")
	assert.InDelta(t, 0.4, o.ForceRatios["电力"], 1e-12)
}

func TestScoreToParams(t *testing.T) {
	tests := []struct {
		score float64
		desc  string
	}{
		{5, "extreme"},
		{4.5, "extreme"},
		{4, "strong"},
		{3, "moderate"},
		{2.4, "weak"},
		{1, "weak"},
	}
	for _, tt := range tests {
		got := ScoreToParams(tt.score)
		assert.Equal(t, tt.desc, got.Desc, "score %.1f", tt.score)
		assert.LessOrEqual(t, got.FactorLow, got.FactorHigh)
		assert.LessOrEqual(t, got.ForceLow, got.ForceHigh)
	}
}
