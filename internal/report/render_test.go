package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RotationSentinel/internal/model"
)

func TestRender_WritesReport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out", "report.html")
	r := New(out)

	asset := model.AssetMomentum{
		Name: "创业板", ETFCode: "159915",
		Momentum: 0.10, AdjustedMomentum: 0.12,
		LastClose: 2012.5, LastDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	snap := &model.RunSnapshot{
		Date: "2026-09-01",
		Decision: &model.Decision{
			Signal: model.SignalStrongBuy, Label: "strong buy 创业板",
			Asset: &asset, ETFCode: "159915",
			Position: model.PositionBand{Low: 0.5, High: 0.8},
		},
		Health: &model.HealthSnapshot{
			Score: 70, Status: model.HealthHealthy,
			WinRate: 0.4, ConsecutiveLosses: 1, CurrentDrawdown: -0.02, SharpeRatio: 1.3,
		},
		Rankings:    []model.AssetMomentum{asset},
		MarketADX:   31.7,
		ADXValid:    true,
		TrendStatus: "trending",
		GeneratedAt: time.Now(),
	}
	require.NoError(t, r.Render(snap))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	page := string(data)
	assert.Contains(t, page, "strong buy 创业板")
	assert.Contains(t, page, "159915")
	assert.Contains(t, page, "50%-80%")
	assert.Contains(t, page, "70 / 100")
	assert.Contains(t, page, "31.7")
}

func TestRender_UnknownTrendSurfaces(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.html")
	r := New(out)
	snap := &model.RunSnapshot{
		Date: "2026-09-01",
		Decision: &model.Decision{
			Signal: model.SignalFlat, Label: "flat (no suitable asset)",
			ETFCode: "511880", Reason: "no suitable asset",
		},
		Health:      &model.HealthSnapshot{Score: 50, Status: model.HealthCaution},
		TrendStatus: "unknown",
		GeneratedAt: time.Now(),
	}
	require.NoError(t, r.Render(snap))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "unknown")
	assert.Contains(t, string(data), "511880")
}
