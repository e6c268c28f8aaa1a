package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RotationSentinel/internal/model"
)

func TestLoad_DefaultsFromEmptyFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Strategy.MomentumPeriod)
	assert.InDelta(t, 0.08, cfg.Strategy.BuyThreshold, 1e-12)
	assert.InDelta(t, 0.02, cfg.Strategy.SellThreshold, 1e-12)
	assert.Equal(t, 14, cfg.Strategy.ADXPeriod)
	assert.InDelta(t, 25.0, cfg.Strategy.TrendThreshold, 1e-12)
	assert.Equal(t, "sz.399006", cfg.Strategy.MarketIndex)
	assert.Equal(t, "511880", cfg.Strategy.CashETF)
	assert.Equal(t, 800, cfg.Health.LookbackDays)
	assert.Len(t, cfg.Assets, 5)
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	payload := `
data_source:
  baostock_url: http://gateway.local
strategy:
  buy_threshold: 0.10
assets:
  - name: 创业板
    index_code: sz.399006
    etf_code: "159915"
    source: index
`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))
	t.Setenv("ROTOR_TREND_THRESHOLD", "30")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://gateway.local", cfg.DataSource.BaostockURL)
	assert.InDelta(t, 0.10, cfg.Strategy.BuyThreshold, 1e-12)
	assert.InDelta(t, 30.0, cfg.Strategy.TrendThreshold, 1e-12, "env wins over default")
	require.Len(t, cfg.Assets, 1)
	assert.Equal(t, model.SourceIndex, cfg.Assets[0].Source)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	err = cfg.Validate()
	assert.Error(t, err, "baostock url required without mock data")

	cfg.DataSource.Mock = true
	assert.NoError(t, cfg.Validate())

	cfg.Strategy.SellThreshold = cfg.Strategy.BuyThreshold
	assert.Error(t, cfg.Validate())
}
