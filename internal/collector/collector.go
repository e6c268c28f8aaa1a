package collector

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"RotationSentinel/internal/model"
)

// Collector fetches the market-regime index and the asset universe. Index
// assets come from the full-OHLC index source; fund assets from the
// close-only fund source.
type Collector struct {
	Index Fetcher
	Fund  Fetcher // optional; nil disables fund-sourced assets
}

// New creates a Collector.
func New(index, fund Fetcher) *Collector {
	return &Collector{Index: index, Fund: fund}
}

// MarketIndex fetches the reference index series. A failure here is fatal to
// the run: the caller aborts without touching any output file.
func (c *Collector) MarketIndex(code string, days int) (*model.PriceSeries, error) {
	s, err := c.Index.FetchDaily(code, days)
	if err != nil {
		return nil, fmt.Errorf("market index %s via %s: %w", code, c.Index.Name(), err)
	}
	return s, nil
}

// AssetSeries fetches every configured asset, keyed by asset name. Per-asset
// failures are logged and the asset is skipped; a missing fund source
// disables only the assets that depend on it. The returned warnings surface
// in the rendered report.
func (c *Collector) AssetSeries(assets []model.Asset, days int) (map[string]*model.PriceSeries, []string) {
	out := make(map[string]*model.PriceSeries, len(assets))
	var warnings []string
	for _, a := range assets {
		f := c.Index
		if a.Source == model.SourceFund {
			f = c.Fund
		}
		if f == nil {
			log.Warn().Str("asset", a.Name).Msg("no fetcher for source kind, skipping")
			warnings = append(warnings, fmt.Sprintf("%s: data source unavailable", a.Name))
			continue
		}
		s, err := f.FetchDaily(a.Code(), days)
		if err != nil {
			log.Warn().Err(err).Str("asset", a.Name).Str("code", a.Code()).Msg("fetch failed, skipping")
			warnings = append(warnings, fmt.Sprintf("%s: fetch failed", a.Name))
			continue
		}
		out[a.Name] = s
	}
	return out, warnings
}
