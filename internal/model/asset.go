package model

import "time"

// SourceKind selects which market-data backend serves an asset.
type SourceKind string

const (
	SourceIndex SourceKind = "index" // index k-data gateway, full OHLC
	SourceFund  SourceKind = "fund"  // fund quote feed, close only
)

// Asset is one tradable entry of the rotation universe. The list is static
// configuration, fixed for a run.
type Asset struct {
	Name      string     `yaml:"name"`
	IndexCode string     `yaml:"index_code"`
	ETFCode   string     `yaml:"etf_code"`
	Source    SourceKind `yaml:"source"`
}

// Code returns the instrument identifier to fetch for this asset.
func (a Asset) Code() string {
	if a.Source == SourceFund || a.IndexCode == "" {
		return a.ETFCode
	}
	return a.IndexCode
}

// AssetMomentum is the per-asset ranking entry, recomputed every run.
type AssetMomentum struct {
	Name             string
	ETFCode          string
	Momentum         float64 // raw trailing N-day percent change
	AdjustedMomentum float64 // raw momentum after event multipliers
	LastClose        float64
	LastDate         time.Time
}
