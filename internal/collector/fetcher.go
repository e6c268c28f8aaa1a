package collector

import (
	"errors"

	"RotationSentinel/internal/model"
)

// ErrNoData signals that a backend returned an empty result for an
// instrument.
var ErrNoData = errors.New("no data")

// Fetcher retrieves a daily price series for an instrument code over a
// trailing lookback window.
type Fetcher interface {
	FetchDaily(code string, days int) (*model.PriceSeries, error)
	Name() string
}
