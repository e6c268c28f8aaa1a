package collector

import (
	"time"

	"RotationSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series map[string]*model.PriceSeries
	Err    map[string]error
	Base   float64
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDaily(code string, days int) (*model.PriceSeries, error) {
	if err, ok := m.Err[code]; ok {
		return nil, err
	}
	if s, ok := m.Series[code]; ok {
		return s, nil
	}
	base := m.Base
	if base == 0 {
		base = 1000
	}
	return GenerateSeries(code, base, days), nil
}

// GenerateSeries builds a gently trending synthetic daily series.
func GenerateSeries(code string, base float64, count int) *model.PriceSeries {
	points := make([]model.PricePoint, count)
	for i := 0; i < count; i++ {
		p := base * (1 + float64(i-count/2)*0.001)
		points[i] = model.PricePoint{
			Date:  time.Now().AddDate(0, 0, -(count - i)),
			Close: p,
			High:  p * 1.005,
			Low:   p * 0.995,
		}
	}
	return &model.PriceSeries{Code: code, Points: points, FetchedAt: time.Now()}
}
