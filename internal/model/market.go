package model

import "time"

// PricePoint represents one trading day for one instrument.
type PricePoint struct {
	Date  time.Time
	Close float64
	High  float64
	Low   float64
}

// PriceSeries holds raw price data for analysis, ordered by date ascending
// with no duplicate dates. Immutable once fetched for a run.
type PriceSeries struct {
	Code      string
	Points    []PricePoint
	FetchedAt time.Time
}

// Len returns the number of points in the series.
func (s *PriceSeries) Len() int { return len(s.Points) }

// Closes extracts the close column.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// Last returns the most recent point. Callers must check Len() > 0 first.
func (s *PriceSeries) Last() PricePoint { return s.Points[len(s.Points)-1] }
