package model

// Event is a manually curated override record loaded from the event config
// file. Dates are ISO "2006-01-02" strings; the inclusive active window is
// resolved by lexical comparison, which is consistent with that format.
type Event struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	AffectedAssets []string `json:"affected_assets"`
	Factor         *float64 `json:"factor,omitempty"`      // momentum multiplier, > 0
	ForceRatio     *float64 `json:"force_ratio,omitempty"` // forced allocation, 0-1
}

// ActiveOn reports whether the event window covers the given day, inclusive
// on both ends.
func (e Event) ActiveOn(day string) bool {
	return e.StartDate <= day && day <= e.EndDate
}
