package events

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"

	"RotationSentinel/internal/model"
)

// Load reads the ordered event override list. A missing file or malformed
// content is tolerated as "no events"; the run continues without overrides.
func Load(path string) []model.Event {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("read event config")
		}
		return nil
	}
	var evs []model.Event
	if err := json.Unmarshal(data, &evs); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("malformed event config, ignoring")
		return nil
	}
	return evs
}

// ActiveOn filters events whose inclusive date window covers the given day,
// preserving config order.
func ActiveOn(evs []model.Event, day string) []model.Event {
	var active []model.Event
	for _, e := range evs {
		if e.ActiveOn(day) {
			active = append(active, e)
		}
	}
	return active
}
