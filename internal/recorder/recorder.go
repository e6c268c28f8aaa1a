package recorder

import "RotationSentinel/internal/model"

// Recorder persists the daily signal history. The log is append-only: one
// record per run, never mutated. Re-running within the same day appends a
// duplicate record; deduplication is deliberately not this layer's job.
type Recorder interface {
	Append(rec *model.SignalLogRecord) error
	Close() error
}
