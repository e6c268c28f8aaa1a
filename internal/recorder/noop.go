package recorder

import "RotationSentinel/internal/model"

// NoopRecorder is a no-op implementation used when no log store is
// configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) Append(_ *model.SignalLogRecord) error { return nil }
func (n *NoopRecorder) Close() error                          { return nil }
