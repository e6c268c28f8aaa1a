package recorder

import "RotationSentinel/internal/model"

// MultiRecorder fans out to several recorders. All recorders are attempted;
// the first error encountered is returned.
type MultiRecorder struct {
	recorders []Recorder
}

func NewMultiRecorder(recorders ...Recorder) *MultiRecorder {
	return &MultiRecorder{recorders: recorders}
}

func (m *MultiRecorder) Append(rec *model.SignalLogRecord) error {
	var first error
	for _, r := range m.recorders {
		if err := r.Append(rec); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m *MultiRecorder) Close() error {
	var first error
	for _, r := range m.recorders {
		if err := r.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
