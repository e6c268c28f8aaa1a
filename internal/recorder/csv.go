package recorder

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"RotationSentinel/internal/model"
)

var csvHeader = []string{
	"date", "asset_name", "etf_code", "market_adx",
	"top_momentum", "health_score", "health_status",
}

// CSVRecorder appends one row per run to a flat CSV file, writing the header
// when creating the file.
type CSVRecorder struct {
	path string
	mu   sync.Mutex
}

func NewCSVRecorder(path string) *CSVRecorder {
	return &CSVRecorder{path: path}
}

func (r *CSVRecorder) Append(rec *model.SignalLogRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open signal log: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			return err
		}
	}

	adx := ""
	if rec.ADXValid {
		adx = strconv.FormatFloat(rec.MarketADX, 'f', 2, 64)
	}
	row := []string{
		rec.Date,
		rec.AssetName,
		rec.ETFCode,
		adx,
		strconv.FormatFloat(rec.TopMomentum, 'f', 4, 64),
		strconv.Itoa(rec.HealthScore),
		rec.HealthStatus,
	}
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (r *CSVRecorder) Close() error { return nil }
