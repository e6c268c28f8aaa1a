package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"RotationSentinel/internal/model"
)

// SQLiteRecorder persists the signal history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the bot writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS signal_log (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			date          TEXT NOT NULL,
			asset_name    TEXT,
			etf_code      TEXT,
			market_adx    REAL,
			adx_valid     INTEGER,
			top_momentum  REAL,
			health_score  INTEGER,
			health_status TEXT,
			created_at    INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_signal_log_date ON signal_log(date)`,
	}
	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// Append inserts one run's record.
func (r *SQLiteRecorder) Append(rec *model.SignalLogRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	adxValid := 0
	if rec.ADXValid {
		adxValid = 1
	}
	_, err := r.db.Exec(`INSERT INTO signal_log
		(date, asset_name, etf_code, market_adx, adx_valid, top_momentum, health_score, health_status, created_at)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		rec.Date, rec.AssetName, rec.ETFCode, rec.MarketADX, adxValid,
		rec.TopMomentum, rec.HealthScore, rec.HealthStatus, time.Now().Unix(),
	)
	return err
}

// Recent returns up to n records, most recent first.
func (r *SQLiteRecorder) Recent(n int) ([]model.SignalLogRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT date, asset_name, etf_code, market_adx, adx_valid,
		top_momentum, health_score, health_status
		FROM signal_log ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SignalLogRecord
	for rows.Next() {
		var rec model.SignalLogRecord
		var adxValid int
		if err := rows.Scan(&rec.Date, &rec.AssetName, &rec.ETFCode, &rec.MarketADX,
			&adxValid, &rec.TopMomentum, &rec.HealthScore, &rec.HealthStatus); err != nil {
			return nil, err
		}
		rec.ADXValid = adxValid != 0
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
