package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"TickerScribe/internal/model"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so ad-hoc reads do not block the run in progress.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at  INTEGER NOT NULL,
			finished_at INTEGER NOT NULL,
			source      TEXT,
			writer      TEXT,
			tickers     INTEGER,
			succeeded   INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at)`,

		`CREATE TABLE IF NOT EXISTS ticker_results (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id     INTEGER NOT NULL REFERENCES runs(id),
			symbol     TEXT NOT NULL,
			status     TEXT NOT NULL,
			bars       INTEGER,
			close      REAL,
			rsi14      REAL,
			sma20      REAL,
			sma50      REAL,
			sma200     REAL,
			boll_upper REAL,
			boll_lower REAL,
			note       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_ticker_run ON ticker_results(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_ticker_symbol ON ticker_results(symbol)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(run *RunRecord) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.Exec(`INSERT INTO runs
		(started_at, finished_at, source, writer, tickers, succeeded)
		VALUES (?,?,?,?,?,?)`,
		run.StartedAt.Unix(), run.FinishedAt.Unix(),
		run.Source, run.Writer, run.Tickers, run.Succeeded,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLiteRecorder) RecordTicker(runID int64, rec *TickerRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO ticker_results
		(run_id, symbol, status, bars, close, rsi14, sma20, sma50, sma200, boll_upper, boll_lower, note)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		runID, rec.Symbol, rec.Status, rec.Bars,
		nullable(rec.Close), nullable(rec.RSI14),
		nullable(rec.SMA20), nullable(rec.SMA50), nullable(rec.SMA200),
		nullable(rec.BollUpper), nullable(rec.BollLower),
		rec.Note,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

// nullable stores warm-up NaN values as SQL NULL.
func nullable(v float64) sql.NullFloat64 {
	if !model.Defined(v) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}
