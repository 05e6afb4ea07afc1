package recorder

import "time"

// RunRecord describes one completed report run.
type RunRecord struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Source     string // fetcher name
	Writer     string // writer name
	Tickers    int
	Succeeded  int
}

// TickerRecord is the per-ticker outcome of a run: the latest indicator
// snapshot on success, or the failure reason.
type TickerRecord struct {
	Symbol    string
	Status    string // "ok" or "failed"
	Bars      int
	Close     float64
	RSI14     float64
	SMA20     float64
	SMA50     float64
	SMA200    float64
	BollUpper float64
	BollLower float64
	Note      string
}

// Recorder persists run history for later inspection.
type Recorder interface {
	// RecordRun stores the run header and returns its id for ticker rows.
	RecordRun(run *RunRecord) (int64, error)
	RecordTicker(runID int64, rec *TickerRecord) error
	Close() error
}
