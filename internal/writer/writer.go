package writer

import (
	"context"
	"errors"

	"TickerScribe/internal/model"
)

// Sentinel errors for downstream write failures, matched with errors.Is.
var (
	// ErrWriteDenied means the credentials lack edit access to the target.
	ErrWriteDenied = errors.New("write access denied")
	// ErrSheetNotFound means the destination spreadsheet id is invalid.
	ErrSheetNotFound = errors.New("spreadsheet not found")
)

// Writer persists computed tables to a report destination. Upserting creates
// the worksheet when absent and overwrites it otherwise, so reruns are
// idempotent.
type Writer interface {
	UpsertTable(ctx context.Context, worksheet string, table *model.IndicatorTable) error
	UpsertSummary(ctx context.Context, worksheet string, rows []model.Summary) error
	Name() string
	Close() error
}

const timeLayout = "2006-01-02"

func tableHeader() []interface{} {
	return []interface{}{
		"Date", "Open", "High", "Low", "Close", "Volume",
		"SMA(20)", "SMA(50)", "SMA(200)", "RSI(14)",
		"BB Middle", "BB Upper", "BB Lower",
	}
}

func tableRows(table *model.IndicatorTable) [][]interface{} {
	rows := make([][]interface{}, 0, table.Len())
	for i, r := range table.Rows {
		bar := table.Series.Bars[i]
		rows = append(rows, []interface{}{
			bar.Time.Format(timeLayout),
			bar.Open, bar.High, bar.Low, bar.Close, bar.Volume,
			cell(r.SMA20), cell(r.SMA50), cell(r.SMA200), cell(r.RSI14),
			cell(r.BollMiddle), cell(r.BollUpper), cell(r.BollLower),
		})
	}
	return rows
}

func summaryHeader() []interface{} {
	return []interface{}{
		"Symbol", "Close", "RSI(14)", "RSI Status", "Price Position",
		"BB Upper", "BB Lower", "SMA(20)", "SMA(50)", "SMA(200)", "Analyzed At",
	}
}

func summaryRows(summaries []model.Summary) [][]interface{} {
	rows := make([][]interface{}, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []interface{}{
			s.Symbol, s.Close, cell(s.RSI14), s.RSIStatus, s.PricePosition,
			cell(s.BollUpper), cell(s.BollLower),
			cell(s.SMA20), cell(s.SMA50), cell(s.SMA200),
			s.AnalyzedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return rows
}

// cell maps warm-up NaN values to blank cells. JSON (and thus the Sheets
// API) cannot carry NaN.
func cell(v float64) interface{} {
	if !model.Defined(v) {
		return ""
	}
	return v
}
