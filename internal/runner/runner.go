package runner

import (
	"context"
	"fmt"
	"log"
	"time"

	"TickerScribe/internal/calculator"
	"TickerScribe/internal/collector"
	"TickerScribe/internal/model"
	"TickerScribe/internal/recorder"
	"TickerScribe/internal/report"
	"TickerScribe/internal/writer"
)

// Runner executes one report run: fetch, compute, and write for every
// configured ticker, then the dated summary worksheet.
type Runner struct {
	Fetcher  collector.Fetcher
	Writer   writer.Writer
	Recorder recorder.Recorder
	Period   string
	Interval string
}

// New creates a Runner.
func New(f collector.Fetcher, w writer.Writer, rec recorder.Recorder, period, interval string) *Runner {
	return &Runner{
		Fetcher:  f,
		Writer:   w,
		Recorder: rec,
		Period:   period,
		Interval: interval,
	}
}

// Run processes tickers sequentially. A failing ticker is logged and
// skipped; already-written worksheets stay as-is since every upsert is
// idempotent. Run returns an error only when no ticker succeeded.
func (r *Runner) Run(ctx context.Context, tickers []string) error {
	started := time.Now().UTC()
	log.Printf("[INFO] run started: %d tickers, source=%s, writer=%s",
		len(tickers), r.Fetcher.Name(), r.Writer.Name())

	var summaries []model.Summary
	var results []*recorder.TickerRecord

	for _, ticker := range tickers {
		summary, rec, err := r.processTicker(ctx, ticker)
		if err != nil {
			log.Printf("[WARN] ticker %s skipped: %v", ticker, err)
			results = append(results, &recorder.TickerRecord{
				Symbol: ticker,
				Status: "failed",
				Note:   err.Error(),
			})
			continue
		}
		log.Printf("[INFO] ticker %s done: close=%.2f, %s", ticker, summary.Close, summary.PricePosition)
		summaries = append(summaries, summary)
		results = append(results, rec)
	}

	if len(summaries) > 0 {
		worksheet := "report_" + started.Format("20060102")
		if err := r.Writer.UpsertSummary(ctx, worksheet, summaries); err != nil {
			log.Printf("[ERROR] write summary worksheet: %v", err)
		} else {
			log.Printf("[INFO] summary written: %s (%d rows)", worksheet, len(summaries))
		}
	}

	r.record(started, tickers, summaries, results)

	if len(tickers) > 0 && len(summaries) == 0 {
		return fmt.Errorf("all %d tickers failed", len(tickers))
	}
	return nil
}

func (r *Runner) processTicker(ctx context.Context, ticker string) (model.Summary, *recorder.TickerRecord, error) {
	series, err := r.Fetcher.Fetch(ticker, r.Period, r.Interval)
	if err != nil {
		return model.Summary{}, nil, fmt.Errorf("fetch: %w", err)
	}

	table, err := calculator.Compute(series)
	if err != nil {
		return model.Summary{}, nil, fmt.Errorf("compute: %w", err)
	}
	if table.Len() == 0 {
		return model.Summary{}, nil, fmt.Errorf("ticker %s: %w", ticker, collector.ErrDataUnavailable)
	}

	summary, err := report.Build(table)
	if err != nil {
		return model.Summary{}, nil, fmt.Errorf("summarize: %w", err)
	}

	if err := r.Writer.UpsertTable(ctx, ticker, table); err != nil {
		return model.Summary{}, nil, fmt.Errorf("write worksheet: %w", err)
	}

	return summary, &recorder.TickerRecord{
		Symbol:    ticker,
		Status:    "ok",
		Bars:      table.Len(),
		Close:     summary.Close,
		RSI14:     summary.RSI14,
		SMA20:     summary.SMA20,
		SMA50:     summary.SMA50,
		SMA200:    summary.SMA200,
		BollUpper: summary.BollUpper,
		BollLower: summary.BollLower,
	}, nil
}

func (r *Runner) record(started time.Time, tickers []string, summaries []model.Summary, results []*recorder.TickerRecord) {
	runID, err := r.Recorder.RecordRun(&recorder.RunRecord{
		StartedAt:  started,
		FinishedAt: time.Now().UTC(),
		Source:     r.Fetcher.Name(),
		Writer:     r.Writer.Name(),
		Tickers:    len(tickers),
		Succeeded:  len(summaries),
	})
	if err != nil {
		log.Printf("[ERROR] record run: %v", err)
		return
	}
	for _, rec := range results {
		if err := r.Recorder.RecordTicker(runID, rec); err != nil {
			log.Printf("[ERROR] record ticker %s: %v", rec.Symbol, err)
		}
	}
}
