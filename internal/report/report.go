package report

import (
	"errors"
	"strings"

	"TickerScribe/internal/model"
)

// RSI thresholds for the status label.
const (
	rsiOverbought = 70.0
	rsiOversold   = 30.0
)

// Build derives the one-row summary for a ticker from its indicator table:
// the latest close, the latest indicator snapshot, and the price-position
// and RSI-status labels.
func Build(table *model.IndicatorTable) (model.Summary, error) {
	bar, row, ok := table.Latest()
	if !ok {
		return model.Summary{}, errors.New("empty indicator table")
	}
	return model.Summary{
		Symbol:        table.Series.Symbol,
		AnalyzedAt:    table.Series.FetchedAt,
		Close:         bar.Close,
		RSI14:         row.RSI14,
		RSIStatus:     rsiStatus(row.RSI14),
		PricePosition: pricePosition(bar.Close, row),
		BollUpper:     row.BollUpper,
		BollLower:     row.BollLower,
		SMA20:         row.SMA20,
		SMA50:         row.SMA50,
		SMA200:        row.SMA200,
	}, nil
}

func rsiStatus(rsi float64) string {
	switch {
	case !model.Defined(rsi):
		return "n/a"
	case rsi > rsiOverbought:
		return "overbought"
	case rsi < rsiOversold:
		return "oversold"
	default:
		return "neutral"
	}
}

// pricePosition describes where the last close sits relative to the moving
// averages, longest window first. Averages still in warm-up are skipped.
func pricePosition(close float64, row model.IndicatorRow) string {
	var parts []string
	checks := []struct {
		value float64
		name  string
	}{
		{row.SMA200, "200-day MA"},
		{row.SMA50, "50-day MA"},
		{row.SMA20, "20-day MA"},
	}
	for _, c := range checks {
		if !model.Defined(c.value) {
			continue
		}
		switch {
		case close > c.value:
			parts = append(parts, "above "+c.name)
		case close < c.value:
			parts = append(parts, "below "+c.name)
		}
	}
	if len(parts) == 0 {
		return "MAs converging"
	}
	return strings.Join(parts, ", ")
}
