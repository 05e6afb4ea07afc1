package calculator

import (
	"fmt"

	"TickerScribe/internal/model"
)

// Standard windows used by the report.
const (
	SMAShortPeriod  = 20
	SMAMediumPeriod = 50
	SMALongPeriod   = 200
	RSIPeriod       = 14
	BollPeriod      = 20
	BollWidth       = 2.0
)

// Compute derives the full indicator table for a price series. The input is
// never mutated; the output has one row per bar, with NaN inside each
// indicator's warm-up window, and row i depends only on bars up to i.
//
// An empty series yields an empty table. Bars that are not strictly
// increasing by time are rejected with an error rather than silently
// producing wrong numbers.
func Compute(series *model.PriceSeries) (*model.IndicatorTable, error) {
	if err := checkChronological(series.Bars); err != nil {
		return nil, fmt.Errorf("series %s: %w", series.Symbol, err)
	}

	table := &model.IndicatorTable{
		Series: series,
		Rows:   make([]model.IndicatorRow, len(series.Bars)),
	}
	if len(series.Bars) == 0 {
		return table, nil
	}

	closes := series.Closes()

	sma20, err := SMASeries(closes, SMAShortPeriod)
	if err != nil {
		return nil, err
	}
	sma50, err := SMASeries(closes, SMAMediumPeriod)
	if err != nil {
		return nil, err
	}
	sma200, err := SMASeries(closes, SMALongPeriod)
	if err != nil {
		return nil, err
	}
	rsi, err := RSISeries(closes, RSIPeriod)
	if err != nil {
		return nil, err
	}
	boll, err := BollingerSeries(closes, BollPeriod, BollWidth)
	if err != nil {
		return nil, err
	}

	for i := range table.Rows {
		table.Rows[i] = model.IndicatorRow{
			SMA20:      sma20[i],
			SMA50:      sma50[i],
			SMA200:     sma200[i],
			RSI14:      rsi[i],
			BollMiddle: boll.Middle[i],
			BollUpper:  boll.Upper[i],
			BollLower:  boll.Lower[i],
		}
	}
	return table, nil
}

func checkChronological(bars []model.Bar) error {
	for i := 1; i < len(bars); i++ {
		if !bars[i].Time.After(bars[i-1].Time) {
			return fmt.Errorf("bars out of order at index %d: %s is not after %s",
				i, bars[i].Time.Format("2006-01-02"), bars[i-1].Time.Format("2006-01-02"))
		}
	}
	return nil
}
