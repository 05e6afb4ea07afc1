package report

import (
	"math"
	"testing"
	"time"

	"TickerScribe/internal/model"
)

func tableWith(close float64, row model.IndicatorRow) *model.IndicatorTable {
	return &model.IndicatorTable{
		Series: &model.PriceSeries{
			Symbol:    "TEST",
			Bars:      []model.Bar{{Time: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), Close: close}},
			FetchedAt: time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC),
		},
		Rows: []model.IndicatorRow{row},
	}
}

func TestBuild_EmptyTable(t *testing.T) {
	empty := &model.IndicatorTable{Series: &model.PriceSeries{Symbol: "TEST"}}
	if _, err := Build(empty); err == nil {
		t.Error("expected error for empty table")
	}
}

func TestBuild_Labels(t *testing.T) {
	row := model.IndicatorRow{
		SMA20:  95,
		SMA50:  102,
		SMA200: 90,
		RSI14:  75,
	}
	sum, err := Build(tableWith(100, row))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.RSIStatus != "overbought" {
		t.Errorf("expected overbought, got %q", sum.RSIStatus)
	}
	want := "above 200-day MA, below 50-day MA, above 20-day MA"
	if sum.PricePosition != want {
		t.Errorf("expected %q, got %q", want, sum.PricePosition)
	}
	if sum.Close != 100 {
		t.Errorf("expected close 100, got %.2f", sum.Close)
	}
}

func TestRSIStatus_Boundaries(t *testing.T) {
	tests := []struct {
		rsi  float64
		want string
	}{
		{75, "overbought"},
		{70, "neutral"},
		{50, "neutral"},
		{30, "neutral"},
		{25, "oversold"},
		{math.NaN(), "n/a"},
	}
	for _, tt := range tests {
		if got := rsiStatus(tt.rsi); got != tt.want {
			t.Errorf("rsi %.1f: expected %q, got %q", tt.rsi, tt.want, got)
		}
	}
}

func TestPricePosition_SkipsWarmupAverages(t *testing.T) {
	row := model.IndicatorRow{
		SMA20:  95,
		SMA50:  math.NaN(),
		SMA200: math.NaN(),
	}
	if got := pricePosition(100, row); got != "above 20-day MA" {
		t.Errorf("expected only the 20-day label, got %q", got)
	}
}

func TestPricePosition_Converging(t *testing.T) {
	row := model.IndicatorRow{SMA20: 100, SMA50: 100, SMA200: 100}
	if got := pricePosition(100, row); got != "MAs converging" {
		t.Errorf("expected converging label, got %q", got)
	}
}
