package collector

import (
	"errors"

	"TickerScribe/internal/model"
)

// ErrDataUnavailable marks fetch failures caused by an unknown ticker or a
// provider with no data for the requested range. Callers match it with
// errors.Is.
var ErrDataUnavailable = errors.New("no price data available")

// Fetcher defines the interface for fetching a price series.
type Fetcher interface {
	// Fetch returns the chronological price series for one ticker over the
	// given period (e.g. "1y") and bar interval (e.g. "1d").
	Fetch(ticker, period, interval string) (*model.PriceSeries, error)
	Name() string
}
