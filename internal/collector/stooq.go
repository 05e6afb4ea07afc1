package collector

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"TickerScribe/internal/model"
)

// StooqFetcher implements Fetcher using the Stooq daily-quotes CSV endpoint.
// It is the fallback provider for when Yahoo throttles.
type StooqFetcher struct {
	client  *resty.Client
	baseURL string
}

// NewStooqFetcher creates a new Stooq fetcher with optional proxy.
func NewStooqFetcher(proxyURL string) *StooqFetcher {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetRetryCount(2)
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &StooqFetcher{
		client:  client,
		baseURL: "https://stooq.com/q/d/l/",
	}
}

func (f *StooqFetcher) Name() string { return "stooq" }

// stooqSymbol converts a Yahoo-style ticker to Stooq's convention: lower
// case, and a ".us" suffix for symbols without an exchange suffix.
func stooqSymbol(ticker string) string {
	s := strings.ToLower(ticker)
	if !strings.Contains(s, ".") {
		s += ".us"
	}
	return s
}

// periodStart translates a Yahoo-style period string into a start date.
func periodStart(period string, now time.Time) time.Time {
	switch period {
	case "1mo":
		return now.AddDate(0, -1, 0)
	case "3mo":
		return now.AddDate(0, -3, 0)
	case "6mo":
		return now.AddDate(0, -6, 0)
	case "2y":
		return now.AddDate(-2, 0, 0)
	case "5y":
		return now.AddDate(-5, 0, 0)
	case "max":
		return time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	default: // "1y" and anything unrecognized
		return now.AddDate(-1, 0, 0)
	}
}

func stooqInterval(interval string) string {
	switch interval {
	case "1wk":
		return "w"
	case "1mo":
		return "m"
	default:
		return "d"
	}
}

// Fetch downloads the quote CSV for one ticker and converts it to a
// PriceSeries.
func (f *StooqFetcher) Fetch(ticker, period, interval string) (*model.PriceSeries, error) {
	now := time.Now().UTC()
	resp, err := f.client.R().
		SetQueryParams(map[string]string{
			"s":  stooqSymbol(ticker),
			"i":  stooqInterval(interval),
			"d1": periodStart(period, now).Format("20060102"),
			"d2": now.Format("20060102"),
		}).
		Get(f.baseURL)
	if err != nil {
		return nil, fmt.Errorf("stooq fetch: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("stooq: status %d", resp.StatusCode())
	}

	bars, err := parseStooqCSV(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("stooq: ticker %s: %w", ticker, err)
	}
	return &model.PriceSeries{
		Symbol:    ticker,
		Bars:      bars,
		FetchedAt: now,
	}, nil
}

// parseStooqCSV decodes Stooq's "Date,Open,High,Low,Close,Volume" payload.
// Stooq answers unknown symbols with a plain "No data" body.
func parseStooqCSV(body []byte) ([]model.Bar, error) {
	text := strings.TrimSpace(string(body))
	if text == "" || strings.HasPrefix(text, "No data") {
		return nil, ErrDataUnavailable
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) < 2 {
		return nil, ErrDataUnavailable
	}

	bars := make([]model.Bar, 0, len(records)-1)
	for _, rec := range records[1:] { // skip header
		if len(rec) < 5 {
			continue
		}
		t, err := time.Parse("2006-01-02", rec[0])
		if err != nil {
			continue
		}
		o, err1 := strconv.ParseFloat(rec[1], 64)
		h, err2 := strconv.ParseFloat(rec[2], 64)
		l, err3 := strconv.ParseFloat(rec[3], 64)
		c, err4 := strconv.ParseFloat(rec[4], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue // "N/D" placeholder rows
		}
		v := 0.0
		if len(rec) > 5 {
			v, _ = strconv.ParseFloat(rec[5], 64)
		}
		bars = append(bars, model.Bar{Time: t.UTC(), Open: o, High: h, Low: l, Close: c, Volume: v})
	}
	if len(bars) == 0 {
		return nil, ErrDataUnavailable
	}
	return bars, nil
}
