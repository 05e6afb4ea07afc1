package model

import "time"

// Summary is the one-row-per-ticker report written to the dated summary
// worksheet: the latest close plus indicator snapshot and derived labels.
type Summary struct {
	Symbol        string
	AnalyzedAt    time.Time
	Close         float64
	RSI14         float64
	RSIStatus     string
	PricePosition string
	BollUpper     float64
	BollLower     float64
	SMA20         float64
	SMA50         float64
	SMA200        float64
}
