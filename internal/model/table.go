package model

import "math"

// IndicatorRow holds the derived values for one bar. A value is NaN while the
// indicator is still inside its warm-up window.
type IndicatorRow struct {
	SMA20      float64
	SMA50      float64
	SMA200     float64
	RSI14      float64
	BollMiddle float64
	BollUpper  float64
	BollLower  float64
}

// IndicatorTable is a PriceSeries joined column-wise with its computed rows.
// Rows has the same length and date alignment as Series.Bars.
type IndicatorTable struct {
	Series *PriceSeries
	Rows   []IndicatorRow
}

// Len returns the number of rows in the table.
func (t *IndicatorTable) Len() int {
	return len(t.Rows)
}

// Latest returns the last row of the table, or false when the table is empty.
func (t *IndicatorTable) Latest() (Bar, IndicatorRow, bool) {
	if len(t.Rows) == 0 {
		return Bar{}, IndicatorRow{}, false
	}
	n := len(t.Rows) - 1
	return t.Series.Bars[n], t.Rows[n], true
}

// Defined reports whether an indicator value is out of its warm-up window.
func Defined(v float64) bool {
	return !math.IsNaN(v)
}

// Undefined is the value of an indicator inside its warm-up window.
func Undefined() float64 {
	return math.NaN()
}
