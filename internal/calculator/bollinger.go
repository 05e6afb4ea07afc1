package calculator

import (
	"errors"
	"math"

	"TickerScribe/internal/model"
)

// Bollinger holds the three band series, aligned with the input closes.
type Bollinger struct {
	Middle []float64
	Upper  []float64
	Lower  []float64
}

// BollingerSeries computes Bollinger Bands over a trailing window: middle is
// the SMA of the window, upper and lower are middle ± k times the population
// standard deviation of the same window. Indices inside the warm-up window
// are NaN. Rolling sum and sum of squares keep the whole series O(n).
func BollingerSeries(closes []float64, period int, k float64) (*Bollinger, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	if k < 0 {
		return nil, errors.New("band width must be non-negative")
	}
	n := len(closes)
	b := &Bollinger{
		Middle: make([]float64, n),
		Upper:  make([]float64, n),
		Lower:  make([]float64, n),
	}
	var sum, sumSq float64
	for i, c := range closes {
		sum += c
		sumSq += c * c
		if i >= period {
			old := closes[i-period]
			sum -= old
			sumSq -= old * old
		}
		if i < period-1 {
			b.Middle[i] = model.Undefined()
			b.Upper[i] = model.Undefined()
			b.Lower[i] = model.Undefined()
			continue
		}
		mean := sum / float64(period)
		variance := sumSq/float64(period) - mean*mean
		if variance < 0 {
			variance = 0 // rounding noise on near-constant windows
		}
		sigma := math.Sqrt(variance)
		b.Middle[i] = mean
		b.Upper[i] = mean + k*sigma
		b.Lower[i] = mean - k*sigma
	}
	return b, nil
}
