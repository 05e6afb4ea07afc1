package calculator

import (
	"errors"

	"TickerScribe/internal/model"
)

// SMASeries computes the simple moving average of closes over a trailing
// window of the given period. The result has the same length as closes;
// indices with fewer than period bars of history are NaN. The window sum is
// maintained incrementally, so the whole series costs O(n).
func SMASeries(closes []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	out := make([]float64, len(closes))
	sum := 0.0
	for i, c := range closes {
		sum += c
		if i >= period {
			sum -= closes[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		} else {
			out[i] = model.Undefined()
		}
	}
	return out, nil
}
