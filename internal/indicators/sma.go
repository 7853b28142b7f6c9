package indicators

import (
	"github.com/Ayushgupta-MERN/trading-bots/internal/errors"
	"github.com/Ayushgupta-MERN/trading-bots/pkg/types"
)

// SMA computes the simple moving average of closes over the trailing
// `period` bars. The first period-1 entries are types.Undefined().
func SMA(data []types.OHLCV, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.NewInvalidParameterError("indicators", "SMA", "period must be positive")
	}
	if len(data) < period {
		return nil, errors.NewInsufficientDataError("indicators", "SMA", len(data), period)
	}

	sma := make([]float64, len(data))
	for i := range sma {
		sma[i] = types.Undefined()
	}

	var sum float64
	for i := range data {
		sum += data[i].Close
		if i >= period {
			sum -= data[i-period].Close
		}
		if i >= period-1 {
			sma[i] = sum / float64(period)
		}
	}

	return sma, nil
}
