package indicators

import (
	"math"

	"github.com/Ayushgupta-MERN/trading-bots/internal/errors"
	"github.com/Ayushgupta-MERN/trading-bots/pkg/types"
)

const (
	// DefaultATRPeriod is the default lookback for ATR smoothing
	DefaultATRPeriod = 10
)

// TrueRange calculates the True Range for a single candle.
// True Range = max(High-Low, abs(High-PrevClose), abs(Low-PrevClose))
func TrueRange(current types.OHLCV, prevClose float64) float64 {
	hl := current.High - current.Low
	hc := math.Abs(current.High - prevClose)
	lc := math.Abs(current.Low - prevClose)

	return math.Max(hl, math.Max(hc, lc))
}

// ATR computes the Average True Range series for the whole input series.
//
// Smoothing is a simple moving average of True Range over the trailing
// `period` bars (not Wilder/EMA smoothing; the choice changes numeric
// output, so it is fixed here). The first bar's True Range is High-Low
// since no previous close exists; the first `period` entries of the
// result are types.Undefined() because the smoothing window is not yet
// fully backed by gap-aware True Range values.
func ATR(data []types.OHLCV, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.NewInvalidParameterError("indicators", "ATR", "period must be positive")
	}
	if len(data) < 2 {
		return nil, errors.NewInvalidParameterError("indicators", "ATR", "need at least 2 bars")
	}

	trueRange := make([]float64, len(data))
	trueRange[0] = data[0].High - data[0].Low
	for i := 1; i < len(data); i++ {
		trueRange[i] = TrueRange(data[i], data[i-1].Close)
	}

	atr := make([]float64, len(data))
	for i := range atr {
		atr[i] = types.Undefined()
	}

	// Rolling sum over the window ending at i. The window starts at bar 1
	// so the degenerate bar-0 True Range never feeds a defined value.
	var sum float64
	for i := 1; i < len(data); i++ {
		sum += trueRange[i]
		if i > period {
			sum -= trueRange[i-period]
		}
		if i >= period {
			atr[i] = sum / float64(period)
		}
	}

	return atr, nil
}
