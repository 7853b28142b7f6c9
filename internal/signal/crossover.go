package signal

import (
	"github.com/Ayushgupta-MERN/trading-bots/internal/errors"
	"github.com/Ayushgupta-MERN/trading-bots/internal/indicators"
	"github.com/Ayushgupta-MERN/trading-bots/pkg/types"
)

// CrossoverConfig parameterizes the SMA-crossover signal generator
type CrossoverConfig struct {
	ShortWindow int // default 20
	LongWindow  int // default 50
}

// DefaultCrossoverConfig returns the documented default windows
func DefaultCrossoverConfig() CrossoverConfig {
	return CrossoverConfig{
		ShortWindow: 20,
		LongWindow:  50,
	}
}

// Validate rejects invalid window parameters
func (c CrossoverConfig) Validate() error {
	if c.ShortWindow <= 0 || c.LongWindow <= 0 {
		return errors.NewInvalidParameterError("signal", "Validate", "sma windows must be positive")
	}
	if c.ShortWindow >= c.LongWindow {
		return errors.NewInvalidParameterError("signal", "Validate", "short window must be below long window")
	}
	return nil
}

// GenerateCrossover emits signals from a fast/slow SMA crossover: BUY
// while the short average is above the long one, SELL while below,
// NEUTRAL during the long window's warm-up and on exact ties.
// PositionChange follows the same difference rule as Generate.
func GenerateCrossover(data []types.OHLCV, cfg CrossoverConfig) ([]types.SignalRecord, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateSeries(data); err != nil {
		return nil, err
	}
	if len(data) < cfg.LongWindow {
		return nil, errors.NewInsufficientDataError("signal", "GenerateCrossover", len(data), cfg.LongWindow)
	}

	short, err := indicators.SMA(data, cfg.ShortWindow)
	if err != nil {
		return nil, err
	}
	long, err := indicators.SMA(data, cfg.LongWindow)
	if err != nil {
		return nil, err
	}

	records := make([]types.SignalRecord, len(data))
	for i := range data {
		rec := types.SignalRecord{
			Timestamp:      data[i].Timestamp,
			Supertrend:     types.Undefined(),
			SlowSupertrend: types.Undefined(),
		}

		if types.IsDefined(short[i]) && types.IsDefined(long[i]) {
			switch {
			case short[i] > long[i]:
				rec.Signal = types.SignalBuy
			case short[i] < long[i]:
				rec.Signal = types.SignalSell
			}
		}

		if i > 0 {
			rec.PositionChange = int(rec.Signal) - int(records[i-1].Signal)
		}
		records[i] = rec
	}

	return records, nil
}
