package signal

import (
	"github.com/Ayushgupta-MERN/trading-bots/internal/errors"
	"github.com/Ayushgupta-MERN/trading-bots/internal/indicators"
	"github.com/Ayushgupta-MERN/trading-bots/pkg/types"
)

// Config enumerates every recognized engine option and its default.
// Zero values are rejected by Validate, not silently defaulted; use
// DefaultConfig for the documented defaults.
type Config struct {
	ATRPeriod           int     // lookback for ATR smoothing, default 10
	ATRMultiplier       float64 // band width in ATRs, default 3
	UseDualConfirmation bool    // confirm with a slow instance at multiplier+1, default true
}

// DefaultConfig returns the documented default parameters
func DefaultConfig() Config {
	return Config{
		ATRPeriod:           indicators.DefaultATRPeriod,
		ATRMultiplier:       indicators.DefaultSupertrendMultiplier,
		UseDualConfirmation: true,
	}
}

// Validate rejects invalid parameters before any computation begins
func (c Config) Validate() error {
	if c.ATRPeriod <= 0 {
		return errors.NewInvalidParameterError("signal", "Validate", "atr period must be positive")
	}
	if c.ATRMultiplier <= 0 {
		return errors.NewInvalidParameterError("signal", "Validate", "atr multiplier must be positive")
	}
	return nil
}

// SlowMultiplier returns the multiplier for the slow confirming instance
func (c Config) SlowMultiplier() float64 {
	return c.ATRMultiplier + 1
}

// Generate runs the full indicator pipeline over the input series and
// composes the per-bar signal series.
//
// Single mode maps the trend direction straight to BUY/SELL. Dual mode
// computes a second Supertrend with multiplier+1 and emits BUY only when
// both directions are bullish, SELL only when both are bearish, and
// NEUTRAL when they disagree. PositionChange_i = Signal_i - Signal_{i-1}
// (0 at the first bar); its sign marks the direction of the change, the
// magnitude carries no sizing meaning.
//
// The whole series is recomputed on every call; the engine holds no state
// across calls, so identical input and parameters yield identical output.
func Generate(data []types.OHLCV, cfg Config) ([]types.SignalRecord, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateSeries(data); err != nil {
		return nil, err
	}
	if len(data) < cfg.ATRPeriod+1 {
		return nil, errors.NewInsufficientDataError("signal", "Generate", len(data), cfg.ATRPeriod+1)
	}

	atr, err := indicators.ATR(data, cfg.ATRPeriod)
	if err != nil {
		return nil, err
	}

	fastValues, fastDirs, err := resolveTrend(data, atr, cfg.ATRMultiplier)
	if err != nil {
		return nil, err
	}

	var slowValues []float64
	var slowDirs []types.Direction
	if cfg.UseDualConfirmation {
		slowValues, slowDirs, err = resolveTrend(data, atr, cfg.SlowMultiplier())
		if err != nil {
			return nil, err
		}
	}

	records := make([]types.SignalRecord, len(data))
	for i := range data {
		rec := types.SignalRecord{
			Timestamp:      data[i].Timestamp,
			Supertrend:     fastValues[i],
			Direction:      fastDirs[i],
			SlowSupertrend: types.Undefined(),
		}

		if cfg.UseDualConfirmation {
			rec.SlowSupertrend = slowValues[i]
			rec.SlowDirection = slowDirs[i]
			rec.Signal = composeDual(fastDirs[i], slowDirs[i])
		} else {
			rec.Signal = composeSingle(fastDirs[i])
		}

		if i > 0 {
			rec.PositionChange = int(rec.Signal) - int(records[i-1].Signal)
		}
		records[i] = rec
	}

	return records, nil
}

// resolveTrend runs the band calculator and trend resolver for one
// multiplier over the shared ATR series
func resolveTrend(data []types.OHLCV, atr []float64, multiplier float64) ([]float64, []types.Direction, error) {
	bands, err := indicators.Bands(data, atr, multiplier)
	if err != nil {
		return nil, nil, err
	}
	return indicators.Supertrend(data, bands)
}

// composeSingle maps one direction to a signal; warm-up bars stay neutral
func composeSingle(dir types.Direction) types.Signal {
	switch dir {
	case types.DirectionBullish:
		return types.SignalBuy
	case types.DirectionBearish:
		return types.SignalSell
	default:
		return types.SignalNeutral
	}
}

// composeDual emits a directional signal only when both instances agree
func composeDual(fast, slow types.Direction) types.Signal {
	switch {
	case fast == types.DirectionBullish && slow == types.DirectionBullish:
		return types.SignalBuy
	case fast == types.DirectionBearish && slow == types.DirectionBearish:
		return types.SignalSell
	default:
		return types.SignalNeutral
	}
}

// validateSeries enforces the structural input rules: strictly increasing
// timestamps and High >= Low on every bar. The call fails whole; no
// partial series is ever emitted.
func validateSeries(data []types.OHLCV) error {
	for i, candle := range data {
		if candle.High < candle.Low {
			return errors.NewMalformedInputError("signal", "Generate", "high below low")
		}
		if i > 0 && !candle.Timestamp.After(data[i-1].Timestamp) {
			return errors.NewMalformedInputError("signal", "Generate", "timestamps not strictly increasing")
		}
	}
	return nil
}
