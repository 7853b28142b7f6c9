package indicators

import (
	"github.com/Ayushgupta-MERN/trading-bots/internal/errors"
	"github.com/Ayushgupta-MERN/trading-bots/pkg/types"
)

const (
	// DefaultSupertrendMultiplier is the default band multiplier
	DefaultSupertrendMultiplier = 3.0
)

// Supertrend walks the adjusted band series in time order and resolves,
// per bar, the trend direction and the Supertrend line value.
//
// State machine, given the previous direction:
//
//	bullish: flips bearish iff Close_i < AdjLower_i; line = AdjLower while
//	         bullish, AdjUpper after a flip
//	bearish: flips bullish iff Close_i > AdjUpper_i; line = AdjUpper while
//	         bearish, AdjLower after a flip
//
// The first bar with defined bands seeds the direction by comparing the
// close to the midpoint of the raw bands: bullish when Close >= midpoint
// (ties resolve bullish), bearish otherwise. Every later flip derives from
// this seed, so the rule is fixed rather than configurable.
//
// Warm-up bars carry types.Undefined() in the value series and a zero
// Direction; both outputs always have the same length as the input.
func Supertrend(data []types.OHLCV, bands []Band) ([]float64, []types.Direction, error) {
	if len(bands) != len(data) {
		return nil, nil, errors.NewInvalidParameterError("indicators", "Supertrend", "band series length must match ohlc series length")
	}

	values := make([]float64, len(data))
	directions := make([]types.Direction, len(data))
	seeded := false

	for i := range data {
		if !bands[i].Defined() {
			values[i] = types.Undefined()
			continue
		}

		close := data[i].Close

		if !seeded {
			midpoint := (bands[i].Upper + bands[i].Lower) / 2.0
			if close >= midpoint {
				directions[i] = types.DirectionBullish
				values[i] = bands[i].AdjLower
			} else {
				directions[i] = types.DirectionBearish
				values[i] = bands[i].AdjUpper
			}
			seeded = true
			continue
		}

		prevDir := directions[i-1]

		if prevDir == types.DirectionBullish {
			if close < bands[i].AdjLower {
				directions[i] = types.DirectionBearish
				values[i] = bands[i].AdjUpper
			} else {
				directions[i] = types.DirectionBullish
				values[i] = bands[i].AdjLower
			}
		} else {
			if close > bands[i].AdjUpper {
				directions[i] = types.DirectionBullish
				values[i] = bands[i].AdjLower
			} else {
				directions[i] = types.DirectionBearish
				values[i] = bands[i].AdjUpper
			}
		}
	}

	return values, directions, nil
}
