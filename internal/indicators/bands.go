package indicators

import (
	"github.com/Ayushgupta-MERN/trading-bots/internal/errors"
	"github.com/Ayushgupta-MERN/trading-bots/pkg/types"
)

// Band holds the raw and adjusted volatility bands for one bar.
// All four values are types.Undefined() while ATR is still warming up.
type Band struct {
	Upper    float64 // raw upper band: HL2 + multiplier*ATR
	Lower    float64 // raw lower band: HL2 - multiplier*ATR
	AdjUpper float64 // final upper band after the downward-only ratchet
	AdjLower float64 // final lower band after the upward-only ratchet
}

// Defined reports whether this bar has band values
func (b Band) Defined() bool {
	return types.IsDefined(b.AdjUpper)
}

// Bands computes the raw and adjusted band series from price and ATR.
//
// Adjusted bands ratchet in the trend-confirming direction only:
//
//	AdjUpper_i = Upper_i  if Upper_i < AdjUpper_{i-1} or Close_{i-1} > AdjUpper_{i-1}, else AdjUpper_{i-1}
//	AdjLower_i = Lower_i  if Lower_i > AdjLower_{i-1} or Close_{i-1} < AdjLower_{i-1}, else AdjLower_{i-1}
//
// Each output depends on the previous bar's output, so the series is
// produced in a single forward pass with carried state. The first bar
// with a defined ATR seeds the adjusted bands from the raw bands.
func Bands(data []types.OHLCV, atr []float64, multiplier float64) ([]Band, error) {
	if multiplier <= 0 {
		return nil, errors.NewInvalidParameterError("indicators", "Bands", "multiplier must be positive")
	}
	if len(atr) != len(data) {
		return nil, errors.NewInvalidParameterError("indicators", "Bands", "atr series length must match ohlc series length")
	}

	bands := make([]Band, len(data))
	seeded := false

	for i := range data {
		if !types.IsDefined(atr[i]) {
			bands[i] = Band{
				Upper:    types.Undefined(),
				Lower:    types.Undefined(),
				AdjUpper: types.Undefined(),
				AdjLower: types.Undefined(),
			}
			continue
		}

		median := (data[i].High + data[i].Low) / 2.0
		upper := median + multiplier*atr[i]
		lower := median - multiplier*atr[i]

		bands[i].Upper = upper
		bands[i].Lower = lower

		if !seeded {
			bands[i].AdjUpper = upper
			bands[i].AdjLower = lower
			seeded = true
			continue
		}

		prev := bands[i-1]
		prevClose := data[i-1].Close

		if upper < prev.AdjUpper || prevClose > prev.AdjUpper {
			bands[i].AdjUpper = upper
		} else {
			bands[i].AdjUpper = prev.AdjUpper
		}

		if lower > prev.AdjLower || prevClose < prev.AdjLower {
			bands[i].AdjLower = lower
		} else {
			bands[i].AdjLower = prev.AdjLower
		}
	}

	return bands, nil
}
