package indicators

import (
	"testing"

	"github.com/Ayushgupta-MERN/trading-bots/internal/errors"
	"github.com/Ayushgupta-MERN/trading-bots/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBands_InvalidMultiplier(t *testing.T) {
	data := generateTestData(30)
	atr, err := ATR(data, 10)
	require.NoError(t, err)

	_, err = Bands(data, atr, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidParameter)

	_, err = Bands(data, atr, -2.5)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidParameter)
}

func TestBands_LengthMismatch(t *testing.T) {
	data := generateTestData(30)
	atr, err := ATR(data, 10)
	require.NoError(t, err)

	_, err = Bands(data[:20], atr, 3.0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidParameter)
}

func TestBands_WarmupUndefined(t *testing.T) {
	data := generateTestData(30)
	atr, err := ATR(data, 10)
	require.NoError(t, err)

	bands, err := Bands(data, atr, 3.0)
	require.NoError(t, err)
	require.Len(t, bands, 30)

	for i := 0; i < 10; i++ {
		assert.False(t, bands[i].Defined(), "bar %d should be warm-up", i)
		assert.False(t, types.IsDefined(bands[i].Upper))
		assert.False(t, types.IsDefined(bands[i].Lower))
	}
	for i := 10; i < 30; i++ {
		assert.True(t, bands[i].Defined(), "bar %d should be defined", i)
	}
}

func TestBands_RawBandsAroundMedian(t *testing.T) {
	data := generateTestData(30)
	atr, err := ATR(data, 10)
	require.NoError(t, err)

	bands, err := Bands(data, atr, 3.0)
	require.NoError(t, err)

	for i := 10; i < 30; i++ {
		median := (data[i].High + data[i].Low) / 2.0
		assert.InDelta(t, median+3.0*atr[i], bands[i].Upper, 1e-9)
		assert.InDelta(t, median-3.0*atr[i], bands[i].Lower, 1e-9)
	}
}

func TestBands_FirstDefinedBarSeedsFromRaw(t *testing.T) {
	data := generateTestData(30)
	atr, err := ATR(data, 10)
	require.NoError(t, err)

	bands, err := Bands(data, atr, 3.0)
	require.NoError(t, err)

	assert.Equal(t, bands[10].Upper, bands[10].AdjUpper)
	assert.Equal(t, bands[10].Lower, bands[10].AdjLower)
}

// The adjusted upper band may only move down, and the adjusted lower band
// only up, unless the previous close breached the band and reset the
// ratchet to the raw value.
func TestBands_RatchetRule(t *testing.T) {
	data := generateTestData(60)
	atr, err := ATR(data, 10)
	require.NoError(t, err)

	bands, err := Bands(data, atr, 2.0)
	require.NoError(t, err)

	for i := 11; i < 60; i++ {
		prev := bands[i-1]
		prevClose := data[i-1].Close

		if bands[i].Upper < prev.AdjUpper || prevClose > prev.AdjUpper {
			assert.Equal(t, bands[i].Upper, bands[i].AdjUpper, "bar %d should reset upper ratchet", i)
		} else {
			assert.Equal(t, prev.AdjUpper, bands[i].AdjUpper, "bar %d should carry upper band", i)
		}

		if bands[i].Lower > prev.AdjLower || prevClose < prev.AdjLower {
			assert.Equal(t, bands[i].Lower, bands[i].AdjLower, "bar %d should reset lower ratchet", i)
		} else {
			assert.Equal(t, prev.AdjLower, bands[i].AdjLower, "bar %d should carry lower band", i)
		}
	}
}

func TestBands_RisingMarketRatchetsLowerBandUp(t *testing.T) {
	data := generateRisingData(60)
	atr, err := ATR(data, 10)
	require.NoError(t, err)

	bands, err := Bands(data, atr, 3.0)
	require.NoError(t, err)

	for i := 11; i < 60; i++ {
		assert.GreaterOrEqual(t, bands[i].AdjLower, bands[i-1].AdjLower,
			"lower band must trail the rising trend upward at bar %d", i)
	}
}

func TestBands_ConstantPriceCollapses(t *testing.T) {
	data := generateFlatData(30)
	atr, err := ATR(data, 10)
	require.NoError(t, err)

	bands, err := Bands(data, atr, 3.0)
	require.NoError(t, err)

	for i := 10; i < 30; i++ {
		assert.Equal(t, 100.0, bands[i].Upper)
		assert.Equal(t, 100.0, bands[i].Lower)
		assert.Equal(t, 100.0, bands[i].AdjUpper)
		assert.Equal(t, 100.0, bands[i].AdjLower)
	}
}
