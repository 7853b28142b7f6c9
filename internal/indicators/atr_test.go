package indicators

import (
	"testing"
	"time"

	"github.com/Ayushgupta-MERN/trading-bots/internal/errors"
	"github.com/Ayushgupta-MERN/trading-bots/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrueRange_GapAware(t *testing.T) {
	candle := types.OHLCV{High: 15.0, Low: 12.0, Close: 14.0}

	// No gap: plain high-low range dominates
	assert.Equal(t, 3.0, TrueRange(candle, 13.0))

	// Gap up: distance from previous close dominates
	assert.Equal(t, 7.0, TrueRange(candle, 8.0))

	// Gap down: distance from previous close dominates
	assert.Equal(t, 8.0, TrueRange(candle, 20.0))
}

func TestATR_InvalidPeriod(t *testing.T) {
	data := generateTestData(20)

	_, err := ATR(data, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidParameter)

	_, err = ATR(data, -3)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidParameter)
}

func TestATR_TooFewBars(t *testing.T) {
	_, err := ATR(generateTestData(1), 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidParameter)
}

func TestATR_WarmupUndefined(t *testing.T) {
	data := generateTestData(30)

	atr, err := ATR(data, 10)
	require.NoError(t, err)
	require.Len(t, atr, 30)

	for i := 0; i < 10; i++ {
		assert.False(t, types.IsDefined(atr[i]), "bar %d should be warm-up", i)
	}
	for i := 10; i < 30; i++ {
		require.True(t, types.IsDefined(atr[i]), "bar %d should be defined", i)
		assert.GreaterOrEqual(t, atr[i], 0.0)
	}
}

func TestATR_KnownValues(t *testing.T) {
	data := []types.OHLCV{
		makeBar(0, 12, 10, 11),
		makeBar(1, 13, 11, 12), // TR = 2
		makeBar(2, 15, 12, 14), // TR = 3
		makeBar(3, 14, 12, 13), // TR = 2
		makeBar(4, 16, 13, 15), // TR = 3
	}

	atr, err := ATR(data, 3)
	require.NoError(t, err)

	assert.False(t, types.IsDefined(atr[2]))
	assert.InDelta(t, (2.0+3.0+2.0)/3.0, atr[3], 1e-9)
	assert.InDelta(t, (3.0+2.0+3.0)/3.0, atr[4], 1e-9)
}

func TestATR_ConstantPriceIsZero(t *testing.T) {
	data := generateFlatData(30)

	atr, err := ATR(data, 10)
	require.NoError(t, err)

	for i := 10; i < 30; i++ {
		assert.Equal(t, 0.0, atr[i], "flat market should have zero ATR at bar %d", i)
	}
}

// makeBar builds one candle with hourly spacing from a fixed base time
func makeBar(i int, high, low, close float64) types.OHLCV {
	return types.OHLCV{
		Timestamp: baseTime().Add(time.Duration(i) * time.Hour),
		Open:      close,
		High:      high,
		Low:       low,
		Close:     close,
		Volume:    1000.0,
	}
}

func baseTime() time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
}

// generateTestData creates test data with deterministic price movements
func generateTestData(count int) []types.OHLCV {
	data := make([]types.OHLCV, count)
	basePrice := 100.0

	for i := 0; i < count; i++ {
		change := (float64(i%3) - 1) * 2.0 // -2, 0, or 2
		price := basePrice + change

		data[i] = types.OHLCV{
			Timestamp: baseTime().Add(time.Duration(i) * time.Hour),
			Open:      price,
			High:      price + 1.0,
			Low:       price - 1.0,
			Close:     price,
			Volume:    1000.0,
		}
		basePrice = price
	}

	return data
}

// generateFlatData creates bars where high = low = close = 100
func generateFlatData(count int) []types.OHLCV {
	data := make([]types.OHLCV, count)

	for i := 0; i < count; i++ {
		data[i] = types.OHLCV{
			Timestamp: baseTime().Add(time.Duration(i) * time.Hour),
			Open:      100.0,
			High:      100.0,
			Low:       100.0,
			Close:     100.0,
			Volume:    1000.0,
		}
	}

	return data
}

// generateRisingData creates data with a steadily rising trend
func generateRisingData(count int) []types.OHLCV {
	data := make([]types.OHLCV, count)
	basePrice := 100.0

	for i := 0; i < count; i++ {
		price := basePrice + float64(i)*0.5
		data[i] = types.OHLCV{
			Timestamp: baseTime().Add(time.Duration(i) * time.Hour),
			Open:      price,
			High:      price + 1.0,
			Low:       price - 1.0,
			Close:     price,
			Volume:    1000.0,
		}
	}

	return data
}
