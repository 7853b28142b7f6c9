package data

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Ayushgupta-MERN/trading-bots/internal/errors"
	"github.com/Ayushgupta-MERN/trading-bots/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVProvider_LoadData(t *testing.T) {
	path := writeCSV(t, `timestamp,open,high,low,close,volume
2024-01-01 00:00:00,100,101,99,100.5,1500
2024-01-01 01:00:00,100.5,102,100,101.5,1800
2024-01-01 02:00:00,101.5,103,101,102,2100
`)

	provider := NewCSVProvider()
	data, err := provider.LoadData(path)
	require.NoError(t, err)
	require.Len(t, data, 3)

	assert.Equal(t, 100.0, data[0].Open)
	assert.Equal(t, 103.0, data[2].High)
	assert.Equal(t, 101.5, data[1].Close)
	assert.Equal(t, time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC), data[1].Timestamp)
}

func TestCSVProvider_UnixMillisFormat(t *testing.T) {
	path := writeCSV(t, `timestamp,open,high,low,close,volume
1704067200000,100,101,99,100.5,1500
1704070800000,100.5,102,100,101.5,1800
`)

	provider := NewCSVProviderWithFormat(UnixMillisCSVFormat)
	data, err := provider.LoadData(path)
	require.NoError(t, err)
	require.Len(t, data, 2)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), data[0].Timestamp)
}

func TestCSVProvider_MalformedRowsFailWhole(t *testing.T) {
	tests := []struct {
		name string
		rows string
	}{
		{"bad price", "2024-01-01 00:00:00,abc,101,99,100.5,1500\n"},
		{"bad timestamp", "not-a-time,100,101,99,100.5,1500\n"},
		{"missing columns", "2024-01-01 00:00:00,100,101\n"},
		{"missing columns mid-series", "2024-01-01 00:00:00,100,101,99,100.5,1500\n2024-01-01 01:00:00,100,101\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, "timestamp,open,high,low,close,volume\n"+tt.rows)

			_, err := NewCSVProvider().LoadData(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrMalformedInput)
		})
	}
}

func TestCSVProvider_ValidateData(t *testing.T) {
	provider := NewCSVProvider()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	valid := []types.OHLCV{
		{Timestamp: base, Open: 100, High: 101, Low: 99, Close: 100, Volume: 1},
		{Timestamp: base.Add(time.Hour), Open: 100, High: 102, Low: 100, Close: 101, Volume: 1},
	}
	assert.NoError(t, provider.ValidateData(valid))

	highBelowLow := []types.OHLCV{
		{Timestamp: base, Open: 100, High: 98, Low: 99, Close: 100, Volume: 1},
	}
	assert.ErrorIs(t, provider.ValidateData(highBelowLow), errors.ErrMalformedInput)

	duplicateTimestamp := []types.OHLCV{
		{Timestamp: base, Open: 100, High: 101, Low: 99, Close: 100, Volume: 1},
		{Timestamp: base, Open: 100, High: 101, Low: 99, Close: 100, Volume: 1},
	}
	assert.ErrorIs(t, provider.ValidateData(duplicateTimestamp), errors.ErrMalformedInput)

	assert.ErrorIs(t, provider.ValidateData(nil), errors.ErrMalformedInput)
}

func TestCachedProvider_LoadsOnce(t *testing.T) {
	path := writeCSV(t, `timestamp,open,high,low,close,volume
2024-01-01 00:00:00,100,101,99,100.5,1500
2024-01-01 01:00:00,100.5,102,100,101.5,1800
`)

	cached := NewCachedProvider(NewCSVProvider())

	first, err := cached.LoadData(path)
	require.NoError(t, err)

	// Remove the file; a second load must come from cache
	require.NoError(t, os.Remove(path))

	second, err := cached.LoadData(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseTrailingPeriod(t *testing.T) {
	d, ok := ParseTrailingPeriod("30d")
	require.True(t, ok)
	assert.Equal(t, 30*24*time.Hour, d)

	_, ok = ParseTrailingPeriod("30h")
	assert.False(t, ok)
	_, ok = ParseTrailingPeriod("d")
	assert.False(t, ok)
	_, ok = ParseTrailingPeriod("0d")
	assert.False(t, ok)
}

func TestDefaultFilter_FilterByDateRange(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	data := make([]types.OHLCV, 10)
	for i := range data {
		data[i] = types.OHLCV{Timestamp: base.Add(time.Duration(i) * time.Hour), Open: 100, High: 101, Low: 99, Close: 100}
	}

	filter := NewDefaultFilter()
	got := filter.FilterByDateRange(data, base.Add(2*time.Hour), base.Add(5*time.Hour))
	require.Len(t, got, 4)
	assert.Equal(t, base.Add(2*time.Hour), got[0].Timestamp)
	assert.Equal(t, base.Add(5*time.Hour), got[3].Timestamp)
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "candles.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
