package data

import (
	"time"

	"github.com/Ayushgupta-MERN/trading-bots/pkg/types"
)

// Provider loads an OHLC series from an external hand-off source.
// Implementations return the series whole or fail whole; a partially
// parsed series is never returned.
type Provider interface {
	// LoadData loads the series from the specified source
	LoadData(source string) ([]types.OHLCV, error)

	// ValidateData validates the structural integrity of a loaded series
	ValidateData(data []types.OHLCV) error

	// GetName returns the name of the data provider
	GetName() string
}

// Cache holds already-loaded series keyed by source
type Cache interface {
	Get(key string) ([]types.OHLCV, bool)
	Set(key string, data []types.OHLCV)
	Clear()
	Size() int
}

// Filter narrows a series before it is handed to the engine
type Filter interface {
	// FilterByPeriod keeps only the trailing period of the series
	FilterByPeriod(data []types.OHLCV, period time.Duration) []types.OHLCV

	// FilterByDateRange keeps bars within [start, end]
	FilterByDateRange(data []types.OHLCV, start, end time.Time) []types.OHLCV
}

// CSVColumnMapping defines the column positions for different CSV layouts
type CSVColumnMapping struct {
	TimestampCol int
	OpenCol      int
	HighCol      int
	LowCol       int
	CloseCol     int
	VolumeCol    int
	MinColumns   int
	DateFormat   string
}

// Predefined CSV formats
var (
	// DefaultCSVFormat: timestamp,open,high,low,close,volume with
	// "2006-01-02 15:04:05" timestamps
	DefaultCSVFormat = CSVColumnMapping{
		TimestampCol: 0,
		OpenCol:      1,
		HighCol:      2,
		LowCol:       3,
		CloseCol:     4,
		VolumeCol:    5,
		MinColumns:   6,
		DateFormat:   "2006-01-02 15:04:05",
	}

	// UnixMillisCSVFormat: same column order with epoch-millisecond
	// timestamps, as produced by most exchange export tools
	UnixMillisCSVFormat = CSVColumnMapping{
		TimestampCol: 0,
		OpenCol:      1,
		HighCol:      2,
		LowCol:       3,
		CloseCol:     4,
		VolumeCol:    5,
		MinColumns:   6,
		DateFormat:   "", // empty means epoch milliseconds
	}
)
