package data

import (
	"time"

	"github.com/Ayushgupta-MERN/trading-bots/pkg/types"
)

// DefaultFilter implements Filter for common narrowing operations
type DefaultFilter struct{}

// NewDefaultFilter creates a new default data filter
func NewDefaultFilter() *DefaultFilter {
	return &DefaultFilter{}
}

// FilterByPeriod keeps only the trailing period of the series
func (f *DefaultFilter) FilterByPeriod(data []types.OHLCV, period time.Duration) []types.OHLCV {
	if period <= 0 || len(data) == 0 {
		return data
	}

	cutoff := data[len(data)-1].Timestamp.Add(-period)

	startIdx := 0
	for i, candle := range data {
		if !candle.Timestamp.Before(cutoff) {
			startIdx = i
			break
		}
	}

	return data[startIdx:]
}

// FilterByDateRange keeps bars within [start, end]
func (f *DefaultFilter) FilterByDateRange(data []types.OHLCV, start, end time.Time) []types.OHLCV {
	if len(data) == 0 {
		return data
	}

	var filtered []types.OHLCV
	for _, candle := range data {
		if !candle.Timestamp.Before(start) && !candle.Timestamp.After(end) {
			filtered = append(filtered, candle)
		}
	}

	return filtered
}

// ParseTrailingPeriod parses period strings like "7d", "30d", "365d"
// into a duration. Returns false for anything it does not recognize.
func ParseTrailingPeriod(s string) (time.Duration, bool) {
	if len(s) < 2 || s[len(s)-1] != 'd' {
		return 0, false
	}

	days := 0
	for _, c := range s[:len(s)-1] {
		if c < '0' || c > '9' {
			return 0, false
		}
		days = days*10 + int(c-'0')
	}
	if days == 0 {
		return 0, false
	}

	return time.Duration(days) * 24 * time.Hour, true
}
