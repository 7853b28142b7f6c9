package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Ayushgupta-MERN/trading-bots/pkg/types"
)

// DefaultJSONFormatter implements JSON output functionality
type DefaultJSONFormatter struct{}

// NewDefaultJSONFormatter creates a new JSON formatter
func NewDefaultJSONFormatter() *DefaultJSONFormatter {
	return &DefaultJSONFormatter{}
}

// snapshot is the machine-readable view of the latest engine state.
// Undefined warm-up values serialize as null, not 0.
type snapshot struct {
	Symbol         string    `json:"symbol"`
	Interval       string    `json:"interval"`
	ATRPeriod      int       `json:"atr_period"`
	ATRMultiplier  float64   `json:"atr_multiplier"`
	DualMode       bool      `json:"dual_confirmation"`
	Timestamp      time.Time `json:"timestamp"`
	Signal         string    `json:"signal"`
	Supertrend     *float64  `json:"supertrend"`
	Direction      string    `json:"direction,omitempty"`
	SlowSupertrend *float64  `json:"slow_supertrend,omitempty"`
	SlowDirection  string    `json:"slow_direction,omitempty"`
	PositionChange int       `json:"position_change"`
	TotalBars      int       `json:"total_bars"`
	TotalEvents    int       `json:"total_events"`
}

// FormatSnapshot renders the latest record as indented JSON
func (f *DefaultJSONFormatter) FormatSnapshot(report *Report) ([]byte, error) {
	latest, ok := report.Latest()
	if !ok {
		return nil, fmt.Errorf("empty signal series")
	}

	s := snapshot{
		Symbol:         report.Symbol,
		Interval:       report.Interval,
		ATRPeriod:      report.Config.ATRPeriod,
		ATRMultiplier:  report.Config.ATRMultiplier,
		DualMode:       report.Config.UseDualConfirmation,
		Timestamp:      latest.Timestamp,
		Signal:         latest.Signal.String(),
		Supertrend:     jsonValue(latest.Supertrend),
		PositionChange: latest.PositionChange,
		TotalBars:      len(report.Records),
		TotalEvents:    len(report.Events()),
	}
	if latest.Direction != 0 {
		s.Direction = latest.Direction.String()
	}
	if report.Config.UseDualConfirmation {
		s.SlowSupertrend = jsonValue(latest.SlowSupertrend)
		if latest.SlowDirection != 0 {
			s.SlowDirection = latest.SlowDirection.String()
		}
	}

	return json.MarshalIndent(s, "", "  ")
}

// WriteSnapshotJSON writes the latest-state snapshot to a file
func (f *DefaultJSONFormatter) WriteSnapshotJSON(report *Report, path string) error {
	data, err := f.FormatSnapshot(report)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return os.WriteFile(path, append(data, '\n'), 0644)
}

func jsonValue(v float64) *float64 {
	if !types.IsDefined(v) {
		return nil
	}
	return &v
}
