package types

import (
	"math"
	"time"
)

type OHLCV struct {
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
	Timestamp time.Time
}

// Direction is the Supertrend trend direction for a bar
type Direction int

const (
	DirectionBullish Direction = 1
	DirectionBearish Direction = -1
)

// Signal is the discrete trading signal for a bar
type Signal int

const (
	SignalBuy     Signal = 1
	SignalSell    Signal = -1
	SignalNeutral Signal = 0
)

// String returns a human-readable label for the signal
func (s Signal) String() string {
	switch s {
	case SignalBuy:
		return "BUY"
	case SignalSell:
		return "SELL"
	default:
		return "NEUTRAL"
	}
}

// String returns a human-readable label for the direction.
// The zero value (warm-up, no direction yet) renders as "-".
func (d Direction) String() string {
	switch d {
	case DirectionBullish:
		return "UP"
	case DirectionBearish:
		return "DOWN"
	default:
		return "-"
	}
}

// SignalRecord is one bar of the derived signal series.
// Supertrend and the slow fields hold Undefined() during the ATR warm-up.
type SignalRecord struct {
	Timestamp      time.Time
	Signal         Signal
	Supertrend     float64
	Direction      Direction
	SlowSupertrend float64
	SlowDirection  Direction
	PositionChange int
}

// Undefined returns the sentinel used for warm-up gaps in derived series.
// It is distinct from zero: an ATR of zero is a real value (flat market),
// an undefined ATR means not enough bars have been observed yet.
func Undefined() float64 {
	return math.NaN()
}

// IsDefined reports whether v carries a real value rather than the
// warm-up sentinel.
func IsDefined(v float64) bool {
	return !math.IsNaN(v)
}
