package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "UP", DirectionBullish.String())
	assert.Equal(t, "DOWN", DirectionBearish.String())

	// The zero value is the warm-up state, not a bearish reading
	assert.Equal(t, "-", Direction(0).String())
}

func TestSignal_String(t *testing.T) {
	assert.Equal(t, "BUY", SignalBuy.String())
	assert.Equal(t, "SELL", SignalSell.String())
	assert.Equal(t, "NEUTRAL", SignalNeutral.String())
}

func TestUndefined_Sentinel(t *testing.T) {
	assert.False(t, IsDefined(Undefined()))
	assert.True(t, IsDefined(0)) // zero is a real value, not a gap
}
