package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags(atrPeriod int, multiplier float64) *EngineFlags {
	dataFile := "candles.csv"
	falseVal := false
	return &EngineFlags{
		DataFile:    &dataFile,
		ATRPeriod:   &atrPeriod,
		Multiplier:  &multiplier,
		ShowVersion: &falseVal,
		ShowHelp:    &falseVal,
	}
}

func TestValidateEngineFlags_ZeroDefersToEnvironment(t *testing.T) {
	// Zero is the "not set" sentinel for both engine parameters
	require.NoError(t, ValidateEngineFlags(testFlags(0, 0)))
	require.NoError(t, ValidateEngineFlags(testFlags(14, 2.5)))
}

func TestValidateEngineFlags_RejectsNegatives(t *testing.T) {
	err := ValidateEngineFlags(testFlags(-1, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")

	err = ValidateEngineFlags(testFlags(0, -0.5))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")
}

func TestValidateEngineFlags_RequiresDataFile(t *testing.T) {
	flags := testFlags(0, 0)
	empty := "  "
	flags.DataFile = &empty

	err := ValidateEngineFlags(flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-data is required")
}
