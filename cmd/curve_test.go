package cmd

import (
	"testing"

	"github.com/markusressel/safc/internal/curves"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleCurve(t *testing.T) {
	// GIVEN
	curve, err := curves.ParseFanCurve("0:77,60:102")
	require.NoError(t, err)

	// WHEN
	values := sampleCurve(curve)

	// THEN
	require.Len(t, values, 71)
	assert.Equal(t, 77.0, values[0])
	assert.Equal(t, 77.0, values[59])
	assert.Equal(t, 102.0, values[60])
	assert.Equal(t, 102.0, values[70])
}

func TestSampleCurve_LargeRange(t *testing.T) {
	// GIVEN
	curve, err := curves.ParseFanCurve("0:0,1000000000:255")
	require.NoError(t, err)

	// WHEN
	values := sampleCurve(curve)

	// THEN
	assert.LessOrEqual(t, len(values), maxPlotSamples)
	assert.Greater(t, len(values), maxPlotSamples/2)
	assert.Equal(t, 0.0, values[0])
}
