package curves

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createCurve(t *testing.T, points ...Point) FanCurve {
	curve, err := NewFanCurve(points)
	require.NoError(t, err)
	return curve
}

func TestFanCurve_Lookup_DefaultCurve(t *testing.T) {
	// GIVEN
	curve := createCurve(t, Point{Temp: 0, Pwm: 77}, Point{Temp: 60, Pwm: 102})

	expectedInputOutput := map[float64]int{
		-10:   77,
		0:     77,
		59:    77,
		59.99: 77,
		60:    102,
		200:   102,
	}

	for input, output := range expectedInputOutput {
		// WHEN
		result := curve.Lookup(input)

		// THEN
		assert.Equal(t, output, result, "lookup(%v)", input)
	}
}

func TestFanCurve_Lookup_UsesLowerBound(t *testing.T) {
	// GIVEN
	curve := createCurve(t,
		Point{Temp: 40, Pwm: 50},
		Point{Temp: 50, Pwm: 100},
		Point{Temp: 70, Pwm: 200},
	)

	// THEN
	assert.Equal(t, 50, curve.Lookup(20))
	assert.Equal(t, 50, curve.Lookup(45))
	assert.Equal(t, 100, curve.Lookup(50))
	assert.Equal(t, 100, curve.Lookup(69.9))
	assert.Equal(t, 200, curve.Lookup(70))
	assert.Equal(t, 200, curve.Lookup(95))
}

func TestFanCurve_Lookup_SinglePoint(t *testing.T) {
	// GIVEN
	curve := createCurve(t, Point{Temp: 50, Pwm: 128})

	// THEN
	assert.Equal(t, 128, curve.Lookup(-273))
	assert.Equal(t, 128, curve.Lookup(50))
	assert.Equal(t, 128, curve.Lookup(120))
}

func TestFanCurve_Lookup_EmptyCurve(t *testing.T) {
	// GIVEN
	curve := FanCurve{}

	// WHEN
	result := curve.Lookup(80)

	// THEN
	assert.Equal(t, MinPwmValue, result)
}

func TestFanCurve_Lookup_IsMonotonic(t *testing.T) {
	// GIVEN
	curve := createCurve(t,
		Point{Temp: 0, Pwm: 30},
		Point{Temp: 35, Pwm: 60},
		Point{Temp: 50, Pwm: 90},
		Point{Temp: 65, Pwm: 160},
		Point{Temp: 80, Pwm: 255},
	)

	// WHEN
	last := curve.Lookup(-50)
	for temp := -50.0; temp <= 150.0; temp += 0.25 {
		current := curve.Lookup(temp)

		// THEN
		assert.GreaterOrEqual(t, current, last, "lookup(%v)", temp)
		last = current
	}
}

func TestNewFanCurve_Empty(t *testing.T) {
	// WHEN
	_, err := NewFanCurve(nil)

	// THEN
	var formatErr *FormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestNewFanCurve_NotStrictlyIncreasing(t *testing.T) {
	// GIVEN
	points := []Point{
		{Temp: 60, Pwm: 102},
		{Temp: 0, Pwm: 77},
	}

	// WHEN
	_, err := NewFanCurve(points)

	// THEN
	assert.ErrorContains(t, err, "strictly increasing")
}

func TestNewFanCurve_DuplicateTemperature(t *testing.T) {
	// GIVEN
	points := []Point{
		{Temp: 60, Pwm: 102},
		{Temp: 60, Pwm: 120},
	}

	// WHEN
	_, err := NewFanCurve(points)

	// THEN
	assert.ErrorContains(t, err, "strictly increasing")
}

func TestNewFanCurve_PwmOutOfRange(t *testing.T) {
	// WHEN
	_, err := NewFanCurve([]Point{{Temp: 0, Pwm: 256}})

	// THEN
	assert.ErrorContains(t, err, "out of range")

	// WHEN
	_, err = NewFanCurve([]Point{{Temp: 0, Pwm: -1}})

	// THEN
	assert.ErrorContains(t, err, "out of range")
}

func TestFanCurve_PointsReturnsCopy(t *testing.T) {
	// GIVEN
	curve := createCurve(t, Point{Temp: 0, Pwm: 77}, Point{Temp: 60, Pwm: 102})

	// WHEN
	points := curve.Points()
	points[0].Pwm = 255

	// THEN
	assert.Equal(t, 77, curve.Lookup(10))
	assert.Equal(t, []Point{{Temp: 0, Pwm: 77}, {Temp: 60, Pwm: 102}}, curve.Points())
}

func TestNewFanCurve_DoesNotAliasInput(t *testing.T) {
	// GIVEN
	points := []Point{{Temp: 0, Pwm: 77}, {Temp: 60, Pwm: 102}}
	curve := createCurve(t, points...)

	// WHEN
	points[1].Pwm = 0

	// THEN
	assert.Equal(t, 102, curve.Lookup(60))
}

func TestFanCurve_String(t *testing.T) {
	// GIVEN
	curve := createCurve(t, Point{Temp: 0, Pwm: 77}, Point{Temp: 60, Pwm: 102})

	// THEN
	assert.Equal(t, "0:77,60:102", curve.String())
	assert.Equal(t, 2, curve.Len())
	assert.False(t, curve.IsEmpty())
	assert.True(t, FanCurve{}.IsEmpty())
}
