package curves

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFanCurve(t *testing.T) {
	// WHEN
	curve, err := ParseFanCurve("0:77,60:102")

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, []Point{{Temp: 0, Pwm: 77}, {Temp: 60, Pwm: 102}}, curve.Points())
}

func TestParseFanCurve_Whitespace(t *testing.T) {
	// WHEN
	curve, err := ParseFanCurve(" 0:77, 50 : 90 ,70:180 ")

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, []Point{{Temp: 0, Pwm: 77}, {Temp: 50, Pwm: 90}, {Temp: 70, Pwm: 180}}, curve.Points())
}

func TestParseFanCurve_NegativeTemperature(t *testing.T) {
	// WHEN
	curve, err := ParseFanCurve("-20:0,40:100")

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 0, curve.Lookup(-30))
}

func TestParseFanCurve_Malformed(t *testing.T) {
	var tests = []struct {
		tn    string
		input string
	}{
		{tn: "non integer temperature", input: "0:77,abc:102"},
		{tn: "non integer pwm", input: "0:77,60:fast"},
		{tn: "missing colon", input: "0:77,60"},
		{tn: "too many colons", input: "0:77:1,60:102"},
		{tn: "empty entry", input: "0:77,,60:102"},
		{tn: "trailing separator", input: "0:77,60:102,"},
		{tn: "empty", input: ""},
		{tn: "blank", input: "  "},
		{tn: "float temperature", input: "0.5:77"},
		{tn: "unordered", input: "60:102,0:77"},
		{tn: "pwm out of range", input: "0:77,60:300"},
	}
	for _, tt := range tests {
		t.Run(tt.tn, func(t *testing.T) {
			// WHEN
			curve, err := ParseFanCurve(tt.input)

			// THEN
			var formatErr *FormatError
			assert.ErrorAs(t, err, &formatErr)
			assert.Equal(t, tt.input, formatErr.Input)
			assert.True(t, curve.IsEmpty(), "no partial curve must be returned")
		})
	}
}

func TestFormatError_Message(t *testing.T) {
	// WHEN
	_, err := ParseFanCurve("0:77,abc:102")

	// THEN
	assert.EqualError(t, err, "invalid fan curve '0:77,abc:102': entry 2 'abc:102': temperature is not an integer; use 'temp1:pwm1,temp2:pwm2,...'")
}

func TestFanCurve_UnmarshalText(t *testing.T) {
	// GIVEN
	var curve FanCurve

	// WHEN
	err := curve.UnmarshalText([]byte("10:50,60:200"))

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, "10:50,60:200", curve.String())

	text, err := curve.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "10:50,60:200", string(text))
}

func TestFanCurve_UnmarshalText_KeepsOldValueOnError(t *testing.T) {
	// GIVEN
	curve, _ := ParseFanCurve("0:77,60:102")

	// WHEN
	err := curve.UnmarshalText([]byte("0:77,abc:102"))

	// THEN
	assert.Error(t, err)
	assert.Equal(t, "0:77,60:102", curve.String())
}
