package curves

import (
	"fmt"
	"strings"

	"github.com/qdm12/reprint"
)

const (
	MinPwmValue = 0
	MaxPwmValue = 255
)

// Point maps a minimum temperature (in °C) to the PWM value
// that should be used at or above it.
type Point struct {
	Temp int `json:"temp" yaml:"temp"`
	Pwm  int `json:"pwm" yaml:"pwm"`
}

// FanCurve is an immutable step function of temperature -> pwm.
// Points are sorted by strictly increasing temperature and there is at least one.
type FanCurve struct {
	points []Point
}

// NewFanCurve validates the given points and creates a FanCurve from them.
// The order of points is preserved, it is an error if it is not strictly increasing.
func NewFanCurve(points []Point) (FanCurve, error) {
	if len(points) <= 0 {
		return FanCurve{}, &FormatError{Reason: "curve is empty"}
	}

	for i, point := range points {
		if point.Pwm < MinPwmValue || point.Pwm > MaxPwmValue {
			return FanCurve{}, &FormatError{
				Input:  formatPoints(points),
				Reason: fmt.Sprintf("pwm value %d of entry %d is out of range [%d..%d]", point.Pwm, i+1, MinPwmValue, MaxPwmValue),
			}
		}
		if i > 0 && point.Temp <= points[i-1].Temp {
			return FanCurve{}, &FormatError{
				Input:  formatPoints(points),
				Reason: fmt.Sprintf("temperatures must be strictly increasing, but %d follows %d", point.Temp, points[i-1].Temp),
			}
		}
	}

	copied := make([]Point, len(points))
	copy(copied, points)
	return FanCurve{points: copied}, nil
}

// Points returns a copy of the points of this curve
func (c FanCurve) Points() []Point {
	if c.points == nil {
		return nil
	}
	return reprint.This(c.points).([]Point)
}

func (c FanCurve) Len() int {
	return len(c.points)
}

func (c FanCurve) IsEmpty() bool {
	return len(c.points) == 0
}

// Lookup returns the pwm value for the given temperature.
// The value of a point is used from its temperature (inclusive) up to the temperature
// of the next point (exclusive). Temperatures below the first point use the first
// point's value, temperatures at or above the last point use the last point's value.
// An empty curve always returns MinPwmValue.
func (c FanCurve) Lookup(temp float64) int {
	if c.IsEmpty() {
		return MinPwmValue
	}
	for i, point := range c.points {
		if temp < float64(point.Temp) {
			if i > 0 {
				return c.points[i-1].Pwm
			}
			return point.Pwm
		}
	}
	return c.points[len(c.points)-1].Pwm
}

// String returns the curve in its serialized form, see ParseFanCurve
func (c FanCurve) String() string {
	return formatPoints(c.points)
}

func (c FanCurve) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *FanCurve) UnmarshalText(text []byte) error {
	curve, err := ParseFanCurve(string(text))
	if err != nil {
		return err
	}
	*c = curve
	return nil
}

func formatPoints(points []Point) string {
	entries := make([]string, 0, len(points))
	for _, point := range points {
		entries = append(entries, fmt.Sprintf("%d:%d", point.Temp, point.Pwm))
	}
	return strings.Join(entries, ",")
}
