package curves

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	entrySeparator = ","
	pairSeparator  = ":"
)

// FormatError is returned when a fan curve cannot be parsed or is not valid
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid fan curve '%s': %s; use 'temp1:pwm1,temp2:pwm2,...'", e.Input, e.Reason)
}

// ParseFanCurve parses a curve in the form "temp1:pwm1,temp2:pwm2,...".
// Entries are kept in the given order. Any malformed entry fails the whole curve.
func ParseFanCurve(input string) (FanCurve, error) {
	if len(strings.TrimSpace(input)) <= 0 {
		return FanCurve{}, &FormatError{Input: input, Reason: "curve is empty"}
	}

	entries := strings.Split(input, entrySeparator)
	points := make([]Point, 0, len(entries))
	for i, entry := range entries {
		point, err := parsePoint(entry)
		if err != nil {
			return FanCurve{}, &FormatError{
				Input:  input,
				Reason: fmt.Sprintf("entry %d '%s': %v", i+1, strings.TrimSpace(entry), err),
			}
		}
		points = append(points, point)
	}

	curve, err := NewFanCurve(points)
	if err != nil {
		if formatErr, ok := err.(*FormatError); ok {
			formatErr.Input = input
		}
		return FanCurve{}, err
	}
	return curve, nil
}

func parsePoint(entry string) (Point, error) {
	parts := strings.Split(strings.TrimSpace(entry), pairSeparator)
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("expected exactly one '%s'", pairSeparator)
	}

	temp, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Point{}, fmt.Errorf("temperature is not an integer")
	}
	pwm, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Point{}, fmt.Errorf("pwm is not an integer")
	}

	return Point{Temp: temp, Pwm: pwm}, nil
}
