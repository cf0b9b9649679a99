package util

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestGetWindowMax(t *testing.T) {
	// GIVEN
	window := CreateRollingWindow(3)
	window.Append(1)
	window.Append(2)
	window.Append(3)

	// WHEN
	maximum := GetWindowMax(window)

	// THEN
	assert.Equal(t, 3.0, maximum)
}

func TestGetWindowMinAndAvg(t *testing.T) {
	// GIVEN
	window := CreateRollingWindow(4)
	window.Append(44)
	window.Append(46)
	window.Append(45)
	window.Append(45)

	// THEN
	assert.Equal(t, 44.0, GetWindowMin(window))
	assert.Equal(t, 45.0, GetWindowAvg(window))
}

func TestRollingWindowDropsOldest(t *testing.T) {
	// GIVEN
	window := CreateRollingWindow(2)
	window.Append(90)
	window.Append(40)

	// WHEN
	window.Append(50)

	// THEN
	assert.Equal(t, 50.0, GetWindowMax(window))
	assert.Equal(t, 40.0, GetWindowMin(window))
}
