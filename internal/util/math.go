package util

import (
	"golang.org/x/exp/constraints"
)

// AbsDiff returns the absolute difference between a and b
func AbsDiff[T constraints.Integer | constraints.Float](a T, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}
