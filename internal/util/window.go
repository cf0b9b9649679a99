package util

import "github.com/asecurityteam/rolling"

// CreateRollingWindow creates a window holding the last size points.
// Slots that were never appended to count as 0.
func CreateRollingWindow(size int) *rolling.PointPolicy {
	return rolling.NewPointPolicy(rolling.NewWindow(size))
}

func GetWindowMax(window *rolling.PointPolicy) float64 {
	return window.Reduce(rolling.Max)
}

func GetWindowMin(window *rolling.PointPolicy) float64 {
	return window.Reduce(rolling.Min)
}

func GetWindowAvg(window *rolling.PointPolicy) float64 {
	return window.Reduce(rolling.Avg)
}
