package util

import "math"

// Clamp constrains v to the range [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Approximately reports whether a and b are equal within a small tolerance,
// suitable for accumulated floating-point time values.
func Approximately(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
