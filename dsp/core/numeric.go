// Package core holds small numeric helpers shared by the conversion packages.
package core

import "math"

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// IsPositiveFinite reports whether x is finite and greater than zero.
func IsPositiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// RoundToInt rounds half away from zero.
func RoundToInt(x float64) int {
	return int(math.Round(x))
}

// LinearToDB converts an amplitude ratio to dB. Zero maps to -Inf and
// negative ratios to NaN.
func LinearToDB(linear float64) float64 {
	switch {
	case linear < 0:
		return math.NaN()
	case linear == 0:
		return math.Inf(-1)
	default:
		return 20 * math.Log10(linear)
	}
}
