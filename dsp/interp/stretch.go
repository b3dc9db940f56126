package interp

import "math"

// StretchLen returns the number of samples [Stretch] produces for n input
// samples: round(n/factor).
func StretchLen(n int, factor float64) int {
	if n <= 0 || !(factor > 0) || math.IsInf(factor, 0) {
		return 0
	}

	return int(math.Round(float64(n) / factor))
}

// Stretch linearly interpolates src at positions i*factor, i in
// [0, round(len(src)/factor)). It returns nil for a non-positive or
// non-finite factor.
func Stretch(src []float64, factor float64) []float64 {
	return StretchMode(src, factor, ModeLinear)
}

// StretchMode is [Stretch] with a selectable kernel.
func StretchMode(src []float64, factor float64, mode Mode) []float64 {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return nil
	}

	return Read(src, factor, StretchLen(len(src), factor), mode)
}

// Read returns n samples of src taken at positions i*step.
func Read(src []float64, step float64, n int, mode Mode) []float64 {
	if n <= 0 || len(src) == 0 {
		return []float64{}
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = mode.At(src, float64(i)*step)
	}

	return out
}
