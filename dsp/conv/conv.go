package conv

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrEmptyKernel is returned for a zero-length kernel.
	ErrEmptyKernel = errors.New("conv: empty kernel")
	// ErrLengthMismatch is returned when a destination has the wrong size.
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
	// ErrShortInput is returned when an input is shorter than the kernel.
	ErrShortInput = errors.New("conv: input shorter than kernel")
)

// ValidLen returns the number of fully overlapping convolution outputs,
// inputLen-kernelLen+1, or 0 when the input is shorter than the kernel.
func ValidLen(inputLen, kernelLen int) int {
	return max(0, inputLen-kernelLen+1)
}

func checkValid(dst, input []float64, kernelLen int) error {
	if kernelLen == 0 {
		return ErrEmptyKernel
	}

	if len(input) < kernelLen {
		return fmt.Errorf("%w: %d < %d", ErrShortInput, len(input), kernelLen)
	}

	if want := ValidLen(len(input), kernelLen); len(dst) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, want, len(dst))
	}

	return nil
}

// DirectValidTo overwrites dst with the fully overlapping part of the
// convolution of input and kernel, computed as one dot product per output.
// dst must hold ValidLen(len(input), len(kernel)) samples.
func DirectValidTo(dst, input, kernel []float64) error {
	if err := checkValid(dst, input, len(kernel)); err != nil {
		return err
	}

	rev := slices.Clone(kernel)
	slices.Reverse(rev)

	for i := range dst {
		dst[i] = vecmath.DotProduct(rev, input[i:i+len(rev)])
	}

	return nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
