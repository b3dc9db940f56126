package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// OverlapAdd implements FFT-based convolution using the overlap-add method:
// the input is cut into blocks, each block is zero-padded and multiplied with
// the kernel spectrum, and the block results are summed at their offsets.
type OverlapAdd struct {
	kernelFFT []complex128
	kernelLen int
	blockSize int
	fftSize   int

	plan *algofft.Plan[complex128]

	scratch []complex128
}

// NewOverlapAdd creates a new overlap-add convolver for the given kernel.
// If blockSize is <= 0, a size is chosen from the kernel length.
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	if blockSize <= 0 {
		blockSize = max(256, nextPowerOf2(len(kernel)))
	}

	fftSize := nextPowerOf2(blockSize + len(kernel) - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	oa := &OverlapAdd{
		kernelFFT: make([]complex128, fftSize),
		kernelLen: len(kernel),
		blockSize: blockSize,
		fftSize:   fftSize,
		plan:      plan,
		scratch:   make([]complex128, fftSize),
	}

	for i, v := range kernel {
		oa.scratch[i] = complex(v, 0)
	}

	if err := plan.Forward(oa.kernelFFT, oa.scratch); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}

	return oa, nil
}

// BlockSize returns the input block size.
func (oa *OverlapAdd) BlockSize() int {
	return oa.blockSize
}

// FFTSize returns the FFT size used internally.
func (oa *OverlapAdd) FFTSize() int {
	return oa.fftSize
}

// KernelLen returns the kernel length.
func (oa *OverlapAdd) KernelLen() int {
	return oa.kernelLen
}

// ProcessValidTo overwrites dst with the fully overlapping part of the
// convolution of input with the kernel. dst must hold
// ValidLen(len(input), KernelLen()) samples.
func (oa *OverlapAdd) ProcessValidTo(dst, input []float64) error {
	if err := checkValid(dst, input, oa.kernelLen); err != nil {
		return err
	}

	clear(dst)

	return oa.accumulate(dst, input, oa.kernelLen-1)
}

// accumulate adds the convolution of input with the kernel into output,
// where output[0] corresponds to full-convolution sample skip.
func (oa *OverlapAdd) accumulate(output, input []float64, skip int) error {
	for start := 0; start < len(input); start += oa.blockSize {
		end := min(start+oa.blockSize, len(input))

		clear(oa.scratch)

		for i, v := range input[start:end] {
			oa.scratch[i] = complex(v, 0)
		}

		if err := oa.plan.Forward(oa.scratch, oa.scratch); err != nil {
			return fmt.Errorf("conv: forward FFT failed: %w", err)
		}

		for i, k := range oa.kernelFFT {
			oa.scratch[i] *= k
		}

		if err := oa.plan.Inverse(oa.scratch, oa.scratch); err != nil {
			return fmt.Errorf("conv: inverse FFT failed: %w", err)
		}

		// Block sample i lands at full index start+i.
		lo := max(0, skip-start)
		hi := min(end-start+oa.kernelLen-1, len(output)+skip-start)

		for i := lo; i < hi; i++ {
			output[start+i-skip] += real(oa.scratch[i])
		}
	}

	return nil
}
