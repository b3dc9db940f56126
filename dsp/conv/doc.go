// Package conv provides the linear convolution primitives used by the FIR
// filter stage.
//
// Both primitives compute valid-mode convolution: only outputs where the
// kernel fully overlaps the input, [ValidLen] of them. [DirectValidTo] takes
// one dot product per output and suits short kernels. [OverlapAdd]
// convolves block by block in the frequency domain and is reused across
// calls with the same kernel:
//
//	c, err := conv.NewOverlapAdd(kernel, 0)
//	err = c.ProcessValidTo(dst, segment)
//
// An [OverlapAdd] owns scratch buffers and is not safe for concurrent use;
// give each goroutine its own instance.
package conv
