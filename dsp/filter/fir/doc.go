// Package fir designs windowed-sinc low-pass kernels and applies them to
// [pcm.Buffer] values as zero-phase block filters.
//
// [DesignLowpass] builds an odd-length, symmetric kernel normalised to unity
// DC gain. [LowPass] applies such a kernel to every channel of a buffer:
// each output sample is the kernel-weighted sum of the input sample at the
// same index and its Len()/2 neighbours on either side, so the output has
// the same length and no group delay.
//
// # Boundaries
//
// Near the start and end of a channel the kernel reaches past the data. The
// default [EdgeReplicate] mode repeats the first and last sample into that
// region, which keeps DC and slow ramps unchanged up to the edges.
// [EdgeZero] pads with silence instead, which attenuates the first and last
// Len()/2 outputs.
//
// # Execution
//
// Kernels shorter than the FFT threshold are applied with direct dot
// products; longer kernels use FFT overlap-add from dsp/conv. Work is split
// into channel and block jobs. Every block reads a halo of Len()/2 samples
// on each side, so the result does not depend on the block size or the
// number of workers.
//
// A [LowPass] holds configuration only and is safe for concurrent use.
package fir
