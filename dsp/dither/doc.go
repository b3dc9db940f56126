// Package dither quantizes normalized float samples to signed integer PCM.
//
// A [Quantizer] scales samples by 2^(bits-1), optionally adds dither noise
// measured in LSB, rounds, and limits the result to the bit-depth range.
// Triangular dither uses the block TPDF generator from algo-vecmath.
package dither
