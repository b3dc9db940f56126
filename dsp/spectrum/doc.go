// Package spectrum measures the level of individual tones in real signals.
//
// It evaluates single DFT bins with the Goertzel recurrence, which is cheaper
// than a full FFT when only a handful of frequencies matter, such as a test
// tone and its alias after rate conversion.
package spectrum
