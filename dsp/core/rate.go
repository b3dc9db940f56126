package core

import "math"

// Nyquist returns half of sampleRate.
func Nyquist(sampleRate float64) float64 {
	return sampleRate / 2
}

// NormalizedFrequency maps freqHz to cycles per sample at sampleRate.
// The result is 0.5 at the Nyquist frequency.
func NormalizedFrequency(freqHz, sampleRate float64) float64 {
	if sampleRate <= 0 {
		return 0
	}

	return freqHz / sampleRate
}

// FoldFrequency returns the frequency at which a tone at freqHz appears
// after sampling at sampleRate, folded into [0, sampleRate/2].
func FoldFrequency(freqHz, sampleRate float64) float64 {
	if sampleRate <= 0 {
		return 0
	}

	if freqHz < 0 {
		freqHz = -freqHz
	}

	f := math.Mod(freqHz, sampleRate)

	if f > sampleRate/2 {
		f = sampleRate - f
	}

	return f
}
