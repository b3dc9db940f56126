package spectrum

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-src/dsp/core"
)

var (
	// ErrInvalidSampleRate is returned for a non-positive or non-finite rate.
	ErrInvalidSampleRate = errors.New("spectrum: sample rate must be > 0")
	// ErrInvalidFrequency is returned for a frequency outside [0, rate/2].
	ErrInvalidFrequency = errors.New("spectrum: frequency must be between 0 and sampleRate/2")
)

// Goertzel evaluates one DFT bin at an arbitrary frequency.
//
// The analyzer accumulates every processed sample until [Goertzel.Reset].
// Power and Magnitude then equal |X(f)|^2 and |X(f)| of a DFT over the
// same samples. A tone that does not complete an integer number of cycles
// leaks into neighbouring frequencies; the main lobe is 4*pi/N wide.
type Goertzel struct {
	frequency  float64
	sampleRate float64
	coeff      float64
	n          int
	s0, s1     float64
}

// NewGoertzel returns an analyzer for frequency at sampleRate.
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if err := validate(frequency, sampleRate); err != nil {
		return nil, err
	}

	g := &Goertzel{frequency: frequency, sampleRate: sampleRate}
	g.coeff = 2 * math.Cos(2*math.Pi*core.NormalizedFrequency(frequency, sampleRate))

	return g, nil
}

func validate(frequency, sampleRate float64) error {
	if !core.IsPositiveFinite(sampleRate) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	if !core.IsFinite(frequency) || frequency < 0 || frequency > core.Nyquist(sampleRate) {
		return fmt.Errorf("%w: %v", ErrInvalidFrequency, frequency)
	}

	return nil
}

// Reset clears the accumulated state.
func (g *Goertzel) Reset() {
	g.s0, g.s1, g.n = 0, 0, 0
}

// ProcessBlock feeds input into the recurrence.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1, coeff := g.s0, g.s1, g.coeff
	for _, x := range input {
		s0, s1 = x+coeff*s0-s1, s0
	}

	g.s0, g.s1 = s0, s1
	g.n += len(input)
}

// Samples returns the number of samples processed since the last reset.
func (g *Goertzel) Samples() int { return g.n }

// Frequency returns the analysed frequency in Hz.
func (g *Goertzel) Frequency() float64 { return g.frequency }

// SampleRate returns the sample rate in Hz.
func (g *Goertzel) SampleRate() float64 { return g.sampleRate }

// Power returns the squared bin magnitude.
func (g *Goertzel) Power() float64 {
	p := g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
	if p < 0 {
		return 0
	}

	return p
}

// Magnitude returns the bin magnitude.
func (g *Goertzel) Magnitude() float64 {
	return math.Sqrt(g.Power())
}

// Amplitude returns the peak amplitude of a sinusoid at the analysed
// frequency that would produce the current bin, 2|X|/N.
// It is 0 before any sample has been processed.
func (g *Goertzel) Amplitude() float64 {
	if g.n == 0 {
		return 0
	}

	return 2 * g.Magnitude() / float64(g.n)
}

// ToneLevel returns the estimated peak amplitude of the component at
// frequency in signal. A 1 kHz sine of amplitude a that spans whole cycles
// yields a.
func ToneLevel(signal []float64, frequency, sampleRate float64) (float64, error) {
	g, err := NewGoertzel(frequency, sampleRate)
	if err != nil {
		return 0, err
	}

	g.ProcessBlock(signal)

	return g.Amplitude(), nil
}

// ToneLevelDB is [ToneLevel] in dB relative to amplitude 1.
// Silence yields -Inf.
func ToneLevelDB(signal []float64, frequency, sampleRate float64) (float64, error) {
	a, err := ToneLevel(signal, frequency, sampleRate)
	if err != nil {
		return 0, err
	}

	return core.LinearToDB(a), nil
}
