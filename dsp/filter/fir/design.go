package fir

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-src/dsp/core"
	"github.com/cwbudde/algo-src/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrDegenerateCutoff indicates a cutoff that is not inside (0, sampleRate/2).
	ErrDegenerateCutoff = errors.New("fir: cutoff must be in (0, sampleRate/2)")
	// ErrInvalidSampleRate indicates a sample rate that is not positive and finite.
	ErrInvalidSampleRate = errors.New("fir: sample rate must be > 0 and finite")
	// ErrInvalidLength indicates an explicit kernel length below one.
	ErrInvalidLength = errors.New("fir: kernel length must be > 0")
)

const (
	// DefaultTapsPerStride is the number of taps per decimation stride.
	DefaultTapsPerStride = 32
	// DefaultKaiserBeta gives roughly 75 dB of stopband attenuation.
	DefaultKaiserBeta = 7.5
	// MinTaps is the shortest automatically sized kernel.
	MinTaps = 3
	// MaxTaps is the default upper bound for automatically sized kernels.
	MaxTaps = 16383
)

// DesignOption configures kernel design.
type DesignOption func(*designConfig)

type designConfig struct {
	window        window.Type
	beta          float64
	length        int
	tapsPerStride int
	maxTaps       int
}

func defaultDesignConfig() designConfig {
	return designConfig{
		window:        window.TypeKaiser,
		beta:          DefaultKaiserBeta,
		tapsPerStride: DefaultTapsPerStride,
		maxTaps:       MaxTaps,
	}
}

// WithWindow selects the window applied to the ideal sinc response.
func WithWindow(t window.Type) DesignOption {
	return func(c *designConfig) {
		c.window = t
	}
}

// WithKaiserBeta sets the Kaiser window beta. Ignored for other windows.
func WithKaiserBeta(beta float64) DesignOption {
	return func(c *designConfig) {
		if beta >= 0 && !math.IsInf(beta, 0) {
			c.beta = beta
		}
	}
}

// WithTapsPerStride sets the taps per stride used by automatic sizing.
func WithTapsPerStride(n int) DesignOption {
	return func(c *designConfig) {
		if n > 0 {
			c.tapsPerStride = n
		}
	}
}

// WithMaxTaps caps automatically sized kernels.
func WithMaxTaps(n int) DesignOption {
	return func(c *designConfig) {
		if n >= MinTaps {
			c.maxTaps = n
		}
	}
}

// WithLength sets an explicit kernel length. Even lengths are rounded up to
// the next odd length.
func WithLength(n int) DesignOption {
	return func(c *designConfig) {
		c.length = n
	}
}

// KernelLength returns the automatic kernel length for a cutoff:
// tapsPerStride * ceil(sampleRate / (2*cutoff)) + 1, forced odd and clamped
// to [MinTaps, maxTaps].
func KernelLength(cutoffHz, sampleRate float64, tapsPerStride, maxTaps int) int {
	if tapsPerStride <= 0 {
		tapsPerStride = DefaultTapsPerStride
	}

	if maxTaps < MinTaps {
		maxTaps = MaxTaps
	}

	if !(cutoffHz > 0) || !(sampleRate > 0) {
		return MinTaps
	}

	ratio := math.Ceil(sampleRate / (2 * cutoffHz))

	n := maxTaps
	if ratio < float64(maxTaps) {
		n = tapsPerStride*int(ratio) + 1
		if n%2 == 0 {
			n++
		}
	}

	// Clamping to an even maxTaps must still yield an odd length.
	n = min(n, maxTaps)
	if n%2 == 0 {
		n--
	}

	return max(n, MinTaps)
}

// Kernel is an odd-length, symmetric low-pass FIR kernel with unity DC gain.
type Kernel struct {
	coeffs     []float64
	cutoff     float64
	sampleRate float64
}

// DesignLowpass returns a windowed-sinc low-pass kernel with the given
// cutoff. The cutoff must lie strictly between 0 and sampleRate/2.
func DesignLowpass(cutoffHz, sampleRate float64, opts ...DesignOption) (*Kernel, error) {
	if !core.IsPositiveFinite(sampleRate) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	if !core.IsPositiveFinite(cutoffHz) || cutoffHz >= core.Nyquist(sampleRate) {
		return nil, fmt.Errorf("%w: cutoff %v Hz at %v Hz", ErrDegenerateCutoff, cutoffHz, sampleRate)
	}

	cfg := defaultDesignConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := cfg.length
	switch {
	case n < 0:
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	case n == 0:
		n = KernelLength(cutoffHz, sampleRate, cfg.tapsPerStride, cfg.maxTaps)
	case n%2 == 0:
		n++
	}

	w := window.Generate(cfg.window, n, window.WithAlpha(cfg.beta))
	fc := core.NormalizedFrequency(cutoffHz, sampleRate)
	mid := n / 2

	h := make([]float64, n)
	for i := 0; i <= mid; i++ {
		v := 2 * fc * sinc(2*fc*float64(i-mid)) * w[i]
		h[i] = v
		h[n-1-i] = v
	}

	sum := vecmath.Sum(h)
	if sum == 0 || math.IsNaN(sum) {
		return nil, fmt.Errorf("%w: kernel sums to %v", ErrDegenerateCutoff, sum)
	}

	vecmath.ScaleBlockInPlace(h, 1/sum)

	return &Kernel{coeffs: h, cutoff: cutoffHz, sampleRate: sampleRate}, nil
}

// Coefficients returns a copy of the kernel coefficients.
func (k *Kernel) Coefficients() []float64 {
	c := make([]float64, len(k.coeffs))
	copy(c, k.coeffs)
	return c
}

// Len returns the number of taps.
func (k *Kernel) Len() int {
	return len(k.coeffs)
}

// Delay returns the index of the centre tap, Len()/2.
func (k *Kernel) Delay() int {
	return len(k.coeffs) / 2
}

// Cutoff returns the design cutoff in Hz.
func (k *Kernel) Cutoff() float64 {
	return k.cutoff
}

// SampleRate returns the design sample rate in Hz.
func (k *Kernel) SampleRate() float64 {
	return k.sampleRate
}

// DCGain returns the sum of the coefficients.
func (k *Kernel) DCGain() float64 {
	return vecmath.Sum(k.coeffs)
}

// Response computes the zero-phase frequency response at freqHz, taking the
// centre tap as time zero.
func (k *Kernel) Response(freqHz float64) complex128 {
	w := 2 * math.Pi * freqHz / k.sampleRate
	mid := k.Delay()

	var h complex128
	for i, c := range k.coeffs {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(i-mid)))
	}

	return h
}

// MagnitudeDB returns the magnitude response in dB at freqHz.
func (k *Kernel) MagnitudeDB(freqHz float64) float64 {
	return core.LinearToDB(cmplx.Abs(k.Response(freqHz)))
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}
