package resample

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-src/dsp/filter/fir"
	"github.com/cwbudde/algo-src/dsp/interp"
	"github.com/cwbudde/algo-src/dsp/window"
)

// Quality controls default anti-aliasing filter settings.
type Quality int

const (
	// QualityFast prioritizes lower CPU usage.
	QualityFast Quality = iota
	// QualityBalanced is the default quality/performance trade-off.
	QualityBalanced
	// QualityBest prioritizes stopband attenuation and passband flatness.
	QualityBest
)

func (q Quality) String() string {
	switch q {
	case QualityFast:
		return "fast"
	case QualityBest:
		return "best"
	default:
		return "balanced"
	}
}

// ErrUnknownQuality is returned by [ParseQuality] for unknown names.
var ErrUnknownQuality = errors.New("resample: unknown quality")

// ParseQuality resolves "fast", "balanced" or "best". An empty name
// selects QualityBalanced.
func ParseQuality(s string) (Quality, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fast":
		return QualityFast, nil
	case "balanced", "":
		return QualityBalanced, nil
	case "best":
		return QualityBest, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownQuality, s)
	}
}

// Profile exposes default filter parameters for each quality mode.
type Profile struct {
	TapsPerStride     int
	KaiserBeta        float64
	NominalStopbandDB float64
}

// QualityProfile returns the default profile used by quality mode q.
func QualityProfile(q Quality) Profile {
	switch q {
	case QualityFast:
		return Profile{TapsPerStride: 16, KaiserBeta: 5.0, NominalStopbandDB: 55}
	case QualityBest:
		return Profile{TapsPerStride: 64, KaiserBeta: 9.0, NominalStopbandDB: 90}
	default:
		return Profile{TapsPerStride: 32, KaiserBeta: 7.5, NominalStopbandDB: 75}
	}
}

type config struct {
	quality       Quality
	tapsPerStride int
	maxTaps       int
	kaiserBeta    float64
	cutoffScale   float64
	window        window.Type
	edge          fir.EdgeMode
	antiAlias     bool
	stridePolicy  StridePolicy
	fractional    bool
	interpolation interp.Mode
	workers       int
	blockSize     int
	fftThreshold  int
}

// Option configures a [Converter].
type Option func(*config)

// WithQuality selects a predefined anti-aliasing quality mode.
func WithQuality(q Quality) Option {
	return func(cfg *config) {
		cfg.quality = q
	}
}

// WithTapsPerStride overrides the kernel taps per decimation stride.
func WithTapsPerStride(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.tapsPerStride = n
		}
	}
}

// WithMaxTaps caps the kernel length of large strides.
func WithMaxTaps(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxTaps = n
		}
	}
}

// WithKaiserBeta overrides the Kaiser window beta parameter.
func WithKaiserBeta(beta float64) Option {
	return func(cfg *config) {
		if beta >= 0 {
			cfg.kaiserBeta = beta
		}
	}
}

// WithStopband sets the Kaiser beta that reaches attenuationDB of stopband
// rejection. It overrides the quality profile's beta.
func WithStopband(attenuationDB float64) Option {
	return func(cfg *config) {
		if attenuationDB > 0 {
			cfg.kaiserBeta = window.KaiserBeta(attenuationDB)
		}
	}
}

// WithCutoffScale scales the anti-alias cutoff, in range (0, 1].
// 1.0 places the cutoff at the new Nyquist frequency.
func WithCutoffScale(v float64) Option {
	return func(cfg *config) {
		if v > 0 && v <= 1 {
			cfg.cutoffScale = v
		}
	}
}

// WithWindow selects the kernel window (Kaiser by default).
func WithWindow(t window.Type) Option {
	return func(cfg *config) {
		cfg.window = t
	}
}

// WithEdgeMode sets the filter boundary policy.
func WithEdgeMode(m fir.EdgeMode) Option {
	return func(cfg *config) {
		cfg.edge = m
	}
}

// WithoutAntiAlias disables the low-pass stage before decimation.
// The output aliases; intended for tests and comparisons.
func WithoutAntiAlias() Option {
	return func(cfg *config) {
		cfg.antiAlias = false
	}
}

// WithStridePolicy selects how an integer stride is derived from the factor.
func WithStridePolicy(p StridePolicy) Option {
	return func(cfg *config) {
		if p.Valid() {
			cfg.stridePolicy = p
		}
	}
}

// WithFractionalDecimation reduces rates by reading fractional positions
// after filtering, so the achieved rate equals oldRate/factor.
func WithFractionalDecimation() Option {
	return func(cfg *config) {
		cfg.fractional = true
	}
}

// WithInterpolation selects the kernel for rate increases and fractional
// decimation.
func WithInterpolation(m interp.Mode) Option {
	return func(cfg *config) {
		if m.Valid() {
			cfg.interpolation = m
		}
	}
}

// WithWorkers bounds the number of goroutines. Values <= 0 select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		cfg.workers = n
	}
}

// WithBlockSize sets the number of frames per filter job.
func WithBlockSize(frames int) Option {
	return func(cfg *config) {
		if frames > 0 {
			cfg.blockSize = frames
		}
	}
}

// WithFFTThreshold sets the kernel length at or above which the filter
// uses FFT overlap-add. Values <= 0 disable the FFT path.
func WithFFTThreshold(taps int) Option {
	return func(cfg *config) {
		cfg.fftThreshold = taps
	}
}

func defaultConfig() config {
	return config{
		quality:       QualityBalanced,
		kaiserBeta:    -1,
		cutoffScale:   1,
		window:        window.TypeKaiser,
		edge:          fir.EdgeReplicate,
		antiAlias:     true,
		stridePolicy:  StrideNearest,
		interpolation: interp.ModeLinear,
		fftThreshold:  128,
	}
}

func (c config) finalized() config {
	p := QualityProfile(c.quality)
	if c.tapsPerStride <= 0 {
		c.tapsPerStride = p.TapsPerStride
	}

	if c.kaiserBeta < 0 {
		c.kaiserBeta = p.KaiserBeta
	}

	if c.cutoffScale <= 0 || c.cutoffScale > 1 {
		c.cutoffScale = 1
	}

	return c
}

func (c config) designOptions() []fir.DesignOption {
	opts := []fir.DesignOption{
		fir.WithWindow(c.window),
		fir.WithKaiserBeta(c.kaiserBeta),
		fir.WithTapsPerStride(c.tapsPerStride),
	}

	if c.maxTaps > 0 {
		opts = append(opts, fir.WithMaxTaps(c.maxTaps))
	}

	return opts
}

func (c config) lowPass() *fir.LowPass {
	opts := []fir.Option{
		fir.WithDesign(c.designOptions()...),
		fir.WithEdgeMode(c.edge),
		fir.WithFFTThreshold(c.fftThreshold),
		fir.WithWorkers(c.workers),
	}

	if c.blockSize > 0 {
		opts = append(opts, fir.WithBlockSize(c.blockSize))
	}

	return fir.NewLowPass(opts...)
}
