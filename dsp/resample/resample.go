package resample

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-src/dsp/filter/fir"
	"github.com/cwbudde/algo-src/dsp/interp"
	"github.com/cwbudde/algo-src/dsp/pcm"
	"github.com/cwbudde/algo-src/dsp/window"
)

// Result is the outcome of a conversion.
type Result struct {
	Plan

	// Buffer holds the converted samples at Plan.OutputRate.
	Buffer pcm.Buffer
	// Filtered reports whether an anti-alias kernel was applied.
	Filtered bool
	// Taps is the length of the applied kernel, 0 when unfiltered.
	Taps int
}

// Converter converts buffers by a factor. It holds configuration only and
// is safe for concurrent use.
type Converter struct {
	cfg config
	lp  *fir.LowPass
}

// NewConverter creates a converter with the given options.
func NewConverter(opts ...Option) *Converter {
	cfg := newConfig(opts)

	return &Converter{cfg: cfg, lp: cfg.lowPass()}
}

// Convert is a one-shot helper for NewConverter(opts...).Convert(buf, factor).
func Convert(buf pcm.Buffer, factor float64, opts ...Option) (Result, error) {
	return NewConverter(opts...).Convert(buf, factor)
}

// Quality returns the configured quality mode.
func (c *Converter) Quality() Quality {
	return c.cfg.quality
}

// Window returns the kernel window and, for Kaiser, its beta.
func (c *Converter) Window() (window.Type, float64) {
	return c.cfg.window, c.cfg.kaiserBeta
}

// Plan returns the plan Convert would follow for a rate Hz input.
func (c *Converter) Plan(rate int, factor float64) (Plan, error) {
	return c.cfg.plan(rate, factor)
}

// Kernel designs the anti-alias kernel Convert would apply to a rate Hz
// input. It returns nil when the plan has no filter stage.
func (c *Converter) Kernel(rate int, factor float64) (*fir.Kernel, error) {
	p, err := c.cfg.plan(rate, factor)
	if err != nil {
		return nil, err
	}

	if p.Cutoff <= 0 {
		return nil, nil
	}

	k, err := fir.DesignLowpass(p.Cutoff, float64(rate), c.cfg.designOptions()...)
	if errors.Is(err, fir.ErrDegenerateCutoff) {
		return nil, nil
	}

	return k, err
}

// Convert resamples buf to buf.SampleRate()/factor. On error no partial
// output is returned.
func (c *Converter) Convert(buf pcm.Buffer, factor float64) (Result, error) {
	if err := buf.Validate(); err != nil {
		return Result{}, fmt.Errorf("resample: %w", err)
	}

	p, err := c.cfg.plan(buf.SampleRate(), factor)
	if err != nil {
		return Result{}, err
	}

	switch p.Strategy {
	case StrategyDownsample:
		return c.downsample(buf, p)
	case StrategyUpsample:
		return c.upsample(buf, p)
	default:
		return Result{Plan: p, Buffer: buf.Clone()}, nil
	}
}

func (c *Converter) downsample(buf pcm.Buffer, p Plan) (Result, error) {
	f, err := antiAlias(c.lp, buf, p.Cutoff)
	if err != nil {
		return Result{}, err
	}

	var out pcm.Buffer
	if p.Policy == PolicyFractional {
		out, err = decimateFractional(f, p.Factor, c.cfg.interpolation, p.OutputRate, c.cfg.workers)
	} else {
		out, err = decimate(f, p.Stride, p.OutputRate, c.cfg.workers)
	}

	if err != nil {
		return Result{}, err
	}

	r := Result{Plan: p, Buffer: out, Filtered: f.kernel != nil}
	if f.kernel != nil {
		r.Taps = f.kernel.Len()
	}

	return r, nil
}

func (c *Converter) upsample(buf pcm.Buffer, p Plan) (Result, error) {
	mode := c.cfg.interpolation

	out, err := pcm.MapChannels(buf, p.OutputRate, c.cfg.workers, func(_ int, in []float64) []float64 {
		return interp.StretchMode(in, p.Factor, mode)
	})
	if err != nil {
		return Result{}, err
	}

	return Result{Plan: p, Buffer: out}, nil
}
