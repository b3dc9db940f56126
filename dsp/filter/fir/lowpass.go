package fir

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/cwbudde/algo-src/dsp/conv"
	"github.com/cwbudde/algo-src/dsp/pcm"
	"github.com/cwbudde/algo-src/internal/workpool"
)

// ErrUnknownEdgeMode is returned by [ParseEdgeMode] for unknown names.
var ErrUnknownEdgeMode = errors.New("fir: unknown edge mode")

// EdgeMode selects how the kernel sees samples beyond the channel ends.
type EdgeMode int

const (
	// EdgeReplicate repeats the first and last sample.
	EdgeReplicate EdgeMode = iota
	// EdgeZero pads with zeros.
	EdgeZero
)

func (m EdgeMode) String() string {
	switch m {
	case EdgeReplicate:
		return "replicate"
	case EdgeZero:
		return "zero"
	default:
		return fmt.Sprintf("EdgeMode(%d)", int(m))
	}
}

// ParseEdgeMode resolves "replicate" or "zero".
func ParseEdgeMode(s string) (EdgeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "replicate", "":
		return EdgeReplicate, nil
	case "zero":
		return EdgeZero, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEdgeMode, s)
	}
}

const (
	defaultFFTThreshold = 128
	defaultBlockSize    = 1 << 14
	minBlockSize        = 64
)

// Option configures a [LowPass].
type Option func(*config)

type config struct {
	design       []DesignOption
	edge         EdgeMode
	fftThreshold int
	workers      int
	blockSize    int
}

func defaultConfig() config {
	return config{
		edge:         EdgeReplicate,
		fftThreshold: defaultFFTThreshold,
		blockSize:    defaultBlockSize,
	}
}

// WithDesign forwards kernel design options to [DesignLowpass].
func WithDesign(opts ...DesignOption) Option {
	return func(c *config) {
		c.design = append(c.design, opts...)
	}
}

// WithEdgeMode sets the boundary policy.
func WithEdgeMode(m EdgeMode) Option {
	return func(c *config) {
		if m == EdgeReplicate || m == EdgeZero {
			c.edge = m
		}
	}
}

// WithFFTThreshold sets the kernel length at or above which FFT overlap-add
// is used. Values <= 0 disable the FFT path.
func WithFFTThreshold(taps int) Option {
	return func(c *config) {
		c.fftThreshold = taps
	}
}

// WithWorkers bounds the number of goroutines. Values <= 0 select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithBlockSize sets the number of output frames per job.
func WithBlockSize(frames int) Option {
	return func(c *config) {
		if frames > 0 {
			c.blockSize = max(frames, minBlockSize)
		}
	}
}

// LowPass applies windowed-sinc low-pass kernels to buffers.
type LowPass struct {
	cfg config
}

// NewLowPass returns a configured low-pass stage.
func NewLowPass(opts ...Option) *LowPass {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &LowPass{cfg: cfg}
}

// Report describes one [LowPass.ApplyReport] call.
type Report struct {
	// Buffer is the filtered buffer, or an identity copy when no kernel
	// could be designed for the cutoff.
	Buffer pcm.Buffer
	// Kernel is the kernel that was applied, nil for the identity case.
	Kernel *Kernel
}

// Applied reports whether a kernel was applied.
func (r Report) Applied() bool {
	return r.Kernel != nil
}

// Apply filters every channel of buf with a kernel cut off at cutoffHz.
// The result has the same length, rate and bit depth. A cutoff outside
// (0, rate/2) yields an unfiltered copy.
func (lp *LowPass) Apply(buf pcm.Buffer, cutoffHz float64) (pcm.Buffer, error) {
	r, err := lp.ApplyReport(buf, cutoffHz)
	if err != nil {
		return pcm.Buffer{}, err
	}

	return r.Buffer, nil
}

// ApplyReport is like [LowPass.Apply] and also returns the kernel used.
func (lp *LowPass) ApplyReport(buf pcm.Buffer, cutoffHz float64) (Report, error) {
	if err := buf.Validate(); err != nil {
		return Report{}, fmt.Errorf("fir: %w", err)
	}

	k, err := DesignLowpass(cutoffHz, float64(buf.SampleRate()), lp.cfg.design...)
	if errors.Is(err, ErrDegenerateCutoff) {
		return Report{Buffer: buf.Clone()}, nil
	}

	if err != nil {
		return Report{}, err
	}

	out, err := lp.ApplyKernel(buf, k)
	if err != nil {
		return Report{}, err
	}

	return Report{Buffer: out, Kernel: k}, nil
}

// ApplyKernel filters every channel of buf with a pre-designed kernel.
func (lp *LowPass) ApplyKernel(buf pcm.Buffer, k *Kernel) (pcm.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return pcm.Buffer{}, fmt.Errorf("fir: %w", err)
	}

	workers := workpool.Workers(lp.cfg.workers, 1<<30)
	chanWorkers := min(workers, buf.Channels())
	blockWorkers := max(1, workers/chanWorkers)

	useFFT := lp.cfg.fftThreshold > 0 && k.Len() >= lp.cfg.fftThreshold
	pool := &convolverPool{kernel: k.coeffs}

	var (
		errMu    sync.Mutex
		firstErr error
	)

	out, err := pcm.MapChannels(buf, buf.SampleRate(), chanWorkers, func(_ int, in []float64) []float64 {
		y, err := lp.filterChannel(in, k, useFFT, pool, blockWorkers)
		if err != nil {
			errMu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			errMu.Unlock()

			return make([]float64, len(in))
		}

		return y
	})
	if err != nil {
		return pcm.Buffer{}, err
	}

	if firstErr != nil {
		return pcm.Buffer{}, firstErr
	}

	return out, nil
}

func (lp *LowPass) filterChannel(in []float64, k *Kernel, useFFT bool, pool *convolverPool, workers int) ([]float64, error) {
	frames := len(in)
	out := make([]float64, frames)
	if frames == 0 {
		return out, nil
	}

	padded := pad(in, k.Delay(), lp.cfg.edge)
	blocks := (frames + lp.cfg.blockSize - 1) / lp.cfg.blockSize
	errs := make([]error, blocks)

	workpool.Run(blocks, workers, func(b int) {
		start := b * lp.cfg.blockSize
		end := min(start+lp.cfg.blockSize, frames)
		// Output i reads padded[i : i+Len()], so the block's segment carries
		// a Len()/2 halo on each side.
		segment := padded[start : end+k.Len()-1]

		if !useFFT {
			errs[b] = conv.DirectValidTo(out[start:end], segment, k.coeffs)
			return
		}

		oa, err := pool.get()
		if err != nil {
			errs[b] = err
			return
		}
		defer pool.put(oa)

		errs[b] = oa.ProcessValidTo(out[start:end], segment)
	})

	return out, errors.Join(errs...)
}

// pad returns in with half samples added at both ends per the edge mode.
func pad(in []float64, half int, edge EdgeMode) []float64 {
	padded := make([]float64, len(in)+2*half)
	copy(padded[half:], in)

	if edge == EdgeReplicate {
		first, last := in[0], in[len(in)-1]
		for i := range half {
			padded[i] = first
			padded[len(padded)-1-i] = last
		}
	}

	return padded
}

// convolverPool hands out overlap-add convolvers for one kernel. A
// convolver owns scratch memory, so each job borrows its own.
type convolverPool struct {
	kernel []float64
	pool   sync.Pool
}

func (p *convolverPool) get() (*conv.OverlapAdd, error) {
	if oa, ok := p.pool.Get().(*conv.OverlapAdd); ok {
		return oa, nil
	}

	return conv.NewOverlapAdd(p.kernel, 0)
}

func (p *convolverPool) put(oa *conv.OverlapAdd) {
	p.pool.Put(oa)
}
