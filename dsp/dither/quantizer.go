package dither

import (
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-vecmath"
)

// Quantizer converts samples in [-1, 1] to integers in
// [-2^(bits-1), 2^(bits-1)-1]. It keeps noise generator state and is not
// safe for concurrent use.
type Quantizer struct {
	bitDepth        int
	ditherType      DitherType
	ditherAmplitude float64
	limit           bool
	seed            int64

	scale   float64
	limitLo int
	limitHi int

	tpdf    *vecmath.DitherState
	rng     *rand.Rand
	scratch []float64
}

// NewQuantizer returns a quantizer. The default is 16-bit with 1 LSB
// triangular dither and limiting enabled.
func NewQuantizer(opts ...Option) (*Quantizer, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	full := math.Exp2(float64(cfg.bitDepth - 1))
	q := &Quantizer{
		bitDepth:        cfg.bitDepth,
		ditherType:      cfg.ditherType,
		ditherAmplitude: cfg.ditherAmplitude,
		limit:           cfg.limit,
		seed:            cfg.seed,
		scale:           full,
		limitLo:         -int(full),
		limitHi:         int(full) - 1,
	}
	q.Reset()

	return q, nil
}

// Reset restores the noise generators to their seeded state.
func (q *Quantizer) Reset() {
	q.tpdf = vecmath.NewDitherState(q.seed)
	q.rng = rand.New(rand.NewPCG(uint64(q.seed), 0x5851f42d4c957f2d))
}

// Quantize converts src and writes the integers to dst, growing it as
// needed. It returns the filled slice.
func (q *Quantizer) Quantize(dst []int, src []float64) []int {
	if cap(dst) < len(src) {
		dst = make([]int, len(src))
	}

	dst = dst[:len(src)]
	if len(src) == 0 {
		return dst
	}

	if cap(q.scratch) < len(src) {
		q.scratch = make([]float64, len(src))
	}

	scaled := q.scratch[:len(src)]
	vecmath.ScaleBlock(scaled, src, q.scale)

	switch q.ditherType {
	case DitherTriangular:
		vecmath.AddDitherTPDF(scaled, q.ditherAmplitude, q.tpdf)
	case DitherRectangular:
		for i := range scaled {
			scaled[i] += q.ditherAmplitude * (2*q.rng.Float64() - 1)
		}
	}

	for i, v := range scaled {
		dst[i] = q.round(v)
	}

	return dst
}

// ProcessInteger quantizes a single sample.
func (q *Quantizer) ProcessInteger(input float64) int {
	var one [1]int
	return q.Quantize(one[:0], []float64{input})[0]
}

// ProcessSample quantizes a single sample and returns it rescaled to [-1, 1).
func (q *Quantizer) ProcessSample(input float64) float64 {
	return float64(q.ProcessInteger(input)) / q.scale
}

// ProcessInPlace replaces each sample of buf with its quantized value.
func (q *Quantizer) ProcessInPlace(buf []float64) {
	ints := q.Quantize(nil, buf)
	for i, v := range ints {
		buf[i] = float64(v) / q.scale
	}
}

func (q *Quantizer) round(v float64) int {
	if math.IsNaN(v) {
		return 0
	}

	if q.limit {
		v = max(float64(q.limitLo), min(float64(q.limitHi), v))
	}

	return int(math.Round(v))
}

// BitDepth returns the target bit depth.
func (q *Quantizer) BitDepth() int { return q.bitDepth }

// DitherType returns the noise distribution.
func (q *Quantizer) DitherType() DitherType { return q.ditherType }

// DitherAmplitude returns the noise amplitude in LSB.
func (q *Quantizer) DitherAmplitude() float64 { return q.ditherAmplitude }

// Limit reports whether output is clamped to the bit-depth range.
func (q *Quantizer) Limit() bool { return q.limit }

// Range returns the smallest and largest representable integers.
func (q *Quantizer) Range() (lo, hi int) { return q.limitLo, q.limitHi }
