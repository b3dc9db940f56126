package window

import (
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeKaiser

	typeCount
)

// Metadata holds nominal spectral properties of a window type.
type Metadata struct {
	Name            string
	ENBW            float64
	HighestSidelobe float64
	CoherentGain    float64
}

// shape evaluates a window at normalised position x in [0, 1].
type shape func(x, beta float64) float64

type entry struct {
	meta  Metadata
	shape shape
}

// The Kaiser row describes beta = 7.5.
var entries = [typeCount]entry{
	TypeRectangular: {Metadata{"Rectangular", 1, -13.3, 1}, func(float64, float64) float64 { return 1 }},
	TypeHann:        {Metadata{"Hann", 1.5, -31.5, 0.5}, cosineSum(0.5, -0.5)},
	TypeHamming:     {Metadata{"Hamming", 1.36, -42.7, 0.54}, cosineSum(0.54, -0.46)},
	TypeBlackman:    {Metadata{"Blackman", 1.73, -58.1, 0.42}, cosineSum(0.42, -0.5, 0.08)},
	TypeKaiser:      {Metadata{"Kaiser", 1.8, -57, 0.4}, kaiser},
}

func (t Type) valid() bool {
	return t >= 0 && t < typeCount
}

// String returns the window name.
func (t Type) String() string {
	if !t.valid() {
		return "Unknown"
	}

	return entries[t].meta.Name
}

// Info returns static metadata for a window type, or the zero value for an
// unknown type.
func Info(t Type) Metadata {
	if !t.valid() {
		return Metadata{}
	}

	return entries[t].meta
}

// Parse resolves a case-insensitive window name.
func Parse(name string) (Type, error) {
	name = strings.TrimSpace(name)
	for t := range typeCount {
		if strings.EqualFold(entries[t].meta.Name, name) {
			return t, nil
		}
	}

	return 0, unknownType(name)
}

// Option configures window generation.
type Option func(*config)

type config struct {
	beta     float64
	periodic bool
}

// WithAlpha sets the Kaiser beta (default 1). Other windows ignore it.
func WithAlpha(beta float64) Option {
	return func(c *config) {
		if beta >= 0 {
			c.beta = beta
		}
	}
}

// WithPeriodic selects the periodic form used for spectral analysis frames.
// The default is the symmetric form used for filter design.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns length window coefficients. Unknown types yield a
// rectangular window; a non-positive length yields nil.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := config{beta: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	f := entries[TypeRectangular].shape
	if t.valid() {
		f = entries[t].shape
	}

	span := float64(length - 1)
	if cfg.periodic {
		span = float64(length)
	}

	out := make([]float64, length)
	for i := range out {
		x := 0.5
		if length > 1 {
			x = min(1, float64(i)/span)
		}

		out[i] = f(x, cfg.beta)
	}

	return out
}

// KaiserBeta returns the Kaiser beta that reaches the given stopband
// attenuation in dB (Kaiser's empirical formula).
func KaiserBeta(attenuationDB float64) float64 {
	switch {
	case attenuationDB > 50:
		return 0.1102 * (attenuationDB - 8.7)
	case attenuationDB >= 21:
		d := attenuationDB - 21
		return 0.5842*math.Pow(d, 0.4) + 0.07886*d
	default:
		return 0
	}
}

// ApplyCoefficients returns samples weighted by coeffs.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// cosineSum returns the generalised cosine window sum a[k]*cos(2*pi*k*x).
func cosineSum(a ...float64) shape {
	return func(x, _ float64) float64 {
		var sum float64
		for k, c := range a {
			sum += c * math.Cos(2*math.Pi*float64(k)*x)
		}

		return sum
	}
}

func kaiser(x, beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	r := 2*x - 1

	return besselI0(beta*math.Sqrt(max(0, 1-r*r))) / besselI0(beta)
}

// besselI0 approximates the modified Bessel function of the first kind,
// order zero (Abramowitz and Stegun 9.8.1 and 9.8.2).
func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := (x / 3.75) * (x / 3.75)

		return 1 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
	}

	y := 3.75 / ax
	poly := 0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+
		y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377)))))))

	return math.Exp(ax) / math.Sqrt(ax) * poly
}
