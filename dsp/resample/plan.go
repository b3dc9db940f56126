package resample

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-src/dsp/core"
)

// Plan describes how a conversion of a given rate and factor is carried out.
type Plan struct {
	// Factor is the requested factor.
	Factor float64
	// Strategy is the conversion path.
	Strategy Strategy
	// Policy is the decimation policy, PolicyNone unless downsampling.
	Policy Policy
	// Stride is the integer decimation stride, 1 unless PolicyStride.
	Stride int
	// InputRate is the source sample rate in Hz.
	InputRate int
	// RequestedRate is InputRate/Factor.
	RequestedRate float64
	// AchievedRate is the rate the output actually represents. Stride
	// decimation gives InputRate/Stride. Upsampling gives
	// round(InputRate/Factor), so factor 0.5 doubles the rate and 0.3 at
	// 44100 Hz gives 147000 Hz.
	AchievedRate float64
	// OutputRate is the integer rate stored on the output buffer,
	// AchievedRate rounded to the nearest Hz.
	OutputRate int
	// Cutoff is the anti-alias cutoff in Hz, 0 when no filter is planned.
	Cutoff float64
}

// PlanFor computes the conversion plan for a rate Hz input without
// converting anything.
func PlanFor(rate int, factor float64, opts ...Option) (Plan, error) {
	return newConfig(opts).plan(rate, factor)
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg.finalized()
}

func (c config) plan(rate int, factor float64) (Plan, error) {
	if rate <= 0 {
		return Plan{}, fmt.Errorf("%w: %d", ErrInvalidRate, rate)
	}

	if err := ValidateFactor(factor); err != nil {
		return Plan{}, err
	}

	requested := float64(rate) / factor
	if math.Round(requested) < 1 || requested > MaxRate {
		return Plan{}, fmt.Errorf("%w: %v gives %v Hz from %d Hz", ErrInvalidFactor, factor, requested, rate)
	}

	p := Plan{
		Factor:        factor,
		Strategy:      SelectStrategy(factor),
		Stride:        1,
		InputRate:     rate,
		RequestedRate: requested,
		AchievedRate:  float64(rate),
		OutputRate:    rate,
	}

	switch p.Strategy {
	case StrategyUpsample:
		p.OutputRate = core.RoundToInt(requested)
		p.AchievedRate = float64(p.OutputRate)
	case StrategyDownsample:
		if c.fractional {
			p.Policy = PolicyFractional
			p.AchievedRate = requested
		} else {
			p.Policy = PolicyStride
			p.Stride = c.stridePolicy.Stride(factor)
			p.AchievedRate = float64(rate) / float64(p.Stride)
		}

		p.OutputRate = core.RoundToInt(p.AchievedRate)
		if p.OutputRate < 1 {
			return Plan{}, fmt.Errorf("%w: stride %d gives %v Hz from %d Hz", ErrInvalidFactor, p.Stride, p.AchievedRate, rate)
		}

		if c.antiAlias && (p.Policy == PolicyFractional || p.Stride > 1) {
			p.Cutoff = core.Nyquist(p.AchievedRate) * c.cutoffScale
		}
	}

	return p, nil
}
