package resample

import (
	"fmt"
	"math"
	"strings"
)

// Strategy identifies the conversion path taken for a factor.
type Strategy int

const (
	// StrategyPassThrough copies the input (factor == 1).
	StrategyPassThrough Strategy = iota
	// StrategyDownsample filters then decimates (factor > 1).
	StrategyDownsample
	// StrategyUpsample interpolates (factor < 1).
	StrategyUpsample
)

func (s Strategy) String() string {
	switch s {
	case StrategyPassThrough:
		return "pass-through"
	case StrategyDownsample:
		return "downsample"
	case StrategyUpsample:
		return "upsample"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// SelectStrategy maps a valid factor to its strategy.
func SelectStrategy(factor float64) Strategy {
	switch {
	case factor > 1:
		return StrategyDownsample
	case factor < 1:
		return StrategyUpsample
	default:
		return StrategyPassThrough
	}
}

// StridePolicy selects the integer stride for a rate reduction.
type StridePolicy int

const (
	// StrideNearest picks floor(factor) or ceil(factor), whichever gives the
	// rate closest to oldRate/factor. Ties go to the larger stride.
	StrideNearest StridePolicy = iota
	// StrideFloor always uses floor(factor).
	StrideFloor
)

func (p StridePolicy) String() string {
	switch p {
	case StrideNearest:
		return "nearest"
	case StrideFloor:
		return "floor"
	default:
		return fmt.Sprintf("StridePolicy(%d)", int(p))
	}
}

// Valid reports whether p is a known policy.
func (p StridePolicy) Valid() bool {
	return p == StrideNearest || p == StrideFloor
}

// ParseStridePolicy resolves "nearest" or "floor".
func ParseStridePolicy(s string) (StridePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest", "":
		return StrideNearest, nil
	case "floor":
		return StrideFloor, nil
	default:
		return 0, fmt.Errorf("resample: unknown stride policy %q", s)
	}
}

// Stride returns the integer stride for factor >= 1 under the policy.
// Integer factors map to themselves.
func (p StridePolicy) Stride(factor float64) int {
	lo := math.Floor(factor)
	if lo < 1 {
		return 1
	}

	if p == StrideFloor || lo == factor {
		return int(lo)
	}

	hi := lo + 1
	// Compare rates 1/k against 1/factor.
	dLo := 1/lo - 1/factor
	dHi := 1/factor - 1/hi

	if dHi <= dLo {
		return int(hi)
	}

	return int(lo)
}

// Policy reports how a rate reduction was carried out.
type Policy int

const (
	// PolicyNone is reported when no decimation happened.
	PolicyNone Policy = iota
	// PolicyStride keeps every stride-th filtered sample.
	PolicyStride
	// PolicyFractional reads filtered samples at positions i*factor.
	PolicyFractional
)

func (p Policy) String() string {
	switch p {
	case PolicyStride:
		return "stride"
	case PolicyFractional:
		return "fractional"
	default:
		return "none"
	}
}
