package resample

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidFactor indicates a factor that is not a positive finite number,
	// or one whose target rate is out of range.
	ErrInvalidFactor = errors.New("resample: invalid factor")
	// ErrInvalidRate indicates an invalid input/output sample rate.
	ErrInvalidRate = errors.New("resample: invalid sample rate")
)

// MaxRate is the highest output sample rate a conversion may produce.
const MaxRate = math.MaxInt32

// ValidateFactor rejects zero, negative, NaN and infinite factors.
func ValidateFactor(factor float64) error {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return fmt.Errorf("%w: %v (must be a positive finite number)", ErrInvalidFactor, factor)
	}

	return nil
}

// ParseFactor parses a factor from text such as "2", "0.5" or "1.5".
func ParseFactor(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidFactor, s)
	}

	if err := ValidateFactor(f); err != nil {
		return 0, err
	}

	return f, nil
}

// FactorForRates returns the factor that converts fromRate to toRate.
func FactorForRates(fromRate, toRate float64) (float64, error) {
	if !(fromRate > 0) || !(toRate > 0) || math.IsInf(fromRate, 0) || math.IsInf(toRate, 0) {
		return 0, fmt.Errorf("%w: %v -> %v", ErrInvalidRate, fromRate, toRate)
	}

	return fromRate / toRate, nil
}

// TargetRate returns the rate a conversion of a rate Hz buffer by factor
// would achieve, without converting anything.
func TargetRate(rate int, factor float64, opts ...Option) (float64, error) {
	p, err := PlanFor(rate, factor, opts...)
	if err != nil {
		return 0, err
	}

	return p.AchievedRate, nil
}
