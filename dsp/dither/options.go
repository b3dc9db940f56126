package dither

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-src/dsp/core"
)

// ErrInvalidOption is returned by [NewQuantizer] for out-of-range options.
var ErrInvalidOption = errors.New("dither: invalid option")

// Supported output depths.
const (
	MinBitDepth = 8
	MaxBitDepth = 32
)

type config struct {
	bitDepth        int
	ditherType      DitherType
	ditherAmplitude float64
	limit           bool
	seed            int64
}

// Defaults: 16-bit, 1 LSB TPDF, clamped, seed 1.
func defaultConfig() config {
	return config{
		bitDepth:        16,
		ditherType:      DitherTriangular,
		ditherAmplitude: 1,
		limit:           true,
		seed:            1,
	}
}

// Option configures a [Quantizer]. Options reject invalid values with an
// error wrapping [ErrInvalidOption].
type Option func(*config) error

// WithBitDepth sets the integer width, [MinBitDepth] to [MaxBitDepth].
func WithBitDepth(bits int) Option {
	return func(cfg *config) error {
		if bits < MinBitDepth || bits > MaxBitDepth {
			return fmt.Errorf("%w: bit depth %d", ErrInvalidOption, bits)
		}

		cfg.bitDepth = bits

		return nil
	}
}

// WithDitherType selects the noise distribution.
func WithDitherType(dt DitherType) Option {
	return func(cfg *config) error {
		if !dt.Valid() {
			return fmt.Errorf("%w: %v", ErrInvalidOption, dt)
		}

		cfg.ditherType = dt

		return nil
	}
}

// WithDitherAmplitude sets the peak noise level in LSB.
func WithDitherAmplitude(lsb float64) Option {
	return func(cfg *config) error {
		if lsb != 0 && !core.IsPositiveFinite(lsb) {
			return fmt.Errorf("%w: dither amplitude %v", ErrInvalidOption, lsb)
		}

		cfg.ditherAmplitude = lsb

		return nil
	}
}

// WithLimit turns clamping to the representable range on or off.
func WithLimit(enabled bool) Option {
	return func(cfg *config) error {
		cfg.limit = enabled
		return nil
	}
}

// WithSeed seeds the noise generators.
func WithSeed(seed int64) Option {
	return func(cfg *config) error {
		cfg.seed = seed
		return nil
	}
}
