package interp

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownMode is returned by [ParseMode] for unknown names.
var ErrUnknownMode = errors.New("interp: unknown mode")

// Mode selects the interpolation kernel.
type Mode int

const (
	// ModeLinear uses [Linear2].
	ModeLinear Mode = iota
	// ModeHermite uses [Hermite4].
	ModeHermite
)

func (m Mode) String() string {
	switch m {
	case ModeLinear:
		return "linear"
	case ModeHermite:
		return "hermite"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeLinear || m == ModeHermite
}

// ParseMode resolves "linear" or "hermite".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "":
		return ModeLinear, nil
	case "hermite", "cubic":
		return ModeHermite, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// At returns src read at fractional position pos. Neighbours outside src
// clamp to the first or last sample. src must not be empty.
func (m Mode) At(src []float64, pos float64) float64 {
	last := len(src) - 1
	if pos <= 0 {
		return src[0]
	}

	p0 := int(math.Floor(pos))
	if p0 >= last {
		return src[last]
	}

	frac := pos - float64(p0)
	x0, x1 := src[p0], src[p0+1]

	if m != ModeHermite {
		return Linear2(frac, x0, x1)
	}

	xm1 := src[max(p0-1, 0)]
	x2 := src[min(p0+2, last)]

	return Hermite4(frac, xm1, x0, x1, x2)
}
