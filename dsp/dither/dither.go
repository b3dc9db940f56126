package dither

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType is returned by [ParseDitherType] for unknown names.
var ErrUnknownType = errors.New("dither: unknown dither type")

// DitherType selects the probability distribution of the dither noise.
type DitherType int

const (
	// DitherNone rounds without noise.
	DitherNone DitherType = iota
	// DitherRectangular adds uniform noise.
	DitherRectangular
	// DitherTriangular adds triangular-PDF noise.
	DitherTriangular

	ditherTypeCount
)

var ditherTypeNames = [ditherTypeCount]string{"none", "rectangular", "triangular"}

func (dt DitherType) String() string {
	if dt.Valid() {
		return ditherTypeNames[dt]
	}

	return fmt.Sprintf("DitherType(%d)", int(dt))
}

// Valid reports whether dt is a known dither type.
func (dt DitherType) Valid() bool {
	return dt >= 0 && dt < ditherTypeCount
}

// ParseDitherType resolves a case-insensitive name. "tpdf" and "rpdf" are
// accepted as aliases.
func ParseDitherType(s string) (DitherType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "tpdf":
		return DitherTriangular, nil
	case "rpdf":
		return DitherRectangular, nil
	}

	for i, n := range ditherTypeNames {
		if n == name {
			return DitherType(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}
