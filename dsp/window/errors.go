package window

import (
	"errors"
	"fmt"
)

// ErrUnknownType is returned by [Parse] for names that match no window.
var ErrUnknownType = errors.New("window: unknown window type")

var errMismatchedLength = errors.New("window: samples and coefficients must have same length")

func unknownType(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownType, name)
}
