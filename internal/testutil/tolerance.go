package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t when the slices differ in length or any
// pair of samples differs by more than eps. The failure names the worst
// sample.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	diff, at, err := worstDiff(got, want)
	if err != nil {
		t.Fatal(err)
	}

	if diff > eps || math.IsNaN(diff) {
		t.Fatalf("sample %d: got %v, want %v (|diff| %g > %g)", at, got[at], want[at], diff, eps)
	}
}

// MaxAbsDiff returns the largest absolute sample difference.
func MaxAbsDiff(a, b []float64) (float64, error) {
	diff, _, err := worstDiff(a, b)
	return diff, err
}

func worstDiff(a, b []float64) (diff float64, at int, err error) {
	if len(a) != len(b) {
		return 0, 0, fmt.Errorf("length mismatch: got %d, want %d", len(a), len(b))
	}

	for i := range a {
		d := math.Abs(a[i] - b[i])
		if math.IsNaN(d) {
			return d, i, nil
		}

		if d > diff {
			diff, at = d, i
		}
	}

	return diff, at, nil
}
