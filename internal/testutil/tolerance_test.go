package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{name: "identical", a: []float64{1, 2, 3}, b: []float64{1, 2, 3}, want: 0},
		{name: "one sample", a: []float64{1, 2, 3}, b: []float64{1, 2.5, 3}, want: 0.5},
		{name: "worst wins", a: []float64{0, 0, 0}, b: []float64{0.1, -0.3, 0.2}, want: 0.3},
		{name: "empty", a: nil, b: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MaxAbsDiff(tt.a, tt.b)
			if err != nil {
				t.Fatalf("MaxAbsDiff: %v", err)
			}

			if math.Abs(got-tt.want) > 1e-15 {
				t.Fatalf("MaxAbsDiff = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaxAbsDiffErrors(t *testing.T) {
	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}

	d, err := MaxAbsDiff([]float64{1, math.NaN()}, []float64{1, 0})
	if err != nil || !math.IsNaN(d) {
		t.Fatalf("NaN input = %v, %v; want NaN", d, err)
	}
}
