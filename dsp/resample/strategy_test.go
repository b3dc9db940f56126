package resample

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestSelectStrategy(t *testing.T) {
	tests := []struct {
		factor float64
		want   Strategy
	}{
		{factor: 1, want: StrategyPassThrough},
		{factor: 1.0000001, want: StrategyDownsample},
		{factor: 4, want: StrategyDownsample},
		{factor: 0.999, want: StrategyUpsample},
		{factor: 0.01, want: StrategyUpsample},
	}

	for _, tt := range tests {
		if got := SelectStrategy(tt.factor); got != tt.want {
			t.Fatalf("SelectStrategy(%v) = %v, want %v", tt.factor, got, tt.want)
		}
	}
}

func TestStridePolicy(t *testing.T) {
	tests := []struct {
		factor  float64
		nearest int
		floor   int
	}{
		{factor: 1, nearest: 1, floor: 1},
		{factor: 2, nearest: 2, floor: 2},
		{factor: 7, nearest: 7, floor: 7},
		{factor: 1.2, nearest: 1, floor: 1},
		{factor: 1.5, nearest: 2, floor: 1},
		{factor: 2.5, nearest: 3, floor: 2},
		{factor: 2.2, nearest: 2, floor: 2},
		{factor: 44100.0 / 16000, nearest: 3, floor: 2},
		{factor: 48000.0 / 44100, nearest: 1, floor: 1},
	}

	for _, tt := range tests {
		if got := StrideNearest.Stride(tt.factor); got != tt.nearest {
			t.Fatalf("nearest stride(%v) = %d, want %d", tt.factor, got, tt.nearest)
		}

		if got := StrideFloor.Stride(tt.factor); got != tt.floor {
			t.Fatalf("floor stride(%v) = %d, want %d", tt.factor, got, tt.floor)
		}
	}
}

func TestStrideNearestMinimisesRateError(t *testing.T) {
	for f := 1.05; f < 20; f += 0.1 {
		k := StrideNearest.Stride(f)
		target := 1 / f
		err := math.Abs(1/float64(k) - target)

		for _, other := range []float64{math.Floor(f), math.Ceil(f)} {
			if math.Abs(1/other-target) < err-1e-15 {
				t.Fatalf("factor %v: stride %d worse than %v", f, k, other)
			}
		}
	}
}

func TestParseStridePolicy(t *testing.T) {
	for in, want := range map[string]StridePolicy{"nearest": StrideNearest, "FLOOR": StrideFloor, "": StrideNearest} {
		got, err := ParseStridePolicy(in)
		if err != nil || got != want {
			t.Fatalf("ParseStridePolicy(%q) = %v, %v", in, got, err)
		}
	}

	if _, err := ParseStridePolicy("ceil"); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}

func TestParseQuality(t *testing.T) {
	tests := []struct {
		in   string
		want Quality
	}{
		{"fast", QualityFast},
		{"", QualityBalanced},
		{" Balanced", QualityBalanced},
		{"BEST", QualityBest},
	}

	for _, tt := range tests {
		got, err := ParseQuality(tt.in)
		if err != nil || got != tt.want {
			t.Fatalf("ParseQuality(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}

		if tt.in != "" && got.String() != strings.ToLower(strings.TrimSpace(tt.in)) {
			t.Fatalf("String() = %q for %q", got.String(), tt.in)
		}
	}

	if _, err := ParseQuality("ultra"); !errors.Is(err, ErrUnknownQuality) {
		t.Fatalf("err = %v, want ErrUnknownQuality", err)
	}
}
