package window

import (
	"errors"
	"math"
	"testing"
)

func TestGenerateAllTypes(t *testing.T) {
	types := []Type{
		TypeRectangular,
		TypeHann,
		TypeHamming,
		TypeBlackman,
		TypeKaiser,
	}

	for _, typ := range types {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 65, WithAlpha(7.5))
			if len(w) != 65 {
				t.Fatalf("len=%d, want 65", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}
			}

			for i := range w {
				if !almostEqual(w[i], w[len(w)-1-i], 1e-12) {
					t.Fatalf("not symmetric at %d: %v vs %v", i, w[i], w[len(w)-1-i])
				}
			}

			if !almostEqual(w[32], 1, 1e-6) {
				t.Fatalf("centre coefficient=%v, want 1", w[32])
			}
		})
	}
}

func TestPeriodicDiffersFromSymmetric(t *testing.T) {
	a := Generate(TypeHann, 16)

	b := Generate(TypeHann, 16, WithPeriodic())
	if len(a) != 16 || len(b) != 16 {
		t.Fatalf("unexpected lengths: %d %d", len(a), len(b))
	}

	if almostEqual(a[15], b[15], 1e-12) {
		t.Fatal("expected different end coefficient for periodic form")
	}
}

func TestSingleTapIsUnity(t *testing.T) {
	for _, typ := range []Type{TypeHann, TypeBlackman, TypeKaiser} {
		w := Generate(typ, 1, WithAlpha(9))
		if !almostEqual(w[0], 1, 1e-6) {
			t.Fatalf("%v: single tap = %v, want 1", typ, w[0])
		}
	}
}

func TestInfo(t *testing.T) {
	m := Info(TypeHann)
	if m.Name != "Hann" {
		t.Fatalf("name=%q", m.Name)
	}

	if !almostEqual(m.ENBW, 1.5, 0.01) {
		t.Fatalf("ENBW metadata=%v", m.ENBW)
	}

	if got := Info(Type(99)); got != (Metadata{}) {
		t.Fatalf("Info(99) = %+v, want zero", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{in: "kaiser", want: TypeKaiser},
		{in: "Hann", want: TypeHann},
		{in: " BLACKMAN ", want: TypeBlackman},
		{in: "hamming", want: TypeHamming},
		{in: "rectangular", want: TypeRectangular},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tt.in, err)
		}

		if got != tt.want {
			t.Fatalf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := Parse("flattop"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("Parse(flattop) err = %v, want ErrUnknownType", err)
	}
}

func TestKaiserBeta(t *testing.T) {
	tests := []struct {
		atten, want float64
	}{
		{atten: 10, want: 0},
		{atten: 21, want: 0},
		{atten: 60, want: 0.1102 * 51.3},
		{atten: 90, want: 0.1102 * 81.3},
	}

	for _, tt := range tests {
		if got := KaiserBeta(tt.atten); !almostEqual(got, tt.want, 1e-12) {
			t.Fatalf("KaiserBeta(%v) = %v, want %v", tt.atten, got, tt.want)
		}
	}

	if b := KaiserBeta(40); b <= 0 || b >= KaiserBeta(60) {
		t.Fatalf("KaiserBeta(40) = %v not between 0 and KaiserBeta(60)", b)
	}
}

func TestApplyCoefficients(t *testing.T) {
	samples := []float64{1, 2, 3}
	coeffs := []float64{0.5, 0.5, 0.5}

	out, err := ApplyCoefficients(samples, coeffs)
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(out[2], 1.5, 1e-12) {
		t.Fatalf("out[2]=%v", out[2])
	}

	if samples[2] != 3 {
		t.Fatalf("input modified: %v", samples)
	}
}

func TestGoldenVectors(t *testing.T) {
	hannExpected := []float64{
		0.0, 0.1882550990706332, 0.6112604669781572, 0.9504844339512095,
		0.9504844339512095, 0.6112604669781573, 0.1882550990706333, 0.0,
	}
	hammingExpected := []float64{
		0.08, 0.25319469114498255, 0.6423596296199047, 0.9544456792351128,
		0.9544456792351128, 0.6423596296199048, 0.25319469114498266, 0.08,
	}
	kaiserExpected := []float64{
		0.002338830460264423, 0.1091958100155291, 0.4871186737556569, 0.9261577358777303,
		0.9261577358777303, 0.4871186737556569, 0.1091958100155291, 0.002338830460264423,
	}

	checkGolden(t, Generate(TypeHann, 8), hannExpected, 1e-10)
	checkGolden(t, Generate(TypeHamming, 8), hammingExpected, 1e-10)
	checkGolden(t, Generate(TypeKaiser, 8, WithAlpha(8)), kaiserExpected, 1e-10)
}

func TestValidationAndEdgeCases(t *testing.T) {
	if got := Generate(TypeHann, 0); got != nil {
		t.Fatalf("expected nil for zero length, got %v", got)
	}

	_, err := ApplyCoefficients([]float64{1, 2}, []float64{1})
	if err == nil {
		t.Fatal("expected mismatch error")
	}
}

func checkGolden(t *testing.T, got, want []float64, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("len mismatch got=%d want=%d", len(got), len(want))
	}

	for i := range got {
		if !almostEqual(got[i], want[i], tol) {
			t.Fatalf("index %d: got=%.16f want=%.16f", i, got[i], want[i])
		}
	}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
