package fir

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-src/dsp/window"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestKernelLength(t *testing.T) {
	tests := []struct {
		name          string
		cutoff, rate  float64
		tapsPerStride int
		maxTaps       int
		want          int
	}{
		{name: "stride 2", cutoff: 12000, rate: 48000, tapsPerStride: 32, want: 65},
		{name: "stride 3", cutoff: 8000, rate: 48000, tapsPerStride: 32, want: 97},
		{name: "odd taps per stride", cutoff: 12000, rate: 48000, tapsPerStride: 15, want: 31},
		{name: "clamped", cutoff: 10, rate: 48000, tapsPerStride: 32, maxTaps: 1000, want: 999},
		{name: "even cap below request", cutoff: 12000, rate: 48000, tapsPerStride: 32, maxTaps: 40, want: 39},
		{name: "even cap on long stride", cutoff: 240, rate: 48000, tapsPerStride: 32, maxTaps: 64, want: 63},
		{name: "minimum", cutoff: 23999, rate: 48000, tapsPerStride: 1, want: 3},
		{name: "degenerate", cutoff: 0, rate: 48000, tapsPerStride: 32, want: MinTaps},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KernelLength(tt.cutoff, tt.rate, tt.tapsPerStride, tt.maxTaps)
			if got != tt.want {
				t.Fatalf("KernelLength = %d, want %d", got, tt.want)
			}

			if got%2 != 1 {
				t.Fatalf("length %d is even", got)
			}
		})
	}
}

func TestDesignLowpassInvariants(t *testing.T) {
	for _, win := range []window.Type{window.TypeKaiser, window.TypeHann, window.TypeBlackman, window.TypeHamming} {
		t.Run(win.String(), func(t *testing.T) {
			k, err := DesignLowpass(11025, 44100, WithWindow(win))
			if err != nil {
				t.Fatal(err)
			}

			if k.Len()%2 != 1 {
				t.Fatalf("Len = %d, want odd", k.Len())
			}

			if k.Delay() != k.Len()/2 {
				t.Fatalf("Delay = %d, want %d", k.Delay(), k.Len()/2)
			}

			if !almostEqual(k.DCGain(), 1, 1e-12) {
				t.Fatalf("DC gain = %v, want 1", k.DCGain())
			}

			c := k.Coefficients()
			for i := range c {
				if c[i] != c[len(c)-1-i] {
					t.Fatalf("asymmetric at %d: %v vs %v", i, c[i], c[len(c)-1-i])
				}
			}

			if k.Cutoff() != 11025 || k.SampleRate() != 44100 {
				t.Fatalf("cutoff/rate = %v/%v", k.Cutoff(), k.SampleRate())
			}
		})
	}
}

func TestDesignLowpassStopband(t *testing.T) {
	k, err := DesignLowpass(6000, 48000)
	if err != nil {
		t.Fatal(err)
	}

	if db := k.MagnitudeDB(0); !almostEqual(db, 0, 1e-9) {
		t.Fatalf("DC magnitude = %v dB, want 0", db)
	}

	if db := k.MagnitudeDB(3000); db < -0.1 {
		t.Fatalf("passband at 3 kHz = %v dB", db)
	}

	if db := k.MagnitudeDB(6000); db > -3 || db < -9 {
		t.Fatalf("cutoff magnitude = %v dB, want about -6", db)
	}

	for _, f := range []float64{9000, 12000, 18000, 23999} {
		if db := k.MagnitudeDB(f); db > -40 {
			t.Fatalf("stopband at %v Hz = %v dB, want < -40", f, db)
		}
	}

	if im := imag(k.Response(7000)); !almostEqual(im, 0, 1e-12) {
		t.Fatalf("zero-phase response has imaginary part %v", im)
	}
}

func TestDesignLowpassBetaRaisesAttenuation(t *testing.T) {
	soft, err := DesignLowpass(6000, 48000, WithKaiserBeta(4), WithLength(65))
	if err != nil {
		t.Fatal(err)
	}

	hard, err := DesignLowpass(6000, 48000, WithKaiserBeta(10), WithLength(65))
	if err != nil {
		t.Fatal(err)
	}

	if hard.MagnitudeDB(18000) >= soft.MagnitudeDB(18000) {
		t.Fatalf("beta 10 at 18 kHz = %v dB, beta 4 = %v dB", hard.MagnitudeDB(18000), soft.MagnitudeDB(18000))
	}
}

func TestDesignLowpassExplicitLength(t *testing.T) {
	k, err := DesignLowpass(1000, 8000, WithLength(10))
	if err != nil {
		t.Fatal(err)
	}

	if k.Len() != 11 {
		t.Fatalf("Len = %d, want 11", k.Len())
	}

	if _, err := DesignLowpass(1000, 8000, WithLength(-1)); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("err = %v, want ErrInvalidLength", err)
	}
}

func TestDesignLowpassDegenerate(t *testing.T) {
	tests := []struct {
		name         string
		cutoff, rate float64
		want         error
	}{
		{name: "zero cutoff", cutoff: 0, rate: 48000, want: ErrDegenerateCutoff},
		{name: "negative cutoff", cutoff: -100, rate: 48000, want: ErrDegenerateCutoff},
		{name: "NaN cutoff", cutoff: math.NaN(), rate: 48000, want: ErrDegenerateCutoff},
		{name: "at nyquist", cutoff: 24000, rate: 48000, want: ErrDegenerateCutoff},
		{name: "above nyquist", cutoff: 30000, rate: 48000, want: ErrDegenerateCutoff},
		{name: "zero rate", cutoff: 100, rate: 0, want: ErrInvalidSampleRate},
		{name: "inf rate", cutoff: 100, rate: math.Inf(1), want: ErrInvalidSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := DesignLowpass(tt.cutoff, tt.rate)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}

			if k != nil {
				t.Fatal("kernel returned with error")
			}
		})
	}
}
