package fir

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-src/dsp/pcm"
	"github.com/cwbudde/algo-src/internal/testutil"
)

func BenchmarkApply(b *testing.B) {
	in, err := pcm.New(48000, 0, [][]float64{
		testutil.DeterministicNoise(1, 1, 1<<16),
		testutil.DeterministicNoise(2, 1, 1<<16),
	})
	if err != nil {
		b.Fatal(err)
	}

	for _, stride := range []int{2, 4, 16} {
		for _, fft := range []int{0, 1} {
			b.Run(fmt.Sprintf("stride=%d_fft=%d", stride, fft), func(b *testing.B) {
				lp := NewLowPass(WithFFTThreshold(fft))
				cutoff := 48000 / float64(stride) / 2
				b.SetBytes(int64(in.Len() * 8))
				for b.Loop() {
					_, _ = lp.Apply(in, cutoff)
				}
			})
		}
	}
}
