package resample

import (
	"github.com/cwbudde/algo-src/dsp/filter/fir"
	"github.com/cwbudde/algo-src/dsp/interp"
	"github.com/cwbudde/algo-src/dsp/pcm"
)

// filtered is a buffer that has been through the anti-alias stage. Only
// antiAlias constructs it, so decimation cannot be reached with raw input.
type filtered struct {
	buf    pcm.Buffer
	kernel *fir.Kernel
}

// antiAlias low-passes buf at cutoff. A zero cutoff (anti-aliasing
// disabled) or a degenerate one passes buf through unchanged.
func antiAlias(lp *fir.LowPass, buf pcm.Buffer, cutoff float64) (filtered, error) {
	if cutoff <= 0 {
		return filtered{buf: buf}, nil
	}

	r, err := lp.ApplyReport(buf, cutoff)
	if err != nil {
		return filtered{}, err
	}

	return filtered{buf: r.Buffer, kernel: r.Kernel}, nil
}

// decimate keeps frames 0, stride, 2*stride, ... giving
// floor(frames/stride) frames per channel at rate.
func decimate(f filtered, stride, rate, workers int) (pcm.Buffer, error) {
	return pcm.MapChannels(f.buf, rate, workers, func(_ int, in []float64) []float64 {
		out := make([]float64, len(in)/stride)
		for i := range out {
			out[i] = in[i*stride]
		}

		return out
	})
}

// decimateFractional reads floor(frames/factor) frames at positions
// i*factor.
func decimateFractional(f filtered, factor float64, mode interp.Mode, rate, workers int) (pcm.Buffer, error) {
	n := int(float64(f.buf.Frames()) / factor)

	return pcm.MapChannels(f.buf, rate, workers, func(_ int, in []float64) []float64 {
		return interp.Read(in, factor, n, mode)
	})
}
