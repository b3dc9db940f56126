package pcm

import (
	"fmt"

	"github.com/cwbudde/algo-src/internal/workpool"
)

// ChannelFunc transforms one channel. in is a read-only view of the source
// channel and must not be modified or retained; the returned slice must be
// freshly allocated and becomes owned by the output buffer.
type ChannelFunc func(ch int, in []float64) []float64

// MapChannels applies fn to every channel of src, using up to workers
// goroutines (<= 0 selects GOMAXPROCS), and assembles the results into a new
// buffer at sampleRate. All returned channels must have the same length.
func MapChannels(src Buffer, sampleRate, workers int, fn ChannelFunc) (Buffer, error) {
	if err := src.Validate(); err != nil {
		return Buffer{}, err
	}

	if sampleRate <= 0 {
		return Buffer{}, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	out := make([][]float64, len(src.data))
	workpool.Run(len(src.data), workers, func(ch int) {
		out[ch] = fn(ch, src.data[ch])
	})

	frames := len(out[0])
	for ch, c := range out {
		if len(c) != frames {
			return Buffer{}, fmt.Errorf("%w: channel %d produced %d frames, want %d", ErrChannelLength, ch, len(c), frames)
		}
	}

	return wrap(sampleRate, src.bitDepth, out), nil
}
