package pcm

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidChannels indicates a channel count below one.
	ErrInvalidChannels = errors.New("pcm: channel count must be > 0")
	// ErrInvalidSampleRate indicates a sample rate below one.
	ErrInvalidSampleRate = errors.New("pcm: sample rate must be > 0")
	// ErrInvalidBitDepth indicates an unsupported bit depth.
	ErrInvalidBitDepth = errors.New("pcm: unsupported bit depth")
	// ErrChannelLength indicates planar channels of unequal length.
	ErrChannelLength = errors.New("pcm: channels differ in length")
	// ErrInterleavedLength indicates interleaved data that is not a whole
	// number of frames.
	ErrInterleavedLength = errors.New("pcm: interleaved length is not a multiple of channels")
)

// Buffer is an immutable planar PCM buffer.
//
// The zero value is not valid; use [New], [FromInterleaved] or [Silence].
type Buffer struct {
	sampleRate int
	bitDepth   int
	data       [][]float64
}

// New returns a buffer holding copies of the given planar channels.
// bitDepth is informational; 0 means unspecified.
func New(sampleRate, bitDepth int, channels [][]float64) (Buffer, error) {
	if err := validateHeader(sampleRate, bitDepth, len(channels)); err != nil {
		return Buffer{}, err
	}

	frames := len(channels[0])
	data := make([][]float64, len(channels))
	for ch, src := range channels {
		if len(src) != frames {
			return Buffer{}, fmt.Errorf("%w: channel %d has %d frames, want %d", ErrChannelLength, ch, len(src), frames)
		}

		data[ch] = append(make([]float64, 0, frames), src...)
	}

	return Buffer{sampleRate: sampleRate, bitDepth: bitDepth, data: data}, nil
}

// FromInterleaved de-interleaves samples into a new buffer.
func FromInterleaved(sampleRate, bitDepth, channels int, samples []float64) (Buffer, error) {
	if err := validateHeader(sampleRate, bitDepth, channels); err != nil {
		return Buffer{}, err
	}

	if len(samples)%channels != 0 {
		return Buffer{}, fmt.Errorf("%w: %d samples, %d channels", ErrInterleavedLength, len(samples), channels)
	}

	frames := len(samples) / channels
	data := make([][]float64, channels)
	for ch := range data {
		data[ch] = make([]float64, frames)
	}

	for i, v := range samples {
		data[i%channels][i/channels] = v
	}

	return Buffer{sampleRate: sampleRate, bitDepth: bitDepth, data: data}, nil
}

// Silence returns a zero-filled buffer.
func Silence(sampleRate, bitDepth, channels, frames int) (Buffer, error) {
	if err := validateHeader(sampleRate, bitDepth, channels); err != nil {
		return Buffer{}, err
	}

	if frames < 0 {
		frames = 0
	}

	data := make([][]float64, channels)
	for ch := range data {
		data[ch] = make([]float64, frames)
	}

	return Buffer{sampleRate: sampleRate, bitDepth: bitDepth, data: data}, nil
}

// wrap adopts data without copying. Callers must not retain data.
func wrap(sampleRate, bitDepth int, data [][]float64) Buffer {
	return Buffer{sampleRate: sampleRate, bitDepth: bitDepth, data: data}
}

// Validate reports whether b satisfies the buffer invariants.
func (b Buffer) Validate() error {
	if err := validateHeader(b.sampleRate, b.bitDepth, len(b.data)); err != nil {
		return err
	}

	frames := len(b.data[0])
	for ch, c := range b.data {
		if len(c) != frames {
			return fmt.Errorf("%w: channel %d has %d frames, want %d", ErrChannelLength, ch, len(c), frames)
		}
	}

	return nil
}

// Channels returns the channel count.
func (b Buffer) Channels() int {
	return len(b.data)
}

// SampleRate returns the sample rate in Hz.
func (b Buffer) SampleRate() int {
	return b.sampleRate
}

// BitDepth returns the informational bit depth (0 if unspecified).
func (b Buffer) BitDepth() int {
	return b.bitDepth
}

// Frames returns the number of samples per channel.
func (b Buffer) Frames() int {
	if len(b.data) == 0 {
		return 0
	}

	return len(b.data[0])
}

// Len returns the total number of samples across all channels.
func (b Buffer) Len() int {
	return b.Frames() * b.Channels()
}

// Empty reports whether the buffer has no frames.
func (b Buffer) Empty() bool {
	return b.Frames() == 0
}

// Duration returns the playback duration at the buffer's sample rate.
func (b Buffer) Duration() time.Duration {
	if b.sampleRate <= 0 {
		return 0
	}

	return time.Duration(float64(b.Frames()) / float64(b.sampleRate) * float64(time.Second))
}

// Channel returns a copy of channel ch. It panics if ch is out of range.
func (b Buffer) Channel(ch int) []float64 {
	out := make([]float64, len(b.data[ch]))
	copy(out, b.data[ch])

	return out
}

// At returns the sample at frame i of channel ch.
func (b Buffer) At(ch, i int) float64 {
	return b.data[ch][i]
}

// Interleaved returns the samples in frame-major order.
func (b Buffer) Interleaved() []float64 {
	channels := b.Channels()
	out := make([]float64, b.Len())

	for ch, c := range b.data {
		for i, v := range c {
			out[i*channels+ch] = v
		}
	}

	return out
}

// Clone returns a deep copy of b.
func (b Buffer) Clone() Buffer {
	data := make([][]float64, len(b.data))
	for ch, c := range b.data {
		data[ch] = append(make([]float64, 0, len(c)), c...)
	}

	return wrap(b.sampleRate, b.bitDepth, data)
}

// WithSampleRate returns a copy of b relabelled with sampleRate.
// The samples are not changed.
func (b Buffer) WithSampleRate(sampleRate int) (Buffer, error) {
	if sampleRate <= 0 {
		return Buffer{}, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	out := b.Clone()
	out.sampleRate = sampleRate

	return out, nil
}

// Equal reports whether a and b have identical headers and samples.
func Equal(a, b Buffer) bool {
	if a.sampleRate != b.sampleRate || a.bitDepth != b.bitDepth || len(a.data) != len(b.data) {
		return false
	}

	for ch := range a.data {
		if len(a.data[ch]) != len(b.data[ch]) {
			return false
		}

		for i, v := range a.data[ch] {
			if v != b.data[ch][i] {
				return false
			}
		}
	}

	return true
}

func validateHeader(sampleRate, bitDepth, channels int) error {
	if channels <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	switch bitDepth {
	case 0, 8, 16, 24, 32, 64:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidBitDepth, bitDepth)
	}

	return nil
}
