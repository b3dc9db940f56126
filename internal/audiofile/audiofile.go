// Package audiofile loads and stores pcm.Buffers as audio files.
package audiofile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/cwbudde/algo-src/dsp/dither"
	"github.com/cwbudde/algo-src/dsp/pcm"
)

var (
	// ErrUnsupportedFormat is returned for file extensions other than
	// .wav and .mp3.
	ErrUnsupportedFormat = errors.New("audiofile: unsupported format")
	// ErrInvalidWAV is returned when a file is not a PCM WAV file.
	ErrInvalidWAV = errors.New("audiofile: invalid wav file")
)

const (
	defaultBitDepth = 16
	wavFormatPCM    = 1
	mp3Channels     = 2
	mp3BitDepth     = 16
)

// Decode reads a .wav or .mp3 file into a buffer. Samples are normalised
// to [-1, 1) and the source bit depth is recorded on the buffer.
func Decode(path string) (pcm.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return pcm.Buffer{}, fmt.Errorf("audiofile: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return DecodeWAV(f)
	case ".mp3":
		return DecodeMP3(f)
	default:
		return pcm.Buffer{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// DecodeWAV reads integer PCM WAV data.
func DecodeWAV(r io.ReadSeeker) (pcm.Buffer, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return pcm.Buffer{}, ErrInvalidWAV
	}

	if d.WavAudioFormat != wavFormatPCM {
		return pcm.Buffer{}, fmt.Errorf("%w: audio format %d", ErrInvalidWAV, d.WavAudioFormat)
	}

	ib, err := d.FullPCMBuffer()
	if err != nil {
		return pcm.Buffer{}, fmt.Errorf("audiofile: decode wav: %w", err)
	}

	bits := int(d.BitDepth)
	samples := make([]float64, len(ib.Data))
	scale := 1 / math.Exp2(float64(bits-1))

	for i, v := range ib.Data {
		if bits == 8 {
			v -= 128
		}

		samples[i] = float64(v) * scale
	}

	buf, err := pcm.FromInterleaved(int(d.SampleRate), bits, int(d.NumChans), samples)
	if err != nil {
		return pcm.Buffer{}, fmt.Errorf("audiofile: %w", err)
	}

	return buf, nil
}

// DecodeMP3 reads an MP3 stream. The decoder always yields 16-bit stereo.
func DecodeMP3(r io.Reader) (pcm.Buffer, error) {
	d, err := mp3.NewDecoder(r)
	if err != nil {
		return pcm.Buffer{}, fmt.Errorf("audiofile: decode mp3: %w", err)
	}

	raw, err := io.ReadAll(d)
	if err != nil {
		return pcm.Buffer{}, fmt.Errorf("audiofile: decode mp3: %w", err)
	}

	samples := make([]float64, len(raw)/2)
	for i := range samples {
		samples[i] = float64(int16(binary.LittleEndian.Uint16(raw[2*i:]))) / 32768
	}

	// Drop a trailing partial frame.
	samples = samples[:len(samples)-len(samples)%mp3Channels]

	buf, err := pcm.FromInterleaved(d.SampleRate(), mp3BitDepth, mp3Channels, samples)
	if err != nil {
		return pcm.Buffer{}, fmt.Errorf("audiofile: %w", err)
	}

	return buf, nil
}

// OutputBitDepth returns the bit depth EncodeWAV uses for buf: the
// buffer's own depth when it is 8, 16, 24 or 32, otherwise 16.
func OutputBitDepth(buf pcm.Buffer) int {
	switch b := buf.BitDepth(); b {
	case 8, 16, 24, 32:
		return b
	default:
		return defaultBitDepth
	}
}

// EncodeWAV writes buf to path as integer PCM WAV. opts tune the dither
// quantizer; the bit depth follows [OutputBitDepth] unless overridden.
func EncodeWAV(path string, buf pcm.Buffer, opts ...dither.Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audiofile: %w", err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("audiofile: %w", cerr)
		}
	}()

	return WriteWAV(f, buf, opts...)
}

// WriteWAV encodes buf as integer PCM WAV into w.
func WriteWAV(w io.WriteSeeker, buf pcm.Buffer, opts ...dither.Option) error {
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("audiofile: %w", err)
	}

	q, err := dither.NewQuantizer(append([]dither.Option{dither.WithBitDepth(OutputBitDepth(buf))}, opts...)...)
	if err != nil {
		return fmt.Errorf("audiofile: %w", err)
	}

	bits := q.BitDepth()
	data := q.Quantize(nil, buf.Interleaved())

	if bits == 8 {
		for i := range data {
			data[i] += 128
		}
	}

	enc := wav.NewEncoder(w, buf.SampleRate(), bits, buf.Channels(), wavFormatPCM)

	ib := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: buf.Channels(), SampleRate: buf.SampleRate()},
		Data:           data,
		SourceBitDepth: bits,
	}

	if err := enc.Write(ib); err != nil {
		return fmt.Errorf("audiofile: encode wav: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("audiofile: encode wav: %w", err)
	}

	return nil
}

// OutputPath names the converted file next to input:
// <dir>/<stem>_resampled_<rate>.wav.
func OutputPath(input string, rate int) string {
	dir := filepath.Dir(input)
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	return filepath.Join(dir, stem+"_resampled_"+strconv.Itoa(rate)+".wav")
}
