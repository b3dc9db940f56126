package audiofile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-src/dsp/dither"
	"github.com/cwbudde/algo-src/dsp/pcm"
	"github.com/cwbudde/algo-src/internal/testutil"
)

func TestWAVRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		bits int
		want int
	}{
		{name: "8 bit", bits: 8, want: 8},
		{name: "16 bit", bits: 16, want: 16},
		{name: "24 bit", bits: 24, want: 24},
		{name: "32 bit", bits: 32, want: 32},
		{name: "unspecified", bits: 0, want: 16},
		{name: "float", bits: 64, want: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left := testutil.DeterministicSine(440, 22050, 0.5, 441)
			right := testutil.Ramp(-0.5, 1.0/441, 441)

			src, err := pcm.New(22050, tt.bits, [][]float64{left, right})
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			path := filepath.Join(t.TempDir(), "tone.wav")
			if err := EncodeWAV(path, src, dither.WithDitherType(dither.DitherNone)); err != nil {
				t.Fatalf("EncodeWAV: %v", err)
			}

			got, err := Decode(path)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}

			if got.SampleRate() != 22050 || got.Channels() != 2 || got.Frames() != 441 || got.BitDepth() != tt.want {
				t.Fatalf("header = %d Hz, %d ch, %d frames, %d bit", got.SampleRate(), got.Channels(), got.Frames(), got.BitDepth())
			}

			lsb := 1 / float64(int(1)<<(tt.want-1))
			testutil.RequireSliceNearlyEqual(t, got.Channel(0), left, lsb)
			testutil.RequireSliceNearlyEqual(t, got.Channel(1), right, lsb)
		})
	}
}

func TestWriteWAVDitherOverride(t *testing.T) {
	src, err := pcm.New(8000, 0, [][]float64{{0.25, -0.25}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.wav")
	if err := EncodeWAV(path, src, dither.WithBitDepth(24), dither.WithDitherType(dither.DitherNone)); err != nil {
		t.Fatalf("EncodeWAV: %v", err)
	}

	got, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got.BitDepth() != 24 {
		t.Fatalf("bit depth = %d, want 24", got.BitDepth())
	}

	testutil.RequireSliceNearlyEqual(t, got.Channel(0), []float64{0.25, -0.25}, 0)
}

func TestEncodeInvalidBuffer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	if err := EncodeWAV(path, pcm.Buffer{}); !errors.Is(err, pcm.ErrInvalidChannels) {
		t.Fatalf("err = %v, want ErrInvalidChannels", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	dir := t.TempDir()

	notWAV := filepath.Join(dir, "noise.wav")
	if err := os.WriteFile(notWAV, []byte(strings.Repeat("x", 64)), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Decode(notWAV); !errors.Is(err, ErrInvalidWAV) {
		t.Fatalf("err = %v, want ErrInvalidWAV", err)
	}

	flac := filepath.Join(dir, "song.flac")
	if err := os.WriteFile(flac, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Decode(flac); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}

	if _, err := Decode(filepath.Join(dir, "missing.wav")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want os.ErrNotExist", err)
	}

	badMP3 := filepath.Join(dir, "bad.mp3")
	if err := os.WriteFile(badMP3, []byte("not an mp3"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Decode(badMP3); err == nil {
		t.Fatal("expected an error for invalid mp3 data")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		in   string
		rate int
		want string
	}{
		{in: "song.wav", rate: 22050, want: "song_resampled_22050.wav"},
		{in: filepath.Join("music", "live.take.mp3"), rate: 16000, want: filepath.Join("music", "live.take_resampled_16000.wav")},
		{in: filepath.Join("a", "noext"), rate: 8000, want: filepath.Join("a", "noext_resampled_8000.wav")},
	}

	for _, tt := range tests {
		if got := OutputPath(tt.in, tt.rate); got != tt.want {
			t.Errorf("OutputPath(%q, %d) = %q, want %q", tt.in, tt.rate, got, tt.want)
		}
	}
}
