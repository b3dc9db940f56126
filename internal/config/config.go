// Package config loads conversion settings from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/cwbudde/algo-src/dsp/dither"
	"github.com/cwbudde/algo-src/dsp/filter/fir"
	"github.com/cwbudde/algo-src/dsp/interp"
	"github.com/cwbudde/algo-src/dsp/resample"
	"github.com/cwbudde/algo-src/dsp/window"
)

// ErrInvalidSetting is returned when a field holds an unusable value.
var ErrInvalidSetting = errors.New("config: invalid setting")

// Settings mirrors the YAML settings file. Zero values keep the library
// defaults.
type Settings struct {
	// Quality is "fast", "balanced" or "best".
	Quality string `yaml:"quality,omitempty"`
	// TapsPerStride overrides the kernel taps per unit of stride.
	TapsPerStride int `yaml:"taps_per_stride,omitempty"`
	// MaxTaps caps the kernel length.
	MaxTaps int `yaml:"max_taps,omitempty"`
	// KaiserBeta overrides the Kaiser window shape.
	KaiserBeta float64 `yaml:"kaiser_beta,omitempty"`
	// StopbandDB derives the Kaiser beta from a target attenuation.
	// It excludes KaiserBeta.
	StopbandDB float64 `yaml:"stopband_db,omitempty"`
	// CutoffScale multiplies the cutoff, in (0, 1].
	CutoffScale float64 `yaml:"cutoff_scale,omitempty"`
	// Window names the kernel window, e.g. "Kaiser" or "Blackman".
	Window string `yaml:"window,omitempty"`
	// Edge is "replicate" or "zero".
	Edge string `yaml:"edge,omitempty"`
	// StridePolicy is "nearest" or "floor".
	StridePolicy string `yaml:"stride_policy,omitempty"`
	// Fractional enables fractional decimation for non-integer factors.
	Fractional bool `yaml:"fractional,omitempty"`
	// Interpolation is "linear" or "hermite".
	Interpolation string `yaml:"interpolation,omitempty"`
	// Workers bounds goroutines; 0 uses GOMAXPROCS.
	Workers int `yaml:"workers,omitempty"`
	// BlockSize is the number of frames per filter job.
	BlockSize int `yaml:"block_size,omitempty"`
	// FFTThreshold is the kernel length from which FFT convolution is used.
	FFTThreshold int `yaml:"fft_threshold,omitempty"`

	// BitDepth is the WAV output depth; 0 keeps the input depth.
	BitDepth int `yaml:"bit_depth,omitempty"`
	// Dither is "none", "rectangular" or "triangular".
	Dither string `yaml:"dither,omitempty"`
	// Seed seeds the dither generator.
	Seed int64 `yaml:"seed,omitempty"`
}

// Load reads settings from path. Unknown keys are rejected.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML settings.
func Parse(data []byte) (*Settings, error) {
	var s Settings
	if err := yaml.UnmarshalWithOptions(data, &s, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if _, err := s.ResampleOptions(); err != nil {
		return nil, err
	}

	if _, err := s.DitherOptions(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Marshal encodes s as YAML.
func (s *Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// ResampleOptions converts the settings into converter options.
func (s *Settings) ResampleOptions() ([]resample.Option, error) {
	var opts []resample.Option

	if s.Quality != "" {
		q, err := resample.ParseQuality(s.Quality)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}

		opts = append(opts, resample.WithQuality(q))
	}

	if s.TapsPerStride < 0 {
		return nil, invalid("taps_per_stride", s.TapsPerStride)
	}

	if s.TapsPerStride > 0 {
		opts = append(opts, resample.WithTapsPerStride(s.TapsPerStride))
	}

	if s.MaxTaps < 0 {
		return nil, invalid("max_taps", s.MaxTaps)
	}

	if s.MaxTaps > 0 {
		opts = append(opts, resample.WithMaxTaps(s.MaxTaps))
	}

	if s.KaiserBeta < 0 {
		return nil, invalid("kaiser_beta", s.KaiserBeta)
	}

	if s.KaiserBeta > 0 {
		opts = append(opts, resample.WithKaiserBeta(s.KaiserBeta))
	}

	if s.StopbandDB < 0 || (s.StopbandDB > 0 && s.KaiserBeta > 0) {
		return nil, invalid("stopband_db", s.StopbandDB)
	}

	if s.StopbandDB > 0 {
		opts = append(opts, resample.WithStopband(s.StopbandDB))
	}

	if s.CutoffScale < 0 || s.CutoffScale > 1 {
		return nil, invalid("cutoff_scale", s.CutoffScale)
	}

	if s.CutoffScale > 0 {
		opts = append(opts, resample.WithCutoffScale(s.CutoffScale))
	}

	if s.Window != "" {
		w, err := window.Parse(s.Window)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}

		opts = append(opts, resample.WithWindow(w))
	}

	if s.Edge != "" {
		e, err := fir.ParseEdgeMode(s.Edge)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}

		opts = append(opts, resample.WithEdgeMode(e))
	}

	if s.StridePolicy != "" {
		p, err := resample.ParseStridePolicy(s.StridePolicy)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}

		opts = append(opts, resample.WithStridePolicy(p))
	}

	if s.Fractional {
		opts = append(opts, resample.WithFractionalDecimation())
	}

	if s.Interpolation != "" {
		m, err := interp.ParseMode(s.Interpolation)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}

		opts = append(opts, resample.WithInterpolation(m))
	}

	if s.Workers < 0 {
		return nil, invalid("workers", s.Workers)
	}

	if s.Workers > 0 {
		opts = append(opts, resample.WithWorkers(s.Workers))
	}

	if s.BlockSize < 0 {
		return nil, invalid("block_size", s.BlockSize)
	}

	if s.BlockSize > 0 {
		opts = append(opts, resample.WithBlockSize(s.BlockSize))
	}

	if s.FFTThreshold != 0 {
		opts = append(opts, resample.WithFFTThreshold(s.FFTThreshold))
	}

	return opts, nil
}

// DitherOptions converts the output settings into quantizer options.
func (s *Settings) DitherOptions() ([]dither.Option, error) {
	var opts []dither.Option

	switch s.BitDepth {
	case 0:
	case 8, 16, 24, 32:
		opts = append(opts, dither.WithBitDepth(s.BitDepth))
	default:
		return nil, invalid("bit_depth", s.BitDepth)
	}

	if s.Dither != "" {
		dt, err := dither.ParseDitherType(s.Dither)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}

		opts = append(opts, dither.WithDitherType(dt))
	}

	if s.Seed != 0 {
		opts = append(opts, dither.WithSeed(s.Seed))
	}

	return opts, nil
}

func invalid(key string, v any) error {
	return fmt.Errorf("%w: %s = %v", ErrInvalidSetting, key, v)
}
