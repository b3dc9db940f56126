package alias

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-src/dsp/core"
	"github.com/cwbudde/algo-src/dsp/pcm"
	"github.com/cwbudde/algo-src/dsp/resample"
	"github.com/cwbudde/algo-src/dsp/spectrum"
	"github.com/cwbudde/algo-src/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrEmptySignal is returned for a signal without samples.
	ErrEmptySignal = errors.New("alias: empty signal")
	// ErrInvalidTone is returned for a tone outside (0, sampleRate/2).
	ErrInvalidTone = errors.New("alias: tone must be between 0 and sampleRate/2")
	// ErrNotDownsampling is returned when the factor does not reduce the rate.
	ErrNotDownsampling = errors.New("alias: factor does not downsample")
)

// levelFloor bounds levels before conversion to dB.
const levelFloor = 1e-15

// Report holds one alias measurement. Levels are peak amplitudes.
type Report struct {
	// Plan is the conversion plan shared by both paths.
	resample.Plan
	// ToneHz is the input tone frequency.
	ToneHz float64
	// AliasHz is where the tone lands at the achieved rate.
	AliasHz float64
	// Aliased reports whether the tone lies above the output Nyquist.
	Aliased bool
	// Taps is the anti-alias kernel length, 0 when none was applied.
	Taps int

	FilteredLevel float64
	NaiveLevel    float64
	FilteredPeak  float64
	NaivePeak     float64
	FilteredDB    float64
	NaiveDB       float64
	// RejectionDB is NaiveDB - FilteredDB.
	RejectionDB float64
}

// AliasFrequency returns the frequency at which toneHz appears after
// sampling at newRate, folded into [0, newRate/2].
func AliasFrequency(toneHz, newRate float64) float64 {
	return core.FoldFrequency(toneHz, newRate)
}

// Tone returns frames samples of a sine at toneHz with the given amplitude.
func Tone(sampleRate int, toneHz, amplitude float64, frames int) []float64 {
	out := make([]float64, max(frames, 0))
	step := 2 * math.Pi * core.NormalizedFrequency(toneHz, float64(sampleRate))

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// Measure converts the mono signal by factor with opts and again with the
// anti-alias filter disabled, then reports the level of both outputs at the
// alias frequency of toneHz.
func Measure(signal []float64, sampleRate int, toneHz, factor float64, opts ...resample.Option) (Report, error) {
	if len(signal) == 0 {
		return Report{}, ErrEmptySignal
	}

	if !core.IsPositiveFinite(toneHz) || toneHz >= core.Nyquist(float64(sampleRate)) {
		return Report{}, fmt.Errorf("%w: %v Hz at %d Hz", ErrInvalidTone, toneHz, sampleRate)
	}

	buf, err := pcm.New(sampleRate, 0, [][]float64{signal})
	if err != nil {
		return Report{}, fmt.Errorf("alias: %w", err)
	}

	filtered, err := resample.Convert(buf, factor, opts...)
	if err != nil {
		return Report{}, err
	}

	if filtered.Strategy != resample.StrategyDownsample {
		return Report{}, fmt.Errorf("%w: %v", ErrNotDownsampling, factor)
	}

	naiveOpts := append(append([]resample.Option(nil), opts...), resample.WithoutAntiAlias())

	naive, err := resample.Convert(buf, factor, naiveOpts...)
	if err != nil {
		return Report{}, err
	}

	r := Report{
		Plan:    filtered.Plan,
		ToneHz:  toneHz,
		AliasHz: AliasFrequency(toneHz, filtered.AchievedRate),
		Aliased: toneHz > core.Nyquist(filtered.AchievedRate),
		Taps:    filtered.Taps,
	}

	fy := filtered.Buffer.Channel(0)
	ny := naive.Buffer.Channel(0)

	if r.FilteredLevel, err = level(fy, r.AliasHz, filtered.AchievedRate); err != nil {
		return Report{}, err
	}

	if r.NaiveLevel, err = level(ny, r.AliasHz, naive.AchievedRate); err != nil {
		return Report{}, err
	}

	if len(fy) > 0 {
		r.FilteredPeak = vecmath.MaxAbs(fy)
		r.NaivePeak = vecmath.MaxAbs(ny)
	}

	r.FilteredDB = core.LinearToDB(max(r.FilteredLevel, levelFloor))
	r.NaiveDB = core.LinearToDB(max(r.NaiveLevel, levelFloor))
	r.RejectionDB = r.NaiveDB - r.FilteredDB

	return r, nil
}

// level estimates the peak amplitude at freq using a Hann-weighted
// Goertzel bin normalised by the window's coherent sum.
func level(x []float64, freq, sampleRate float64) (float64, error) {
	if len(x) == 0 {
		return 0, nil
	}

	w := window.Generate(window.TypeHann, len(x), window.WithPeriodic())

	sum := vecmath.Sum(w)
	if sum == 0 {
		return 0, nil
	}

	weighted, err := window.ApplyCoefficients(x, w)
	if err != nil {
		return 0, err
	}

	g, err := spectrum.NewGoertzel(freq, sampleRate)
	if err != nil {
		return 0, err
	}

	g.ProcessBlock(weighted)

	return 2 * g.Magnitude() / sum, nil
}
