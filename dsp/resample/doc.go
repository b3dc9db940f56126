// Package resample converts [pcm.Buffer] values to a new sample rate by a
// positive real factor, where the new rate is oldRate/factor.
//
// Strategies:
//   - factor == 1: pass-through copy
//   - factor > 1:  anti-alias low-pass, then keep every stride-th sample
//   - factor < 1:  interpolate at positions i*factor (no filtering)
//
// Rate reductions are stride-first: an integer stride is chosen from the
// factor (see [StridePolicy]), the low-pass cutoff is set to half the rate
// that stride actually produces, and that achieved rate is reported in the
// [Result]. The achieved rate can therefore differ from oldRate/factor for
// non-integer factors; callers must use Result.AchievedRate.
// [WithFractionalDecimation] instead hits oldRate/factor exactly by reading
// fractional positions after filtering.
//
// Quality modes set the anti-alias kernel:
//
//	mode            taps/stride   kaiser beta   nominal stopband
//	QualityFast     16            5.0           ~55 dB
//	QualityBalanced 32            7.5           ~75 dB
//	QualityBest     64            9.0           ~90 dB
//
// Common workflows:
//   - Convert(buf, factor, opts...) one-shot conversion
//   - NewConverter(opts...) then (*Converter).Convert for repeated use
//   - PlanFor(rate, factor, opts...) / TargetRate to inspect a request
//
// A [Converter] is stateless and safe for concurrent use.
package resample
