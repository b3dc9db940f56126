// Package interp provides interpolation primitives and the sample-position
// stretcher used for rate increases.
//
// Available kernels, from cheapest to highest quality:
//
//   - [Linear2]:  2-point linear interpolation
//   - [Hermite4]: 4-point cubic Hermite
//
// [Stretch] reads a channel at positions i*factor for a factor in (0, 1),
// producing round(len/factor) samples. Reads past the last sample clamp to
// it; nothing is extrapolated. With [ModeLinear] every output lies between
// its two source neighbours, so no overshoot is introduced. [ModeHermite]
// is smoother but can overshoot at steps.
package interp
