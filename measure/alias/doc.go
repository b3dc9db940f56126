// Package alias measures how well a rate conversion suppresses aliasing.
//
// [Measure] downsamples a tone twice, once with the configured anti-alias
// filter and once by plain decimation, and compares the level each output
// carries at the frequency the tone folds to.
package alias
