// Package pcm provides the immutable multi-channel sample buffer passed
// between conversion stages.
//
// Samples are float64 values normalised to the nominal range [-1, 1] and
// stored planar, one slice per channel. Constructors copy their input and
// accessors return copies, so a [Buffer] handed to a stage can never be
// changed behind the caller's back. Stages produce new buffers through
// [MapChannels], which gives each channel worker a read-only view of its
// input and takes ownership of the slice the worker returns.
//
// Interleaved data (frame-major, channel-minor) is imported with
// [FromInterleaved] and exported with [Buffer.Interleaved].
package pcm
