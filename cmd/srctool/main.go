// Command srctool converts audio files between sample rates and inspects
// the anti-aliasing filters used to do so.
//
// Usage:
//
//	srctool convert <input> --factor F [--out path] [--config file]
//	srctool rate --rate R --factor F
//	srctool kernel --rate R --factor F [--freq Hz ...]
//	srctool alias --rate R --factor F --tone Hz
//
// Examples:
//
//	srctool convert song.wav --factor 2
//	srctool rate --rate 44100 --factor 2.75625
//	srctool kernel --rate 48000 --factor 3 --quality best
//	srctool alias --rate 48000 --factor 2 --tone 15000
package main

import (
	"os"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.root().Execute(); err != nil {
		app.log.Error().Err(err).Msg("srctool failed")
		os.Exit(1)
	}
}
