package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-src/dsp/dither"
	"github.com/cwbudde/algo-src/dsp/resample"
	"github.com/cwbudde/algo-src/internal/config"
)

type app struct {
	out io.Writer
	log zerolog.Logger

	verbose    bool
	configPath string
	quality    string
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out: out,
		log: zerolog.New(zerolog.ConsoleWriter{Out: errOut, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger().Level(zerolog.InfoLevel),
	}
}

func (a *app) root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "srctool",
		Short: "Stride-first sample rate conversion",
		Long: `srctool converts audio between sample rates.

A factor F divides the sample rate. Factors above 1 low-pass filter the
signal and keep every stride-th sample; the achieved rate is reported
because it can differ from rate/F. Factors below 1 interpolate.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if a.verbose {
				a.log = a.log.Level(zerolog.DebugLevel)
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML settings file")
	flags.StringVarP(&a.quality, "quality", "q", "", "filter quality: fast, balanced or best")

	cmd.AddCommand(a.convertCmd(), a.rateCmd(), a.kernelCmd(), a.aliasCmd())

	return cmd
}

// settings loads the settings file if one was given and applies the
// --quality flag on top.
func (a *app) settings() (*config.Settings, error) {
	s := &config.Settings{}

	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return nil, err
		}

		s = loaded
		a.log.Debug().Str("path", a.configPath).Msg("loaded settings")
	}

	if a.quality != "" {
		s.Quality = a.quality
	}

	return s, nil
}

func (a *app) options() ([]resample.Option, []dither.Option, error) {
	s, err := a.settings()
	if err != nil {
		return nil, nil, err
	}

	ropts, err := s.ResampleOptions()
	if err != nil {
		return nil, nil, err
	}

	dopts, err := s.DitherOptions()
	if err != nil {
		return nil, nil, err
	}

	return ropts, dopts, nil
}

func (a *app) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(a.out, format, args...)
	return err
}
