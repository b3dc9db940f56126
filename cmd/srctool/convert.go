package main

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-src/dsp/resample"
	"github.com/cwbudde/algo-src/internal/audiofile"
)

func (a *app) convertCmd() *cobra.Command {
	var (
		factor string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Convert a WAV or MP3 file by a factor and write WAV",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := resample.ParseFactor(factor)
			if err != nil {
				return err
			}

			ropts, dopts, err := a.options()
			if err != nil {
				return err
			}

			input := args[0]

			buf, err := audiofile.Decode(input)
			if err != nil {
				return err
			}

			a.log.Debug().
				Str("input", input).
				Int("rate", buf.SampleRate()).
				Int("channels", buf.Channels()).
				Int("frames", buf.Frames()).
				Int("bits", buf.BitDepth()).
				Msg("decoded")

			res, err := resample.Convert(buf, f, ropts...)
			if err != nil {
				return err
			}

			if res.AchievedRate != res.RequestedRate {
				a.log.Warn().
					Float64("requested", res.RequestedRate).
					Float64("achieved", res.AchievedRate).
					Int("stride", res.Stride).
					Msg("achieved rate differs from requested rate")
			}

			path := out
			if path == "" {
				path = audiofile.OutputPath(input, res.OutputRate)
			}

			if err := audiofile.EncodeWAV(path, res.Buffer, dopts...); err != nil {
				return err
			}

			a.log.Info().
				Str("output", path).
				Str("strategy", res.Strategy.String()).
				Int("taps", res.Taps).
				Dur("duration", res.Buffer.Duration()).
				Msg("converted")

			if err := a.printf("Original sample rate: %d\n", buf.SampleRate()); err != nil {
				return err
			}

			return a.printf("Resampled sample rate: %d\n", res.OutputRate)
		},
	}

	cmd.Flags().StringVarP(&factor, "factor", "f", "", "rate divisor; > 1 downsamples, < 1 upsamples")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default <stem>_resampled_<rate>.wav)")
	_ = cmd.MarkFlagRequired("factor")

	return cmd
}
