package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-src/measure/alias"
)

func (a *app) aliasCmd() *cobra.Command {
	var (
		req       requestFlags
		tone      float64
		amplitude float64
		seconds   float64
	)

	cmd := &cobra.Command{
		Use:   "alias",
		Short: "Measure alias rejection on a synthetic tone",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			factor, err := req.resolve()
			if err != nil {
				return err
			}

			ropts, _, err := a.options()
			if err != nil {
				return err
			}

			frames := int(seconds * float64(req.rate))
			sig := alias.Tone(req.rate, tone, amplitude, frames)

			a.log.Debug().Float64("tone", tone).Int("frames", frames).Msg("measuring")

			r, err := alias.Measure(sig, req.rate, tone, factor, ropts...)
			if err != nil {
				return err
			}

			return a.printAlias(r)
		},
	}

	req.register(cmd)
	cmd.Flags().Float64Var(&tone, "tone", 0, "tone frequency in Hz")
	cmd.Flags().Float64Var(&amplitude, "amplitude", 0.9, "tone peak amplitude")
	cmd.Flags().Float64Var(&seconds, "seconds", 0.5, "tone duration in seconds")
	_ = cmd.MarkFlagRequired("tone")

	return cmd
}

func (a *app) printAlias(r alias.Report) error {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)

	rows := [][2]string{
		{"Tone [Hz]", fmt.Sprintf("%.1f", r.ToneHz)},
		{"Achieved rate [Hz]", fmt.Sprintf("%.3f", r.AchievedRate)},
		{"Alias [Hz]", fmt.Sprintf("%.1f", r.AliasHz)},
		{"Above Nyquist", fmt.Sprintf("%t", r.Aliased)},
		{"Taps", fmt.Sprintf("%d", r.Taps)},
		{"Naive level [dB]", fmt.Sprintf("%.2f", r.NaiveDB)},
		{"Filtered level [dB]", fmt.Sprintf("%.2f", r.FilteredDB)},
		{"Rejection [dB]", fmt.Sprintf("%.2f", r.RejectionDB)},
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}

	return tw.Flush()
}
