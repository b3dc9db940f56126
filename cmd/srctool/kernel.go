package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-src/dsp/core"
	"github.com/cwbudde/algo-src/dsp/filter/fir"
	"github.com/cwbudde/algo-src/dsp/resample"
	"github.com/cwbudde/algo-src/dsp/window"
)

func (a *app) kernelCmd() *cobra.Command {
	var (
		req   requestFlags
		freqs []float64
	)

	cmd := &cobra.Command{
		Use:   "kernel",
		Short: "Describe the anti-alias kernel of a conversion",
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

			c := resample.NewConverter(ropts...)

			k, err := c.Kernel(req.rate, factor)
			if err != nil {
				return err
			}

			if k == nil {
				return a.printf("No anti-alias kernel for factor %g at %d Hz\n", factor, req.rate)
			}

			if len(freqs) == 0 {
				freqs = probeFrequencies(k)
			}

			w, beta := c.Window()

			return a.printKernel(k, describeWindow(w, beta), freqs)
		},
	}

	req.register(cmd)
	cmd.Flags().Float64SliceVar(&freqs, "freq", nil, "frequencies in Hz to evaluate (default around the cutoff)")

	return cmd
}

// probeFrequencies spans DC, the transition band and Nyquist.
func probeFrequencies(k *fir.Kernel) []float64 {
	c := k.Cutoff()
	nyq := core.Nyquist(k.SampleRate())

	out := []float64{0, c / 2, 0.9 * c, c}
	for _, f := range []float64{1.1 * c, 1.5 * c, 2 * c, nyq} {
		if f <= nyq && f > out[len(out)-1] {
			out = append(out, f)
		}
	}

	return out
}

func describeWindow(w window.Type, beta float64) string {
	if w == window.TypeKaiser {
		return fmt.Sprintf("%v (beta %.2f)", w, beta)
	}

	return fmt.Sprintf("%v (sidelobe %.1f dB)", w, window.Info(w).HighestSidelobe)
}

func (a *app) printKernel(k *fir.Kernel, win string, freqs []float64) error {
	if err := a.printf("Window: %s\nTaps: %d\nDelay: %d samples\nCutoff: %.3f Hz\nDC gain: %.6f\n\n",
		win, k.Len(), k.Delay(), k.Cutoff(), k.DCGain()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Frequency [Hz]\tMagnitude [dB]\n--------------\t--------------\n"); err != nil {
		return err
	}

	for _, f := range freqs {
		if _, err := fmt.Fprintf(tw, "%.1f\t%.2f\n", f, k.MagnitudeDB(f)); err != nil {
			return err
		}
	}

	return tw.Flush()
}
