package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-src/dsp/resample"
)

var errFactorOrTarget = errors.New("exactly one of --factor and --to is required")

// requestFlags holds the rate and factor shared by the analysis commands.
type requestFlags struct {
	rate   int
	factor string
	to     float64
}

func (r *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&r.rate, "rate", "r", 44100, "input sample rate in Hz")
	cmd.Flags().StringVarP(&r.factor, "factor", "f", "", "rate divisor")
	cmd.Flags().Float64Var(&r.to, "to", 0, "target rate in Hz, instead of --factor")
}

func (r *requestFlags) resolve() (float64, error) {
	switch {
	case r.factor != "" && r.to == 0:
		return resample.ParseFactor(r.factor)
	case r.factor == "" && r.to != 0:
		return resample.FactorForRates(float64(r.rate), r.to)
	default:
		return 0, errFactorOrTarget
	}
}

func (a *app) rateCmd() *cobra.Command {
	var req requestFlags

	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Show the rate a conversion would achieve",
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

			p, err := resample.PlanFor(req.rate, factor, ropts...)
			if err != nil {
				return err
			}

			return a.printPlan(p)
		},
	}

	req.register(cmd)

	return cmd
}

func (a *app) printPlan(p resample.Plan) error {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)

	rows := [][2]string{
		{"Input rate [Hz]", fmt.Sprintf("%d", p.InputRate)},
		{"Factor", fmt.Sprintf("%g", p.Factor)},
		{"Strategy", p.Strategy.String()},
		{"Policy", p.Policy.String()},
		{"Stride", fmt.Sprintf("%d", p.Stride)},
		{"Requested rate [Hz]", fmt.Sprintf("%.3f", p.RequestedRate)},
		{"Achieved rate [Hz]", fmt.Sprintf("%.3f", p.AchievedRate)},
		{"Output rate [Hz]", fmt.Sprintf("%d", p.OutputRate)},
		{"Cutoff [Hz]", fmt.Sprintf("%.3f", p.Cutoff)},
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}

	return tw.Flush()
}
