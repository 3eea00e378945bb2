package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qaoakit/analysis"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		distPath string
		labels   string
		top      int
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Report the most likely patterns of a distribution and score them against labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(distPath)
			if err != nil {
				return err
			}
			d, err := analysis.ReadDistribution(f)
			_ = f.Close()
			if err != nil {
				return err
			}
			if err := d.Validate(analysis.DefaultSumTolerance); err != nil {
				return err
			}

			var want analysis.Pattern
			if labels != "" {
				if want, err = analysis.ParsePattern(labels); err != nil {
					return err
				}
			}

			w, closeFn, err := a.output(cmd)
			if err != nil {
				return err
			}
			if err := report(w, d, want, top); err != nil {
				_ = closeFn()
				return err
			}
			return closeFn()
		},
	}
	f := cmd.Flags()
	f.StringVar(&distPath, "dist", "", "distribution file, one probability per line")
	f.StringVar(&labels, "labels", "", "ground-truth bit-string to score against")
	f.IntVar(&top, "top", 1, "number of most likely outcomes to list")
	_ = cmd.MarkFlagRequired("dist")
	return cmd
}

// report writes the analysis of d. want may be nil.
func report(w io.Writer, d analysis.Distribution, want analysis.Pattern, top int) error {
	best, comp, err := analysis.DegeneratePair(d)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "max: %s (index %d, p=%g)\n", best.Pattern, best.Index, best.Probability)
	fmt.Fprintf(w, "complement: %s (index %d, p=%g)\n", comp.Pattern, comp.Index, comp.Probability)

	if top > 0 {
		outs, err := analysis.MostLikely(d, top)
		if err != nil {
			return err
		}
		for i, o := range outs {
			fmt.Fprintf(w, "top%d: %s (index %d, p=%g)\n", i+1, o.Pattern, o.Index, o.Probability)
		}
	}

	if want != nil {
		s, err := analysis.Accuracy(best.Pattern, want)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "accuracy: original=%g complement=%g best=%g\n", s.Original, s.Complement, s.Best()); err != nil {
			return err
		}
	}
	return nil
}
