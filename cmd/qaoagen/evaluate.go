package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qaoakit/analysis"
)

func newEvaluateCmd(a *app) *cobra.Command {
	var (
		modelPath string
		beta      float64
	)
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Thermal distribution of a model's diagonal spectrum",
		Long: `Write the distribution p_i ∝ exp(-beta·E_i) over all basis states of the
model, one probability per line in basis-index order. Use --beta inf to put
all mass on the ground states.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := readModel(modelPath)
			if err != nil {
				return err
			}
			var ev analysis.Evaluator = analysis.ExactEvaluator{Beta: beta}
			d, err := ev.Distribution(cmd.Context(), m)
			if err != nil {
				return err
			}

			w, closeFn, err := a.output(cmd)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "# qubits=%d beta=%g\n", m.QubitCount(), beta); err != nil {
				_ = closeFn()
				return err
			}
			if err := analysis.WriteDistribution(w, d); err != nil {
				_ = closeFn()
				return err
			}
			if err := closeFn(); err != nil {
				return err
			}

			a.log.Info("distribution written",
				zap.String("model", modelPath),
				zap.Float64("beta", beta),
				zap.Int("states", len(d)))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&modelPath, "model", "", "model file (.txt or .yaml)")
	f.Float64Var(&beta, "beta", 1, "inverse temperature (>= 0, inf allowed)")
	_ = cmd.MarkFlagRequired("model")
	return cmd
}
