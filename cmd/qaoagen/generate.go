package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qaoakit/builder"
	"github.com/katalvlaran/qaoakit/operator"
)

// emit writes m to the configured output and logs its shape.
func (a *app) emit(cmd *cobra.Command, m *operator.Model, comments ...string) error {
	w, closeFn, err := a.output(cmd)
	if err != nil {
		return err
	}
	if err := a.writeModel(w, m, comments...); err != nil {
		_ = closeFn()
		return err
	}
	if err := closeFn(); err != nil {
		return err
	}

	a.log.Info("instance written",
		zap.String("command", cmd.Name()),
		zap.Int("qubits", m.QubitCount()),
		zap.Int("singles", len(m.Singles())),
		zap.Int("pairs", len(m.Pairs())),
		zap.String("out", a.cfg.Out))
	return nil
}

func newRingCmd(a *app) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "ring",
		Short: "Ring-of-disagrees instance on n qubits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := builder.RingOfDisagrees(n)
			if err != nil {
				return err
			}
			return a.emit(cmd, m)
		},
	}
	cmd.Flags().IntVar(&n, "n", 4, "number of qubits (>= 2)")
	return cmd
}

func newRegularCmd(a *app) *cobra.Command {
	var (
		k        int
		nodes    int
		weighted bool
	)
	cmd := &cobra.Command{
		Use:   "regular",
		Short: "Random k-regular coupling instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := builder.RandomRegular(k, register(nodes), weighted, builder.WithSeed(a.cfg.Seed))
			if err != nil {
				return err
			}
			return a.emit(cmd, m, fmt.Sprintf("seed=%d k=%d", a.cfg.Seed, k))
		},
	}
	f := cmd.Flags()
	f.IntVar(&k, "k", 3, "degree of every node")
	f.IntVar(&nodes, "nodes", 6, "number of nodes / qubits")
	f.BoolVar(&weighted, "weighted", false, "draw edge weights from U[0,1) instead of 1")
	return cmd
}

func newRandomCmd(a *app) *cobra.Command {
	var (
		qubits        int
		singleDensity float64
		pairDensity   float64
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Random instance with Bernoulli-selected singles and pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if pairDensity < builder.MinProbability || pairDensity > builder.MaxProbability {
				return fmt.Errorf("--pair-density %v outside [0,1]: %w", pairDensity, builder.ErrInvalidProbability)
			}
			opts := []builder.BuilderOption{
				builder.WithSeed(a.cfg.Seed),
				builder.WithPairDensity(pairDensity),
			}
			if cmd.Flags().Changed("single-density") {
				if singleDensity < builder.MinProbability || singleDensity > builder.MaxProbability {
					return fmt.Errorf("--single-density %v outside [0,1]: %w", singleDensity, builder.ErrInvalidProbability)
				}
				opts = append(opts, builder.WithSingleDensity(singleDensity))
			}

			m, err := builder.Random(register(qubits), opts...)
			if err != nil {
				return err
			}
			return a.emit(cmd, m, fmt.Sprintf("seed=%d", a.cfg.Seed))
		},
	}
	f := cmd.Flags()
	f.IntVar(&qubits, "qubits", 4, "register size")
	f.Float64Var(&singleDensity, "single-density", 0, "probability of a single term per qubit (default: uniform count)")
	f.Float64Var(&pairDensity, "pair-density", builder.DefaultPairDensity, "probability of a pair term per qubit pair")
	return cmd
}
