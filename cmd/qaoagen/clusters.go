package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qaoakit/builder"
	"github.com/katalvlaran/qaoakit/dataset"
	"github.com/katalvlaran/qaoakit/internal/config"
)

func newClustersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clusters",
		Short: "Clustering instance from Gaussian points in the config's clusters section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runClusters(cmd)
		},
	}
	cmd.Flags().String("metric", "euclidean", "distance metric")
	a.bind(cmd.Flags().Lookup("metric"), "clusters.metric")
	return cmd
}

func (a *app) runClusters(cmd *cobra.Command) error {
	if err := a.cfg.ValidateClusters(); err != nil {
		return err
	}
	cl := a.cfg.Clusters

	metric, err := dataset.ParseMetric(cl.Metric)
	if err != nil {
		return err
	}
	for q, b := range cl.Biases {
		if q < 0 || math.IsNaN(b) || math.IsInf(b, 0) {
			return fmt.Errorf("clusters.biases[%d]=%v: %w", q, b, config.ErrInvalid)
		}
	}

	ds, err := dataset.GaussianClusters(len(cl.Means), cl.Points, cl.Means, cl.Covariances, dataset.WithSeed(a.cfg.Seed))
	if err != nil {
		return err
	}
	dm, err := dataset.PairwiseDistances(ds.Points, metric)
	if err != nil {
		return err
	}

	var opts []builder.BuilderOption
	if len(cl.Biases) > 0 {
		opts = append(opts, builder.WithBiases(cl.Biases))
	}
	m, err := builder.FromDistances(dm, opts...)
	if err != nil {
		return err
	}

	runID := uuid.New()
	comments := []string{
		"run=" + runID.String(),
		fmt.Sprintf("seed=%d metric=%s points=%d", a.cfg.Seed, metric, ds.Len()),
	}
	if labels, err := ds.BinaryLabels(); err == nil {
		var sb strings.Builder
		for _, l := range labels {
			sb.WriteByte('0' + l)
		}
		comments = append(comments, "labels="+sb.String())
	} else {
		a.log.Warn("labels omitted", zap.Error(err))
	}

	a.log.Debug("clusters sampled",
		zap.Stringer("run", runID),
		zap.Int("clusters", len(cl.Means)),
		zap.Int("dim", ds.Dim))

	return a.emit(cmd, m, comments...)
}
