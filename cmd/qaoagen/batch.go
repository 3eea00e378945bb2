package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qaoakit/builder"
	"github.com/katalvlaran/qaoakit/internal/config"
	"github.com/katalvlaran/qaoakit/operator"
)

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate many instances concurrently",
		Long: `Generate --count instances of one family on a bounded worker pool.

Every instance draws from its own generator derived from --seed and the
instance number, so the output does not depend on --workers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBatch(cmd)
		},
	}

	f := cmd.Flags()
	f.Int("count", 1, "number of instances")
	f.Int("workers", 4, "concurrent generators")
	f.String("family", "ring", "instance family: ring|regular|random")
	f.Int("size", 4, "qubits per instance")
	f.Int("degree", 3, "node degree for the regular family")
	f.String("out-dir", "", "write one file per instance into this directory")
	a.bind(f.Lookup("count"), "batch.count")
	a.bind(f.Lookup("workers"), "batch.workers")
	a.bind(f.Lookup("family"), "batch.family")
	a.bind(f.Lookup("size"), "batch.size")
	a.bind(f.Lookup("degree"), "batch.degree")
	a.bind(f.Lookup("out-dir"), "batch.out_dir")

	return cmd
}

func (a *app) runBatch(cmd *cobra.Command) error {
	b := a.cfg.Batch
	start := time.Now()

	models, err := generateBatch(cmd.Context(), b, a.cfg.Seed)
	if err != nil {
		return err
	}

	if b.OutDir != "" {
		err = a.writeBatchDir(b.OutDir, models)
	} else {
		err = a.writeBatchStream(cmd, models)
	}
	if err != nil {
		return err
	}

	a.log.Info("batch written",
		zap.String("family", b.Family),
		zap.Int("count", b.Count),
		zap.Int("workers", b.Workers),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// generateBatch builds b.Count instances on at most b.Workers goroutines.
// Per-instance generators are derived up front in instance order.
func generateBatch(ctx context.Context, b config.Batch, seed int64) ([]*operator.Model, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	base := rand.New(rand.NewPCG(uint64(seed), 0))
	rngs := make([]*rand.Rand, b.Count)
	for i := range rngs {
		rngs[i] = builder.DeriveRand(base, uint64(i))
	}

	models := make([]*operator.Model, b.Count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.Workers)
	for i := 0; i < b.Count; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := generateOne(b, rngs[i])
			if err != nil {
				return fmt.Errorf("instance %d: %w", i, err)
			}
			models[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return models, nil
}

func generateOne(b config.Batch, rng *rand.Rand) (*operator.Model, error) {
	switch b.Family {
	case "ring":
		return builder.RingOfDisagrees(b.Size)
	case "regular":
		return builder.RandomRegular(b.Degree, register(b.Size), true, builder.WithRand(rng))
	case "random":
		return builder.Random(register(b.Size), builder.WithRand(rng))
	default:
		return nil, fmt.Errorf("unknown family %q: %w", b.Family, config.ErrInvalid)
	}
}

func (a *app) writeBatchDir(dir string, models []*operator.Model) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for i, m := range models {
		path := filepath.Join(dir, fmt.Sprintf("instance-%04d%s", i, a.extension()))
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := a.writeModel(f, m, fmt.Sprintf("instance=%d", i)); err != nil {
			_ = f.Close()
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

// writeBatchStream concatenates all instances, separated by YAML document
// markers in yaml format and by a blank line in text format.
func (a *app) writeBatchStream(cmd *cobra.Command, models []*operator.Model) error {
	w, closeFn, err := a.output(cmd)
	if err != nil {
		return err
	}
	for i, m := range models {
		if i > 0 {
			sep := "\n"
			if a.cfg.Format == formatYAML {
				sep = "---\n"
			}
			if _, err := fmt.Fprint(w, sep); err != nil {
				_ = closeFn()
				return err
			}
		}
		if err := a.writeModel(w, m, fmt.Sprintf("instance=%d", i)); err != nil {
			_ = closeFn()
			return err
		}
	}
	return closeFn()
}
