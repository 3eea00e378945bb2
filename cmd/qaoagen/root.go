package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/qaoakit/internal/config"
	"github.com/katalvlaran/qaoakit/internal/logging"
)

// app carries the state shared by all subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "qaoagen",
		Short:         "Generate and analyze QAOA cost-operator instances",
		SilenceUsage:  true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file")
	pf.Int64("seed", 1, "RNG seed")
	pf.String("format", "text", "instance format: text|yaml")
	pf.StringP("out", "o", "", "output file (default stdout)")
	pf.String("log-level", "info", "log level: debug|info|warn|error")
	pf.String("env", "development", "environment: development|production")
	a.bind(pf.Lookup("seed"), "seed")
	a.bind(pf.Lookup("format"), "format")
	a.bind(pf.Lookup("out"), "out")
	a.bind(pf.Lookup("log-level"), "log_level")
	a.bind(pf.Lookup("env"), "env")

	root.AddCommand(
		newRingCmd(a),
		newRegularCmd(a),
		newRandomCmd(a),
		newClustersCmd(a),
		newBatchCmd(a),
		newEvaluateCmd(a),
		newAnalyzeCmd(a),
	)

	return root
}

// bind attaches a flag to a viper key. A failure is a programming error.
func (a *app) bind(f *pflag.Flag, key string) {
	if err := a.v.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("qaoagen: bind %s: %v", key, err))
	}
}

func (a *app) init() error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	a.log.Debug("config loaded",
		zap.String("file", a.cfgFile),
		zap.Int64("seed", cfg.Seed),
		zap.String("format", cfg.Format))

	return nil
}

// output returns the configured destination and a close func.
func (a *app) output(cmd *cobra.Command) (io.Writer, func() error, error) {
	if a.cfg.Out == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(a.cfg.Out)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", a.cfg.Out, err)
	}
	return f, f.Close, nil
}
