// SPDX-License-Identifier: MIT
// Package logging builds the zap logger used by the qaoagen command.
// Library packages never log; they return errors.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Production selects JSON output with sampling; any other environment gets
// the human-readable development encoder.
const Production = "production"

// New returns a logger for env at the given level ("debug", "info", "warn",
// "error"). Output goes to stderr so stdout stays free for instance data.
func New(env, level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: level %q: %w", level, err)
	}

	var cfg zap.Config
	if env == Production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}
