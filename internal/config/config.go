// SPDX-License-Identifier: MIT
// Package config loads qaoagen settings from flags, QAOAGEN_* environment
// variables and an optional YAML file, in that order of precedence, and
// validates them with struct tags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides: QAOAGEN_SEED, QAOAGEN_BATCH_WORKERS, ...
const EnvPrefix = "QAOAGEN"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds all command settings.
type Config struct {
	Environment string `mapstructure:"env" validate:"oneof=development production"`
	LogLevel    string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	Seed        int64  `mapstructure:"seed"`
	Format      string `mapstructure:"format" validate:"oneof=text yaml"`
	Out         string `mapstructure:"out"`

	Clusters Clusters `mapstructure:"clusters"`
	Batch    Batch    `mapstructure:"batch"`
}

// Clusters describes a Gaussian cluster dataset. Only the clusters command
// requires it; see ValidateClusters.
type Clusters struct {
	Points      []int           `mapstructure:"points" validate:"omitempty,dive,min=0"`
	Means       [][]float64     `mapstructure:"means" validate:"omitempty,dive,min=1"`
	Covariances [][][]float64   `mapstructure:"covariances"`
	Metric      string          `mapstructure:"metric" validate:"omitempty,oneof=euclidean sqeuclidean cityblock manhattan chebyshev cosine"`
	Biases      map[int]float64 `mapstructure:"biases"`
}

// Batch configures concurrent instance generation.
type Batch struct {
	Count   int    `mapstructure:"count" validate:"min=1"`
	Workers int    `mapstructure:"workers" validate:"min=1,max=256"`
	Family  string `mapstructure:"family" validate:"oneof=ring regular random"`
	Size    int    `mapstructure:"size" validate:"min=2"`
	Degree  int    `mapstructure:"degree" validate:"min=0"`
	OutDir  string `mapstructure:"out_dir"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("seed", int64(1))
	v.SetDefault("format", "text")
	v.SetDefault("out", "")
	v.SetDefault("clusters.metric", "euclidean")
	v.SetDefault("batch.count", 1)
	v.SetDefault("batch.workers", 4)
	v.SetDefault("batch.family", "ring")
	v.SetDefault("batch.size", 4)
	v.SetDefault("batch.degree", 3)
	v.SetDefault("batch.out_dir", "")
}

// Load reads file (when non-empty) into v, applies env overrides, decodes
// and validates. Flags must already be bound to v.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var validate = validator.New()

// Validate checks the struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s fails %q (value %v)", ErrInvalid, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// ValidateClusters checks that the cluster section is complete and its
// per-cluster slices line up.
func (c *Config) ValidateClusters() error {
	cl := c.Clusters
	if len(cl.Means) == 0 {
		return fmt.Errorf("%w: clusters.means is required", ErrInvalid)
	}
	if len(cl.Points) != len(cl.Means) || len(cl.Covariances) != len(cl.Means) {
		return fmt.Errorf("%w: clusters has %d means, %d covariances, %d point counts",
			ErrInvalid, len(cl.Means), len(cl.Covariances), len(cl.Points))
	}
	return nil
}
