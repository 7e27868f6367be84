// SPDX-License-Identifier: MIT
// Package: sx/cmd/sx/cmd
//
// config.go - typed configuration assembled from flags, env and file.
//
// Precedence (viper): flag > SX_* environment > config file > flag default.
// Keys are dotted; the environment form replaces dots with underscores,
// e.g. pi.samples <- SX_PI_SAMPLES.

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/katalvlaran/sx/internal/demo"
	"github.com/katalvlaran/sx/logging"
)

const (
	envPrefix = "SX"

	cfgConfigFile = "config"
	cfgLogLevel   = "log.level"
	cfgLogFormat  = "log.format"

	cfgPiSamples = "pi.samples"
	cfgPiWorkers = "pi.workers"
	cfgPiBudget  = "pi.budget"
	cfgPiSeed    = "pi.seed"

	cfgLoremBudget = "lorem.budget"
	cfgLoremSeed   = "lorem.seed"
)

// ErrInvalidConfig is wrapped by every configuration problem.
var ErrInvalidConfig = errors.New("sx: invalid configuration")

// Config is the fully resolved configuration of one sx invocation.
type Config struct {
	LogLevel  logging.Level
	LogFormat logging.Format

	Pi    demo.PiParams
	Lorem LoremConfig
}

// LoremConfig configures the lorem command.
type LoremConfig struct {
	Budget int
	Seed   uint64
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// readConfigFile merges the file named by --config, if any.
func readConfigFile(v *viper.Viper) error {
	path := v.GetString(cfgConfigFile)
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("sx: failed to read config file %q: %w", path, err)
	}

	return nil
}

// loadConfig resolves v into a Config. Only the settings shared by every
// command are validated here; each command validates its own section before
// running, so a bad pi setting never blocks lorem.
func loadConfig(v *viper.Viper) (*Config, error) {
	var (
		cfg  Config
		errs error
	)
	if err := cfg.LogLevel.Set(v.GetString(cfgLogLevel)); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, cfgLogLevel, err))
	}
	if err := cfg.LogFormat.Set(v.GetString(cfgLogFormat)); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, cfgLogFormat, err))
	}
	if errs != nil {
		return nil, errs
	}

	cfg.Pi = demo.PiParams{
		Samples: v.GetInt(cfgPiSamples),
		Workers: v.GetInt(cfgPiWorkers),
		Budget:  v.GetInt(cfgPiBudget),
		Seed:    v.GetUint64(cfgPiSeed),
	}
	cfg.Lorem = LoremConfig{
		Budget: v.GetInt(cfgLoremBudget),
		Seed:   v.GetUint64(cfgLoremSeed),
	}

	return &cfg, nil
}

// ValidatePi checks the pi section, reporting every problem together.
func (c *Config) ValidatePi() error {
	var errs error
	errs = multierr.Append(errs, atLeastOne(cfgPiSamples, c.Pi.Samples))
	errs = multierr.Append(errs, atLeastOne(cfgPiWorkers, c.Pi.Workers))
	errs = multierr.Append(errs, atLeastOne(cfgPiBudget, c.Pi.Budget))

	return errs
}

// ValidateLorem checks the lorem section.
func (c *Config) ValidateLorem() error {
	return atLeastOne(cfgLoremBudget, c.Lorem.Budget)
}

func atLeastOne(key string, n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %s=%d, must be at least 1", ErrInvalidConfig, key, n)
	}

	return nil
}
