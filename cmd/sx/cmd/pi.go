// SPDX-License-Identifier: MIT
// Package: sx/cmd/sx/cmd
//
// pi.go - the pi command.

package cmd

import (
	"fmt"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/sx/internal/demo"
	"github.com/katalvlaran/sx/observe"
)

func newPiCmd(v *viper.Viper, cfg *Config) *cobra.Command {
	c := &cobra.Command{
		Use:   "pi",
		Short: "Estimate pi by rejection sampling the unit disk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.ValidatePi(); err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			obs, err := observe.NewPrometheusObserver(reg)
			if err != nil {
				return err
			}

			res, err := demo.EstimatePi(cmd.Context(), cfg.Pi, obs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Estimate)

			accepted, rejected, err := observe.Totals(reg, demo.DiskGeneratorName)
			if err != nil {
				return err
			}
			logger.Info("pi estimated",
				"samples", res.Samples,
				"workers", cfg.Pi.Workers,
				"accepted", accepted,
				"rejected", rejected,
				"estimate", res.Estimate,
			)

			return nil
		},
	}

	fs := flag.NewFlagSet("pi", flag.ContinueOnError)
	fs.Int("samples", 1_000_000, "number of trials")
	fs.Int("workers", runtime.NumCPU(), "number of concurrent workers")
	fs.Int("budget", 1, "attempt budget per trial")
	fs.Uint64("seed", 0, "base seed, 0 draws fresh streams")
	c.Flags().AddFlagSet(fs)
	bindFlags(v, "pi.", fs)

	return c
}
