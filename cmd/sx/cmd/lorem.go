// SPDX-License-Identifier: MIT
// Package: sx/cmd/sx/cmd
//
// lorem.go - the lorem command.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/sx/gen"
	"github.com/katalvlaran/sx/internal/demo"
	"github.com/katalvlaran/sx/rnd"
)

func newLoremCmd(v *viper.Viper, cfg *Config) *cobra.Command {
	c := &cobra.Command{
		Use:   "lorem",
		Short: "Print nested pseudo-Latin text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.ValidateLorem(); err != nil {
				return err
			}

			var s *rnd.Stream
			if cfg.Lorem.Seed != 0 {
				s = rnd.New(cfg.Lorem.Seed)
			} else {
				s = rnd.Next()
			}

			text, err := demo.Lorem(s, cfg.Lorem.Budget)
			if err != nil {
				logger.Error("lorem failed", "seed", s.Seed(), "budget", cfg.Lorem.Budget, "err", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)

			return nil
		},
	}

	fs := flag.NewFlagSet("lorem", flag.ContinueOnError)
	fs.Int("budget", gen.InitialDefaultBudget, "attempt budget for the whole text")
	fs.Uint64("seed", 0, "stream seed, 0 draws a fresh stream")
	c.Flags().AddFlagSet(fs)
	bindFlags(v, "lorem.", fs)

	return c
}
