// SPDX-License-Identifier: MIT
// Package: sx/cmd/sx/cmd
//
// root.go - the root command and shared flag plumbing.

// Package cmd implements the commands for the sx executable.
package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/sx/logging"
)

var logger = logging.GetLogger("cmd")

// Execute runs the sx command line and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// NewRootCmd builds the sx command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := newViper()
	cfg := new(Config)

	root := &cobra.Command{
		Use:          "sx",
		Short:        "Composable random value generators",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := readConfigFile(v); err != nil {
				return err
			}
			loaded, err := loadConfig(v)
			if err != nil {
				return err
			}
			*cfg = *loaded

			err = logging.Initialize(cmd.ErrOrStderr(), cfg.LogFormat, cfg.LogLevel, nil)
			if err != nil && !errors.Is(err, logging.ErrAlreadyInitialized) {
				return err
			}

			return nil
		},
	}

	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.String(cfgConfigFile, "", "config file (yaml, toml or json)")
	fs.String(cfgLogLevel, "INFO", "log level [DEBUG,INFO,WARN,ERROR]")
	fs.String(cfgLogFormat, "logfmt", "log format [logfmt,json]")
	root.PersistentFlags().AddFlagSet(fs)
	bindFlags(v, "", fs)

	root.AddCommand(newPiCmd(v, cfg), newLoremCmd(v, cfg))

	return root
}

// bindFlags binds every flag in fs to the viper key prefix+name.
func bindFlags(v *viper.Viper, prefix string, fs *flag.FlagSet) {
	fs.VisitAll(func(f *flag.Flag) {
		_ = v.BindPFlag(prefix+f.Name, f)
	})
}
