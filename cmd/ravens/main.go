// SPDX-License-Identifier: MIT

// Command ravens solves verbal Raven's progressive matrices stored as YAML.
//
//	ravens solve testdata/problems
//	ravens explain testdata/problems/basic-b01-fill-and-shape.yaml
//	ravens config > ravens.toml
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/raven/config"
)

// options carries the persistent flags and the state PersistentPreRunE
// derives from them.
type options struct {
	configPath string
	logLevel   string

	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "ravens <command>",
		Short:         "Solve verbal Raven's progressive matrices",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = opts.logLevel
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			opts.cfg = cfg
			opts.log = cfg.Logger(cmd.ErrOrStderr())
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "ravens.toml", "TOML configuration file (optional)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (overrides the config file)")

	root.AddCommand(newSolveCmd(opts))
	root.AddCommand(newExplainCmd(opts))
	root.AddCommand(newConfigCmd(opts))

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		root.PrintErrln("Error:", err)
		stop()
		os.Exit(1)
	}
}
