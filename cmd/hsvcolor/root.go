// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"cogentcore.org/hsv/base/logx"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	vv, verbose, quiet bool
	config             string
	format             string
	swatch             bool

	// cfg is the loaded config, set before any subcommand runs.
	cfg *Config
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "hsvcolor",
		Short:         "hsvcolor converts and transforms colors in hex, RGB and HSV",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.setup(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVar(&flags.vv, "vv", false, "print debug messages")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "print informational messages")
	pf.BoolVarP(&flags.quiet, "quiet", "q", false, "only print error messages")
	pf.StringVar(&flags.config, "config", defaultConfigFile, "the TOML config file")
	pf.StringVar(&flags.format, "format", "text", "the output format: text, json or yaml")
	pf.BoolVar(&flags.swatch, "swatch", false, "print a swatch of each color in text output")

	cmd.AddCommand(newHexCmd(flags))
	cmd.AddCommand(newRGBCmd(flags))
	cmd.AddCommand(newHSVCmd(flags))
	cmd.AddCommand(newNameCmd(flags))
	cmd.AddCommand(newRandomCmd(flags))
	cmd.AddCommand(newNamesCmd(flags))

	return cmd
}

// setup sets the log level and merges the config file with the flags.
func (f *rootFlags) setup(cmd *cobra.Command) error {
	logx.UserLevel = logx.LevelFromFlags(f.vv, f.verbose, f.quiet)

	cfg, err := loadConfig(f.config, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = f.format
	}
	if cmd.Flags().Changed("swatch") {
		cfg.Swatch = f.swatch
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	f.cfg = cfg
	slog.Debug("loaded config", "file", f.config, "format", cfg.Format, "swatch", cfg.Swatch)
	return nil
}
