// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package main provides the actual command line
// implementation of the colorgen library.
package main

import (
	"flag"
	"fmt"
	"os"

	"cogentcore.org/hsv/base/errors"
	"cogentcore.org/hsv/base/logx"
	"cogentcore.org/hsv/colorgen"
)

func main() {
	cfg := &colorgen.Config{}
	cfg.Defaults()
	flag.StringVar(&cfg.Input, "input", cfg.Input, "the TOML data file containing the named colors")
	flag.StringVar(&cfg.Output, "output", cfg.Output, "the file name of the output file")
	flag.StringVar(&cfg.Package, "package", cfg.Package, "the package name of the generated file")
	verbose := flag.Bool("v", false, "whether to print informational messages")
	flag.Usage = Usage
	flag.Parse()

	logx.UserLevel = logx.LevelFromFlags(false, *verbose, false)
	logx.SetDefaultLogger()
	if errors.Log(colorgen.Generate(cfg)) != nil {
		os.Exit(1)
	}
}

// Usage is a replacement usage function for the flags package.
func Usage() {
	_, _ = fmt.Fprintf(os.Stderr, "Colorgen is a tool to generate Go functions for named colors.\n")
	_, _ = fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
	_, _ = fmt.Fprintf(os.Stderr, "\tcolorgen [flags]\n")
	_, _ = fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}
