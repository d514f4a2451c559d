// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/fs"

	"cogentcore.org/hsv/base/errors"
	"cogentcore.org/hsv/base/iox/tomlx"
	"github.com/mitchellh/go-homedir"
)

// defaultConfigFile is the config file used when --config is not given.
const defaultConfigFile = "~/.config/hsvcolor/config.toml"

// Config is the configuration file of hsvcolor. Command line
// flags take precedence over it.
type Config struct {

	// the output format: text, json or yaml
	Format string `toml:"format" default:"text"`

	// whether to print a swatch of each color in text output
	Swatch bool `toml:"swatch"`

	// the seed used by the random command; 0 uses the global source
	Seed int64 `toml:"seed"`
}

// Defaults sets any unset fields of the config to their default values.
func (c *Config) Defaults() {
	if c.Format == "" {
		c.Format = "text"
	}
}

// Validate returns an error if the config contains invalid values.
func (c *Config) Validate() error {
	switch c.Format {
	case "text", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unknown format %q: must be text, json or yaml", c.Format)
}

// loadConfig reads the config from the given file, expanding a
// leading ~ to the home directory. A missing file is only an error
// if required is set.
func loadConfig(file string, required bool) (*Config, error) {
	cfg := &Config{}
	path, err := homedir.Expand(file)
	if err != nil {
		return nil, fmt.Errorf("config file %q: %w", file, err)
	}
	err = tomlx.Open(cfg, path)
	if err != nil && (required || !errors.Is(err, fs.ErrNotExist)) {
		return nil, fmt.Errorf("config file: %w", err)
	}
	cfg.Defaults()
	return cfg, cfg.Validate()
}
