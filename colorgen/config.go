// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorgen

// Config contains the configuration information
// used by colorgen
type Config struct {

	// the TOML data file containing the named colors
	Input string `default:"namedcolors.toml"`

	// the output file location relative to the package on which colorgen is being called
	Output string `default:"namedcolors.go"`

	// the package name of the generated file
	Package string `default:"colors"`
}

// Defaults sets any unset fields of the config to their default values.
func (c *Config) Defaults() {
	if c.Input == "" {
		c.Input = "namedcolors.toml"
	}
	if c.Output == "" {
		c.Output = "namedcolors.go"
	}
	if c.Package == "" {
		c.Package = "colors"
	}
}
