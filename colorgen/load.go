// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorgen

import (
	"fmt"
	"strings"

	"cogentcore.org/hsv/base/errors"
	"cogentcore.org/hsv/base/iox/tomlx"
	"golang.org/x/image/colornames"
)

// File is the structure of a named color data file:
//
//	[[color]]
//	name = "aliceBlue"
//	rgb = [240, 248, 255]
type File struct {
	Colors []Named `toml:"color"`
}

// Named is one named color in a data file.
type Named struct {

	// the lowerCamelCase name of the color, e.g. "cornflowerBlue"
	Name string `toml:"name"`

	// the red, green and blue components of the color, each 0-255
	RGB []int `toml:"rgb"`
}

// Load reads the named colors from the given TOML data file.
func Load(file string) ([]Named, error) {
	f := &File{}
	if err := tomlx.Open(f, file); err != nil {
		return nil, fmt.Errorf("colorgen.Load: %w", err)
	}
	return f.Colors, nil
}

// Validate checks that the given named colors are usable for
// generating code: every name must be non-empty and unique ignoring
// case, have exactly three components in the range 0-255, and match
// the color of the same name in the CSS named color table.
func Validate(colors []Named) error {
	var errs []error
	seen := make(map[string]bool, len(colors))
	for i, nc := range colors {
		if nc.Name == "" {
			errs = append(errs, fmt.Errorf("color %d: empty name", i))
			continue
		}
		low := strings.ToLower(nc.Name)
		if seen[low] {
			errs = append(errs, fmt.Errorf("color %q: duplicate name", nc.Name))
		}
		seen[low] = true
		if len(nc.RGB) != 3 {
			errs = append(errs, fmt.Errorf("color %q: expected 3 components, got %d", nc.Name, len(nc.RGB)))
			continue
		}
		inRange := true
		for _, v := range nc.RGB {
			if v < 0 || v > 255 {
				errs = append(errs, fmt.Errorf("color %q: component %d out of range 0-255", nc.Name, v))
				inRange = false
			}
		}
		if !inRange {
			continue
		}
		css, ok := colornames.Map[low]
		if !ok {
			errs = append(errs, fmt.Errorf("color %q: not a CSS color name", nc.Name))
			continue
		}
		if int(css.R) != nc.RGB[0] || int(css.G) != nc.RGB[1] || int(css.B) != nc.RGB[2] {
			errs = append(errs, fmt.Errorf("color %q: rgb%v does not match CSS value rgb[%d %d %d]", nc.Name, nc.RGB, css.R, css.G, css.B))
		}
	}
	return errors.Join(errs...)
}
