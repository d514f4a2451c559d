// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"strconv"
	"strings"
)

// SetString sets the color from the given string, which may be
// any hex color string accepted by [ParseHex] or any color name
// accepted by [FromName].
func (c *Color) SetString(s string) error {
	s = strings.TrimSpace(s)
	if _, err := c.SetHex(s); err == nil {
		return nil
	}
	nc, err := FromName(s)
	if err != nil {
		return &ArgumentError{Op: "SetString", Arg: "s", Value: strconv.Quote(s), Reason: "not a hex color or color name"}
	}
	*c = *nc
	return nil
}

// MarshalText implements [encoding.TextMarshaler],
// encoding the color as its hex string.
func (c *Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler],
// accepting anything that [Color.SetString] accepts.
func (c *Color) UnmarshalText(text []byte) error {
	return c.SetString(string(text))
}
