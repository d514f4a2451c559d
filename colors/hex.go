// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"regexp"
	"strconv"

	"cogentcore.org/hsv/base/errors"
)

// hexPattern matches 3 or 6 hex digits with an optional leading '#'.
var hexPattern = regexp.MustCompile(`^#?([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// ParseHex parses the given hex color string into red, green and
// blue components. The string may be upper or lower case, may start
// with '#', and must contain exactly 3 or 6 hexadecimal digits, as in
// "#FF00FF", "ff00ff", "#F0F" or "f0f". Each digit of the 3 digit form
// is duplicated, so "F0F" is the same as "FF00FF".
func ParseHex(hex string) (r, g, b int, err error) {
	m := hexPattern.FindStringSubmatch(hex)
	if m == nil {
		return 0, 0, 0, &ArgumentError{Op: "SetHex", Arg: "hex", Value: strconv.Quote(hex), Reason: "not a 3 or 6 digit hex color"}
	}
	d := m[1]
	if len(d) == 3 {
		d = string([]byte{d[0], d[0], d[1], d[1], d[2], d[2]})
	}
	v, _ := strconv.ParseUint(d, 16, 32) // always valid after matching
	return int(v >> 16), int(v >> 8 & 0xFF), int(v & 0xFF), nil
}

// SetHex sets the color from the given hex color string; see [ParseHex]
// for the accepted formats. The hue, saturation and value are derived
// from the parsed components as in [Color.SetRGB], and [Color.Hex] will
// return the canonical uppercase 6 digit form. It returns an error and
// leaves the color unchanged if the string is not a valid hex color.
func (c *Color) SetHex(hex string) (*Color, error) {
	r, g, b, err := ParseHex(hex)
	if err != nil {
		return c, err
	}
	c.setRGB(r, g, b)
	return c, nil
}

// FromHex returns a new [Color] from the given hex color string.
// It returns any resulting error; see [MustFromHex] and [LogFromHex]
// for versions that do not return an error.
func FromHex(hex string) (*Color, error) {
	c, err := New().SetHex(hex)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// MustFromHex returns a new [Color] from the given hex color string.
// It panics on any resulting error; see [FromHex] for a version that
// returns an error.
func MustFromHex(hex string) *Color {
	return errors.Must1(FromHex(hex))
}

// LogFromHex returns a new [Color] from the given hex color string.
// It logs any resulting error and returns black in that case; see
// [FromHex] for a version that returns an error.
func LogFromHex(hex string) *Color {
	c, err := FromHex(hex)
	if errors.Log(err) != nil {
		return New()
	}
	return c
}
