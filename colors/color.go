// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides a [Color] value type that keeps
// red, green and blue components, hue, saturation and value
// components, and a hexadecimal string synchronized with each
// other, along with constructors for every CSS named color and
// transformations such as [Color.RotateHue] and [Color.Lighten].
//
// Every mutator changes the color in place and returns it, so
// calls can be chained through errors.Must1 from the base/errors
// package or checked one by one.
// Numeric inputs are rounded down and then clamped into range;
// only inputs that cannot be interpreted at all (NaN, infinities,
// malformed hex strings, unknown names) are rejected, with an
// error wrapping [ErrInvalidArgument].
package colors

//go:generate go run ../cmd/colorgen -input namedcolors.toml -output namedcolors.go

// Color is a color with synchronized RGB, HSV and hex representations.
// Use [New], [FromColor], [FromHex], [FromRGB], [FromHSV] or one of the
// named color functions such as [CornflowerBlue] to create one.
// The zero value is black, but only [Color.Hex] and [Color.String]
// treat it that way until it is set; prefer [New].
type Color struct {
	red, green, blue int

	hue int

	saturation, value int

	hex string
}

// New returns a new black [Color].
func New() *Color {
	return &Color{hex: "#000000"}
}

// FromColor returns a new [Color] with all of the components of the
// given color copied directly, including a hue that could not be
// derived from its RGB components. A nil color results in black.
func FromColor(c *Color) *Color {
	if c == nil {
		return New()
	}
	nc := *c
	return &nc
}

// FromRGB returns a new [Color] from the given red, green and blue
// components; see [Color.SetRGB].
func FromRGB(r, g, b float64) (*Color, error) {
	c, err := New().SetRGB(r, g, b)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// FromHSV returns a new [Color] from the given hue, saturation and
// value components; see [Color.SetHSV].
func FromHSV(h, s, v float64) (*Color, error) {
	c, err := New().SetHSV(h, s, v)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// fromRGB8 returns a new [Color] from components that are known to
// be in range, so it cannot fail.
func fromRGB8(r, g, b uint8) *Color {
	c := &Color{}
	c.setRGB(int(r), int(g), int(b))
	return c
}

// MustFromRGB returns a new [Color] from the given red, green and blue
// components. It panics on any resulting error; see [FromRGB] for a
// version that returns an error.
func MustFromRGB(r, g, b float64) *Color {
	c, err := FromRGB(r, g, b)
	if err != nil {
		panic(err)
	}
	return c
}

// MustFromHSV returns a new [Color] from the given hue, saturation and
// value components. It panics on any resulting error; see [FromHSV]
// for a version that returns an error.
func MustFromHSV(h, s, v float64) *Color {
	c, err := FromHSV(h, s, v)
	if err != nil {
		panic(err)
	}
	return c
}

// Red returns the red component of the color (0-255).
func (c *Color) Red() int { return c.red }

// Green returns the green component of the color (0-255).
func (c *Color) Green() int { return c.green }

// Blue returns the blue component of the color (0-255).
func (c *Color) Blue() int { return c.blue }

// Hue returns the hue component of the color in degrees (0-359).
func (c *Color) Hue() int { return c.hue }

// Saturation returns the saturation component of the color (0-100).
func (c *Color) Saturation() int { return c.saturation }

// Value returns the value (brightness) component of the color (0-100).
func (c *Color) Value() int { return c.value }

// Hex returns the color as a "#RRGGBB" string with uppercase digits.
func (c *Color) Hex() string {
	if c.hex == "" {
		return "#000000"
	}
	return c.hex
}

// String returns the color as a "#RRGGBB" string; see [Color.Hex].
func (c *Color) String() string { return c.Hex() }

// SetRGB sets the red, green and blue components of the color.
// Each value is rounded down and clamped to 0-255, and the hue,
// saturation, value and hex string are derived from the result.
// An achromatic result always has a hue of 0. It returns an
// error and leaves the color unchanged if any value is NaN or infinite.
func (c *Color) SetRGB(r, g, b float64) (*Color, error) {
	if err := checkFinite("SetRGB", rgbArgs, r, g, b); err != nil {
		return c, err
	}
	c.setRGB(clamp(r, 0, 255), clamp(g, 0, 255), clamp(b, 0, 255))
	return c, nil
}

func (c *Color) setRGB(r, g, b int) {
	c.red, c.green, c.blue = r, g, b
	c.hue, c.saturation, c.value = RGBToHSV(r, g, b)
	c.hex = RGBToHex(r, g, b)
}

// SetHSV sets the hue, saturation and value components of the color.
// Each value is rounded down; the hue is wrapped into 0-359 degrees
// (so -30 becomes 330) and the saturation and value are clamped to
// 0-100. The red, green, blue and hex string are derived from the
// result. It returns an error and leaves the color unchanged if any
// value is NaN or infinite.
func (c *Color) SetHSV(h, s, v float64) (*Color, error) {
	if err := checkFinite("SetHSV", hsvArgs, h, s, v); err != nil {
		return c, err
	}
	c.hue, c.saturation, c.value = normHue(h), clamp(s, 0, 100), clamp(v, 0, 100)
	c.red, c.green, c.blue = HSVToRGB(c.hue, c.saturation, c.value)
	c.hex = RGBToHex(c.red, c.green, c.blue)
	return c, nil
}

// Equals returns whether the given color has the same red, green
// and blue components as this one. The hue and saturation are not
// compared, so an achromatic color with an explicitly set hue equals
// the same color created from RGB. It returns false for a nil color.
func (c *Color) Equals(o *Color) bool {
	if c == nil || o == nil {
		return false
	}
	return c.red == o.red && c.green == o.green && c.blue == o.blue
}

// Clone returns a new copy of the color that does not share
// any state with it.
func (c *Color) Clone() *Color {
	return FromColor(c)
}
