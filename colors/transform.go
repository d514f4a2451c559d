// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

// SetRed sets the red component of the color, keeping the green and
// blue components; see [Color.SetRGB].
func (c *Color) SetRed(r float64) (*Color, error) {
	return c.SetRGB(r, float64(c.green), float64(c.blue))
}

// SetGreen sets the green component of the color, keeping the red and
// blue components; see [Color.SetRGB].
func (c *Color) SetGreen(g float64) (*Color, error) {
	return c.SetRGB(float64(c.red), g, float64(c.blue))
}

// SetBlue sets the blue component of the color, keeping the red and
// green components; see [Color.SetRGB].
func (c *Color) SetBlue(b float64) (*Color, error) {
	return c.SetRGB(float64(c.red), float64(c.green), b)
}

// SetHue sets the hue of the color in degrees, keeping the saturation
// and value; see [Color.SetHSV].
func (c *Color) SetHue(h float64) (*Color, error) {
	return c.SetHSV(h, float64(c.saturation), float64(c.value))
}

// SetSaturation sets the saturation of the color (0-100), keeping the
// hue and value; see [Color.SetHSV].
func (c *Color) SetSaturation(s float64) (*Color, error) {
	return c.SetHSV(float64(c.hue), s, float64(c.value))
}

// SetValue sets the value of the color (0-100), keeping the hue and
// saturation; see [Color.SetHSV].
func (c *Color) SetValue(v float64) (*Color, error) {
	return c.SetHSV(float64(c.hue), float64(c.saturation), v)
}

// RotateHue rotates the hue of the color by the given number of
// degrees, which may be negative. The result wraps around, so
// rotating a hue of 330 by 60 gives 30.
func (c *Color) RotateHue(amount float64) (*Color, error) {
	return c.SetHue(float64(c.hue) + amount)
}

// Complement sets the hue of the color to its complement, 180 degrees
// around the hue circle.
func (c *Color) Complement() *Color {
	c.SetHue(float64(c.hue) + 180) // always finite
	return c
}

// Saturate increases the saturation of the color by the given
// absolute amount (0-100, ranges enforced).
func (c *Color) Saturate(amount float64) (*Color, error) {
	return c.SetSaturation(float64(c.saturation) + amount)
}

// Desaturate decreases the saturation of the color by the given
// absolute amount (0-100, ranges enforced).
func (c *Color) Desaturate(amount float64) (*Color, error) {
	return c.SetSaturation(float64(c.saturation) - amount)
}

// Lighten increases the value of the color by the given
// absolute amount (0-100, ranges enforced).
func (c *Color) Lighten(amount float64) (*Color, error) {
	return c.SetValue(float64(c.value) + amount)
}

// Darken decreases the value of the color by the given
// absolute amount (0-100, ranges enforced).
func (c *Color) Darken(amount float64) (*Color, error) {
	return c.SetValue(float64(c.value) - amount)
}
