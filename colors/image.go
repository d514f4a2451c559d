// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
)

// Model is a [color.Model] that converts any color to a *[Color],
// discarding its alpha channel.
var Model color.Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if _, ok := c.(*Color); ok {
		return c
	}
	return FromImageColor(c)
}

// RGBA implements the [color.Color] interface. The color is always
// fully opaque.
func (c *Color) RGBA() (r, g, b, a uint32) {
	return AsRGBA(c).RGBA()
}

// AsRGBA returns the given color as an opaque [color.RGBA].
func AsRGBA(c *Color) color.RGBA {
	if c == nil {
		return color.RGBA{A: 255}
	}
	return color.RGBA{uint8(c.red), uint8(c.green), uint8(c.blue), 255}
}

// FromImageColor returns a new [Color] with the non-alpha-premultiplied
// red, green and blue components of the given [color.Color].
// The alpha channel is discarded. A nil color results in black.
func FromImageColor(c color.Color) *Color {
	if c == nil {
		return New()
	}
	if cc, ok := c.(*Color); ok {
		return FromColor(cc)
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fromRGB8(n.R, n.G, n.B)
}
