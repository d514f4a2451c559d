// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"math"
)

// RGBToHSV converts the given red, green and blue components
// (0-255) into hue (degrees, 0-359), saturation (0-100) and
// value (0-100), each rounded to the nearest integer. Achromatic
// colors (r == g == b) always have a hue of 0, so the conversion
// cannot be inverted for them. Each component is clamped to 0-255
// first. Based on https://en.wikipedia.org/wiki/HSL_and_HSV.
func RGBToHSV(r, g, b int) (h, s, v int) {
	r, g, b = clampInt(r, 0, 255), clampInt(g, 0, 255), clampInt(b, 0, 255)
	fr := float64(r) / 255
	fg := float64(g) / 255
	fb := float64(b) / 255

	max := math.Max(math.Max(fr, fg), fb)
	chroma := max - math.Min(math.Min(fr, fg), fb)

	fs := 0.0
	if max != 0 {
		fs = chroma / max
	}

	fh := 0.0
	switch {
	case chroma == 0:
	case max == fr:
		fh = math.Mod((fg-fb)/chroma+6, 6) * 60
	case max == fg:
		fh = ((fb-fr)/chroma + 2) * 60
	default:
		fh = ((fr-fg)/chroma + 4) * 60
	}

	h = int(math.Round(fh))
	if h == 360 { // hues just below red round up
		h = 0
	}
	return h, int(math.Round(fs * 100)), int(math.Round(max * 100))
}

// HSVToRGB converts the given hue (degrees, 0-359), saturation
// (0-100) and value (0-100) into red, green and blue components
// (0-255), each rounded down. Because both directions round,
// RGBToHSV followed by HSVToRGB does not always reproduce the
// original components. The hue is wrapped into 0-359 and the
// saturation and value are clamped to 0-100 first. Based on
// https://en.wikipedia.org/wiki/HSL_and_HSV#From_HSV.
func HSVToRGB(h, s, v int) (r, g, b int) {
	h, s, v = normHue(float64(h)), clampInt(s, 0, 100), clampInt(v, 0, 100)
	chroma := float64(v) * float64(s) / 10000
	hp := float64(h) / 60
	mid := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))

	var fr, fg, fb float64
	switch {
	case hp < 1:
		fr, fg = chroma, mid
	case hp < 2:
		fr, fg = mid, chroma
	case hp < 3:
		fg, fb = chroma, mid
	case hp < 4:
		fg, fb = mid, chroma
	case hp < 5:
		fr, fb = mid, chroma
	default:
		fr, fb = chroma, mid
	}

	m := float64(v)/100 - chroma
	r = int(math.Floor((fr + m) * 255))
	g = int(math.Floor((fg + m) * 255))
	b = int(math.Floor((fb + m) * 255))
	return
}

// RGBToHex returns the canonical "#RRGGBB" form of the given
// red, green and blue components, with uppercase digits.
// Each component is clamped to 0-255 first.
func RGBToHex(r, g, b int) string {
	r, g, b = clampInt(r, 0, 255), clampInt(g, 0, 255), clampInt(b, 0, 255)
	return fmt.Sprintf("#%06X", r<<16|g<<8|b)
}

// clampInt limits x to [lo, hi].
func clampInt(x, lo, hi int) int {
	return min(max(x, lo), hi)
}

// clamp floors x and limits it to [lo, hi].
func clamp(x float64, lo, hi int) int {
	x = math.Floor(x)
	switch {
	case x < float64(lo):
		return lo
	case x > float64(hi):
		return hi
	}
	return int(x)
}

// normHue floors h and wraps it into [0, 360).
func normHue(h float64) int {
	h = math.Floor(h)
	return int(math.Mod(math.Mod(h, 360)+360, 360))
}
