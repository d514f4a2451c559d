// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBToHSV(t *testing.T) {
	h, s, v := RGBToHSV(0, 0, 0)
	assert.Equal(t, []int{0, 0, 0}, []int{h, s, v})

	h, s, v = RGBToHSV(255, 255, 0)
	assert.Equal(t, []int{60, 100, 100}, []int{h, s, v})

	h, s, v = RGBToHSV(0, 0, 255)
	assert.Equal(t, []int{240, 100, 100}, []int{h, s, v})

	h, s, v = RGBToHSV(255, 0, 1)
	assert.Equal(t, []int{0, 100, 100}, []int{h, s, v})
}

func TestHSVToRGB(t *testing.T) {
	for h := 0; h < 360; h += 60 {
		r, g, b := HSVToRGB(h, 0, 100)
		assert.Equal(t, []int{255, 255, 255}, []int{r, g, b}, "hue %d", h)
	}
	sectors := [][3]int{{255, 0, 0}, {255, 255, 0}, {0, 255, 0}, {0, 255, 255}, {0, 0, 255}, {255, 0, 255}}
	for i, want := range sectors {
		r, g, b := HSVToRGB(i*60, 100, 100)
		assert.Equal(t, want, [3]int{r, g, b}, "hue %d", i*60)
	}
}

func TestConvertOutOfRange(t *testing.T) {
	r, g, b := HSVToRGB(0, 200, 200)
	assert.Equal(t, []int{255, 0, 0}, []int{r, g, b})

	r, g, b = HSVToRGB(-120, -5, 100)
	assert.Equal(t, []int{255, 255, 255}, []int{r, g, b})

	r, g, b = HSVToRGB(480, 100, 100)
	assert.Equal(t, []int{0, 255, 0}, []int{r, g, b})

	h, s, v := RGBToHSV(300, -10, -10)
	assert.Equal(t, []int{0, 100, 100}, []int{h, s, v})

	assert.Equal(t, "#FF0000", RGBToHex(300, 0, 0))
	assert.Equal(t, "#00FF00", RGBToHex(-1, 256, -300))
}

func TestConvertRoundTrip(t *testing.T) {
	// HSV derived from RGB always converts back to within one unit of each channel
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				h, s, v := RGBToHSV(r, g, b)
				rr, rg, rb := HSVToRGB(h, s, v)
				assert.InDelta(t, r, rr, 3, "%d %d %d", r, g, b)
				assert.InDelta(t, g, rg, 3, "%d %d %d", r, g, b)
				assert.InDelta(t, b, rb, 3, "%d %d %d", r, g, b)
			}
		}
	}
}

func TestClampNormHue(t *testing.T) {
	assert.Equal(t, 0, clamp(-0.5, 0, 255))
	assert.Equal(t, 10, clamp(10.999, 0, 255))
	assert.Equal(t, 100, clamp(1e9, 0, 100))
	assert.Equal(t, 330, normHue(-30))
	assert.Equal(t, 30, normHue(390))
	assert.Equal(t, 359, normHue(-0.5))
	assert.Equal(t, 0, normHue(720))
	assert.Equal(t, 0, clampInt(-3, 0, 255))
	assert.Equal(t, 255, clampInt(300, 0, 255))
	assert.Equal(t, 17, clampInt(17, 0, 255))
}
