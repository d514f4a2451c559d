// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"math"
	"testing"

	"cogentcore.org/hsv/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expect checks all seven components of the given color.
func expect(t *testing.T, c *Color, r, g, b, h, s, v int, hex string) {
	t.Helper()
	require.NotNil(t, c)
	assert.Equal(t, r, c.Red(), "red")
	assert.Equal(t, g, c.Green(), "green")
	assert.Equal(t, b, c.Blue(), "blue")
	assert.Equal(t, h, c.Hue(), "hue")
	assert.Equal(t, s, c.Saturation(), "saturation")
	assert.Equal(t, v, c.Value(), "value")
	assert.Equal(t, hex, c.Hex(), "hex")
	assert.Equal(t, hex, c.String(), "string")
}

func TestNew(t *testing.T) {
	expect(t, New(), 0, 0, 0, 0, 0, 0, "#000000")
	assert.True(t, New().Equals(Black()))

	var z Color
	assert.Equal(t, "#000000", z.Hex())
	assert.Equal(t, "#000000", z.String())
	assert.True(t, z.Equals(Black()))
}

func TestFromRGB(t *testing.T) {
	tests := []struct {
		r, g, b    float64
		er, eg, eb int
		h, s, v    int
		hex        string
	}{
		{100, 149, 237, 100, 149, 237, 219, 58, 93, "#6495ED"},
		{220, 20, 60, 220, 20, 60, 348, 91, 86, "#DC143C"},
		{12, 34, 56, 12, 34, 56, 210, 79, 22, "#0C2238"},
		{0, 128, 0, 0, 128, 0, 120, 100, 50, "#008000"},
		{75, 0, 130, 75, 0, 130, 275, 100, 51, "#4B0082"},
		{128, 128, 128, 128, 128, 128, 0, 0, 50, "#808080"},
		{-96, 255, 255, 0, 255, 255, 180, 100, 100, "#00FFFF"},
		{-127, 255, 255, 0, 255, 255, 180, 100, 100, "#00FFFF"},
		{383, 255, 255, 255, 255, 255, 0, 0, 100, "#FFFFFF"},
		{255, -127, 255, 255, 0, 255, 300, 100, 100, "#FF00FF"},
		{255, 383, 255, 255, 255, 255, 0, 0, 100, "#FFFFFF"},
		{255, 255, -127, 255, 255, 0, 60, 100, 100, "#FFFF00"},
		{255, 255, 383, 255, 255, 255, 0, 0, 100, "#FFFFFF"},
		{10.75, 0, 0, 10, 0, 0, 0, 100, 4, "#0A0000"},
		{100.75, 149.75, 237.75, 100, 149, 237, 219, 58, 93, "#6495ED"},
		{math.MaxFloat64, -math.MaxFloat64, 0, 255, 0, 0, 0, 100, 100, "#FF0000"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%g,%g,%g", tt.r, tt.g, tt.b), func(t *testing.T) {
			c, err := FromRGB(tt.r, tt.g, tt.b)
			require.NoError(t, err)
			expect(t, c, tt.er, tt.eg, tt.eb, tt.h, tt.s, tt.v, tt.hex)
		})
	}
}

func TestFromRGBHueWraps(t *testing.T) {
	// the derived hue of this color rounds up to 360 degrees
	c := MustFromRGB(255, 0, 1)
	expect(t, c, 255, 0, 1, 0, 100, 100, "#FF0001")
}

func TestFromRGBInvalid(t *testing.T) {
	for _, args := range [][3]float64{
		{math.NaN(), 0, 0},
		{0, math.NaN(), 0},
		{0, 0, math.Inf(1)},
		{math.Inf(-1), 0, 0},
	} {
		c, err := FromRGB(args[0], args[1], args[2])
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		var ae *ArgumentError
		require.True(t, errors.As(err, &ae))
		assert.Equal(t, "SetRGB", ae.Op)
	}
	assert.Panics(t, func() { MustFromRGB(math.NaN(), 0, 0) })
}

func TestFromHSV(t *testing.T) {
	tests := []struct {
		h, s, v float64
		r, g, b int
		eh      int
		es, ev  int
		hex     string
	}{
		{210, 50, 80, 102, 153, 204, 210, 50, 80, "#6699CC"},
		{0, 100, 100, 255, 0, 0, 0, 100, 100, "#FF0000"},
		{359, 100, 100, 255, 0, 4, 359, 100, 100, "#FF0004"},
		{-30, 100, 100, 255, 0, 127, 330, 100, 100, "#FF007F"},
		{390, 100, 100, 255, 127, 0, 30, 100, 100, "#FF7F00"},
		{360, 100, 100, 255, 0, 0, 0, 100, 100, "#FF0000"},
		{-360, 100, 100, 255, 0, 0, 0, 100, 100, "#FF0000"},
		{120, 150, -5, 0, 0, 0, 120, 100, 0, "#000000"},
		{300.9, 50.5, 50.5, 127, 63, 127, 300, 50, 50, "#7F3F7F"},
		{60, 100, 50, 127, 127, 0, 60, 100, 50, "#7F7F00"},
		{180, 33, 77, 131, 196, 196, 180, 33, 77, "#83C4C4"},
		{45, 10, 90, 229, 223, 206, 45, 10, 90, "#E5DFCE"},
		{219, 58, 93, 99, 147, 237, 219, 58, 93, "#6393ED"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%g,%g,%g", tt.h, tt.s, tt.v), func(t *testing.T) {
			c, err := FromHSV(tt.h, tt.s, tt.v)
			require.NoError(t, err)
			expect(t, c, tt.r, tt.g, tt.b, tt.eh, tt.es, tt.ev, tt.hex)
		})
	}

	c, err := FromHSV(0, math.NaN(), 0)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "saturation")
	assert.Panics(t, func() { MustFromHSV(math.Inf(1), 0, 0) })
}

func TestFromColor(t *testing.T) {
	gray := MustFromRGB(128, 128, 128)
	errors.Must1(gray.SetHue(200))
	expect(t, gray, 127, 127, 127, 200, 0, 50, "#7F7F7F")

	// a copy keeps the hue that could not be derived from RGB
	cp := FromColor(gray)
	expect(t, cp, 127, 127, 127, 200, 0, 50, "#7F7F7F")
	assert.NotSame(t, gray, cp)

	// deriving from RGB again loses it
	errors.Must1(gray.SetRGB(128, 128, 128))
	expect(t, gray, 128, 128, 128, 0, 0, 50, "#808080")
	assert.Equal(t, 200, cp.Hue())

	expect(t, FromColor(nil), 0, 0, 0, 0, 0, 0, "#000000")
}

func TestEquals(t *testing.T) {
	assert.True(t, MustFromRGB(255, 0, 0).Equals(MustFromRGB(255, 0, 0)))
	assert.True(t, Red().Equals(MustFromHex("#F00")))
	assert.False(t, MustFromRGB(255, 0, 0).Equals(MustFromRGB(254, 0, 0)))
	assert.False(t, MustFromRGB(255, 0, 0).Equals(MustFromRGB(255, 1, 0)))
	assert.False(t, MustFromRGB(255, 0, 0).Equals(MustFromRGB(255, 0, 1)))
	assert.False(t, Red().Equals(nil))

	var nilColor *Color
	assert.False(t, nilColor.Equals(Red()))

	// hue and saturation are not compared
	a := MustFromRGB(127, 127, 127)
	b := errors.Must1(MustFromRGB(128, 128, 128).SetHue(200))
	assert.NotEqual(t, a.Hue(), b.Hue())
	assert.True(t, a.Equals(b))
	assert.True(t, b.Equals(a))
}

func TestClone(t *testing.T) {
	c := errors.Must1(CornflowerBlue().SetHue(100))
	cl := c.Clone()
	assert.NotSame(t, c, cl)
	assert.Equal(t, *c, *cl)

	errors.Must1(cl.SetRed(0))
	assert.Equal(t, 0, cl.Red())
	assert.NotEqual(t, 0, c.Red())
	assert.False(t, c.Equals(cl))
}

func TestFailedMutationLeavesColorUnchanged(t *testing.T) {
	c := CornflowerBlue()
	before := *c
	r, err := c.SetRGB(0, math.NaN(), 0)
	assert.Same(t, c, r)
	assert.Error(t, err)
	assert.Equal(t, before, *c)

	_, err = c.SetHSV(math.Inf(1), 0, 0)
	assert.Error(t, err)
	assert.Equal(t, before, *c)

	_, err = c.SetHex("nope")
	assert.Error(t, err)
	assert.Equal(t, before, *c)
}

func TestRoundTripHex(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 7 {
			for b := 0; b < 256; b += 11 {
				c := MustFromRGB(float64(r), float64(g), float64(b))
				assert.Equal(t, fmt.Sprintf("#%02X%02X%02X", r, g, b), c.Hex())
				h := MustFromHex(c.Hex())
				if !assert.True(t, c.Equals(h), "%s", c.Hex()) {
					return
				}
				assert.GreaterOrEqual(t, c.Hue(), 0)
				assert.Less(t, c.Hue(), 360)
			}
		}
	}
}
