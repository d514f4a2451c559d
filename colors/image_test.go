// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageColor(t *testing.T) {
	var ic color.Color = Coral()
	r, g, b, a := ic.RGBA()
	assert.Equal(t, []uint32{0xffff, 0x7f7f, 0x5050, 0xffff}, []uint32{r, g, b, a})
	assert.Equal(t, color.RGBA{255, 127, 80, 255}, AsRGBA(Coral()))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, AsRGBA(nil))
}

func TestFromImageColor(t *testing.T) {
	c := FromImageColor(color.RGBA{100, 149, 237, 255})
	expect(t, c, 100, 149, 237, 219, 58, 93, "#6495ED")

	// premultiplied half-transparent red is still red
	c = FromImageColor(color.RGBA{128, 0, 0, 128})
	assert.Equal(t, "#FF0000", c.Hex())

	c = FromImageColor(color.Gray{0x80})
	assert.Equal(t, "#808080", c.Hex())

	hued := MustFromHSV(200, 0, 50)
	cp := FromImageColor(hued)
	assert.Equal(t, 200, cp.Hue())
	assert.NotSame(t, hued, cp)

	expect(t, FromImageColor(nil), 0, 0, 0, 0, 0, 0, "#000000")
}

func TestModel(t *testing.T) {
	c := Model.Convert(color.NRGBA{30, 144, 255, 10}).(*Color)
	assert.True(t, c.Equals(DodgerBlue()))

	db := DodgerBlue()
	assert.Same(t, db, Model.Convert(db))
}
