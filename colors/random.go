// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "cogentcore.org/hsv/base/randx"

// Random returns a new [Color] with red, green and blue components
// each drawn uniformly from 0-255.
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func Random(randOpt ...randx.Rand) *Color {
	r := randx.IntRange(0, 255, randOpt...)
	g := randx.IntRange(0, 255, randOpt...)
	b := randx.IntRange(0, 255, randOpt...)
	return fromRGB8(uint8(r), uint8(g), uint8(b))
}
