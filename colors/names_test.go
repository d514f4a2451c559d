// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"strings"
	"testing"

	"cogentcore.org/hsv/colorgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestNamedFunctions(t *testing.T) {
	expect(t, Red(), 255, 0, 0, 0, 100, 100, "#FF0000")
	expect(t, CornflowerBlue(), 100, 149, 237, 219, 58, 93, "#6495ED")
	expect(t, Black(), 0, 0, 0, 0, 0, 0, "#000000")
	expect(t, White(), 255, 255, 255, 0, 0, 100, "#FFFFFF")
	assert.Equal(t, "#F0F8FF", AliceBlue().Hex())
	assert.Equal(t, "#DC143C", Crimson().Hex())
	assert.Equal(t, "#FF69B4", Hotpink().Hex())
	assert.Equal(t, "#87CEEB", Skyblue().Hex())

	// each call returns a fresh color
	a, b := Crimson(), Crimson()
	assert.NotSame(t, a, b)
	b.Complement()
	assert.Equal(t, "#DC143C", Crimson().Hex())
}

func TestNamesMatchCSS(t *testing.T) {
	names := Names()
	assert.Len(t, names, 147)
	for _, name := range names {
		c := MustFromName(name)
		css, ok := colornames.Map[strings.ToLower(name)]
		require.True(t, ok, name)
		assert.Equal(t, AsRGBA(c), css, name)
	}
}

// TestNamesGenerated checks that the generated file is up to date with the data file.
func TestNamesGenerated(t *testing.T) {
	data, err := colorgen.Load("namedcolors.toml")
	require.NoError(t, err)
	require.NoError(t, colorgen.Validate(data))
	require.Len(t, data, len(namedColors))
	for i, nc := range data {
		assert.Equal(t, nc.Name, namedColors[i].name)
		assert.Equal(t, nc.RGB, []int{int(namedColors[i].r), int(namedColors[i].g), int(namedColors[i].b)}, nc.Name)
	}
}

func TestFromName(t *testing.T) {
	for _, name := range []string{"cornflowerBlue", "CornflowerBlue", "cornflowerblue", "CORNFLOWERBLUE", " cornflowerBlue "} {
		c, err := FromName(name)
		require.NoError(t, err, name)
		assert.True(t, c.Equals(CornflowerBlue()), name)
	}

	c, err := FromName("rebeccaPurple")
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "name not found")

	assert.Panics(t, func() { MustFromName("") })
}
