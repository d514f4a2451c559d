// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"strconv"
	"strings"
	"sync"

	"cogentcore.org/hsv/base/errors"
)

// named is one entry of the generated named color table.
type named struct {
	name    string
	r, g, b uint8
}

var (
	nameIndexOnce sync.Once
	nameIndex     map[string]int
)

// Names returns the names of all of the named colors, in the
// order in which they are defined, e.g. "aliceBlue".
func Names() []string {
	names := make([]string, len(namedColors))
	for i, nc := range namedColors {
		names[i] = nc.name
	}
	return names
}

// FromName returns a new [Color] for the given color name, ignoring
// case, so "cornflowerBlue", "CornflowerBlue" and "cornflowerblue"
// are all accepted. It returns an error if the name is not found;
// see [MustFromName] for a version that does not return an error.
func FromName(name string) (*Color, error) {
	nameIndexOnce.Do(func() {
		nameIndex = make(map[string]int, len(namedColors))
		for i, nc := range namedColors {
			nameIndex[strings.ToLower(nc.name)] = i
		}
	})
	i, ok := nameIndex[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, &ArgumentError{Op: "FromName", Arg: "name", Value: strconv.Quote(name), Reason: "name not found"}
	}
	nc := namedColors[i]
	return fromRGB8(nc.r, nc.g, nc.b), nil
}

// MustFromName returns a new [Color] for the given color name.
// It panics if the name is not found; see [FromName] for a version
// that returns an error.
func MustFromName(name string) *Color {
	return errors.Must1(FromName(name))
}
