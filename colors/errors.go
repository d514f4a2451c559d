// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"math"

	"cogentcore.org/hsv/base/errors"
)

// ErrInvalidArgument is the kind of every error returned by this package.
// Test for it with [errors.Is].
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes an argument rejected by a constructor or
// mutator. Clamped values are not errors; only values that cannot be
// interpreted at all are.
type ArgumentError struct {
	// Op is the operation that rejected the argument, e.g. "SetHex".
	Op string

	// Arg is the name of the rejected argument.
	Arg string

	// Value is the rejected value, formatted for display.
	Value string

	// Reason says why the value was rejected.
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("colors.%s: %v %s %s: %s", e.Op, ErrInvalidArgument, e.Arg, e.Value, e.Reason)
}

// Unwrap returns [ErrInvalidArgument].
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// checkFinite returns an [ArgumentError] for the first of the given
// values that is NaN or infinite.
func checkFinite(op string, names []string, vals ...float64) error {
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ArgumentError{Op: op, Arg: names[i], Value: fmt.Sprint(v), Reason: "not a finite number"}
		}
	}
	return nil
}

var (
	rgbArgs = []string{"red", "green", "blue"}
	hsvArgs = []string{"hue", "saturation", "value"}
)
