// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hsvcolor converts colors between hex, RGB and HSV,
// applies color transformations, and lists the named colors.
package main

import (
	"log/slog"
	"os"

	"cogentcore.org/hsv/base/logx"
)

func main() {
	logx.SetDefaultLogger()
	if err := newRootCmd().Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
