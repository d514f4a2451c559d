// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, false))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf)
	h.Level = slog.LevelInfo
	l := slog.New(h)

	l.Debug("hidden")
	l.Info("parsed color", "hex", "#FF00FF")
	l.With("op", "SetHex").WithGroup("input").Warn("rejected", "value", "#GG")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO parsed color hex=#FF00FF\n")
	assert.Contains(t, out, "WARN rejected op=SetHex input.value=#GG\n")
}

func TestHandlerUserLevel(t *testing.T) {
	old := UserLevel
	defer func() { UserLevel = old }()

	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf))
	UserLevel = slog.LevelError
	l.Warn("not shown")
	assert.Empty(t, buf.String())
	UserLevel = slog.LevelDebug
	l.Debug("shown")
	assert.Contains(t, buf.String(), "DEBUG shown")
}
