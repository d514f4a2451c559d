// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Format string
	Swatch bool
	Names  []string
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.toml")
	in := &testConfig{Format: "yaml", Swatch: true, Names: []string{"crimson", "navy"}}
	require.NoError(t, Save(in, file))

	out := &testConfig{}
	require.NoError(t, Open(out, file))
	assert.Equal(t, in, out)
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.toml")
	require.NoError(t, Save(&testConfig{Format: "json", Swatch: true}, a))
	require.NoError(t, Save(&testConfig{Format: "text"}, b))

	out := &testConfig{}
	require.NoError(t, OpenFiles(out, a, b))
	assert.Equal(t, "text", out.Format)
	assert.False(t, out.Swatch)
}

func TestBytes(t *testing.T) {
	b, err := WriteBytes(&testConfig{Format: "text"})
	require.NoError(t, err)
	assert.Regexp(t, `Format = ['"]text['"]`, string(b))

	out := &testConfig{}
	require.NoError(t, ReadBytes(out, []byte("Format = \"json\"\nNames = [\"red\"]\n")))
	assert.Equal(t, "json", out.Format)
	assert.Equal(t, []string{"red"}, out.Names)

	assert.Error(t, ReadBytes(out, []byte("Format = ")))
	assert.Error(t, Open(out, filepath.Join(t.TempDir(), "missing.toml")))
}
