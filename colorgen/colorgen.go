// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorgen generates the named color functions of
// the colors package from a TOML data file.
package colorgen

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"
	"golang.org/x/tools/imports"
)

// Data is the data passed to [FileTmpl].
type Data struct {
	Input   string
	Package string
	Colors  []Entry
}

// Entry is one named color as rendered by [FileTmpl].
type Entry struct {
	Name    string // e.g. cornflowerBlue
	Ident   string // e.g. CornflowerBlue
	Words   string // e.g. cornflower blue
	R, G, B int
}

// NewEntry returns the [Entry] for the given named color,
// which must have already passed [Validate].
func NewEntry(nc Named) Entry {
	return Entry{
		Name:  nc.Name,
		Ident: strcase.ToCamel(nc.Name),
		Words: strcase.ToDelimited(nc.Name, ' '),
		R:     nc.RGB[0],
		G:     nc.RGB[1],
		B:     nc.RGB[2],
	}
}

// Generate generates the named color file specified by the given config.
func Generate(cfg *Config) error {
	cfg.Defaults()
	colors, err := Load(cfg.Input)
	if err != nil {
		return err
	}
	if err := Validate(colors); err != nil {
		return fmt.Errorf("colorgen.Generate: invalid data file %q: %w", cfg.Input, err)
	}
	src, err := Render(cfg, colors)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.Output, src, 0666); err != nil {
		return fmt.Errorf("colorgen.Generate: %w", err)
	}
	slog.Info("generated named colors", "file", cfg.Output, "colors", len(colors))
	return nil
}

// Render returns the formatted source code of the named color file
// for the given colors.
func Render(cfg *Config, colors []Named) ([]byte, error) {
	d := &Data{Input: filepath.Base(cfg.Input), Package: cfg.Package}
	idents := make(map[string]string, len(colors))
	for _, nc := range colors {
		e := NewEntry(nc)
		if prev, ok := idents[e.Ident]; ok {
			return nil, fmt.Errorf("colorgen.Render: colors %q and %q both map to %s", prev, nc.Name, e.Ident)
		}
		idents[e.Ident] = nc.Name
		d.Colors = append(d.Colors, e)
	}
	var buf bytes.Buffer
	if err := FileTmpl.Execute(&buf, d); err != nil {
		return nil, fmt.Errorf("colorgen.Render: programmer error: error executing template: %w", err)
	}
	src, err := imports.Process(cfg.Output, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("colorgen.Render: error formatting code: %w\n%s", err, buf.Bytes())
	}
	return src, nil
}
