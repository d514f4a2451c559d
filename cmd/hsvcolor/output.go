// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"cogentcore.org/hsv/colors"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// outputOptions are the options used for the terminal output
// that swatches are printed to.
var outputOptions []termenv.OutputOption

// colorDoc is the structured output form of a color.
type colorDoc struct {
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	Hex        string `json:"hex" yaml:"hex"`
	Red        int    `json:"red" yaml:"red"`
	Green      int    `json:"green" yaml:"green"`
	Blue       int    `json:"blue" yaml:"blue"`
	Hue        int    `json:"hue" yaml:"hue"`
	Saturation int    `json:"saturation" yaml:"saturation"`
	Value      int    `json:"value" yaml:"value"`
}

func newColorDoc(c *colors.Color) colorDoc {
	return colorDoc{
		Hex:        c.Hex(),
		Red:        c.Red(),
		Green:      c.Green(),
		Blue:       c.Blue(),
		Hue:        c.Hue(),
		Saturation: c.Saturation(),
		Value:      c.Value(),
	}
}

// print prints the given colors in the configured format.
func (f *rootFlags) print(w io.Writer, cs ...*colors.Color) error {
	docs := make([]colorDoc, len(cs))
	for i, c := range cs {
		docs[i] = newColorDoc(c)
	}
	return f.printDocs(w, docs)
}

// printDocs prints the given documents in the configured format.
// A single document is printed on its own rather than as a list.
func (f *rootFlags) printDocs(w io.Writer, docs []colorDoc) error {
	var v any = docs
	if len(docs) == 1 {
		v = docs[0]
	}
	switch f.cfg.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	out := termenv.NewOutput(w, outputOptions...)
	for _, d := range docs {
		var b strings.Builder
		if f.cfg.Swatch {
			b.WriteString(out.String("    ").Background(out.Color(d.Hex)).String())
			b.WriteByte(' ')
		}
		if d.Name != "" {
			fmt.Fprintf(&b, "%-20s ", d.Name)
		}
		fmt.Fprintf(&b, "%s rgb(%d, %d, %d) hsv(%d, %d%%, %d%%)\n", d.Hex, d.Red, d.Green, d.Blue, d.Hue, d.Saturation, d.Value)
		if _, err := io.WriteString(out, b.String()); err != nil {
			return err
		}
	}
	return nil
}
