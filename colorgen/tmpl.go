// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorgen

import "text/template"

// FileTmpl is the template for the generated named color file.
// It takes a [Data] as its data.
var FileTmpl = template.Must(template.New("File").Parse(
	`// Code generated by "colorgen -input {{.Input}}"; DO NOT EDIT.

package {{.Package}}
{{range .Colors}}
// {{.Ident}} returns a new [Color] set to the named color {{.Words}}, rgb({{.R}}, {{.G}}, {{.B}}).
func {{.Ident}}() *Color { return fromRGB8({{.R}}, {{.G}}, {{.B}}) }
{{end}}
// namedColors contains all of the named colors in definition order.
var namedColors = []named{
{{- range .Colors}}
	{"{{.Name}}", {{.R}}, {{.G}}, {{.B}}},
{{- end}}
}
`))
