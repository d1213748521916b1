// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the fuzzdec library.

// Package codegen generates Go source for fixed-layout record decoders from a
// field description, for callers that want flat decode functions instead of
// bind chains. Generated files cover the total and/or partial engine and are
// formatted with golang.org/x/tools/imports.
package codegen

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// FieldKind selects the primitive decoded into a field.
type FieldKind int

const (
	KindByte FieldKind = iota
	KindBool
	KindInt32
	KindChar
	KindBytes // fixed-size byte sequence, width in Field.Size
)

// Field describes one field of a generated record decoder, in decode order.
type Field struct {
	Name string
	Kind FieldKind
	Size int // only for KindBytes
}

func (k FieldKind) goType() string {
	switch k {
	case KindByte, KindChar:
		return "byte"
	case KindBool:
		return "bool"
	case KindInt32:
		return "int32"
	case KindBytes:
		return "[]byte"
	default:
		return ""
	}
}

func (k FieldKind) primitive() string {
	switch k {
	case KindByte:
		return "Byte()"
	case KindBool:
		return "Bool()"
	case KindInt32:
		return "Int32()"
	case KindChar:
		return "Char()"
	default:
		return ""
	}
}

type GeneratorOption func(*GeneratorOptions)

type GeneratorOptions struct {
	Package   string
	NoTotal   bool
	NoPartial bool
}

func WithPackageName(name string) GeneratorOption {
	return func(opts *GeneratorOptions) {
		opts.Package = name
	}
}

func WithNoTotal() GeneratorOption {
	return func(opts *GeneratorOptions) {
		opts.NoTotal = true
	}
}

func WithNoPartial() GeneratorOption {
	return func(opts *GeneratorOptions) {
		opts.NoPartial = true
	}
}

// Generator renders record decoder source files.
type Generator struct {
	options *GeneratorOptions
}

func NewGenerator(opts ...GeneratorOption) *Generator {
	options := &GeneratorOptions{
		Package: "decoders",
	}
	for _, opt := range opts {
		opt(options)
	}
	return &Generator{options: options}
}

// Generate renders the record type and its decoder functions as a formatted
// Go source file.
func (g *Generator) Generate(typeName string, fields []Field) ([]byte, error) {
	if err := validateFields(fields); err != nil {
		return nil, err
	}

	var buf strings.Builder
	data := &tmplData{
		Package:  g.options.Package,
		TypeName: typeName,
		Fields:   fields,
		Total:    !g.options.NoTotal,
		Partial:  !g.options.NoPartial,
	}
	if err := fileTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("error rendering decoder source: %v", err)
	}

	formatted, err := imports.Process(strings.ToLower(typeName)+".go", []byte(buf.String()), nil)
	if err != nil {
		return nil, fmt.Errorf("error formatting decoder source: %v", err)
	}
	return formatted, nil
}

// BuildFile renders the decoders for typeName and writes them to fileName.
func (g *Generator) BuildFile(fileName, typeName string, fields []Field) error {
	src, err := g.Generate(typeName, fields)
	if err != nil {
		return err
	}
	return os.WriteFile(fileName, src, 0o644)
}

func validateFields(fields []Field) error {
	if len(fields) == 0 {
		return fmt.Errorf("no fields given")
	}
	for _, field := range fields {
		if field.Kind.goType() == "" {
			return fmt.Errorf("field %v: unknown kind %v", field.Name, field.Kind)
		}
		if field.Kind == KindBytes && field.Size <= 0 {
			return fmt.Errorf("field %v: bytes field needs a positive size", field.Name)
		}
	}
	return nil
}

type tmplData struct {
	Package  string
	TypeName string
	Fields   []Field
	Total    bool
	Partial  bool
}

var fileTmpl = template.Must(template.New("file").Funcs(template.FuncMap{
	"goType":    FieldKind.goType,
	"primitive": FieldKind.primitive,
}).Parse(`// Code generated by fuzzdec codegen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/pk910/fuzzdec/decutils"
	"github.com/pk910/fuzzdec/partial"
	"github.com/pk910/fuzzdec/total"
)

type {{.TypeName}} struct {
{{- range .Fields}}
	{{.Name}} {{goType .Kind}}
{{- end}}
}

{{if .Total -}}
// Decode{{.TypeName}}Total decodes a {{.TypeName}} under the total engine.
func Decode{{.TypeName}}Total() total.Decoder[{{.TypeName}}] {
	return func(buf []byte, pos int) ({{.TypeName}}, int) {
		var out {{.TypeName}}
{{- range .Fields}}
{{- if eq (goType .Kind) "[]byte"}}
		out.{{.Name}}, pos = total.Bytes({{.Size}})(buf, pos)
{{- else}}
		out.{{.Name}}, pos = total.{{primitive .Kind}}(buf, pos)
{{- end}}
{{- end}}
		return out, pos
	}
}
{{- end}}

{{if .Partial -}}
// Decode{{.TypeName}}Partial decodes a {{.TypeName}} under the partial
// engine, rejecting truncated input.
func Decode{{.TypeName}}Partial() partial.Decoder[{{.TypeName}}] {
	return func(buf []byte, pos int) (int, decutils.Option[{{.TypeName}}]) {
		var out {{.TypeName}}
{{- range .Fields}}
		{
{{- if eq (goType .Kind) "[]byte"}}
			next, res := partial.Bytes({{.Size}})(buf, pos)
{{- else}}
			next, res := partial.{{primitive .Kind}}(buf, pos)
{{- end}}
			if res.IsNone() {
				return next, decutils.None[{{$.TypeName}}]()
			}
			out.{{.Name}} = res.Value()
			pos = next
		}
{{- end}}
		return pos, decutils.Some(out)
	}
}
{{- end}}
`))
