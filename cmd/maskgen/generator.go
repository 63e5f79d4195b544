// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"golang.org/x/tools/imports"
)

const (
	// MasksFile holds the per-width aliases and constructors.
	MasksFile = "mask_gen.go"

	// TestsFile holds the per-width property tests.
	TestsFile = "mask_gen_test.go"
)

// Generator writes the per-width mask instantiations for a package.
type Generator struct {
	OutputDir string
	Package   string
	MaxBytes  int
	Logger    *slog.Logger
}

// Run emits MasksFile and TestsFile into OutputDir and returns the shapes
// it generated.
func (g *Generator) Run() ([]Shape, error) {
	if g.Package == "" {
		return nil, fmt.Errorf("package name is required")
	}
	logger := g.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	shapes, err := Shapes(g.MaxBytes)
	if err != nil {
		return nil, fmt.Errorf("width table: %w", err)
	}
	logger.Debug("width table", "shapes", len(shapes), "max_bytes", g.MaxBytes)

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	if err := g.emit(MasksFile, g.renderMasks(shapes), logger); err != nil {
		return nil, fmt.Errorf("emit masks: %w", err)
	}
	if err := g.emit(TestsFile, g.renderTests(shapes), logger); err != nil {
		return nil, fmt.Errorf("emit tests: %w", err)
	}
	return shapes, nil
}

func (g *Generator) header(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "// Code generated by maskgen. DO NOT EDIT.\n")
	fmt.Fprintf(buf, "\npackage %s\n\n", g.Package)
}

func (g *Generator) renderMasks(shapes []Shape) []byte {
	var buf bytes.Buffer
	g.header(&buf)

	for _, s := range shapes {
		name := s.TypeName()
		fmt.Fprintf(&buf, "// %s is a mask of %d %s lanes (%d bits).\n", name, s.Lanes, s.Lane.GoType, s.TotalBits())
		fmt.Fprintf(&buf, "type %s = Mask[%s]\n\n", name, s.TypeArgs())
		fmt.Fprintf(&buf, "// Splat%s returns a %s with every lane set to value.\n", name, name)
		fmt.Fprintf(&buf, "func Splat%s(value bool) %s {\n", name, name)
		fmt.Fprintf(&buf, "\treturn Splat[%s](value)\n", s.TypeArgs())
		fmt.Fprintf(&buf, "}\n\n")
	}
	return buf.Bytes()
}

func (g *Generator) renderTests(shapes []Shape) []byte {
	var buf bytes.Buffer
	g.header(&buf)
	fmt.Fprintf(&buf, "import \"testing\"\n\n")

	for _, s := range shapes {
		name := s.TypeName()
		fmt.Fprintf(&buf, "func Test%sAlgebra(t *testing.T) {\n", name)
		fmt.Fprintf(&buf, "\ttestMaskAlgebra[%s](t)\n", s.TypeArgs())
		fmt.Fprintf(&buf, "}\n\n")
		fmt.Fprintf(&buf, "func TestSplat%s(t *testing.T) {\n", name)
		fmt.Fprintf(&buf, "\ttestSplatConstructor(t, Splat%s, %d)\n", name, s.Lanes)
		fmt.Fprintf(&buf, "}\n\n")
	}

	names := lo.Map(shapes, func(s Shape, _ int) string { return s.TypeName() })
	fmt.Fprintf(&buf, "// generatedMaskLanes maps every generated mask type to its lane count.\n")
	fmt.Fprintf(&buf, "var generatedMaskLanes = map[string]int{\n")
	for i, s := range shapes {
		fmt.Fprintf(&buf, "\t%q: %d,\n", names[i], s.Lanes)
	}
	fmt.Fprintf(&buf, "}\n")
	return buf.Bytes()
}

// emit formats src and writes it to name inside OutputDir.
func (g *Generator) emit(name string, src []byte, logger *slog.Logger) error {
	filename := filepath.Join(g.OutputDir, name)
	formatted, err := imports.Process(filename, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return fmt.Errorf("format %s: %w", name, err)
	}
	if err := os.WriteFile(filename, formatted, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	logger.Info("wrote file", "path", filename, "bytes", len(formatted))
	return nil
}
