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

// Command maskgen generates the per-width mask types of package hwy.
//
// Usage:
//
//	maskgen --output hwy --pkg hwy
//	maskgen --output . --pkg hwy --max-bytes 32 --verbose
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/maskgen --output . --pkg hwy
//
// The generator writes two files:
//  1. mask_gen.go: one alias of hwy.Mask per lane type and lane count, plus
//     a SplatMaskWxN constructor for each.
//  2. mask_gen_test.go: the shared mask property suite instantiated for
//     every generated width.
//
// Operator logic is never generated; it lives once in the generic code.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	gen := &Generator{}
	var verbose bool

	cmd := &cobra.Command{
		Use:           "maskgen",
		Short:         "Generate per-width mask types and their tests",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			gen.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			shapes, err := gen.Run()
			if err != nil {
				return err
			}
			names := lo.Map(shapes, func(s Shape, _ int) string { return s.TypeName() })
			fmt.Fprintf(cmd.OutOrStdout(), "Successfully generated %d mask types: %s\n", len(names), strings.Join(names, ", "))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&gen.OutputDir, "output", "o", ".", "Output directory")
	flags.StringVar(&gen.Package, "pkg", "hwy", "Output package name")
	flags.IntVar(&gen.MaxBytes, "max-bytes", MaxVecWidth, "Widest vector to generate masks for, in bytes")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log debug output")
	return cmd
}
