/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tailwind provides theme-extension module formatting for design tokens.
// The output is a designTokens object suitable for a Tailwind config's
// theme.extend block, in either ESM/TypeScript or CommonJS form.
package tailwind

import (
	"fmt"
	"strconv"
	"strings"

	"bennypowers.dev/nol/emit/formatter"
	"bennypowers.dev/nol/theme"
	"bennypowers.dev/nol/token"
)

// Module specifies the JavaScript module system.
type Module string

const (
	// ModuleESM uses ES Modules with TypeScript (default).
	ModuleESM Module = "esm"
	// ModuleCJS uses CommonJS.
	ModuleCJS Module = "cjs"
)

// Options configures the tailwind formatter.
type Options struct {
	// Module specifies the module format: "esm" (default), "cjs".
	Module Module
}

// Formatter outputs a theme-extension module.
type Formatter struct {
	opts Options
}

// New creates a new tailwind formatter with ESM output.
func New() *Formatter {
	return &Formatter{opts: Options{Module: ModuleESM}}
}

// NewWithOptions creates a new tailwind formatter with the specified options.
func NewWithOptions(opts Options) *Formatter {
	if opts.Module == "" {
		opts.Module = ModuleESM
	}
	return &Formatter{opts: opts}
}

// Format converts tokens to a theme-extension module.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	ext := theme.FromTokens(tokens)

	var sb strings.Builder
	switch f.opts.Module {
	case ModuleCJS:
		sb.WriteString("const designTokens = ")
		writeExtension(&sb, ext)
		sb.WriteString(";\n\nmodule.exports = { designTokens };\n")
	default:
		sb.WriteString("export const designTokens = ")
		writeExtension(&sb, ext)
		sb.WriteString(" as const;\n\nexport default designTokens;\n")
	}

	return []byte(sb.String()), nil
}

// Extension returns the appropriate file extension for the configured options.
func (f *Formatter) Extension() string {
	if f.opts.Module == ModuleCJS {
		return ".cjs"
	}
	return ".ts"
}

func writeExtension(sb *strings.Builder, ext *theme.Extension) {
	sb.WriteString("{\n")
	writeCategory(sb, "colors", ext.Colors)
	writeCategory(sb, "spacing", ext.Spacing)
	writeTypography(sb, ext.Typography)
	writeCategory(sb, "shadows", ext.Shadows)
	writeCategory(sb, "radii", ext.Radii)
	sb.WriteString("}")
}

func writeCategory(sb *strings.Builder, name string, entries []theme.Entry) {
	if len(entries) == 0 {
		fmt.Fprintf(sb, "  %s: {},\n", name)
		return
	}
	fmt.Fprintf(sb, "  %s: {\n", name)
	for _, entry := range entries {
		fmt.Fprintf(sb, "    %s: %s,\n", quote(entry.Key), quote(entry.Value))
	}
	sb.WriteString("  },\n")
}

func writeTypography(sb *strings.Builder, entries []theme.TypographyEntry) {
	if len(entries) == 0 {
		sb.WriteString("  typography: {},\n")
		return
	}
	sb.WriteString("  typography: {\n")
	for _, entry := range entries {
		fmt.Fprintf(sb, "    %s: {\n", quote(entry.Key))
		if entry.Value != nil {
			for _, prop := range entry.Value.Properties() {
				fmt.Fprintf(sb, "      %s: %s,\n", prop.Key, quote(prop.Value))
			}
		}
		sb.WriteString("    },\n")
	}
	sb.WriteString("  },\n")
}

func quote(s string) string {
	return strconv.Quote(s)
}
