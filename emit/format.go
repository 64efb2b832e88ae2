/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package emit

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format represents an output format for token rendering.
type Format string

const (
	// FormatCSS outputs CSS custom properties under a :root selector.
	FormatCSS Format = "css"

	// FormatSCSS outputs SCSS variables with kebab-case names.
	FormatSCSS Format = "scss"

	// FormatTailwind outputs a TypeScript ESM theme-extension module.
	FormatTailwind Format = "tailwind"

	// FormatTailwindCJS outputs a CommonJS theme-extension module.
	FormatTailwindCJS Format = "tailwind-cjs"

	// FormatJSON outputs the theme-extension object as JSON.
	FormatJSON Format = "json"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatCSS),
		string(FormatSCSS),
		string(FormatTailwind),
		string(FormatTailwindCJS),
		string(FormatJSON),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "css", "":
		return FormatCSS, nil
	case "scss", "sass":
		return FormatSCSS, nil
	case "tailwind", "ts", "theme":
		return FormatTailwind, nil
	case "tailwind-cjs", "cjs":
		return FormatTailwindCJS, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// FormatForPath infers the output format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".css":
		return FormatCSS, nil
	case ".scss", ".sass":
		return FormatSCSS, nil
	case ".ts", ".mts", ".js", ".mjs":
		return FormatTailwind, nil
	case ".cjs":
		return FormatTailwindCJS, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("cannot infer output format for %s; use format:path", path)
	}
}

// Extension returns the conventional file extension for a format.
func (f Format) Extension() string {
	switch f {
	case FormatSCSS:
		return ".scss"
	case FormatTailwind:
		return ".ts"
	case FormatTailwindCJS:
		return ".cjs"
	case FormatJSON:
		return ".json"
	default:
		return ".css"
	}
}
