/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the token build.
package config

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/nol/emit"
	"bennypowers.dev/nol/format"
	"bennypowers.dev/nol/parser"
)

// Config represents the project configuration.
type Config struct {
	// Prefix is the global CSS variable prefix.
	Prefix string `yaml:"prefix" json:"prefix"`

	// Files specifies token files to load (paths, globs, or npm: specs).
	Files []FileSpec `yaml:"files" json:"files"`

	// Outputs specifies the files to write on build.
	Outputs []OutputSpec `yaml:"outputs" json:"outputs"`
}

// FileSpec represents a token file specification.
// It can be specified as a simple string path or as an object with overrides.
type FileSpec struct {
	// Path is the file path (supports globs and the npm: protocol).
	Path string `yaml:"path" json:"path"`

	// Prefix overrides the global CSS variable prefix for this file.
	Prefix string `yaml:"prefix" json:"prefix"`

	// Format forces the source format for this file (w3c, legacy).
	Format string `yaml:"format" json:"format"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// OutputSpec represents one build output.
// It can be specified as a "format:path" string or as an object.
type OutputSpec struct {
	// Format is the output format name (css, scss, tailwind,
	// tailwind-cjs, json). Empty means infer from the path extension.
	Format string `yaml:"format" json:"format"`

	// Path is the file path to write.
	Path string `yaml:"path" json:"path"`

	// Prefix overrides the global CSS variable prefix for this output.
	Prefix string `yaml:"prefix" json:"prefix"`
}

// UnmarshalYAML handles both string and object forms for OutputSpec.
func (o *OutputSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*o = ParseOutput(node.Value)
		return nil
	}

	type rawOutputSpec OutputSpec
	return node.Decode((*rawOutputSpec)(o))
}

// UnmarshalJSON handles both string and object forms for OutputSpec.
func (o *OutputSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*o = ParseOutput(s)
		return nil
	}

	type rawOutputSpec OutputSpec
	return json.Unmarshal(data, (*rawOutputSpec)(o))
}

// ParseOutput parses an output argument of the form "format:path".
// Bare paths are accepted too; their format is inferred from the file
// extension when the output is rendered.
func ParseOutput(s string) OutputSpec {
	if before, after, ok := strings.Cut(s, ":"); ok && before != "" && after != "" {
		if _, err := emit.ParseFormat(before); err == nil {
			return OutputSpec{Format: before, Path: after}
		}
	}
	return OutputSpec{Path: s}
}

// ResolveFormat returns the emit format for this output, inferring it
// from the path extension when no format is configured.
func (o OutputSpec) ResolveFormat() (emit.Format, error) {
	if o.Format != "" {
		return emit.ParseFormat(o.Format)
	}
	return emit.FormatForPath(o.Path)
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Prefix:  "",
		Files:   nil,
		Outputs: nil,
	}
}

// DefaultOutputs returns the outputs used when none are configured:
// CSS custom properties next to a Tailwind theme module.
func DefaultOutputs() []OutputSpec {
	return []OutputSpec{
		{Format: "css", Path: "tokens.css"},
		{Format: "tailwind", Path: "theme.ts"},
	}
}

// OptionsForFile returns parser.Options with configuration applied.
// File-level overrides take precedence over global config.
func (c *Config) OptionsForFile(path string) parser.Options {
	opts := parser.Options{
		Prefix: c.Prefix,
	}

	for _, spec := range c.Files {
		if !specMatches(spec.Path, path) {
			continue
		}
		if spec.Prefix != "" {
			opts.Prefix = spec.Prefix
		}
		if spec.Format != "" {
			opts.Format = sourceFormat(spec.Format)
		}
		break
	}

	return opts
}

// specMatches reports whether a configured file path refers to the
// given (possibly glob-expanded) path.
func specMatches(specPath, path string) bool {
	if specPath == path {
		return true
	}
	if filepath.Clean(specPath) == filepath.Clean(path) {
		return true
	}
	if containsGlob(specPath) {
		return matchDoublestar(filepath.Clean(specPath), filepath.Clean(path))
	}
	return false
}

// sourceFormat parses a configured source format, falling back to
// auto-detection for unrecognized values.
func sourceFormat(s string) format.Format {
	f, err := format.FromString(s)
	if err != nil {
		return format.Unknown
	}
	return f
}

// FilePaths returns the list of file paths from all FileSpecs.
func (c *Config) FilePaths() []string {
	paths := make([]string, 0, len(c.Files))
	for _, spec := range c.Files {
		paths = append(paths, spec.Path)
	}
	return paths
}
