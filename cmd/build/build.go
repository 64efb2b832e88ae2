/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build provides the build command for nol.
package build

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/nol/config"
	"bennypowers.dev/nol/emit"
	"bennypowers.dev/nol/fs"
	"bennypowers.dev/nol/internal/cache"
	"bennypowers.dev/nol/internal/logger"
	"bennypowers.dev/nol/pipeline"
	"bennypowers.dev/nol/specifier"
	"bennypowers.dev/nol/token"
)

// Cmd is the build cobra command.
var Cmd = &cobra.Command{
	Use:   "build [files...]",
	Short: "Build CSS variables and theme modules from token files",
	Long: `Build reads design token files, validates them, and writes every
configured output.

Inputs come from arguments or the files list in .config/nol.{yaml,yml,json}.
Outputs come from --output flags, the outputs list in the config file, or
default to tokens.css and theme.ts.

Examples:
  # Build the files configured in .config/nol.yaml
  nol build

  # Build one file to the default outputs
  nol build tokens.json

  # Choose outputs explicitly
  nol build --output css:dist/tokens.css --output tailwind:src/theme.ts tokens.json

  # Tokens published as an npm package
  nol build npm:@rhds/tokens/json/rhds.tokens.json`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringArrayP("output", "o", nil, "Output as format:path (repeatable)")
}

func run(cmd *cobra.Command, args []string) error {
	outputsFlag, _ := cmd.Flags().GetStringArray("output")

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	outputs := make([]config.OutputSpec, 0, len(outputsFlag))
	for _, arg := range outputsFlag {
		outputs = append(outputs, config.ParseOutput(arg))
	}

	return Run(Options{
		Filesystem: fs.NewOSFileSystem(),
		RootDir:    cwd,
		Args:       args,
		Outputs:    outputs,
		Prefix:     viper.GetString("prefix"),
	})
}

// Options configures one build run.
type Options struct {
	Filesystem fs.FileSystem
	RootDir    string

	// Args are explicit input files; empty means use config.
	Args []string

	// Outputs are explicit outputs; empty means config or defaults.
	Outputs []config.OutputSpec

	// Prefix overrides all configured CSS variable prefixes.
	Prefix string

	// Cache is an optional parse cache for repeated runs.
	Cache *cache.Cache
}

// Run executes a full build: resolve inputs, parse and validate, write
// every output. Any failure aborts the whole build; outputs are never
// written from a partially valid token set.
func Run(opts Options) error {
	filesystem := opts.Filesystem

	// Load config from .config/nol.{yaml,yml,json}
	cfg := config.LoadOrDefault(filesystem, opts.RootDir)

	resolved, err := resolveInputs(cfg, opts)
	if err != nil {
		return err
	}

	if len(resolved) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	sources := make([]pipeline.Source, 0, len(resolved))
	for _, rf := range resolved {
		fileOpts := cfg.OptionsForFile(rf.Specifier)
		if opts.Prefix != "" {
			fileOpts.Prefix = opts.Prefix
		}
		sources = append(sources, pipeline.Source{Path: rf.Path, Options: pipeline.Options{
			Prefix: fileOpts.Prefix,
			Format: fileOpts.Format,
			Cache:  opts.Cache,
		}})
	}

	tokens, err := pipeline.Sources(filesystem, sources)
	if err != nil {
		return err
	}

	outputs := opts.Outputs
	if len(outputs) == 0 {
		outputs = cfg.Outputs
	}
	if len(outputs) == 0 {
		outputs = config.DefaultOutputs()
	}

	for _, out := range outputs {
		if err := writeOutput(filesystem, opts.RootDir, tokens, out); err != nil {
			return err
		}
	}
	return nil
}

// ResolveInputs resolves the build's input files the same way Run
// does. The watch command uses it to decide which directories to watch.
func ResolveInputs(opts Options) ([]*specifier.ResolvedFile, error) {
	cfg := config.LoadOrDefault(opts.Filesystem, opts.RootDir)
	return resolveInputs(cfg, opts)
}

// resolveInputs resolves explicit args, or the config file list when
// no args were given.
func resolveInputs(cfg *config.Config, opts Options) ([]*specifier.ResolvedFile, error) {
	specResolver := specifier.NewDefaultResolver(opts.Filesystem, opts.RootDir)

	if len(opts.Args) == 0 {
		resolved, err := cfg.ResolveFiles(specResolver, opts.Filesystem, opts.RootDir)
		if err != nil {
			return nil, fmt.Errorf("error resolving config files: %w", err)
		}
		return resolved, nil
	}

	var resolved []*specifier.ResolvedFile
	for _, arg := range opts.Args {
		rf, err := specResolver.Resolve(arg)
		if err != nil {
			return nil, fmt.Errorf("error resolving %s: %w", arg, err)
		}
		resolved = append(resolved, rf)
	}
	return resolved, nil
}

func writeOutput(filesystem fs.FileSystem, rootDir string, tokens []*token.Token, out config.OutputSpec) error {
	f, err := out.ResolveFormat()
	if err != nil {
		return err
	}

	data, err := emit.RenderTokens(tokens, f, emit.Options{Prefix: out.Prefix})
	if err != nil {
		return fmt.Errorf("error rendering %s: %w", out.Path, err)
	}

	path := out.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(rootDir, path)
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := filesystem.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory for %s: %w", out.Path, err)
		}
	}

	if err := filesystem.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", out.Path, err)
	}

	logger.Info("wrote %s", out.Path)
	return nil
}
