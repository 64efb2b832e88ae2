/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package pipeline runs the token build: parse, group, validate.
// Every entry point is all-or-nothing; callers get either a fully
// valid token list or an error, never a partial result.
package pipeline

import (
	"fmt"

	"bennypowers.dev/nol/format"
	"bennypowers.dev/nol/fs"
	"bennypowers.dev/nol/internal/cache"
	"bennypowers.dev/nol/parser"
	"bennypowers.dev/nol/token"
	"bennypowers.dev/nol/validator"
)

// Options configures a pipeline run.
type Options struct {
	// Prefix is prepended to CSS variable names.
	Prefix string

	// Format forces the source format instead of detecting it.
	Format format.Format

	// Cache, when set, skips re-parsing files that have not changed.
	Cache *cache.Cache
}

// Tokens parses and validates raw document bytes.
func Tokens(data []byte, opts Options) ([]*token.Token, error) {
	tokens, err := parser.NewJSONParser().Parse(data, parserOptions(opts))
	if err != nil {
		return nil, err
	}
	return validated(tokens)
}

// File parses and validates a single token file.
func File(filesystem fs.FileSystem, path string, opts Options) ([]*token.Token, error) {
	tokens, err := parseFile(filesystem, path, opts)
	if err != nil {
		return nil, err
	}
	return validated(tokens)
}

// Files parses several token files and validates the combined list, so
// duplicate names across files are rejected like duplicates within one.
func Files(filesystem fs.FileSystem, paths []string, opts Options) ([]*token.Token, error) {
	sources := make([]Source, 0, len(paths))
	for _, path := range paths {
		sources = append(sources, Source{Path: path, Options: opts})
	}
	return Sources(filesystem, sources)
}

// Source pairs a token file with the options used to parse it.
type Source struct {
	Path    string
	Options Options
}

// Sources parses each file with its own options and validates the
// combined list. Config-driven builds use this for per-file prefix and
// format overrides.
func Sources(filesystem fs.FileSystem, sources []Source) ([]*token.Token, error) {
	var all []*token.Token
	for _, src := range sources {
		tokens, err := parseFile(filesystem, src.Path, src.Options)
		if err != nil {
			return nil, err
		}
		all = append(all, tokens...)
	}
	if len(all) == 0 {
		return nil, format.ErrNoTokens
	}
	return validated(all)
}

func validated(tokens []*token.Token) ([]*token.Token, error) {
	if errs := validator.Validate(tokens); len(errs) > 0 {
		return nil, errs
	}
	return tokens, nil
}

func parserOptions(opts Options) parser.Options {
	return parser.Options{
		Prefix: opts.Prefix,
		Format: opts.Format,
	}
}

// parseFile parses one file, consulting the cache when configured.
func parseFile(filesystem fs.FileSystem, path string, opts Options) ([]*token.Token, error) {
	p := parser.NewJSONParser()

	if opts.Cache == nil {
		return p.ParseFile(filesystem, path, parserOptions(opts))
	}

	info, err := filesystem.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	key := cacheKey(path, opts)
	if tokens, ok := opts.Cache.Get(key, info); ok {
		return tokens, nil
	}

	tokens, err := p.ParseFile(filesystem, path, parserOptions(opts))
	if err != nil {
		return nil, err
	}
	opts.Cache.Put(key, info, tokens)
	return tokens, nil
}

// cacheKey includes the parse options that shape the output, so runs
// with different prefixes never share entries.
func cacheKey(path string, opts Options) string {
	return path + "\x00" + opts.Prefix + "\x00" + opts.Format.String()
}
