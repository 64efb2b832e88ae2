/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser turns token source documents into flat token lists.
package parser

import (
	"bennypowers.dev/nol/format"
	"bennypowers.dev/nol/fs"
	"bennypowers.dev/nol/token"
)

// Options configures token parsing.
type Options struct {
	// Prefix is the CSS variable prefix applied to parsed tokens.
	Prefix string

	// Format overrides auto-detection.
	Format format.Format

	// SkipSort disables alphabetical sorting of sibling keys. When
	// false (default), siblings are walked in sorted order so output
	// order is deterministic for a given document.
	SkipSort bool
}

// Parser parses design token documents.
type Parser interface {
	// Parse parses token data and returns the flat token list.
	Parse(data []byte, opts Options) ([]*token.Token, error)

	// ParseFile parses a token file and returns the flat token list.
	ParseFile(filesystem fs.FileSystem, path string, opts Options) ([]*token.Token, error)
}
