/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for token formatters.
package formatter

import (
	"strings"

	"bennypowers.dev/nol/token"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format converts tokens to the target format.
	Format(tokens []*token.Token, opts Options) ([]byte, error)
}

// Options configures formatter behavior.
type Options struct {
	// Prefix is added to output variable names when the tokens
	// themselves carry none.
	Prefix string
}

// VariableName returns the CSS custom property name for a token,
// applying the formatter prefix when the token has no prefix of its own.
func VariableName(tok *token.Token, opts Options) string {
	if tok.Prefix == "" && opts.Prefix != "" {
		return "--" + opts.Prefix + "-" + strings.ReplaceAll(tok.Name, ".", "-")
	}
	return tok.CSSVariableName()
}
