/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package scss provides SCSS variable formatting for design tokens.
package scss

import (
	"fmt"
	"strings"

	"bennypowers.dev/nol/emit/formatter"
	"bennypowers.dev/nol/token"
)

// Formatter outputs SCSS variables with kebab-case names.
type Formatter struct{}

// New creates a new SCSS formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts tokens to SCSS variable declarations.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	var sb strings.Builder
	for _, tok := range tokens {
		name := strings.TrimPrefix(formatter.VariableName(tok, opts), "--")
		if tok.Typography != nil {
			for _, prop := range tok.Typography.Properties() {
				fmt.Fprintf(&sb, "$%s-%s: %s;\n", name, prop.Suffix, prop.Value)
			}
			continue
		}
		fmt.Fprintf(&sb, "$%s: %s;\n", name, tok.Value)
	}
	return []byte(sb.String()), nil
}
