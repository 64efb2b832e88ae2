/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css provides CSS custom property formatting for design tokens.
package css

import (
	"strings"

	"bennypowers.dev/nol/emit/formatter"
	"bennypowers.dev/nol/token"
)

// Declaration is a single custom property declaration.
type Declaration struct {
	Name  string
	Value string
}

// Variables maps tokens to custom property declarations, preserving
// token order. Typography tokens, being composite, expand to one
// declaration per sub-property (e.g. --font-heading-family,
// --font-heading-size).
func Variables(tokens []*token.Token, opts formatter.Options) []Declaration {
	var decls []Declaration
	for _, tok := range tokens {
		name := formatter.VariableName(tok, opts)
		if tok.Typography != nil {
			for _, prop := range tok.Typography.Properties() {
				decls = append(decls, Declaration{
					Name:  name + "-" + prop.Suffix,
					Value: prop.Value,
				})
			}
			continue
		}
		decls = append(decls, Declaration{Name: name, Value: tok.Value})
	}
	return decls
}

// String renders declarations as a stylesheet with a single :root rule,
// one declaration per line.
func String(decls []Declaration) string {
	var sb strings.Builder
	sb.WriteString(":root {\n")
	for _, d := range decls {
		sb.WriteString("  ")
		sb.WriteString(d.Name)
		sb.WriteString(": ")
		sb.WriteString(d.Value)
		sb.WriteString(";\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}

// Formatter outputs CSS custom properties with a :root selector.
type Formatter struct{}

// New creates a new CSS formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts tokens to a CSS stylesheet.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	return []byte(String(Variables(tokens, opts))), nil
}
