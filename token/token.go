/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the design token types shared by the pipeline.
package token

import "strings"

// Token types produced by the parser. Every token carries exactly one
// of these; any other type fails validation.
const (
	TypeColor        = "color"
	TypeSpacing      = "spacing"
	TypeTypography   = "typography"
	TypeShadow       = "shadow"
	TypeBorderRadius = "borderRadius"
)

// Types lists the supported token types in category order.
func Types() []string {
	return []string{TypeColor, TypeSpacing, TypeTypography, TypeShadow, TypeBorderRadius}
}

// Token represents a single design token. Tokens are constructed by the
// parser and not mutated afterwards.
type Token struct {
	// Name is the token's identifier (e.g., "color-primary").
	Name string `json:"name"`

	// Type is one of the Type* constants.
	Type string `json:"type"`

	// Value is the CSS value string. Empty for typography tokens,
	// which carry their value in Typography instead.
	Value string `json:"value,omitempty"`

	// Typography holds the composite value for typography tokens.
	Typography *TypographyValue `json:"typography,omitempty"`

	// Description is optional documentation for the token.
	Description string `json:"description,omitempty"`

	// FilePath is the file this token was loaded from.
	FilePath string `json:"-"`

	// Prefix is the CSS variable prefix for this token.
	Prefix string `json:"-"`

	// Path is the source path to this token (e.g., ["color", "primary"]).
	Path []string `json:"-"`
}

// CSSVariableName returns the CSS custom property name for this token.
// e.g., "--color-primary" or "--my-prefix-color-primary"
func (t *Token) CSSVariableName() string {
	if t.Name == "" {
		return ""
	}
	name := strings.ReplaceAll(t.Name, ".", "-")
	if t.Prefix != "" {
		prefix := strings.ReplaceAll(t.Prefix, ".", "-")
		return "--" + prefix + "-" + name
	}
	return "--" + name
}

// DotPath returns the dot-separated source path to this token.
func (t *Token) DotPath() string {
	return strings.Join(t.Path, ".")
}

// DisplayValue returns a single-line rendering of the token's value.
func (t *Token) DisplayValue() string {
	if t.Typography != nil {
		return t.Typography.String()
	}
	return t.Value
}
