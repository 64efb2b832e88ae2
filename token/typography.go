/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "strings"

// TypographyValue is the composite value of a typography token. All
// fields are CSS value strings; absent optional properties are empty.
type TypographyValue struct {
	FontFamily    string `json:"fontFamily,omitempty"`
	FontSize      string `json:"fontSize,omitempty"`
	FontWeight    string `json:"fontWeight,omitempty"`
	LineHeight    string `json:"lineHeight,omitempty"`
	LetterSpacing string `json:"letterSpacing,omitempty"`
}

// Property is one present property of a typography value.
type Property struct {
	// Key is the camelCase property name (e.g., "fontFamily").
	Key string

	// Suffix is the CSS variable name suffix (e.g., "family").
	Suffix string

	// Value is the CSS value string.
	Value string
}

// Properties returns the present properties in canonical order:
// family, size, weight, line-height, letter-spacing.
func (v *TypographyValue) Properties() []Property {
	all := []Property{
		{Key: "fontFamily", Suffix: "family", Value: v.FontFamily},
		{Key: "fontSize", Suffix: "size", Value: v.FontSize},
		{Key: "fontWeight", Suffix: "weight", Value: v.FontWeight},
		{Key: "lineHeight", Suffix: "line-height", Value: v.LineHeight},
		{Key: "letterSpacing", Suffix: "letter-spacing", Value: v.LetterSpacing},
	}
	present := make([]Property, 0, len(all))
	for _, p := range all {
		if p.Value != "" {
			present = append(present, p)
		}
	}
	return present
}

// String renders the value in CSS font shorthand order:
// weight size/line-height family.
func (v *TypographyValue) String() string {
	var parts []string
	if v.FontWeight != "" {
		parts = append(parts, v.FontWeight)
	}
	size := v.FontSize
	if size != "" && v.LineHeight != "" {
		size += "/" + v.LineHeight
	}
	if size != "" {
		parts = append(parts, size)
	}
	if v.FontFamily != "" {
		parts = append(parts, v.FontFamily)
	}
	return strings.Join(parts, " ")
}
