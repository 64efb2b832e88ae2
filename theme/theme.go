/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package theme maps validated design tokens into a theme-extension
// object consumable by CSS utility frameworks.
package theme

import (
	"bytes"
	"encoding/json"
	"strings"

	"bennypowers.dev/nol/token"
)

// Entry is one named value within a theme category. Slices of entries
// preserve token list order, which Go maps would not.
type Entry struct {
	Key   string
	Value string
}

// TypographyEntry is one named composite typography value.
type TypographyEntry struct {
	Key   string
	Value *token.TypographyValue
}

// Extension groups tokens by category for a framework theme
// configuration.
type Extension struct {
	Colors     []Entry
	Spacing    []Entry
	Typography []TypographyEntry
	Shadows    []Entry
	Radii      []Entry
}

// categoryPrefixes lists the name prefixes stripped from keys within
// each category, most specific first.
var categoryPrefixes = map[string][]string{
	token.TypeColor:        {"color-"},
	token.TypeSpacing:      {"spacing-"},
	token.TypeTypography:   {"typography-", "font-"},
	token.TypeShadow:       {"shadow-"},
	token.TypeBorderRadius: {"border-radius-", "radius-"},
}

// FromTokens maps a flat token list into an Extension. The input is
// assumed validated; entries keep token order and their keys drop the
// category prefix. Tokens of an unrecognized type are skipped.
func FromTokens(tokens []*token.Token) *Extension {
	ext := &Extension{}
	for _, tok := range tokens {
		key := categoryKey(tok.Name, tok.Type)
		switch tok.Type {
		case token.TypeColor:
			ext.Colors = append(ext.Colors, Entry{Key: key, Value: tok.Value})
		case token.TypeSpacing:
			ext.Spacing = append(ext.Spacing, Entry{Key: key, Value: tok.Value})
		case token.TypeTypography:
			ext.Typography = append(ext.Typography, TypographyEntry{Key: key, Value: tok.Typography})
		case token.TypeShadow:
			ext.Shadows = append(ext.Shadows, Entry{Key: key, Value: tok.Value})
		case token.TypeBorderRadius:
			ext.Radii = append(ext.Radii, Entry{Key: key, Value: tok.Value})
		}
	}
	return ext
}

// categoryKey strips the category prefix from a token name. A name
// that would be reduced to nothing keeps its original form.
func categoryKey(name, typ string) string {
	for _, prefix := range categoryPrefixes[typ] {
		if rest := strings.TrimPrefix(name, prefix); rest != name && rest != "" {
			return rest
		}
	}
	return name
}

// MarshalJSON emits categories and keys in token order.
func (e *Extension) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	buf.WriteString(`"colors":`)
	if err := writeEntries(&buf, e.Colors); err != nil {
		return nil, err
	}
	buf.WriteString(`,"spacing":`)
	if err := writeEntries(&buf, e.Spacing); err != nil {
		return nil, err
	}
	buf.WriteString(`,"typography":`)
	if err := writeTypography(&buf, e.Typography); err != nil {
		return nil, err
	}
	buf.WriteString(`,"shadows":`)
	if err := writeEntries(&buf, e.Shadows); err != nil {
		return nil, err
	}
	buf.WriteString(`,"radii":`)
	if err := writeEntries(&buf, e.Radii); err != nil {
		return nil, err
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeEntries(buf *bytes.Buffer, entries []Entry) error {
	buf.WriteByte('{')
	for i, entry := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writePair(buf, entry.Key, entry.Value); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeTypography(buf *bytes.Buffer, entries []TypographyEntry) error {
	buf.WriteByte('{')
	for i, entry := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writePair(buf, entry.Key, entry.Value); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writePair(buf *bytes.Buffer, key string, value any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(v)
	return nil
}
