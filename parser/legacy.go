/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"
	"sort"

	"bennypowers.dev/nol/format"
	"bennypowers.dev/nol/token"
)

// legacyCategories maps the flat export's category keys onto token
// types, in emission order.
var legacyCategories = []struct {
	key string
	typ string
}{
	{"colors", token.TypeColor},
	{"spacing", token.TypeSpacing},
	{"typography", token.TypeTypography},
	{"shadows", token.TypeShadow},
	{"radii", token.TypeBorderRadius},
}

// extractLegacy flattens the legacy export shape: a top-level "tokens"
// object with per-category maps of name → {value, type, description}.
// Each entry's declared type is trusted; entries without one fall back
// to their category's type. Legacy values are final CSS strings, so no
// unit conversion applies.
func (p *JSONParser) extractLegacy(data map[string]any, opts Options) ([]pendingToken, error) {
	tokensMap, ok := data["tokens"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf(`legacy "tokens" property: %w`, format.ErrInvalidDocument)
	}

	var result []pendingToken
	for _, category := range legacyCategories {
		categoryMap, ok := tokensMap[category.key].(map[string]any)
		if !ok {
			continue
		}

		names := make([]string, 0, len(categoryMap))
		for name := range categoryMap {
			names = append(names, name)
		}
		if !opts.SkipSort {
			sort.Strings(names)
		}

		for _, name := range names {
			entry, ok := categoryMap[name].(map[string]any)
			if !ok {
				continue
			}
			t := p.createLegacyToken(name, category.key, category.typ, entry, opts)
			result = append(result, pendingToken{tok: t})
		}
	}
	return result, nil
}

func (p *JSONParser) createLegacyToken(name, category, categoryType string, entry map[string]any, opts Options) *token.Token {
	typeStr := categoryType
	if s, ok := entry["type"].(string); ok {
		typeStr = s
	}
	description, _ := entry["description"].(string)

	t := &token.Token{
		Name:        name,
		Type:        typeStr,
		Description: description,
		Prefix:      opts.Prefix,
		Path:        []string{category, name},
	}

	value := entry["value"]
	switch typeStr {
	case token.TypeColor:
		t.Value = colorString(value)
	case token.TypeShadow:
		t.Value = shadowString(value)
	case token.TypeTypography:
		if tv := typographyValue(value); tv != nil {
			t.Typography = tv
		} else if s, ok := value.(string); ok {
			t.Value = s
		}
	default:
		t.Value = plainString(value)
	}
	return t
}
