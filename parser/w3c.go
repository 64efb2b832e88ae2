/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"slices"
	"sort"
	"strings"

	"bennypowers.dev/nol/token"
)

// extractW3C walks a W3C Design Tokens tree and collects tokens.
func (p *JSONParser) extractW3C(data map[string]any, opts Options) []pendingToken {
	var result []pendingToken
	p.walkW3C(data, nil, "", "", opts, &result)
	return result
}

// walkW3C walks the nested group tree depth-first. A node carrying
// $value is a token leaf; everything else recurses. Group-level $type
// is inherited by leaves that declare none.
func (p *JSONParser) walkW3C(data map[string]any, jsonPath []string, path, inheritedType string, opts Options, result *[]pendingToken) {
	currentType := inheritedType
	if groupType, ok := data["$type"].(string); ok {
		currentType = groupType
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		if strings.HasPrefix(k, "$") {
			continue
		}
		keys = append(keys, k)
	}
	if !opts.SkipSort {
		sort.Strings(keys)
	}

	for _, key := range keys {
		valueMap, ok := data[key].(map[string]any)
		if !ok {
			continue
		}

		currentPath, name := buildPaths(jsonPath, path, key)

		value, hasValue := valueMap["$value"]
		if hasValue {
			if pt := p.createW3CToken(name, currentPath, valueMap, value, currentType, opts); pt != nil {
				*result = append(*result, *pt)
			}
			continue
		}

		p.walkW3C(valueMap, currentPath, name, currentType, opts, result)
	}
}

// buildPaths appends key to the source path and the kebab-case name.
// The returned slice is clipped so child appends cannot mutate this
// level's path.
func buildPaths(jsonPath []string, path, key string) ([]string, string) {
	currentPath := slices.Clip(append(jsonPath, key))
	name := key
	if path != "" {
		name = path + "-" + key
	}
	return currentPath, name
}

// createW3CToken converts a token leaf using its declared (or
// inherited) type. Text and number tags are pipeline-internal: font
// sub-properties are collected for the grouping pass, bare numbers map
// onto concrete types by name, and the rest have no representable
// output. Unsupported types pass through so validation can reject them
// with the offending name attached.
func (p *JSONParser) createW3CToken(name string, path []string, valueMap map[string]any, value any, inheritedType string, opts Options) *pendingToken {
	typeStr := inheritedType
	if s, ok := valueMap["$type"].(string); ok {
		typeStr = s
	} else if s, ok := valueMap["type"].(string); ok {
		typeStr = s
	}

	description, _ := valueMap["$description"].(string)

	t := &token.Token{
		Name:        name,
		Description: description,
		Prefix:      opts.Prefix,
		Path:        path,
	}

	switch typeStr {
	case "color":
		t.Type = token.TypeColor
		t.Value = colorString(value)

	case "shadow":
		t.Type = token.TypeShadow
		t.Value = shadowString(value)

	case "dimension", "spacing":
		t.Type = token.TypeSpacing
		if strings.Contains(name, "radius") {
			t.Type = token.TypeBorderRadius
		}
		t.Value = dimensionString(name, value)

	case "borderRadius":
		t.Type = token.TypeBorderRadius
		t.Value = remString(value)

	case "typography":
		t.Type = token.TypeTypography
		if tv := typographyValue(value); tv != nil {
			t.Typography = tv
		} else if s, ok := value.(string); ok {
			t.Value = s
		}

	case "text":
		if isFontProperty(name) {
			return fontProperty(t, value)
		}
		return nil

	case "number":
		if isFontProperty(name) {
			return fontProperty(t, value)
		}
		return numberToken(t, name, value)

	default:
		t.Type = typeStr
		t.Value = plainString(value)
	}

	return &pendingToken{tok: t}
}

// fontProperty collects a font sub-property for the grouping pass.
func fontProperty(t *token.Token, value any) *pendingToken {
	if n, ok := toNumber(value); ok {
		return &pendingToken{tok: t, internal: true, num: n, isNum: true}
	}
	t.Value = plainString(value)
	return &pendingToken{tok: t, internal: true}
}

// numberToken maps a bare number token onto a concrete type by name.
// Radius names become border radii, border widths stay in px, and
// spacing-like names convert to rem on the 16px basis. Anything else
// has no representable output and is dropped.
func numberToken(t *token.Token, name string, value any) *pendingToken {
	switch {
	case strings.Contains(name, "radius"):
		t.Type = token.TypeBorderRadius
		t.Value = remString(value)
	case strings.Contains(name, "border-width"):
		t.Type = token.TypeSpacing
		t.Value = pxString(value)
	case strings.Contains(name, "spacing"),
		strings.Contains(name, "margin"),
		strings.Contains(name, "gutter"),
		strings.Contains(name, "size"):
		t.Type = token.TypeSpacing
		t.Value = remString(value)
	default:
		return nil
	}
	return &pendingToken{tok: t}
}

// dimensionString converts numeric pixel values to rem strings on the
// 16px basis. Border widths keep their pixel units, and values that
// are already strings pass through untouched.
func dimensionString(name string, value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	if strings.Contains(name, "border-width") {
		return pxString(value)
	}
	return remString(value)
}
