/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"bennypowers.dev/nol/token"
	"github.com/lucasb-eyer/go-colorful"
)

// toNumber extracts a float from the numeric types JSON and YAML
// decoding produce.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// formatNumber renders a float with the shortest decimal
// representation that round-trips.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// remString converts a numeric pixel value to rem on the 16px basis.
// String values pass through untouched.
func remString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	if n, ok := toNumber(value); ok {
		return formatNumber(n/16) + "rem"
	}
	return ""
}

// emString converts a numeric pixel value to em on the 16px basis.
// String values pass through untouched.
func emString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	if n, ok := toNumber(value); ok {
		return formatNumber(n/16) + "em"
	}
	return ""
}

// pxString keeps a numeric value in pixels.
func pxString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	if n, ok := toNumber(value); ok {
		return formatNumber(n) + "px"
	}
	return ""
}

// plainString renders a scalar value without unit conversion.
func plainString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	}
	if n, ok := toNumber(value); ok {
		return formatNumber(n)
	}
	return ""
}

// colorString renders a color value. Strings pass through; Figma-style
// component objects with 0-1 r/g/b/a floats convert to hex, using the
// 8-digit form when alpha is below 1.
func colorString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	m, ok := value.(map[string]any)
	if !ok {
		return ""
	}
	r, rok := toNumber(m["r"])
	g, gok := toNumber(m["g"])
	b, bok := toNumber(m["b"])
	if !rok || !gok || !bok {
		return ""
	}
	c := colorful.Color{R: clamp01(r), G: clamp01(g), B: clamp01(b)}
	hex := c.Hex()
	if a, ok := toNumber(m["a"]); ok && a < 1 {
		hex = fmt.Sprintf("%s%02x", hex, int(math.Round(clamp01(a)*255)))
	}
	return hex
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// shadowString renders a shadow value. Strings pass through; composite
// objects render as "offsetX offsetY blur spread color", and arrays
// render as comma-separated layers.
func shadowString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]any:
		return shadowLayer(v)
	case []any:
		layers := make([]string, 0, len(v))
		for _, layer := range v {
			if m, ok := layer.(map[string]any); ok {
				layers = append(layers, shadowLayer(m))
			}
		}
		return strings.Join(layers, ", ")
	}
	return ""
}

func shadowLayer(m map[string]any) string {
	var parts []string
	for _, key := range []string{"offsetX", "offsetY", "blur", "spread"} {
		if v, ok := m[key]; ok {
			parts = append(parts, pxString(v))
		}
	}
	if color, ok := m["color"]; ok {
		parts = append(parts, colorString(color))
	}
	return strings.Join(parts, " ")
}

// fontFamilyString renders a font family value. Arrays join into a
// CSS font stack, quoting names that contain spaces.
func fontFamilyString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []any:
		families := make([]string, 0, len(v))
		for _, f := range v {
			s, ok := f.(string)
			if !ok {
				continue
			}
			if strings.Contains(s, " ") {
				s = `"` + s + `"`
			}
			families = append(families, s)
		}
		return strings.Join(families, ", ")
	}
	return plainString(value)
}

// typographyValue builds a composite typography value from an object.
// Numeric sizes and line heights convert to rem and letter spacing to
// em, all on the 16px basis; fontWeight passes through unchanged.
func typographyValue(value any) *token.TypographyValue {
	m, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	tv := &token.TypographyValue{}
	if v, ok := m["fontFamily"]; ok {
		tv.FontFamily = fontFamilyString(v)
	}
	if v, ok := m["fontSize"]; ok {
		tv.FontSize = remString(v)
	}
	if v, ok := m["fontWeight"]; ok {
		tv.FontWeight = plainString(v)
	}
	if v, ok := m["lineHeight"]; ok {
		tv.LineHeight = remString(v)
	}
	if v, ok := m["letterSpacing"]; ok {
		tv.LetterSpacing = emString(v)
	}
	return tv
}
