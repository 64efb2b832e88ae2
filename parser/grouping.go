/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"math"
	"strings"

	"bennypowers.dev/nol/token"
)

// pendingToken is the parser's intermediate representation. Internal
// entries carry text/number-tagged font sub-properties that exist only
// to feed the typography grouping pass; they never appear in parser
// output.
type pendingToken struct {
	tok *token.Token

	// internal marks a font sub-property collected for grouping.
	internal bool

	// num is the source numeric value for numeric sub-properties.
	num   float64
	isNum bool
}

// fontPropertySuffixes are the groupable sub-property name suffixes.
var fontPropertySuffixes = []string{"-family", "-size", "-weight", "-line-height", "-letter-spacing"}

// isFontProperty reports whether a token name identifies a groupable
// font sub-property: a "font-" prefix plus one of the property
// suffixes.
func isFontProperty(name string) bool {
	group, _ := splitFontProperty(name)
	return group != ""
}

// splitFontProperty splits a sub-property name into its group name and
// property suffix. Names without the "font-" prefix or a known suffix
// do not group.
func splitFontProperty(name string) (group, suffix string) {
	if !strings.HasPrefix(name, "font-") {
		return "", ""
	}
	for _, s := range fontPropertySuffixes {
		if strings.HasSuffix(name, s) && len(name) > len(s) {
			return strings.TrimSuffix(name, s), strings.TrimPrefix(s, "-")
		}
	}
	return "", ""
}

// fontGroup accumulates the sub-properties of one typography group.
type fontGroup struct {
	family        *pendingToken
	size          *pendingToken
	weight        *pendingToken
	lineHeight    *pendingToken
	letterSpacing *pendingToken
}

func (g *fontGroup) set(suffix string, pt *pendingToken) {
	switch suffix {
	case "family":
		g.family = pt
	case "size":
		g.size = pt
	case "weight":
		g.weight = pt
	case "line-height":
		g.lineHeight = pt
	case "letter-spacing":
		g.letterSpacing = pt
	}
}

// value builds the composite typography value, or nil when the group
// lacks a family or size and must be dropped. Numeric sizes convert to
// rem and letter spacing to em on the 16px basis. Line height is the
// line-height/size pixel ratio rounded to 3 decimals, defaulting to
// 1.5 when either pixel value is unavailable or the size is zero.
func (g *fontGroup) value() *token.TypographyValue {
	tv := &token.TypographyValue{}

	if g.family != nil {
		tv.FontFamily = propertyString(g.family)
	}

	sizePx := 0.0
	haveSizePx := false
	if g.size != nil {
		if g.size.isNum {
			sizePx = g.size.num
			haveSizePx = true
			tv.FontSize = formatNumber(sizePx/16) + "rem"
		} else {
			tv.FontSize = g.size.tok.Value
		}
	}

	if g.weight != nil {
		tv.FontWeight = propertyString(g.weight)
	}

	tv.LineHeight = "1.5"
	if g.lineHeight != nil && g.lineHeight.isNum && haveSizePx && sizePx != 0 {
		ratio := math.Round(g.lineHeight.num/sizePx*1000) / 1000
		tv.LineHeight = formatNumber(ratio)
	}

	if g.letterSpacing != nil {
		if g.letterSpacing.isNum {
			tv.LetterSpacing = formatNumber(g.letterSpacing.num/16) + "em"
		} else {
			tv.LetterSpacing = g.letterSpacing.tok.Value
		}
	}

	if tv.FontFamily == "" || tv.FontSize == "" {
		return nil
	}
	return tv
}

// propertyString renders a collected sub-property as a string.
// fontWeight and fontFamily numbers pass through without conversion.
func propertyString(pt *pendingToken) string {
	if pt.isNum {
		return formatNumber(pt.num)
	}
	return pt.tok.Value
}

// groupTypography merges collected font sub-properties into synthetic
// typography tokens and returns the final token list. Each group takes
// the list position of its first sub-property. No internal entry
// survives the pass: groups missing a family or size are dropped along
// with their members, as are sub-properties that never grouped.
func groupTypography(pending []pendingToken) []*token.Token {
	groups := make(map[string]*fontGroup)
	for i := range pending {
		pt := &pending[i]
		if !pt.internal {
			continue
		}
		groupName, suffix := splitFontProperty(pt.tok.Name)
		if groupName == "" {
			continue
		}
		g := groups[groupName]
		if g == nil {
			g = &fontGroup{}
			groups[groupName] = g
		}
		g.set(suffix, pt)
	}

	values := make(map[string]*token.TypographyValue, len(groups))
	for name, g := range groups {
		if tv := g.value(); tv != nil {
			values[name] = tv
		}
	}

	emitted := make(map[string]bool, len(values))
	result := make([]*token.Token, 0, len(pending))
	for i := range pending {
		pt := &pending[i]
		if !pt.internal {
			result = append(result, pt.tok)
			continue
		}

		groupName, _ := splitFontProperty(pt.tok.Name)
		tv, ok := values[groupName]
		if !ok || emitted[groupName] {
			continue
		}
		emitted[groupName] = true

		result = append(result, &token.Token{
			Name:       groupName,
			Type:       token.TypeTypography,
			Typography: tv,
			Prefix:     pt.tok.Prefix,
			FilePath:   pt.tok.FilePath,
			Path:       groupPath(pt.tok.Path, groupName),
		})
	}
	return result
}

// groupPath derives the synthetic token's source path from its first
// sub-property's path by trimming trailing segments until the joined
// path matches the group name.
func groupPath(memberPath []string, groupName string) []string {
	path := memberPath
	for len(path) > 0 && strings.Join(path, "-") != groupName {
		path = path[:len(path)-1]
	}
	if len(path) == 0 {
		return strings.Split(groupName, "-")
	}
	return path
}
