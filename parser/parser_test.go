/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"errors"
	"testing"

	"bennypowers.dev/nol/format"
	"bennypowers.dev/nol/internal/mapfs"
	"bennypowers.dev/nol/parser"
	"bennypowers.dev/nol/token"
)

func parse(t *testing.T, data string, opts parser.Options) []*token.Token {
	t.Helper()
	tokens, err := parser.NewJSONParser().Parse([]byte(data), opts)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return tokens
}

func findToken(t *testing.T, tokens []*token.Token, name string) *token.Token {
	t.Helper()
	for _, tok := range tokens {
		if tok.Name == name {
			return tok
		}
	}
	t.Fatalf("token %q not found; have %v", name, tokenNames(tokens))
	return nil
}

func tokenNames(tokens []*token.Token) []string {
	names := make([]string, len(tokens))
	for i, tok := range tokens {
		names[i] = tok.Name
	}
	return names
}

func TestParse_W3CColors(t *testing.T) {
	data := `{
		"color": {
			"$type": "color",
			"primary": {"$value": "#0066cc", "$description": "Brand primary"},
			"secondary": {"$value": "rgb(0, 255, 0)", "$type": "color"},
			"accent": {"$value": "{color.primary}"}
		}
	}`
	tokens := parse(t, data, parser.Options{})

	primary := findToken(t, tokens, "color-primary")
	if primary.Type != token.TypeColor {
		t.Errorf("Type = %q, want %q", primary.Type, token.TypeColor)
	}
	if primary.Value != "#0066cc" {
		t.Errorf("Value = %q, want %q", primary.Value, "#0066cc")
	}
	if primary.Description != "Brand primary" {
		t.Errorf("Description = %q, want %q", primary.Description, "Brand primary")
	}
	if got := primary.DotPath(); got != "color.primary" {
		t.Errorf("DotPath() = %q, want %q", got, "color.primary")
	}

	if v := findToken(t, tokens, "color-secondary").Value; v != "rgb(0, 255, 0)" {
		t.Errorf("secondary Value = %q, want pass-through", v)
	}
	if v := findToken(t, tokens, "color-accent").Value; v != "{color.primary}" {
		t.Errorf("accent Value = %q, want reference pass-through", v)
	}
}

func TestParse_W3CSpacing(t *testing.T) {
	data := `{
		"spacing": {
			"sm": {"$value": 8, "$type": "spacing"},
			"md": {"$value": 16, "$type": "dimension"},
			"lg": {"$value": "2rem", "$type": "dimension"}
		},
		"border-width-thin": {"$value": 1, "$type": "dimension"},
		"border-radius-md": {"$value": 8, "$type": "dimension"}
	}`
	tokens := parse(t, data, parser.Options{})

	tests := []struct {
		name  string
		typ   string
		value string
	}{
		{"spacing-sm", token.TypeSpacing, "0.5rem"},
		{"spacing-md", token.TypeSpacing, "1rem"},
		{"spacing-lg", token.TypeSpacing, "2rem"},
		{"border-width-thin", token.TypeSpacing, "1px"},
		{"border-radius-md", token.TypeBorderRadius, "0.5rem"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := findToken(t, tokens, tt.name)
			if tok.Type != tt.typ {
				t.Errorf("Type = %q, want %q", tok.Type, tt.typ)
			}
			if tok.Value != tt.value {
				t.Errorf("Value = %q, want %q", tok.Value, tt.value)
			}
		})
	}
}

func TestParse_W3CNumberSniffing(t *testing.T) {
	data := `{
		"gutter-width": {"$value": 24, "$type": "number"},
		"icon-size": {"$value": 16, "$type": "number"},
		"margin-page": {"$value": 32, "$type": "number"},
		"spacing-xl": {"$value": 40, "$type": "number"},
		"radius-pill": {"$value": 999, "$type": "number"},
		"card-border-width": {"$value": 2, "$type": "number"},
		"opacity-half": {"$value": 0.5, "$type": "number"}
	}`
	tokens := parse(t, data, parser.Options{})

	tests := []struct {
		name  string
		typ   string
		value string
	}{
		{"gutter-width", token.TypeSpacing, "1.5rem"},
		{"icon-size", token.TypeSpacing, "1rem"},
		{"margin-page", token.TypeSpacing, "2rem"},
		{"spacing-xl", token.TypeSpacing, "2.5rem"},
		{"radius-pill", token.TypeBorderRadius, "62.4375rem"},
		{"card-border-width", token.TypeSpacing, "2px"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := findToken(t, tokens, tt.name)
			if tok.Type != tt.typ {
				t.Errorf("Type = %q, want %q", tok.Type, tt.typ)
			}
			if tok.Value != tt.value {
				t.Errorf("Value = %q, want %q", tok.Value, tt.value)
			}
		})
	}

	t.Run("numbers with no spacing-like name are dropped", func(t *testing.T) {
		for _, tok := range tokens {
			if tok.Name == "opacity-half" {
				t.Error("opacity-half should not be emitted")
			}
		}
	})
}

func TestParse_TypographyGrouping(t *testing.T) {
	t.Run("groups font sub-properties", func(t *testing.T) {
		data := `{
			"font-heading-xl-family": {"$value": "Inter", "$type": "text"},
			"font-heading-xl-size": {"$value": 24, "$type": "number"},
			"font-heading-xl-line-height": {"$value": 32, "$type": "number"},
			"color-accent": {"$value": "#ff0000", "$type": "color"}
		}`
		tokens := parse(t, data, parser.Options{})

		if len(tokens) != 2 {
			t.Fatalf("len(tokens) = %d, want 2; have %v", len(tokens), tokenNames(tokens))
		}

		heading := findToken(t, tokens, "font-heading-xl")
		if heading.Type != token.TypeTypography {
			t.Errorf("Type = %q, want %q", heading.Type, token.TypeTypography)
		}
		tv := heading.Typography
		if tv == nil {
			t.Fatal("Typography = nil")
		}
		if tv.FontFamily != "Inter" {
			t.Errorf("FontFamily = %q, want %q", tv.FontFamily, "Inter")
		}
		if tv.FontSize != "1.5rem" {
			t.Errorf("FontSize = %q, want %q", tv.FontSize, "1.5rem")
		}
		if tv.LineHeight != "1.333" {
			t.Errorf("LineHeight = %q, want %q", tv.LineHeight, "1.333")
		}
		if tv.FontWeight != "" {
			t.Errorf("FontWeight = %q, want empty", tv.FontWeight)
		}
	})

	t.Run("group takes position of first sub-property", func(t *testing.T) {
		data := `{
			"font-body-family": {"$value": "Georgia", "$type": "text"},
			"font-body-size": {"$value": 16, "$type": "number"},
			"zz-color": {"$value": "#000000", "$type": "color"}
		}`
		tokens := parse(t, data, parser.Options{})
		if len(tokens) != 2 {
			t.Fatalf("len(tokens) = %d, want 2", len(tokens))
		}
		if tokens[0].Name != "font-body" || tokens[1].Name != "zz-color" {
			t.Errorf("order = %v, want [font-body zz-color]", tokenNames(tokens))
		}
	})

	t.Run("weight and letter spacing", func(t *testing.T) {
		data := `{
			"font-caps-family": {"$value": "Inter", "$type": "text"},
			"font-caps-size": {"$value": 12, "$type": "number"},
			"font-caps-weight": {"$value": 600, "$type": "number"},
			"font-caps-letter-spacing": {"$value": -0.5, "$type": "number"}
		}`
		tokens := parse(t, data, parser.Options{})
		tv := findToken(t, tokens, "font-caps").Typography
		if tv.FontWeight != "600" {
			t.Errorf("FontWeight = %q, want %q", tv.FontWeight, "600")
		}
		if tv.LetterSpacing != "-0.03125em" {
			t.Errorf("LetterSpacing = %q, want %q", tv.LetterSpacing, "-0.03125em")
		}
		if tv.FontSize != "0.75rem" {
			t.Errorf("FontSize = %q, want %q", tv.FontSize, "0.75rem")
		}
	})

	t.Run("line height defaults to 1.5 without pixel values", func(t *testing.T) {
		data := `{
			"font-body-family": {"$value": "Georgia", "$type": "text"},
			"font-body-size": {"$value": 16, "$type": "number"}
		}`
		tokens := parse(t, data, parser.Options{})
		if lh := findToken(t, tokens, "font-body").Typography.LineHeight; lh != "1.5" {
			t.Errorf("LineHeight = %q, want %q", lh, "1.5")
		}
	})

	t.Run("line height defaults to 1.5 for string sizes", func(t *testing.T) {
		data := `{
			"font-body-family": {"$value": "Georgia", "$type": "text"},
			"font-body-size": {"$value": "1rem", "$type": "text"},
			"font-body-line-height": {"$value": 24, "$type": "number"}
		}`
		tokens := parse(t, data, parser.Options{})
		tv := findToken(t, tokens, "font-body").Typography
		if tv.FontSize != "1rem" {
			t.Errorf("FontSize = %q, want %q", tv.FontSize, "1rem")
		}
		if tv.LineHeight != "1.5" {
			t.Errorf("LineHeight = %q, want %q", tv.LineHeight, "1.5")
		}
	})

	t.Run("line height defaults to 1.5 for zero size", func(t *testing.T) {
		data := `{
			"font-broken-family": {"$value": "Inter", "$type": "text"},
			"font-broken-size": {"$value": 0, "$type": "number"},
			"font-broken-line-height": {"$value": 24, "$type": "number"}
		}`
		tokens := parse(t, data, parser.Options{})
		if lh := findToken(t, tokens, "font-broken").Typography.LineHeight; lh != "1.5" {
			t.Errorf("LineHeight = %q, want %q", lh, "1.5")
		}
	})

	t.Run("group missing family is dropped", func(t *testing.T) {
		data := `{
			"font-body-size": {"$value": 16, "$type": "number"},
			"font-body-line-height": {"$value": 24, "$type": "number"},
			"color-keep": {"$value": "#ffffff", "$type": "color"}
		}`
		tokens := parse(t, data, parser.Options{})
		if len(tokens) != 1 || tokens[0].Name != "color-keep" {
			t.Errorf("tokens = %v, want only color-keep", tokenNames(tokens))
		}
	})

	t.Run("group missing size is dropped", func(t *testing.T) {
		data := `{
			"font-body-family": {"$value": "Georgia", "$type": "text"},
			"color-keep": {"$value": "#ffffff", "$type": "color"}
		}`
		tokens := parse(t, data, parser.Options{})
		if len(tokens) != 1 || tokens[0].Name != "color-keep" {
			t.Errorf("tokens = %v, want only color-keep", tokenNames(tokens))
		}
	})

	t.Run("nested font groups build the same names", func(t *testing.T) {
		data := `{
			"font": {
				"display": {
					"family": {"$value": "Inter", "$type": "text"},
					"size": {"$value": 48, "$type": "number"},
					"line-height": {"$value": 56, "$type": "number"}
				}
			}
		}`
		tokens := parse(t, data, parser.Options{})
		display := findToken(t, tokens, "font-display")
		if display.Typography.FontSize != "3rem" {
			t.Errorf("FontSize = %q, want %q", display.Typography.FontSize, "3rem")
		}
		if display.Typography.LineHeight != "1.167" {
			t.Errorf("LineHeight = %q, want %q", display.Typography.LineHeight, "1.167")
		}
		if got := display.DotPath(); got != "font.display" {
			t.Errorf("DotPath() = %q, want %q", got, "font.display")
		}
	})

	t.Run("text outside font groups is dropped", func(t *testing.T) {
		data := `{
			"brand-voice": {"$value": "casual", "$type": "text"},
			"color-keep": {"$value": "#ffffff", "$type": "color"}
		}`
		tokens := parse(t, data, parser.Options{})
		if len(tokens) != 1 || tokens[0].Name != "color-keep" {
			t.Errorf("tokens = %v, want only color-keep", tokenNames(tokens))
		}
	})
}

func TestParse_W3CCompositeTypography(t *testing.T) {
	data := `{
		"typography-heading": {
			"$type": "typography",
			"$value": {
				"fontFamily": ["Inter", "Comic Sans MS"],
				"fontSize": 24,
				"fontWeight": 600,
				"lineHeight": 32,
				"letterSpacing": -0.5
			}
		}
	}`
	tokens := parse(t, data, parser.Options{})

	tv := findToken(t, tokens, "typography-heading").Typography
	if tv == nil {
		t.Fatal("Typography = nil")
	}
	if want := `Inter, "Comic Sans MS"`; tv.FontFamily != want {
		t.Errorf("FontFamily = %q, want %q", tv.FontFamily, want)
	}
	if tv.FontSize != "1.5rem" {
		t.Errorf("FontSize = %q, want %q", tv.FontSize, "1.5rem")
	}
	if tv.FontWeight != "600" {
		t.Errorf("FontWeight = %q, want %q", tv.FontWeight, "600")
	}
	if tv.LineHeight != "2rem" {
		t.Errorf("LineHeight = %q, want %q", tv.LineHeight, "2rem")
	}
	if tv.LetterSpacing != "-0.03125em" {
		t.Errorf("LetterSpacing = %q, want %q", tv.LetterSpacing, "-0.03125em")
	}
}

func TestParse_W3CShadow(t *testing.T) {
	t.Run("string passes through", func(t *testing.T) {
		data := `{"shadow-sm": {"$value": "0 1px 2px rgba(0,0,0,0.05)", "$type": "shadow"}}`
		tokens := parse(t, data, parser.Options{})
		if v := findToken(t, tokens, "shadow-sm").Value; v != "0 1px 2px rgba(0,0,0,0.05)" {
			t.Errorf("Value = %q", v)
		}
	})

	t.Run("composite object renders", func(t *testing.T) {
		data := `{
			"shadow-card": {
				"$type": "shadow",
				"$value": {"offsetX": 0, "offsetY": 4, "blur": 16, "spread": 2, "color": "#00000033"}
			}
		}`
		tokens := parse(t, data, parser.Options{})
		if v := findToken(t, tokens, "shadow-card").Value; v != "0px 4px 16px 2px #00000033" {
			t.Errorf("Value = %q, want %q", v, "0px 4px 16px 2px #00000033")
		}
	})

	t.Run("layered shadows join with commas", func(t *testing.T) {
		data := `{
			"shadow-elevated": {
				"$type": "shadow",
				"$value": [
					{"offsetX": 0, "offsetY": 2, "blur": 4, "color": "rgba(0,0,0,0.1)"},
					{"offsetX": 0, "offsetY": 4, "blur": 8, "color": "rgba(0,0,0,0.2)"}
				]
			}
		}`
		tokens := parse(t, data, parser.Options{})
		want := "0px 2px 4px rgba(0,0,0,0.1), 0px 4px 8px rgba(0,0,0,0.2)"
		if v := findToken(t, tokens, "shadow-elevated").Value; v != want {
			t.Errorf("Value = %q, want %q", v, want)
		}
	})
}

func TestParse_FigmaColorComponents(t *testing.T) {
	t.Run("opaque", func(t *testing.T) {
		data := `{"color-brand": {"$type": "color", "$value": {"r": 1, "g": 0.4, "b": 0.2, "a": 1}}}`
		tokens := parse(t, data, parser.Options{})
		if v := findToken(t, tokens, "color-brand").Value; v != "#ff6633" {
			t.Errorf("Value = %q, want %q", v, "#ff6633")
		}
	})

	t.Run("translucent uses 8-digit hex", func(t *testing.T) {
		data := `{"color-overlay": {"$type": "color", "$value": {"r": 0, "g": 0, "b": 0, "a": 0.5}}}`
		tokens := parse(t, data, parser.Options{})
		if v := findToken(t, tokens, "color-overlay").Value; v != "#00000080" {
			t.Errorf("Value = %q, want %q", v, "#00000080")
		}
	})
}

func TestParse_Legacy(t *testing.T) {
	data := `{
		"tokens": {
			"colors": {
				"color-primary": {"value": "#0066cc", "type": "color", "description": "Brand"},
				"color-figma": {"value": {"r": 0, "g": 0.4, "b": 0.8, "a": 1}, "type": "color"}
			},
			"spacing": {
				"spacing-sm": {"value": "0.5rem", "type": "spacing"},
				"spacing-untyped": {"value": "1rem"}
			},
			"typography": {
				"typography-body": {
					"value": {"fontFamily": "Georgia", "fontSize": "1rem", "fontWeight": "400", "lineHeight": "1.5"},
					"type": "typography"
				}
			},
			"shadows": {
				"shadow-card": {"value": "0 1px 2px rgba(0,0,0,0.1)", "type": "shadow"}
			},
			"radii": {
				"radius-md": {"value": "0.5rem", "type": "borderRadius"}
			}
		}
	}`
	tokens := parse(t, data, parser.Options{})

	if len(tokens) != 7 {
		t.Fatalf("len(tokens) = %d, want 7; have %v", len(tokens), tokenNames(tokens))
	}

	t.Run("categories flatten in order", func(t *testing.T) {
		want := []string{"color-figma", "color-primary", "spacing-sm", "spacing-untyped", "typography-body", "shadow-card", "radius-md"}
		for i, name := range want {
			if tokens[i].Name != name {
				t.Errorf("tokens[%d].Name = %q, want %q", i, tokens[i].Name, name)
			}
		}
	})

	t.Run("declared types are trusted", func(t *testing.T) {
		if typ := findToken(t, tokens, "radius-md").Type; typ != token.TypeBorderRadius {
			t.Errorf("Type = %q, want %q", typ, token.TypeBorderRadius)
		}
	})

	t.Run("missing type falls back to category", func(t *testing.T) {
		if typ := findToken(t, tokens, "spacing-untyped").Type; typ != token.TypeSpacing {
			t.Errorf("Type = %q, want %q", typ, token.TypeSpacing)
		}
	})

	t.Run("figma color components convert", func(t *testing.T) {
		if v := findToken(t, tokens, "color-figma").Value; v != "#0066cc" {
			t.Errorf("Value = %q, want %q", v, "#0066cc")
		}
	})

	t.Run("typography value carries through", func(t *testing.T) {
		tv := findToken(t, tokens, "typography-body").Typography
		if tv == nil {
			t.Fatal("Typography = nil")
		}
		if tv.FontFamily != "Georgia" || tv.FontSize != "1rem" {
			t.Errorf("Typography = %+v", tv)
		}
	})

	t.Run("path records category", func(t *testing.T) {
		if got := findToken(t, tokens, "color-primary").DotPath(); got != "colors.color-primary" {
			t.Errorf("DotPath() = %q, want %q", got, "colors.color-primary")
		}
	})
}

func TestParse_Documents(t *testing.T) {
	t.Run("JSONC comments are stripped", func(t *testing.T) {
		data := `{
			// brand palette
			"color-primary": {"$value": "#0066cc", "$type": "color"},
			/* spacing scale */
			"spacing-sm": {"$value": 8, "$type": "spacing"},
		}`
		tokens := parse(t, data, parser.Options{})
		if len(tokens) != 2 {
			t.Errorf("len(tokens) = %d, want 2", len(tokens))
		}
	})

	t.Run("YAML documents parse", func(t *testing.T) {
		data := "color:\n  primary:\n    $value: '#0066cc'\n    $type: color\n"
		tokens := parse(t, data, parser.Options{})
		if v := findToken(t, tokens, "color-primary").Value; v != "#0066cc" {
			t.Errorf("Value = %q, want %q", v, "#0066cc")
		}
	})

	t.Run("format override forces the legacy path", func(t *testing.T) {
		data := `{
			"tokens": {
				"colors": {"color-primary": {"value": "#0066cc", "type": "color"}}
			},
			"theme": {"accent": {"$value": "#ff0000", "$type": "color"}}
		}`
		tokens := parse(t, data, parser.Options{Format: format.Legacy})
		if len(tokens) != 1 || tokens[0].Name != "color-primary" {
			t.Errorf("tokens = %v, want only color-primary", tokenNames(tokens))
		}
	})

	t.Run("prefix applies to every token", func(t *testing.T) {
		data := `{"color-primary": {"$value": "#0066cc", "$type": "color"}}`
		tokens := parse(t, data, parser.Options{Prefix: "ds"})
		if got := tokens[0].CSSVariableName(); got != "--ds-color-primary" {
			t.Errorf("CSSVariableName() = %q, want %q", got, "--ds-color-primary")
		}
	})
}

func TestParse_Errors(t *testing.T) {
	p := parser.NewJSONParser()

	t.Run("malformed JSON", func(t *testing.T) {
		if _, err := p.Parse([]byte(`{bad json`), parser.Options{}); err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("non-object document", func(t *testing.T) {
		_, err := p.Parse([]byte(`[1, 2, 3]`), parser.Options{})
		if !errors.Is(err, format.ErrInvalidDocument) {
			t.Errorf("error = %v, want ErrInvalidDocument", err)
		}
	})

	t.Run("undetectable format", func(t *testing.T) {
		_, err := p.Parse([]byte(`{"colors": {"primary": "#fff"}}`), parser.Options{})
		if !errors.Is(err, format.ErrUnknownFormat) {
			t.Errorf("error = %v, want ErrUnknownFormat", err)
		}
	})

	t.Run("legacy tokens property must be an object", func(t *testing.T) {
		_, err := p.Parse([]byte(`{"tokens": 3}`), parser.Options{})
		if !errors.Is(err, format.ErrInvalidDocument) {
			t.Errorf("error = %v, want ErrInvalidDocument", err)
		}
	})

	t.Run("empty legacy categories yield no tokens", func(t *testing.T) {
		_, err := p.Parse([]byte(`{"tokens": {"colors": {}}}`), parser.Options{})
		if !errors.Is(err, format.ErrNoTokens) {
			t.Errorf("error = %v, want ErrNoTokens", err)
		}
	})

	t.Run("w3c document of dropped tokens yields no tokens", func(t *testing.T) {
		_, err := p.Parse([]byte(`{"opacity-half": {"$value": 0.5, "$type": "number"}}`), parser.Options{})
		if !errors.Is(err, format.ErrNoTokens) {
			t.Errorf("error = %v, want ErrNoTokens", err)
		}
	})
}

func TestParse_UnknownTypePassesThrough(t *testing.T) {
	// Unsupported types surface in the token list so validation can
	// report them by name.
	data := `{"duration-fast": {"$value": "150ms", "$type": "duration"}}`
	tokens := parse(t, data, parser.Options{})
	tok := findToken(t, tokens, "duration-fast")
	if tok.Type != "duration" {
		t.Errorf("Type = %q, want %q", tok.Type, "duration")
	}
	if tok.Value != "150ms" {
		t.Errorf("Value = %q, want %q", tok.Value, "150ms")
	}
}

func TestParse_Deterministic(t *testing.T) {
	data := `{
		"color": {"$type": "color", "b": {"$value": "#000001"}, "a": {"$value": "#000002"}},
		"spacing": {"sm": {"$value": 8, "$type": "spacing"}}
	}`
	p := parser.NewJSONParser()

	first, err := p.Parse([]byte(data), parser.Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	second, err := p.Parse([]byte(data), parser.Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Name != second[i].Name || first[i].Value != second[i].Value {
			t.Errorf("run mismatch at %d: %v vs %v", i, first[i], second[i])
		}
	}

	want := []string{"color-a", "color-b", "spacing-sm"}
	for i, name := range want {
		if first[i].Name != name {
			t.Errorf("tokens[%d].Name = %q, want %q (sorted sibling order)", i, first[i].Name, name)
		}
	}
}

func TestParseFile(t *testing.T) {
	fsys := mapfs.New()
	fsys.AddFile("tokens/base.json", `{"color-primary": {"$value": "#0066cc", "$type": "color"}}`, 0644)

	tokens, err := parser.NewJSONParser().ParseFile(fsys, "tokens/base.json", parser.Options{})
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("len(tokens) = %d, want 1", len(tokens))
	}
	if tokens[0].FilePath != "tokens/base.json" {
		t.Errorf("FilePath = %q, want %q", tokens[0].FilePath, "tokens/base.json")
	}

	t.Run("missing file", func(t *testing.T) {
		if _, err := parser.NewJSONParser().ParseFile(fsys, "tokens/missing.json", parser.Options{}); err == nil {
			t.Error("expected an error")
		}
	})
}
