/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tailwind_test

import (
	"testing"

	"bennypowers.dev/nol/emit/formatter"
	"bennypowers.dev/nol/emit/formatter/tailwind"
	"bennypowers.dev/nol/token"
)

func testTokens() []*token.Token {
	return []*token.Token{
		{Name: "color-primary", Type: token.TypeColor, Value: "#0066cc"},
		{Name: "spacing-sm", Type: token.TypeSpacing, Value: "0.5rem"},
		{
			Name: "font-body",
			Type: token.TypeTypography,
			Typography: &token.TypographyValue{
				FontFamily: "Georgia",
				FontSize:   "1rem",
			},
		},
	}
}

func TestFormat_ESM(t *testing.T) {
	got, err := tailwind.New().Format(testTokens(), formatter.Options{})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `export const designTokens = {
  colors: {
    "primary": "#0066cc",
  },
  spacing: {
    "sm": "0.5rem",
  },
  typography: {
    "body": {
      fontFamily: "Georgia",
      fontSize: "1rem",
    },
  },
  shadows: {},
  radii: {},
} as const;

export default designTokens;
`
	if string(got) != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormat_CJS(t *testing.T) {
	f := tailwind.NewWithOptions(tailwind.Options{Module: tailwind.ModuleCJS})
	got, err := f.Format(testTokens(), formatter.Options{})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `const designTokens = {
  colors: {
    "primary": "#0066cc",
  },
  spacing: {
    "sm": "0.5rem",
  },
  typography: {
    "body": {
      fontFamily: "Georgia",
      fontSize: "1rem",
    },
  },
  shadows: {},
  radii: {},
};

module.exports = { designTokens };
`
	if string(got) != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestExtension(t *testing.T) {
	if got := tailwind.New().Extension(); got != ".ts" {
		t.Errorf("Extension() = %q, want .ts", got)
	}
	cjs := tailwind.NewWithOptions(tailwind.Options{Module: tailwind.ModuleCJS})
	if got := cjs.Extension(); got != ".cjs" {
		t.Errorf("Extension() = %q, want .cjs", got)
	}
}
