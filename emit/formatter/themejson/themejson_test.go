/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package themejson_test

import (
	"testing"

	"bennypowers.dev/nol/emit/formatter"
	"bennypowers.dev/nol/emit/formatter/themejson"
	"bennypowers.dev/nol/token"
)

func TestFormat(t *testing.T) {
	tokens := []*token.Token{
		{Name: "color-primary", Type: token.TypeColor, Value: "#0066cc"},
		{Name: "radius-md", Type: token.TypeBorderRadius, Value: "0.5rem"},
	}

	got, err := themejson.New().Format(tokens, formatter.Options{})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `{
  "colors": {
    "primary": "#0066cc"
  },
  "spacing": {},
  "typography": {},
  "shadows": {},
  "radii": {
    "md": "0.5rem"
  }
}
`
	if string(got) != want {
		t.Errorf("Format() = %s, want %s", got, want)
	}
}
