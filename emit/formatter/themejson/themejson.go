/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package themejson provides theme-extension JSON formatting for design tokens.
package themejson

import (
	"bytes"
	"encoding/json"

	"bennypowers.dev/nol/emit/formatter"
	"bennypowers.dev/nol/theme"
	"bennypowers.dev/nol/token"
)

// Formatter outputs the theme-extension object as indented JSON.
type Formatter struct{}

// New creates a new theme JSON formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts tokens to theme-extension JSON.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	data, err := json.Marshal(theme.FromTokens(tokens))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
