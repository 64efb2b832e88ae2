/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "strings"

// Map provides token lookup by name, CSS variable name, or dot-path.
type Map struct {
	byName map[string]*Token
	all    []*Token
}

// NewMap builds a Map from tokens, applying prefix to copies of the
// tokens. The input tokens are not modified.
func NewMap(tokens []*Token, prefix string) *Map {
	m := &Map{
		byName: make(map[string]*Token, len(tokens)*2),
		all:    make([]*Token, 0, len(tokens)),
	}
	for _, t := range tokens {
		copied := *t
		if prefix != "" {
			copied.Prefix = prefix
		}
		c := &copied
		m.all = append(m.all, c)
		m.byName[c.Name] = c
		m.byName[c.CSSVariableName()] = c
	}
	return m
}

// Get looks up a token by short name, full CSS variable name, or
// dot-path (e.g. "color.brand.primary" for "color-brand-primary").
func (m *Map) Get(name string) (*Token, bool) {
	if t, ok := m.byName[name]; ok {
		return t, true
	}
	if t, ok := m.byName[strings.ReplaceAll(name, ".", "-")]; ok {
		return t, true
	}
	return nil, false
}

// All returns the tokens in insertion order.
func (m *Map) All() []*Token {
	return m.all
}

// Len returns the number of tokens in the map.
func (m *Map) Len() int {
	return len(m.all)
}
