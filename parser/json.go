/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"encoding/json"
	"fmt"

	"bennypowers.dev/nol/format"
	"bennypowers.dev/nol/fs"
	"bennypowers.dev/nol/token"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// JSONParser parses JSON and YAML token documents.
type JSONParser struct{}

// NewJSONParser creates a new token document parser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse parses token data and returns the flat token list. The
// document format is detected unless opts.Format overrides it, font
// sub-properties are merged into typography tokens, and a document
// yielding zero tokens is an error.
func (p *JSONParser) Parse(data []byte, opts Options) ([]*token.Token, error) {
	raw, err := p.decode(data)
	if err != nil {
		return nil, err
	}

	f := opts.Format
	if f == format.Unknown {
		if f, err = format.Detect(raw); err != nil {
			return nil, err
		}
	}

	var pending []pendingToken
	switch f {
	case format.W3C:
		pending = p.extractW3C(raw, opts)
	case format.Legacy:
		if pending, err = p.extractLegacy(raw, opts); err != nil {
			return nil, err
		}
	default:
		return nil, format.ErrUnknownFormat
	}

	tokens := groupTypography(pending)
	if len(tokens) == 0 {
		return nil, format.ErrNoTokens
	}
	return tokens, nil
}

// decode unmarshals JSON (with comment stripping) or YAML into a
// string-keyed map.
func (p *JSONParser) decode(data []byte) (map[string]any, error) {
	if isLikelyJSON(data) {
		clean := jsonc.ToJSON(data)
		var raw map[string]any
		if err := json.Unmarshal(clean, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		return raw, nil
	}

	var yamlRaw any
	if err := yaml.Unmarshal(data, &yamlRaw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	raw, ok := normalizeMap(yamlRaw).(map[string]any)
	if !ok {
		return nil, format.ErrInvalidDocument
	}
	return raw, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON documents start with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// normalizeMap recursively converts map[interface{}]interface{} to
// map[string]any. YAML with numeric keys (like "10:") creates
// map[interface{}]interface{}, which must be normalized for our
// string-keyed processing.
func normalizeMap(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeMap(val)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, val := range x {
			result[fmt.Sprintf("%v", k)] = normalizeMap(val)
		}
		return result
	case []any:
		for i, val := range x {
			x[i] = normalizeMap(val)
		}
		return x
	default:
		return v
	}
}

// ParseFile parses a token file and returns the flat token list.
func (p *JSONParser) ParseFile(filesystem fs.FileSystem, path string, opts Options) ([]*token.Token, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	tokens, err := p.Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}

	for _, t := range tokens {
		t.FilePath = path
	}

	return tokens, nil
}
