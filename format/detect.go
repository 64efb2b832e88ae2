/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package format

import (
	"fmt"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Detect determines the format of a parsed token document.
// A document is W3C when any node anywhere carries $value together
// with $type or type. Otherwise a top-level "tokens" property marks
// the legacy export shape. Documents matching neither are rejected.
func Detect(doc map[string]any) (Format, error) {
	if hasW3CLeaf(doc) {
		return W3C, nil
	}
	if _, ok := doc["tokens"]; ok {
		return Legacy, nil
	}
	return Unknown, ErrUnknownFormat
}

// DetectBytes parses content as YAML/JSON and detects its format.
// JSON comments are stripped first, so detection accepts exactly the
// documents the parser accepts.
func DetectBytes(content []byte) (Format, error) {
	if looksLikeJSON(content) {
		content = jsonc.ToJSON(content)
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return Unknown, fmt.Errorf("invalid YAML/JSON: %w", err)
	}
	if data == nil {
		return Unknown, ErrInvalidDocument
	}
	return Detect(data)
}

// looksLikeJSON reports whether content starts with '{' after
// whitespace or a BOM.
func looksLikeJSON(content []byte) bool {
	for _, b := range content {
		switch b {
		case ' ', '\t', '\n', '\r', 0xEF, 0xBB, 0xBF:
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// hasW3CLeaf recursively checks for a node with $value paired with
// $type or type.
func hasW3CLeaf(v any) bool {
	switch node := v.(type) {
	case map[string]any:
		if _, ok := node["$value"]; ok {
			if _, ok := node["$type"]; ok {
				return true
			}
			if _, ok := node["type"]; ok {
				return true
			}
		}
		for _, child := range node {
			if hasW3CLeaf(child) {
				return true
			}
		}
	case []any:
		for _, elem := range node {
			if hasW3CLeaf(elem) {
				return true
			}
		}
	}
	return false
}
