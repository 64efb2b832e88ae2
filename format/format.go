/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package format provides source document format detection.
package format

import "fmt"

// Format identifies the shape of a token source document.
type Format int

const (
	// Unknown represents an undetected or unrecognized format.
	Unknown Format = iota

	// W3C is the W3C Design Tokens format: nested groups whose leaf
	// nodes carry $value together with $type (or type).
	W3C

	// Legacy is the flat export format: a top-level "tokens" object
	// holding per-category maps of name → {value, type, description}.
	Legacy
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case W3C:
		return "w3c"
	case Legacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// FromString returns the format for a string representation.
func FromString(s string) (Format, error) {
	switch s {
	case "w3c", "dtcg":
		return W3C, nil
	case "legacy", "figma":
		return Legacy, nil
	default:
		return Unknown, fmt.Errorf("%w: %s", ErrUnknownFormat, s)
	}
}
