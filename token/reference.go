/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "strings"

// IsReference reports whether a value is a token reference like
// "{color.primary}". References are accepted by validation and emitted
// verbatim; resolving them is the consuming framework's concern.
func IsReference(value string) bool {
	return len(value) >= 2 &&
		strings.HasPrefix(value, "{") &&
		strings.HasSuffix(value, "}")
}

// ReferencePath extracts the dotted token path from a reference.
// Returns the path and true if value is a reference, "" and false
// otherwise.
func ReferencePath(value string) (string, bool) {
	if !IsReference(value) {
		return "", false
	}
	return strings.TrimSpace(value[1 : len(value)-1]), true
}

// ReferenceName converts a reference to the referenced token's
// kebab-case name.
func ReferenceName(value string) (string, bool) {
	path, ok := ReferencePath(value)
	if !ok {
		return "", false
	}
	return strings.ReplaceAll(path, ".", "-"), true
}
