/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package format

import "errors"

// Sentinel errors for token pipeline operations.
var (
	// ErrInvalidDocument indicates the source document is not an object.
	ErrInvalidDocument = errors.New("token document must be an object")

	// ErrUnknownFormat indicates the document matches neither the W3C
	// nor the legacy export shape.
	ErrUnknownFormat = errors.New("unrecognized token document format")

	// ErrNoTokens indicates parsing produced zero tokens.
	ErrNoTokens = errors.New("no tokens found")

	// ErrUnknownType indicates a token declares an unsupported type.
	ErrUnknownType = errors.New("unknown token type")

	// ErrDuplicateName indicates two tokens share a name.
	ErrDuplicateName = errors.New("duplicate token name")

	// ErrInvalidValue indicates a token value fails its type's syntax.
	ErrInvalidValue = errors.New("invalid token value")
)
