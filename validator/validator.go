/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks parsed design tokens against their type grammars.
package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/nol/format"
	"bennypowers.dev/nol/token"
)

// ValidationError represents a single invalid token.
type ValidationError struct {
	// FilePath is the path to the file the token came from.
	FilePath string
	// Name is the token name.
	Name string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
	// Err is the sentinel category for errors.Is checks.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	if e.Name != "" {
		sb.WriteString(e.Name)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Unwrap exposes the sentinel category.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Errors aggregates every invalid token from one validation run.
type Errors []*ValidationError

// Error implements the error interface.
func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// Unwrap exposes the individual errors for errors.Is checks.
func (e Errors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, err := range e {
		errs[i] = err
	}
	return errs
}

var (
	hexColorRE = regexp.MustCompile(`^#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	lengthRE   = regexp.MustCompile(`^-?(?:\d+|\d*\.\d+)(?:px|rem|em)$`)
	radiusRE   = regexp.MustCompile(`^-?(?:\d+|\d*\.\d+)(?:px|rem|em|%)$`)
)

// Validate checks every token's value against its declared type's
// grammar and enforces name uniqueness. Returns nil when the whole
// list is valid; callers get either a fully valid token list or the
// complete set of failures, never a partial result.
func Validate(tokens []*token.Token) Errors {
	var errs Errors
	seen := make(map[string]bool, len(tokens))

	for _, tok := range tokens {
		if seen[tok.Name] {
			errs = append(errs, &ValidationError{
				FilePath:   tok.FilePath,
				Name:       tok.Name,
				Message:    "duplicate token name",
				Suggestion: "rename one of the tokens; names must be unique within a run",
				Err:        format.ErrDuplicateName,
			})
		}
		seen[tok.Name] = true

		if err := validateToken(tok); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

// validateToken applies the per-type value grammar.
func validateToken(tok *token.Token) *ValidationError {
	switch tok.Type {
	case token.TypeColor:
		if !isValidColor(tok.Value) {
			return &ValidationError{
				FilePath:   tok.FilePath,
				Name:       tok.Name,
				Message:    fmt.Sprintf("invalid color value %q", tok.Value),
				Suggestion: "use 6- or 8-digit hex, rgb()/hsl(), or a {reference}",
				Err:        format.ErrInvalidValue,
			}
		}
	case token.TypeSpacing:
		if !isValidLength(tok.Value) {
			return &ValidationError{
				FilePath:   tok.FilePath,
				Name:       tok.Name,
				Message:    fmt.Sprintf("invalid spacing value %q", tok.Value),
				Suggestion: "use a px, rem, or em length, or a {reference}",
				Err:        format.ErrInvalidValue,
			}
		}
	case token.TypeBorderRadius:
		if !isValidRadius(tok.Value) {
			return &ValidationError{
				FilePath:   tok.FilePath,
				Name:       tok.Name,
				Message:    fmt.Sprintf("invalid border radius value %q", tok.Value),
				Suggestion: "use a px, rem, em, or % length, or a {reference}",
				Err:        format.ErrInvalidValue,
			}
		}
	case token.TypeTypography:
		if tok.Typography == nil || tok.Typography.FontFamily == "" || tok.Typography.FontSize == "" {
			return &ValidationError{
				FilePath: tok.FilePath,
				Name:     tok.Name,
				Message:  "typography value must include fontFamily and fontSize",
				Err:      format.ErrInvalidValue,
			}
		}
	case token.TypeShadow:
		// Shadows accept any string.
	default:
		return &ValidationError{
			FilePath:   tok.FilePath,
			Name:       tok.Name,
			Message:    fmt.Sprintf("unknown token type %q", tok.Type),
			Suggestion: "expected one of " + strings.Join(token.Types(), ", "),
			Err:        format.ErrUnknownType,
		}
	}
	return nil
}

// isValidColor checks the color grammar: 6/8-digit hex, an rgb()/hsl()
// functional form, or a brace-delimited reference. Functional forms
// are parsed, so mangled channels fail here instead of in a browser.
func isValidColor(value string) bool {
	if hexColorRE.MatchString(value) {
		return true
	}
	if strings.HasPrefix(value, "rgb") || strings.HasPrefix(value, "hsl") {
		_, err := csscolorparser.Parse(value)
		return err == nil
	}
	return token.IsReference(value)
}

func isValidLength(value string) bool {
	return lengthRE.MatchString(value) || token.IsReference(value)
}

func isValidRadius(value string) bool {
	return radiusRE.MatchString(value) || token.IsReference(value)
}
