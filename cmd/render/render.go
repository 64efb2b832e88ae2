/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/nol/token"
)

// Row holds computed display values for a single token.
type Row struct {
	Name        string // CSS variable name with prefix
	Type        string // Token type or "-"
	Value       string // Display value (typography rendered as shorthand)
	Description string // Token description
	IsColor     bool   // Whether this is a color token with a parseable value
}

// ComputeRows transforms tokens into display rows with all values computed.
func ComputeRows(tokens []*token.Token) []Row {
	rows := make([]Row, 0, len(tokens))
	for _, tok := range tokens {
		row := Row{
			Name:        tok.CSSVariableName(),
			Type:        tok.Type,
			Value:       tok.DisplayValue(),
			Description: tok.Description,
		}
		if row.Type == "" {
			row.Type = "-"
		}

		// References are not parseable colors
		if tok.Type == token.TypeColor && !strings.HasPrefix(row.Value, "{") {
			if _, err := csscolorparser.Parse(row.Value); err == nil {
				row.IsColor = true
			}
		}

		rows = append(rows, row)
	}
	return rows
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (name, typ, val int) {
	name, typ, val = 4, 4, 5 // minimums for headers
	for _, r := range rows {
		if len(r.Name) > name {
			name = len(r.Name)
		}
		if len(r.Type) > typ {
			typ = len(r.Type)
		}
		if len(r.Value) > val {
			val = len(r.Value)
		}
	}
	return
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders rows as a table to stdout.
func Table(rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	nameW, typeW, _ := ColumnWidths(rows)
	for _, r := range rows {
		swatch := ""
		if r.IsColor {
			swatch = ColorSwatch(r.Value)
		}
		fmt.Printf("%-*s  %-*s  %s%s\n", nameW, r.Name, typeW, r.Type, swatch, r.Value)
	}
	return nil
}

// Markdown renders rows as markdown tables grouped by type.
func Markdown(rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	// Group rows by type, preserving order of first occurrence
	typeOrder := make([]string, 0)
	byType := make(map[string][]Row)
	for _, r := range rows {
		if _, exists := byType[r.Type]; !exists {
			typeOrder = append(typeOrder, r.Type)
		}
		byType[r.Type] = append(byType[r.Type], r)
	}

	first := true
	for _, typ := range typeOrder {
		group := byType[typ]
		if !first {
			fmt.Println()
		}
		first = false

		fmt.Printf("## %s\n\n", typeHeading(typ))
		renderGroupTable(group)
	}
	return nil
}

func renderGroupTable(group []Row) {
	nameW, valW, descW := 4, 5, 11
	hasDesc := false
	for _, r := range group {
		if len(r.Name) > nameW {
			nameW = len(r.Name)
		}
		if len(r.Value) > valW {
			valW = len(r.Value)
		}
		if r.Description != "" {
			hasDesc = true
			if len(r.Description) > descW {
				descW = len(r.Description)
			}
		}
	}

	if hasDesc {
		fmt.Printf("| %-*s | %-*s | %-*s |\n", nameW, "Name", valW, "Value", descW, "Description")
		fmt.Printf("|-%s-|-%s-|-%s-|\n",
			strings.Repeat("-", nameW), strings.Repeat("-", valW), strings.Repeat("-", descW))
		for _, r := range group {
			fmt.Printf("| %-*s | %-*s | %-*s |\n", nameW, r.Name, valW, r.Value, descW, r.Description)
		}
	} else {
		fmt.Printf("| %-*s | %-*s |\n", nameW, "Name", valW, "Value")
		fmt.Printf("|-%s-|-%s-|\n", strings.Repeat("-", nameW), strings.Repeat("-", valW))
		for _, r := range group {
			fmt.Printf("| %-*s | %-*s |\n", nameW, r.Name, valW, r.Value)
		}
	}
}

// Names renders just the token names, one per line.
func Names(rows []Row) error {
	for _, r := range rows {
		fmt.Println(r.Name)
	}
	return nil
}

// typeHeading converts a token type to a markdown heading title,
// splitting camelCase (borderRadius → Border Radius).
func typeHeading(typ string) string {
	if typ == "" || typ == "-" {
		return "Untyped"
	}
	var sb strings.Builder
	for i, r := range typ {
		if i > 0 && unicode.IsUpper(r) {
			sb.WriteRune(' ')
		}
		sb.WriteRune(r)
	}
	return toTitleCase(sb.String())
}

// toTitleCase converts a string to Title Case.
func toTitleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(s)
}
