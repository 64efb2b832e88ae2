/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package emit renders validated design tokens into output artifacts.
package emit

import (
	"fmt"

	"bennypowers.dev/nol/emit/formatter"
	"bennypowers.dev/nol/emit/formatter/css"
	"bennypowers.dev/nol/emit/formatter/scss"
	"bennypowers.dev/nol/emit/formatter/tailwind"
	"bennypowers.dev/nol/emit/formatter/themejson"
	"bennypowers.dev/nol/token"
)

// Options configures rendering.
type Options struct {
	// Prefix is added to output variable names when tokens carry none.
	Prefix string
}

// RenderTokens renders tokens in the specified output format.
func RenderTokens(tokens []*token.Token, format Format, opts Options) ([]byte, error) {
	fmtOpts := formatter.Options{
		Prefix: opts.Prefix,
	}

	var f formatter.Formatter
	switch format {
	case FormatCSS:
		f = css.New()
	case FormatSCSS:
		f = scss.New()
	case FormatTailwind:
		f = tailwind.New()
	case FormatTailwindCJS:
		f = tailwind.NewWithOptions(tailwind.Options{Module: tailwind.ModuleCJS})
	case FormatJSON:
		f = themejson.New()
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return f.Format(tokens, fmtOpts)
}
