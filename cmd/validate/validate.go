/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for nol.
package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/nol/config"
	"bennypowers.dev/nol/format"
	"bennypowers.dev/nol/fs"
	"bennypowers.dev/nol/parser"
	"bennypowers.dev/nol/specifier"
	"bennypowers.dev/nol/token"
	"bennypowers.dev/nol/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate design token files",
	Long: `Validate design token files without writing any output.

Each file is parsed and checked against the value grammar for its token
types. When every file passes on its own, the combined list is checked
for duplicate names across files.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")

	filesystem := fs.NewOSFileSystem()
	jsonParser := parser.NewJSONParser()

	// Load config from .config/nol.{yaml,yml,json}
	cfg := config.LoadOrDefault(filesystem, ".")
	specResolver := specifier.NewDefaultResolver(filesystem, ".")

	hasErrors := false

	// Use config files if no args provided
	var resolved []*specifier.ResolvedFile
	if len(args) == 0 {
		var err error
		resolved, err = cfg.ResolveFiles(specResolver, filesystem, ".")
		if err != nil {
			return fmt.Errorf("error resolving config files: %w", err)
		}
	} else {
		for _, arg := range args {
			rf, err := specResolver.Resolve(arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error resolving %s: %v\n", arg, err)
				hasErrors = true
				continue
			}
			resolved = append(resolved, rf)
		}
	}

	if len(resolved) == 0 && !hasErrors {
		return fmt.Errorf("no files specified and no files found in config")
	}

	var all []*token.Token

	for _, rf := range resolved {
		if !quiet {
			fmt.Printf("Validating %s...\n", rf.Specifier)
		}

		data, err := filesystem.ReadFile(rf.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", rf.Specifier, err)
			hasErrors = true
			continue
		}

		// Get per-file options from config
		opts := cfg.OptionsForFile(rf.Specifier)
		if prefix := viper.GetString("prefix"); prefix != "" {
			opts.Prefix = prefix
		}

		detected := opts.Format
		if detected == format.Unknown {
			detected, err = format.DetectBytes(data)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error detecting format for %s: %v\n", rf.Specifier, err)
				hasErrors = true
				continue
			}
			opts.Format = detected
		}

		tokens, err := jsonParser.Parse(data, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", rf.Specifier, err)
			hasErrors = true
			continue
		}
		for _, t := range tokens {
			t.FilePath = rf.Path
		}

		if errs := validator.Validate(tokens); len(errs) > 0 {
			for _, e := range errs {
				fmt.Fprintf(os.Stderr, "%v\n", e)
			}
			hasErrors = true
			continue
		}

		if !quiet {
			fmt.Printf("  %d tokens, format: %s\n", len(tokens), detected)
		}
		all = append(all, tokens...)
	}

	// Per-file passes leave only cross-file duplicates to find.
	if !hasErrors && len(resolved) > 1 {
		if errs := validator.Validate(all); len(errs) > 0 {
			for _, e := range errs {
				fmt.Fprintf(os.Stderr, "%v\n", e)
			}
			hasErrors = true
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}

	if !quiet {
		fmt.Println("All files valid.")
	}
	return nil
}
