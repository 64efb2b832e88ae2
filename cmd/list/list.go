/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for nol.
package list

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/nol/cmd/render"
	"bennypowers.dev/nol/config"
	"bennypowers.dev/nol/emit"
	"bennypowers.dev/nol/fs"
	"bennypowers.dev/nol/pipeline"
	"bennypowers.dev/nol/specifier"
	"bennypowers.dev/nol/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List tokens from design token files",
	Long:  `List all tokens from design token files with optional filtering and formatting.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().String("type", "", "Filter by token type")
	Cmd.Flags().String("group", "", "Filter by top-level group")
	Cmd.Flags().String("name", "", "Look up a single token by name, variable name, or dot-path")
	Cmd.Flags().String("format", "table", "Output format: table, markdown, json, css, names")
}

func run(cmd *cobra.Command, args []string) error {
	typeFilter, _ := cmd.Flags().GetString("type")
	groupFilter, _ := cmd.Flags().GetString("group")
	nameFlag, _ := cmd.Flags().GetString("name")
	formatFlag, _ := cmd.Flags().GetString("format")

	filesystem := fs.NewOSFileSystem()

	// Load config from .config/nol.{yaml,yml,json}
	cfg := config.LoadOrDefault(filesystem, ".")
	specResolver := specifier.NewDefaultResolver(filesystem, ".")

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
				return fmt.Errorf("error resolving %s: %w", arg, err)
			}
			resolved = append(resolved, rf)
		}
	}

	if len(resolved) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	flagPrefix := viper.GetString("prefix")

	sources := make([]pipeline.Source, 0, len(resolved))
	for _, rf := range resolved {
		opts := cfg.OptionsForFile(rf.Specifier)
		if flagPrefix != "" {
			opts.Prefix = flagPrefix
		}
		sources = append(sources, pipeline.Source{Path: rf.Path, Options: pipeline.Options{
			Prefix: opts.Prefix,
			Format: opts.Format,
		}})
	}

	tokens, err := pipeline.Sources(filesystem, sources)
	if err != nil {
		return err
	}

	if nameFlag != "" {
		m := token.NewMap(tokens, "")
		tok, ok := m.Get(nameFlag)
		if !ok {
			return fmt.Errorf("token not found: %s", nameFlag)
		}
		tokens = []*token.Token{tok}
	} else {
		tokens = filterTokens(tokens, typeFilter, groupFilter)
		sort.Slice(tokens, func(i, j int) bool {
			return tokens[i].Name < tokens[j].Name
		})
	}

	switch formatFlag {
	case "json":
		return outputJSON(tokens)
	case "css":
		return outputCSS(tokens)
	case "markdown", "md":
		return render.Markdown(render.ComputeRows(tokens))
	case "names":
		return render.Names(render.ComputeRows(tokens))
	case "table":
		return render.Table(render.ComputeRows(tokens))
	default:
		return fmt.Errorf("unknown output format: %s", formatFlag)
	}
}

// filterTokens applies type and group filters.
func filterTokens(tokens []*token.Token, typeFilter, groupFilter string) []*token.Token {
	if typeFilter == "" && groupFilter == "" {
		return tokens
	}

	filtered := make([]*token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if typeFilter != "" && tok.Type != typeFilter {
			continue
		}
		if groupFilter != "" && (len(tok.Path) == 0 || tok.Path[0] != groupFilter) {
			continue
		}
		filtered = append(filtered, tok)
	}
	return filtered
}

func outputJSON(tokens []*token.Token) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(tokens)
}

func outputCSS(tokens []*token.Token) error {
	out, err := emit.RenderTokens(tokens, emit.FormatCSS, emit.Options{})
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
