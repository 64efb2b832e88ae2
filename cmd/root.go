/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for nol.
package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/nol/cmd/build"
	"bennypowers.dev/nol/cmd/list"
	"bennypowers.dev/nol/cmd/validate"
	"bennypowers.dev/nol/cmd/version"
	"bennypowers.dev/nol/cmd/watch"
	"bennypowers.dev/nol/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "nol",
	Short: "Build CSS variables and theme modules from design tokens",
	Long: `nol parses and validates design token files, in the W3C Design Tokens
format or the legacy Figma export format, and builds them into CSS
custom properties and theme-extension modules.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			logger.SetOutput(io.Discard)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("prefix", "p", "", "CSS variable prefix (overrides config)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Only output errors")
	viper.BindPFlag("prefix", rootCmd.PersistentFlags().Lookup("prefix"))

	rootCmd.AddCommand(build.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
	rootCmd.AddCommand(watch.Cmd)
}
