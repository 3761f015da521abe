// Package cmd implements the CLI commands for sitehash using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/sitehash/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var (
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "sitehash",
	Short: "sitehash — deterministic content hashes for web resources",
	Long: `sitehash fetches URLs, normalizes their content by type, and produces
deterministic content hashes. Whitespace, JSON key order, markup, and
script/style text do not affect the hash, so a changed hash means the
visible content actually changed.

Usage:
  sitehash hash <url>... [flags]
  sitehash algorithms`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a TOML config file")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
