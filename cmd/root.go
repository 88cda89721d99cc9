// Package cmd implements the CLI commands for charsgen using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "charsgen",
	Short: "charsgen — generate JSON and LESS tables of HTML character entities",
	Long: `charsgen reads the W3C table of named character references and writes
two artifacts next to it: a JSON file with one record per entity group and a
LESS file with one variable per entity name.

Usage:
  charsgen [flags]`,
	Args:          cobra.NoArgs,
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
