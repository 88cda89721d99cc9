// Package cmd — generate command.
// The root command orchestrates the pipeline:
// read → extract → emit → write.
//
// Settings come from config.Load (.env and CHARSGEN_* variables); any flag
// given on the command line overrides the loaded value.
package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/charsgen/core"
	"github.com/gaurav-prasanna/charsgen/core/config"
	"github.com/gaurav-prasanna/charsgen/core/extract"
	"github.com/gaurav-prasanna/charsgen/core/output"
	"github.com/gaurav-prasanna/charsgen/core/pipeline"
	"github.com/gaurav-prasanna/charsgen/core/render"
)

// appFs is the filesystem every artifact is read from and written to.
var appFs afero.Fs = afero.NewOsFs()

// Flag variables.
var (
	flagSource    string
	flagOutputDir string
	flagBasename  string
	flagMarkdown  bool
	flagPDF       bool
	flagLogLevel  string
)

func init() {
	rootCmd.Flags().StringVar(&flagSource, "source", config.DefaultSource, "Path to the W3C entity table (HTML)")
	rootCmd.Flags().StringVar(&flagOutputDir, "output_dir", config.DefaultOutputDir, "Output directory")
	rootCmd.Flags().StringVar(&flagBasename, "basename", config.DefaultBasename, "Base name of the generated files")

	// Optional artifacts.
	rootCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Also write a Markdown reference sheet")
	rootCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Also write a PDF cheat sheet")

	rootCmd.Flags().StringVar(&flagLogLevel, "log_level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	zerolog.SetGlobalLevel(cfg.Level())
	if !cfg.DotEnv {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	writer, err := output.New(appFs, cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	p := &pipeline.Pipeline{
		Source:    cfg.Source,
		Basename:  cfg.Basename,
		Extractor: extract.New(),
		Emitters:  selectEmitters(cfg),
		Writer:    writer,
		Logger:    log.Logger,
	}

	result, err := p.Run(cmd.Context())
	if err != nil {
		return err
	}

	for _, path := range result.Written {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	}
	return nil
}

// loadConfig merges the environment configuration with explicitly set flags.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.Load()

	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source = flagSource
	}
	if flags.Changed("output_dir") {
		cfg.OutputDir = flagOutputDir
	}
	if flags.Changed("basename") {
		cfg.Basename = flagBasename
	}
	if flags.Changed("markdown") {
		cfg.Markdown = flagMarkdown
	}
	if flags.Changed("pdf") {
		cfg.PDF = flagPDF
	}
	if flags.Changed("log_level") {
		cfg.LogLevel = flagLogLevel
	}
	return cfg
}

// selectEmitters returns the JSON and LESS emitters plus any optional ones
// enabled in cfg.
func selectEmitters(cfg *config.Config) []core.Emitter {
	emitters := []core.Emitter{
		render.NewJSONEmitter(),
		render.NewLessEmitter(),
	}
	if cfg.Markdown {
		emitters = append(emitters, render.NewMarkdownEmitter())
	}
	if cfg.PDF {
		emitters = append(emitters, render.NewPDFEmitter())
	}
	return emitters
}
