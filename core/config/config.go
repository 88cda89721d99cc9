// Package config loads charsgen settings from an optional .env file and
// CHARSGEN_* environment variables. Command-line flags override both.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Defaults match the layout the generator has always used: the W3C table
// lives in dat/ and both artifacts are written next to it.
const (
	DefaultSource    = "dat/chars.html"
	DefaultOutputDir = "dat"
	DefaultBasename  = "chars"
	DefaultLogLevel  = "info"
)

type Config struct {
	Source    string
	OutputDir string
	Basename  string
	Markdown  bool
	PDF       bool
	LogLevel  string
	// DotEnv reports whether a .env file was found and loaded.
	DotEnv bool
}

// Load reads .env (if present) and the environment. It does not log: the
// caller applies the configured level first.
func Load() *Config {
	dotEnv := godotenv.Load() == nil

	return &Config{
		Source:    getEnv("CHARSGEN_SOURCE", DefaultSource),
		OutputDir: getEnv("CHARSGEN_OUTPUT_DIR", DefaultOutputDir),
		Basename:  getEnv("CHARSGEN_BASENAME", DefaultBasename),
		Markdown:  getEnvBool("CHARSGEN_MARKDOWN", false),
		PDF:       getEnvBool("CHARSGEN_PDF", false),
		LogLevel:  getEnv("CHARSGEN_LOG_LEVEL", DefaultLogLevel),
		DotEnv:    dotEnv,
	}
}

// Level parses LogLevel, falling back to info for unknown values.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
