package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/verse-ds/verse"
	"github.com/verse-ds/verse/internal/cssaudit"
	"github.com/verse-ds/verse/internal/lint"
	"github.com/verse-ds/verse/internal/logger"
	"github.com/verse-ds/verse/preset"
)

const defaultConfigPath = ".verse.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Only flags set on the command line
	// are loaded, so flag defaults never mask the config file.
	changed := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	cmd.Flags().Visit(func(f *pflag.Flag) {
		changed.AddFlag(f)
	})
	if err := k.Load(posflag.Provider(changed, ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (VERSE_* prefix)
	if err := k.Load(env.Provider("VERSE_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a config key. The first underscore
// separates the section, the rest become dashes:
//
//	VERSE_GENERATE_OUTPUT_DIR -> generate.output-dir
//	VERSE_LINT_STRICT         -> lint.strict
//	VERSE_VERBOSE             -> verbose
func envKey(s string) string {
	name := strings.ToLower(strings.TrimPrefix(s, "VERSE_"))
	section, rest, found := strings.Cut(name, "_")
	if !found {
		return name
	}
	return section + "." + strings.ReplaceAll(rest, "_", "-")
}

// newLogger builds the CLI logger from the verbose and quiet settings.
func newLogger() zerolog.Logger {
	level := logger.Level(
		getBoolWithFallback("verbose", "verbose", false),
		getBoolWithFallback("quiet", "quiet", false),
	)
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		return zerolog.Nop()
	}
	return log
}

// buildGenerateConfig constructs the generator Config from koanf state.
func buildGenerateConfig() (verse.Config, error) {
	config := verse.Config{
		OutputDir: getStringWithFallback("output-dir", "generate.output-dir", "web/styles"),
		Basename:  getStringWithFallback("basename", "generate.basename", verse.DefaultBasename),
		Content:   getStringsWithFallback("content", "generate.content", nil),
		Check:     getBoolWithFallback("check", "generate.check", false),
		Logger:    newLogger(),
	}

	for _, name := range getStringsWithFallback("format", "generate.formats", []string{"json", "css"}) {
		f, err := preset.ParseFormat(name)
		if err != nil {
			return verse.Config{}, err
		}
		config.Formats = append(config.Formats, f)
	}

	return config, nil
}

// buildLintConfig constructs the linter Config from koanf state.
func buildLintConfig() lint.Config {
	return lint.Config{
		Includes: getStringsWithFallback("paths", "lint.paths", []string{
			"**/*.templ",
			"**/*.go",
			"**/*.html",
		}),
		GitIgnore:          getStringWithFallback("gitignore", "lint.gitignore", ".gitignore"),
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		Logger:             newLogger(),
	}
}

// buildReportConfig constructs the issue reporter settings from koanf state.
func buildReportConfig() lint.ReportConfig {
	return lint.ReportConfig{
		Color:            getStringWithFallback("color", "color", lint.ColorAuto),
		PrintIssuedLines: getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
	}
}

// buildAuditConfig constructs the stylesheet audit Config from koanf state.
func buildAuditConfig() cssaudit.Config {
	return cssaudit.Config{
		SourceDir: getStringWithFallback("source", "audit.source", "web/styles"),
		Includes:  getStringsWithFallback("include", "audit.include", []string{"**/*.css"}),
		Logger:    newLogger(),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	if v := k.Strings(configKey); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
