package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verse-ds/verse/internal/lint"
)

func newLintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Lint utility class usage in Go, templ and HTML files",
		Long: `Check the class lists in Go, templ and HTML files for classes that a later
class of the same group overrides, repeated classes, and Verse token names
that no token defines.`,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLint(cmd)
		},
	}

	f := cmd.Flags()
	f.StringSlice("paths", []string{"**/*.templ", "**/*.go", "**/*.html"}, "File patterns to scan for class lists")
	f.String("gitignore", ".gitignore", "Ignore file; matching files are not scanned")
	f.Bool("strict", false, "Exit 1 on any issue, not only errors (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues-per-linter", 0, "Max issues to show per rule (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (rule) suffix on issues")
	return cmd
}

// runLint is shared between `verse lint` and `verse generate --lint`.
func runLint(cmd *cobra.Command) error {
	config := buildLintConfig()

	result, err := lint.Lint(config)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	return writeReport(cmd, result, config.Strict, "lint.output-format")
}

// writeReport prints a lint or audit result and turns it into the exit status.
// By default only errors fail the run; strict mode fails on any issue.
func writeReport(cmd *cobra.Command, result *lint.Result, strict bool, formatKey string) error {
	format, err := lint.ParseOutputFormat(getStringWithFallback("output-format", formatKey, ""))
	if err != nil {
		return err
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		if err := lint.WriteOutput(cmd.OutOrStdout(), result, format, buildReportConfig()); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	if result.Failed(strict) {
		return errIssuesFound
	}
	return nil
}
