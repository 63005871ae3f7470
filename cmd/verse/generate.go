package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verse-ds/verse"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Write the style-framework preset",
		Long: `Build the Verse preset from the design tokens and write it in each
configured format: json, js, yaml, toml and css (theme variables).`,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cmd)
		},
		RunE: runGenerate,
	}

	f := cmd.Flags()
	f.String("output-dir", "web/styles", "Output directory for generated files")
	f.String("basename", verse.DefaultBasename, "File name without extension")
	f.StringSlice("format", []string{"json", "css"}, "Formats to write: json|js|yaml|toml|css")
	f.StringSlice("content", nil, "Content globs recorded in the preset")
	f.Bool("check", false, "Fail if generated files are out of date instead of writing")
	f.Bool("lint", false, "Run linter after generation")
	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config, err := buildGenerateConfig()
	if err != nil {
		return err
	}

	result, err := verse.Generate(config)
	quiet := getBoolWithFallback("quiet", "quiet", false)
	out := cmd.OutOrStdout()

	if errors.Is(err, verse.ErrStale) {
		if !quiet {
			for _, f := range result.FilesStale {
				fmt.Fprintf(out, "stale: %s\n", f)
			}
		}
		return err
	}
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if !quiet {
		if config.Check {
			fmt.Fprintf(out, "Generated files in %s are up to date\n", config.OutputDir)
		} else {
			fmt.Fprintf(out, "Generated files in %s\n", config.OutputDir)
			fmt.Fprintf(out, "  Files written: %d\n", len(result.FilesWritten))
			fmt.Fprintf(out, "  Files unchanged: %d\n", len(result.FilesUnchanged))
		}
		fmt.Fprintf(out, "  Tokens exported: %d\n", result.TokensExported)
	}

	// Run lint after generate if --lint flag set
	if getBoolWithFallback("lint", "generate.lint", false) {
		return runLint(cmd)
	}

	return nil
}
