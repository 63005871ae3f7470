package main

import (
	"errors"

	"github.com/spf13/cobra"
)

// errIssuesFound fails a lint or audit run after its report was written.
var errIssuesFound = errors.New("issues found")

// newRootCmd builds the command tree. Every call returns fresh commands, so
// flag state never leaks between runs.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "verse",
		Short: "Verse design system preset generator and class linter",
		Long: `Generate the Verse style-framework preset from the design tokens,
resolve button classes, merge utility class lists, and lint class usage
in Go, templ and HTML sources.`,
		// Default behavior: run generate when no subcommand is given.
		// We must call loadConfig here because PreRunE of the generate
		// command is not triggered when delegating via RunE.
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			return runGenerate(cmd, nil)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().String("color", "auto", "Color output: auto|always|never")
	rootCmd.PersistentFlags().String("config", defaultConfigPath, "Config file path")

	rootCmd.AddCommand(
		newGenerateCmd(),
		newButtonCmd(),
		newMergeCmd(),
		newTokensCmd(),
		newLintCmd(),
		newAuditCmd(),
		newInitCmd(),
		newCompletionCmd(),
		newVersionCmd(),
	)
	return rootCmd
}
