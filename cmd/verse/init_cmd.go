package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default .verse.yaml config file",
		Long:  `Create a .verse.yaml configuration file in the current directory with sensible defaults.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")

			if _, err := os.Stat(defaultConfigPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
			}

			if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0o644); err != nil {
				return fmt.Errorf("writing config file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite existing config file")
	return cmd
}

const defaultConfig = `# verse configuration

# Shared settings
verbose: false
color: auto                # auto | always | never

# Preset generation
generate:
  output-dir: web/styles
  basename: verse-preset
  formats:                 # json | js | yaml | toml | css
    - json
    - css
  content:
    - "./web/**/*.{templ,go,html}"

# Class linting
lint:
  paths:
    - "**/*.templ"
    - "**/*.go"
    - "**/*.html"
  gitignore: .gitignore
  strict: false            # fail on warnings too
  output-format: issues    # issues | summary | full | json
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true

# Stylesheet audit
audit:
  source: web/styles
  include:
    - "**/*.css"
  strict: false
  output-format: issues
`
