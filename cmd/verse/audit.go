package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verse-ds/verse/internal/cssaudit"
	"github.com/verse-ds/verse/internal/lint"
)

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check stylesheets against the Verse theme variables",
		Long: `Parse hand-written stylesheets and compare their custom properties with
the generated theme: values that drifted from the tokens, scheme blocks
missing variables, and Verse-namespaced variables no token defines.`,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := cssaudit.AuditFiles(buildAuditConfig())
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			strict := getBoolWithFallback("strict", "audit.strict", false)
			return writeReport(cmd, auditResult(report), strict, "audit.output-format")
		},
	}

	f := cmd.Flags()
	f.String("source", "web/styles", "Stylesheet directory")
	f.StringSlice("include", []string{"**/*.css"}, "Glob patterns for stylesheets, relative to --source")
	f.Bool("strict", false, "Exit 1 on any finding, not only errors")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	return cmd
}

// auditSeverity ranks the audit rules: a drifted or unknown variable is an
// error, a missing one a warning.
var auditSeverity = map[cssaudit.Rule]string{
	cssaudit.RuleDrift:   lint.SeverityError,
	cssaudit.RuleUnknown: lint.SeverityError,
	cssaudit.RuleMissing: lint.SeverityWarning,
}

// auditResult converts audit findings to lint issues for the shared reporter.
func auditResult(report *cssaudit.Report) *lint.Result {
	result := &lint.Result{FilesScanned: report.FilesScanned}
	lines := sourceLines{}

	for _, f := range report.Findings {
		text := lines.get(f.File, f.Line)
		column := strings.Index(text, f.Variable) + 1

		issue := lint.Issue{
			FromLinter: "audit-" + string(f.Rule),
			Text:       f.Message(),
			Severity:   auditSeverity[f.Rule],
			Pos:        lint.IssuePos{Filename: f.File, Line: f.Line, Column: column},
		}
		if text != "" {
			issue.SourceLines = []string{text}
		}
		result.Issues = append(result.Issues, issue)
	}

	return result
}

// sourceLines caches file contents by line for issue display.
type sourceLines map[string][]string

func (s sourceLines) get(file string, line int) string {
	lines, ok := s[file]
	if !ok {
		lines = readLines(file)
		s[file] = lines
	}
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}

func readLines(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	return lines
}
