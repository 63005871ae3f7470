package lint

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ReportConfig controls how issues are printed
type ReportConfig struct {
	Color            string // auto, always or never
	PrintIssuedLines bool   // Show source lines with issues
	PrintLinterName  bool   // Show (rule) suffix
}

// Reporter handles formatting and outputting linting results
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config ReportConfig) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       shouldUseColors(config.Color),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(mode string) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// Tone says what a piece of report text is; the reporter picks its color.
type Tone int

const (
	ToneHeading Tone = iota // locations and section titles
	ToneError
	ToneWarning
	ToneOK
	ToneMuted // rule names, hints
)

var toneStyles = [...]lipgloss.Style{
	ToneHeading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
	ToneError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	ToneWarning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	ToneOK:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
	ToneMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
}

// Paint renders text in tone, or returns it as is when colors are off.
func (r *Reporter) Paint(tone Tone, text string) string {
	if !r.useColors {
		return text
	}
	return toneStyles[tone].Render(text)
}

// PrintIssues outputs issues in golangci-lint format, ordered by position
func (r *Reporter) PrintIssues(issues []Issue) {
	sorted := append([]Issue(nil), issues...)
	sortIssues(sorted)

	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue in golangci-lint style
func (r *Reporter) printIssue(issue Issue) {
	// Format: file:line:col: message (rule)
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		r.Paint(ToneHeading, location),
		issue.Text,
		r.Paint(ToneMuted, linterSuffix))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}

		caret := r.buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", r.Paint(ToneWarning, caret))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are kept as tabs so the caret lines up.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary
func (r *Reporter) PrintSummary(result Result) {
	totalIssues := len(result.Issues)
	truncated := result.TruncatedCount
	errors, warnings := result.Counts()

	fmt.Fprintln(r.w, "")

	if totalIssues == 0 {
		fmt.Fprintln(r.w, r.Paint(ToneOK, "0 issues."))
		return
	}

	header := pluralizeCount(totalIssues, "issue", "issues")
	var details []string
	if errors > 0 && warnings > 0 {
		details = append(details,
			r.Paint(ToneError, pluralizeCount(errors, "error", "errors")),
			r.Paint(ToneWarning, pluralizeCount(warnings, "warning", "warnings")))
	}
	if truncated > 0 {
		details = append(details, pluralizeCount(truncated, "issue", "issues")+" truncated")
	}
	if len(details) > 0 {
		header += " (" + strings.Join(details, ", ") + ")"
	}
	fmt.Fprintf(r.w, "%s:\n", header)

	for _, rc := range countByLinter(result.Issues) {
		fmt.Fprintf(r.w, "* %s: %d\n", rc.name, rc.count)
	}
}

// PrintStatistics outputs scan statistics and per-rule counts
func (r *Reporter) PrintStatistics(result Result) {
	errors, warnings := result.Counts()

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, r.Paint(ToneHeading, "Lint Statistics"))
	fmt.Fprintln(r.w, "---------------")

	fmt.Fprintf(r.w, "Files Scanned:    %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Files Skipped:    %d\n", result.FilesSkipped)
	fmt.Fprintf(r.w, "Class Lists:      %d\n", result.ClassLists)
	fmt.Fprintf(r.w, "Classes Checked:  %d\n", result.ClassesChecked)
	fmt.Fprintf(r.w, "Errors:           %d\n", errors)
	fmt.Fprintf(r.w, "Warnings:         %d\n", warnings)

	counts := countByLinter(result.Issues)
	if len(counts) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, r.Paint(ToneHeading, "By Rule"))
	fmt.Fprintln(r.w, "-------")
	for _, rc := range counts {
		fmt.Fprintf(r.w, "%-16s %d\n", rc.name, rc.count)
	}
}

type linterCount struct {
	name  string
	count int
}

// countByLinter groups issues by rule, most frequent first
func countByLinter(issues []Issue) []linterCount {
	counts := make(map[string]int)
	for _, issue := range issues {
		counts[issue.FromLinter]++
	}

	out := make([]linterCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, linterCount{name: name, count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].name < out[j].name
	})
	return out
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
