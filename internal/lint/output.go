package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// OutputFormat selects how results are written
type OutputFormat string

const (
	OutputIssues  OutputFormat = "issues"  // golangci-lint issues and summary
	OutputSummary OutputFormat = "summary" // statistics only
	OutputFull    OutputFormat = "full"    // issues, summary and statistics
	OutputJSON    OutputFormat = "json"    // machine-readable report
)

// ParseOutputFormat resolves a format flag. The empty string selects issues.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case "":
		return OutputIssues, nil
	case OutputIssues, OutputSummary, OutputFull, OutputJSON:
		return OutputFormat(s), nil
	}
	return "", fmt.Errorf("unknown output format %q (valid: issues, summary, full, json)", s)
}

// WriteOutput writes the result in the given format
func WriteOutput(w io.Writer, result *Result, format OutputFormat, config ReportConfig) error {
	switch format {
	case OutputIssues:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

	case OutputSummary:
		NewReporter(w, config).PrintStatistics(*result)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		reporter.PrintStatistics(*result)

	case OutputJSON:
		return WriteJSON(w, result)

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	TotalIssues    int `json:"total_issues"`
	Errors         int `json:"errors"`
	Warnings       int `json:"warnings"`
	Truncated      int `json:"truncated"`
	FilesScanned   int `json:"files_scanned"`
	ClassLists     int `json:"class_lists"`
	ClassesChecked int `json:"classes_checked"`
}

// JSONIssue represents a single issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Rule     string `json:"rule"`
	Source   string `json:"source,omitempty"`
}

// now is replaced in tests
var now = time.Now

// WriteJSON writes the result as indented JSON
func WriteJSON(w io.Writer, result *Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result))
}

// buildJSONOutput converts a Result to JSONOutput
func buildJSONOutput(result *Result) JSONOutput {
	errors, warnings := result.Counts()

	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		issues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Rule:     issue.FromLinter,
			Source:   source,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:    len(result.Issues),
			Errors:         errors,
			Warnings:       warnings,
			Truncated:      result.TruncatedCount,
			FilesScanned:   result.FilesScanned,
			ClassLists:     result.ClassLists,
			ClassesChecked: result.ClassesChecked,
		},
		Issues: issues,
	}
}
