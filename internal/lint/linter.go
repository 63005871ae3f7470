// Package lint checks the utility class lists written in Go, templ and HTML
// sources.
//
// Class lists are found in class attributes, templ.Classes and templ.KV
// calls, and Class fields of struct literals such as button.Spec. Each list
// is checked on its own:
//
//   - conflict (warning): a class overridden by a later class of the same
//     group, as in "px-2 px-4"
//   - duplicate (warning): a class repeated in the list
//   - unknown-token (error): a class whose value is in a Verse token
//     namespace but names no declared token, as in "bg-verse-bleu"
//
// Output follows golangci-lint: one "file:line:col: text (rule)" line per
// issue with the source line and a caret under the offending class.
package lint

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/verse-ds/verse/twmerge"
)

// Config holds linting configuration
type Config struct {
	Includes  []string // Patterns to scan (e.g., "web/**/*.templ")
	GitIgnore string   // Path to .gitignore; empty disables ignore rules
	Strict    bool     // Fail on warnings, not only errors

	MaxIssuesPerLinter int // 0 = unlimited (default)
	MaxSameIssues      int // 0 = unlimited (default)

	// Merger classifies classes; nil knows the Verse preset's scales.
	Merger *twmerge.Merger
	Logger zerolog.Logger
}

// Result contains linting results
type Result struct {
	Issues []Issue

	FilesScanned   int
	FilesSkipped   int
	ClassLists     int // Class lists found
	ClassesChecked int // Classes in those lists
	TruncatedCount int // Issues removed due to limits
}

// Counts returns the number of errors and warnings.
func (r *Result) Counts() (errors, warnings int) {
	for _, issue := range r.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}

// Failed reports whether the result fails the run: any error, or in strict
// mode any issue.
func (r *Result) Failed(strict bool) bool {
	errors, warnings := r.Counts()
	if strict {
		return errors+warnings > 0
	}
	return errors > 0
}

// Lint scans the configured files and checks every class list found
func Lint(config Config) (*Result, error) {
	if len(config.Includes) == 0 {
		return nil, fmt.Errorf("no include patterns configured")
	}

	// Step 1: Find class lists
	scanner := NewScanner(config.GitIgnore, config.Logger)
	refs, stats, err := scanner.ScanFiles(config.Includes)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}

	// Step 2: Check each list
	linter := NewLinter(config.Merger)
	result := &Result{
		FilesScanned: stats.FilesScanned,
		FilesSkipped: stats.FilesSkipped,
		ClassLists:   len(refs),
	}
	for _, ref := range refs {
		ref.Location.File = relativePath(ref.Location.File)
		result.ClassesChecked += len(splitFields(ref.Value))
		result.Issues = append(result.Issues, linter.Check(ref)...)
	}

	// Step 3: Order and limit
	sortIssues(result.Issues)
	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	errors, warnings := result.Counts()
	config.Logger.Debug().
		Int("files", result.FilesScanned).
		Int("lists", result.ClassLists).
		Int("errors", errors).
		Int("warnings", warnings).
		Msg("lint complete")

	return result, nil
}

// sortIssues orders issues by file, then line, then column
func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, config Config) ([]Issue, int) {
	originalCount := len(issues)

	perLinter := make(map[string]int)
	sameText := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if config.MaxIssuesPerLinter > 0 && perLinter[issue.FromLinter] >= config.MaxIssuesPerLinter {
			continue
		}
		if config.MaxSameIssues > 0 && sameText[issue.Text] >= config.MaxSameIssues {
			continue
		}
		perLinter[issue.FromLinter]++
		sameText[issue.Text]++
		filtered = append(filtered, issue)
	}

	return filtered, originalCount - len(filtered)
}
