package lint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/verse-ds/verse/preset"
	"github.com/verse-ds/verse/tokens"
	"github.com/verse-ds/verse/twmerge"
)

// Linter applies the class rules to class lists.
type Linter struct {
	merger *twmerge.Merger
}

// NewLinter returns a linter classifying classes with m. A nil merger knows
// the Verse preset's scales.
func NewLinter(m *twmerge.Merger) *Linter {
	if m == nil {
		m = twmerge.New(twmerge.WithTheme(preset.MergeTheme()))
	}
	return &Linter{merger: m}
}

// Check reports the issues of one class list, ordered by column.
func (l *Linter) Check(ref ClassReference) []Issue {
	fields := splitFields(ref.Value)

	var issues []Issue
	issues = append(issues, l.checkUnknownTokens(ref, fields)...)
	issues = append(issues, checkDuplicates(ref, fields)...)
	issues = append(issues, l.checkConflicts(ref, fields)...)

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
	return issues
}

// checkConflicts reports classes a later class of the same group overrides.
// Exact repeats are left to checkDuplicates.
func (l *Linter) checkConflicts(ref ClassReference, fields []field) []Issue {
	var issues []Issue
	for _, d := range l.merger.Explain(ref.Value).Dropped {
		if d.Class == d.By || d.Index >= len(fields) {
			continue
		}
		issues = append(issues, newIssue(ref, fields[d.Index], RuleConflict, SeverityWarning,
			fmt.Sprintf(textConflict, d.Class, d.By, d.Family, d.Group)))
	}
	return issues
}

// checkDuplicates reports every repeat of a class after its first occurrence.
func checkDuplicates(ref ClassReference, fields []field) []Issue {
	var issues []Issue
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f.text] {
			issues = append(issues, newIssue(ref, f, RuleDuplicate, SeverityWarning,
				fmt.Sprintf(textDuplicate, f.text)))
			continue
		}
		seen[f.text] = true
	}
	return issues
}

// checkUnknownTokens reports classes naming an undeclared token in a Verse
// namespace, such as "bg-verse-bleu".
func (l *Linter) checkUnknownTokens(ref ClassReference, fields []field) []Issue {
	var issues []Issue
	for _, f := range fields {
		c, ok := l.merger.Classify(f.text)
		if !ok {
			continue
		}
		name := tokenReference(c.Value)
		if name == "" || tokens.IsDeclared(name) {
			continue
		}
		issues = append(issues, newIssue(ref, f, RuleUnknownToken, SeverityError,
			fmt.Sprintf(textUnknownToken, f.text, name)))
	}
	return issues
}

// tokenReference returns value when it names a token in a reserved
// namespace. Arbitrary values are skipped.
func tokenReference(value string) string {
	if strings.ContainsAny(value, "[]") || !tokens.IsReserved(value) {
		return ""
	}
	return value
}

func newIssue(ref ClassReference, f field, rule, severity, text string) Issue {
	return Issue{
		FromLinter:  rule,
		Text:        text,
		Severity:    severity,
		SourceLines: []string{ref.Location.Text},
		Pos: IssuePos{
			Filename: ref.Location.File,
			Line:     ref.Location.Line,
			Column:   ref.Location.Column + f.offset,
		},
	}
}
