package lint

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "  <div class=\"px-2\">",
			column:     15,
			want:       "              ^", // 14 spaces + caret
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\t<button class=\"w-4\">",
			column:     17,
			want:       "\t\t              ^", // 2 tabs + 14 spaces + caret
		},
		{
			name:       "start of line",
			sourceLine: "class=\"px-2\"",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^", // Pads to line length only
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, reporter.buildCaretIndicator(tt.sourceLine, tt.column))
		})
	}
}

func sampleResult() *Result {
	source := "\t<div class=\"px-2 px-4 bg-verse-bleu\">"
	return &Result{
		FilesScanned:   2,
		ClassLists:     5,
		ClassesChecked: 12,
		Issues: []Issue{
			{
				FromLinter:  RuleUnknownToken,
				Text:        `class "bg-verse-bleu" uses unknown token "verse-bleu"`,
				Severity:    SeverityError,
				SourceLines: []string{source},
				Pos:         IssuePos{Filename: "web/card.templ", Line: 4, Column: 24},
			},
			{
				FromLinter:  RuleConflict,
				Text:        `class "px-2" is overridden by "px-4" (spacing group px)`,
				Severity:    SeverityWarning,
				SourceLines: []string{source},
				Pos:         IssuePos{Filename: "web/card.templ", Line: 4, Column: 14},
			},
		},
	}
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, ReportConfig{Color: ColorNever, PrintIssuedLines: true, PrintLinterName: true})
	require.False(t, r.UseColors())

	r.PrintIssues(sampleResult().Issues)

	want := "web/card.templ:4:14: class \"px-2\" is overridden by \"px-4\" (spacing group px) (conflict)\n" +
		"\t\t<div class=\"px-2 px-4 bg-verse-bleu\">\n" +
		"\t\t" + strings.Repeat(" ", 12) + "^\n" +
		"web/card.templ:4:24: class \"bg-verse-bleu\" uses unknown token \"verse-bleu\" (unknown-token)\n" +
		"\t\t<div class=\"px-2 px-4 bg-verse-bleu\">\n" +
		"\t\t" + strings.Repeat(" ", 22) + "^\n"
	assert.Equal(t, want, buf.String())
}

func TestPaint(t *testing.T) {
	plain := NewReporter(&bytes.Buffer{}, ReportConfig{Color: ColorNever})
	colored := NewReporter(&bytes.Buffer{}, ReportConfig{Color: ColorAlways})
	require.True(t, colored.UseColors())

	for _, tone := range []Tone{ToneHeading, ToneError, ToneWarning, ToneOK, ToneMuted} {
		assert.Equal(t, "px-2", plain.Paint(tone, "px-2"))
		assert.Contains(t, colored.Paint(tone, "px-2"), "px-2")
	}
}

func TestPrintIssuesCompact(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, ReportConfig{Color: ColorNever}).PrintIssues(sampleResult().Issues[:1])
	assert.Equal(t, "web/card.templ:4:24: class \"bg-verse-bleu\" uses unknown token \"verse-bleu\"\n", buf.String())
}

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{
			name:   "clean",
			result: Result{},
			want:   "\n0 issues.\n",
		},
		{
			name:   "errors and warnings",
			result: *sampleResult(),
			want:   "\n2 issues (1 error, 1 warning):\n* conflict: 1\n* unknown-token: 1\n",
		},
		{
			name: "truncated",
			result: Result{
				Issues:         []Issue{{FromLinter: RuleDuplicate, Severity: SeverityWarning}},
				TruncatedCount: 3,
			},
			want: "\n1 issue (3 issues truncated):\n* duplicate: 1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewReporter(&buf, ReportConfig{Color: ColorNever}).PrintSummary(tt.result)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteOutput(t *testing.T) {
	config := ReportConfig{Color: ColorNever, PrintLinterName: true}

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(), OutputSummary, config))
	assert.Contains(t, buf.String(), "Lint Statistics")
	assert.Contains(t, buf.String(), "Classes Checked:  12\n")
	assert.NotContains(t, buf.String(), "web/card.templ")

	buf.Reset()
	require.NoError(t, WriteOutput(&buf, sampleResult(), OutputFull, config))
	assert.Contains(t, buf.String(), "web/card.templ:4:14:")
	assert.Contains(t, buf.String(), "2 issues")
	assert.Contains(t, buf.String(), "By Rule")

	require.Error(t, WriteOutput(&buf, sampleResult(), OutputFormat("xml"), config))
}

func TestParseOutputFormat(t *testing.T) {
	f, err := ParseOutputFormat("")
	require.NoError(t, err)
	assert.Equal(t, OutputIssues, f)

	f, err = ParseOutputFormat("json")
	require.NoError(t, err)
	assert.Equal(t, OutputJSON, f)

	_, err = ParseOutputFormat("markdown")
	require.Error(t, err)
}

func TestWriteJSON(t *testing.T) {
	now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "2024-05-01T12:00:00Z", out.Timestamp)
	assert.Equal(t, JSONSummary{
		TotalIssues:    2,
		Errors:         1,
		Warnings:       1,
		FilesScanned:   2,
		ClassLists:     5,
		ClassesChecked: 12,
	}, out.Summary)
	require.Len(t, out.Issues, 2)
	assert.Equal(t, JSONIssue{
		File:     "web/card.templ",
		Line:     4,
		Column:   24,
		Severity: SeverityError,
		Message:  `class "bg-verse-bleu" uses unknown token "verse-bleu"`,
		Rule:     RuleUnknownToken,
		Source:   "\t<div class=\"px-2 px-4 bg-verse-bleu\">",
	}, out.Issues[0])
}
