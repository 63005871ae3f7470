package lint

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "conflict"
	Text        string   `json:"Text"`        // "class \"px-2\" is overridden by \"px-4\""
	Severity    string   `json:"Severity"`    // "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/components/card.templ"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 15 (1-based, start of the offending class)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Rule names, reported as the issue's linter
const (
	RuleConflict     = "conflict"
	RuleDuplicate    = "duplicate"
	RuleUnknownToken = "unknown-token"
)

// Issue texts
const (
	textConflict     = "class %q is overridden by %q (%s group %s)"
	textDuplicate    = "class %q is repeated"
	textUnknownToken = "class %q uses unknown token %q"
)
