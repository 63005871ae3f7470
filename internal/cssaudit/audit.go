// Package cssaudit checks hand-written stylesheets against the Verse theme:
// custom properties that drift from the token values, scheme blocks that miss
// variables, and variables in a Verse namespace that no token backs.
package cssaudit

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog"

	"github.com/verse-ds/verse/preset"
	"github.com/verse-ds/verse/tokens"
)

// Rule identifies the kind of finding.
type Rule string

const (
	// RuleDrift: a theme variable is declared with a value that differs
	// from its token.
	RuleDrift Rule = "drift"
	// RuleMissing: a scope that declares theme variables lacks one of them.
	RuleMissing Rule = "missing"
	// RuleUnknown: a variable in a Verse namespace that no token defines.
	RuleUnknown Rule = "unknown"
)

// Finding is a single audit result.
type Finding struct {
	Rule     Rule   `json:"rule"`
	File     string `json:"file"`
	Line     int    `json:"line"`
	Scope    string `json:"scope"`
	Variable string `json:"variable"`
	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`
}

// Message describes the finding in one line.
func (f Finding) Message() string {
	switch f.Rule {
	case RuleDrift:
		return fmt.Sprintf("%s is %s, token value is %s", f.Variable, f.Actual, f.Expected)
	case RuleMissing:
		return fmt.Sprintf("%s does not declare %s (token value %s)", f.Scope, f.Variable, f.Expected)
	default:
		return fmt.Sprintf("%s is not a Verse token", f.Variable)
	}
}

// Config holds audit configuration
type Config struct {
	SourceDir string
	Includes  []string // doublestar patterns relative to SourceDir
	Logger    zerolog.Logger
}

// Report contains audit results and stats
type Report struct {
	Findings         []Finding `json:"findings"`
	FilesScanned     int       `json:"files_scanned"`
	VariablesChecked int       `json:"variables_checked"`
}

// AuditFiles scans the configured stylesheets and audits them against the
// generated theme variables.
func AuditFiles(config Config) (*Report, error) {
	files, err := scanFiles(config.SourceDir, config.Includes)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	config.Logger.Debug().Int("files", len(files)).Msg("scanned stylesheets")

	sheets := make([]*Stylesheet, 0, len(files))
	for _, file := range files {
		sheet, err := ParseFile(file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		config.Logger.Debug().Str("file", file).Int("declarations", len(sheet.Declarations)).Msg("parsed")
		sheets = append(sheets, sheet)
	}

	report := Audit(sheets, preset.Variables())
	report.FilesScanned = len(files)
	return report, nil
}

// scanFiles finds all files matching includes
func scanFiles(sourceDir string, includes []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range includes {
		matches, err := doublestar.FilepathGlob(filepath.Join(sourceDir, pattern))
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// Audit compares the custom properties of sheets with the expected
// variables.
//
// A declaration is matched by scope and name. Declarations in a scope the
// theme does not use are compared with the first expected value of the same
// name, which is the @theme or default scheme value. Only scopes the sheets
// declare at least one theme variable in are checked for missing variables.
func Audit(sheets []*Stylesheet, expected []Variable) *Report {
	report := &Report{FilesScanned: len(sheets)}

	byKey := make(map[string]Variable, len(expected))
	byName := make(map[string]Variable, len(expected))
	for _, v := range expected {
		byKey[v.Scope+"|"+v.Name] = v
		if _, ok := byName[v.Name]; !ok {
			byName[v.Name] = v
		}
	}

	declared := make(map[string]bool)
	scopeSite := make(map[string]Finding)

	for _, sheet := range sheets {
		for _, d := range sheet.CustomProperties() {
			report.VariablesChecked++

			want, ok := byKey[d.Scope+"|"+d.Property]
			if ok {
				declared[d.Scope+"|"+d.Property] = true
				if _, seen := scopeSite[d.Scope]; !seen {
					scopeSite[d.Scope] = Finding{File: sheet.File, Line: d.Line}
				}
			} else {
				want, ok = byName[d.Property]
			}

			switch {
			case ok && !sameValue(want.Value, d.Value):
				report.Findings = append(report.Findings, Finding{
					Rule: RuleDrift, File: sheet.File, Line: d.Line, Scope: d.Scope,
					Variable: d.Property, Expected: want.Value, Actual: d.Value,
				})
			case !ok && isVerseVariable(d.Property):
				report.Findings = append(report.Findings, Finding{
					Rule: RuleUnknown, File: sheet.File, Line: d.Line, Scope: d.Scope,
					Variable: d.Property, Actual: d.Value,
				})
			}
		}
	}

	for _, v := range expected {
		site, active := scopeSite[v.Scope]
		if !active || declared[v.Scope+"|"+v.Name] {
			continue
		}
		report.Findings = append(report.Findings, Finding{
			Rule: RuleMissing, File: site.File, Line: site.Line, Scope: v.Scope,
			Variable: v.Name, Expected: v.Value,
		})
	}

	sort.SliceStable(report.Findings, func(i, j int) bool {
		a, b := report.Findings[i], report.Findings[j]
		if a.File != b.File {
			return a.File < b.File
		}
		return a.Line < b.Line
	})

	return report
}

// Variable is an expected theme variable.
type Variable = preset.Variable

// themeNamespaces are the variable prefixes of the @theme block.
var themeNamespaces = []string{
	"--color-", "--font-", "--text-", "--spacing-", "--radius-", "--shadow-", "--image-", "--animate-",
}

// isVerseVariable reports whether a variable name uses a Verse token
// namespace, either directly ("--verse-blue") or under a theme namespace
// ("--color-verse-blue", "--shadow-verse-xl").
func isVerseVariable(name string) bool {
	rest := strings.TrimPrefix(name, "--")
	for _, ns := range themeNamespaces {
		if strings.HasPrefix(name, ns) {
			rest = strings.TrimPrefix(name, ns)
			break
		}
	}
	return tokens.IsReserved(rest)
}

// sameValue compares CSS values, treating equal colors in different hex
// notations and differently quoted strings as equal.
func sameValue(want, got string) bool {
	want, got = normalizeValue(want), normalizeValue(got)
	if want == got {
		return true
	}
	if strings.HasPrefix(want, "#") && strings.HasPrefix(got, "#") {
		a, errA := colorful.Hex(want)
		b, errB := colorful.Hex(got)
		return errA == nil && errB == nil && a.Hex() == b.Hex()
	}
	return false
}

func normalizeValue(v string) string {
	v = normalizeSpace(v)
	v = strings.ReplaceAll(v, `"`, "'")
	v = strings.ReplaceAll(v, ", ", ",")
	v = strings.ReplaceAll(v, "( ", "(")
	v = strings.ReplaceAll(v, " )", ")")
	return strings.ToLower(v)
}
