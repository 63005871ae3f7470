package lint

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	ignore "github.com/sabhiram/go-gitignore"
)

// ClassReference is a class list literal found in source code
type ClassReference struct {
	Value    string       // Full list: "inline-flex px-2 px-4"
	Location FileLocation // Column points at the first byte of Value
}

// FileLocation tracks where a class list was found
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column of the list's first byte
	Text   string // Full line content for source display
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// scanPattern represents a regex pattern for finding class lists
type scanPattern struct {
	name  string
	regex *regexp.Regexp
}

var (
	// Patterns for finding class lists. The first group captures the list.
	patterns = []scanPattern{
		{
			name:  "class attribute with double quotes",
			regex: regexp.MustCompile(`class="([^"]+)"`),
		},
		{
			name:  "class attribute with single quotes",
			regex: regexp.MustCompile(`class='([^']+)'`),
		},
		{
			name:  "class with string literal in braces",
			regex: regexp.MustCompile(`class=\{\s*"([^"]+)"`),
		},
		{
			// button.Spec{Class: "..."} and button.Props{Class: "..."}
			name:  "Class field",
			regex: regexp.MustCompile(`\bClass:\s*"([^"]+)"`),
		},
	}

	// Comment patterns to skip
	commentPattern = regexp.MustCompile(`^\s*//`)
)

// Scanner finds class lists in Go, templ and HTML files.
type Scanner struct {
	gitignore *ignore.GitIgnore
	root      string // Directory the gitignore rules are relative to
	logger    zerolog.Logger
}

// NewScanner returns a scanner honoring the ignore file at gitignorePath.
// A missing ignore file disables ignore rules.
func NewScanner(gitignorePath string, logger zerolog.Logger) *Scanner {
	s := &Scanner{logger: logger}
	if gitignorePath == "" {
		return s
	}

	gi, err := ignore.CompileIgnoreFile(gitignorePath)
	if err != nil {
		logger.Debug().Str("path", gitignorePath).Msg("no gitignore, scanning every matched file")
		return s
	}
	s.gitignore = gi
	s.root = filepath.Dir(gitignorePath)
	return s
}

// isTemplGenerated checks if a file is a templ-generated Go file
// Handles both _templ.go and .templ.go suffix variations
func isTemplGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go")
}

// shouldSkipFile determines if a file should be excluded from scanning
//
// Two-layer filtering:
// 1. Pattern check (fast): Skip *_templ.go files, the .templ source is scanned instead
// 2. Gitignore check: Skip files ignored relative to the gitignore's directory
func (s *Scanner) shouldSkipFile(path string) bool {
	if isTemplGenerated(path) {
		return true
	}

	if s.gitignore == nil {
		return false
	}

	rel := path
	if filepath.IsAbs(path) || s.root != "." {
		r, err := filepath.Rel(s.root, path)
		if err != nil || strings.HasPrefix(r, "..") {
			// Outside the project the rules don't apply
			return false
		}
		rel = r
	}
	return s.gitignore.MatchesPath(filepath.ToSlash(rel))
}

// ScanFiles scans files matching the given patterns for class lists
func (s *Scanner) ScanFiles(scanPatterns []string) ([]ClassReference, ScanStats, error) {
	files, stats, err := s.expandGlobPatterns(scanPatterns)
	if err != nil {
		return nil, stats, err
	}

	if stats.FilesSkipped > 0 {
		s.logger.Debug().
			Int("scanned", stats.FilesScanned).
			Int("skipped", stats.FilesSkipped).
			Msg("skipped generated/ignored files")
	}

	var allRefs []ClassReference
	for _, file := range files {
		refs, err := scanFile(file)
		if err != nil {
			s.logger.Warn().Err(err).Str("file", file).Msg("failed to scan file")
			continue
		}
		allRefs = append(allRefs, refs...)
	}

	return allRefs, stats, nil
}

// expandGlobPatterns expands globs to file paths and tracks statistics
func (s *Scanner) expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if s.shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}

// scanFile scans a single file for class lists
func scanFile(filePath string) ([]ClassReference, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var refs []ClassReference
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")

		refs = append(refs, extractClassesFromLine(line, lineNum, filePath)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}

// extractClassesFromLine extracts all class lists from a line
func extractClassesFromLine(line string, lineNum int, file string) []ClassReference {
	if commentPattern.MatchString(line) {
		return nil
	}

	newRef := func(value string, offset int) ClassReference {
		return ClassReference{
			Value: value,
			Location: FileLocation{
				File:   file,
				Line:   lineNum,
				Column: offset + 1,
				Text:   line,
			},
		}
	}

	// templ.Classes and templ.KV take precedence; the generic patterns would
	// capture the same literals again.
	hasTemplClasses := strings.Contains(line, "templ.Classes(")
	hasTemplKV := strings.Contains(line, "templ.KV(")
	if hasTemplClasses || hasTemplKV {
		var refs []ClassReference
		for _, call := range callArguments(line, "templ.Classes") {
			for _, arg := range splitTemplArgs(call.text, call.offset) {
				if value, offset, ok := stringLiteral(arg); ok {
					refs = append(refs, newRef(value, offset))
				}
			}
		}
		for _, call := range callArguments(line, "templ.KV") {
			// For KV, only the first argument is the class list
			args := splitTemplArgs(call.text, call.offset)
			if len(args) == 0 {
				continue
			}
			if value, offset, ok := stringLiteral(args[0]); ok {
				refs = append(refs, newRef(value, offset))
			}
		}
		return refs
	}

	var refs []ClassReference
	for _, pattern := range patterns {
		for _, m := range pattern.regex.FindAllStringSubmatchIndex(line, -1) {
			if len(m) < 4 {
				continue
			}
			refs = append(refs, newRef(line[m[2]:m[3]], m[2]))
		}
	}

	return refs
}

// templArg is an argument of a templ call and its byte offset in the line.
type templArg struct {
	text   string
	offset int
}

// callArguments returns the argument text of every call to fn in line.
func callArguments(line, fn string) []templArg {
	var calls []templArg
	for from := 0; ; {
		i := strings.Index(line[from:], fn+"(")
		if i < 0 {
			return calls
		}
		start := from + i + len(fn) + 1
		end := closingParen(line, start)
		calls = append(calls, templArg{text: line[start:end], offset: start})
		from = start
	}
}

// closingParen returns the index of the parenthesis closing the call whose
// arguments start at start, or len(s) if the call continues on another line.
// Parentheses inside string literals don't count.
func closingParen(s string, start int) int {
	depth, inString := 0, false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case inString:
			if c == '\\' {
				i++
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == '(':
			depth++
		case c == ')':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return len(s)
}

// splitTemplArgs splits comma-separated arguments starting at offset base.
// Commas inside nested calls and string literals don't split.
func splitTemplArgs(s string, base int) []templArg {
	var args []templArg
	start, parenDepth, inString := 0, 0, false

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inString:
			if c == '\\' {
				i++
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == '(':
			parenDepth++
		case c == ')':
			parenDepth--
		case c == ',' && parenDepth == 0:
			args = append(args, templArg{text: s[start:i], offset: base + start})
			start = i + 1
		}
	}

	if start < len(s) {
		args = append(args, templArg{text: s[start:], offset: base + start})
	}

	return args
}

// stringLiteral unquotes a double-quoted argument, returning the value and
// the offset of its first byte.
func stringLiteral(arg templArg) (string, int, bool) {
	lead := len(arg.text) - len(strings.TrimLeft(arg.text, " \t"))
	text := strings.TrimSpace(arg.text)
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return "", 0, false
	}
	value := text[1 : len(text)-1]
	if value == "" {
		return "", 0, false
	}
	return value, arg.offset + lead + 1, true
}

// field is a class inside a list and its byte offset in the list.
type field struct {
	text   string
	offset int
}

// splitFields splits a class list on white space like strings.Fields,
// keeping offsets.
func splitFields(s string) []field {
	var fields []field
	start := -1
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			if start >= 0 {
				fields = append(fields, field{text: s[start:i], offset: start})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
		i += size
	}
	if start >= 0 {
		fields = append(fields, field{text: s[start:], offset: start})
	}
	return fields
}

// relativePath returns a path relative to the current working directory
func relativePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}

	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	rel, err := filepath.Rel(cwd, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}

	return rel
}
