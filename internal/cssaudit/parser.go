package cssaudit

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Declaration is a property: value pair together with where it was declared.
type Declaration struct {
	Scope    string // selector list or at-rule, e.g. ":root, .dark" or "@theme"
	Layer    string // enclosing @layer, if any
	Property string
	Value    string
	Line     int
}

// IsCustom reports whether the declaration sets a custom property.
func (d Declaration) IsCustom() bool {
	return strings.HasPrefix(d.Property, "--")
}

// Stylesheet is the parsed content of one CSS file.
type Stylesheet struct {
	File         string
	Declarations []Declaration
	Classes      []string // class selectors in order of first appearance
}

// CustomProperties returns the custom property declarations.
func (s *Stylesheet) CustomProperties() []Declaration {
	var out []Declaration
	for _, d := range s.Declarations {
		if d.IsCustom() {
			out = append(out, d)
		}
	}
	return out
}

// declarationAtRules hold declarations directly; other block at-rules hold
// nested rules.
var declarationAtRules = map[string]bool{
	"@theme":     true,
	"@font-face": true,
	"@property":  true,
	"@page":      true,
}

// nestingAtRules hold rules that are audited like top-level rules.
var nestingAtRules = map[string]bool{
	"@layer":     true,
	"@media":     true,
	"@supports":  true,
	"@container": true,
}

// parserState maintains context while parsing CSS
type parserState struct {
	lexer   *css.Lexer
	line    int
	layer   string
	sheet   *Stylesheet
	classes map[string]bool
}

// Parse parses CSS content into a Stylesheet. The lexer is error tolerant;
// malformed input yields whatever declarations could be recovered.
func Parse(content, filename string) *Stylesheet {
	s := &parserState{
		lexer:   css.NewLexer(parse.NewInputString(content)),
		line:    1,
		sheet:   &Stylesheet{File: filename},
		classes: make(map[string]bool),
	}
	s.parseRules()
	return s.sheet
}

// ParseFile reads and parses a single CSS file
func ParseFile(path string) (*Stylesheet, error) {
	// #nosec G304 - path comes from the audit include patterns
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Parse(string(content), path), nil
}

// next returns the next token, keeping track of the current line.
func (s *parserState) next() (css.TokenType, []byte) {
	tt, text := s.lexer.Next()
	s.line += bytes.Count(text, []byte{'\n'})
	return tt, text
}

// parseRules reads rules and at-rules until the enclosing block closes.
func (s *parserState) parseRules() {
	for {
		tt, text := s.next()
		switch tt {
		case css.ErrorToken, css.RightBraceToken:
			return
		case css.WhitespaceToken, css.CommentToken, css.SemicolonToken, css.CDOToken, css.CDCToken:
			continue
		case css.AtKeywordToken:
			s.handleAtRule(strings.ToLower(string(text)))
		default:
			s.handleRule(tt, text)
		}
	}
}

// handleAtRule processes an at-rule whose keyword was just read.
func (s *parserState) handleAtRule(name string) {
	var prelude []string
	for {
		tt, text := s.next()
		switch tt {
		case css.ErrorToken, css.SemicolonToken:
			// @import, @layer a, b; and friends carry no block.
			return
		case css.LeftBraceToken:
			s.handleAtRuleBlock(name, normalizeSpace(strings.Join(prelude, "")))
			return
		default:
			prelude = append(prelude, string(text))
		}
	}
}

func (s *parserState) handleAtRuleBlock(name, prelude string) {
	switch {
	case declarationAtRules[name]:
		scope := name
		if prelude != "" {
			scope += " " + prelude
		}
		s.extractDeclarations(scope)
	case nestingAtRules[name]:
		if name == "@layer" {
			outer := s.layer
			s.layer = prelude
			s.parseRules()
			s.layer = outer
			return
		}
		s.parseRules()
	default:
		// @keyframes and unknown at-rules.
		s.skipBlock()
	}
}

// handleRule collects a selector list up to its block and reads the block.
func (s *parserState) handleRule(tt css.TokenType, text []byte) {
	var selector []string
	for {
		switch tt {
		case css.ErrorToken:
			return
		case css.LeftBraceToken:
			s.extractDeclarations(normalizeSelector(strings.Join(selector, "")))
			return
		case css.DelimToken:
			if len(text) > 0 && text[0] == '.' {
				// Class selector: '.' followed by its name.
				tt2, name := s.next()
				selector = append(selector, ".")
				if tt2 == css.IdentToken {
					s.addClass(string(name))
				}
				tt, text = tt2, name
				continue
			}
		}
		selector = append(selector, string(text))
		tt, text = s.next()
	}
}

func (s *parserState) addClass(name string) {
	if !s.classes[name] {
		s.classes[name] = true
		s.sheet.Classes = append(s.sheet.Classes, name)
	}
}

// extractDeclarations reads property: value pairs until }
func (s *parserState) extractDeclarations(scope string) {
	var currentProp string
	var currentVal []string
	propLine := 0

	save := func() {
		if currentProp != "" && len(currentVal) > 0 {
			s.sheet.Declarations = append(s.sheet.Declarations, Declaration{
				Scope:    scope,
				Layer:    s.layer,
				Property: currentProp,
				Value:    normalizeSpace(strings.Join(currentVal, "")),
				Line:     propLine,
			})
		}
		currentProp = ""
		currentVal = nil
	}

	for {
		tt, text := s.next()

		switch {
		case tt == css.ErrorToken || tt == css.RightBraceToken:
			save()
			return
		case tt == css.LeftBraceToken:
			// Nested rule (&:hover { ... }): not part of this scope.
			currentProp = ""
			currentVal = nil
			s.skipBlock()
		case tt == css.CommentToken:
			continue
		case (tt == css.IdentToken || tt == css.CustomPropertyNameToken) && currentProp == "":
			// Start of property name
			currentProp = string(text)
			propLine = s.line
		case tt == css.WhitespaceToken && currentProp == "":
			continue
		case tt == css.ColonToken && currentProp != "" && currentVal == nil:
			// Separator between property and value
			currentVal = []string{}
		case tt == css.SemicolonToken:
			// End of declaration
			save()
		case currentProp != "" && currentVal != nil:
			// Part of the value
			currentVal = append(currentVal, string(text))
		}
	}
}

// skipBlock consumes tokens up to the brace closing the current block.
func (s *parserState) skipBlock() {
	depth := 1
	for depth > 0 {
		tt, _ := s.next()
		switch tt {
		case css.ErrorToken:
			return
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
		}
	}
}

// normalizeSpace collapses whitespace runs into single spaces.
func normalizeSpace(v string) string {
	return strings.Join(strings.Fields(v), " ")
}

// normalizeSelector formats a selector list as "a, b".
func normalizeSelector(sel string) string {
	parts := strings.Split(sel, ",")
	for i, p := range parts {
		parts[i] = normalizeSpace(p)
	}
	return strings.Join(parts, ", ")
}
