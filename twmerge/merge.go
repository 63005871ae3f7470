package twmerge

import "strings"

// Option configures a Merger.
type Option func(*Merger)

// WithTheme extends the Tailwind vocabulary with a theme's scale names.
func WithTheme(t Theme) Option {
	return func(m *Merger) {
		m.vocab = TailwindVocabulary(t)
	}
}

// WithVocabulary swaps the classification table for another utility
// vocabulary entirely.
func WithVocabulary(v *Vocabulary) Option {
	return func(m *Merger) {
		m.vocab = v
	}
}

// Merger resolves conflicts between utility classes: when two classes set
// the same property under the same variant, the later one wins. A Merger is
// immutable and safe for concurrent use.
type Merger struct {
	vocab *Vocabulary
}

// New creates a Merger. Without options it uses the plain Tailwind vocabulary.
func New(opts ...Option) *Merger {
	m := &Merger{}
	for _, opt := range opts {
		opt(m)
	}
	if m.vocab == nil {
		m.vocab = TailwindVocabulary(Theme{})
	}
	return m
}

// Vocabulary returns the classification table in use.
func (m *Merger) Vocabulary() *Vocabulary {
	return m.vocab
}

// Classify parses a class and finds its group. The boolean is false for
// classes outside the vocabulary.
func (m *Merger) Classify(raw string) (Class, bool) {
	c := parseClass(raw)

	if prop, ok := arbitraryProperty(c.Base); ok {
		c.Group = "arbitrary:" + prop
		return c, true
	}

	if g, value, ok := m.vocab.lookup(c.Base); ok {
		c.Group, c.Value = g.ID, value
		return c, true
	}

	// "w-1/2" is a fraction, not a postfix modifier.
	if c.Postfix != "" {
		if g, value, ok := m.vocab.lookup(c.Base + "/" + c.Postfix); ok {
			c.Base += "/" + c.Postfix
			c.Postfix = ""
			c.Group, c.Value = g.ID, value
			return c, true
		}
	}

	return c, false
}

// Drop records a class removed by a merge. Index is the class's position
// among the whitespace-separated classes of all lists.
type Drop struct {
	Class  string `json:"class"`
	Index  int    `json:"index"`
	By     string `json:"by"`
	Group  string `json:"group"`
	Family Family `json:"family"`
}

// Result is the outcome of a merge.
type Result struct {
	Classes []string `json:"classes"`
	Dropped []Drop   `json:"dropped,omitempty"`
}

// String joins the kept classes with single spaces.
func (r Result) String() string {
	return strings.Join(r.Classes, " ")
}

// Explain merges the class lists and reports which classes were dropped and
// which later class overrode each of them.
//
// Classes are scanned from the end. A recognized class is kept when no later
// class claimed its variant and group; keeping it claims the group and every
// group it conflicts with. Unrecognized classes are always kept, duplicates
// included. Kept classes stay in their original relative order.
func (m *Merger) Explain(lists ...string) Result {
	var tokens []string
	for _, l := range lists {
		tokens = append(tokens, strings.Fields(l)...)
	}

	kept := make([]bool, len(tokens))
	claimed := make(map[string]string, len(tokens))
	var dropped []Drop

	for i := len(tokens) - 1; i >= 0; i-- {
		tok := tokens[i]
		c, ok := m.Classify(tok)
		if !ok {
			kept[i] = true
			continue
		}

		variant := c.Variant()
		key := variant + c.Group
		if by, taken := claimed[key]; taken {
			dropped = append(dropped, Drop{Class: tok, Index: i, By: by, Group: c.Group, Family: m.family(c.Group)})
			continue
		}

		kept[i] = true
		claimed[key] = tok
		if g, ok := m.vocab.Group(c.Group); ok {
			for _, id := range g.Conflicts {
				claim(claimed, variant+id, tok)
			}
			if c.Postfix != "" {
				for _, id := range g.PostfixConflicts {
					claim(claimed, variant+id, tok)
				}
			}
		}
	}

	res := Result{Classes: make([]string, 0, len(tokens))}
	for i, tok := range tokens {
		if kept[i] {
			res.Classes = append(res.Classes, tok)
		}
	}
	for i := len(dropped) - 1; i >= 0; i-- {
		res.Dropped = append(res.Dropped, dropped[i])
	}
	return res
}

// family is the property family of a group id, arbitrary properties included.
func (m *Merger) family(id string) Family {
	if prop, ok := strings.CutPrefix(id, "arbitrary:"); ok {
		return categorizeProperty(prop)
	}
	if g, ok := m.vocab.Group(id); ok {
		return g.Family()
	}
	return FamilyOther
}

// claim marks key as taken unless a later class already took it.
func claim(claimed map[string]string, key, by string) {
	if _, ok := claimed[key]; !ok {
		claimed[key] = by
	}
}

// Merge joins the class lists and removes every class overridden by a later
// one.
func (m *Merger) Merge(lists ...string) string {
	return m.Explain(lists...).String()
}

var defaultMerger = New()

// Merge merges class lists with the plain Tailwind vocabulary.
func Merge(lists ...string) string {
	return defaultMerger.Merge(lists...)
}

// Join concatenates class lists, normalizing whitespace, without resolving
// conflicts. Empty lists are skipped.
func Join(lists ...string) string {
	var fields []string
	for _, l := range lists {
		fields = append(fields, strings.Fields(l)...)
	}
	return strings.Join(fields, " ")
}
