package twmerge

import (
	"errors"
	"fmt"
	"strings"
)

// Rule recognizes the utilities "<Prefix>" and "<Prefix>-<value>" whose value
// satisfies Match. A rule with a nil Match only accepts the bare prefix.
type Rule struct {
	Prefix string
	Match  Matcher
}

// Group is a set of utilities that set the same CSS properties, so that a
// later member makes every earlier member redundant.
type Group struct {
	ID         string
	Properties []string
	Rules      []Rule

	// Conflicts lists groups that a member of this group also overrides when
	// it comes later, e.g. "p" overrides "px" and "pt".
	Conflicts []string

	// PostfixConflicts are overridden only when the member carries a postfix
	// modifier, e.g. "text-lg/7" also sets the line height.
	PostfixConflicts []string
}

// Family is the property family of the first property the group sets.
func (g *Group) Family() Family {
	if len(g.Properties) == 0 {
		return FamilyOther
	}
	return categorizeProperty(g.Properties[0])
}

// Theme lists the custom scale names a design system adds to the utility
// vocabulary. Names listed here take precedence over the generic value
// patterns, e.g. a font size named "label-sm" makes "text-label-sm" a
// font-size utility instead of a text color.
type Theme struct {
	Colors           []string
	Spacing          []string
	FontSizes        []string
	FontFamilies     []string
	FontWeights      []string
	Radii            []string
	Shadows          []string
	BackgroundImages []string
	Animations       []string
}

type ruleRef struct {
	group *Group
	match Matcher
}

// Vocabulary is an immutable classification table from utility classes to
// groups. It is safe for concurrent use.
type Vocabulary struct {
	groups []*Group
	byID   map[string]*Group
	index  map[string][]ruleRef
}

// NewVocabulary validates groups and builds the prefix index. Rules sharing a
// prefix are tried in group order, so groups with narrow matchers must come
// before groups that accept any value.
func NewVocabulary(groups []Group) (*Vocabulary, error) {
	v := &Vocabulary{
		byID:  make(map[string]*Group, len(groups)),
		index: make(map[string][]ruleRef),
	}

	var errs []error
	for i := range groups {
		g := groups[i]
		if g.ID == "" {
			errs = append(errs, fmt.Errorf("group %d: missing id", i))
			continue
		}
		if _, dup := v.byID[g.ID]; dup {
			errs = append(errs, fmt.Errorf("group %q: duplicate id", g.ID))
			continue
		}
		if len(g.Rules) == 0 {
			errs = append(errs, fmt.Errorf("group %q: no rules", g.ID))
		}

		gp := &g
		v.groups = append(v.groups, gp)
		v.byID[g.ID] = gp

		for _, r := range g.Rules {
			if r.Prefix == "" || strings.HasPrefix(r.Prefix, "-") {
				errs = append(errs, fmt.Errorf("group %q: invalid prefix %q", g.ID, r.Prefix))
				continue
			}
			match := r.Match
			if match == nil {
				match = isEmpty
			}
			v.index[r.Prefix] = append(v.index[r.Prefix], ruleRef{group: gp, match: match})
		}
	}

	for _, g := range v.groups {
		for _, id := range append(append([]string(nil), g.Conflicts...), g.PostfixConflicts...) {
			if _, ok := v.byID[id]; !ok {
				errs = append(errs, fmt.Errorf("group %q: conflicts with unknown group %q", g.ID, id))
			}
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid vocabulary: %w", errors.Join(errs...))
	}
	return v, nil
}

// Group returns the group with the given id.
func (v *Vocabulary) Group(id string) (*Group, bool) {
	g, ok := v.byID[id]
	return g, ok
}

// Groups returns the groups in classification order.
func (v *Vocabulary) Groups() []*Group {
	return append([]*Group(nil), v.groups...)
}

// lookup finds the group of a bare utility (no modifiers, sign or postfix).
// Longer prefixes are tried first: "ring-offset-2" is checked against the
// "ring-offset" rules before the "ring" rules.
func (v *Vocabulary) lookup(utility string) (*Group, string, bool) {
	end := len(utility)
	for end > 0 {
		prefix := utility[:end]
		value := ""
		if end < len(utility) {
			value = utility[end+1:]
		}
		for _, r := range v.index[prefix] {
			if r.match(value) {
				return r.group, value, true
			}
		}
		end = strings.LastIndexByte(utility[:end], '-')
	}
	return nil, "", false
}
