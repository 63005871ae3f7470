package twmerge

import (
	"sort"
	"strings"
)

// Class is a utility class split into its parts.
//
//	hover:focus:!-mt-2/50
//	└───┬─────┘│└┬┘└─┬┘└┬┘
//	 modifiers │ │ base postfix
//	   important negative
type Class struct {
	Raw       string
	Modifiers []string
	Important bool
	Negative  bool
	Base      string
	Postfix   string

	// Group is the id of the group the class belongs to, empty when the
	// class is not a recognized utility.
	Group string
	// Value is the part of Base after the matched utility prefix: "verse-blue"
	// for "bg-verse-blue", empty for "flex".
	Value string
}

// Variant returns the sorted modifier chain plus the important flag: two
// classes only conflict when their variants are equal.
func (c Class) Variant() string {
	mods := sortModifiers(c.Modifiers)
	v := strings.Join(mods, ":")
	if len(mods) > 0 {
		v += ":"
	}
	if c.Important {
		v += "!"
	}
	return v
}

// parseClass splits raw into modifiers, flags, base and postfix. Separators
// inside [...] and (...) are ignored so arbitrary values can contain ':' and '/'.
func parseClass(raw string) Class {
	c := Class{Raw: raw}

	depth := 0
	start := 0
	postfix := -1
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				c.Modifiers = append(c.Modifiers, raw[start:i])
				start = i + 1
				postfix = -1
			}
		case '/':
			if depth == 0 {
				postfix = i
			}
		}
	}

	base := raw[start:]
	if postfix >= start {
		c.Postfix = raw[postfix+1:]
		base = raw[start:postfix]
	}

	switch {
	case strings.HasPrefix(base, "!"):
		c.Important = true
		base = base[1:]
	case strings.HasSuffix(base, "!"):
		c.Important = true
		base = base[:len(base)-1]
	case c.Postfix != "" && strings.HasSuffix(c.Postfix, "!"):
		c.Important = true
		c.Postfix = c.Postfix[:len(c.Postfix)-1]
	}

	if len(base) > 1 && base[0] == '-' {
		c.Negative = true
		base = base[1:]
	}

	c.Base = base
	return c
}

// arbitraryProperty recognizes "[property:value]" and returns the property.
func arbitraryProperty(base string) (string, bool) {
	if len(base) < 5 || base[0] != '[' || base[len(base)-1] != ']' {
		return "", false
	}
	prop, value, ok := strings.Cut(base[1:len(base)-1], ":")
	if !ok || prop == "" || value == "" {
		return "", false
	}
	for _, r := range prop {
		if (r < 'a' || r > 'z') && r != '-' {
			return "", false
		}
	}
	return prop, true
}

// sortModifiers orders modifiers so that "hover:focus:" and "focus:hover:"
// compare equal. Arbitrary variants such as "[&>*]" depend on their position,
// so they stay in place and only the runs between them are sorted.
func sortModifiers(mods []string) []string {
	if len(mods) < 2 {
		return mods
	}
	out := make([]string, 0, len(mods))
	var run []string
	flush := func() {
		sort.Strings(run)
		out = append(out, run...)
		run = run[:0]
	}
	for _, m := range mods {
		if strings.HasPrefix(m, "[") {
			flush()
			out = append(out, m)
			continue
		}
		run = append(run, m)
	}
	flush()
	return out
}
