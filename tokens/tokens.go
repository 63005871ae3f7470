// Package tokens holds the Verse design tokens: brand and surface colors, the
// spacing, radius and border scales, typography and motion.
//
// Every table is keyed by a closed enumeration and backed by a keyed array
// literal. Each array is pinned to its enumeration's end sentinel with a
// constant index expression, so declaring a new member without a table entry
// is a compile error rather than a runtime lookup miss:
//
//	var _ = [1]struct{}{}[len(colorValues)-int(colorEnd)]
//
// Lookups are total over the declared members. Names coming from outside the
// program (config files, CLI flags) go through the ParseX functions, which
// return ErrUnknown for anything that is not declared.
package tokens

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknown is returned when a token name is not part of its enumeration.
var ErrUnknown = errors.New("unknown token")

// members returns every value of a closed enumeration in declaration order.
func members[K ~int](end K) []K {
	out := make([]K, 0, int(end))
	for i := 0; i < int(end); i++ {
		out = append(out, K(i))
	}
	return out
}

// lookup resolves a name against an enumeration's name table.
func lookup[K ~int](kind, name string, names []string) (K, error) {
	for i, n := range names {
		if n == name {
			return K(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknown, kind, name)
}

// reservedPrefixes are the name prefixes owned by the Verse palette.
var reservedPrefixes = []string{"verse-", "color-", "success-", "warning-", "error-"}

// IsReserved reports whether name falls in a Verse token namespace, such as
// "verse-blue" or "success-100". Reserved names that are not declared tokens
// are typos or stale references.
func IsReserved(name string) bool {
	for _, p := range reservedPrefixes {
		if strings.HasPrefix(name, p) && len(name) > len(p) {
			return true
		}
	}
	return false
}

// IsColor reports whether name is a declared palette color.
func IsColor(name string) bool {
	_, err := ParseColor(name)
	return err == nil
}

// IsDeclared reports whether name is a declared color, gradient or shadow,
// the token kinds that live in the reserved namespaces.
func IsDeclared(name string) bool {
	if IsColor(name) {
		return true
	}
	if _, err := ParseGradient(name); err == nil {
		return true
	}
	_, err := ParseShadow(name)
	return err == nil
}
