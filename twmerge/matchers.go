package twmerge

import (
	"regexp"
	"strconv"
)

// Matcher reports whether a utility value (the part after the prefix) belongs
// to a rule. The empty string is the value of a bare utility such as "border".
type Matcher func(value string) bool

var (
	fractionPattern  = regexp.MustCompile(`^\d+/\d+$`)
	tshirtPattern    = regexp.MustCompile(`^(\d+(\.\d+)?)?(xs|sm|md|lg|xl)$`)
	lengthUnit       = regexp.MustCompile(`\d+(%|px|r?em|[sdl]?v([hwib]|min|max)|pt|pc|in|cm|mm|cap|ch|ex|r?lh|cq(w|h|i|b|min|max))|\b(calc|min|max|clamp)\(.+\)|^0$`)
	colorFunction    = regexp.MustCompile(`^(rgba?|hsla?|hwb|(ok)?(lab|lch)|color-mix)\(.+\)$`)
	shadowPattern    = regexp.MustCompile(`^(inset_)?-?((\d+)?\.?(\d+)[a-z]+|0)_-?((\d+)?\.?(\d+)[a-z]+|0)`)
	imagePattern     = regexp.MustCompile(`^(url|image|image-set|cross-fade|element|(repeating-)?(linear|radial|conic)-gradient)\(.+\)$`)
	arbitraryPattern = regexp.MustCompile(`^\[(?:([a-z-]+):)?(.+)\]$`)
)

// anyOf combines matchers; the first match wins.
func anyOf(matchers ...Matcher) Matcher {
	return func(v string) bool {
		for _, m := range matchers {
			if m(v) {
				return true
			}
		}
		return false
	}
}

// oneOf matches a fixed set of keywords. Include "" to accept the bare prefix.
func oneOf(words ...string) Matcher {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return func(v string) bool {
		_, ok := set[v]
		return ok
	}
}

func isEmpty(v string) bool { return v == "" }

func isAny(v string) bool { return v != "" }

func isNumber(v string) bool {
	if v == "" {
		return false
	}
	_, err := strconv.ParseFloat(v, 64)
	return err == nil
}

func isInteger(v string) bool {
	if v == "" {
		return false
	}
	_, err := strconv.Atoi(v)
	return err == nil
}

func isFraction(v string) bool { return fractionPattern.MatchString(v) }

func isTshirt(v string) bool { return tshirtPattern.MatchString(v) }

// isLength matches the numeric spacing scale: 4, 0.5, 1/2, px, full, screen.
func isLength(v string) bool {
	return isNumber(v) || isFraction(v) || v == "px" || v == "full" || v == "screen"
}

// arbitrary splits "[label:value]" into its label and value.
func arbitrary(v string) (label, value string, ok bool) {
	m := arbitraryPattern.FindStringSubmatch(v)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

func isArbitraryValue(v string) bool {
	_, _, ok := arbitrary(v)
	return ok
}

func isArbitraryLength(v string) bool {
	label, value, ok := arbitrary(v)
	if !ok {
		return false
	}
	if label != "" {
		return label == "length"
	}
	return lengthUnit.MatchString(value) && !colorFunction.MatchString(value)
}

func isArbitraryNumber(v string) bool {
	label, value, ok := arbitrary(v)
	if !ok {
		return false
	}
	if label != "" {
		return label == "number"
	}
	return isNumber(value)
}

func isArbitraryImage(v string) bool {
	label, value, ok := arbitrary(v)
	if !ok {
		return false
	}
	if label != "" {
		return label == "image" || label == "url"
	}
	return imagePattern.MatchString(value)
}

func isArbitraryShadow(v string) bool {
	label, value, ok := arbitrary(v)
	if !ok {
		return false
	}
	if label != "" {
		return label == "shadow"
	}
	return shadowPattern.MatchString(value)
}

func isArbitrarySize(v string) bool {
	label, _, ok := arbitrary(v)
	return ok && (label == "length" || label == "size" || label == "percentage")
}

func isArbitraryPosition(v string) bool {
	label, _, ok := arbitrary(v)
	return ok && label == "position"
}

// inTheme matches any name from a theme scale. An empty scale matches nothing.
func inTheme(names []string) Matcher {
	if len(names) == 0 {
		return func(string) bool { return false }
	}
	return oneOf(names...)
}
