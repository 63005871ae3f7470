package twmerge

import "fmt"

// kw declares bare keyword utilities such as "flex" or "underline".
func kw(words ...string) []Rule {
	rules := make([]Rule, len(words))
	for i, w := range words {
		rules[i] = Rule{Prefix: w}
	}
	return rules
}

// pre declares "<prefix>-<value>" utilities.
func pre(prefix string, matchers ...Matcher) []Rule {
	return []Rule{{Prefix: prefix, Match: anyOf(matchers...)}}
}

// join concatenates rule lists.
func join(lists ...[]Rule) []Rule {
	var out []Rule
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// sides expands a group family over its directional variants:
// sides("p", "padding", m) yields p, px, py, ps, pe, pt, pr, pb, pl with the
// usual conflict edges (p overrides all, px overrides pr and pl, ...).
func sides(id, property string, m Matcher) []Group {
	sub := func(suffix string) string { return id + suffix }
	return []Group{
		{ID: id, Properties: []string{property}, Rules: pre(id, m),
			Conflicts: []string{sub("x"), sub("y"), sub("s"), sub("e"), sub("t"), sub("r"), sub("b"), sub("l")}},
		{ID: sub("x"), Properties: []string{property + "-inline"}, Rules: pre(sub("x"), m), Conflicts: []string{sub("r"), sub("l")}},
		{ID: sub("y"), Properties: []string{property + "-block"}, Rules: pre(sub("y"), m), Conflicts: []string{sub("t"), sub("b")}},
		{ID: sub("s"), Properties: []string{property + "-inline-start"}, Rules: pre(sub("s"), m)},
		{ID: sub("e"), Properties: []string{property + "-inline-end"}, Rules: pre(sub("e"), m)},
		{ID: sub("t"), Properties: []string{property + "-top"}, Rules: pre(sub("t"), m)},
		{ID: sub("r"), Properties: []string{property + "-right"}, Rules: pre(sub("r"), m)},
		{ID: sub("b"), Properties: []string{property + "-bottom"}, Rules: pre(sub("b"), m)},
		{ID: sub("l"), Properties: []string{property + "-left"}, Rules: pre(sub("l"), m)},
	}
}

// edges expands border-like utilities whose prefix is "<base>-<edge>":
// border-x, border-t, rounded-tl and so on.
func edges(id, base, property string, m Matcher, parts map[string][]string, order []string) []Group {
	var all []string
	for _, e := range order {
		all = append(all, id+"-"+e)
	}
	groups := []Group{{ID: id, Properties: []string{property}, Rules: pre(base, m), Conflicts: all}}
	for _, e := range order {
		var conflicts []string
		for _, c := range parts[e] {
			conflicts = append(conflicts, id+"-"+c)
		}
		groups = append(groups, Group{
			ID:         id + "-" + e,
			Properties: []string{property},
			Rules:      pre(base+"-"+e, m),
			Conflicts:  conflicts,
		})
	}
	return groups
}

var (
	boxEdges      = []string{"x", "y", "s", "e", "t", "r", "b", "l"}
	boxEdgeParts  = map[string][]string{"x": {"r", "l"}, "y": {"t", "b"}}
	cornerEdges   = []string{"s", "e", "t", "r", "b", "l", "tl", "tr", "br", "bl"}
	cornerParts   = map[string][]string{"t": {"tl", "tr"}, "r": {"tr", "br"}, "b": {"br", "bl"}, "l": {"tl", "bl"}}
	lineStyles    = []string{"solid", "dashed", "dotted", "double", "none"}
	bgPositions   = []string{"bottom", "center", "left", "left-bottom", "left-top", "right", "right-bottom", "right-top", "top"}
	alignKeywords = []string{"start", "end", "center", "stretch", "baseline"}
)

// Tailwind returns the classification table for Tailwind CSS utility classes,
// extended with the theme's custom scale names.
func Tailwind(t Theme) []Group {
	spacing := anyOf(isArbitraryValue, isLength, inTheme(t.Spacing))
	spacingAuto := anyOf(spacing, oneOf("auto"))
	sizing := anyOf(spacingAuto, oneOf("min", "max", "fit", "svw", "lvw", "dvw", "svh", "lvh", "dvh"))
	radius := anyOf(oneOf("", "none", "full"), isTshirt, inTheme(t.Radii), isArbitraryValue)
	borderWidth := anyOf(isEmpty, isNumber, isArbitraryLength)
	number := anyOf(isNumber, isArbitraryValue)
	// Colors accept any value: palette names like "red-500" and theme colors
	// alike. Narrower groups sharing a prefix must be declared first.
	color := Matcher(isAny)

	var groups []Group
	add := func(gs ...Group) { groups = append(groups, gs...) }

	// Layout
	add(
		Group{ID: "display", Properties: []string{"display"}, Rules: kw(
			"block", "inline-block", "inline", "flex", "inline-flex", "table", "inline-table",
			"table-caption", "table-cell", "table-column", "table-column-group", "table-footer-group",
			"table-header-group", "table-row-group", "table-row", "flow-root", "grid", "inline-grid",
			"contents", "list-item", "hidden")},
		Group{ID: "position", Properties: []string{"position"}, Rules: kw("static", "fixed", "absolute", "relative", "sticky")},
		Group{ID: "visibility", Properties: []string{"visibility"}, Rules: kw("visible", "invisible", "collapse")},
		Group{ID: "sr", Properties: []string{"clip"}, Rules: kw("sr-only", "not-sr-only")},
		Group{ID: "inset", Properties: []string{"inset"}, Rules: pre("inset", spacingAuto),
			Conflicts: []string{"inset-x", "inset-y", "top", "right", "bottom", "left"}},
		Group{ID: "inset-x", Properties: []string{"inset-inline"}, Rules: pre("inset-x", spacingAuto), Conflicts: []string{"right", "left"}},
		Group{ID: "inset-y", Properties: []string{"inset-block"}, Rules: pre("inset-y", spacingAuto), Conflicts: []string{"top", "bottom"}},
		Group{ID: "top", Properties: []string{"top"}, Rules: pre("top", spacingAuto)},
		Group{ID: "right", Properties: []string{"right"}, Rules: pre("right", spacingAuto)},
		Group{ID: "bottom", Properties: []string{"bottom"}, Rules: pre("bottom", spacingAuto)},
		Group{ID: "left", Properties: []string{"left"}, Rules: pre("left", spacingAuto)},
		Group{ID: "z", Properties: []string{"z-index"}, Rules: pre("z", oneOf("auto"), isInteger, isArbitraryValue)},
		Group{ID: "overflow", Properties: []string{"overflow"}, Rules: pre("overflow", oneOf("auto", "hidden", "clip", "visible", "scroll")),
			Conflicts: []string{"overflow-x", "overflow-y"}},
		Group{ID: "overflow-x", Properties: []string{"overflow-x"}, Rules: pre("overflow-x", oneOf("auto", "hidden", "clip", "visible", "scroll"))},
		Group{ID: "overflow-y", Properties: []string{"overflow-y"}, Rules: pre("overflow-y", oneOf("auto", "hidden", "clip", "visible", "scroll"))},
		Group{ID: "flex-direction", Properties: []string{"flex-direction"}, Rules: pre("flex", oneOf("row", "row-reverse", "col", "col-reverse"))},
		Group{ID: "flex-wrap", Properties: []string{"flex-wrap"}, Rules: pre("flex", oneOf("wrap", "wrap-reverse", "nowrap"))},
		Group{ID: "flex", Properties: []string{"flex"}, Rules: pre("flex", oneOf("1", "auto", "initial", "none"), isArbitraryValue),
			Conflicts: []string{"basis", "grow", "shrink"}},
		Group{ID: "basis", Properties: []string{"flex-basis"}, Rules: pre("basis", sizing)},
		Group{ID: "grow", Properties: []string{"flex-grow"}, Rules: pre("grow", isEmpty, number)},
		Group{ID: "shrink", Properties: []string{"flex-shrink"}, Rules: pre("shrink", isEmpty, number)},
		Group{ID: "order", Properties: []string{"order"}, Rules: pre("order", oneOf("first", "last", "none"), isInteger, isArbitraryValue)},
		Group{ID: "grid-cols", Properties: []string{"grid-template-columns"}, Rules: pre("grid-cols", oneOf("none", "subgrid"), isInteger, isArbitraryValue)},
		Group{ID: "grid-rows", Properties: []string{"grid-template-rows"}, Rules: pre("grid-rows", oneOf("none", "subgrid"), isInteger, isArbitraryValue)},
		Group{ID: "justify-content", Properties: []string{"justify-content"},
			Rules: pre("justify", oneOf("normal", "start", "end", "center", "between", "around", "evenly", "stretch"))},
		Group{ID: "justify-items", Properties: []string{"justify-items"}, Rules: pre("justify-items", oneOf(alignKeywords...))},
		Group{ID: "justify-self", Properties: []string{"justify-self"}, Rules: pre("justify-self", oneOf(append([]string{"auto"}, alignKeywords...)...))},
		Group{ID: "align-content", Properties: []string{"align-content"},
			Rules: pre("content", oneOf("normal", "center", "start", "end", "between", "around", "evenly", "baseline", "stretch"))},
		Group{ID: "align-items", Properties: []string{"align-items"}, Rules: pre("items", oneOf(alignKeywords...))},
		Group{ID: "align-self", Properties: []string{"align-self"}, Rules: pre("self", oneOf(append([]string{"auto"}, alignKeywords...)...))},
	)

	// Spacing
	add(
		Group{ID: "gap", Properties: []string{"gap"}, Rules: pre("gap", spacing), Conflicts: []string{"gap-x", "gap-y"}},
		Group{ID: "gap-x", Properties: []string{"column-gap"}, Rules: pre("gap-x", spacing)},
		Group{ID: "gap-y", Properties: []string{"row-gap"}, Rules: pre("gap-y", spacing)},
	)
	add(sides("p", "padding", spacing)...)
	add(sides("m", "margin", spacingAuto)...)
	add(
		Group{ID: "space-x-reverse", Properties: []string{"--tw-space-x-reverse"}, Rules: pre("space-x", oneOf("reverse"))},
		Group{ID: "space-x", Properties: []string{"margin-inline"}, Rules: pre("space-x", spacing)},
		Group{ID: "space-y-reverse", Properties: []string{"--tw-space-y-reverse"}, Rules: pre("space-y", oneOf("reverse"))},
		Group{ID: "space-y", Properties: []string{"margin-block"}, Rules: pre("space-y", spacing)},
	)

	// Sizing
	add(
		Group{ID: "size", Properties: []string{"width", "height"}, Rules: pre("size", sizing), Conflicts: []string{"w", "h"}},
		Group{ID: "w", Properties: []string{"width"}, Rules: pre("w", sizing)},
		Group{ID: "min-w", Properties: []string{"min-width"}, Rules: pre("min-w", sizing)},
		Group{ID: "max-w", Properties: []string{"max-width"}, Rules: pre("max-w", sizing, oneOf("none", "prose"), isTshirt)},
		Group{ID: "h", Properties: []string{"height"}, Rules: pre("h", sizing)},
		Group{ID: "min-h", Properties: []string{"min-height"}, Rules: pre("min-h", sizing)},
		Group{ID: "max-h", Properties: []string{"max-height"}, Rules: pre("max-h", sizing)},
	)

	// Typography
	add(
		Group{ID: "font-size", Properties: []string{"font-size"},
			Rules:            pre("text", oneOf("base"), isTshirt, inTheme(t.FontSizes), isArbitraryLength),
			Conflicts:        []string{"leading"},
			PostfixConflicts: []string{"leading"}},
		Group{ID: "font-smoothing", Properties: []string{"-webkit-font-smoothing"}, Rules: kw("antialiased", "subpixel-antialiased")},
		Group{ID: "font-style", Properties: []string{"font-style"}, Rules: kw("italic", "not-italic")},
		Group{ID: "font-weight", Properties: []string{"font-weight"},
			Rules: pre("font", oneOf("thin", "extralight", "light", "normal", "medium", "semibold", "bold", "extrabold", "black"),
				inTheme(t.FontWeights), isArbitraryNumber)},
		Group{ID: "font-family", Properties: []string{"font-family"}, Rules: pre("font", oneOf("sans", "serif", "mono"), inTheme(t.FontFamilies), isAny)},
		Group{ID: "tracking", Properties: []string{"letter-spacing"},
			Rules: pre("tracking", oneOf("tighter", "tight", "normal", "wide", "wider", "widest"), isArbitraryValue)},
		Group{ID: "leading", Properties: []string{"line-height"},
			Rules: pre("leading", oneOf("none", "tight", "snug", "normal", "relaxed", "loose"), isNumber, isArbitraryValue)},
		Group{ID: "text-align", Properties: []string{"text-align"}, Rules: pre("text", oneOf("left", "center", "right", "justify", "start", "end"))},
		Group{ID: "text-overflow", Properties: []string{"text-overflow"}, Rules: join(kw("truncate"), pre("text", oneOf("ellipsis", "clip")))},
		Group{ID: "text-wrap", Properties: []string{"text-wrap"}, Rules: pre("text", oneOf("wrap", "nowrap", "balance", "pretty"))},
		Group{ID: "text-opacity", Properties: []string{"--tw-text-opacity"}, Rules: pre("text-opacity", number)},
		Group{ID: "text-color", Properties: []string{"color"}, Rules: pre("text", color)},
		Group{ID: "text-decoration", Properties: []string{"text-decoration-line"}, Rules: kw("underline", "overline", "line-through", "no-underline")},
		Group{ID: "text-decoration-thickness", Properties: []string{"text-decoration-thickness"},
			Rules: pre("decoration", oneOf("auto", "from-font"), isNumber, isArbitraryLength)},
		Group{ID: "text-decoration-style", Properties: []string{"text-decoration-style"},
			Rules: pre("decoration", oneOf("solid", "dashed", "dotted", "double", "wavy"))},
		Group{ID: "text-decoration-color", Properties: []string{"text-decoration-color"}, Rules: pre("decoration", color)},
		Group{ID: "underline-offset", Properties: []string{"text-underline-offset"}, Rules: pre("underline-offset", oneOf("auto"), isNumber, isArbitraryLength)},
		Group{ID: "text-transform", Properties: []string{"text-transform"}, Rules: kw("uppercase", "lowercase", "capitalize", "normal-case")},
		Group{ID: "whitespace", Properties: []string{"white-space"},
			Rules: pre("whitespace", oneOf("normal", "nowrap", "pre", "pre-line", "pre-wrap", "break-spaces"))},
		Group{ID: "break", Properties: []string{"word-break"}, Rules: pre("break", oneOf("normal", "words", "all", "keep"))},
	)

	// Backgrounds
	add(
		Group{ID: "bg-attachment", Properties: []string{"background-attachment"}, Rules: pre("bg", oneOf("fixed", "local", "scroll"))},
		Group{ID: "bg-clip", Properties: []string{"background-clip"}, Rules: pre("bg-clip", oneOf("border", "padding", "content", "text"))},
		Group{ID: "bg-origin", Properties: []string{"background-origin"}, Rules: pre("bg-origin", oneOf("border", "padding", "content"))},
		Group{ID: "bg-position", Properties: []string{"background-position"}, Rules: pre("bg", oneOf(bgPositions...), isArbitraryPosition)},
		Group{ID: "bg-repeat", Properties: []string{"background-repeat"},
			Rules: join(pre("bg", oneOf("no-repeat")), pre("bg-repeat", oneOf("", "x", "y", "round", "space")))},
		Group{ID: "bg-size", Properties: []string{"background-size"}, Rules: pre("bg", oneOf("auto", "cover", "contain"), isArbitrarySize)},
		Group{ID: "bg-image", Properties: []string{"background-image"},
			Rules: join(
				pre("bg", oneOf("none"), inTheme(t.BackgroundImages), isArbitraryImage),
				pre("bg-gradient-to", oneOf("t", "tr", "r", "br", "b", "bl", "l", "tl")),
			)},
		Group{ID: "bg-opacity", Properties: []string{"--tw-bg-opacity"}, Rules: pre("bg-opacity", number)},
		Group{ID: "bg-color", Properties: []string{"background-color"}, Rules: pre("bg", color)},
		Group{ID: "gradient-from", Properties: []string{"--tw-gradient-from"}, Rules: pre("from", color)},
		Group{ID: "gradient-via", Properties: []string{"--tw-gradient-via"}, Rules: pre("via", color)},
		Group{ID: "gradient-to", Properties: []string{"--tw-gradient-to"}, Rules: pre("to", color)},
	)

	// Borders
	add(edges("rounded", "rounded", "border-radius", radius, cornerParts, cornerEdges)...)
	add(edges("border-w", "border", "border-width", borderWidth, boxEdgeParts, boxEdges)...)
	add(Group{ID: "border-style", Properties: []string{"border-style"}, Rules: pre("border", oneOf(append([]string{"hidden"}, lineStyles...)...))})
	add(Group{ID: "border-opacity", Properties: []string{"--tw-border-opacity"}, Rules: pre("border-opacity", number)})
	add(edges("border-color", "border", "border-color", color, boxEdgeParts, boxEdges)...)
	add(
		Group{ID: "outline-style", Properties: []string{"outline-style"}, Rules: pre("outline", oneOf(append([]string{""}, lineStyles...)...))},
		Group{ID: "outline-offset", Properties: []string{"outline-offset"}, Rules: pre("outline-offset", isNumber, isArbitraryLength)},
		Group{ID: "outline-w", Properties: []string{"outline-width"}, Rules: pre("outline", isNumber, isArbitraryLength)},
		Group{ID: "outline-color", Properties: []string{"outline-color"}, Rules: pre("outline", color)},
		Group{ID: "ring-w", Properties: []string{"--tw-ring-shadow"}, Rules: pre("ring", isEmpty, isNumber, isArbitraryLength)},
		Group{ID: "ring-w-inset", Properties: []string{"--tw-ring-inset"}, Rules: pre("ring", oneOf("inset"))},
		Group{ID: "ring-offset-w", Properties: []string{"--tw-ring-offset-width"}, Rules: pre("ring-offset", isNumber, isArbitraryLength)},
		Group{ID: "ring-offset-color", Properties: []string{"--tw-ring-offset-color"}, Rules: pre("ring-offset", color)},
		Group{ID: "ring-opacity", Properties: []string{"--tw-ring-opacity"}, Rules: pre("ring-opacity", number)},
		Group{ID: "ring-color", Properties: []string{"--tw-ring-color"}, Rules: pre("ring", color)},
	)

	// Effects
	add(
		Group{ID: "shadow", Properties: []string{"box-shadow"},
			Rules: pre("shadow", oneOf("", "inner", "none"), isTshirt, inTheme(t.Shadows), isArbitraryShadow)},
		Group{ID: "shadow-color", Properties: []string{"--tw-shadow-color"}, Rules: pre("shadow", color)},
		Group{ID: "opacity", Properties: []string{"opacity"}, Rules: pre("opacity", number)},
		Group{ID: "blur", Properties: []string{"filter"}, Rules: pre("blur", oneOf("", "none"), isTshirt, isArbitraryValue)},
		Group{ID: "backdrop-blur", Properties: []string{"backdrop-filter"}, Rules: pre("backdrop-blur", oneOf("", "none"), isTshirt, isArbitraryValue)},
		Group{ID: "transition", Properties: []string{"transition-property"},
			Rules: pre("transition", oneOf("", "none", "all", "colors", "opacity", "shadow", "transform"), isArbitraryValue)},
		Group{ID: "duration", Properties: []string{"transition-duration"}, Rules: pre("duration", number)},
		Group{ID: "ease", Properties: []string{"transition-timing-function"}, Rules: pre("ease", oneOf("linear", "in", "out", "in-out"), isArbitraryValue)},
		Group{ID: "delay", Properties: []string{"transition-delay"}, Rules: pre("delay", number)},
		Group{ID: "animate", Properties: []string{"animation"}, Rules: pre("animate", oneOf("none", "spin", "ping", "pulse", "bounce"), inTheme(t.Animations), isAny)},
		Group{ID: "scale", Properties: []string{"transform"}, Rules: pre("scale", number), Conflicts: []string{"scale-x", "scale-y"}},
		Group{ID: "scale-x", Properties: []string{"transform"}, Rules: pre("scale-x", number)},
		Group{ID: "scale-y", Properties: []string{"transform"}, Rules: pre("scale-y", number)},
		Group{ID: "rotate", Properties: []string{"transform"}, Rules: pre("rotate", number)},
		Group{ID: "translate-x", Properties: []string{"transform"}, Rules: pre("translate-x", spacing)},
		Group{ID: "translate-y", Properties: []string{"transform"}, Rules: pre("translate-y", spacing)},
	)

	// Interactivity and SVG
	add(
		Group{ID: "cursor", Properties: []string{"cursor"}, Rules: pre("cursor", isAny)},
		Group{ID: "pointer-events", Properties: []string{"pointer-events"}, Rules: pre("pointer-events", oneOf("none", "auto"))},
		Group{ID: "select", Properties: []string{"user-select"}, Rules: pre("select", oneOf("none", "text", "all", "auto"))},
		Group{ID: "appearance", Properties: []string{"appearance"}, Rules: pre("appearance", oneOf("none", "auto"))},
		Group{ID: "fill", Properties: []string{"fill"}, Rules: pre("fill", oneOf("none"), color)},
		Group{ID: "stroke-w", Properties: []string{"stroke-width"}, Rules: pre("stroke", isNumber, isArbitraryLength)},
		Group{ID: "stroke", Properties: []string{"stroke"}, Rules: pre("stroke", oneOf("none"), color)},
	)

	return groups
}

// TailwindVocabulary builds the Tailwind classification table for a theme.
func TailwindVocabulary(t Theme) *Vocabulary {
	v, err := NewVocabulary(Tailwind(t))
	if err != nil {
		// The table is static; a failure here is a programming error that
		// the package tests catch.
		panic(fmt.Sprintf("twmerge: %v", err))
	}
	return v
}
