package preset

import (
	"bufio"
	"fmt"
	"io"

	"github.com/verse-ds/verse/tokens"
)

// ScopeTheme is the scope of the static theme variables.
const ScopeTheme = "@theme"

// DefaultScheme is the scheme applied when no scheme class is present.
const DefaultScheme = tokens.Dark

// Variable is a CSS custom property declared by the theme sheet.
type Variable struct {
	Scope string
	Name  string
	Value string
}

// SchemeScope returns the selector the scheme's surface variables are
// declared under. The default scheme also applies to :root.
func SchemeScope(s tokens.Scheme) string {
	if s == DefaultScheme {
		return ":root, ." + s.String()
	}
	return "." + s.String()
}

// Variables lists every custom property of the theme sheet, theme scope
// first, then one scope per scheme.
func Variables() []Variable {
	var vars []Variable
	add := func(name, value string) {
		vars = append(vars, Variable{Scope: ScopeTheme, Name: name, Value: value})
	}

	for _, c := range tokens.Colors() {
		add("--color-"+c.String(), c.Hex())
	}
	for _, name := range semanticColors() {
		add("--color-"+name, "var(--"+name+")")
	}
	for _, f := range tokens.FontFamilies() {
		add("--font-"+f.String(), f.CSS())
	}
	for _, ts := range tokens.TextStyles() {
		name := "--text-" + ts.String()
		spec := ts.Spec()
		add(name, spec.Size)
		add(name+"--line-height", spec.LineHeight)
		if spec.LetterSpacing != "" {
			add(name+"--letter-spacing", spec.LetterSpacing)
		}
		add(name+"--font-weight", spec.Weight)
	}
	for _, s := range presetSpaces() {
		add("--spacing-"+s.String(), s.Value())
	}
	for _, r := range presetRadii() {
		add("--radius-"+r.String(), r.Value())
	}
	for _, s := range tokens.Shadows() {
		add("--shadow-"+s.String(), s.Value())
	}
	for _, g := range tokens.Gradients() {
		add("--image-"+g.String(), g.Value())
	}
	for _, a := range tokens.Animations() {
		add("--animate-"+a.String(), a.Value())
	}

	for _, s := range tokens.Schemes() {
		scope := SchemeScope(s)
		for _, r := range tokens.SurfaceRoles() {
			vars = append(vars, Variable{Scope: scope, Name: r.Variable(), Value: r.In(s)})
		}
		vars = append(vars, Variable{Scope: scope, Name: "--" + ForegroundColor, Value: "var(" + tokens.RoleTextPrimary.Variable() + ")"})
	}

	return vars
}

// WriteCSS writes the theme sheet: an @theme block with the static tokens,
// the surface variables of each scheme and the animation keyframes.
func WriteCSS(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "/* %s */\n", generatedHeader)

	scope := ""
	for _, v := range Variables() {
		if v.Scope != scope {
			if scope != "" {
				bw.WriteString("}\n")
			}
			fmt.Fprintf(bw, "\n%s {\n", v.Scope)
			scope = v.Scope
		}
		fmt.Fprintf(bw, "  %s: %s;\n", v.Name, v.Value)
	}
	if scope != "" {
		bw.WriteString("}\n")
	}

	for _, a := range tokens.Animations() {
		fmt.Fprintf(bw, "\n@keyframes %s {\n", a.KeyframesName())
		for _, kf := range a.Keyframes() {
			fmt.Fprintf(bw, "  %s {", kf.Offset)
			for _, d := range kf.Declarations {
				fmt.Fprintf(bw, " %s: %s;", d.Property, d.Value)
			}
			bw.WriteString(" }\n")
		}
		bw.WriteString("}\n")
	}

	return bw.Flush()
}
