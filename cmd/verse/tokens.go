package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/verse-ds/verse/internal/lint"
	"github.com/verse-ds/verse/tokens"
)

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [kind]",
		Short: "List the design tokens",
		Long: `List the Verse design tokens with their values. Colors print with a
swatch when the terminal supports colors.

Kinds: ` + strings.Join(tokenKinds(), ", "),
		Example: `  verse tokens color
  verse tokens surface --scheme light
  verse tokens --json`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: tokenKinds(),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cmd)
		},
		RunE: runTokens,
	}

	cmd.Flags().String("scheme", tokens.Dark.String(), "Color scheme for surface roles: dark|light")
	cmd.Flags().Bool("json", false, "Print the tokens as JSON")
	return cmd
}

// tokenRow is one token in the listing.
type tokenRow struct {
	Kind  string `json:"kind"`
	Name  string `json:"name"`
	Value string `json:"value"`
	Hex   bool   `json:"-"`
}

// tokenTables lists every token kind. Surface rows depend on the scheme.
var tokenTables = map[string]func(tokens.Scheme) []tokenRow{
	"color": func(tokens.Scheme) []tokenRow {
		return rows("color", tokens.Colors(), tokens.Color.Hex, true)
	},
	"surface": func(s tokens.Scheme) []tokenRow {
		return rows("surface", tokens.SurfaceRoles(), func(r tokens.SurfaceRole) string { return r.In(s) }, true)
	},
	"space": func(tokens.Scheme) []tokenRow {
		return rows("space", tokens.Spaces(), tokens.Space.Value, false)
	},
	"radius": func(tokens.Scheme) []tokenRow {
		return rows("radius", tokens.Radii(), tokens.Radius.Value, false)
	},
	"border-width": func(tokens.Scheme) []tokenRow {
		return rows("border-width", tokens.BorderWidths(), tokens.BorderWidth.Value, false)
	},
	"shadow": func(tokens.Scheme) []tokenRow {
		return rows("shadow", tokens.Shadows(), tokens.Shadow.Value, false)
	},
	"gradient": func(tokens.Scheme) []tokenRow {
		return rows("gradient", tokens.Gradients(), tokens.Gradient.Value, false)
	},
	"font-family": func(tokens.Scheme) []tokenRow {
		return rows("font-family", tokens.FontFamilies(), tokens.FontFamily.CSS, false)
	},
	"font-size": func(tokens.Scheme) []tokenRow {
		return rows("font-size", tokens.FontSizes(), tokens.FontSize.Value, false)
	},
	"font-weight": func(tokens.Scheme) []tokenRow {
		return rows("font-weight", tokens.FontWeights(), tokens.FontWeight.Value, false)
	},
	"line-height": func(tokens.Scheme) []tokenRow {
		return rows("line-height", tokens.LineHeights(), tokens.LineHeight.Value, false)
	},
	"text-style": func(tokens.Scheme) []tokenRow {
		return rows("text-style", tokens.TextStyles(), textStyleValue, false)
	},
	"animation": func(tokens.Scheme) []tokenRow {
		return rows("animation", tokens.Animations(), tokens.Animation.Value, false)
	},
}

// tokenOrder is the listing order when no kind is given.
var tokenOrder = []string{
	"color", "surface", "space", "radius", "border-width", "shadow", "gradient",
	"font-family", "font-size", "font-weight", "line-height", "text-style", "animation",
}

func tokenKinds() []string {
	kinds := make([]string, 0, len(tokenTables))
	for kind := range tokenTables {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

func rows[T fmt.Stringer](kind string, members []T, value func(T) string, hex bool) []tokenRow {
	out := make([]tokenRow, len(members))
	for i, m := range members {
		out[i] = tokenRow{Kind: kind, Name: m.String(), Value: value(m), Hex: hex}
	}
	return out
}

func textStyleValue(t tokens.TextStyle) string {
	s := t.Spec()
	v := fmt.Sprintf("%s/%s %s", s.Size, s.LineHeight, s.Weight)
	if s.LetterSpacing != "" {
		v += " tracking " + s.LetterSpacing
	}
	return v
}

func runTokens(cmd *cobra.Command, args []string) error {
	schemeName, _ := cmd.Flags().GetString("scheme")
	scheme, err := tokens.ParseScheme(schemeName)
	if err != nil {
		return err
	}

	kinds := tokenOrder
	if len(args) == 1 {
		if _, ok := tokenTables[args[0]]; !ok {
			return fmt.Errorf("unknown token kind %q (valid: %s)", args[0], strings.Join(tokenKinds(), ", "))
		}
		kinds = args[:1]
	}

	var all []tokenRow
	for _, kind := range kinds {
		all = append(all, tokenTables[kind](scheme)...)
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(all)
	}

	printTokens(out, all, lint.NewReporter(out, buildReportConfig()))
	return nil
}

// printTokens prints rows grouped by kind, names aligned.
func printTokens(w io.Writer, all []tokenRow, rep *lint.Reporter) {
	width := 0
	for _, r := range all {
		width = max(width, len(r.Name))
	}

	kind := ""
	for _, r := range all {
		if r.Kind != kind {
			if kind != "" {
				fmt.Fprintln(w)
			}
			kind = r.Kind
			fmt.Fprintln(w, rep.Paint(lint.ToneHeading, kind))
		}

		line := fmt.Sprintf("  %-*s  %s", width, r.Name, r.Value)
		if r.Hex && rep.UseColors() {
			line += "  " + swatch(r.Value)
		}
		fmt.Fprintln(w, line)
	}
}

// swatch renders a color chip with its label in whichever of white or black
// reads better on it.
func swatch(hex string) string {
	label := "#000000"
	onWhite, errWhite := tokens.Contrast("#ffffff", hex)
	onBlack, errBlack := tokens.Contrast("#000000", hex)
	if errWhite == nil && errBlack == nil && onWhite > onBlack {
		label = "#ffffff"
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(label)).
		Padding(0, 1).
		Render("Aa")
}
