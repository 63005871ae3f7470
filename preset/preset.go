// Package preset exports the Verse tokens as a Tailwind CSS preset and as a
// CSS theme sheet.
//
// The preset is passive data: New builds it from the token tables and the
// encoders in this package write it as JSON, an ES module, YAML, TOML or CSS.
// Map-shaped sections keep token declaration order in every format that can
// express order.
package preset

import (
	"github.com/verse-ds/verse/tokens"
	"github.com/verse-ds/verse/twmerge"
)

// Preset mirrors the shape of a Tailwind config object.
type Preset struct {
	Content  []string `json:"content" yaml:"content"`
	DarkMode string   `json:"darkMode" yaml:"darkMode"`
	Theme    Theme    `json:"theme" yaml:"theme"`
	Plugins  []string `json:"plugins" yaml:"plugins"`
}

// Theme holds the theme section of the preset.
type Theme struct {
	Extend Extend `json:"extend" yaml:"extend"`
}

// Extend lists the scales the preset adds to the framework defaults.
type Extend struct {
	Colors          Map[string]           `json:"colors" yaml:"colors"`
	FontFamily      Map[[]string]         `json:"fontFamily" yaml:"fontFamily"`
	FontSize        Map[FontSize]         `json:"fontSize" yaml:"fontSize"`
	Spacing         Map[string]           `json:"spacing" yaml:"spacing"`
	BorderRadius    Map[string]           `json:"borderRadius" yaml:"borderRadius"`
	BoxShadow       Map[string]           `json:"boxShadow" yaml:"boxShadow"`
	BackgroundImage Map[string]           `json:"backgroundImage" yaml:"backgroundImage"`
	Animation       Map[string]           `json:"animation" yaml:"animation"`
	Keyframes       Map[Map[Map[string]]] `json:"keyframes" yaml:"keyframes"`
}

// FontSize is a type scale entry. It encodes as the framework's
// [size, {lineHeight, letterSpacing, fontWeight}] tuple.
type FontSize struct {
	Size          string
	LineHeight    string
	LetterSpacing string
	FontWeight    string
}

// DarkModeClass toggles dark mode with a class on an ancestor element.
const DarkModeClass = "class"

// ForegroundColor is the semantic foreground color. It has no token of its
// own and aliases the primary text color.
const ForegroundColor = "foreground"

// New builds the preset from the token tables.
func New() *Preset {
	p := &Preset{
		Content:  []string{},
		DarkMode: DarkModeClass,
		Plugins:  []string{},
	}
	ext := &p.Theme.Extend

	for _, c := range tokens.Colors() {
		ext.Colors.Set(c.String(), c.Hex())
	}
	for _, r := range semanticColors() {
		ext.Colors.Set(r, "var(--"+r+")")
	}

	for _, f := range tokens.FontFamilies() {
		ext.FontFamily.Set(f.String(), f.Stack())
	}

	for _, ts := range tokens.TextStyles() {
		spec := ts.Spec()
		ext.FontSize.Set(ts.String(), FontSize{
			Size:          spec.Size,
			LineHeight:    spec.LineHeight,
			LetterSpacing: spec.LetterSpacing,
			FontWeight:    spec.Weight,
		})
	}

	for _, s := range presetSpaces() {
		ext.Spacing.Set(s.String(), s.Value())
	}
	for _, r := range presetRadii() {
		ext.BorderRadius.Set(r.String(), r.Value())
	}
	for _, s := range tokens.Shadows() {
		ext.BoxShadow.Set(s.String(), s.Value())
	}
	for _, g := range tokens.Gradients() {
		ext.BackgroundImage.Set(g.String(), g.Value())
	}

	for _, a := range tokens.Animations() {
		ext.Animation.Set(a.String(), a.Value())

		var frames Map[Map[string]]
		for _, kf := range a.Keyframes() {
			var decls Map[string]
			for _, d := range kf.Declarations {
				decls.Set(d.Property, d.Value)
			}
			frames.Set(kf.Offset, decls)
		}
		ext.Keyframes.Set(a.KeyframesName(), frames)
	}

	return p
}

// semanticColors lists the scheme-dependent color names in preset order.
func semanticColors() []string {
	roles := tokens.SemanticRoles()
	names := make([]string, 0, len(roles)+1)
	names = append(names, roles[0].String(), ForegroundColor)
	for _, r := range roles[1:] {
		names = append(names, r.String())
	}
	return names
}

// presetSpaces skips the 0 and px steps, which the framework already has.
func presetSpaces() []tokens.Space {
	return tokens.Spaces()[tokens.SpaceXS:]
}

// presetRadii skips "none", which the framework already has.
func presetRadii() []tokens.Radius {
	return tokens.Radii()[tokens.RadiusXS:]
}

// MergeTheme returns the scale names the preset adds, for classifying the
// custom utilities it enables ("text-label-sm", "bg-verse-gradient", ...).
func (p *Preset) MergeTheme() twmerge.Theme {
	ext := p.Theme.Extend
	return twmerge.Theme{
		Colors:           ext.Colors.Keys(),
		Spacing:          ext.Spacing.Keys(),
		FontSizes:        ext.FontSize.Keys(),
		FontFamilies:     ext.FontFamily.Keys(),
		Radii:            ext.BorderRadius.Keys(),
		Shadows:          ext.BoxShadow.Keys(),
		BackgroundImages: ext.BackgroundImage.Keys(),
		Animations:       ext.Animation.Keys(),
	}
}

// MergeTheme is New().MergeTheme().
func MergeTheme() twmerge.Theme {
	return New().MergeTheme()
}
