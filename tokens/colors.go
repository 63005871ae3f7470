package tokens

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a brand, neutral or status color.
type Color int

// Brand, neutral (dark theme default) and status colors.
const (
	ColorVerseBlue Color = iota
	ColorVersePink
	ColorVerseDisabled

	Color0
	Color200
	Color400
	Color600
	Color800
	Color1000

	ColorSuccess25
	ColorSuccess100
	ColorWarning25
	ColorWarning100
	ColorError25
	ColorError100

	colorEnd
)

var colorNames = [...]string{
	ColorVerseBlue:     "verse-blue",
	ColorVersePink:     "verse-pink",
	ColorVerseDisabled: "verse-disabled",
	Color0:             "color-0",
	Color200:           "color-200",
	Color400:           "color-400",
	Color600:           "color-600",
	Color800:           "color-800",
	Color1000:          "color-1000",
	ColorSuccess25:     "success-25",
	ColorSuccess100:    "success-100",
	ColorWarning25:     "warning-25",
	ColorWarning100:    "warning-100",
	ColorError25:       "error-25",
	ColorError100:      "error-100",
}

var colorValues = [...]string{
	ColorVerseBlue:     "#0085ff",
	ColorVersePink:     "#db00ff",
	ColorVerseDisabled: "#8792a8",
	Color0:             "#ffffff",
	Color200:           "#8b92aa",
	Color400:           "#434c74",
	Color600:           "#202b58",
	Color800:           "#10183c",
	Color1000:          "#0a0a2c",
	ColorSuccess25:     "#1c4252",
	ColorSuccess100:    "#52e0c8",
	ColorWarning25:     "#433936",
	ColorWarning100:    "#ebc146",
	ColorError25:       "#422133",
	ColorError100:      "#eb6547",
}

var (
	_ = [1]struct{}{}[len(colorNames)-int(colorEnd)]
	_ = [1]struct{}{}[len(colorValues)-int(colorEnd)]
)

// Colors returns every color in declaration order.
func Colors() []Color { return members(colorEnd) }

// ParseColor resolves a utility name such as "verse-blue".
func ParseColor(name string) (Color, error) {
	return lookup[Color]("color", name, colorNames[:])
}

func (c Color) String() string { return colorNames[c] }

// Hex returns the color as a lowercase #rrggbb string.
func (c Color) Hex() string { return colorValues[c] }

// Scheme is a color scheme for the semantic surface roles.
type Scheme int

// Dark is the default scheme.
const (
	Dark Scheme = iota
	Light

	schemeEnd
)

var schemeNames = [...]string{
	Dark:  "dark",
	Light: "light",
}

var _ = [1]struct{}{}[len(schemeNames)-int(schemeEnd)]

// Schemes returns every scheme, default first.
func Schemes() []Scheme { return members(schemeEnd) }

// ParseScheme resolves "dark" or "light".
func ParseScheme(name string) (Scheme, error) {
	return lookup[Scheme]("scheme", name, schemeNames[:])
}

func (s Scheme) String() string { return schemeNames[s] }

// SurfaceRole is a semantic color role whose value depends on the scheme.
type SurfaceRole int

// Roles up to RoleTextDisabled are published as CSS variables; RolePrimary
// and RoleSecondary only alias brand colors.
const (
	RoleBackground SurfaceRole = iota
	RoleSurface
	RoleSurfaceMuted
	RoleSurfaceElevated
	RoleBorder
	RoleBorderStrong
	RoleTextPrimary
	RoleTextSecondary
	RoleTextDisabled
	RolePrimary
	RoleSecondary

	surfaceRoleEnd
)

var surfaceRoleNames = [...]string{
	RoleBackground:      "background",
	RoleSurface:         "surface",
	RoleSurfaceMuted:    "surface-muted",
	RoleSurfaceElevated: "surface-elevated",
	RoleBorder:          "border",
	RoleBorderStrong:    "border-strong",
	RoleTextPrimary:     "text-primary",
	RoleTextSecondary:   "text-secondary",
	RoleTextDisabled:    "text-disabled",
	RolePrimary:         "primary",
	RoleSecondary:       "secondary",
}

var surfaceValues = [...][surfaceRoleEnd]string{
	Dark: {
		RoleBackground:      Color1000.Hex(),
		RoleSurface:         Color600.Hex(),
		RoleSurfaceMuted:    Color800.Hex(),
		RoleSurfaceElevated: Color400.Hex(),
		RoleBorder:          Color400.Hex(),
		RoleBorderStrong:    Color200.Hex(),
		RoleTextPrimary:     Color0.Hex(),
		RoleTextSecondary:   Color200.Hex(),
		RoleTextDisabled:    ColorVerseDisabled.Hex(),
		RolePrimary:         ColorVerseBlue.Hex(),
		RoleSecondary:       ColorVersePink.Hex(),
	},
	Light: {
		RoleBackground:      "#f5f7fa",
		RoleSurface:         Color0.Hex(),
		RoleSurfaceMuted:    "#e8edf5",
		RoleSurfaceElevated: "#ffffff",
		RoleBorder:          "#d0d5e0",
		RoleBorderStrong:    "#a0a8b8",
		RoleTextPrimary:     Color1000.Hex(),
		RoleTextSecondary:   Color400.Hex(),
		RoleTextDisabled:    ColorVerseDisabled.Hex(),
		RolePrimary:         ColorVerseBlue.Hex(),
		RoleSecondary:       ColorVersePink.Hex(),
	},
}

var (
	_ = [1]struct{}{}[len(surfaceRoleNames)-int(surfaceRoleEnd)]
	_ = [1]struct{}{}[len(surfaceValues)-int(schemeEnd)]
)

// SurfaceRoles returns every role in declaration order.
func SurfaceRoles() []SurfaceRole { return members(surfaceRoleEnd) }

// SemanticRoles returns the roles published as CSS variables.
func SemanticRoles() []SurfaceRole { return members(RolePrimary) }

// ParseSurfaceRole resolves a role name such as "surface-muted".
func ParseSurfaceRole(name string) (SurfaceRole, error) {
	return lookup[SurfaceRole]("surface role", name, surfaceRoleNames[:])
}

func (r SurfaceRole) String() string { return surfaceRoleNames[r] }

// Variable is the CSS custom property carrying the role, e.g. "--surface-muted".
func (r SurfaceRole) Variable() string { return "--" + surfaceRoleNames[r] }

// In returns the role's hex value under the given scheme.
func (r SurfaceRole) In(s Scheme) string { return surfaceValues[s][r] }

// Contrast returns the WCAG 2 contrast ratio between two hex colors, from 1 to 21.
func Contrast(fg, bg string) (float64, error) {
	a, err := colorful.Hex(fg)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", fg, err)
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", bg, err)
	}

	la, lb := luminance(a), luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05), nil
}

// luminance is the WCAG relative luminance of an sRGB color.
func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
