package twmerge

import "strings"

// Family is a coarse grouping of CSS properties used to describe what a
// utility group controls.
type Family string

// Property families.
const (
	FamilyColor         Family = "color"
	FamilySpacing       Family = "spacing"
	FamilySizing        Family = "sizing"
	FamilyLayout        Family = "layout"
	FamilyTypography    Family = "typography"
	FamilyBorder        Family = "border"
	FamilyEffects       Family = "effects"
	FamilyInteractivity Family = "interactivity"
	FamilyOther         Family = "other"
)

// propertyFamilies maps CSS property names to families.
var propertyFamilies = map[string]Family{
	// Color
	"background-color":       FamilyColor,
	"color":                  FamilyColor,
	"border-color":           FamilyColor,
	"outline-color":          FamilyColor,
	"fill":                   FamilyColor,
	"stroke":                 FamilyColor,
	"caret-color":            FamilyColor,
	"accent-color":           FamilyColor,
	"--tw-ring-color":        FamilyColor,
	"--tw-ring-offset-color": FamilyColor,
	"--tw-shadow-color":      FamilyColor,
	"text-decoration-color":  FamilyColor,
	"--tw-text-opacity":      FamilyColor,
	"--tw-bg-opacity":        FamilyColor,
	"--tw-border-opacity":    FamilyColor,
	"--tw-ring-opacity":      FamilyColor,

	// Spacing
	"padding":        FamilySpacing,
	"padding-top":    FamilySpacing,
	"padding-right":  FamilySpacing,
	"padding-bottom": FamilySpacing,
	"padding-left":   FamilySpacing,
	"padding-inline": FamilySpacing,
	"padding-block":  FamilySpacing,
	"margin":         FamilySpacing,
	"margin-top":     FamilySpacing,
	"margin-right":   FamilySpacing,
	"margin-bottom":  FamilySpacing,
	"margin-left":    FamilySpacing,
	"margin-inline":  FamilySpacing,
	"margin-block":   FamilySpacing,
	"gap":            FamilySpacing,
	"row-gap":        FamilySpacing,
	"column-gap":     FamilySpacing,

	// Sizing
	"width":      FamilySizing,
	"height":     FamilySizing,
	"min-width":  FamilySizing,
	"min-height": FamilySizing,
	"max-width":  FamilySizing,
	"max-height": FamilySizing,
	"flex-basis": FamilySizing,

	// Layout
	"display":         FamilyLayout,
	"position":        FamilyLayout,
	"inset":           FamilyLayout,
	"top":             FamilyLayout,
	"right":           FamilyLayout,
	"bottom":          FamilyLayout,
	"left":            FamilyLayout,
	"z-index":         FamilyLayout,
	"flex":            FamilyLayout,
	"flex-direction":  FamilyLayout,
	"flex-wrap":       FamilyLayout,
	"flex-grow":       FamilyLayout,
	"flex-shrink":     FamilyLayout,
	"justify-content": FamilyLayout,
	"justify-items":   FamilyLayout,
	"justify-self":    FamilyLayout,
	"align-items":     FamilyLayout,
	"align-self":      FamilyLayout,
	"align-content":   FamilyLayout,
	"overflow":        FamilyLayout,
	"overflow-x":      FamilyLayout,
	"overflow-y":      FamilyLayout,
	"order":           FamilyLayout,
	"visibility":      FamilyLayout,

	// Typography
	"font-family":          FamilyTypography,
	"font-size":            FamilyTypography,
	"font-weight":          FamilyTypography,
	"font-style":           FamilyTypography,
	"line-height":          FamilyTypography,
	"letter-spacing":       FamilyTypography,
	"text-align":           FamilyTypography,
	"text-decoration-line": FamilyTypography,
	"text-transform":       FamilyTypography,
	"text-overflow":        FamilyTypography,
	"text-wrap":            FamilyTypography,
	"white-space":          FamilyTypography,
	"word-break":           FamilyTypography,

	// Border
	"border-width":           FamilyBorder,
	"border-style":           FamilyBorder,
	"border-radius":          FamilyBorder,
	"outline-style":          FamilyBorder,
	"outline-width":          FamilyBorder,
	"outline-offset":         FamilyBorder,
	"--tw-ring-shadow":       FamilyBorder,
	"--tw-ring-offset-width": FamilyBorder,

	// Effects
	"opacity":                    FamilyEffects,
	"box-shadow":                 FamilyEffects,
	"background-image":           FamilyEffects,
	"background-size":            FamilyEffects,
	"background-position":        FamilyEffects,
	"background-repeat":          FamilyEffects,
	"transition-property":        FamilyEffects,
	"transition-duration":        FamilyEffects,
	"transition-timing-function": FamilyEffects,
	"transition-delay":           FamilyEffects,
	"transform":                  FamilyEffects,
	"animation":                  FamilyEffects,
	"filter":                     FamilyEffects,
	"backdrop-filter":            FamilyEffects,

	// Interactivity
	"cursor":         FamilyInteractivity,
	"pointer-events": FamilyInteractivity,
	"user-select":    FamilyInteractivity,
	"appearance":     FamilyInteractivity,
}

// categorizeProperty determines the family of a CSS property.
func categorizeProperty(name string) Family {
	if fam, ok := propertyFamilies[name]; ok {
		return fam
	}

	switch {
	case strings.HasSuffix(name, "-color"):
		return FamilyColor
	case strings.HasPrefix(name, "padding-"), strings.HasPrefix(name, "margin-"),
		strings.HasPrefix(name, "scroll-"):
		return FamilySpacing
	case strings.HasPrefix(name, "min-"), strings.HasPrefix(name, "max-"):
		return FamilySizing
	case strings.HasPrefix(name, "border-"), strings.HasPrefix(name, "outline-"):
		return FamilyBorder
	case strings.HasPrefix(name, "flex-"), strings.HasPrefix(name, "grid-"),
		strings.HasPrefix(name, "inset-"):
		return FamilyLayout
	case strings.HasPrefix(name, "font-"), strings.HasPrefix(name, "text-"):
		return FamilyTypography
	case strings.HasPrefix(name, "transition-"), strings.HasPrefix(name, "animation-"),
		strings.HasPrefix(name, "mask"):
		return FamilyEffects
	}

	return FamilyOther
}
