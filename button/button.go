// Package button resolves the class list of the Verse button.
//
// Resolve is a pure function of its Props: base classes, then the variant,
// size and full-width classes, then the caller's classes, merged so that a
// later utility overrides an earlier one of the same group. Variants and sizes
// are closed enumerations whose class tables are checked for completeness at
// compile time.
package button

import (
	"fmt"

	"github.com/verse-ds/verse/preset"
	"github.com/verse-ds/verse/twmerge"
)

// Variant is the visual style of a button. The zero value selects Primary.
type Variant int

const (
	Primary Variant = iota + 1
	Secondary
	Default
	Text
	Link
	Ghost
	Danger
	Success
	Gradient

	variantEnd
)

// Size is the scale step of a button. The zero value selects MD.
type Size int

const (
	SM Size = iota + 1
	MD
	LG
	XL

	sizeEnd
)

var variantNames = [...]string{
	Primary:   "primary",
	Secondary: "secondary",
	Default:   "default",
	Text:      "text",
	Link:      "link",
	Ghost:     "ghost",
	Danger:    "danger",
	Success:   "success",
	Gradient:  "gradient",
}

var variantClasses = [...]string{
	Primary:   "bg-verse-blue text-white hover:bg-verse-blue/90",
	Secondary: "bg-verse-pink text-white hover:bg-verse-pink/90",
	Default:   "bg-surface text-text-primary border border-border hover:bg-surface-elevated",
	Text:      "bg-transparent text-text-primary hover:bg-surface-muted",
	Link:      "bg-transparent text-verse-blue hover:underline",
	Ghost:     "bg-transparent text-text-primary border border-border hover:bg-surface-muted",
	Danger:    "bg-error-100 text-white hover:bg-error-100/90",
	Success:   "bg-success-100 text-white hover:bg-success-100/90",
	Gradient:  "bg-verse-gradient text-white hover:opacity-90",
}

var sizeNames = [...]string{
	SM: "sm",
	MD: "md",
	LG: "lg",
	XL: "xl",
}

var sizeClasses = [...]string{
	SM: "h-8 px-s text-label-sm",
	MD: "h-10 px-m text-label",
	LG: "h-12 px-l text-label-lg",
	XL: "h-14 px-xl text-label-lg",
}

var iconClasses = [...]string{
	SM: "w-4 h-4",
	MD: "w-[18px] h-[18px]",
	LG: "w-5 h-5",
	XL: "w-6 h-6",
}

var (
	_ = [1]struct{}{}[len(variantNames)-int(variantEnd)]
	_ = [1]struct{}{}[len(variantClasses)-int(variantEnd)]
	_ = [1]struct{}{}[len(sizeNames)-int(sizeEnd)]
	_ = [1]struct{}{}[len(sizeClasses)-int(sizeEnd)]
	_ = [1]struct{}{}[len(iconClasses)-int(sizeEnd)]
)

// baseClasses apply to every button: layout, focus ring, disabled state.
var baseClasses = []string{
	"inline-flex items-center justify-center gap-s rounded-md font-medium transition-all duration-150",
	"focus:outline-none focus:ring-2 focus:ring-verse-blue focus:ring-offset-2 focus:ring-offset-background",
	"disabled:opacity-50 disabled:cursor-not-allowed",
}

// FullWidthClass stretches the button to its container.
const FullWidthClass = "w-full"

// SpinnerClass animates the busy indicator; the icon size classes follow it.
const SpinnerClass = "animate-spin"

// merger knows the preset's custom scales, so "text-label" is a font size
// and does not override "text-white".
var merger = twmerge.New(twmerge.WithTheme(preset.MergeTheme()))

// Variants returns every variant in declaration order.
func Variants() []Variant {
	out := make([]Variant, 0, variantEnd-1)
	for v := Primary; v < variantEnd; v++ {
		out = append(out, v)
	}
	return out
}

// ParseVariant resolves a variant name. The empty name selects the default.
func ParseVariant(name string) (Variant, error) {
	if name == "" {
		return Primary, nil
	}
	for _, v := range Variants() {
		if variantNames[v] == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown variant %q", name)
}

func (v Variant) orDefault() Variant {
	if v == 0 {
		return Primary
	}
	return v
}

func (v Variant) String() string { return variantNames[v.orDefault()] }

// Classes returns the variant's class fragment.
func (v Variant) Classes() string { return variantClasses[v.orDefault()] }

func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Sizes returns every size, smallest first.
func Sizes() []Size {
	out := make([]Size, 0, sizeEnd-1)
	for s := SM; s < sizeEnd; s++ {
		out = append(out, s)
	}
	return out
}

// ParseSize resolves a size name. The empty name selects the default.
func ParseSize(name string) (Size, error) {
	if name == "" {
		return MD, nil
	}
	for _, s := range Sizes() {
		if sizeNames[s] == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown size %q", name)
}

func (s Size) orDefault() Size {
	if s == 0 {
		return MD
	}
	return s
}

func (s Size) String() string { return sizeNames[s.orDefault()] }

// Classes returns the size's height, padding and type classes.
func (s Size) Classes() string { return sizeClasses[s.orDefault()] }

// IconClasses returns the dimensions of icons and the spinner at this size.
func (s Size) IconClasses() string { return iconClasses[s.orDefault()] }

func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Size) UnmarshalText(text []byte) error {
	parsed, err := ParseSize(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// BaseClasses returns the classes shared by every button.
func BaseClasses() string {
	return twmerge.Join(baseClasses...)
}
