package tokens

import "fmt"

// Shadow is a named box shadow.
type Shadow int

const (
	ShadowSM Shadow = iota
	ShadowMD
	ShadowLG
	ShadowInner

	shadowEnd
)

var shadowNames = [...]string{
	ShadowSM:    "verse-sm",
	ShadowMD:    "verse-md",
	ShadowLG:    "verse-lg",
	ShadowInner: "verse-inner",
}

var shadowValues = [...]string{
	ShadowSM:    "0px 2px 60px 0px rgba(47, 169, 238, 0.2)",
	ShadowMD:    "0px 4px 24px 0px rgba(0, 0, 0, 0.32)",
	ShadowLG:    "0px 8px 40px 0px rgba(0, 0, 0, 0.4)",
	ShadowInner: "0px 1px 1px 0px rgba(0, 0, 0, 0.1)",
}

var (
	_ = [1]struct{}{}[len(shadowNames)-int(shadowEnd)]
	_ = [1]struct{}{}[len(shadowValues)-int(shadowEnd)]
)

// Shadows returns every shadow, softest first.
func Shadows() []Shadow { return members(shadowEnd) }

// ParseShadow resolves a name such as "verse-md".
func ParseShadow(name string) (Shadow, error) {
	return lookup[Shadow]("shadow", name, shadowNames[:])
}

func (s Shadow) String() string { return shadowNames[s] }

// Value returns the box-shadow value.
func (s Shadow) Value() string { return shadowValues[s] }

// Gradient is a named background image.
type Gradient int

const (
	GradientBrand Gradient = iota
	GradientBrandVertical

	gradientEnd
)

var gradientNames = [...]string{
	GradientBrand:         "verse-gradient",
	GradientBrandVertical: "verse-gradient-vertical",
}

var gradientValues = [...]string{
	GradientBrand:         "linear-gradient(90deg, " + colorValues[ColorVerseBlue] + ", " + colorValues[ColorVersePink] + ")",
	GradientBrandVertical: "linear-gradient(180deg, " + colorValues[Color1000] + ", " + colorValues[Color800] + ")",
}

var (
	_ = [1]struct{}{}[len(gradientNames)-int(gradientEnd)]
	_ = [1]struct{}{}[len(gradientValues)-int(gradientEnd)]
)

// Gradients returns every gradient.
func Gradients() []Gradient { return members(gradientEnd) }

// ParseGradient resolves a name such as "verse-gradient".
func ParseGradient(name string) (Gradient, error) {
	return lookup[Gradient]("gradient", name, gradientNames[:])
}

func (g Gradient) String() string { return gradientNames[g] }

// Value returns the background-image value.
func (g Gradient) Value() string { return gradientValues[g] }

// Animation is a named enter/exit animation.
type Animation int

const (
	AnimateFadeIn Animation = iota
	AnimateFadeOut
	AnimateSlideIn
	AnimateSlideOut

	animationEnd
)

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// Keyframe is one stop of a keyframes rule.
type Keyframe struct {
	Offset       string
	Declarations []Declaration
}

type animationSpec struct {
	name      string
	keyframes string
	value     string
	frames    []Keyframe
}

var animationSpecs = [...]animationSpec{
	AnimateFadeIn: {
		name:      "fade-in",
		keyframes: "fadeIn",
		value:     "fadeIn 150ms ease-out",
		frames: []Keyframe{
			{Offset: "0%", Declarations: []Declaration{{"opacity", "0"}}},
			{Offset: "100%", Declarations: []Declaration{{"opacity", "1"}}},
		},
	},
	AnimateFadeOut: {
		name:      "fade-out",
		keyframes: "fadeOut",
		value:     "fadeOut 150ms ease-in",
		frames: []Keyframe{
			{Offset: "0%", Declarations: []Declaration{{"opacity", "1"}}},
			{Offset: "100%", Declarations: []Declaration{{"opacity", "0"}}},
		},
	},
	AnimateSlideIn: {
		name:      "slide-in",
		keyframes: "slideIn",
		value:     "slideIn 200ms ease-out",
		frames: []Keyframe{
			{Offset: "0%", Declarations: []Declaration{{"transform", "translateY(-10px)"}, {"opacity", "0"}}},
			{Offset: "100%", Declarations: []Declaration{{"transform", "translateY(0)"}, {"opacity", "1"}}},
		},
	},
	AnimateSlideOut: {
		name:      "slide-out",
		keyframes: "slideOut",
		value:     "slideOut 200ms ease-in",
		frames: []Keyframe{
			{Offset: "0%", Declarations: []Declaration{{"transform", "translateY(0)"}, {"opacity", "1"}}},
			{Offset: "100%", Declarations: []Declaration{{"transform", "translateY(-10px)"}, {"opacity", "0"}}},
		},
	},
}

var _ = [1]struct{}{}[len(animationSpecs)-int(animationEnd)]

// Animations returns every animation.
func Animations() []Animation { return members(animationEnd) }

// ParseAnimation resolves a name such as "slide-in".
func ParseAnimation(name string) (Animation, error) {
	for _, a := range Animations() {
		if animationSpecs[a].name == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: animation %q", ErrUnknown, name)
}

func (a Animation) String() string { return animationSpecs[a].name }

// Value returns the animation shorthand, e.g. "fadeIn 150ms ease-out".
func (a Animation) Value() string { return animationSpecs[a].value }

// KeyframesName is the @keyframes identifier the animation refers to.
func (a Animation) KeyframesName() string { return animationSpecs[a].keyframes }

// Keyframes returns a copy of the animation's keyframe stops.
func (a Animation) Keyframes() []Keyframe {
	frames := animationSpecs[a].frames
	out := make([]Keyframe, len(frames))
	for i, f := range frames {
		out[i] = Keyframe{
			Offset:       f.Offset,
			Declarations: append([]Declaration(nil), f.Declarations...),
		}
	}
	return out
}
