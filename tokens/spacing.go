package tokens

// Space is a step of the t-shirt sized spacing scale.
type Space int

const (
	Space0 Space = iota
	SpacePx
	SpaceXS
	SpaceS
	SpaceM
	SpaceL
	SpaceXL
	SpaceXXL
	SpaceXXXL
	SpaceXXXXL

	spaceEnd
)

var spaceNames = [...]string{
	Space0:     "0",
	SpacePx:    "px",
	SpaceXS:    "xs",
	SpaceS:     "s",
	SpaceM:     "m",
	SpaceL:     "l",
	SpaceXL:    "xl",
	SpaceXXL:   "xxl",
	SpaceXXXL:  "xxxl",
	SpaceXXXXL: "xxxxl",
}

var spaceValues = [...]string{
	Space0:     "0px",
	SpacePx:    "1px",
	SpaceXS:    "4px",
	SpaceS:     "8px",
	SpaceM:     "16px",
	SpaceL:     "24px",
	SpaceXL:    "32px",
	SpaceXXL:   "40px",
	SpaceXXXL:  "48px",
	SpaceXXXXL: "64px",
}

var (
	_ = [1]struct{}{}[len(spaceNames)-int(spaceEnd)]
	_ = [1]struct{}{}[len(spaceValues)-int(spaceEnd)]
)

// Spaces returns every spacing step, smallest first.
func Spaces() []Space { return members(spaceEnd) }

// ParseSpace resolves a step name such as "xl".
func ParseSpace(name string) (Space, error) {
	return lookup[Space]("space", name, spaceNames[:])
}

func (s Space) String() string { return spaceNames[s] }

// Value returns the step as a CSS length.
func (s Space) Value() string { return spaceValues[s] }

// Radius is a border radius step.
type Radius int

const (
	RadiusNone Radius = iota
	RadiusXS
	RadiusSM
	RadiusMD
	RadiusLG
	RadiusXL
	RadiusXXL
	RadiusPill

	radiusEnd
)

var radiusNames = [...]string{
	RadiusNone: "none",
	RadiusXS:   "xs",
	RadiusSM:   "sm",
	RadiusMD:   "md",
	RadiusLG:   "lg",
	RadiusXL:   "xl",
	RadiusXXL:  "xxl",
	RadiusPill: "pill",
}

var radiusValues = [...]string{
	RadiusNone: "0px",
	RadiusXS:   "4px",
	RadiusSM:   "8px",
	RadiusMD:   "12px",
	RadiusLG:   "16px",
	RadiusXL:   "24px",
	RadiusXXL:  "32px",
	RadiusPill: "9999px",
}

var (
	_ = [1]struct{}{}[len(radiusNames)-int(radiusEnd)]
	_ = [1]struct{}{}[len(radiusValues)-int(radiusEnd)]
)

// Radii returns every radius step, smallest first.
func Radii() []Radius { return members(radiusEnd) }

// ParseRadius resolves a step name such as "pill".
func ParseRadius(name string) (Radius, error) {
	return lookup[Radius]("radius", name, radiusNames[:])
}

func (r Radius) String() string { return radiusNames[r] }

// Value returns the radius as a CSS length.
func (r Radius) Value() string { return radiusValues[r] }

// BorderWidth is a border width step.
type BorderWidth int

const (
	BorderNone BorderWidth = iota
	BorderHairline
	BorderSM
	BorderLG

	borderWidthEnd
)

var borderWidthNames = [...]string{
	BorderNone:     "none",
	BorderHairline: "hairline",
	BorderSM:       "sm",
	BorderLG:       "lg",
}

var borderWidthValues = [...]string{
	BorderNone:     "0px",
	BorderHairline: "1px",
	BorderSM:       "2px",
	BorderLG:       "4px",
}

var (
	_ = [1]struct{}{}[len(borderWidthNames)-int(borderWidthEnd)]
	_ = [1]struct{}{}[len(borderWidthValues)-int(borderWidthEnd)]
)

// BorderWidths returns every border width step, thinnest first.
func BorderWidths() []BorderWidth { return members(borderWidthEnd) }

// ParseBorderWidth resolves a step name such as "hairline".
func ParseBorderWidth(name string) (BorderWidth, error) {
	return lookup[BorderWidth]("border width", name, borderWidthNames[:])
}

func (b BorderWidth) String() string { return borderWidthNames[b] }

// Value returns the width as a CSS length.
func (b BorderWidth) Value() string { return borderWidthValues[b] }
