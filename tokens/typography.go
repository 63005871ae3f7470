package tokens

import "strings"

// FontFamily is a font role.
type FontFamily int

const (
	FontDisplay FontFamily = iota
	FontBody
	FontNumeric
	FontMono

	fontFamilyEnd
)

var fontFamilyNames = [...]string{
	FontDisplay: "display",
	FontBody:    "body",
	FontNumeric: "numeric",
	FontMono:    "mono",
}

var fontFamilyStacks = [...][]string{
	FontDisplay: {"Barlow", "sans-serif"},
	FontBody:    {"Lexend", "sans-serif"},
	FontNumeric: {"IBM Plex Sans", "sans-serif"},
	FontMono:    {"JetBrains Mono", "monospace"},
}

var (
	_ = [1]struct{}{}[len(fontFamilyNames)-int(fontFamilyEnd)]
	_ = [1]struct{}{}[len(fontFamilyStacks)-int(fontFamilyEnd)]
)

// FontFamilies returns every font role.
func FontFamilies() []FontFamily { return members(fontFamilyEnd) }

// ParseFontFamily resolves a role name such as "numeric".
func ParseFontFamily(name string) (FontFamily, error) {
	return lookup[FontFamily]("font family", name, fontFamilyNames[:])
}

func (f FontFamily) String() string { return fontFamilyNames[f] }

// Stack returns a copy of the family's font stack, preferred face first.
func (f FontFamily) Stack() []string {
	return append([]string(nil), fontFamilyStacks[f]...)
}

// CSS renders the stack as a font-family value: 'Barlow', sans-serif.
func (f FontFamily) CSS() string {
	stack := fontFamilyStacks[f]
	parts := make([]string, len(stack))
	for i, face := range stack {
		if isGenericFamily(face) {
			parts[i] = face
			continue
		}
		parts[i] = "'" + face + "'"
	}
	return strings.Join(parts, ", ")
}

func isGenericFamily(face string) bool {
	switch face {
	case "serif", "sans-serif", "monospace", "cursive", "fantasy", "system-ui":
		return true
	}
	return false
}

// FontSize is a named font size.
type FontSize int

const (
	FontSizeDisplayXL FontSize = iota
	FontSizeDisplayLG

	FontSizeHeadingXL
	FontSizeHeadingLG
	FontSizeHeadingMD
	FontSizeHeadingSM

	FontSizeBodyLG
	FontSizeBody
	FontSizeBodySM
	FontSizeBodyXS

	FontSizeLabelLG
	FontSizeLabel
	FontSizeLabelSM

	FontSizeNumericLG
	FontSizeNumeric
	FontSizeNumericSM
	FontSizeNumericXS

	FontSizeCaption

	FontSizeMono
	FontSizeMonoSM

	FontSizeButtonLG
	FontSizeButton
	FontSizeButtonSM

	fontSizeEnd
)

var fontSizeNames = [...]string{
	FontSizeDisplayXL: "display-xl",
	FontSizeDisplayLG: "display-lg",
	FontSizeHeadingXL: "heading-xl",
	FontSizeHeadingLG: "heading-lg",
	FontSizeHeadingMD: "heading-md",
	FontSizeHeadingSM: "heading-sm",
	FontSizeBodyLG:    "body-lg",
	FontSizeBody:      "body",
	FontSizeBodySM:    "body-sm",
	FontSizeBodyXS:    "body-xs",
	FontSizeLabelLG:   "label-lg",
	FontSizeLabel:     "label",
	FontSizeLabelSM:   "label-sm",
	FontSizeNumericLG: "numeric-lg",
	FontSizeNumeric:   "numeric",
	FontSizeNumericSM: "numeric-sm",
	FontSizeNumericXS: "numeric-xs",
	FontSizeCaption:   "caption",
	FontSizeMono:      "mono",
	FontSizeMonoSM:    "mono-sm",
	FontSizeButtonLG:  "button-lg",
	FontSizeButton:    "button",
	FontSizeButtonSM:  "button-sm",
}

var fontSizeValues = [...]string{
	FontSizeDisplayXL: "56px",
	FontSizeDisplayLG: "48px",
	FontSizeHeadingXL: "40px",
	FontSizeHeadingLG: "32px",
	FontSizeHeadingMD: "24px",
	FontSizeHeadingSM: "20px",
	FontSizeBodyLG:    "18px",
	FontSizeBody:      "16px",
	FontSizeBodySM:    "14px",
	FontSizeBodyXS:    "12px",
	FontSizeLabelLG:   "16px",
	FontSizeLabel:     "14px",
	FontSizeLabelSM:   "12px",
	FontSizeNumericLG: "28px",
	FontSizeNumeric:   "24px",
	FontSizeNumericSM: "20px",
	FontSizeNumericXS: "16px",
	FontSizeCaption:   "12px",
	FontSizeMono:      "14px",
	FontSizeMonoSM:    "12px",
	FontSizeButtonLG:  "16px",
	FontSizeButton:    "14px",
	FontSizeButtonSM:  "12px",
}

var (
	_ = [1]struct{}{}[len(fontSizeNames)-int(fontSizeEnd)]
	_ = [1]struct{}{}[len(fontSizeValues)-int(fontSizeEnd)]
)

// FontSizes returns every font size in declaration order.
func FontSizes() []FontSize { return members(fontSizeEnd) }

// ParseFontSize resolves a size name such as "label-sm".
func ParseFontSize(name string) (FontSize, error) {
	return lookup[FontSize]("font size", name, fontSizeNames[:])
}

func (f FontSize) String() string { return fontSizeNames[f] }

// Value returns the size as a CSS length.
func (f FontSize) Value() string { return fontSizeValues[f] }

// FontWeight is a named font weight.
type FontWeight int

const (
	WeightRegular FontWeight = iota
	WeightMedium
	WeightSemibold
	WeightBold
	WeightBlack

	fontWeightEnd
)

var fontWeightNames = [...]string{
	WeightRegular:  "regular",
	WeightMedium:   "medium",
	WeightSemibold: "semibold",
	WeightBold:     "bold",
	WeightBlack:    "black",
}

var fontWeightValues = [...]string{
	WeightRegular:  "400",
	WeightMedium:   "500",
	WeightSemibold: "600",
	WeightBold:     "700",
	WeightBlack:    "900",
}

var (
	_ = [1]struct{}{}[len(fontWeightNames)-int(fontWeightEnd)]
	_ = [1]struct{}{}[len(fontWeightValues)-int(fontWeightEnd)]
)

// FontWeights returns every weight, lightest first.
func FontWeights() []FontWeight { return members(fontWeightEnd) }

// ParseFontWeight resolves a weight name such as "semibold".
func ParseFontWeight(name string) (FontWeight, error) {
	return lookup[FontWeight]("font weight", name, fontWeightNames[:])
}

func (w FontWeight) String() string { return fontWeightNames[w] }

// Value returns the numeric CSS weight.
func (w FontWeight) Value() string { return fontWeightValues[w] }

// LineHeight is a named unitless line height.
type LineHeight int

const (
	LeadingTight LineHeight = iota
	LeadingSnug
	LeadingNormal
	LeadingRelaxed

	lineHeightEnd
)

var lineHeightNames = [...]string{
	LeadingTight:   "tight",
	LeadingSnug:    "snug",
	LeadingNormal:  "normal",
	LeadingRelaxed: "relaxed",
}

var lineHeightValues = [...]string{
	LeadingTight:   "1",
	LeadingSnug:    "1.1",
	LeadingNormal:  "1.4",
	LeadingRelaxed: "1.6",
}

var (
	_ = [1]struct{}{}[len(lineHeightNames)-int(lineHeightEnd)]
	_ = [1]struct{}{}[len(lineHeightValues)-int(lineHeightEnd)]
)

// LineHeights returns every line height, tightest first.
func LineHeights() []LineHeight { return members(lineHeightEnd) }

// ParseLineHeight resolves a name such as "relaxed".
func ParseLineHeight(name string) (LineHeight, error) {
	return lookup[LineHeight]("line height", name, lineHeightNames[:])
}

func (l LineHeight) String() string { return lineHeightNames[l] }

// Value returns the unitless line height.
func (l LineHeight) Value() string { return lineHeightValues[l] }

// TextStyle is a step of the type scale: a font size bundled with its line
// height, tracking and weight. These are the text-* utilities of the preset.
type TextStyle int

const (
	TextDisplayXL TextStyle = iota
	TextDisplayLG
	TextHeadingXL
	TextHeadingLG
	TextHeadingMD
	TextHeadingSM
	TextBodyLG
	TextBody
	TextBodySM
	TextBodyXS
	TextLabelLG
	TextLabel
	TextLabelSM
	TextNumericLG
	TextNumeric
	TextNumericSM
	TextNumericXS
	TextCaption

	textStyleEnd
)

// TypeSpec describes one step of the type scale. LetterSpacing is empty when
// the step uses the font's default tracking.
type TypeSpec struct {
	Size          string
	LineHeight    string
	LetterSpacing string
	Weight        string
}

var textStyleNames = [...]string{
	TextDisplayXL: "display-xl",
	TextDisplayLG: "display-lg",
	TextHeadingXL: "heading-xl",
	TextHeadingLG: "heading-lg",
	TextHeadingMD: "heading-md",
	TextHeadingSM: "heading-sm",
	TextBodyLG:    "body-lg",
	TextBody:      "body",
	TextBodySM:    "body-sm",
	TextBodyXS:    "body-xs",
	TextLabelLG:   "label-lg",
	TextLabel:     "label",
	TextLabelSM:   "label-sm",
	TextNumericLG: "numeric-lg",
	TextNumeric:   "numeric",
	TextNumericSM: "numeric-sm",
	TextNumericXS: "numeric-xs",
	TextCaption:   "caption",
}

var textStyleSpecs = [...]TypeSpec{
	TextDisplayXL: {Size: "56px", LineHeight: "1", LetterSpacing: "-1px", Weight: "900"},
	TextDisplayLG: {Size: "48px", LineHeight: "1", LetterSpacing: "-0.8px", Weight: "900"},
	TextHeadingXL: {Size: "40px", LineHeight: "1.1", LetterSpacing: "-0.5px", Weight: "700"},
	TextHeadingLG: {Size: "32px", LineHeight: "1.1", LetterSpacing: "-0.4px", Weight: "700"},
	TextHeadingMD: {Size: "24px", LineHeight: "1.2", LetterSpacing: "-0.3px", Weight: "700"},
	TextHeadingSM: {Size: "20px", LineHeight: "1.2", LetterSpacing: "-0.2px", Weight: "600"},
	TextBodyLG:    {Size: "18px", LineHeight: "1.6", Weight: "400"},
	TextBody:      {Size: "16px", LineHeight: "1.6", Weight: "400"},
	TextBodySM:    {Size: "14px", LineHeight: "1.5", Weight: "400"},
	TextBodyXS:    {Size: "12px", LineHeight: "1.5", Weight: "400"},
	TextLabelLG:   {Size: "16px", LineHeight: "1", Weight: "500"},
	TextLabel:     {Size: "14px", LineHeight: "1", Weight: "500"},
	TextLabelSM:   {Size: "12px", LineHeight: "1", Weight: "500"},
	TextNumericLG: {Size: "28px", LineHeight: "1", Weight: "700"},
	TextNumeric:   {Size: "24px", LineHeight: "1", Weight: "700"},
	TextNumericSM: {Size: "20px", LineHeight: "1", Weight: "700"},
	TextNumericXS: {Size: "16px", LineHeight: "1", Weight: "600"},
	TextCaption:   {Size: "12px", LineHeight: "1.2", LetterSpacing: "0.2px", Weight: "500"},
}

var (
	_ = [1]struct{}{}[len(textStyleNames)-int(textStyleEnd)]
	_ = [1]struct{}{}[len(textStyleSpecs)-int(textStyleEnd)]
)

// TextStyles returns the type scale, largest first.
func TextStyles() []TextStyle { return members(textStyleEnd) }

// ParseTextStyle resolves a name such as "heading-md".
func ParseTextStyle(name string) (TextStyle, error) {
	return lookup[TextStyle]("text style", name, textStyleNames[:])
}

func (t TextStyle) String() string { return textStyleNames[t] }

// Spec returns the step's typographic values.
func (t TextStyle) Spec() TypeSpec { return textStyleSpecs[t] }
