package button

import (
	"fmt"

	"github.com/verse-ds/verse/twmerge"
)

// Props are the inputs of a button. The zero value is an enabled primary
// button of size MD.
type Props struct {
	Variant   Variant `json:"variant"`
	Size      Size    `json:"size"`
	FullWidth bool    `json:"fullWidth"`
	Disabled  bool    `json:"disabled"`
	Loading   bool    `json:"loading"`

	// LeadingIcon and TrailingIcon tell whether the caller renders icons
	// around the label.
	LeadingIcon  bool `json:"leadingIcon"`
	TrailingIcon bool `json:"trailingIcon"`

	// Class is appended last and overrides conflicting utilities.
	Class string `json:"class"`
}

// SlotKind is what a slot next to the label holds.
type SlotKind int

const (
	SlotEmpty SlotKind = iota
	SlotSpinner
	SlotIcon
)

var slotKindNames = [...]string{
	SlotEmpty:   "empty",
	SlotSpinner: "spinner",
	SlotIcon:    "icon",
}

func (k SlotKind) String() string { return slotKindNames[k] }

func (k SlotKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *SlotKind) UnmarshalText(text []byte) error {
	for i, name := range slotKindNames {
		if name == string(text) {
			*k = SlotKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown slot kind %q", text)
}

// Slot is a position before or after the label.
type Slot struct {
	Kind  SlotKind `json:"kind"`
	Class string   `json:"class,omitempty"`
}

// Resolved is the outcome of Resolve.
type Resolved struct {
	Class string `json:"class"`

	// Disabled is the native disabled state: set while loading too.
	Disabled bool `json:"disabled"`
	Busy     bool `json:"busy"`

	Leading  Slot `json:"leading"`
	Trailing Slot `json:"trailing"`
}

// Resolve computes the button's classes and slots. It never fails: the zero
// Variant and Size select their defaults, and every declared member has a
// class table entry.
func Resolve(p Props) Resolved {
	size := p.Size.orDefault()

	var fullWidth string
	if p.FullWidth {
		fullWidth = FullWidthClass
	}

	lists := make([]string, 0, len(baseClasses)+4)
	lists = append(lists, baseClasses...)
	lists = append(lists, p.Variant.Classes(), size.Classes(), fullWidth, p.Class)

	r := Resolved{
		Class:    merger.Merge(lists...),
		Disabled: p.Disabled || p.Loading,
		Busy:     p.Loading,
	}

	// Spinner takes the leading slot over an icon; the trailing icon is
	// hidden while loading.
	switch {
	case p.Loading:
		r.Leading = Slot{Kind: SlotSpinner, Class: twmerge.Join(SpinnerClass, size.IconClasses())}
	case p.LeadingIcon:
		r.Leading = Slot{Kind: SlotIcon, Class: size.IconClasses()}
	}
	if p.TrailingIcon && !p.Loading {
		r.Trailing = Slot{Kind: SlotIcon, Class: size.IconClasses()}
	}

	return r
}

// Class is Resolve(p).Class.
func Class(p Props) string {
	return Resolve(p).Class
}

// Spinner geometry, drawn in a 24x24 view box: a faint full circle and an
// opaque quarter arc.
const (
	SpinnerViewBox     = "0 0 24 24"
	SpinnerCX          = 12
	SpinnerCY          = 12
	SpinnerR           = 10
	SpinnerStrokeWidth = 4
	SpinnerTrackClass  = "opacity-25"
	SpinnerArcClass    = "opacity-75"
	SpinnerArcPath     = "M4 12a8 8 0 018-8V0C5.373 0 0 5.373 0 12h4zm2 5.291A7.962 7.962 0 014 12H0c0 3.042 1.135 5.824 3 7.938l3-2.647z"
)
