package twmerge

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTheme = Theme{
	Colors:           []string{"verse-blue", "verse-pink", "surface", "border"},
	Spacing:          []string{"xs", "s", "m", "l", "xl"},
	FontSizes:        []string{"label-lg", "label", "label-sm"},
	FontFamilies:     []string{"display", "body"},
	Radii:            []string{"pill"},
	Shadows:          []string{"verse-md"},
	BackgroundImages: []string{"verse-gradient"},
	Animations:       []string{"fade-in"},
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"later background wins", "bg-surface bg-red-500", "bg-red-500"},
		{"kept class stays in place", "bg-surface text-white bg-red-500", "text-white bg-red-500"},
		{"unknown classes kept with duplicates", "foo bar foo", "foo bar foo"},
		{"unknown and known mixed", "foo p-2 foo p-4", "foo foo p-4"},
		{"identical utilities collapse", "p-2 p-2", "p-2"},
		{"padding overrides axis", "px-2 p-4", "p-4"},
		{"axis does not override padding", "p-4 px-2", "p-4 px-2"},
		{"axis overrides side", "pt-1 py-2", "py-2"},
		{"side does not override other axis", "pt-1 px-2", "pt-1 px-2"},
		{"margin overrides sides", "mt-2 mb-2 m-auto", "m-auto"},
		{"negative values", "-mt-2 mt-4", "mt-4"},
		{"size overrides width and height", "w-4 h-4 size-6", "size-6"},
		{"width keeps height", "h-8 w-4 w-full", "h-8 w-full"},
		{"arbitrary width", "w-[18px] w-5", "w-5"},
		{"fraction width", "w-1/2 w-full", "w-full"},
		{"modifiers are separate", "hover:bg-red-500 bg-blue-500", "hover:bg-red-500 bg-blue-500"},
		{"same modifier conflicts", "hover:bg-red-500 hover:bg-blue-500", "hover:bg-blue-500"},
		{"modifier order ignored", "hover:focus:bg-red-500 focus:hover:bg-blue-500", "focus:hover:bg-blue-500"},
		{"arbitrary variants are positional", "hover:[&>*]:p-2 [&>*]:hover:p-4", "hover:[&>*]:p-2 [&>*]:hover:p-4"},
		{"arbitrary variant conflicts", "[&>*]:p-2 [&>*]:p-4", "[&>*]:p-4"},
		{"important is separate", "!p-2 p-4", "!p-2 p-4"},
		{"important prefix and suffix", "p-2! !p-4", "!p-4"},
		{"opacity postfix", "bg-red-500/50 bg-blue-500", "bg-blue-500"},
		{"background opacity keeps color", "bg-red-500 bg-opacity-50", "bg-red-500 bg-opacity-50"},
		{"text opacity keeps color", "text-white text-opacity-75", "text-white text-opacity-75"},
		{"later background opacity wins", "bg-opacity-50 bg-opacity-75", "bg-opacity-75"},
		{"ring opacity keeps ring color", "ring-verse-blue ring-opacity-10", "ring-verse-blue ring-opacity-10"},
		{"hover postfix", "hover:bg-verse-blue/90 hover:bg-surface", "hover:bg-surface"},
		{"arbitrary property", "[mask-type:luminance] [mask-type:alpha]", "[mask-type:alpha]"},
		{"arbitrary properties differ", "[mask-type:alpha] [--x:1]", "[mask-type:alpha] [--x:1]"},
		{"arbitrary colors", "text-[#fff] text-red-500", "text-red-500"},
		{"arbitrary font size", "text-sm text-[14px]", "text-[14px]"},
		{"font size beats color", "text-lg text-white", "text-lg text-white"},
		{"font size overrides line height", "leading-7 text-lg", "text-lg"},
		{"line height after font size", "text-lg leading-7", "text-lg leading-7"},
		{"text align", "text-left text-center", "text-center"},
		{"display", "flex inline-flex", "inline-flex"},
		{"display and direction", "flex flex-col", "flex flex-col"},
		{"flex overrides grow", "grow flex-1", "flex-1"},
		{"border width", "border border-2", "border-2"},
		{"border width and color", "border border-red-500", "border border-red-500"},
		{"border side width", "border-t-2 border-2", "border-2"},
		{"border side color", "border-t-red-500 border-t-2", "border-t-red-500 border-t-2"},
		{"border style", "border-solid border-dashed", "border-dashed"},
		{"rounded corners", "rounded-t-lg rounded-md", "rounded-md"},
		{"rounded corner kept", "rounded-md rounded-t-lg", "rounded-md rounded-t-lg"},
		{"ring width and color", "ring-2 ring-offset-2 ring-blue-500 ring-4", "ring-offset-2 ring-blue-500 ring-4"},
		{"ring offset color", "ring-offset-white ring-offset-black", "ring-offset-black"},
		{"outline", "outline-none outline", "outline"},
		{"outline and ring", "focus:outline-none focus:ring-2", "focus:outline-none focus:ring-2"},
		{"gradient direction", "bg-gradient-to-r bg-none", "bg-none"},
		{"background image and color", "bg-[url(/a.png)] bg-red-500", "bg-[url(/a.png)] bg-red-500"},
		{"opacity", "opacity-50 hover:opacity-90 opacity-100", "hover:opacity-90 opacity-100"},
		{"cursor", "cursor-pointer cursor-not-allowed", "cursor-not-allowed"},
		{"transition and duration", "transition duration-150 transition-all duration-300", "transition-all duration-300"},
		{"underline", "underline no-underline", "no-underline"},
		{"overflow", "overflow-x-auto overflow-hidden", "overflow-hidden"},
		{"inset", "top-0 left-0 inset-2", "inset-2"},
		{"whitespace normalized", "  p-2 \n\t p-4  ", "p-4"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(tt.input))
		})
	}
}

func TestMergeLists(t *testing.T) {
	assert.Equal(t, "text-white bg-red-500", Merge("bg-surface text-white", "", "bg-red-500"))
	assert.Equal(t, "a b c", Join("a  b", "", " c "))
	assert.Equal(t, "p-2 p-4", Join("p-2", "p-4"))
	assert.Equal(t, "", Join())
}

func TestMergeWithTheme(t *testing.T) {
	m := New(WithTheme(testTheme))

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"theme font size keeps color", "text-label-sm text-white", "text-label-sm text-white"},
		{"theme font sizes conflict", "text-label-sm text-label-lg", "text-label-lg"},
		{"theme spacing", "px-s px-m", "px-m"},
		{"theme spacing against axis", "px-s p-l", "p-l"},
		{"theme gradient is an image", "bg-verse-gradient bg-red-500", "bg-verse-gradient bg-red-500"},
		{"theme shadow", "shadow-verse-md shadow-lg", "shadow-lg"},
		{"theme radius", "rounded-md rounded-pill", "rounded-pill"},
		{"theme animation", "animate-spin animate-fade-in", "animate-fade-in"},
		{"theme gap", "gap-s gap-xs", "gap-xs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Merge(tt.input))
		})
	}
}

func TestClassifyThemeDependence(t *testing.T) {
	// Without the theme, custom font sizes read as text colors and custom
	// spacing names are not utilities at all.
	c, ok := New().Classify("text-label-sm")
	require.True(t, ok)
	assert.Equal(t, "text-color", c.Group)

	_, ok = New().Classify("px-s")
	assert.False(t, ok)

	c, ok = New(WithTheme(testTheme)).Classify("text-label-sm")
	require.True(t, ok)
	assert.Equal(t, "font-size", c.Group)

	c, ok = New(WithTheme(testTheme)).Classify("bg-verse-gradient")
	require.True(t, ok)
	assert.Equal(t, "bg-image", c.Group)
}

func TestClassify(t *testing.T) {
	m := New(WithTheme(testTheme))

	tests := []struct {
		raw   string
		group string
	}{
		{"inline-flex", "display"},
		{"items-center", "align-items"},
		{"justify-center", "justify-content"},
		{"gap-s", "gap"},
		{"rounded-md", "rounded"},
		{"font-medium", "font-weight"},
		{"font-display", "font-family"},
		{"transition-all", "transition"},
		{"duration-150", "duration"},
		{"focus:outline-none", "outline-style"},
		{"focus:ring-2", "ring-w"},
		{"focus:ring-verse-blue", "ring-color"},
		{"focus:ring-offset-2", "ring-offset-w"},
		{"focus:ring-offset-background", "ring-offset-color"},
		{"disabled:opacity-50", "opacity"},
		{"disabled:cursor-not-allowed", "cursor"},
		{"bg-verse-blue", "bg-color"},
		{"bg-opacity-50", "bg-opacity"},
		{"hover:bg-opacity-[.35]", "bg-opacity"},
		{"text-opacity-75", "text-opacity"},
		{"border-opacity-20", "border-opacity"},
		{"border-t-verse-blue", "border-color-t"},
		{"ring-opacity-10", "ring-opacity"},
		{"hover:bg-verse-blue/90", "bg-color"},
		{"border", "border-w"},
		{"border-border", "border-color"},
		{"hover:underline", "text-decoration"},
		{"h-8", "h"},
		{"w-full", "w"},
		{"w-[18px]", "w"},
		{"animate-spin", "animate"},
		{"ring-inset", "ring-w-inset"},
		{"flex-col", "flex-direction"},
		{"flex-wrap", "flex-wrap"},
		{"bg-no-repeat", "bg-repeat"},
		{"bg-cover", "bg-size"},
		{"bg-center", "bg-position"},
		{"truncate", "text-overflow"},
		{"space-x-reverse", "space-x-reverse"},
		{"[mask-type:alpha]", "arbitrary:mask-type"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			c, ok := m.Classify(tt.raw)
			require.True(t, ok)
			assert.Equal(t, tt.group, c.Group)
		})
	}

	for _, raw := range []string{"foo", "group", "peer", "container-query", "-", "hover:", "[notaprop]"} {
		_, ok := m.Classify(raw)
		assert.False(t, ok, raw)
	}
}

func TestClassifyValue(t *testing.T) {
	m := New(WithTheme(testTheme))

	tests := []struct {
		raw   string
		value string
	}{
		{"bg-verse-blue", "verse-blue"},
		{"hover:text-success-50/80", "success-50"},
		{"border-t-verse-blue", "verse-blue"},
		{"bg-opacity-50", "50"},
		{"-mt-2", "2"},
		{"flex", ""},
		{"[mask-type:alpha]", ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			c, ok := m.Classify(tt.raw)
			require.True(t, ok)
			assert.Equal(t, tt.value, c.Value)
		})
	}
}

func TestParseClass(t *testing.T) {
	c := parseClass("hover:focus:!-mt-2/50")
	assert.Equal(t, []string{"hover", "focus"}, c.Modifiers)
	assert.True(t, c.Important)
	assert.True(t, c.Negative)
	assert.Equal(t, "mt-2", c.Base)
	assert.Equal(t, "50", c.Postfix)
	assert.Equal(t, "focus:hover:!", c.Variant())

	c = parseClass("[&:hover]:bg-[url(a:b/c)]")
	assert.Equal(t, []string{"[&:hover]"}, c.Modifiers)
	assert.Equal(t, "bg-[url(a:b/c)]", c.Base)
	assert.Empty(t, c.Postfix)

	c = parseClass("bg-red-500/50!")
	assert.True(t, c.Important)
	assert.Equal(t, "50", c.Postfix)

	assert.Equal(t, []string{"a", "b", "[x]", "c", "d"}, sortModifiers([]string{"b", "a", "[x]", "d", "c"}))
}

func TestExplain(t *testing.T) {
	res := New(WithTheme(testTheme)).Explain(
		"inline-flex bg-surface text-white px-m",
		"bg-red-500 px-s foo",
	)

	assert.Equal(t, "inline-flex text-white bg-red-500 px-s foo", res.String())
	assert.Equal(t, []Drop{
		{Class: "bg-surface", Index: 1, By: "bg-red-500", Group: "bg-color", Family: FamilyColor},
		{Class: "px-m", Index: 3, By: "px-s", Group: "px", Family: FamilySpacing},
	}, res.Dropped)

	res = defaultMerger.Explain("pr-2 px-4")
	assert.Equal(t, []Drop{{Class: "pr-2", Index: 0, By: "px-4", Group: "pr", Family: FamilySpacing}}, res.Dropped)

	res = defaultMerger.Explain("[mask-type:luminance] [mask-type:alpha] rounded rounded-lg")
	require.Len(t, res.Dropped, 2)
	assert.Equal(t, FamilyEffects, res.Dropped[0].Family)
	assert.Equal(t, FamilyBorder, res.Dropped[1].Family)
}

func TestMergeIsPure(t *testing.T) {
	m := New(WithTheme(testTheme))
	in := "bg-surface text-white hover:bg-verse-blue/90 px-s bg-red-500"
	want := m.Merge(in)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, want, m.Merge(in))
			}
		}()
	}
	wg.Wait()
}

func TestNewVocabulary(t *testing.T) {
	_, err := NewVocabulary(Tailwind(testTheme))
	require.NoError(t, err)

	tests := []struct {
		name   string
		groups []Group
		errMsg string
	}{
		{"missing id", []Group{{Rules: kw("a")}}, "missing id"},
		{"duplicate id", []Group{{ID: "a", Rules: kw("a")}, {ID: "a", Rules: kw("b")}}, "duplicate id"},
		{"no rules", []Group{{ID: "a"}}, "no rules"},
		{"bad prefix", []Group{{ID: "a", Rules: kw("-a")}}, "invalid prefix"},
		{"unknown conflict", []Group{{ID: "a", Rules: kw("a"), Conflicts: []string{"b"}}}, `unknown group "b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVocabulary(tt.groups)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestCustomVocabulary(t *testing.T) {
	// A vocabulary unrelated to Tailwind: "tone-*" and "pad-*".
	v, err := NewVocabulary([]Group{
		{ID: "tone", Properties: []string{"color"}, Rules: pre("tone", isAny)},
		{ID: "pad", Properties: []string{"padding"}, Rules: pre("pad", isNumber), Conflicts: []string{"pad-x"}},
		{ID: "pad-x", Properties: []string{"padding-inline"}, Rules: pre("pad-x", isNumber)},
	})
	require.NoError(t, err)

	m := New(WithVocabulary(v))
	assert.Equal(t, "tone-blue pad-2", m.Merge("tone-red pad-x-1 tone-blue pad-2"))
	assert.Equal(t, "bg-red-500 bg-blue-500", m.Merge("bg-red-500 bg-blue-500"))

	g, ok := v.Group("pad")
	require.True(t, ok)
	assert.Equal(t, FamilySpacing, g.Family())
	assert.Len(t, v.Groups(), 3)
}

func TestFamilies(t *testing.T) {
	v := TailwindVocabulary(Theme{})
	tests := map[string]Family{
		"bg-color":       FamilyColor,
		"p":              FamilySpacing,
		"w":              FamilySizing,
		"display":        FamilyLayout,
		"font-size":      FamilyTypography,
		"rounded":        FamilyBorder,
		"shadow":         FamilyEffects,
		"cursor":         FamilyInteractivity,
		"border-color-t": FamilyColor,
	}
	for id, want := range tests {
		g, ok := v.Group(id)
		require.True(t, ok, id)
		assert.Equal(t, want, g.Family(), id)
	}
	assert.Equal(t, FamilyOther, categorizeProperty("content"))
	assert.Equal(t, FamilyColor, categorizeProperty("column-rule-color"))
}
