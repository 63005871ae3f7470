package tokens

import (
	"strings"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablesAreComplete(t *testing.T) {
	// The compile-time assertions pin table lengths; this catches a keyed
	// literal that skipped a member in the middle.
	for _, c := range Colors() {
		assert.NotEmpty(t, c.String(), "color %d name", c)
		assert.NotEmpty(t, c.Hex(), "color %s value", c)
	}
	for _, s := range Schemes() {
		for _, r := range SurfaceRoles() {
			assert.NotEmpty(t, r.In(s), "%s/%s", s, r)
		}
	}
	for _, s := range Spaces() {
		assert.NotEmpty(t, s.Value(), "space %s", s)
	}
	for _, r := range Radii() {
		assert.NotEmpty(t, r.Value(), "radius %s", r)
	}
	for _, b := range BorderWidths() {
		assert.NotEmpty(t, b.Value(), "border %s", b)
	}
	for _, f := range FontFamilies() {
		assert.NotEmpty(t, f.Stack(), "family %s", f)
	}
	for _, f := range FontSizes() {
		assert.NotEmpty(t, f.Value(), "font size %s", f)
	}
	for _, w := range FontWeights() {
		assert.NotEmpty(t, w.Value(), "weight %s", w)
	}
	for _, l := range LineHeights() {
		assert.NotEmpty(t, l.Value(), "line height %s", l)
	}
	for _, ts := range TextStyles() {
		spec := ts.Spec()
		assert.NotEmpty(t, spec.Size, "text %s size", ts)
		assert.NotEmpty(t, spec.LineHeight, "text %s line height", ts)
		assert.NotEmpty(t, spec.Weight, "text %s weight", ts)
	}
	for _, s := range Shadows() {
		assert.NotEmpty(t, s.Value(), "shadow %s", s)
	}
	for _, g := range Gradients() {
		assert.NotEmpty(t, g.Value(), "gradient %s", g)
	}
	for _, a := range Animations() {
		assert.NotEmpty(t, a.Value(), "animation %s", a)
		assert.Len(t, a.Keyframes(), 2, "animation %s", a)
	}
}

func TestColorValuesAreHex(t *testing.T) {
	for _, c := range Colors() {
		_, err := colorful.Hex(c.Hex())
		require.NoError(t, err, c.String())
		assert.Equal(t, strings.ToLower(c.Hex()), c.Hex())
	}
	for _, s := range Schemes() {
		for _, r := range SurfaceRoles() {
			_, err := colorful.Hex(r.In(s))
			require.NoError(t, err, "%s/%s", s, r)
		}
	}
}

func TestNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Colors() {
		require.False(t, seen[c.String()], "duplicate color %s", c)
		seen[c.String()] = true
	}

	seen = map[string]bool{}
	for _, f := range FontSizes() {
		require.False(t, seen[f.String()], "duplicate font size %s", f)
		seen[f.String()] = true
	}
}

func TestLengthsArePixels(t *testing.T) {
	var lengths []string
	for _, s := range Spaces() {
		lengths = append(lengths, s.Value())
	}
	for _, r := range Radii() {
		lengths = append(lengths, r.Value())
	}
	for _, b := range BorderWidths() {
		lengths = append(lengths, b.Value())
	}
	for _, f := range FontSizes() {
		lengths = append(lengths, f.Value())
	}
	for _, l := range lengths {
		assert.True(t, strings.HasSuffix(l, "px"), l)
	}
}

func TestKnownValues(t *testing.T) {
	assert.Equal(t, "#0085ff", ColorVerseBlue.Hex())
	assert.Equal(t, "#eb6547", ColorError100.Hex())
	assert.Equal(t, "16px", SpaceM.Value())
	assert.Equal(t, "9999px", RadiusPill.Value())
	assert.Equal(t, "1px", BorderHairline.Value())
	assert.Equal(t, "'Barlow', sans-serif", FontDisplay.CSS())
	assert.Equal(t, "'JetBrains Mono', monospace", FontMono.CSS())
	assert.Equal(t, "12px", FontSizeLabelSM.Value())
	assert.Equal(t, "900", WeightBlack.Value())
	assert.Equal(t, "1.6", LeadingRelaxed.Value())
	assert.Equal(t, TypeSpec{Size: "12px", LineHeight: "1.2", LetterSpacing: "0.2px", Weight: "500"}, TextCaption.Spec())
	assert.Equal(t, "linear-gradient(90deg, #0085ff, #db00ff)", GradientBrand.Value())
	assert.Equal(t, "linear-gradient(180deg, #0a0a2c, #10183c)", GradientBrandVertical.Value())
	assert.Equal(t, "fadeIn", AnimateFadeIn.KeyframesName())
}

func TestSurfaces(t *testing.T) {
	tests := []struct {
		scheme Scheme
		role   SurfaceRole
		want   string
	}{
		{Dark, RoleBackground, "#0a0a2c"},
		{Dark, RoleSurface, "#202b58"},
		{Dark, RoleTextPrimary, "#ffffff"},
		{Light, RoleBackground, "#f5f7fa"},
		{Light, RoleSurfaceMuted, "#e8edf5"},
		{Light, RoleTextPrimary, "#0a0a2c"},
		{Light, RolePrimary, "#0085ff"},
	}

	for _, tt := range tests {
		t.Run(tt.scheme.String()+"/"+tt.role.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.In(tt.scheme))
		})
	}

	assert.Equal(t, "--surface-muted", RoleSurfaceMuted.Variable())
	assert.Len(t, SemanticRoles(), 9)
	assert.NotContains(t, SemanticRoles(), RolePrimary)
}

func TestParse(t *testing.T) {
	c, err := ParseColor("verse-pink")
	require.NoError(t, err)
	assert.Equal(t, ColorVersePink, c)

	s, err := ParseScheme("light")
	require.NoError(t, err)
	assert.Equal(t, Light, s)

	sp, err := ParseSpace("xxl")
	require.NoError(t, err)
	assert.Equal(t, SpaceXXL, sp)

	ts, err := ParseTextStyle("label-sm")
	require.NoError(t, err)
	assert.Equal(t, TextLabelSM, ts)

	a, err := ParseAnimation("slide-out")
	require.NoError(t, err)
	assert.Equal(t, AnimateSlideOut, a)

	_, err = ParseColor("verse-blu")
	require.ErrorIs(t, err, ErrUnknown)
	assert.Contains(t, err.Error(), `"verse-blu"`)

	_, err = ParseAnimation("spin")
	require.ErrorIs(t, err, ErrUnknown)
}

func TestStackIsCopy(t *testing.T) {
	stack := FontBody.Stack()
	stack[0] = "Comic Sans"
	assert.Equal(t, "Lexend", FontBody.Stack()[0])

	frames := AnimateSlideIn.Keyframes()
	frames[0].Declarations[0].Value = "none"
	assert.Equal(t, "translateY(-10px)", AnimateSlideIn.Keyframes()[0].Declarations[0].Value)
}

func TestContrast(t *testing.T) {
	ratio, err := Contrast("#ffffff", "#000000")
	require.NoError(t, err)
	assert.InDelta(t, 21.0, ratio, 0.01)

	ratio, err = Contrast("#0085ff", "#0085ff")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ratio, 0.001)

	// Primary text must stay readable on the background in both schemes.
	for _, s := range Schemes() {
		ratio, err := Contrast(RoleTextPrimary.In(s), RoleBackground.In(s))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, ratio, 4.5, s.String())
	}

	_, err = Contrast("blue", "#000000")
	require.Error(t, err)
}

func TestReservedNames(t *testing.T) {
	tests := []struct {
		name     string
		reserved bool
		color    bool
	}{
		{"verse-blue", true, true},
		{"verse-blu", true, false},
		{"color-600", true, true},
		{"color-500", true, false},
		{"success-100", true, true},
		{"error-50", true, false},
		{"red-500", false, false},
		{"verse-", false, false},
		{"surface", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.reserved, IsReserved(tt.name))
			assert.Equal(t, tt.color, IsColor(tt.name))
		})
	}
}

func TestIsDeclared(t *testing.T) {
	for _, name := range []string{"verse-blue", "verse-gradient", "verse-gradient-vertical", "verse-md", "warning-25"} {
		assert.True(t, IsDeclared(name), name)
	}
	for _, name := range []string{"verse-gradiant", "verse-xxl", "surface", "fade-in"} {
		assert.False(t, IsDeclared(name), name)
	}
}
