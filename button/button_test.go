package button

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablesAreComplete(t *testing.T) {
	for _, v := range Variants() {
		assert.NotEmpty(t, variantNames[v], "variant %d name", v)
		assert.NotEmpty(t, v.Classes(), "variant %s classes", v)
	}
	for _, s := range Sizes() {
		assert.NotEmpty(t, sizeNames[s], "size %d name", s)
		assert.NotEmpty(t, s.Classes(), "size %s classes", s)
		assert.NotEmpty(t, s.IconClasses(), "size %s icon classes", s)
	}
	assert.Len(t, Variants(), 9)
	assert.Len(t, Sizes(), 4)
}

func fields(s string) []string { return strings.Fields(s) }

func TestResolveEveryPair(t *testing.T) {
	for _, v := range Variants() {
		for _, s := range Sizes() {
			t.Run(v.String()+"/"+s.String(), func(t *testing.T) {
				got := fields(Class(Props{Variant: v, Size: s}))
				require.NotEmpty(t, got)

				// Base, variant and size fragments never conflict with
				// each other, so every one of their classes survives.
				for _, c := range fields(BaseClasses()) {
					assert.Contains(t, got, c)
				}
				for _, c := range fields(v.Classes()) {
					assert.Contains(t, got, c)
				}
				for _, c := range fields(s.Classes()) {
					assert.Contains(t, got, c)
				}
				assert.NotContains(t, got, FullWidthClass)

				// No other variant's or size's fragment leaks in.
				for _, other := range Sizes() {
					if other != s {
						assert.NotContains(t, got, fields(other.Classes())[0])
					}
				}
			})
		}
	}
}

func TestResolveIsPure(t *testing.T) {
	p := Props{Variant: Ghost, Size: LG, FullWidth: true, Class: "bg-red-500 mt-2"}
	want := Resolve(p)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				assert.Equal(t, want, Resolve(p))
			}
		}()
	}
	wg.Wait()
}

func TestResolvePrimaryMD(t *testing.T) {
	got := fields(Class(Props{Variant: Primary, Size: MD}))

	assert.Contains(t, got, "bg-verse-blue")
	assert.Contains(t, got, "h-10")
	assert.Contains(t, got, "px-m")
	assert.Contains(t, got, "text-label")
	assert.Contains(t, got, "text-white")
	assert.NotContains(t, got, FullWidthClass)

	assert.Equal(t,
		"inline-flex items-center justify-center gap-s rounded-md font-medium transition-all duration-150 "+
			"focus:outline-none focus:ring-2 focus:ring-verse-blue focus:ring-offset-2 focus:ring-offset-background "+
			"disabled:opacity-50 disabled:cursor-not-allowed "+
			"bg-verse-blue text-white hover:bg-verse-blue/90 h-10 px-m text-label",
		strings.Join(got, " "))
}

func TestResolveZeroValueDefaults(t *testing.T) {
	assert.Equal(t, Class(Props{Variant: Primary, Size: MD}), Class(Props{}))
	assert.Equal(t, "primary", Variant(0).String())
	assert.Equal(t, "md", Size(0).String())
}

func TestOverrideWins(t *testing.T) {
	got := fields(Class(Props{Variant: Default, Size: SM, Class: "bg-red-500"}))

	assert.Contains(t, got, "bg-red-500")
	assert.NotContains(t, got, "bg-surface")
	// The override keeps its position at the end.
	assert.Equal(t, "bg-red-500", got[len(got)-1])
	// Modified backgrounds are a different group and stay.
	assert.Contains(t, got, "hover:bg-surface-elevated")
}

func TestOverrides(t *testing.T) {
	tests := []struct {
		name     string
		props    Props
		contains []string
		excludes []string
	}{
		{
			name:     "padding override",
			props:    Props{Size: LG, Class: "px-xs"},
			contains: []string{"px-xs", "h-12", "text-label-lg"},
			excludes: []string{"px-l"},
		},
		{
			name:     "text size override keeps color",
			props:    Props{Variant: Danger, Class: "text-label-sm"},
			contains: []string{"text-label-sm", "text-white", "bg-error-100"},
			excludes: []string{"text-label"},
		},
		{
			name:     "text color override keeps size",
			props:    Props{Variant: Primary, Size: XL, Class: "text-verse-pink"},
			contains: []string{"text-verse-pink", "text-label-lg"},
			excludes: []string{"text-white"},
		},
		{
			name:     "gradient background stays under a color override",
			props:    Props{Variant: Gradient, Class: "bg-surface"},
			contains: []string{"bg-verse-gradient", "bg-surface"},
		},
		{
			name:     "background opacity keeps the variant color",
			props:    Props{Variant: Primary, Class: "bg-opacity-50"},
			contains: []string{"bg-opacity-50", "bg-verse-blue"},
		},
		{
			name:     "text opacity keeps the text color",
			props:    Props{Variant: Primary, Class: "text-opacity-75"},
			contains: []string{"text-opacity-75", "text-white"},
		},
		{
			name:     "border opacity keeps the border color",
			props:    Props{Variant: Ghost, Class: "border-opacity-50"},
			contains: []string{"border-opacity-50", "border-border", "border"},
		},
		{
			name:     "rounded override",
			props:    Props{Class: "rounded-pill"},
			contains: []string{"rounded-pill"},
			excludes: []string{"rounded-md"},
		},
		{
			name:     "width override beats full width",
			props:    Props{FullWidth: true, Class: "w-auto"},
			contains: []string{"w-auto"},
			excludes: []string{FullWidthClass},
		},
		{
			name:     "unknown classes are kept",
			props:    Props{Class: "my-button my-button"},
			contains: []string{"my-button"},
		},
		{
			name:     "variant-scoped override",
			props:    Props{Variant: Link, Class: "hover:no-underline"},
			contains: []string{"hover:no-underline"},
			excludes: []string{"hover:underline"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fields(Class(tt.props))
			for _, c := range tt.contains {
				assert.Contains(t, got, c)
			}
			for _, c := range tt.excludes {
				assert.NotContains(t, got, c)
			}
		})
	}

	assert.Equal(t, 2, strings.Count(Class(Props{Class: "my-button my-button"}), "my-button"))
}

func TestFullWidth(t *testing.T) {
	for _, full := range []bool{false, true} {
		got := fields(Class(Props{FullWidth: full}))
		assert.Equal(t, full, contains(got, FullWidthClass))
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestSlots(t *testing.T) {
	tests := []struct {
		name     string
		props    Props
		disabled bool
		leading  Slot
		trailing Slot
	}{
		{
			name: "plain",
		},
		{
			name:     "disabled",
			props:    Props{Disabled: true},
			disabled: true,
		},
		{
			name:     "icons",
			props:    Props{Size: SM, LeadingIcon: true, TrailingIcon: true},
			leading:  Slot{Kind: SlotIcon, Class: "w-4 h-4"},
			trailing: Slot{Kind: SlotIcon, Class: "w-4 h-4"},
		},
		{
			name:     "loading replaces leading icon and hides trailing",
			props:    Props{Loading: true, LeadingIcon: true, TrailingIcon: true},
			disabled: true,
			leading:  Slot{Kind: SlotSpinner, Class: "animate-spin w-[18px] h-[18px]"},
		},
		{
			name:     "loading without icons",
			props:    Props{Size: XL, Loading: true},
			disabled: true,
			leading:  Slot{Kind: SlotSpinner, Class: "animate-spin w-6 h-6"},
		},
		{
			name:     "loading overrides enabled",
			props:    Props{Loading: true, Disabled: false, TrailingIcon: true},
			disabled: true,
			leading:  Slot{Kind: SlotSpinner, Class: "animate-spin w-[18px] h-[18px]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolve(tt.props)
			assert.Equal(t, tt.disabled, r.Disabled)
			assert.Equal(t, tt.props.Loading, r.Busy)
			assert.Equal(t, tt.leading, r.Leading)
			assert.Equal(t, tt.trailing, r.Trailing)
		})
	}
}

func TestLoadingDoesNotChangeClasses(t *testing.T) {
	p := Props{Variant: Secondary, Size: LG}
	loading := p
	loading.Loading = true
	assert.Equal(t, Class(p), Class(loading))
}

func TestParse(t *testing.T) {
	for _, v := range Variants() {
		got, err := ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	for _, s := range Sizes() {
		got, err := ParseSize(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	v, err := ParseVariant("")
	require.NoError(t, err)
	assert.Equal(t, Primary, v)

	_, err = ParseVariant("tertiary")
	require.Error(t, err)
	_, err = ParseSize("xxl")
	require.Error(t, err)
}

func TestTextMarshaling(t *testing.T) {
	data, err := json.Marshal(Props{Variant: Ghost, Size: XL})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"variant":"ghost"`)
	assert.Contains(t, string(data), `"size":"xl"`)

	var p Props
	require.NoError(t, json.Unmarshal([]byte(`{"variant":"danger","size":"sm","loading":true}`), &p))
	assert.Equal(t, Props{Variant: Danger, Size: SM, Loading: true}, p)

	err = json.Unmarshal([]byte(`{"variant":"loud"}`), &p)
	require.Error(t, err)

	data, err = json.Marshal(Resolve(Props{Loading: true}))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"leading":{"kind":"spinner"`)
	assert.Contains(t, string(data), `"trailing":{"kind":"empty"}`)

	var r Resolved
	require.NoError(t, json.Unmarshal(data, &r))
	assert.Equal(t, Resolve(Props{Loading: true}), r)
	require.Error(t, json.Unmarshal([]byte(`{"leading":{"kind":"emoji"}}`), &r))
}

func TestSpec(t *testing.T) {
	p, err := Spec{Variant: "ghost", Size: "xl", Loading: true, Class: "mt-2"}.Props()
	require.NoError(t, err)
	assert.Equal(t, Props{Variant: Ghost, Size: XL, Loading: true, Class: "mt-2"}, p)

	p, err = Spec{}.Props()
	require.NoError(t, err)
	assert.Equal(t, Props{Variant: Primary, Size: MD}, p)

	tests := []struct {
		name  string
		spec  Spec
		field string
		msg   string
	}{
		{"unknown variant", Spec{Variant: "tertiary"}, "variant", `unknown variant "tertiary" (valid: primary, secondary`},
		{"unknown size", Spec{Size: "2xl"}, "size", `unknown size "2xl" (valid: sm, md, lg, xl)`},
		{"case sensitive", Spec{Variant: "Primary"}, "variant", "unknown variant"},
		{"class too long", Spec{Class: strings.Repeat("a", 5000)}, "class", "failed validation for tag 'max'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.spec.Props()
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
			assert.Contains(t, ve.Message, tt.msg)
			assert.Contains(t, err.Error(), "validation error: "+tt.field)
			assert.NotNil(t, errors.Unwrap(err))
		})
	}
}

func TestSpinner(t *testing.T) {
	assert.Equal(t, "0 0 24 24", SpinnerViewBox)
	assert.Less(t, SpinnerR+SpinnerStrokeWidth/2, SpinnerCX+1)
	assert.True(t, strings.HasPrefix(SpinnerArcPath, "M4 12"))
}
