package style_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/trema/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	cases := map[string]style.Color{
		"0xCC0000FF":      0xCC0000FF,
		"0x00FF00":        0x00FF00FF,
		"#F00":            0xFF0000FF,
		"#123456":         0x123456FF,
		"#12345678":       0x12345678,
		"rgb(1, 2, 3)":    0x010203FF,
		"rgb(300,0,0)":    0xFF0000FF,
		"red":             0xFF0000FF,
		"  transparent  ": 0x00000000,
	}
	for in, expected := range cases {
		c, err := style.ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, expected, c, "color %q", in)
	}
	for _, bad := range []string{"", "#12", "0xZZZZZZ", "rgb(1,2)", "sky", "#1234"} {
		_, err := style.ParseColor(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestColorComponents(t *testing.T) {
	c := style.RGBA(255, 128, 0, 255)
	assert.Equal(t, uint8(255), c.R())
	assert.Equal(t, uint8(128), c.G())
	assert.Equal(t, uint8(0), c.B())
	assert.Equal(t, uint8(255), c.A())
	assert.Equal(t, "0xFF8000FF", c.String())
	assert.Equal(t, style.RGBA(255, 168, 40, 255), c.Shade(40))
	assert.Equal(t, style.RGBA(205, 78, 0, 255), c.Shade(-50))
	f := c.Floats()
	assert.InDelta(t, 1.0, f[0], 1e-6)
	assert.InDelta(t, 0.0, f[2], 1e-6)
}

func TestCoerce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trema.style")
	defer teardown()
	//
	v := style.Coerce("background-color", "#FF0000")
	assert.Equal(t, style.KindColor, v.Kind)
	assert.Equal(t, uint8(255), v.Color.R())
	assert.Equal(t, uint8(255), v.Color.A())
	//
	v = style.Coerce("color", "no-such-color")
	assert.Equal(t, style.KindColor, v.Kind)
	assert.Equal(t, style.Unresolved, v.Color)
	//
	v = style.Coerce("width", "120px")
	assert.Equal(t, style.NumberValue(120), v)
	v = style.Coerce("height", "auto")
	assert.Equal(t, style.NumberValue(0), v)
	//
	assert.Equal(t, style.NumberValue(1), style.Coerce("opacity", "7"))
	assert.Equal(t, style.NumberValue(0), style.Coerce("opacity", "-0.5"))
	assert.Equal(t, style.NumberValue(0.25), style.Coerce("opacity", ".25"))
	assert.Equal(t, style.NumberValue(1), style.Coerce("opacity", "none"))
	//
	assert.Equal(t, style.StringValue("bold italic"), style.Coerce("font-style", " bold italic "))
}

func TestComputedAccessors(t *testing.T) {
	cs := style.Computed{
		"color": style.ColorValue(0x112233FF),
		"width": style.NumberValue(10),
		"x":     style.StringValue("y"),
	}
	c, ok := cs.Color("color")
	assert.True(t, ok)
	assert.Equal(t, style.Color(0x112233FF), c)
	_, ok = cs.Color("width")
	assert.False(t, ok)
	w, ok := cs.Number("width")
	assert.True(t, ok)
	assert.Equal(t, 10.0, w)
	s, ok := cs.Str("x")
	assert.True(t, ok)
	assert.Equal(t, "y", s)
	assert.Equal(t, []string{"color", "width", "x"}, cs.Keys())
	assert.Equal(t, "{color: 0x112233FF; width: 10; x: y}", cs.String())
	var empty style.Computed
	_, ok = empty.Number("width")
	assert.False(t, ok)
}

func TestCatalogue(t *testing.T) {
	assert.True(t, style.IsKnownProperty("button-color-hover"))
	assert.False(t, style.IsKnownProperty("flux-capacity"))
	assert.Equal(t, style.ClassOpacity, style.ClassOf("opacity"))
	assert.Equal(t, style.ClassOpaque, style.ClassOf("flux-capacity"))
	assert.Contains(t, style.KnownProperties(), "width")
}
