package css_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/trema/markup"
	"github.com/npillmayer/trema/style"
	"github.com/npillmayer/trema/style/css"
	"github.com/npillmayer/trema/style/cssom"
	"github.com/npillmayer/trema/style/tss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopedColor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trema.style")
	defer teardown()
	//
	sheet, err := tss.Parse(`scope { c: #FF0000; } Button { background-color: c; }`)
	require.NoError(t, err)
	button := markup.NewElement("Button", nil)
	cs := css.ComputeStyle(button, nil, sheet)
	v, ok := cs["background-color"]
	require.True(t, ok, "expected background-color to be set")
	assert.Equal(t, style.KindColor, v.Kind)
	assert.Equal(t, uint8(255), v.Color.R())
	assert.Equal(t, uint8(255), v.Color.A())
}

func TestEqualSpecificityLaterWins(t *testing.T) {
	sheet := tss.MustParse(`
        Button { width: 10; height: 5; }
        Button { width: 20; }
    `)
	cs := css.ComputeStyle(markup.NewElement("Button", nil), nil, sheet)
	w, _ := cs.Number("width")
	h, _ := cs.Number("height")
	assert.Equal(t, 20.0, w, "expected later rule to win")
	assert.Equal(t, 5.0, h, "expected cascade to merge properties")
}

func TestSpecificityOrdering(t *testing.T) {
	sheet := tss.MustParse(`
        #ok            { width: 300; }
        Window .primary { width: 200; }
        .primary       { width: 100; opacity: 0.5; }
        Button         { width: 1; opacity: 3; }
    `)
	win := markup.NewElement("Window", nil)
	btn := markup.NewElement("Button", map[string]string{"class": "big primary"})
	cs := css.ComputeStyle(btn, []*markup.Element{win}, sheet)
	w, _ := cs.Number("width")
	assert.Equal(t, 200.0, w)
	o, _ := cs.Number("opacity")
	assert.Equal(t, 0.5, o)
	//
	btn.Attributes["id"] = "ok"
	cs = css.ComputeStyle(btn, []*markup.Element{win}, sheet)
	w, _ = cs.Number("width")
	assert.Equal(t, 300.0, w)
}

func TestDescendantMatching(t *testing.T) {
	app := markup.NewElement("App", nil)
	body := markup.NewElement("Body", map[string]string{"class": "main"})
	win := markup.NewElement("Window", nil)
	btn := markup.NewElement("Button", nil)
	path := []*markup.Element{app, body, win}
	cases := map[string]bool{
		"Button":                   true,
		"Window Button":            true,
		"App Button":               true, // gaps are allowed
		"App Window Button":        true,
		".main Window Button":      true,
		"Window App Button":        false, // order matters
		"Button Button":            false,
		"Body":                     false,
		"Text":                     false,
		"App Body Window Button X": false,
		"":                         false,
	}
	for sel, expected := range cases {
		assert.Equal(t, expected, css.Matches(sel, btn, path), "selector %q", sel)
	}
}

func TestQuotedValuesAreNotSubstituted(t *testing.T) {
	sheet := tss.MustParse(`scope { title: Hello; } Text { font-family: "title"; caption: title; }`)
	cs := css.ComputeStyle(markup.NewElement("Text", nil), nil, sheet)
	assert.Equal(t, style.StringValue("title"), cs["font-family"])
	assert.Equal(t, style.StringValue("Hello"), cs["caption"])
}

func TestLateVariablesDoNotApply(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trema.style")
	defer teardown()
	//
	// accent is defined after the first rule
	sheet := tss.MustParse(`Button { text-color: accent; } scope { accent: base; base: #00F; } Text { text-color: accent; }`)
	eng := css.NewEngine(sheet)
	cs := eng.ComputeStyle(markup.NewElement("Button", nil), nil)
	c, _ := cs.Color("text-color")
	assert.Equal(t, style.Unresolved, c)
	cs = eng.ComputeStyle(markup.NewElement("Text", nil), nil)
	c, _ = cs.Color("text-color")
	assert.Equal(t, style.Color(0x0000FFFF), c)
}

func TestResolveUnresolvedDeclarations(t *testing.T) {
	sheet := cssom.NewStylesheet()
	rule := cssom.NewRule("Button")
	rule.Set("text-color", cssom.Declaration{Value: "accent"})
	sheet.AddRule(rule)
	sheet.SetVariable("accent", "base")
	sheet.SetVariable("base", "#00F")
	eng := css.NewEngine(sheet)
	c, ok := eng.ComputeStyle(markup.NewElement("Button", nil), nil).Color("text-color")
	require.True(t, ok)
	assert.Equal(t, style.Color(0x0000FFFF), c)
	// resolution is idempotent
	r := eng.Resolve(cssom.Declaration{Value: "accent"})
	assert.Equal(t, r, eng.Resolve(cssom.Declaration{Value: r}))
	assert.Equal(t, "accent", eng.Resolve(cssom.Declaration{Value: "accent", Resolved: true}))
}

func TestCyclicVariables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trema.style")
	defer teardown()
	//
	sheet := tss.MustParse(`scope { a: b; b: a; } Button { color: a; width: a; }`)
	cs := css.NewEngine(sheet).ComputeStyle(markup.NewElement("Button", nil), nil)
	c, _ := cs.Color("color")
	assert.Equal(t, style.Unresolved, c)
	w, _ := cs.Number("width")
	assert.Equal(t, 0.0, w)
	//
	rule := cssom.NewRule("Text")
	rule.Set("width", cssom.Declaration{Value: "a"})
	sheet.AddRule(rule)
	eng := css.NewEngine(sheet, css.MaxSubstitutions(7))
	v := eng.Resolve(cssom.Declaration{Value: "a"})
	assert.Equal(t, "b", v, "expected substitution to stop after 7 steps")
	w, _ = eng.ComputeStyle(markup.NewElement("Text", nil), nil).Number("width")
	assert.Equal(t, 0.0, w)
}

func TestNoStylesheet(t *testing.T) {
	cs := css.ComputeStyle(markup.NewElement("Button", nil), nil, nil)
	assert.Empty(t, cs)
	assert.Nil(t, css.ComputeStyle(nil, nil, cssom.NewStylesheet()))
}
