package cssom_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/trema/style/cssom"
	"github.com/stretchr/testify/assert"
)

func TestSpecificity(t *testing.T) {
	cases := map[string]int{
		"Button":             1,
		".primary":           10,
		"#ok":                100,
		"Window .primary":    11,
		"Window   Button #x": 102,
		"":                   0,
		"* Button":           1,
	}
	for sel, expected := range cases {
		assert.Equal(t, expected, cssom.Specificity(sel), "specificity of %q", sel)
	}
	// order-independent
	assert.Equal(t, cssom.Specificity("#a .b C"), cssom.Specificity("C .b #a"))
}

func TestStylesheetRules(t *testing.T) {
	sheet := cssom.NewStylesheet()
	assert.True(t, sheet.Empty())
	r := cssom.NewRule("  Window Button ")
	r.Set("color", cssom.Declaration{Value: "red"})
	r.Set("color", cssom.Declaration{Value: "blue"})
	r.Set("width", cssom.Declaration{Value: "20"})
	sheet.AddRule(r)
	sheet.AddRule(cssom.NewRule(""))
	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule, have %d", len(sheet.Rules))
	}
	assert.Equal(t, "Window Button", r.Selector)
	assert.Equal(t, 2, r.Specificity)
	assert.Equal(t, "blue", r.Value("color"))
	assert.Equal(t, []string{"color", "width"}, r.Keys())
	//
	other := cssom.NewStylesheet()
	other.SetVariable("c", "#fff")
	other.AddRule(cssom.NewRule("Text"))
	sheet.SetVariable("c", "#000")
	sheet.AppendRules(other)
	assert.Equal(t, 2, len(sheet.Rules))
	assert.Equal(t, 1, sheet.Rules[1].Order)
	assert.Equal(t, "#fff", sheet.Variables["c"])
	assert.Equal(t, 0, other.Rules[0].Order, "expected appended rules to be copies")
}

func TestSubstitute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trema.style")
	defer teardown()
	//
	vars := map[string]string{
		"primary": "accent",
		"accent":  "#FF0000",
		"gap":     "4",
		"a":       "b",
		"b":       "a",
	}
	v, ok := cssom.Substitute("primary", vars, 0)
	assert.True(t, ok)
	assert.Equal(t, "#FF0000", v)
	v, _ = cssom.Substitute("rgb(gap, gap, 0)", vars, 0)
	assert.Equal(t, "rgb(4, 4, 0)", v)
	// hex colors and compound words are no references
	v, _ = cssom.Substitute("#accent gap-x", vars, 0)
	assert.Equal(t, "#accent gap-x", v)
	// idempotent once resolved
	again, ok := cssom.Substitute(v, vars, 0)
	assert.True(t, ok)
	assert.Equal(t, v, again)
	// cycles are capped
	v, ok = cssom.Substitute("a", vars, 10)
	assert.False(t, ok)
	assert.Contains(t, []string{"a", "b"}, v)
	// no variables, no change
	v, ok = cssom.Substitute("primary", nil, 0)
	assert.True(t, ok)
	assert.Equal(t, "primary", v)
}

func TestIsIdentifier(t *testing.T) {
	assert.True(t, cssom.IsIdentifier("button-color"))
	assert.True(t, cssom.IsIdentifier("_x1"))
	assert.False(t, cssom.IsIdentifier("1x"))
	assert.False(t, cssom.IsIdentifier("#fff"))
	assert.False(t, cssom.IsIdentifier("-x"))
}
