package douceuradapter_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/trema/style/cssom/douceuradapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleCSS = `
:root { --accent: #3050C0; }
@media screen { Button { color: red; } }
Button, .primary { button-color: var(--accent); width: 120px; }
Window #ok { text-color: "quoted"; }
Window > Text { color: blue; }
`

func TestImport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trema.tss")
	defer teardown()
	//
	sheet, err := douceuradapter.Import(sampleCSS)
	require.NoError(t, err)
	assert.Equal(t, "#3050C0", sheet.Variables["accent"])
	if len(sheet.Rules) != 3 {
		t.Fatalf("expected 3 rules, have %d", len(sheet.Rules))
	}
	button := sheet.Rules[0]
	assert.Equal(t, "Button", button.Selector)
	assert.Equal(t, 1, button.Specificity)
	assert.Equal(t, "accent", button.Value("button-color"))
	assert.Equal(t, "120px", button.Value("width"))
	primary := sheet.Rules[1]
	assert.Equal(t, ".primary", primary.Selector)
	assert.Equal(t, 10, primary.Specificity)
	ok := sheet.Rules[2]
	assert.Equal(t, 101, ok.Specificity)
	assert.True(t, ok.Properties["text-color"].Quoted)
	assert.Equal(t, "quoted", ok.Value("text-color"))
}

func TestImportEmpty(t *testing.T) {
	sheet, err := douceuradapter.Import("")
	require.NoError(t, err)
	assert.True(t, sheet.Empty())
}
