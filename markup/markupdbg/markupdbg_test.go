package markupdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/trema/markup"
	"github.com/npillmayer/trema/style/tss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphVizWithStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trema.style")
	defer teardown()
	//
	root, err := markup.Parse(`<App><Window title="W"><Text id="hello">Hello World</Text><Button>Go</Button></Window></App>`)
	require.NoError(t, err)
	sheet := tss.MustParse(`Window { width: 300; } #hello { color: #F00; font: "a<b"; }`)
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(root, &buf, sheet))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph g {"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Equal(t, 4, strings.Count(out, "shape=ellipse"), "expected one node per element")
	assert.Equal(t, 2, strings.Count(out, "shape=box"), "expected one node per text run")
	assert.Contains(t, out, "lightgoldenrod", "expected element with id to be highlighted")
	assert.Contains(t, out, "<td>300</td>")
	assert.Contains(t, out, "a&lt;b", "expected style values to be escaped")
	assert.Contains(t, out, `"\"Hello␣Worl...\""`)
}

func TestGraphVizWithoutStyles(t *testing.T) {
	root := markup.NewElement("App", nil, markup.NewElement("Separator", nil))
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(root, &buf, nil))
	out := buf.String()
	assert.NotContains(t, out, "Mrecord")
	assert.Contains(t, out, "node00001 -> node00002")
}
