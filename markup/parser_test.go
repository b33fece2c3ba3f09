package markup_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/trema/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNestedWindow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trema.markup")
	defer teardown()
	//
	root, err := markup.Parse(`<App><Body><Window title="T"><Text>Hi</Text></Window></Body></App>`)
	require.NoError(t, err)
	require.Equal(t, "App", root.Tag)
	body := root.Elements()
	require.Len(t, body, 1)
	windows := body[0].Elements()
	require.Len(t, windows, 1)
	assert.Equal(t, "T", windows[0].AttrOr("title", ""))
	texts := windows[0].Elements()
	require.Len(t, texts, 1)
	assert.Equal(t, markup.KindText, texts[0].Kind())
	require.Len(t, texts[0].Children, 1)
	assert.Equal(t, markup.Text("Hi"), texts[0].Children[0])
	assert.Equal(t, "Hi", texts[0].TextContent())
}

func TestParseAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trema.markup")
	defer teardown()
	//
	root, err := markup.Parse(`<App a="1" b='two words' a = "3" data-x_y="z"/>`)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "3", "b": "two words", "data-x_y": "z"}, root.Attributes)
	assert.Empty(t, root.Children)
}

func TestParseDropsWhitespaceAndComments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trema.markup")
	defer teardown()
	//
	doc := `
	<App>
	  <!-- a comment with <Tags/> inside -->
	  <Body>
	    <Text>  hello  </Text>
	  </Body>
	</App>`
	root, err := markup.Parse(doc)
	require.NoError(t, err)
	require.Len(t, root.Children, 1, "comment and whitespace must not produce children")
	text := root.Elements()[0].Elements()[0]
	assert.Equal(t, "hello", text.TextContent())
}

func TestParseUnknownTagIsAccepted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trema.markup")
	defer teardown()
	//
	root, err := markup.Parse(`<App><Fancy-Widget2 level="9"/></App>`)
	require.NoError(t, err)
	fancy := root.Elements()[0]
	assert.Equal(t, "Fancy-Widget2", fancy.Tag)
	assert.Equal(t, markup.KindUnknown, fancy.Kind())
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trema.markup")
	defer teardown()
	//
	cases := []struct {
		name, doc, msg string
	}{
		{"no start token", `App`, "start with <"},
		{"wrong root", `<Body></Body>`, "root element must be <App>"},
		{"mismatch", `<App><Body></App>`, "mismatched closing tag"},
		{"missing close", `<App><Body>`, "missing closing tag for <Body>"},
		{"unterminated value", `<App title="abc>`, "unterminated value"},
		{"missing equals", `<App title"x"/>`, "expected ="},
		{"unquoted value", `<App title=x/>`, "expected quoted value"},
		{"trailing content", `<App/><App/>`, "unexpected content"},
	}
	for _, c := range cases {
		root, err := markup.Parse(c.doc)
		assert.Nil(t, root, c.name)
		require.Error(t, err, c.name)
		var perr *markup.ParseError
		require.True(t, errors.As(err, &perr), "%s: expected a *ParseError, is %T", c.name, err)
		assert.Contains(t, perr.Msg, c.msg, c.name)
	}
}

func TestParseErrorPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trema.markup")
	defer teardown()
	//
	_, err := markup.Parse("<App>\n  <Body>\n</App>")
	var perr *markup.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.Line)
	assert.Equal(t, 6, perr.Column)
	//
	_, err = markup.Parse("<App title=\"a\nb\nc")
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.Line)
}

func TestParseCustomRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trema.markup")
	defer teardown()
	//
	root, err := markup.ParseWithRoot(`<Panel><Text>x</Text></Panel>`, "Panel")
	require.NoError(t, err)
	assert.Equal(t, "Panel", root.Tag)
	_, err = markup.ParseWithRoot(`<App/>`, "Panel")
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trema.markup")
	defer teardown()
	//
	docs := []string{`<App>
	  <Head/>
	  <Body>
	    <Window title="Main" class="big dark">
	      <Text>Hello World</Text>
	      <Button id="ok" onClick="save">OK</Button>
	      <SameLine/>
	      <InputText label="Name" hint="type here"/>
	    </Window>
	  </Body>
	</App>`,
		`<App><Window title="Load & Save"><Text>x</Text></Window></App>`,
		`<App><Window title='say "hi"' hint="it's <b>"/></App>`,
	}
	for _, doc := range docs {
		first, err := markup.Parse(doc)
		require.NoError(t, err)
		serialized := first.String()
		t.Logf("serialized = %s", serialized)
		second, err := markup.Parse(serialized)
		require.NoError(t, err)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("round trip changed the tree (-first +second):\n%s", diff)
		}
		var sb strings.Builder
		require.NoError(t, markup.Serialize(&sb, second))
		assert.Equal(t, serialized, sb.String(), "serialization must be deterministic")
	}
}

func TestSerializeQuotesAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trema.markup")
	defer teardown()
	//
	e := markup.NewElement("Text", map[string]string{"title": `a "b" <c> & d`})
	assert.Equal(t, `<Text title='a "b" <c> & d'/>`, e.String())
	e = markup.NewElement("Text", map[string]string{"title": `it's`})
	assert.Equal(t, `<Text title="it's"/>`, e.String())
	e = markup.NewElement("Text", map[string]string{"title": `it's "x"`})
	assert.Equal(t, `<Text title="it's &#34;x&#34;"/>`, e.String())
}

func TestErrorTree(t *testing.T) {
	tree := markup.ErrorTree("", errors.New("boom"))
	assert.Equal(t, markup.DefaultRootTag, tree.Tag)
	window := tree.Elements()[0].Elements()[0]
	assert.Equal(t, "Error", window.AttrOr("title", ""))
	assert.Equal(t, "Markup parse error: boom", window.Elements()[0].TextContent())
}

func TestDump(t *testing.T) {
	root, err := markup.Parse(`<App><Body><Button class="x">Go</Button></Body></App>`)
	require.NoError(t, err)
	out := markup.Dump(root)
	t.Logf("\n%s", out)
	assert.Contains(t, out, "App")
	assert.Contains(t, out, `Button class="x"`)
	assert.Contains(t, out, `"Go"`)
}

func TestClasses(t *testing.T) {
	e := markup.NewElement("Button", map[string]string{"class": " primary  wide "})
	assert.Equal(t, []string{"primary", "wide"}, e.Classes())
	assert.True(t, e.HasClass("wide"))
	assert.False(t, e.HasClass("prim"))
}

func TestKinds(t *testing.T) {
	assert.Equal(t, markup.KindSliderFloat, markup.KindOf("SliderFloat"))
	assert.Equal(t, markup.KindUnknown, markup.KindOf("button"), "tags are case-sensitive")
	assert.True(t, markup.IsKnownTag("Separator"))
	assert.False(t, markup.IsKnownTag("Canvas"))
	tags := markup.KnownTags()
	assert.Len(t, tags, 12)
	assert.Equal(t, "App", tags[0])
	assert.Equal(t, "Unknown", markup.Kind(99).String())
}
