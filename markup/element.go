package markup

import (
	"sort"
	"strings"
)

// Node is a child of an element. It is either an *Element or a Text.
// The set of node types is closed.
type Node interface {
	isNode()
}

// Text is a run of character data inside an element.
type Text string

func (Text) isNode() {}

// Element is a node of a parsed markup tree.
//
// Elements are treated as immutable once a document has been parsed. The
// tree is owned by whoever holds the parse result for the current frame.
type Element struct {
	Tag        string            // tag name, e.g. "Button"
	Attributes map[string]string // attribute name → value
	Children   []Node            // elements and text runs, in document order
}

func (*Element) isNode() {}

// NewElement creates an element with a tag and optional children.
// Children of type string are converted to Text.
func NewElement(tag string, attrs map[string]string, children ...interface{}) *Element {
	e := &Element{Tag: tag, Attributes: attrs}
	if e.Attributes == nil {
		e.Attributes = map[string]string{}
	}
	for _, ch := range children {
		switch c := ch.(type) {
		case *Element:
			e.Children = append(e.Children, c)
		case Text:
			e.Children = append(e.Children, c)
		case string:
			e.Children = append(e.Children, Text(c))
		}
	}
	return e
}

// Attr returns the value of an attribute, together with an indicator whether
// it is set.
func (e *Element) Attr(key string) (string, bool) {
	if e == nil || e.Attributes == nil {
		return "", false
	}
	v, ok := e.Attributes[key]
	return v, ok
}

// AttrOr returns the value of an attribute or a default.
func (e *Element) AttrOr(key string, dflt string) string {
	if v, ok := e.Attr(key); ok && v != "" {
		return v
	}
	return dflt
}

// ID returns the explicit id attribute of an element, if any.
func (e *Element) ID() string {
	id, _ := e.Attr("id")
	return id
}

// Classes returns the space-separated entries of the class attribute.
func (e *Element) Classes() []string {
	cl, _ := e.Attr("class")
	return strings.Fields(cl)
}

// HasClass is a predicate for membership of a class name in the class attribute.
func (e *Element) HasClass(name string) bool {
	for _, c := range e.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

// Kind returns the widget kind of an element.
func (e *Element) Kind() Kind {
	return KindOf(e.Tag)
}

// Elements returns the element children, omitting text runs.
func (e *Element) Elements() []*Element {
	var r []*Element
	for _, ch := range e.Children {
		if el, ok := ch.(*Element); ok {
			r = append(r, el)
		}
	}
	return r
}

// TextContent concatenates the direct text children of an element, trimmed.
func (e *Element) TextContent() string {
	var sb strings.Builder
	for _, ch := range e.Children {
		if t, ok := ch.(Text); ok {
			sb.WriteString(string(t))
		}
	}
	return strings.TrimSpace(sb.String())
}

// attributeKeys returns the attribute names in a stable order.
func (e *Element) attributeKeys() []string {
	keys := make([]string, 0, len(e.Attributes))
	for k := range e.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ErrorTree creates the fallback tree used in place of a document which failed
// to parse. It consists of a single window showing the error message.
func ErrorTree(root string, err error) *Element {
	if root == "" {
		root = DefaultRootTag
	}
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return NewElement(root, nil,
		NewElement("Body", nil,
			NewElement("Window", map[string]string{"title": "Error"},
				NewElement("Text", nil, "Markup parse error: "+msg),
			),
		),
	)
}
