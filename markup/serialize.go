package markup

import (
	"fmt"
	"io"
	"strings"

	tp "github.com/xlab/treeprint"
)

// Serialize writes the markup text of an element tree.
//
// Attributes are written in sorted order. Attribute values are written
// verbatim, in double quotes, or in single quotes if the value contains a
// double quote. Childless elements are written as self-closing tags.
// Re-parsing the output results in an identical tree, unless an attribute
// value contains both kinds of quotes. Such a value cannot be represented and
// its double quotes are escaped.
func Serialize(w io.Writer, e *Element) error {
	var sb strings.Builder
	writeElement(&sb, e)
	_, err := io.WriteString(w, sb.String())
	return err
}

// String returns the markup text for an element tree.
func (e *Element) String() string {
	if e == nil {
		return ""
	}
	var sb strings.Builder
	writeElement(&sb, e)
	return sb.String()
}

func writeElement(sb *strings.Builder, e *Element) {
	sb.WriteByte('<')
	sb.WriteString(e.Tag)
	for _, k := range e.attributeKeys() {
		writeAttribute(sb, e.Tag, k, e.Attributes[k])
	}
	if len(e.Children) == 0 {
		sb.WriteString("/>")
		return
	}
	sb.WriteByte('>')
	for _, ch := range e.Children {
		switch c := ch.(type) {
		case *Element:
			writeElement(sb, c)
		case Text:
			sb.WriteString(string(c))
		}
	}
	sb.WriteString("</")
	sb.WriteString(e.Tag)
	sb.WriteByte('>')
}

func writeAttribute(sb *strings.Builder, tag, key, value string) {
	quote := byte('"')
	if strings.IndexByte(value, '"') >= 0 {
		if strings.IndexByte(value, '\'') < 0 {
			quote = '\''
		} else {
			tracer().Infof("markup: value of attribute %s of <%s> contains both kinds of quotes", key, tag)
			value = strings.ReplaceAll(value, `"`, "&#34;")
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteByte('=')
	sb.WriteByte(quote)
	sb.WriteString(value)
	sb.WriteByte(quote)
}

// Dump returns an indented, human readable outline of an element tree.
// It is intended for debugging and for command line tools.
func Dump(e *Element) string {
	if e == nil {
		return "<nil>"
	}
	root := tp.New()
	root.SetValue(label(e))
	dumpChildren(root, e)
	return root.String()
}

func dumpChildren(t tp.Tree, e *Element) {
	for _, ch := range e.Children {
		switch c := ch.(type) {
		case *Element:
			if len(c.Children) == 0 {
				t.AddNode(label(c))
				continue
			}
			dumpChildren(t.AddBranch(label(c)), c)
		case Text:
			t.AddNode(fmt.Sprintf("%q", strings.TrimSpace(string(c))))
		}
	}
}

func label(e *Element) string {
	var sb strings.Builder
	sb.WriteString(e.Tag)
	for _, k := range e.attributeKeys() {
		fmt.Fprintf(&sb, " %s=%q", k, e.Attributes[k])
	}
	return sb.String()
}
