package state

import (
	"strconv"
	"strings"

	"github.com/npillmayer/trema/markup"
	"github.com/npillmayer/trema/style/cssom"
)

// Context is the per-frame aggregate handed through a render pass.
// Besides the shared state store it tracks the chain of ancestors of the
// element currently visited.
type Context struct {
	Store      *Manager
	Handlers   map[string]func()
	Stylesheet *cssom.Stylesheet
	Frame      uint64
	ancestors  []*markup.Element
	path       []string
}

// Push enters an element. sib is the element's position among its siblings.
func (c *Context) Push(el *markup.Element, sib Sibling) {
	c.ancestors = append(c.ancestors, el)
	c.path = append(c.path, segment(el.Tag, sib))
}

// Pop leaves the innermost element.
func (c *Context) Pop() {
	if len(c.ancestors) == 0 {
		return
	}
	c.ancestors = c.ancestors[:len(c.ancestors)-1]
	c.path = c.path[:len(c.path)-1]
}

// Depth returns the number of elements entered.
func (c *Context) Depth() int {
	return len(c.ancestors)
}

// Ancestors returns the elements entered, outermost first.
// Clients must not modify the slice.
func (c *Context) Ancestors() []*markup.Element {
	return c.ancestors[:len(c.ancestors):len(c.ancestors)]
}

// Path returns the path segments of the elements entered, outermost first.
func (c *Context) Path() []string {
	return c.path[:len(c.path):len(c.path)]
}

// StableID returns the stable id for an element as a child of the innermost
// element entered.
func (c *Context) StableID(el *markup.Element, sib Sibling) string {
	return StableID(el, c.path, sib)
}

// Handler looks up an event handler by name.
func (c *Context) Handler(name string) (func(), bool) {
	h, ok := c.Handlers[name]
	return h, ok && h != nil
}

// --- Stable ids ------------------------------------------------------------

// Sibling describes the position of an element among its siblings: Index is
// the position among the siblings without explicit id sharing its tag, Count
// is the number of these siblings.
type Sibling struct {
	Index int
	Count int
}

// Only is the sibling position of an element without same-tag siblings.
var Only = Sibling{Index: 0, Count: 1}

// Siblings computes the sibling positions for a list of child elements.
// Elements with an explicit id do not take part in counting.
func Siblings(children []*markup.Element) []Sibling {
	counts := make(map[string]int)
	for _, ch := range children {
		if ch.ID() == "" {
			counts[ch.Tag]++
		}
	}
	seen := make(map[string]int)
	sibs := make([]Sibling, len(children))
	for i, ch := range children {
		if ch.ID() != "" {
			sibs[i] = Only
			continue
		}
		sibs[i] = Sibling{Index: seen[ch.Tag], Count: counts[ch.Tag]}
		seen[ch.Tag]++
	}
	return sibs
}

// StableID derives the identity of an element. An explicit id attribute is
// used verbatim. Otherwise the id is the path of the element's ancestors
// followed by the element's tag, joined by '/'. If more than one sibling
// shares the tag, the sibling index is appended as "#i".
func StableID(el *markup.Element, path []string, sib Sibling) string {
	if id := el.ID(); id != "" {
		return id
	}
	var sb strings.Builder
	for _, p := range path {
		sb.WriteString(p)
		sb.WriteByte('/')
	}
	sb.WriteString(segment(el.Tag, sib))
	return sb.String()
}

func segment(tag string, sib Sibling) string {
	if sib.Count > 1 {
		return tag + "#" + strconv.Itoa(sib.Index)
	}
	return tag
}
