package markup

import (
	"fmt"
	"strings"
)

// ParseError is the error type for malformed markup documents.
// Line and Column denote the position where the parser gave up; both are 1-based.
type ParseError struct {
	Msg    string
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("markup: %d:%d: %s", e.Line, e.Column, e.Msg)
}

// Parse parses a markup document with the default root tag.
//
// Parsing is atomic: either a complete tree is returned, or a *ParseError.
// Clients wanting a displayable result in any case will use ErrorTree(…) to
// construct a substitute.
func Parse(text string) (*Element, error) {
	return ParseWithRoot(text, DefaultRootTag)
}

// ParseWithRoot parses a markup document and checks that its root element
// carries the tag root. An empty root selects DefaultRootTag.
func ParseWithRoot(text string, root string) (*Element, error) {
	if root == "" {
		root = DefaultRootTag
	}
	p := &parser{src: strings.TrimSpace(text), line: 1, col: 1}
	p.skipWhitespace()
	if p.eof() || p.peek() != '<' {
		return nil, p.errorf("expected markup document to start with <")
	}
	el, err := p.element()
	if err != nil {
		return nil, err
	}
	if el.Tag != root {
		return nil, p.errorf("root element must be <%s>, is <%s>", root, el.Tag)
	}
	p.skipWhitespace()
	if !p.eof() {
		return nil, p.errorf("unexpected content after root element </%s>", el.Tag)
	}
	return el, nil
}

// --- Parser ----------------------------------------------------------------

// parser is a recursive-descent parser over a cursor. It tracks byte offset,
// line and column. Column resets to 1 after every newline.
type parser struct {
	src  string
	pos  int
	line int
	col  int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	return p.src[p.pos]
}

func (p *parser) startsWith(s string) bool {
	return strings.HasPrefix(p.src[p.pos:], s)
}

// advance moves the cursor by one byte, keeping track of lines and columns.
func (p *parser) advance() {
	if p.src[p.pos] == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	p.pos++
}

// consume checks for a literal at the cursor and skips it if present.
// Literals never contain newlines.
func (p *parser) consume(lit string) bool {
	if p.startsWith(lit) {
		p.pos += len(lit)
		p.col += len(lit)
		return true
	}
	return false
}

func (p *parser) skipWhitespace() {
	for !p.eof() && isSpace(p.peek()) {
		p.advance()
	}
}

func (p *parser) errorf(format string, args ...interface{}) *ParseError {
	return &ParseError{
		Msg:    fmt.Sprintf(format, args...),
		Line:   p.line,
		Column: p.col,
	}
}

// element parses
//
//     '<' name attributes ( '/>' | '>' children '</' name '>' )
//
func (p *parser) element() (*Element, error) {
	if !p.consume("<") {
		return nil, p.errorf("expected <")
	}
	tag := p.identifier()
	if tag == "" {
		return nil, p.errorf("expected tag name after <")
	}
	if !IsKnownTag(tag) {
		tracer().Infof("markup: unknown tag <%s> at %d:%d", tag, p.line, p.col)
	}
	attrs, err := p.attributes(tag)
	if err != nil {
		return nil, err
	}
	el := &Element{Tag: tag, Attributes: attrs}
	if p.consume("/>") {
		return el, nil
	}
	if !p.consume(">") {
		return nil, p.errorf("expected > or /> in tag <%s>", tag)
	}
	if el.Children, err = p.children(); err != nil {
		return nil, err
	}
	if !p.consume("</") {
		return nil, p.errorf("missing closing tag for <%s>", tag)
	}
	closing := p.identifier()
	if closing != tag {
		return nil, p.errorf("mismatched closing tag: expected </%s> but found </%s>", tag, closing)
	}
	p.skipWhitespace()
	if !p.consume(">") {
		return nil, p.errorf("expected > in closing tag </%s", tag)
	}
	return el, nil
}

// identifier reads a run of letters, digits, '_' and '-'. It may be empty.
func (p *parser) identifier() string {
	start := p.pos
	for !p.eof() && isIdentChar(p.peek()) {
		p.pos++
		p.col++
	}
	return p.src[start:p.pos]
}

func (p *parser) attributes(tag string) (map[string]string, error) {
	attrs := make(map[string]string)
	p.skipWhitespace()
	for !p.eof() && p.peek() != '>' && p.peek() != '/' {
		name := p.identifier()
		if name == "" {
			return nil, p.errorf("unexpected character %q in tag <%s>", p.peek(), tag)
		}
		p.skipWhitespace()
		if !p.consume("=") {
			return nil, p.errorf("expected = after attribute name %q", name)
		}
		p.skipWhitespace()
		value, err := p.attributeValue(name)
		if err != nil {
			return nil, err
		}
		attrs[name] = value // last one wins
		p.skipWhitespace()
	}
	if p.eof() {
		return nil, p.errorf("unexpected end of input in tag <%s>", tag)
	}
	return attrs, nil
}

func (p *parser) attributeValue(name string) (string, error) {
	if p.eof() || (p.peek() != '"' && p.peek() != '\'') {
		return "", p.errorf("expected quoted value for attribute %q", name)
	}
	quote := p.peek()
	p.advance()
	start := p.pos
	for !p.eof() && p.peek() != quote {
		p.advance()
	}
	if p.eof() {
		return "", p.errorf("unterminated value for attribute %q", name)
	}
	value := p.src[start:p.pos]
	p.advance()
	return value, nil
}

// children collects child nodes up to, but not including, a closing tag.
func (p *parser) children() ([]Node, error) {
	var children []Node
	for {
		p.skipWhitespace()
		if p.eof() || p.startsWith("</") {
			return children, nil
		}
		if p.startsWith("<!--") {
			p.skipComment()
			continue
		}
		if p.peek() == '<' {
			el, err := p.element()
			if err != nil {
				return nil, err
			}
			children = append(children, el)
			continue
		}
		if text := p.text(); strings.TrimSpace(text) != "" {
			children = append(children, Text(text))
		}
	}
}

// text reads character data up to the next '<'.
func (p *parser) text() string {
	start := p.pos
	for !p.eof() && p.peek() != '<' {
		p.advance()
	}
	return p.src[start:p.pos]
}

// skipComment skips a comment verbatim. An unterminated comment extends to
// the end of input.
func (p *parser) skipComment() {
	p.consume("<!--")
	for !p.eof() {
		if p.consume("-->") {
			return
		}
		p.advance()
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isIdentChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '_' || c == '-'
}
