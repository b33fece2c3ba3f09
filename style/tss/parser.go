package tss

import (
	"fmt"
	"strings"

	"github.com/npillmayer/trema/style"
	"github.com/npillmayer/trema/style/cssom"
)

// ParseError is the error type for malformed style sheets.
type ParseError struct {
	Msg    string
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("tss: %d:%d: %s", e.Line, e.Column, e.Msg)
}

// Parse parses a TSS style sheet. Parsing is atomic: either a complete
// stylesheet is returned, or a *ParseError.
//
// Unquoted property values are resolved against the variables defined so
// far. Variables defined later in the style sheet do not apply to earlier
// rules.
func Parse(text string) (*cssom.Stylesheet, error) {
	return ParseWithLimit(text, cssom.DefaultSubstitutionLimit)
}

// ParseWithLimit is like Parse, but caps variable substitution for a single
// value at limit replacements.
func ParseWithLimit(text string, limit int) (*cssom.Stylesheet, error) {
	p := &parser{src: text, line: 1, col: 1, sheet: cssom.NewStylesheet(), limit: limit}
	if err := p.stylesheet(); err != nil {
		return nil, err
	}
	tracer().Debugf("tss: parsed %d rules, %d variables", len(p.sheet.Rules), len(p.sheet.Variables))
	return p.sheet, nil
}

// MustParse is like Parse, but panics on malformed input. Intended for
// style sheets compiled into a program.
func MustParse(text string) *cssom.Stylesheet {
	sheet, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return sheet
}

type parser struct {
	src   string
	pos   int
	line  int
	col   int
	sheet *cssom.Stylesheet
	limit int // variable substitution limit
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

func (p *parser) advance() {
	if p.src[p.pos] == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	p.pos++
}

func (p *parser) consume(lit string) bool {
	if p.startsWith(lit) {
		p.pos += len(lit)
		p.col += len(lit)
		return true
	}
	return false
}

func (p *parser) errorf(format string, args ...interface{}) *ParseError {
	return &ParseError{
		Msg:    fmt.Sprintf(format, args...),
		Line:   p.line,
		Column: p.col,
	}
}

// skipWhitespace skips white space and block comments.
func (p *parser) skipWhitespace() error {
	for !p.eof() {
		if isSpace(p.peek()) {
			p.advance()
			continue
		}
		if !p.startsWith("/*") {
			break
		}
		line, col := p.line, p.col
		p.consume("/*")
		for !p.eof() && !p.startsWith("*/") {
			p.advance()
		}
		if !p.consume("*/") {
			return &ParseError{Msg: "unterminated comment", Line: line, Column: col}
		}
	}
	return nil
}

// atKeyword checks for a keyword at the cursor. The keyword must not be the
// prefix of a longer identifier.
func (p *parser) atKeyword(kw string) bool {
	if !p.startsWith(kw) {
		return false
	}
	end := p.pos + len(kw)
	return end >= len(p.src) || !isIdentChar(p.src[end])
}

func (p *parser) identifier() string {
	start := p.pos
	for !p.eof() && isIdentChar(p.peek()) {
		p.advance()
	}
	return p.src[start:p.pos]
}

// stylesheet parses
//
//     { scope-block | at-rule | rule }
//
func (p *parser) stylesheet() error {
	for {
		if err := p.skipWhitespace(); err != nil {
			return err
		}
		if p.eof() {
			return nil
		}
		var err error
		switch {
		case p.atKeyword("scope"):
			err = p.scopeBlock()
		case p.peek() == '@':
			err = p.atRule()
		default:
			err = p.rule()
		}
		if err != nil {
			return err
		}
	}
}

// scopeBlock parses
//
//     'scope' '{' { name ':' value ';' | rule } '}'
//
func (p *parser) scopeBlock() error {
	p.consume("scope")
	if err := p.skipWhitespace(); err != nil {
		return err
	}
	if !p.consume("{") {
		return p.errorf("expected { after scope")
	}
	for {
		if err := p.skipWhitespace(); err != nil {
			return err
		}
		if p.eof() {
			return p.errorf("expected } after scope block")
		}
		if p.consume("}") {
			return nil
		}
		var err error
		if p.variableAhead() {
			err = p.variable()
		} else {
			err = p.rule()
		}
		if err != nil {
			return err
		}
	}
}

// variableAhead looks ahead for an identifier followed by ':', where the
// declaration ends before any '{'. "Button:hover { … }" is a rule.
func (p *parser) variableAhead() bool {
	i := p.pos
	for i < len(p.src) && isIdentChar(p.src[i]) {
		i++
	}
	if i == p.pos {
		return false
	}
	for i < len(p.src) && isSpace(p.src[i]) {
		i++
	}
	if i >= len(p.src) || p.src[i] != ':' {
		return false
	}
	for i++; i < len(p.src); i++ {
		switch c := p.src[i]; c {
		case ';', '}':
			return true
		case '{':
			return false
		case '"', '\'':
			j := strings.IndexByte(p.src[i+1:], c)
			if j < 0 {
				return true // let the value report the unterminated string
			}
			i += j + 1
		}
	}
	return true
}

func (p *parser) variable() error {
	name := p.identifier()
	if err := p.skipWhitespace(); err != nil {
		return err
	}
	if !p.consume(":") {
		return p.errorf("expected : after variable name")
	}
	if err := p.skipWhitespace(); err != nil {
		return err
	}
	d, err := p.value()
	if err != nil {
		return err
	}
	if err := p.endOfDeclaration("variable value"); err != nil {
		return err
	}
	if _, exists := p.sheet.Variables[name]; exists {
		tracer().Debugf("tss: variable %s redefined", name)
	}
	p.sheet.SetVariable(name, d.Value)
	return nil
}

// rule parses
//
//     selector '{' { property ':' value ';' } '}'
//
// Rules with an empty selector are parsed, but not added to the stylesheet.
func (p *parser) rule() error {
	line, col := p.line, p.col
	start := p.pos
	for !p.eof() && p.peek() != '{' {
		p.advance()
	}
	selector := strings.TrimSpace(p.src[start:p.pos])
	if !p.consume("{") {
		return p.errorf("expected { after selector %q", selector)
	}
	rule := cssom.NewRule(selector)
	if err := p.declarations(rule); err != nil {
		return err
	}
	if !p.consume("}") {
		return p.errorf("expected } after properties")
	}
	if rule.Selector == "" {
		tracer().Infof("tss: rule without selector at %d:%d discarded", line, col)
		return nil
	}
	p.sheet.AddRule(rule)
	return nil
}

func (p *parser) declarations(rule *cssom.Rule) error {
	for {
		if err := p.skipWhitespace(); err != nil {
			return err
		}
		if p.eof() {
			return p.errorf("expected } after properties")
		}
		if p.peek() == '}' {
			return nil
		}
		line, col := p.line, p.col
		name := p.identifier()
		if name == "" {
			return p.errorf("expected property name, found %q", p.peek())
		}
		if err := p.skipWhitespace(); err != nil {
			return err
		}
		if !p.consume(":") {
			return p.errorf("expected : after property name")
		}
		if err := p.skipWhitespace(); err != nil {
			return err
		}
		d, err := p.value()
		if err != nil {
			return err
		}
		if !d.Quoted {
			d.Value, _ = cssom.Substitute(d.Value, p.sheet.Variables, p.limit)
			d.Resolved = true
		}
		if !style.IsKnownProperty(name) {
			tracer().Infof("tss: unknown property %q at %d:%d", name, line, col)
		}
		rule.Set(name, d)
		if err := p.endOfDeclaration("property value"); err != nil {
			return err
		}
	}
}

// endOfDeclaration expects a ';'. It may be omitted for the last declaration
// of a block.
func (p *parser) endOfDeclaration(what string) error {
	if err := p.skipWhitespace(); err != nil {
		return err
	}
	if p.consume(";") || (!p.eof() && p.peek() == '}') {
		return nil
	}
	return p.errorf("expected ; after %s", what)
}

// value parses either a quoted string or an unquoted value. Quoted strings
// are taken verbatim and may span lines. Unquoted values end at white space,
// ';' or '}', except within parentheses, e.g. "rgb(0, 0, 255)".
func (p *parser) value() (cssom.Declaration, error) {
	if p.eof() {
		return cssom.Declaration{}, p.errorf("unexpected end of input, expected value")
	}
	if q := p.peek(); q == '"' || q == '\'' {
		line, col := p.line, p.col
		p.advance()
		start := p.pos
		for !p.eof() && p.peek() != q {
			p.advance()
		}
		if p.eof() {
			return cssom.Declaration{}, &ParseError{Msg: "unterminated string value", Line: line, Column: col}
		}
		v := p.src[start:p.pos]
		p.advance()
		return cssom.Declaration{Value: v, Quoted: true}, nil
	}
	line, col := p.line, p.col
	start := p.pos
	depth := 0
	for !p.eof() {
		c := p.peek()
		if depth == 0 && (isSpace(c) || isValueEnd(c) || p.startsWith("/*")) {
			break
		}
		if depth > 0 && isValueEnd(c) {
			return cssom.Declaration{}, &ParseError{Msg: "unbalanced ( in value", Line: line, Column: col}
		}
		switch c {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		}
		p.advance()
	}
	if depth > 0 {
		return cssom.Declaration{}, &ParseError{Msg: "unbalanced ( in value", Line: line, Column: col}
	}
	if p.pos == start {
		return cssom.Declaration{}, p.errorf("expected value")
	}
	return cssom.Declaration{Value: p.src[start:p.pos]}, nil
}

// atRule skips an at-rule, either '@name … ;' or '@name … { … }' with
// balanced braces.
func (p *parser) atRule() error {
	line, col := p.line, p.col
	for !p.eof() && p.peek() != ';' && p.peek() != '{' {
		p.advance()
	}
	if p.eof() {
		return &ParseError{Msg: "unterminated at-rule", Line: line, Column: col}
	}
	if p.consume(";") {
		return nil
	}
	depth := 0
	for !p.eof() {
		switch p.peek() {
		case '{':
			depth++
		case '}':
			depth--
		}
		p.advance()
		if depth == 0 {
			tracer().Debugf("tss: skipped at-rule at %d:%d", line, col)
			return nil
		}
	}
	return &ParseError{Msg: "unterminated block of at-rule", Line: line, Column: col}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isValueEnd(c byte) bool {
	return c == ';' || c == '}'
}

func isIdentChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '-'
}
