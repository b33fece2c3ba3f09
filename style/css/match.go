package css

import (
	"github.com/npillmayer/trema/markup"
	"github.com/npillmayer/trema/style/cssom"
)

// Matches checks if a selector matches an element. ancestors holds the
// ancestors of el, outermost first; it does not include el.
func Matches(selector string, el *markup.Element, ancestors []*markup.Element) bool {
	if el == nil {
		return false
	}
	tokens := cssom.SelectorTokens(selector)
	if len(tokens) == 0 {
		return false
	}
	last := len(tokens) - 1
	if !MatchesSimple(tokens[last], el) {
		return false
	}
	j := len(ancestors) - 1
	for i := last - 1; i >= 0; i-- {
		for j >= 0 && !MatchesSimple(tokens[i], ancestors[j]) {
			j--
		}
		if j < 0 {
			return false
		}
		j--
	}
	return true
}

// MatchesSimple matches a single simple selector against an element:
//
//    #id     equals the element's id attribute
//    .class  is one of the element's classes
//    Tag     equals the element's tag
//
func MatchesSimple(token string, el *markup.Element) bool {
	if token == "" || el == nil {
		return false
	}
	switch token[0] {
	case '#':
		id := el.ID()
		return id != "" && id == token[1:]
	case '.':
		return el.HasClass(token[1:])
	}
	return el.Tag == token
}
