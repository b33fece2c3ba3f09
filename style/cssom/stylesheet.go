package cssom

import (
	"sort"
	"strings"
)

// Declaration is the value part of a property declaration.
// Quoted values stem from string literals and are never subject to variable
// substitution. Resolved values have had their variable references replaced
// when the stylesheet was parsed and are not substituted again.
type Declaration struct {
	Value    string
	Quoted   bool
	Resolved bool
}

// Rule is the type stylesheets consist of.
type Rule struct {
	Selector    string                 // raw selector, e.g. "Window .primary"
	Properties  map[string]Declaration // property name → declaration
	Specificity int                    // see Specificity(…)
	Order       int                    // position within the stylesheet
}

// NewRule creates an empty rule for a selector and computes its specificity.
func NewRule(selector string) *Rule {
	selector = strings.TrimSpace(selector)
	return &Rule{
		Selector:    selector,
		Properties:  make(map[string]Declaration),
		Specificity: Specificity(selector),
	}
}

// Set sets a property declaration. Overwrites an existing value, if present.
func (r *Rule) Set(key string, d Declaration) {
	if r.Properties == nil {
		r.Properties = make(map[string]Declaration)
	}
	r.Properties[key] = d
}

// Value returns the raw value for a property key, e.g. "15px".
func (r *Rule) Value(key string) string {
	return r.Properties[key].Value
}

// Keys returns the property keys of a rule in sorted order.
func (r *Rule) Keys() []string {
	keys := make([]string, 0, len(r.Properties))
	for k := range r.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Stylesheet is an ordered list of rules together with a variable table.
type Stylesheet struct {
	Variables map[string]string
	Rules     []*Rule
}

// NewStylesheet creates an empty stylesheet.
func NewStylesheet() *Stylesheet {
	return &Stylesheet{Variables: make(map[string]string)}
}

// Empty checks if this stylesheet contains any rules.
func (s *Stylesheet) Empty() bool {
	return s == nil || len(s.Rules) == 0
}

// AddRule appends a rule. Rules with an empty selector are dropped.
func (s *Stylesheet) AddRule(r *Rule) {
	if r == nil || r.Selector == "" {
		return
	}
	r.Order = len(s.Rules)
	s.Rules = append(s.Rules, r)
}

// SetVariable sets a global variable, overwriting an earlier definition.
func (s *Stylesheet) SetVariable(name, value string) {
	if s.Variables == nil {
		s.Variables = make(map[string]string)
	}
	s.Variables[name] = value
}

// AppendRules appends rules and variables from another stylesheet. Rules of
// other will follow the rules of s, variables of other overwrite variables
// of s.
func (s *Stylesheet) AppendRules(other *Stylesheet) {
	if other == nil {
		return
	}
	for k, v := range other.Variables {
		s.SetVariable(k, v)
	}
	for _, r := range other.Rules {
		c := *r
		s.AddRule(&c)
	}
}

// --- Selectors -------------------------------------------------------------

// SelectorTokens splits a selector into its simple selectors.
func SelectorTokens(selector string) []string {
	return strings.Fields(selector)
}

// Specificity calculates the specificity of a selector. Each simple selector
// contributes: id = 100, class = 10, tag = 1. Tokens not starting with '#',
// '.' or a letter do not contribute.
func Specificity(selector string) int {
	spec := 0
	for _, tok := range SelectorTokens(selector) {
		switch c := tok[0]; {
		case c == '#':
			spec += 100
		case c == '.':
			spec += 10
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
			spec++
		}
	}
	return spec
}
