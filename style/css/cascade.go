package css

import (
	"sort"

	"github.com/npillmayer/trema/markup"
	"github.com/npillmayer/trema/style"
	"github.com/npillmayer/trema/style/cssom"
)

// Engine computes styles for a stylesheet.
type Engine struct {
	sheet     *cssom.Stylesheet
	maxSubsts int
}

// Option configures an Engine.
type Option func(*Engine)

// MaxSubstitutions sets the cap for variable replacements per value.
// Values <= 0 select cssom.DefaultSubstitutionLimit.
func MaxSubstitutions(n int) Option {
	return func(e *Engine) {
		e.maxSubsts = n
	}
}

// NewEngine creates a style engine for a stylesheet. sheet may be nil, which
// results in empty styles for every element.
func NewEngine(sheet *cssom.Stylesheet, opts ...Option) *Engine {
	e := &Engine{sheet: sheet}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Stylesheet returns the stylesheet the engine works on.
func (e *Engine) Stylesheet() *cssom.Stylesheet {
	return e.sheet
}

// ComputeStyle computes the style of an element with default options.
// See Engine.ComputeStyle.
func ComputeStyle(el *markup.Element, ancestors []*markup.Element, sheet *cssom.Stylesheet) style.Computed {
	return NewEngine(sheet).ComputeStyle(el, ancestors)
}

// MatchingRules returns all rules matching an element, ordered by
// ascending specificity. Rules of equal specificity keep source order.
func (e *Engine) MatchingRules(el *markup.Element, ancestors []*markup.Element) []*cssom.Rule {
	if e.sheet.Empty() {
		return nil
	}
	var matching []*cssom.Rule
	for _, r := range e.sheet.Rules {
		if Matches(r.Selector, el, ancestors) {
			matching = append(matching, r)
		}
	}
	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].Specificity < matching[j].Specificity
	})
	return matching
}

// Cascade applies all matching rules in order and returns the winning
// declaration for every property. Values are not yet resolved.
func (e *Engine) Cascade(el *markup.Element, ancestors []*markup.Element) map[string]cssom.Declaration {
	decls := make(map[string]cssom.Declaration)
	for _, r := range e.MatchingRules(el, ancestors) {
		for k, d := range r.Properties {
			decls[k] = d
		}
	}
	return decls
}

// ComputeStyle computes the style of an element. ancestors holds the
// ancestors of el, outermost first.
//
// The result is never nil for a non-nil element. Unresolvable values do not
// result in an error, but in defaults (see style.Coerce).
func (e *Engine) ComputeStyle(el *markup.Element, ancestors []*markup.Element) style.Computed {
	if el == nil {
		return nil
	}
	decls := e.Cascade(el, ancestors)
	computed := make(style.Computed, len(decls))
	for k, d := range decls {
		computed[k] = style.Coerce(k, e.Resolve(d))
	}
	if len(computed) > 0 {
		tracer().P("tag", el.Tag).Debugf("css: computed style %s", computed)
	}
	return computed
}

// Resolve resolves variable references in a declaration's value.
// Quoted values and values resolved at parse time are returned unchanged.
func (e *Engine) Resolve(d cssom.Declaration) string {
	if d.Quoted || d.Resolved || e.sheet == nil {
		return d.Value
	}
	v, ok := cssom.Substitute(d.Value, e.sheet.Variables, e.maxSubsts)
	if !ok {
		tracer().Infof("css: giving up resolving %q", d.Value)
	}
	return v
}
