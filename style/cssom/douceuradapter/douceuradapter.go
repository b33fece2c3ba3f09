/*
Package douceuradapter imports plain CSS into a trema stylesheet.

CSS text is parsed with the douceur CSS parser. Selectors are validated and
weighted with cascadia, which yields the same (id, class, tag) triple that
trema uses for specificity. Only selectors trema is able to match are
imported: space-separated chains of tag, class and id selectors. Rules with
other selectors (child combinators, attribute selectors, pseudo classes, …)
are dropped with a warning. At-rules are skipped, as in TSS.

Custom properties are imported as variables:

    :root { --accent: #3050C0; }
    Button { button-color: var(--accent); }

is equivalent to the TSS

    scope { accent: #3050C0; }
    Button { button-color: accent; }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/trema/style"
	"github.com/npillmayer/trema/style/cssom"
)

// tracer traces with key 'trema.tss'.
func tracer() tracing.Trace {
	return tracing.Select("trema.tss")
}

// Import parses CSS text and converts it to a stylesheet.
func Import(cssText string) (*cssom.Stylesheet, error) {
	c, err := parser.Parse(cssText)
	if err != nil {
		return nil, fmt.Errorf("douceuradapter: cannot parse CSS: %w", err)
	}
	return Convert(c), nil
}

// Convert converts a douceur stylesheet. Every selector of a selector group
// results in a rule of its own, all sharing the declarations of the group.
func Convert(c *css.Stylesheet) *cssom.Stylesheet {
	sheet := cssom.NewStylesheet()
	if c == nil {
		return sheet
	}
	for _, r := range c.Rules {
		if r.Kind == css.AtRule {
			tracer().Debugf("douceuradapter: skipping at-rule %s", r.Name)
			continue
		}
		selectors := r.Selectors
		if len(selectors) == 0 {
			selectors = strings.Split(r.Prelude, ",")
		}
		for _, sel := range selectors {
			sel = strings.TrimSpace(sel)
			if sel == "" {
				continue
			}
			convertRule(sheet, sel, r.Declarations)
		}
	}
	return sheet
}

var simpleSelector = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_-]*|[.#][A-Za-z_][A-Za-z0-9_-]*)$`)

func convertRule(sheet *cssom.Stylesheet, sel string, decls []*css.Declaration) {
	s, err := cascadia.Parse(sel)
	if err != nil {
		tracer().Infof("douceuradapter: invalid selector %q: %v", sel, err)
		return
	}
	rule := cssom.NewRule(sel)
	matchable := true
	for _, tok := range cssom.SelectorTokens(sel) {
		if !simpleSelector.MatchString(tok) {
			matchable = false
			break
		}
	}
	for _, d := range decls {
		if strings.HasPrefix(d.Property, "--") {
			sheet.SetVariable(strings.TrimPrefix(d.Property, "--"), varReferences(d.Value))
			continue
		}
		if !matchable {
			continue
		}
		if !style.IsKnownProperty(d.Property) {
			tracer().Infof("douceuradapter: unknown property %q in rule %q", d.Property, sel)
		}
		if d.Important {
			tracer().Debugf("douceuradapter: !important ignored for %s", d.Property)
		}
		rule.Set(d.Property, declaration(d.Value))
	}
	if !matchable {
		if len(decls) > 0 && sel != ":root" {
			tracer().Infof("douceuradapter: selector %q not supported, rule dropped", sel)
		}
		return
	}
	sp := s.Specificity()
	rule.Specificity = 100*sp[0] + 10*sp[1] + sp[2]
	sheet.AddRule(rule)
}

func declaration(v string) cssom.Declaration {
	v = strings.TrimSpace(v)
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return cssom.Declaration{Value: v[1 : len(v)-1], Quoted: true}
	}
	return cssom.Declaration{Value: varReferences(v)}
}

var varCall = regexp.MustCompile(`var\(\s*--([A-Za-z_][A-Za-z0-9_-]*)\s*\)`)

// varReferences rewrites var(--x) to the bare variable name x.
func varReferences(v string) string {
	return varCall.ReplaceAllString(strings.TrimSpace(v), "$1")
}
