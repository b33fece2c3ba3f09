/*
Package css computes styles for markup elements.

Given an element, its chain of ancestors and a stylesheet, the engine

  1. selects every rule whose selector matches the element,
  2. orders the matching rules by specificity, keeping source order for
     rules of equal specificity,
  3. applies them property by property, so that later rules overwrite
     earlier ones,
  4. resolves variable references in surviving values which have not been
     resolved by the stylesheet parser, e.g. for imported CSS, and
  5. coerces each value to a typed value (see package style).

Selector matching is descendant matching without combinators: the rightmost
simple selector has to match the element itself, every simple selector to
its left has to match some ancestor further outward. Ancestors may be
skipped.

Status

Styles are computed per element and frame, without caching. This is fast
enough for the small trees an immediate-mode UI usually renders.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'trema.style'.
func tracer() tracing.Trace {
	return tracing.Select("trema.style")
}
