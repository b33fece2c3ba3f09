/*
Package cssom provides the object model for trema stylesheets.

Overview

A stylesheet is an ordered list of rules plus a table of global variables.
Every rule consists of a selector and a set of property declarations. The
order of rules reflects source order; it is significant, because for rules
of equal specificity the later one wins.

Selectors are a sequence of space-separated simple selectors, each of which
is a tag name, a class (".primary") or an id ("#ok"). Specificity is the sum
of the contributions of all simple selectors:

   #id    100
   .class  10
   tag      1

Variables are substituted textually. Only bare words of identifier shape
are candidates for substitution, quoted string literals are left alone.

Stylesheets are usually created by parsing TSS text (see package tss), but
may as well be imported from plain CSS (see package douceuradapter).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'trema.style'.
func tracer() tracing.Trace {
	return tracing.Select("trema.style")
}
