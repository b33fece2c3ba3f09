/*
Package tss parses TSS, trema style sheets.

TSS is a small subset of CSS with an additional construct for global
variables:

    scope {
        accent: #3050C0;
        danger: rgb(200, 40, 40);
    }
    Button         { button-color: accent; }
    Window .danger { text-color: danger; width: 120; }
    @media print   { Button { width: 0; } }

A scope block holds variable definitions. Entries of a scope block which are
not of the form "name: value;" are parsed as ordinary rules. Variable
references in property values are replaced by the variables' values at the
moment a rule is parsed. At-rules are skipped.

Property names unknown to package style are accepted, but reported to the
trace.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tss

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'trema.tss'.
func tracer() tracing.Trace {
	return tracing.Select("trema.tss")
}
