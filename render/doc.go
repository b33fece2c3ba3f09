/*
Package render replays markup documents against an immediate-mode GUI.

A Renderer is driven once per frame. It parses a markup document and a
stylesheet, walks the element tree, computes styles and widget state for
every element and issues the corresponding calls to a Backend:

    r, err := render.New(backend)
    r.RegisterHandler("save", func() { … })
    for !done {
        if err := r.Render(doc, sheet); err != nil {
            …
        }
    }

Malformed markup does not stop a frame: a window displaying the parse error
is rendered in place of the document. A malformed stylesheet aborts the
frame. Errors raised while rendering a single element are caught and
reported; the element's siblings are rendered nonetheless.

Every backend call may be mirrored to a FrameSink for diagnostics.

Status

The set of widgets is fixed. Unknown tags are skipped with a warning.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package render

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'trema.render'.
func tracer() tracing.Trace {
	return tracing.Select("trema.render")
}
