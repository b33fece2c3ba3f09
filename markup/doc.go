/*
Package markup implements the widget markup language of trema (TXML).

Overview

A markup document describes a tree of widgets, very much like a tiny subset of
XML:

    <App>
      <Body>
        <Window title="Settings">
          <Text>Hello</Text>
          <Button onClick="save">Save</Button>
        </Window>
      </Body>
    </App>

Parsing a document results in a tree of *Element. Children of an element are
either elements or text runs (type Text). Whitespace-only runs between elements
are dropped. There are no namespaces, no CDATA sections, no entities and no
processing instructions.

Unknown tags are not an error. They are accepted into the tree and reported to
the trace, so documents stay forward-compatible with future widgets.

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'trema.markup'.
func tracer() tracing.Trace {
	return tracing.Select("trema.markup")
}
