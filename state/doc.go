/*
Package state keeps the state of widgets across frames.

Immediate-mode widgets do not own any state. Everything a user may edit,
the text of an input field, the position of a slider, the check mark of a
checkbox, has to be kept elsewhere and handed to the widget in every frame.
Package state provides a store for these values, keyed by a widget's stable
id.

Stable ids are derived from an element's position in the markup tree,
unless an element carries an explicit "id" attribute:

    <App><Body><Window title="A">
        <Button/>            → App/Body/Window/Button#0
        <Button/>            → App/Body/Window/Button#1
        <InputText id="q"/>  → q
    </Window></Body></App>

Entries not accessed for a number of frames (10 by default) are evicted at
the end of a frame.

A Manager is not safe for concurrent use. It is meant to be driven by a
single render loop.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package state

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'trema.state'.
func tracer() tracing.Trace {
	return tracing.Select("trema.state")
}
