/*
Package style provides the value layer for trema styling.

Overview

Stylesheet values are text. Before a computed style is handed to a
rendering backend, every property value is coerced into a typed Value:
a color, a number, or an opaque string. Which one is chosen depends on
the property name alone; the catalogue of known properties is fixed and
enumerable (see KnownProperties).

Unknown properties are legal. They are carried as opaque strings, which
keeps stylesheets forward-compatible.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'trema.style'
func tracer() tracing.Trace {
	return tracing.Select("trema.style")
}
