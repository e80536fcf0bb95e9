/*
Package handler provides ready-made handlers for the STEINLIB parser.

Recorder records every callback invocation, which is useful for tests and
for displaying the structure of an input file.

InstanceBuilder collects the data of a Steiner tree problem instance from
the callbacks. It does not check the data for consistency.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package handler

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'steinlib.handler'.
func tracer() tracing.Trace {
	return tracing.Select("steinlib.handler")
}
