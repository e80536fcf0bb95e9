/*
Package section implements parsers for the sections of a STEINLIB file.

A section starts with a line "SECTION <Name>" and usually ends with a line
"END". In between, every line has to match a token of the section's grammar.
For each token recognized, a parser calls back a handler with name

    <callback token>__<token name>          e.g. graph__e, presolve__ea

Callback tokens are fixed per section:

    Comment          comment
    Coordinates      coordinates
    Graph            graph
    MaximumDegrees   maximum_degrees
    Obstacles        obstacles
    Presolve         presolve
    Terminals        terminals

Sections are looked up by name in a Registry. DefaultRegistry returns a
registry with all of the sections above. Clients may register additional
sections.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package section

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'steinlib.section'.
func tracer() tracing.Trace {
	return tracing.Select("steinlib.section")
}
