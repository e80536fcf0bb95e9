/*
Package parser implements the document level parser for STEINLIB files.

The parser is a state machine with states

    AwaitingHeader  →  AwaitingSection  ⇄  InsideSection
                             ↓
                          Finished

The first content line is taken as the header. Afterwards, the parser
expects sections ("SECTION <Name>") or the end of the document ("EOF").
Lines of a section body are handed to a section parser (see package
section) until the section's END token. Comment lines (starting with '#')
and blank lines are skipped in every state.

Usage

Clients provide the input lines and a handler, i.e. a set of callbacks:

    h := steinlib.Handler{}
    h.On("graph__e", func(line string, args steinlib.Captures) error {
        u, v, w := args[0].Int(), args[1].Int(), args[2].Int()
        …
        return nil
    })
    _, err := parser.New(lines, h).Parse()

Errors are of type *steinlib.ParseError. There are no partial results: the
first error aborts the parse, but callbacks for preceding lines will already
have been called.

An Engine may as well be fed line by line with Feed, followed by a call to
Finish when the input is exhausted.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'steinlib.parser'.
func tracer() tracing.Trace {
	return tracing.Select("steinlib.parser")
}
