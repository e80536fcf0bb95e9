/*
Package scanner splits STEINLIB lines into whitespace separated fields.

The scanner is an adapter for lexmachine, which compiles a small DFA for
fields and whitespace. Fields consisting of decimal digits are categorized as
Number, all other fields as Word. The section grammars use the number of
fields of a line to compute patterns for tokens with variable arity, e.g.
coordinates:

    DD 1 20 40        // 4 fields → 3 integer arguments

A scanner is instantiated for each line:

    lm, err := scanner.Lexer()
    if err != nil {
        // do error handling
    }
    scan, err := lm.Scanner("DD 1 20 40")
    for token := scan.NextToken(); token.TokType() != scanner.EOF; token = scan.NextToken() {
        …
    }

For the common case clients call Fields or FieldCount.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'steinlib.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("steinlib.scanner")
}
