/*
Package steinlib parses instances of the Steiner tree problem given in
STEINLIB format.

STEINLIB is a line-oriented format. A file starts with a magic header line,
followed by sections and a closing EOF:

    33D32945 STP File, STP Format Version 1.0
    SECTION Graph
    Nodes 4
    Edges 2
    E 1 2 10
    E 2 4 7
    END
    EOF

The parser does not build a graph. Instead, clients hand over a Handler, which
is a set of named callbacks. Callbacks are invoked in input order while the
parser recognizes root tokens (header, sections, EOF) and section tokens.
Missing callbacks are simply skipped. Package structure is as follows:

■ parser: Package parser implements the document state machine, which is the
entry point for clients.

■ section: Package section implements section parsers and the registry of known
sections.

■ grammar: Package grammar implements token rules and the matching policy for
section grammars.

■ scanner: Package scanner splits lines into whitespace separated fields.

■ handler: Package handler provides ready-made handlers, e.g. for recording
callback sequences.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package steinlib
