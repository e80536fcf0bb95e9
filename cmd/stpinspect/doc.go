/*
Command stpinspect displays the structure of STEINLIB files.

	stpinspect dump    <file.stp>     print the recognized sections and tokens as a tree
	stpinspect summary <file.stp>     print a summary of the problem instance
	stpinspect repl                   enter STEINLIB lines interactively

Flags --trace and --trace-lines control tracing output. Flags may be set
from the environment as well, e.g. STPINSPECT_TRACE=Debug.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'steinlib.cmd'
func tracer() tracing.Trace {
	return tracing.Select("steinlib.cmd")
}
