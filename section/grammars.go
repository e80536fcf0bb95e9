package section

import (
	"strings"
	"sync"

	"github.com/npillmayer/steinlib/grammar"
	"github.com/npillmayer/steinlib/scanner"
)

// Names of the standard sections.
const (
	Comment        = "Comment"
	Coordinates    = "Coordinates"
	Graph          = "Graph"
	MaximumDegrees = "MaximumDegrees"
	Obstacles      = "Obstacles"
	Presolve       = "Presolve"
	Terminals      = "Terminals"
)

var standard []*Definition
var standardOnce sync.Once // monitors one-time creation of the standard grammars

// Standard returns the definitions of the standard STEINLIB sections.
// Grammars are created once and shared.
func Standard() []*Definition {
	standardOnce.Do(func() {
		tracer().Debugf("creating standard section grammars")
		standard = []*Definition{
			{Name: Comment, CallbackToken: "comment", Grammar: commentGrammar()},
			{Name: Coordinates, CallbackToken: "coordinates", Grammar: coordinatesGrammar()},
			{Name: Graph, CallbackToken: "graph", Grammar: graphGrammar()},
			{Name: MaximumDegrees, CallbackToken: "maximum_degrees", Grammar: maximumDegreesGrammar()},
			{Name: Obstacles, CallbackToken: "obstacles", Grammar: obstaclesGrammar()},
			{Name: Presolve, CallbackToken: "presolve", Grammar: presolveGrammar()},
			{Name: Terminals, CallbackToken: "terminals", Grammar: terminalsGrammar()},
		}
	})
	return standard
}

// Name "…", Creator "…", Remark "…", Problem "…"
func commentGrammar() *grammar.Grammar {
	b := grammar.NewBuilder(Comment)
	b.Token("name", `^Name\s+"(.+)"$`)
	b.Token("creator", `^Creator\s+"(.+)"$`)
	b.Token("remark", `^Remark\s+"(.+)"$`)
	b.Token("problem", `^Problem\s+"(.+)"$`)
	b.SectionEnd()
	return b.MustGrammar()
}

// DD <n1> … <nk>, where k depends on the line
func coordinatesGrammar() *grammar.Grammar {
	b := grammar.NewBuilder(Coordinates)
	b.Dynamic("dd", coordinatesPattern)
	b.SectionEnd()
	return b.MustGrammar()
}

// coordinatesPattern requires as many integers as the line has fields
// following the DD. Separators are the same as for scanner.Fields; RE2's \s
// lacks \v.
func coordinatesPattern(line string) string {
	n := scanner.FieldCount(line) - 1
	if n < 0 {
		n = 0
	}
	return `^DD` + strings.Repeat(`[\s\v]+(\d+)`, n) + `$`
}

func graphGrammar() *grammar.Grammar {
	b := grammar.NewBuilder(Graph)
	b.Token("obstacles", `^Obstacles\s+(.+)$`)
	b.Token("nodes", `^Nodes\s+(\d+)$`)
	b.Token("edges", `^Edges\s+(\d+)$`)
	b.Token("arcs", `^Arcs\s+(\d+)$`)
	b.Token("e", `^E\s+(\d+)\s+(\d+)\s+(\d+)$`)
	b.Token("a", `^A\s+(\d+)\s+(\d+)\s+(\d+)$`)
	b.SectionEnd()
	return b.MustGrammar()
}

func maximumDegreesGrammar() *grammar.Grammar {
	b := grammar.NewBuilder(MaximumDegrees)
	b.Token("md", `^MD\s+(\d+)$`)
	b.SectionEnd()
	return b.MustGrammar()
}

func obstaclesGrammar() *grammar.Grammar {
	b := grammar.NewBuilder(Obstacles)
	b.Token("rr", `^RR\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)$`)
	b.SectionEnd()
	return b.MustGrammar()
}

func presolveGrammar() *grammar.Grammar {
	b := grammar.NewBuilder(Presolve)
	b.Token("fixed", `^FIXED\s+(\d+)$`)
	b.Token("lower", `^LOWER\s+(\d+)$`)
	b.Token("upper", `^UPPER\s+(\d+)$`)
	b.Token("time", `^TIME\s+(\d+)$`)
	b.Token("orgnodes", `^ORGNODES\s+(\d+)$`)
	b.Token("orgedges", `^ORGEDGES\s+(\d+)$`)
	b.Token("ea", `^EA\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)$`)
	b.Token("ec", `^EC\s+(\d+)\s+(\d+)\s+(\d+)$`)
	b.Token("ed", `^ED\s+(\d+)\s+(\d+)\s+(\d+)$`)
	b.Token("es", `^ES\s+(\d+)\s+(\d+)$`)
	b.SectionEnd()
	return b.MustGrammar()
}

func terminalsGrammar() *grammar.Grammar {
	b := grammar.NewBuilder(Terminals)
	b.Token("terminals", `^Terminals\s+(\d+)$`)
	b.Token("rootp", `^RootP\s+(\d+)$`)
	b.Token("t", `^T\s+(\d+)$`)
	b.Token("tp", `^TP\s+(\d+)$`)
	b.SectionEnd()
	return b.MustGrammar()
}
