package handler

import (
	"fmt"

	"github.com/npillmayer/steinlib"
)

// Edge is an edge or arc with its weight.
type Edge struct {
	From, To, Weight int
}

// Presolve collects the data of section Presolve.
type Presolve struct {
	Fixed, Lower, Upper, Time int
	OrgNodes, OrgEdges        int
	EA                        [][4]int
	EC, ED                    [][3]int
	ES                        [][2]int
}

// Instance is a Steiner tree problem instance as read from a STEINLIB file.
type Instance struct {
	Header   string
	Name     string
	Creator  string
	Remark   string
	Problem  string
	Sections []string // sections in order of appearance

	// as declared in section Graph
	Nodes     int
	EdgeCount int
	ArcCount  int
	Obstacles string
	Edges     []Edge
	Arcs      []Edge

	TerminalCount  int
	Root           int // 0 if no root given
	Terminals      []int
	FixedTerminals []int // TP entries

	Coordinates [][]int  // DD entries
	MaxDegrees  []int    // MD entries
	Rectangles  [][4]int // RR entries
	Presolve    Presolve
}

// InstanceBuilder fills an Instance from parser callbacks.
type InstanceBuilder struct {
	inst *Instance
}

// NewInstanceBuilder creates a builder for an empty instance.
func NewInstanceBuilder() *InstanceBuilder {
	return &InstanceBuilder{inst: &Instance{}}
}

// Instance returns the instance built so far.
func (b *InstanceBuilder) Instance() *Instance {
	return b.inst
}

// Handler returns the callbacks which fill the instance.
func (b *InstanceBuilder) Handler() steinlib.Handler {
	inst := b.inst
	h := steinlib.Handler{}
	h.On(steinlib.HeaderCallback, func(_ string, args steinlib.Captures) error {
		inst.Header = args[0].String()
		return nil
	})
	h.On(steinlib.SectionCallback, func(_ string, args steinlib.Captures) error {
		inst.Sections = append(inst.Sections, args[0].String())
		return nil
	})
	// Comment
	h.On("comment__name", text(&inst.Name))
	h.On("comment__creator", text(&inst.Creator))
	h.On("comment__remark", text(&inst.Remark))
	h.On("comment__problem", text(&inst.Problem))
	// Graph
	h.On("graph__nodes", number(&inst.Nodes))
	h.On("graph__edges", number(&inst.EdgeCount))
	h.On("graph__arcs", number(&inst.ArcCount))
	h.On("graph__obstacles", text(&inst.Obstacles))
	h.On("graph__e", func(_ string, args steinlib.Captures) error {
		n, err := ints(args, 3)
		if err != nil {
			return err
		}
		inst.Edges = append(inst.Edges, Edge{n[0], n[1], n[2]})
		return nil
	})
	h.On("graph__a", func(_ string, args steinlib.Captures) error {
		n, err := ints(args, 3)
		if err != nil {
			return err
		}
		inst.Arcs = append(inst.Arcs, Edge{n[0], n[1], n[2]})
		return nil
	})
	// Terminals
	h.On("terminals__terminals", number(&inst.TerminalCount))
	h.On("terminals__rootp", number(&inst.Root))
	h.On("terminals__t", numbers(&inst.Terminals))
	h.On("terminals__tp", numbers(&inst.FixedTerminals))
	// Coordinates, MaximumDegrees, Obstacles
	h.On("coordinates__dd", func(_ string, args steinlib.Captures) error {
		n, err := ints(args, len(args))
		if err != nil {
			return err
		}
		inst.Coordinates = append(inst.Coordinates, n)
		return nil
	})
	h.On("maximum_degrees__md", numbers(&inst.MaxDegrees))
	h.On("obstacles__rr", func(_ string, args steinlib.Captures) error {
		n, err := ints(args, 4)
		if err != nil {
			return err
		}
		var rr [4]int
		copy(rr[:], n)
		inst.Rectangles = append(inst.Rectangles, rr)
		return nil
	})
	// Presolve
	ps := &inst.Presolve
	h.On("presolve__fixed", number(&ps.Fixed))
	h.On("presolve__lower", number(&ps.Lower))
	h.On("presolve__upper", number(&ps.Upper))
	h.On("presolve__time", number(&ps.Time))
	h.On("presolve__orgnodes", number(&ps.OrgNodes))
	h.On("presolve__orgedges", number(&ps.OrgEdges))
	h.On("presolve__ea", func(_ string, args steinlib.Captures) error {
		n, err := ints(args, 4)
		if err != nil {
			return err
		}
		var ea [4]int
		copy(ea[:], n)
		ps.EA = append(ps.EA, ea)
		return nil
	})
	h.On("presolve__ec", triple(&ps.EC))
	h.On("presolve__ed", triple(&ps.ED))
	h.On("presolve__es", func(_ string, args steinlib.Captures) error {
		n, err := ints(args, 2)
		if err != nil {
			return err
		}
		var es [2]int
		copy(es[:], n)
		ps.ES = append(ps.ES, es)
		return nil
	})
	h.On(steinlib.EOFCallback, func(string, steinlib.Captures) error {
		tracer().Debugf("instance complete: %d nodes, %d edges, %d terminals",
			inst.Nodes, len(inst.Edges), len(inst.Terminals))
		return nil
	})
	return h
}

func text(s *string) steinlib.Callback {
	return func(_ string, args steinlib.Captures) error {
		*s = args[0].String()
		return nil
	}
}

func number(n *int) steinlib.Callback {
	return func(_ string, args steinlib.Captures) error {
		v, err := ints(args, 1)
		if err != nil {
			return err
		}
		*n = v[0]
		return nil
	}
}

func numbers(list *[]int) steinlib.Callback {
	return func(_ string, args steinlib.Captures) error {
		v, err := ints(args, 1)
		if err != nil {
			return err
		}
		*list = append(*list, v[0])
		return nil
	}
}

func triple(list *[][3]int) steinlib.Callback {
	return func(_ string, args steinlib.Captures) error {
		v, err := ints(args, 3)
		if err != nil {
			return err
		}
		var t [3]int
		copy(t[:], v)
		*list = append(*list, t)
		return nil
	}
}

// ints checks that args are n integers. Numbers too large for an int are
// delivered as strings and rejected here.
func ints(args steinlib.Captures, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d arguments, have %d", n, len(args))
	}
	v := make([]int, n)
	for i, a := range args {
		if !a.IsInt() {
			return nil, fmt.Errorf("argument %d is not a number in range: %q", i+1, a.String())
		}
		v[i] = a.Int()
	}
	return v, nil
}
