package steinlib

import (
	"fmt"
	"strconv"
	"strings"
)

// --- Document states -------------------------------------------------------

// DocumentState is the state of the document level state machine.
type DocumentState int8

// The states of a parse run. A parse starts with AwaitingHeader and has to
// end in Finished.
const (
	AwaitingHeader DocumentState = iota
	AwaitingSection
	InsideSection
	Finished
)

func (s DocumentState) String() string {
	switch s {
	case AwaitingHeader:
		return "awaiting-header"
	case AwaitingSection:
		return "awaiting-section"
	case InsideSection:
		return "inside-section"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("DocumentState(%d)", int(s))
}

// --- Captured values -------------------------------------------------------

// Value is a token argument as delivered to callbacks. Captures consisting
// of decimal digits only are converted to integers, all others stay strings.
type Value struct {
	text  string
	num   int
	isInt bool
}

// Int creates an integer value.
func Int(n int) Value {
	return Value{text: strconv.Itoa(n), num: n, isInt: true}
}

// Str creates a string value.
func Str(s string) Value {
	return Value{text: s}
}

// ValueOf converts a captured group. Text consisting of decimal digits only
// becomes an integer, unless it overflows an int. The text is kept as it
// appeared in the input, i.e. leading zeros are preserved by String.
func ValueOf(s string) Value {
	if !isDigits(s) {
		return Str(s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Str(s)
	}
	return Value{text: s, num: n, isInt: true}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsInt is true for values which have been converted to an integer.
func (v Value) IsInt() bool {
	return v.isInt
}

// Int returns the integer value, or 0 for string values.
func (v Value) Int() int {
	return v.num
}

// String returns the text of a value as it appeared in the input.
func (v Value) String() string {
	return v.text
}

// GoString is used by %#v, which test failure output prefers.
func (v Value) GoString() string {
	if v.isInt {
		return fmt.Sprintf("Int(%d)", v.num)
	}
	return fmt.Sprintf("Str(%q)", v.text)
}

// Captures is the list of arguments of a token, in order of appearance.
type Captures []Value

// Ints returns all integer arguments. String arguments are skipped.
func (c Captures) Ints() []int {
	ints := make([]int, 0, len(c))
	for _, v := range c {
		if v.isInt {
			ints = append(ints, v.num)
		}
	}
	return ints
}

func (c Captures) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range c {
		if i > 0 {
			b.WriteString(", ")
		}
		if v.isInt {
			b.WriteString(v.text)
		} else {
			b.WriteString(strconv.Quote(v.text))
		}
	}
	b.WriteByte(']')
	return b.String()
}

// --- Handlers --------------------------------------------------------------

// Callback is a function to be called for a recognized token. It receives
// the (trimmed) input line and the token's arguments. Returning an error
// aborts the parse.
type Callback func(line string, args Captures) error

// Handler is a set of named callbacks. Names are
//
//    header, section, eof                    root tokens
//    <section name in lower case>            e.g. "graph", "maximumdegrees"
//    <callback token>__<token name>          e.g. "graph__e", "terminals__end"
//
// Callbacks not present in the map will not be called. This is not an error.
type Handler map[string]Callback

// On sets a callback for a name and returns the handler, so calls may be
// chained.
func (h Handler) On(name string, cb Callback) Handler {
	h[name] = cb
	return h
}

// Has is true if a callback is set for name.
func (h Handler) Has(name string) bool {
	if h == nil {
		return false
	}
	cb, ok := h[name]
	return ok && cb != nil
}

// Invoke calls the callback for name, if present. It reports if a callback
// has been called.
func (h Handler) Invoke(name string, line string, args Captures) (bool, error) {
	if !h.Has(name) {
		return false, nil
	}
	return true, h[name](line, args)
}

// Names of the root level callbacks.
const (
	HeaderCallback  = "header"
	SectionCallback = "section"
	EOFCallback     = "eof"
)

// CallbackName returns the name of a section token callback, e.g.
// CallbackName("graph", "e") = "graph__e".
func CallbackName(callbackToken, tokenName string) string {
	return callbackToken + "__" + tokenName
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input positions. A span
// denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// String returns a span as "(x…y)".
func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
