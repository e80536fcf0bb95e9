package steinlib

import (
	"fmt"
	"strings"
)

// ErrorKind classifies parse errors.
type ErrorKind int

// Error kinds. All of them are fatal and abort a parse.
const (
	MalformedLine             ErrorKind = iota + 1 // line matches no rule of its context
	UnknownSection                                 // SECTION with a name not in the registry
	UnexpectedContentAfterEof                      // content following EOF
	IllegalFinalState                              // input exhausted before EOF
	HandlerFailed                                  // a callback returned an error
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedLine:
		return "malformed line"
	case UnknownSection:
		return "unknown section"
	case UnexpectedContentAfterEof:
		return "unexpected content after EOF"
	case IllegalFinalState:
		return "illegal final state"
	case HandlerFailed:
		return "handler failed"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError is the error type for all errors of a parse run.
type ParseError struct {
	Kind   ErrorKind
	Line   string   // offending line, trimmed
	LineNo int      // 1-based line number in the input; 0 if unknown
	Source string   // name of the input, if known
	State  string   // document state at the time of error
	Known  []string // for UnknownSection: all known section names
	Err    error    // for HandlerFailed: the callback's error
}

// Sentinels to test error kinds with errors.Is.
var (
	ErrMalformedLine             = &ParseError{Kind: MalformedLine}
	ErrUnknownSection            = &ParseError{Kind: UnknownSection}
	ErrUnexpectedContentAfterEof = &ParseError{Kind: UnexpectedContentAfterEof}
	ErrIllegalFinalState         = &ParseError{Kind: IllegalFinalState}
	ErrHandlerFailed             = &ParseError{Kind: HandlerFailed}
)

// NewError creates a parse error of kind k for a line.
func NewError(k ErrorKind, line string) *ParseError {
	return &ParseError{Kind: k, Line: line}
}

// At sets the position of an error and returns it.
func (e *ParseError) At(source string, lineno int) *ParseError {
	e.Source = source
	e.LineNo = lineno
	return e
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("steinlib: ")
	switch e.Kind {
	case MalformedLine:
		fmt.Fprintf(&b, "cannot parse line %q", e.Line)
	case UnknownSection:
		fmt.Fprintf(&b, "invalid section identifier in %q; known sections: %s",
			e.Line, strings.Join(e.Known, ", "))
	case UnexpectedContentAfterEof:
		fmt.Fprintf(&b, "unexpected content %q after EOF", e.Line)
	case IllegalFinalState:
		if e.State != "" {
			fmt.Fprintf(&b, "input ended in state %s, missing EOF", e.State)
		} else {
			b.WriteString("input ended before EOF")
		}
	case HandlerFailed:
		fmt.Fprintf(&b, "callback failed for line %q: %v", e.Line, e.Err)
	default:
		fmt.Fprintf(&b, "%s: %q", e.Kind, e.Line)
	}
	if e.Source != "" && e.LineNo > 0 {
		fmt.Fprintf(&b, " in %s at line %d", e.Source, e.LineNo)
	} else if e.LineNo > 0 {
		fmt.Fprintf(&b, " at line %d", e.LineNo)
	}
	return b.String()
}

// Is matches parse errors by kind.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
