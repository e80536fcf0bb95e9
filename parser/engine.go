package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/steinlib"
	"github.com/npillmayer/steinlib/section"
)

// Engine is the document level parser. An Engine is not safe for concurrent
// use.
type Engine struct {
	lines      []string
	handler    steinlib.Handler
	registry   *section.Registry
	source     string                 // name of the input, for error messages
	traceLines bool                   // trace every content line
	state      steinlib.DocumentState // current document state
	current    *section.Parser        // active section parser, if inside section
	lineno     int                    // number of raw lines fed
	last       string                 // last content line
	err        error                  // first fatal error
}

// Option configures an Engine.
type Option func(e *Engine)

// WithRegistry sets the registry of sections. The default is
// section.DefaultRegistry().
func WithRegistry(r *section.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithSourceName sets a name for the input, which will be part of error
// messages.
func WithSourceName(name string) Option {
	return func(e *Engine) {
		e.source = name
	}
}

// TraceLines sets or clears tracing of every content line, at trace level
// Debug.
func TraceLines(b bool) Option {
	return func(e *Engine) {
		e.traceLines = b
	}
}

// New creates a parser for a sequence of lines. Callbacks of h will be called
// during Parse.
func New(lines []string, h steinlib.Handler, opts ...Option) *Engine {
	e := &Engine{
		lines:   lines,
		handler: h,
		state:   steinlib.AwaitingHeader,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.registry == nil {
		e.registry = section.DefaultRegistry()
	}
	return e
}

// Parse runs the parser over all lines. It returns the handler, which may
// have been modified by its own callbacks. Parse fails with the first error;
// callbacks for lines preceding the error will have been called.
func (e *Engine) Parse() (steinlib.Handler, error) {
	for _, line := range e.lines {
		if err := e.Feed(line); err != nil {
			return e.handler, err
		}
	}
	return e.handler, e.Finish()
}

// ParseReader reads lines from r and parses them.
func ParseReader(r io.Reader, h steinlib.Handler, opts ...Option) (steinlib.Handler, error) {
	e := New(nil, h, opts...)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if err := e.Feed(sc.Text()); err != nil {
			return h, err
		}
	}
	if err := sc.Err(); err != nil {
		return h, fmt.Errorf("reading input %s: %w", e.source, err)
	}
	return h, e.Finish()
}

// State returns the current document state.
func (e *Engine) State() steinlib.DocumentState {
	return e.state
}

// LineNo returns the number of lines fed so far, including blank lines and
// comments.
func (e *Engine) LineNo() int {
	return e.lineno
}

// Section returns the name of the section currently parsed, or "".
func (e *Engine) Section() string {
	if e.current == nil {
		return ""
	}
	return e.current.Name()
}

// Feed parses a single line. After an error, the engine refuses any further
// input and returns the same error again.
func (e *Engine) Feed(raw string) error {
	if e.err != nil {
		return e.err
	}
	e.lineno++
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, CommentMarker) {
		return nil
	}
	e.last = line
	if e.traceLines {
		tracer().Debugf("%4d [%s] %s", e.lineno, e.state, line)
	}
	var err error
	switch e.state {
	case steinlib.AwaitingHeader:
		err = e.header(line)
		e.state = steinlib.AwaitingSection
	case steinlib.AwaitingSection:
		err = e.awaitSection(line)
	case steinlib.InsideSection:
		err = e.insideSection(line)
	case steinlib.Finished:
		err = steinlib.NewError(steinlib.UnexpectedContentAfterEof, line)
	default:
		err = fmt.Errorf("steinlib: parser in undefined state %s", e.state)
	}
	if err != nil {
		return e.fail(err)
	}
	return nil
}

// Finish checks that the input has been complete. The document has to end
// with EOF.
func (e *Engine) Finish() error {
	if e.err != nil {
		return e.err
	}
	if e.state != steinlib.Finished {
		err := steinlib.NewError(steinlib.IllegalFinalState, e.last)
		err.State = e.state.String()
		return e.fail(err)
	}
	tracer().Infof("parsed %d lines", e.lineno)
	return nil
}

func (e *Engine) fail(err error) error {
	if perr, ok := err.(*steinlib.ParseError); ok {
		perr.At(e.source, e.lineno)
		if perr.State == "" {
			perr.State = e.state.String()
		}
	}
	tracer().Errorf("%v", err)
	e.err = err
	return err
}

// Every first content line is taken as the header. If it is not a valid
// header line, the parse fails.
func (e *Engine) header(line string) error {
	args, ok := classify(headerToken, line)
	if !ok {
		err := steinlib.NewError(steinlib.MalformedLine, line)
		err.State = steinlib.AwaitingHeader.String()
		return err
	}
	return e.invoke(rootTokens[headerToken].callback, line, args)
}

// Between sections, a line either opens a section or is EOF. Other lines are
// skipped, but unknown section names are always an error.
func (e *Engine) awaitSection(line string) error {
	if args, ok := classify(sectionToken, line); ok {
		return e.openSection(line, args)
	}
	if args, ok := classify(eofToken, line); ok {
		if err := e.invoke(rootTokens[eofToken].callback, line, args); err != nil {
			return err
		}
		tracer().Debugf("EOF at line %d", e.lineno)
		e.state = steinlib.Finished
		return nil
	}
	tracer().Infof("skipping line %d outside of sections: %q", e.lineno, line)
	return nil
}

func (e *Engine) openSection(line string, args steinlib.Captures) error {
	name := args[0].String()
	p, err := e.registry.NewParser(name, line)
	if err != nil {
		return err
	}
	if err = e.invoke(rootTokens[sectionToken].callback, line, args); err != nil {
		return err
	}
	if err = e.invoke(strings.ToLower(name), line, steinlib.Captures{}); err != nil {
		return err
	}
	e.current = p
	e.state = p.Begin(line)
	tracer().Debugf("section %s at line %d", name, e.lineno)
	return nil
}

func (e *Engine) insideSection(line string) error {
	state, err := e.current.ConsumeLine(line, e.handler)
	if err != nil {
		return err
	}
	if state != steinlib.InsideSection {
		tracer().Debugf("section %s done after %d lines", e.current.Name(), e.current.Lines())
		e.current = nil
	}
	e.state = state
	return nil
}

func (e *Engine) invoke(name string, line string, args steinlib.Captures) error {
	if _, err := e.handler.Invoke(name, line, args); err != nil {
		perr := steinlib.NewError(steinlib.HandlerFailed, line)
		perr.Err = err
		return perr
	}
	return nil
}
