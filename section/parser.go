package section

import (
	"github.com/npillmayer/steinlib"
	"github.com/npillmayer/steinlib/grammar"
)

// Definition describes a section: its name as it appears in "SECTION <Name>",
// the prefix for callback names, and the grammar of its body.
type Definition struct {
	Name          string
	CallbackToken string
	Grammar       *grammar.Grammar
}

// NewParser creates a parser for a section.
func (d *Definition) NewParser() *Parser {
	return &Parser{def: d}
}

// Parser parses the body of a section, one line at a time.
type Parser struct {
	def   *Definition
	lines int // number of body lines consumed
}

// Name returns the section's name.
func (p *Parser) Name() string {
	return p.def.Name
}

// CallbackToken returns the prefix of the section's callback names.
func (p *Parser) CallbackToken() string {
	return p.def.CallbackToken
}

// Lines returns the number of body lines consumed so far.
func (p *Parser) Lines() int {
	return p.lines
}

// Begin is called with the line opening the section. It returns the state to
// continue with, which is always steinlib.InsideSection.
func (p *Parser) Begin(line string) steinlib.DocumentState {
	tracer().Debugf("begin section %s", p.def.Name)
	p.lines = 0
	return steinlib.InsideSection
}

// ConsumeLine parses a line of the section body and calls back the handler
// for the recognized token. It returns the state to continue with.
//
// A line not matching any token of the section results in an error of kind
// steinlib.MalformedLine. A missing callback is not an error.
func (p *Parser) ConsumeLine(line string, h steinlib.Handler) (steinlib.DocumentState, error) {
	token, ok := p.def.Grammar.Match(line)
	if !ok {
		tracer().Errorf("section %s: no token matches %q", p.def.Name, line)
		return steinlib.InsideSection, steinlib.NewError(steinlib.MalformedLine, line)
	}
	p.lines++
	name := steinlib.CallbackName(p.def.CallbackToken, token.Name)
	called, err := h.Invoke(name, line, token.Values)
	if err != nil {
		perr := steinlib.NewError(steinlib.HandlerFailed, line)
		perr.Err = err
		return steinlib.InsideSection, perr
	}
	tracer().Debugf("%s%v (called=%v) → %s", name, token.Values, called, token.Successor)
	return token.Successor, nil
}
