package scanner

import (
	"fmt"
	"sync"

	"github.com/npillmayer/steinlib"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// TokType is a category type for a Token.
type TokType int

// Token categories produced by the field scanner.
const (
	EOF    TokType = -1
	Word   TokType = 1 // any run of non-whitespace characters
	Number TokType = 2 // a run of decimal digits
)

func (t TokType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case Word:
		return "Word"
	case Number:
		return "Number"
	}
	return fmt.Sprintf("TokType(%d)", int(t))
}

// whitespace as recognized between fields
const blanks = " \t\n\r\f\v"

// --- Tokens ----------------------------------------------------------------

// Token is a field of a line.
type Token struct {
	kind   TokType
	lexeme string
	span   steinlib.Span
}

// MakeToken creates a token.
func MakeToken(typ TokType, lexeme string, span steinlib.Span) Token {
	return Token{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t Token) TokType() TokType {
	return t.kind
}

func (t Token) Lexeme() string {
	return t.lexeme
}

// Span is the byte range of a token within its line.
func (t Token) Span() steinlib.Span {
	return t.span
}

// --- lexmachine adapter ----------------------------------------------------

// LMAdapter is a lexmachine adapter to use lexmachine as a field scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

var fieldLexer *LMAdapter
var lexerErr error
var initOnce sync.Once // monitors one-time creation of the lexer

// Lexer returns the lexer for fields. The DFA is compiled once and shared
// afterwards.
func Lexer() (*LMAdapter, error) {
	initOnce.Do(func() {
		fieldLexer, lexerErr = NewLMAdapter(func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte("["+blanks+"]+"), Skip)
			lexer.Add([]byte("[0-9]+"), MakeAction(Number))
			lexer.Add([]byte("[^"+blanks+"]+"), MakeAction(Word))
		})
	})
	return fieldLexer, lexerErr
}

// NewLMAdapter creates a new lexmachine adapter. init has to add the
// patterns and actions to the lexer.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer)) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given line.
func (lm *LMAdapter) Scanner(line string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(line))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// NextToken returns the next field of the line, or a token of type EOF.
func (lms *LMScanner) NextToken() Token {
	if lms.scanner == nil {
		return MakeToken(EOF, "", steinlib.Span{})
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return MakeToken(EOF, "", steinlib.Span{})
	}
	token := tok.(*lexmachine.Token)
	from := uint64(token.TC)
	return MakeToken(
		TokType(token.Type),
		string(token.Lexeme),
		steinlib.Span{from, from + uint64(len(token.Lexeme))},
	)
}

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeAction is a pre-defined action which wraps a scanned match into a
// lexmachine token of category typ.
func MakeAction(typ TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}

// --- Convenience -----------------------------------------------------------

// Fields splits a line into its whitespace separated fields.
func Fields(line string) []Token {
	lm, err := Lexer()
	if err != nil {
		panic(fmt.Sprintf("cannot create field lexer: %v", err))
	}
	scan, err := lm.Scanner(line)
	if err != nil {
		tracer().Errorf("cannot scan line %q: %v", line, err)
		return nil
	}
	var fields []Token
	for token := scan.NextToken(); token.TokType() != EOF; token = scan.NextToken() {
		fields = append(fields, token)
	}
	return fields
}

// FieldCount returns the number of whitespace separated fields of a line.
func FieldCount(line string) int {
	return len(Fields(line))
}
