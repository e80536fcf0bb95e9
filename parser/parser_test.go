package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/steinlib"
	"github.com/npillmayer/steinlib/grammar"
	"github.com/npillmayer/steinlib/handler"
	"github.com/npillmayer/steinlib/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var I = steinlib.Int
var S = steinlib.Str

func parseLines(t *testing.T, lines []string, opts ...Option) (*handler.Recorder, *Engine, error) {
	rec := handler.NewRecorder()
	e := New(lines, rec.Handler(), opts...)
	_, err := e.Parse()
	return rec, e, err
}

func TestTerminalsScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "steinlib.parser")
	defer teardown()
	//
	lines := []string{"33D32945 Hello", "SECTION Terminals", "Terminals 2", "T 1", "T 4", "END", "EOF"}
	rec, e, err := parseLines(t, lines)
	require.NoError(t, err)
	assert.Equal(t, steinlib.Finished, e.State())
	expected := []handler.Call{
		{Name: "header", Line: "33D32945 Hello", Args: steinlib.Captures{S("Hello")}},
		{Name: "section", Line: "SECTION Terminals", Args: steinlib.Captures{S("Terminals")}},
		{Name: "terminals", Line: "SECTION Terminals", Args: steinlib.Captures{}},
		{Name: "terminals__terminals", Line: "Terminals 2", Args: steinlib.Captures{I(2)}},
		{Name: "terminals__t", Line: "T 1", Args: steinlib.Captures{I(1)}},
		{Name: "terminals__t", Line: "T 4", Args: steinlib.Captures{I(4)}},
		{Name: "terminals__end", Line: "END", Args: steinlib.Captures{}},
		{Name: "eof", Line: "EOF", Args: steinlib.Captures{}},
	}
	assert.Equal(t, expected, rec.Calls())
}

var wellFormed = []string{
	"33D32945 STP File, STP Format Version 1.0",
	"SECTION Comment",
	`Name "odd"`,
	"END",
	"SECTION Graph",
	"Nodes 3",
	"Edges 2",
	"E 1 2 1",
	"E 2 3 1",
	"END",
	"SECTION MaximumDegrees",
	"MD 1",
	"END",
	"EOF",
}

func TestCallOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "steinlib.parser")
	defer teardown()
	//
	rec, _, err := parseLines(t, wellFormed)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"header",
		"section", "comment", "comment__name", "comment__end",
		"section", "graph", "graph__nodes", "graph__edges", "graph__e", "graph__e", "graph__end",
		"section", "maximumdegrees", "maximum_degrees__md", "maximum_degrees__end",
		"eof",
	}, rec.Names())
}

func TestUnknownSection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "steinlib.parser")
	defer teardown()
	//
	inputs := [][]string{
		{"33D32945 x", "SECTION Bogus", "END", "EOF"},
		{"33D32945 x", "SECTION Graph", "END", "SECTION Bogus", "EOF"},
		{"33D32945 x", "garbage", "SECTION Bogus"},
		{"33D32945 x", "SECTION graph", "EOF"},
	}
	for _, lines := range inputs {
		rec, _, err := parseLines(t, lines)
		require.Error(t, err)
		assert.True(t, errors.Is(err, steinlib.ErrUnknownSection), err.Error())
		var perr *steinlib.ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, []string{"Comment", "Coordinates", "Graph", "MaximumDegrees",
			"Obstacles", "Presolve", "Terminals"}, perr.Known)
		assert.NotContains(t, rec.Names(), "eof")
	}
}

func TestUnknownSectionNotCalledBack(t *testing.T) {
	rec, _, err := parseLines(t, []string{"33D32945 x", "SECTION Bogus"})
	require.Error(t, err)
	assert.Equal(t, []string{"header"}, rec.Names())
}

func TestCommentsAndBlankLinesAreTransparent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "steinlib.parser")
	defer teardown()
	//
	plain, _, err := parseLines(t, wellFormed)
	require.NoError(t, err)
	fpPlain, err := plain.Fingerprint()
	require.NoError(t, err)
	var noisy []string
	noisy = append(noisy, "# leading comment", "", "   ")
	for _, l := range wellFormed {
		noisy = append(noisy, "  "+l+"\t", "#"+l, "", "   # indented comment")
	}
	withNoise, _, err := parseLines(t, noisy)
	require.NoError(t, err)
	fpNoisy, err := withNoise.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, plain.Calls(), withNoise.Calls())
	assert.Equal(t, fpPlain, fpNoisy)
}

func TestCoordinatesArity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "steinlib.parser")
	defer teardown()
	//
	lines := []string{"33D32945 c", "SECTION Coordinates", "DD 1 2", "DD 1 2 3", "END", "EOF"}
	rec, _, err := parseLines(t, lines)
	require.NoError(t, err)
	calls := rec.Calls()
	require.Len(t, calls, 7)
	assert.Equal(t, steinlib.Captures{I(1), I(2)}, calls[3].Args)
	assert.Equal(t, steinlib.Captures{I(1), I(2), I(3)}, calls[4].Args)
}

func TestNumericCoercion(t *testing.T) {
	lines := []string{"33D32945 42", "SECTION Comment", `Name "42"`, `Remark "4.2"`, `Creator "abc"`,
		"END", "SECTION Graph", "Nodes 42", "END", "EOF"}
	rec, _, err := parseLines(t, lines)
	require.NoError(t, err)
	args := map[string]steinlib.Captures{}
	for _, c := range rec.Calls() {
		args[c.Name] = c.Args
	}
	assert.Equal(t, steinlib.Captures{S("42")}, args["header"], "root token arguments stay strings")
	assert.Equal(t, steinlib.Captures{I(42)}, args["comment__name"])
	assert.Equal(t, steinlib.Captures{S("4.2")}, args["comment__remark"])
	assert.Equal(t, steinlib.Captures{S("abc")}, args["comment__creator"])
	assert.Equal(t, steinlib.Captures{I(42)}, args["graph__nodes"])
}

func TestGarbageBeforeEOF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "steinlib.parser")
	defer teardown()
	//
	lines := []string{"33D32945 x", "SECTION Graph", "END", "garbage", "~", "EOF"}
	rec, e, err := parseLines(t, lines)
	require.NoError(t, err)
	assert.Equal(t, steinlib.Finished, e.State())
	assert.Equal(t, []string{"header", "section", "graph", "graph__end", "eof"}, rec.Names())
}

func TestContentAfterEOF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "steinlib.parser")
	defer teardown()
	//
	lines := []string{"33D32945 x", "EOF", "", "# fine", "SECTION Graph"}
	_, _, err := parseLines(t, lines, WithSourceName("after.stp"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, steinlib.ErrUnexpectedContentAfterEof))
	var perr *steinlib.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "SECTION Graph", perr.Line)
	assert.Equal(t, 5, perr.LineNo)
	assert.Contains(t, err.Error(), "after.stp")
}

func TestMissingEOF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "steinlib.parser")
	defer teardown()
	//
	inputs := [][]string{
		{},
		{"33D32945 x"},
		{"33D32945 x", "SECTION Graph", "Nodes 1"},
		{"33D32945 x", "SECTION Graph", "END"},
	}
	for _, lines := range inputs {
		_, _, err := parseLines(t, lines)
		assert.True(t, errors.Is(err, steinlib.ErrIllegalFinalState), "input %v", lines)
	}
}

func TestMalformedHeader(t *testing.T) {
	rec, e, err := parseLines(t, []string{"SECTION Graph", "END", "EOF"})
	assert.True(t, errors.Is(err, steinlib.ErrMalformedLine))
	var perr *steinlib.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "awaiting-header", perr.State)
	assert.Equal(t, 1, perr.LineNo)
	assert.Equal(t, steinlib.AwaitingSection, e.State())
	assert.Equal(t, 0, rec.Len())
}

func TestMalformedSectionLine(t *testing.T) {
	lines := []string{"33D32945 x", "SECTION Graph", "E 1 2", "END", "EOF"}
	rec, _, err := parseLines(t, lines)
	require.Error(t, err)
	assert.True(t, errors.Is(err, steinlib.ErrMalformedLine))
	var perr *steinlib.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.LineNo)
	assert.Equal(t, "E 1 2", perr.Line)
	assert.Equal(t, []string{"header", "section", "graph"}, rec.Names(), "no rollback of callbacks")
}

func TestMissingCallbacksAreNoops(t *testing.T) {
	h, err := New(wellFormed, nil).Parse()
	assert.NoError(t, err)
	assert.Nil(t, h)
	_, err = New(wellFormed, steinlib.Handler{}).Parse()
	assert.NoError(t, err)
}

func TestHandlerMutatesItself(t *testing.T) {
	count := 0
	h := steinlib.Handler{}
	h.On("graph", func(string, steinlib.Captures) error {
		h.On("graph__e", func(string, steinlib.Captures) error {
			count++
			return nil
		})
		return nil
	})
	result, err := New(wellFormed, h).Parse()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.True(t, result.Has("graph__e"))
}

func TestHandlerError(t *testing.T) {
	boom := errors.New("boom")
	h := steinlib.Handler{}.On("eof", func(string, steinlib.Captures) error {
		return boom
	})
	e := New(wellFormed, h)
	_, err := e.Parse()
	assert.True(t, errors.Is(err, steinlib.ErrHandlerFailed))
	assert.True(t, errors.Is(err, boom))
	assert.NotEqual(t, steinlib.Finished, e.State())
}

func TestFeedIsSticky(t *testing.T) {
	e := New(nil, nil)
	require.NoError(t, e.Feed("33D32945 x"))
	err := e.Feed("SECTION Bogus")
	require.Error(t, err)
	assert.Equal(t, err, e.Feed("EOF"))
	assert.Equal(t, err, e.Finish())
}

func TestFeedStates(t *testing.T) {
	e := New(nil, nil)
	assert.Equal(t, steinlib.AwaitingHeader, e.State())
	require.NoError(t, e.Feed("33D32945 x"))
	assert.Equal(t, steinlib.AwaitingSection, e.State())
	require.NoError(t, e.Feed("SECTION Terminals"))
	assert.Equal(t, steinlib.InsideSection, e.State())
	assert.Equal(t, "Terminals", e.Section())
	require.NoError(t, e.Feed("T 1"))
	require.NoError(t, e.Feed("end"))
	assert.Equal(t, steinlib.AwaitingSection, e.State())
	assert.Equal(t, "", e.Section())
	require.NoError(t, e.Feed("eof"))
	assert.Equal(t, steinlib.Finished, e.State())
	assert.NoError(t, e.Finish())
	assert.Equal(t, 5, e.LineNo())
}

func TestParseReader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "steinlib.parser")
	defer teardown()
	//
	input := strings.Join(wellFormed, "\r\n") + "\r\n"
	rec := handler.NewRecorder()
	_, err := ParseReader(strings.NewReader(input), rec.Handler(), TraceLines(true))
	require.NoError(t, err)
	assert.Equal(t, 17, rec.Len())
}

func TestCustomRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "steinlib.parser")
	defer teardown()
	//
	b := grammar.NewBuilder("Hints")
	b.Token("h", `^H\s+(\d+)$`)
	b.Token("done", `^DONE$`).Then(steinlib.Finished)
	reg := section.DefaultRegistry()
	require.NoError(t, reg.Register(&section.Definition{
		Name: "Hints", CallbackToken: "hints", Grammar: b.MustGrammar(),
	}))
	lines := []string{"33D32945 x", "SECTION Hints", "H 7", "DONE"}
	rec := handler.NewRecorder()
	e := New(lines, rec.Handler(handler.CallbackNames(reg)...), WithRegistry(reg))
	_, err := e.Parse()
	require.NoError(t, err)
	assert.Equal(t, steinlib.Finished, e.State())
	assert.Equal(t, []string{"header", "section", "hints", "hints__h", "hints__done"}, rec.Names())
}
