package scanner

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var inputStrings = []string{
	"DD 1 2",
	"DD  1\t2  3",
	"Name \"Hello World\"",
	"E 12 4a 7",
	"END",
}

var tokenCounts = []int{3, 4, 3, 4, 1}

func TestFieldCount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "steinlib.scanner")
	defer teardown()
	//
	for i, input := range inputStrings {
		if n := FieldCount(input); n != tokenCounts[i] {
			t.Errorf("Expected field count for #%d to be %d, is %d", i, tokenCounts[i], n)
		}
	}
}

func TestScanCategories(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "steinlib.scanner")
	defer teardown()
	//
	lm, err := Lexer()
	if err != nil {
		t.Fatal(err)
	}
	scan, err := lm.Scanner("E 12 4a 7")
	if err != nil {
		t.Fatal(err)
	}
	scan.SetErrorHandler(func(e error) {
		t.Error(e)
	})
	expected := []TokType{Word, Number, Word, Number}
	token := scan.NextToken()
	count := 0
	for token.TokType() != EOF {
		t.Logf(" %6s | %5s | @%d", token.TokType(), token.Lexeme(), token.Span().From())
		if count < len(expected) && token.TokType() != expected[count] {
			t.Errorf("Expected token #%d to be %s, is %s", count, expected[count], token.TokType())
		}
		token = scan.NextToken()
		count++
	}
	if count != len(expected) {
		t.Errorf("Expected %d tokens, have %d", len(expected), count)
	}
}

func TestSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "steinlib.scanner")
	defer teardown()
	//
	fields := Fields("DD  10 200")
	if len(fields) != 3 {
		t.Fatalf("Expected 3 fields, have %d", len(fields))
	}
	if fields[1].Lexeme() != "10" || fields[1].Span().From() != 4 || fields[1].Span().To() != 6 {
		t.Errorf("Expected field '10' at (4…6), is %q at %s", fields[1].Lexeme(), fields[1].Span())
	}
	if fields[2].Span().Len() != 3 {
		t.Errorf("Expected field '200' to have length 3, has %d", fields[2].Span().Len())
	}
}

func TestEmptyLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "steinlib.scanner")
	defer teardown()
	//
	if n := FieldCount(""); n != 0 {
		t.Errorf("Expected empty line to have no fields, has %d", n)
	}
	if n := FieldCount(" \t "); n != 0 {
		t.Errorf("Expected blank line to have no fields, has %d", n)
	}
}
