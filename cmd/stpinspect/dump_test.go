package main

import (
	"testing"

	"github.com/npillmayer/steinlib"
	"github.com/npillmayer/steinlib/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallTree(t *testing.T) {
	calls := []handler.Call{
		{Name: "header", Args: steinlib.Captures{steinlib.Str("x")}},
		{Name: "section", Args: steinlib.Captures{steinlib.Str("Graph")}},
		{Name: "graph", Args: steinlib.Captures{}},
		{Name: "graph__e", Args: steinlib.Captures{steinlib.Int(1), steinlib.Int(2), steinlib.Int(3)}},
		{Name: "eof", Args: steinlib.Captures{}},
	}
	root := callTree(calls)
	require.Len(t, root.Children, 3)
	assert.Equal(t, "SECTION Graph", root.Children[1].Text)
	require.Len(t, root.Children[1].Children, 1)
	assert.Equal(t, "graph__e[1, 2, 3]", root.Children[1].Children[0].Text)
}
