package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/steinlib/handler"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <file>",
	Short: "Print a summary of a Steiner tree problem instance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b := handler.NewInstanceBuilder()
		if err := parseFile(args[0], b.Handler()); err != nil {
			return err
		}
		printSummary(b.Instance())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func printSummary(inst *handler.Instance) {
	pterm.Info.Println(inst.Header)
	ll := pterm.LeveledList{
		{Level: 0, Text: "Name: " + inst.Name},
		{Level: 0, Text: "Creator: " + inst.Creator},
		{Level: 0, Text: "Problem: " + inst.Problem},
		{Level: 0, Text: "Sections: " + strings.Join(inst.Sections, ", ")},
		{Level: 0, Text: "Graph"},
		{Level: 1, Text: fmt.Sprintf("nodes %d", inst.Nodes)},
		{Level: 1, Text: fmt.Sprintf("edges %d declared, %d read", inst.EdgeCount, len(inst.Edges))},
		{Level: 1, Text: fmt.Sprintf("arcs %d declared, %d read", inst.ArcCount, len(inst.Arcs))},
		{Level: 0, Text: "Terminals"},
		{Level: 1, Text: fmt.Sprintf("terminals %d declared, %d read", inst.TerminalCount, len(inst.Terminals))},
		{Level: 1, Text: fmt.Sprintf("root %d", inst.Root)},
	}
	if len(inst.Coordinates) > 0 {
		ll = append(ll, pterm.LeveledListItem{Level: 0,
			Text: fmt.Sprintf("Coordinates: %d nodes", len(inst.Coordinates))})
	}
	if len(inst.MaxDegrees) > 0 {
		ll = append(ll, pterm.LeveledListItem{Level: 0,
			Text: fmt.Sprintf("Maximum degrees: %d", len(inst.MaxDegrees))})
	}
	if len(inst.Rectangles) > 0 {
		ll = append(ll, pterm.LeveledListItem{Level: 0,
			Text: fmt.Sprintf("Obstacles: %d rectangles", len(inst.Rectangles))})
	}
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
	if inst.EdgeCount != len(inst.Edges) || inst.TerminalCount != len(inst.Terminals) {
		pterm.Error.Println("declared counts do not match the data")
	}
}
