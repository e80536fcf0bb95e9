package main

import (
	"strings"

	"github.com/npillmayer/steinlib"
	"github.com/npillmayer/steinlib/handler"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Print the callbacks of a STEINLIB file as a tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec := handler.NewRecorder()
		if err := parseFile(args[0], rec.Handler()); err != nil {
			return err
		}
		pterm.Println(args[0])
		pterm.DefaultTree.WithRoot(callTree(rec.Calls())).Render()
		if fp, err := rec.Fingerprint(); err == nil {
			pterm.Info.Println("fingerprint " + fp)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

// callTree arranges calls by section: section calls at level 0, token calls
// of a section at level 1.
func callTree(calls []handler.Call) pterm.TreeNode {
	ll := pterm.LeveledList{}
	level := 0
	for _, c := range calls {
		switch {
		case c.Name == steinlib.SectionCallback:
			level = 0
			ll = append(ll, pterm.LeveledListItem{Level: 0, Text: "SECTION " + c.Args[0].String()})
			continue
		case c.Name == steinlib.HeaderCallback || c.Name == steinlib.EOFCallback:
			level = 0
		case strings.Contains(c.Name, "__"):
			level = 1
		default: // <section name> callback, already displayed
			continue
		}
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: c.String()})
	}
	return pterm.NewTreeFromLeveledList(ll)
}
