package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/steinlib/handler"
	"github.com/npillmayer/steinlib/parser"
	"github.com/npillmayer/steinlib/scanner"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Enter STEINLIB lines interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		rl, err := readline.New("stp> ")
		if err != nil {
			return err
		}
		defer rl.Close()
		pterm.Info.Println("Welcome to stpinspect")
		tracer().Infof("Quit with <ctrl>D")
		newSession(rl).loop()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// session holds an engine which is fed line by line.
type session struct {
	rl     *readline.Instance
	rec    *handler.Recorder
	engine *parser.Engine
}

func newSession(rl *readline.Instance) *session {
	s := &session{rl: rl}
	s.reset()
	return s
}

func (s *session) reset() {
	s.rec = handler.NewRecorder()
	s.engine = parser.New(nil, s.rec.Handler(), parserOptions("<repl>")...)
}

func (s *session) loop() {
	for {
		line, err := s.rl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.HasPrefix(strings.TrimSpace(line), ":") {
			if quit := s.command(strings.TrimSpace(line)); quit {
				break
			}
			continue
		}
		s.feed(line)
	}
	if err := s.engine.Finish(); err != nil {
		pterm.Error.Println(err.Error())
	}
	println("Good bye!")
}

// feed passes a line to the engine and displays the callbacks it fired.
func (s *session) feed(line string) {
	n := s.rec.Len()
	err := s.engine.Feed(line)
	for _, c := range s.rec.Calls()[n:] {
		pterm.Info.Println(c.String())
	}
	if err != nil {
		pterm.Error.Println(err.Error())
		pterm.Info.Println("use :reset to start over")
	}
}

// command executes a REPL command. It returns true if the user wants to quit.
func (s *session) command(cmd string) bool {
	fields := strings.Fields(cmd)
	switch fields[0] {
	case ":quit", ":q":
		return true
	case ":reset":
		s.reset()
		pterm.Info.Println("new document")
	case ":state":
		msg := fmt.Sprintf("%s after %d lines", s.engine.State(), s.engine.LineNo())
		if sec := s.engine.Section(); sec != "" {
			msg += ", in section " + sec
		}
		pterm.Info.Println(msg)
	case ":fields":
		line := strings.TrimSpace(strings.TrimPrefix(cmd, ":fields"))
		for _, tok := range scanner.Fields(line) {
			pterm.Info.Println(fmt.Sprintf("%-6s %-12q %s", tok.TokType(),
				tok.Lexeme(), tok.Span()))
		}
	default:
		pterm.Error.Println("unknown command " + fields[0] + "; try :state, :fields, :reset, :quit")
	}
	return false
}
