package handler

import (
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/steinlib"
	"github.com/npillmayer/steinlib/grammar"
	"github.com/npillmayer/steinlib/section"
)

// CallbackNames returns the names of all callbacks the parser may call for
// the sections of a registry.
func CallbackNames(reg *section.Registry) []string {
	names := []string{steinlib.HeaderCallback, steinlib.SectionCallback, steinlib.EOFCallback}
	for _, sname := range reg.Names() {
		def, _ := reg.Lookup(sname)
		names = append(names, strings.ToLower(sname))
		def.Grammar.EachRule(func(r *grammar.TokenRule) {
			names = append(names, steinlib.CallbackName(def.CallbackToken, r.Name))
		})
	}
	return names
}

// Call is a recorded callback invocation.
type Call struct {
	Name string
	Line string
	Args steinlib.Captures
}

func (c Call) String() string {
	return c.Name + c.Args.String()
}

// Recorder records callback invocations in order.
type Recorder struct {
	calls *arraylist.List
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{calls: arraylist.New()}
}

// Handler returns a handler with recording callbacks for names. Without
// names, the handler records all callbacks of the default registry.
func (r *Recorder) Handler(names ...string) steinlib.Handler {
	if len(names) == 0 {
		names = CallbackNames(section.DefaultRegistry())
	}
	h := steinlib.Handler{}
	for _, name := range names {
		h.On(name, r.Callback(name))
	}
	return h
}

// Callback returns a callback which records invocations under name.
func (r *Recorder) Callback(name string) steinlib.Callback {
	return func(line string, args steinlib.Captures) error {
		r.calls.Add(Call{Name: name, Line: line, Args: args})
		return nil
	}
}

// Len returns the number of recorded calls.
func (r *Recorder) Len() int {
	return r.calls.Size()
}

// Calls returns all recorded calls.
func (r *Recorder) Calls() []Call {
	calls := make([]Call, 0, r.calls.Size())
	r.calls.Each(func(_ int, c interface{}) {
		calls = append(calls, c.(Call))
	})
	return calls
}

// Names returns the names of all recorded calls.
func (r *Recorder) Names() []string {
	names := make([]string, 0, r.calls.Size())
	r.calls.Each(func(_ int, c interface{}) {
		names = append(names, c.(Call).Name)
	})
	return names
}

// Reset clears the recorder.
func (r *Recorder) Reset() {
	r.calls.Clear()
}

// fingerprintEntry is the hashable form of a call. structhash considers
// exported fields only.
type fingerprintEntry struct {
	Name string
	Line string
	Args []string
}

// Fingerprint returns a hash over the sequence of recorded calls, including
// lines and arguments. Recordings of inputs which differ in comments and blank
// lines only have the same fingerprint.
func (r *Recorder) Fingerprint() (string, error) {
	entries := make([]fingerprintEntry, 0, r.calls.Size())
	for _, c := range r.Calls() {
		args := make([]string, len(c.Args))
		for i, v := range c.Args {
			if v.IsInt() {
				args[i] = "i:" + v.String()
			} else {
				args[i] = "s:" + v.String()
			}
		}
		entries = append(entries, fingerprintEntry{Name: c.Name, Line: c.Line, Args: args})
	}
	fp, err := structhash.Hash(struct{ Calls []fingerprintEntry }{entries}, 1)
	if err != nil {
		tracer().Errorf("cannot create fingerprint: %v", err)
		return "", err
	}
	return fp, nil
}
