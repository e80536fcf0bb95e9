/*
Package grammar implements token grammars for STEINLIB sections.

A grammar is an ordered set of token rules. Each rule has a name and a
pattern, which has to match a whole (trimmed) line, ignoring case. Capture
groups of the pattern become the arguments of the token.

Building a Grammar

Grammars are specified using a grammar builder object:

    b := grammar.NewBuilder("Terminals")
    b.Token("terminals", `^Terminals\s+(\d+)$`)
    b.Token("t", `^T\s+(\d+)$`)
    b.SectionEnd()                               // END  → awaiting section
    g, err := b.Grammar()

Rules may as well compute their pattern from the line to test. This is used
for tokens with a variable number of arguments:

    b.Dynamic("dd", func(line string) string { … })

Matching

Grammar.Match tests every rule of a grammar against a line and does not stop
at the first match. If more than one rule matches, the rule added last wins.
None of the STEINLIB grammars contains rules which overlap, but section
grammars added by clients may, and for them the order of rules is significant.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/steinlib"
)

// tracer traces with key 'steinlib.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("steinlib.grammar")
}

// EndToken is the name of the rule which terminates a section.
const EndToken = "end"

// --- Token rules -----------------------------------------------------------

// TokenRule is a rule for recognizing a single line within a section.
type TokenRule struct {
	Name       string
	expr       string                   // static pattern
	generator  func(line string) string // dynamic pattern, computed per line
	pattern    *regexp.Regexp
	successor  steinlib.DocumentState
	hasSuccess bool
	mx         sync.Mutex
	cache      map[string]*regexp.Regexp // compiled dynamic patterns
}

// Then sets the document state to continue with after this rule matched.
// Without it, the parser stays inside the section.
func (r *TokenRule) Then(state steinlib.DocumentState) *TokenRule {
	r.successor = state
	r.hasSuccess = true
	return r
}

// Successor returns the state to continue with after a match.
func (r *TokenRule) Successor() steinlib.DocumentState {
	if !r.hasSuccess {
		return steinlib.InsideSection
	}
	return r.successor
}

// IsDynamic is true for rules which compute their pattern from the line.
func (r *TokenRule) IsDynamic() bool {
	return r.generator != nil
}

// PatternFor returns the pattern this rule uses for line. For static rules
// this is always the same pattern.
func (r *TokenRule) PatternFor(line string) (*regexp.Regexp, error) {
	if r.generator == nil {
		if r.pattern == nil {
			return nil, fmt.Errorf("token rule %q not compiled", r.Name)
		}
		return r.pattern, nil
	}
	expr := r.generator(line)
	r.mx.Lock()
	defer r.mx.Unlock()
	if re, ok := r.cache[expr]; ok {
		return re, nil
	}
	re, err := compile(expr)
	if err != nil {
		return nil, err
	}
	if r.cache == nil {
		r.cache = make(map[string]*regexp.Regexp)
	}
	r.cache[expr] = re
	tracer().Debugf("token rule %q: compiled pattern %s", r.Name, re)
	return re, nil
}

// Match tests line against the rule and returns the captured groups.
func (r *TokenRule) Match(line string) ([]string, bool) {
	re, err := r.PatternFor(line)
	if err != nil {
		tracer().Errorf("token rule %q: %v", r.Name, err)
		return nil, false
	}
	m := re.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	return m[1:], true
}

func (r *TokenRule) String() string {
	if r.generator != nil {
		return fmt.Sprintf("%s ::= <dynamic>", r.Name)
	}
	return fmt.Sprintf("%s ::= %s", r.Name, r.expr)
}

// All patterns ignore case.
func compile(expr string) (*regexp.Regexp, error) {
	return regexp.Compile("(?i)" + expr)
}

// --- Grammars --------------------------------------------------------------

// Grammar is an ordered set of token rules. Grammars are immutable after
// construction and may be shared between parsers.
type Grammar struct {
	Name  string
	rules *linkedhashmap.Map // name → *TokenRule, in insertion order
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return g.rules.Size()
}

// Rule returns the rule for a token name.
func (g *Grammar) Rule(name string) (*TokenRule, bool) {
	r, ok := g.rules.Get(name)
	if !ok {
		return nil, false
	}
	return r.(*TokenRule), true
}

// Names returns the token names in order of precedence, lowest first.
func (g *Grammar) Names() []string {
	names := make([]string, 0, g.rules.Size())
	for _, k := range g.rules.Keys() {
		names = append(names, k.(string))
	}
	return names
}

// EachRule calls f for every rule, in order.
func (g *Grammar) EachRule(f func(*TokenRule)) {
	g.rules.Each(func(_ interface{}, r interface{}) {
		f(r.(*TokenRule))
	})
}

// ParsedToken is the result of matching a line.
type ParsedToken struct {
	Name      string                 // name of the matching rule
	Raw       []string               // captured groups as in the input
	Values    steinlib.Captures      // captured groups after conversion
	Successor steinlib.DocumentState // state to continue with
}

// Match evaluates all rules against line. If more than one rule matches,
// the last one wins. If no rule matches, ok is false.
func (g *Grammar) Match(line string) (token ParsedToken, ok bool) {
	it := g.rules.Iterator()
	for it.Next() {
		rule := it.Value().(*TokenRule)
		if raw, matches := rule.Match(line); matches {
			if ok {
				tracer().Debugf("grammar %s: %q matches %s as well as %s",
					g.Name, line, token.Name, rule.Name)
			}
			token = ParsedToken{
				Name:      rule.Name,
				Raw:       raw,
				Successor: rule.Successor(),
			}
			ok = true
		}
	}
	if ok {
		token.Values = Coerce(token.Raw)
	}
	return
}

// Coerce converts captures consisting of decimal digits only to integers.
// All other captures are left as strings. Numbers too large for an int are
// left as strings, too.
func Coerce(raw []string) steinlib.Captures {
	values := make(steinlib.Captures, len(raw))
	for i, s := range raw {
		values[i] = steinlib.ValueOf(s)
	}
	return values
}

// --- Builder ---------------------------------------------------------------

// Builder collects rules for a grammar.
type Builder struct {
	name  string
	rules []*TokenRule
}

// NewBuilder creates a builder for a grammar.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Token adds a rule with a static pattern.
func (b *Builder) Token(name string, expr string) *TokenRule {
	r := &TokenRule{Name: name, expr: expr}
	b.rules = append(b.rules, r)
	return r
}

// Dynamic adds a rule whose pattern is computed from the line to test.
func (b *Builder) Dynamic(name string, generator func(line string) string) *TokenRule {
	r := &TokenRule{Name: name, generator: generator}
	b.rules = append(b.rules, r)
	return r
}

// SectionEnd adds the default terminator rule: a line "END" ends the
// section and the parser continues with the next section.
func (b *Builder) SectionEnd() *TokenRule {
	return b.Token(EndToken, `^END$`).Then(steinlib.AwaitingSection)
}

// Grammar compiles the rules and returns the grammar.
func (b *Builder) Grammar() (*Grammar, error) {
	if len(b.rules) == 0 {
		return nil, fmt.Errorf("grammar %s has no rules", b.name)
	}
	g := &Grammar{Name: b.name, rules: linkedhashmap.New()}
	for _, r := range b.rules {
		if r.Name == "" {
			return nil, fmt.Errorf("grammar %s: unnamed token rule", b.name)
		}
		if _, dup := g.rules.Get(r.Name); dup {
			return nil, fmt.Errorf("grammar %s: token %q defined twice", b.name, r.Name)
		}
		if r.generator == nil {
			re, err := compile(r.expr)
			if err != nil {
				return nil, fmt.Errorf("grammar %s: token %q: %w", b.name, r.Name, err)
			}
			r.pattern = re
		}
		g.rules.Put(r.Name, r)
	}
	if !hasTerminator(g) {
		tracer().Infof("grammar %s has no rule leaving the section", b.name)
	}
	return g, nil
}

// MustGrammar is like Grammar, but panics on error.
func (b *Builder) MustGrammar() *Grammar {
	g, err := b.Grammar()
	if err != nil {
		panic(err)
	}
	return g
}

func hasTerminator(g *Grammar) bool {
	found := false
	g.EachRule(func(r *TokenRule) {
		if r.Successor() != steinlib.InsideSection {
			found = true
		}
	})
	return found
}
