package ll

import (
	"fmt"
	"strings"
	"text/scanner"
	"unicode/utf8"

	"github.com/emirpasic/gods/lists/arraylist"
)

// --- Symbols ---------------------------------------------------------------

// SymbolKind tags a grammar symbol.
type SymbolKind int8

// Kinds of grammar symbols.
const (
	Terminal SymbolKind = iota
	NonTerminal
	Epsilon
	EndMarker
)

func (k SymbolKind) String() string {
	switch k {
	case Terminal:
		return "terminal"
	case NonTerminal:
		return "non-terminal"
	case Epsilon:
		return "epsilon"
	case EndMarker:
		return "end-marker"
	}
	return "<unknown>"
}

// Values of the reserved terminals.
const (
	EpsilonValue = 0
	EOFValue     = scanner.EOF
)

// Symbol is a grammar symbol. Every symbol is spelled with exactly one
// character. Terminals carry their character code as value, non-terminals
// their serial number within the grammar.
type Symbol struct {
	Name  string
	Value int
	kind  SymbolKind
}

// The reserved symbols ε and $. They are shared between grammars and must not
// be modified.
var (
	EpsilonSymbol = &Symbol{Name: "ε", Value: EpsilonValue, kind: Epsilon}
	EOFSymbol     = &Symbol{Name: "$", Value: EOFValue, kind: EndMarker}
)

// Kind returns the symbol's kind.
func (A *Symbol) Kind() SymbolKind {
	return A.kind
}

// IsTerminal is true for terminals, including ε and $.
func (A *Symbol) IsTerminal() bool {
	return A.kind != NonTerminal
}

// IsEpsilon is true for ε.
func (A *Symbol) IsEpsilon() bool {
	return A.kind == Epsilon
}

func (A *Symbol) String() string {
	return A.Name
}

// Classify is the classification rule for grammar symbols: an upper-case ASCII
// letter is a non-terminal, ε is epsilon, $ is the end marker and every other
// character is a terminal.
func Classify(r rune) SymbolKind {
	switch {
	case r >= 'A' && r <= 'Z':
		return NonTerminal
	case r == 'ε':
		return Epsilon
	case r == '$':
		return EndMarker
	}
	return Terminal
}

// TerminalName returns the spelling of a terminal value.
func TerminalName(v int) string {
	switch v {
	case EpsilonValue:
		return EpsilonSymbol.Name
	case EOFValue:
		return EOFSymbol.Name
	}
	return string(rune(v))
}

// --- Rules -----------------------------------------------------------------

// Rule is a production A ➞ X1 … Xn of a grammar. ε-rules have an empty RHS.
type Rule struct {
	Serial int     // ordinal number of this rule within the grammar
	LHS    *Symbol // left-hand side non-terminal
	rhs    []*Symbol
}

// RHS returns a copy of the right-hand side of a rule.
func (r *Rule) RHS() []*Symbol {
	return append([]*Symbol(nil), r.rhs...)
}

// Len returns the number of symbols of the right-hand side.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// IsEps is true for ε-rules.
func (r *Rule) IsEps() bool {
	return len(r.rhs) == 0
}

// Body returns the right-hand side as it would be written in grammar text,
// i.e. "+TX", or "ε" for an ε-rule.
func (r *Rule) Body() string {
	if r.IsEps() {
		return EpsilonSymbol.Name
	}
	var b strings.Builder
	for _, X := range r.rhs {
		b.WriteString(X.Name)
	}
	return b.String()
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s ➞ %s", r.LHS, r.Body())
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a context-free grammar with single-character symbols. Create one
// with a GrammarBuilder or by parsing grammar text. A grammar is immutable
// once it has been handed out.
type Grammar struct {
	Name         string
	rules        *arraylist.List   // all rules, in order of definition
	nonterminals []*Symbol         // defined non-terminals, in order of definition
	terminals    []*Symbol         // terminals, in order of first occurrence
	symbols      map[string]*Symbol
	byLHS        map[*Symbol][]*Rule
}

func newGrammar(name string) *Grammar {
	return &Grammar{
		Name:    name,
		rules:   arraylist.New(),
		symbols: make(map[string]*Symbol),
		byLHS:   make(map[*Symbol][]*Rule),
	}
}

// Start returns the start symbol, i.e. the first non-terminal defined.
// Returns nil for an empty grammar.
func (g *Grammar) Start() *Symbol {
	if len(g.nonterminals) == 0 {
		return nil
	}
	return g.nonterminals[0]
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return g.rules.Size()
}

// IsEmpty is true for a grammar without rules.
func (g *Grammar) IsEmpty() bool {
	return g.rules.Empty()
}

// Rule returns rule number n, or nil.
func (g *Grammar) Rule(n int) *Rule {
	r, ok := g.rules.Get(n)
	if !ok {
		return nil
	}
	return r.(*Rule)
}

// Rules returns all rules in order of definition.
func (g *Grammar) Rules() []*Rule {
	rules := make([]*Rule, 0, g.rules.Size())
	g.rules.Each(func(_ int, r interface{}) {
		rules = append(rules, r.(*Rule))
	})
	return rules
}

// RulesFor returns the rules for non-terminal A, in order of definition.
func (g *Grammar) RulesFor(A *Symbol) []*Rule {
	return append([]*Rule(nil), g.byLHS[A]...)
}

// NonTerminals returns the non-terminals in order of definition.
func (g *Grammar) NonTerminals() []*Symbol {
	return append([]*Symbol(nil), g.nonterminals...)
}

// Terminals returns the terminals in order of first occurrence.
// The reserved symbols ε and $ are not included.
func (g *Grammar) Terminals() []*Symbol {
	return append([]*Symbol(nil), g.terminals...)
}

// SymbolByName finds a symbol of the grammar. ε and $ are found in every grammar.
func (g *Grammar) SymbolByName(name string) *Symbol {
	switch name {
	case EpsilonSymbol.Name:
		return EpsilonSymbol
	case EOFSymbol.Name:
		return EOFSymbol
	}
	return g.symbols[name]
}

// Terminal finds the terminal for a terminal value.
func (g *Grammar) Terminal(v int) *Symbol {
	switch v {
	case EpsilonValue:
		return EpsilonSymbol
	case EOFValue:
		return EOFSymbol
	}
	if A := g.symbols[string(rune(v))]; A != nil && A.IsTerminal() {
		return A
	}
	return nil
}

// EachNonTerminal iterates over all non-terminals of the grammar in order of
// definition and applies a mapper function to them. Results of the mapper
// are collected.
func (g *Grammar) EachNonTerminal(mapper func(A *Symbol) interface{}) []interface{} {
	var r []interface{}
	for _, A := range g.nonterminals {
		r = append(r, mapper(A))
	}
	return r
}

// Dump is a debugging helper: dump the rules of a grammar to the trace.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	tracer().Debugf("start symbol = %v", g.Start())
	for _, r := range g.Rules() {
		tracer().Debugf("%3d: %v", r.Serial, r)
	}
	tracer().Debugf("-------------------------------------------------------")
}

// --- Grammar Builder -------------------------------------------------------

// GrammarBuilder is a builder type for grammars. Use it like this:
//
//    b := ll.NewGrammarBuilder("G")
//    b.LHS("E").N("T").N("X").End()          // E ➞ T X
//    b.LHS("X").T("+").N("T").N("X").End()   // X ➞ + T X
//    b.LHS("X").Epsilon()                    // X ➞ ε
//    b.LHS("T").T("n").End()                 // T ➞ n
//    g, err := b.Grammar()
//
// The first non-terminal given to LHS is the start symbol. Symbols are single
// characters; see Classify.
type GrammarBuilder struct {
	g   *Grammar
	err error
}

// NewGrammarBuilder creates a builder for a grammar with the given name.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{g: newGrammar(name)}
}

// RuleBuilder collects the right-hand side of a rule.
type RuleBuilder struct {
	gb   *GrammarBuilder
	rule *Rule
}

// LHS starts a new rule for non-terminal s.
func (gb *GrammarBuilder) LHS(s string) *RuleBuilder {
	rb := &RuleBuilder{gb: gb}
	A, err := gb.symbol(s, NonTerminal)
	if err != nil {
		gb.fail(err)
		A = &Symbol{Name: s, kind: NonTerminal, Value: -1}
	}
	rb.rule = &Rule{LHS: A}
	return rb
}

// N appends non-terminal s to the right-hand side.
func (rb *RuleBuilder) N(s string) *RuleBuilder {
	A, err := rb.gb.symbol(s, NonTerminal)
	if err != nil {
		rb.gb.fail(err)
		return rb
	}
	rb.rule.rhs = append(rb.rule.rhs, A)
	return rb
}

// T appends terminal s to the right-hand side. T("ε") is the identity.
func (rb *RuleBuilder) T(s string) *RuleBuilder {
	if s == EpsilonSymbol.Name {
		return rb
	}
	a, err := rb.gb.symbol(s, Terminal)
	if err != nil {
		rb.gb.fail(err)
		return rb
	}
	rb.rule.rhs = append(rb.rule.rhs, a)
	return rb
}

// End completes a rule. A rule without symbols is an error; ε-rules are
// created with Epsilon.
func (rb *RuleBuilder) End() *Rule {
	if len(rb.rule.rhs) == 0 {
		rb.gb.fail(fmt.Errorf("%w: %s", ErrEmptyRuleSequence, rb.rule.LHS))
		return rb.rule
	}
	return rb.gb.appendRule(rb.rule)
}

// Epsilon completes an ε-rule A ➞ ε. Symbols added before are dropped.
func (rb *RuleBuilder) Epsilon() *Rule {
	rb.rule.rhs = nil
	return rb.gb.appendRule(rb.rule)
}

// Grammar returns the grammar built so far. It returns the first error
// recorded while building, or an UndefinedSymbolError if a rule references a
// non-terminal without rules.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	if err := gb.g.validate(); err != nil {
		return nil, err
	}
	return gb.g, nil
}

func (gb *GrammarBuilder) fail(err error) {
	tracer().Errorf("grammar %s: %v", gb.g.Name, err)
	if gb.err == nil {
		gb.err = err
	}
}

func (gb *GrammarBuilder) appendRule(r *Rule) *Rule {
	if r.LHS.Value < 0 { // invalid LHS, error has been recorded
		return r
	}
	g := gb.g
	if _, defined := g.byLHS[r.LHS]; !defined {
		g.nonterminals = append(g.nonterminals, r.LHS)
	}
	r.Serial = g.rules.Size()
	g.rules.Add(r)
	g.byLHS[r.LHS] = append(g.byLHS[r.LHS], r)
	return r
}

// symbol finds or creates a symbol of the requested kind.
func (gb *GrammarBuilder) symbol(s string, kind SymbolKind) (*Symbol, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r < '!' || r > '~' {
		return nil, fmt.Errorf("%w: %q", ErrIllegalSymbol, s)
	}
	if k := Classify(r); k != kind {
		return nil, fmt.Errorf("%w: %q is not a %s", ErrIllegalSymbol, s, kind)
	}
	g := gb.g
	if A, ok := g.symbols[s]; ok {
		return A, nil
	}
	A := &Symbol{Name: s, kind: kind}
	if kind == NonTerminal {
		A.Value = len(g.symbols) - len(g.terminals)
	} else {
		A.Value = int(r)
		g.terminals = append(g.terminals, A)
	}
	g.symbols[s] = A
	return A, nil
}

// validate checks that every non-terminal referenced has rules.
func (g *Grammar) validate() error {
	for _, r := range g.Rules() {
		for _, X := range r.rhs {
			if X.IsTerminal() {
				continue
			}
			if _, defined := g.byLHS[X]; !defined {
				return &UndefinedSymbolError{Source: g.Name, Symbol: X, Rule: r}
			}
		}
	}
	return nil
}
