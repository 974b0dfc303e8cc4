package ll

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrammarBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("E").N("T").N("X").End()
	b.LHS("X").T("+").N("T").N("X").End()
	b.LHS("X").Epsilon()
	b.LHS("T").T("n").End()
	g, err := b.Grammar()
	require.NoError(t, err)
	g.Dump()
	if g.Size() != 4 {
		t.Errorf("expected grammar to have 4 rules, has %d", g.Size())
	}
	if g.Start().Name != "E" {
		t.Errorf("expected start symbol to be E, is %v", g.Start())
	}
	assert.Equal(t, []string{"E", "X", "T"}, names(g.NonTerminals()))
	assert.Equal(t, []string{"+", "n"}, names(g.Terminals()))
	X := g.SymbolByName("X")
	require.NotNil(t, X)
	rules := g.RulesFor(X)
	if len(rules) != 2 || !rules[1].IsEps() {
		t.Errorf("expected X to have 2 rules, the 2nd one an ε-rule; have %v", rules)
	}
	if rules[0].String() != "X ➞ +TX" {
		t.Errorf("unexpected rule string %q", rules[0].String())
	}
	if rules[1].Body() != "ε" {
		t.Errorf("expected ε-rule body to be ε, is %q", rules[1].Body())
	}
	if g.Rule(3).LHS.Name != "T" || g.Rule(4) != nil {
		t.Errorf("rules are not numbered in order of definition")
	}
	if g.SymbolByName("$") != EOFSymbol || g.SymbolByName("ε") != EpsilonSymbol {
		t.Errorf("reserved symbols not found in grammar")
	}
	if n := g.SymbolByName("n"); n.Value != 'n' || !n.IsTerminal() {
		t.Errorf("expected terminal n to carry its character code, has %d", n.Value)
	}
}

func TestGrammarEachNonTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("B").N("A").End()
	b.LHS("A").T("a").End()
	b.LHS("B").T("b").End()
	g, err := b.Grammar()
	require.NoError(t, err)
	r := g.EachNonTerminal(func(A *Symbol) interface{} {
		return A.Name
	})
	assert.Equal(t, []interface{}{"S", "A", "B"}, r)
}

func TestGrammarUndefinedSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").End()
	_, err := b.Grammar()
	var undef *UndefinedSymbolError
	if !errors.As(err, &undef) {
		t.Fatalf("expected UndefinedSymbolError, got %v", err)
	}
	if undef.Symbol.Name != "A" || undef.Rule.Serial != 0 {
		t.Errorf("error names wrong symbol or rule: %v", err)
	}
}

func TestGrammarIllegalSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").T("A").End()
	if _, err := b.Grammar(); !errors.Is(err, ErrIllegalSymbol) {
		t.Errorf("expected upper-case terminal to be rejected, got %v", err)
	}
	b = NewGrammarBuilder("G")
	b.LHS("s").T("a").End()
	if _, err := b.Grammar(); !errors.Is(err, ErrIllegalSymbol) {
		t.Errorf("expected lower-case non-terminal to be rejected, got %v", err)
	}
	b = NewGrammarBuilder("G")
	b.LHS("S").T("ab").End()
	if _, err := b.Grammar(); !errors.Is(err, ErrIllegalSymbol) {
		t.Errorf("expected multi-character symbol to be rejected, got %v", err)
	}
	b = NewGrammarBuilder("G")
	b.LHS("S").End()
	if _, err := b.Grammar(); !errors.Is(err, ErrEmptyRuleSequence) {
		t.Errorf("expected empty rule to be rejected, got %v", err)
	}
}

func TestClassify(t *testing.T) {
	kinds := map[rune]SymbolKind{
		'A': NonTerminal, 'Z': NonTerminal, 'a': Terminal, '0': Terminal,
		'+': Terminal, '(': Terminal, 'ε': Epsilon, '$': EndMarker,
	}
	for r, k := range kinds {
		if Classify(r) != k {
			t.Errorf("expected %q to be a %s, is %s", r, k, Classify(r))
		}
	}
}

func names(syms []*Symbol) []string {
	n := make([]string, len(syms))
	for i, A := range syms {
		n[i] = A.Name
	}
	return n
}
