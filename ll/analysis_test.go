package ll

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyse(t *testing.T, text string, opts ...Option) (*Grammar, *LLAnalysis) {
	g, err := ParseString(t.Name(), text)
	require.NoError(t, err)
	ga, err := Analysis(g, opts...)
	require.NoError(t, err)
	return g, ga
}

func TestFirstAndFollow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	g, ga := analyse(t, exprGrammar)
	E, X, T := g.SymbolByName("E"), g.SymbolByName("X"), g.SymbolByName("T")
	assert.ElementsMatch(t, []string{"n"}, ga.First(E).Names())
	assert.ElementsMatch(t, []string{"+", "ε"}, ga.First(X).Names())
	assert.ElementsMatch(t, []string{"n"}, ga.First(T).Names())
	assert.ElementsMatch(t, []string{"$"}, ga.Follow(E).Names())
	assert.ElementsMatch(t, []string{"$"}, ga.Follow(X).Names())
	assert.ElementsMatch(t, []string{"+", "$"}, ga.Follow(T).Names())
	assert.True(t, ga.IsNullable(X))
	assert.False(t, ga.IsNullable(E))
	first, follow := ga.Passes()
	t.Logf("FIRST took %d passes, FOLLOW took %d passes", first, follow)
	// a pass which re-unites subsets must not count as a change
	assert.LessOrEqual(t, first, 3, "FIRST passes")
	assert.LessOrEqual(t, follow, 2, "FOLLOW passes")
}

func TestFirstOfTerminals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	g, ga := analyse(t, exprGrammar)
	for _, a := range append(g.Terminals(), EpsilonSymbol) {
		F := ga.FirstOfSymbol(a)
		if F.Len() != 1 || !F.Contains(a.Value) {
			t.Errorf("expected FIRST(%s) = {%s}, is %v", a, a, F)
		}
	}
	seq := []*Symbol{g.SymbolByName("X"), g.SymbolByName("X")}
	assert.ElementsMatch(t, []string{"+", "ε"}, ga.FirstOfSequence(seq).Names())
	assert.ElementsMatch(t, []string{"ε"}, ga.FirstOfSequence(nil).Names())
}

func TestFollowInvariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	g, ga := analyse(t, `
		S -> AB | Cc
		A -> aA | ε
		B -> bB | ε
		C -> AB | d
	`)
	if !ga.Follow(g.Start()).HasEOF() {
		t.Errorf("$ not in FOLLOW of start symbol")
	}
	for _, A := range g.NonTerminals() {
		if ga.Follow(A).HasEpsilon() {
			t.Errorf("FOLLOW(%s) contains ε", A)
		}
	}
	assert.ElementsMatch(t, []string{"a", "b", "c", "d", "ε"}, ga.First(g.SymbolByName("S")).Names())
	assert.ElementsMatch(t, []string{"a", "b", "d", "ε"}, ga.First(g.SymbolByName("C")).Names())
	assert.ElementsMatch(t, []string{"b", "c", "$"}, ga.Follow(g.SymbolByName("A")).Names())
	assert.ElementsMatch(t, []string{"c", "$"}, ga.Follow(g.SymbolByName("B")).Names())
}

func TestFollowEveryOccurrence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	g, ga := analyse(t, "S -> AaAb\nA -> c | ε")
	assert.ElementsMatch(t, []string{"a", "b"}, ga.Follow(g.SymbolByName("A")).Names())
}

func TestFollowPropagation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	g, ga := analyse(t, "S -> Ab\nA -> B\nB -> c")
	assert.ElementsMatch(t, []string{"b"}, ga.Follow(g.SymbolByName("A")).Names())
	assert.ElementsMatch(t, []string{"b"}, ga.Follow(g.SymbolByName("B")).Names())
}

func TestAnalysisIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	g1, ga1 := analyse(t, exprGrammar)
	g2, ga2 := analyse(t, exprGrammar)
	for i, A := range g1.NonTerminals() {
		B := g2.NonTerminals()[i]
		if !ga1.First(A).Equals(ga2.First(B)) || !ga1.Follow(A).Equals(ga2.Follow(B)) {
			t.Errorf("analysis of %s differs between runs", A)
		}
	}
}

func TestLeftRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	g, ga := analyse(t, "E -> E+T | T\nT -> n")
	assert.ElementsMatch(t, []string{"n"}, ga.First(g.Start()).Names())
	assert.ElementsMatch(t, []string{"+", "$"}, ga.Follow(g.Start()).Names())
	cycles := ga.LeftRecursions()
	require.Len(t, cycles, 1)
	assert.Equal(t, []string{"E"}, names(cycles[0]))
}

func TestIndirectLeftRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	_, ga := analyse(t, "S -> Aa | b\nA -> BSc | d\nB -> ε | e")
	cycles := ga.LeftRecursions()
	require.Len(t, cycles, 1)
	assert.Equal(t, []string{"S", "A"}, names(cycles[0]))
	_, ga = analyse(t, exprGrammar)
	assert.Empty(t, ga.LeftRecursions())
}

func TestBudgetExceeded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	g, err := ParseString("expr", exprGrammar)
	require.NoError(t, err)
	_, err = Analysis(g, MaxPasses(1))
	var budget *BudgetExceededError
	if !errors.As(err, &budget) {
		t.Fatalf("expected BudgetExceededError, got %v", err)
	}
	if budget.Phase != "FIRST" || budget.Passes != 1 {
		t.Errorf("unexpected phase or pass count in %v", err)
	}
	assert.ElementsMatch(t, []string{"X", "T"}, names(budget.Unstable))
	_, err = Analysis(g, MaxPasses(0)) // default budget
	assert.NoError(t, err)
}
