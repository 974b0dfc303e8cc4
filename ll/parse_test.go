package ll

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exprGrammar = `
E -> TX
X -> +TX | ε
T -> n
`

func TestParseGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	g, err := ParseString("expr", exprGrammar)
	require.NoError(t, err)
	if g.Size() != 4 {
		t.Errorf("expected 4 rules, have %d", g.Size())
	}
	bodies := make([]string, 0, g.Size())
	for _, r := range g.Rules() {
		bodies = append(bodies, r.String())
	}
	assert.Equal(t, []string{"E ➞ TX", "X ➞ +TX", "X ➞ ε", "T ➞ n"}, bodies)
}

func TestParseEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	g, err := ParseString("empty", "\n   \n")
	require.NoError(t, err)
	if !g.IsEmpty() || g.Start() != nil {
		t.Errorf("expected empty grammar without start symbol")
	}
}

func TestParseWhitespaceAndRepeatedLHS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	g, err := ParseString("ws", "S->a S b|ε\nS -> c aε")
	require.NoError(t, err)
	S := g.Start()
	rules := g.RulesFor(S)
	require.Len(t, rules, 3)
	assert.Equal(t, "aSb", rules[0].Body())
	assert.True(t, rules[1].IsEps())
	assert.Equal(t, "ca", rules[2].Body())
}

func TestParseUndefined(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	_, err := ParseString("undef", "S -> A")
	var undef *UndefinedSymbolError
	if !errors.As(err, &undef) {
		t.Fatalf("expected UndefinedSymbolError, got %v", err)
	}
	if undef.Symbol.Name != "A" {
		t.Errorf("expected undefined symbol A, error is %v", err)
	}
}

func TestParseMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	cases := []struct {
		line   string
		cause  error
		column int
	}{
		{"A a", ErrBadLHS, 3},
		{"a -> b", ErrBadLHS, 1},
		{"AB -> c", ErrBadLHS, 2},
		{"-> c", ErrBadLHS, 1},
		{"A", ErrMissingArrow, 2},
		{"A | b", ErrMissingArrow, 3},
		{"A ->", ErrNoAlternative, 5},
		{"A -> | a", ErrEmptyAlternative, 6},
		{"A -> a |", ErrEmptyAlternative, 9},
		{"A -> a -> b", ErrStrayArrow, 8},
		{"A -> $", ErrIllegalCharacter, 6},
		{"A -> aä", ErrIllegalCharacter, 7},
	}
	for _, c := range cases {
		_, err := ParseString("bad", "S -> a\n"+c.line)
		var malformed *MalformedGrammarError
		if !errors.As(err, &malformed) {
			t.Errorf("%q: expected MalformedGrammarError, got %v", c.line, err)
			continue
		}
		if !errors.Is(err, c.cause) {
			t.Errorf("%q: expected cause %q, got %v", c.line, c.cause, err)
		}
		if malformed.Line != 2 || malformed.Column != c.column {
			t.Errorf("%q: expected error at 2:%d, is at %d:%d", c.line, c.column,
				malformed.Line, malformed.Column)
		}
		if malformed.Source != "bad" {
			t.Errorf("%q: error does not name the source", c.line)
		}
	}
}
