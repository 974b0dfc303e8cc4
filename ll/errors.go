package ll

import (
	"fmt"
	"strings"
)

// ConstError is the type of sentinel errors of this package.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}

// Causes of malformed grammar lines. Use errors.Is to test for them.
const (
	ErrMissingArrow      = ConstError("expected '->'")
	ErrBadLHS            = ConstError("left-hand side must be a single upper-case letter")
	ErrNoAlternative     = ConstError("no alternative after '->'")
	ErrEmptyAlternative  = ConstError("empty alternative")
	ErrStrayArrow        = ConstError("unexpected '->' within alternatives")
	ErrIllegalCharacter  = ConstError("illegal character")
	ErrIllegalSymbol     = ConstError("illegal grammar symbol")
	ErrEmptyRuleSequence = ConstError("rule has no symbols; use Epsilon() for ε-rules")
)

// MalformedGrammarError is returned if a line of grammar source cannot be split
// into a left-hand non-terminal and at least one non-empty alternative.
type MalformedGrammarError struct {
	Source string // name of the grammar source
	Line   int    // 1-based line number
	Column int    // 1-based byte column
	Text   string // offending text
	Err    error  // one of the Err… causes
}

func (e *MalformedGrammarError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("%s:%d:%d: malformed grammar: %v", e.Source, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%s:%d:%d: malformed grammar: %v at %q", e.Source, e.Line, e.Column, e.Err, e.Text)
}

func (e *MalformedGrammarError) Unwrap() error {
	return e.Err
}

// UndefinedSymbolError is returned if a rule references a non-terminal which
// has no rule of its own.
type UndefinedSymbolError struct {
	Source string  // name of the grammar
	Symbol *Symbol // the undefined non-terminal
	Rule   *Rule   // first rule referencing it
}

func (e *UndefinedSymbolError) Error() string {
	return fmt.Sprintf("%s: undefined non-terminal %s referenced in rule %v", e.Source, e.Symbol, e.Rule)
}

// BudgetExceededError is returned if a fixed-point computation did not settle
// within the configured number of passes.
type BudgetExceededError struct {
	Source   string    // name of the grammar
	Phase    string    // "FIRST" or "FOLLOW"
	Passes   int       // number of passes run
	Unstable []*Symbol // non-terminals still changing in the last pass
}

func (e *BudgetExceededError) Error() string {
	names := make([]string, len(e.Unstable))
	for i, A := range e.Unstable {
		names[i] = A.Name
	}
	return fmt.Sprintf("%s: %s sets did not settle after %d passes, still changing: %s",
		e.Source, e.Phase, e.Passes, strings.Join(names, " "))
}
