package ll

import (
	"github.com/npillmayer/schuko/gconf"
)

// LLAnalysis is the static analysis of a grammar: it holds the FIRST set and
// the FOLLOW set of every non-terminal. Create one with Analysis(g).
//
// Both families of sets are computed by fixed-point iteration over all rules,
// starting from empty sets (plus $ in FOLLOW of the start symbol) and
// applying the set equations until no set grows during a full pass.
// This terminates for every grammar, including left-recursive ones and
// grammars with mutually dependent FOLLOW sets.
//
// An LLAnalysis is read-only after construction; all sets handed out are copies.
type LLAnalysis struct {
	g         *Grammar
	first     []*TerminalSet // indexed by non-terminal value
	follow    []*TerminalSet // indexed by non-terminal value
	passes    [2]int         // passes needed for FIRST and FOLLOW
	maxPasses int
}

// Option configures a grammar analysis.
type Option func(*LLAnalysis)

// MaxPasses sets the budget of passes for each fixed-point computation.
// n <= 0 selects the default, which is always sufficient.
func MaxPasses(n int) Option {
	return func(ga *LLAnalysis) {
		if n > 0 {
			ga.maxPasses = n
		}
	}
}

// Analysis computes FIRST and FOLLOW sets for a grammar.
//
// The budget of passes is taken from option MaxPasses, else from configuration
// key "predict.max-passes", else it is derived from the size of the grammar
// such that it cannot be exceeded. If a fixed point is not reached within the
// budget, Analysis returns a *BudgetExceededError.
func Analysis(g *Grammar, opts ...Option) (*LLAnalysis, error) {
	ga := &LLAnalysis{g: g}
	ga.maxPasses = gconf.GetInt("predict.max-passes") // 0 if unset
	for _, opt := range opts {
		opt(ga)
	}
	if ga.maxPasses <= 0 {
		ga.maxPasses = defaultBudget(g)
	}
	n := len(g.nonterminals)
	ga.first = make([]*TerminalSet, n)
	ga.follow = make([]*TerminalSet, n)
	for i := 0; i < n; i++ {
		ga.first[i] = &TerminalSet{}
		ga.follow[i] = &TerminalSet{}
	}
	if err := ga.computeFirstSets(); err != nil {
		return nil, err
	}
	if err := ga.computeFollowSets(); err != nil {
		return nil, err
	}
	tracer().Infof("analysis of %s: FIRST settled after %d passes, FOLLOW after %d passes",
		g.Name, ga.passes[0], ga.passes[1])
	return ga, nil
}

// Every productive pass adds at least one terminal to one set. There are
// at most |N| sets of at most |T|+2 members each, plus one final pass
// to detect stability.
func defaultBudget(g *Grammar) int {
	return len(g.nonterminals)*(len(g.terminals)+2) + 2
}

// Grammar returns the grammar this analysis is for.
func (ga *LLAnalysis) Grammar() *Grammar {
	return ga.g
}

// Passes returns the number of passes the FIRST and FOLLOW computations took.
func (ga *LLAnalysis) Passes() (first, follow int) {
	return ga.passes[0], ga.passes[1]
}

// First returns FIRST(X). For a terminal X (including ε) this is {X}.
func (ga *LLAnalysis) First(X *Symbol) *TerminalSet {
	if X == nil {
		return nil
	}
	if X.IsTerminal() {
		return NewTerminalSet(X.Value)
	}
	if !ga.owns(X) {
		return nil
	}
	return ga.first[X.Value].Copy()
}

// FirstOfSymbol is an alias for First, for clients which deal with
// grammar symbols of unknown kind.
func (ga *LLAnalysis) FirstOfSymbol(X *Symbol) *TerminalSet {
	return ga.First(X)
}

// Follow returns FOLLOW(A) for a non-terminal A. It never contains ε.
func (ga *LLAnalysis) Follow(A *Symbol) *TerminalSet {
	if A == nil || A.IsTerminal() || !ga.owns(A) {
		return nil
	}
	return ga.follow[A.Value].Copy()
}

// IsNullable is true if ε ∈ FIRST(A).
func (ga *LLAnalysis) IsNullable(A *Symbol) bool {
	if A == nil || A.IsTerminal() {
		return A != nil && A.IsEpsilon()
	}
	return ga.owns(A) && ga.first[A.Value].HasEpsilon()
}

// FirstOfSequence returns FIRST(X1 … Xn). Symbols are walked left to right,
// collecting FIRST(Xi) \ {ε}, until a non-nullable symbol is reached. If all
// symbols are nullable (or the sequence is empty), ε is included.
func (ga *LLAnalysis) FirstOfSequence(seq []*Symbol) *TerminalSet {
	return ga.firstOfSequence(seq, &TerminalSet{})
}

func (ga *LLAnalysis) firstOfSequence(seq []*Symbol, result *TerminalSet) *TerminalSet {
	for _, X := range seq {
		if X.IsEpsilon() {
			continue
		}
		if X.IsTerminal() {
			result.Add(X.Value)
			return result
		}
		F := ga.first[X.Value]
		result.UnionWithoutEpsilon(F)
		if !F.HasEpsilon() {
			return result
		}
	}
	result.Add(EpsilonValue)
	return result
}

// owns is true if A is a non-terminal of the analysed grammar.
func (ga *LLAnalysis) owns(A *Symbol) bool {
	return A.Value >= 0 && A.Value < len(ga.first) && ga.g.symbols[A.Name] == A
}

// --- FIRST -----------------------------------------------------------------

// computeFirstSets iterates FIRST(A) ⊇ FIRST(α) for every rule A ➞ α until
// no set changes.
func (ga *LLAnalysis) computeFirstSets() error {
	rules := ga.g.Rules()
	return ga.fixpoint("FIRST", 0, func() []*Symbol {
		var changed []*Symbol
		for _, r := range rules {
			if ga.first[r.LHS.Value].Union(ga.FirstOfSequence(r.rhs)) {
				changed = appendOnce(changed, r.LHS)
			}
		}
		return changed
	})
}

// --- FOLLOW ----------------------------------------------------------------

// computeFollowSets applies the FOLLOW equations to every occurrence of every
// non-terminal in every rule L ➞ α A β:
//
//    FIRST(β) \ {ε} ⊆ FOLLOW(A)
//    FOLLOW(L) ⊆ FOLLOW(A)      if β is nullable (or empty)
//
// starting with $ ∈ FOLLOW(S) for the start symbol S.
func (ga *LLAnalysis) computeFollowSets() error {
	S := ga.g.Start()
	if S == nil {
		return nil
	}
	ga.follow[S.Value].Add(EOFValue)
	rules := ga.g.Rules()
	return ga.fixpoint("FOLLOW", 1, func() []*Symbol {
		var changed []*Symbol
		for _, r := range rules {
			for i, A := range r.rhs {
				if A.IsTerminal() {
					continue
				}
				if ga.followOccurrence(r, i) {
					changed = appendOnce(changed, A)
				}
			}
		}
		return changed
	})
}

// followOccurrence scans forward from the occurrence of a non-terminal at
// position i of rule r and adds to its FOLLOW set. Returns true if the set
// grew.
func (ga *LLAnalysis) followOccurrence(r *Rule, i int) bool {
	A := r.rhs[i]
	F := ga.follow[A.Value]
	grew := false
	for _, b := range r.rhs[i+1:] {
		if b.IsTerminal() {
			return F.Add(b.Value) || grew
		}
		if F.UnionWithoutEpsilon(ga.first[b.Value]) {
			grew = true
		}
		if !ga.first[b.Value].HasEpsilon() {
			return grew
		}
	}
	// nullable suffix: FOLLOW(L) ⊆ FOLLOW(A)
	if r.LHS != A && F.Union(ga.follow[r.LHS.Value]) {
		grew = true
	}
	return grew
}

// --- Fixed-point driver ----------------------------------------------------

// fixpoint runs pass until it reports no changes, within the budget of passes.
func (ga *LLAnalysis) fixpoint(phase string, slot int, pass func() []*Symbol) error {
	for n := 1; ; n++ {
		changed := pass()
		ga.passes[slot] = n
		tracer().Debugf("%s pass %d: %d sets changed", phase, n, len(changed))
		if len(changed) == 0 {
			return nil
		}
		if n >= ga.maxPasses {
			tracer().Errorf("%s: %s computation exceeded budget of %d passes", ga.g.Name, phase, ga.maxPasses)
			return &BudgetExceededError{
				Source:   ga.g.Name,
				Phase:    phase,
				Passes:   n,
				Unstable: changed,
			}
		}
	}
}

func appendOnce(syms []*Symbol, A *Symbol) []*Symbol {
	for _, B := range syms {
		if B == A {
			return syms
		}
	}
	return append(syms, A)
}
