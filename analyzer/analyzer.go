package analyzer

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/predict/report"
)

// Result is the outcome of analysing a grammar.
type Result struct {
	Grammar        *ll.Grammar
	Analysis       *ll.LLAnalysis
	Generator      *ll.TableGenerator
	Table          *ll.Table
	Conflicts      []*ll.Conflict
	LeftRecursions [][]*ll.Symbol
}

// Option configures Analyze and Batch.
type Option func(*options)

type options struct {
	maxPasses int
	workers   int
}

// WithMaxPasses limits the number of passes of the FIRST and FOLLOW
// computations; see ll.MaxPasses.
func WithMaxPasses(n int) Option {
	return func(o *options) {
		o.maxPasses = n
	}
}

// Workers sets the number of grammars analysed in parallel by Batch.
// The default is the number of CPUs.
func Workers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func collect(opts []Option) options {
	o := options{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = 1
	}
	return o
}

// Analyze parses grammar text and computes FIRST and FOLLOW sets and the
// predictive table. Name identifies the grammar in results and errors.
//
// Errors are *ll.MalformedGrammarError, *ll.UndefinedSymbolError and
// *ll.BudgetExceededError. A grammar which is not LL(1) is not an error;
// see Result.Warning.
func Analyze(name, text string, opts ...Option) (*Result, error) {
	o := collect(opts)
	g, err := ll.ParseString(name, text)
	if err != nil {
		tracer().Errorf("%v", err)
		return nil, err
	}
	ga, err := ll.Analysis(g, ll.MaxPasses(o.maxPasses))
	if err != nil {
		tracer().Errorf("%v", err)
		return nil, err
	}
	gen := ll.NewTableGenerator(ga)
	table := gen.CreateTable()
	result := &Result{
		Grammar:        g,
		Analysis:       ga,
		Generator:      gen,
		Table:          table,
		Conflicts:      gen.Conflicts(),
		LeftRecursions: ga.LeftRecursions(),
	}
	tracer().Infof("grammar %s: %d rules, %d table entries, LL(1) = %v",
		name, g.Size(), table.Size(), result.IsLL1())
	return result, nil
}

// IsLL1 is true if no cell of the predictive table has been claimed by
// more than one rule.
func (r *Result) IsLL1() bool {
	return len(r.Conflicts) == 0
}

// Warning returns a *NotLL1Warning if the grammar is not LL(1), nil otherwise.
func (r *Result) Warning() error {
	if r.IsLL1() {
		return nil
	}
	return &NotLL1Warning{Grammar: r.Grammar.Name, Conflicts: r.Conflicts}
}

// Text renders the result as a text block; see package report.
func (r *Result) Text() string {
	return report.String(r.Generator)
}

// Fingerprint returns a structural hash of the analysis: FIRST and FOLLOW
// sets, table entries and conflicts. It does not depend on the grammar's
// name, and analysing the same grammar text always yields the same
// fingerprint.
func (r *Result) Fingerprint() (string, error) {
	return structhash.Hash(r.snapshot(), 1)
}

// snapshot is the hashable content of a result.
type snapshot struct {
	Rules     []string
	First     []string
	Follow    []string
	Entries   []string
	Conflicts []string
}

func (r *Result) snapshot() snapshot {
	var s snapshot
	for _, rule := range r.Grammar.Rules() {
		s.Rules = append(s.Rules, rule.String())
	}
	for _, A := range r.Grammar.NonTerminals() {
		s.First = append(s.First, fmt.Sprintf("%s : %v", A, r.Analysis.First(A)))
		s.Follow = append(s.Follow, fmt.Sprintf("%s : %v", A, r.Analysis.Follow(A)))
	}
	for _, e := range r.Table.Entries() {
		s.Entries = append(s.Entries, e.String())
	}
	for _, c := range r.Conflicts {
		s.Conflicts = append(s.Conflicts, c.String())
	}
	return s
}

// NotLL1Warning reports the conflicts of a grammar which is not LL(1).
// The analysis is complete nevertheless; conflicting cells hold the rule
// which has been entered first.
type NotLL1Warning struct {
	Grammar   string
	Conflicts []*ll.Conflict
}

func (w *NotLL1Warning) Error() string {
	cs := make([]string, len(w.Conflicts))
	for i, c := range w.Conflicts {
		cs[i] = c.String()
	}
	return fmt.Sprintf("grammar %s is not LL(1), %d conflicts: %s", w.Grammar,
		len(w.Conflicts), strings.Join(cs, "; "))
}
