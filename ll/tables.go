package ll

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/predict/ll/sparse"
)

// === Predictive Table ======================================================

// Table is a predictive parser table M[A, t] for an LL(1) parser. Rows are
// non-terminals, columns are terminals including $. Every cell holds at most
// one rule; competing rules are reported by the TableGenerator as conflicts.
type Table struct {
	g       *Grammar
	matrix  *sparse.IntMatrix
	mincol  int       // lowest terminal value => offset for column access
	rows    []*Symbol // non-terminals by value
	columns []*Symbol // terminals in order of first occurrence, then $
}

func newTable(g *Grammar) *Table {
	maxcol := EpsilonValue
	for _, a := range g.terminals {
		if a.Value > maxcol {
			maxcol = a.Value
		}
	}
	t := &Table{
		g:       g,
		mincol:  EOFValue,
		rows:    make([]*Symbol, len(g.nonterminals)),
		columns: append(g.Terminals(), EOFSymbol),
	}
	for _, A := range g.nonterminals {
		t.rows[A.Value] = A
	}
	extent := maxcol - t.mincol + 1
	tracer().Debugf("predictive table of size %d x (%d-%d=%d)", len(t.rows), maxcol, t.mincol, extent)
	t.matrix = sparse.NewIntMatrix(len(t.rows), extent, sparse.DefaultNullValue)
	return t
}

// Grammar returns the grammar this table is for.
func (t *Table) Grammar() *Grammar {
	return t.g
}

// Columns returns the terminals heading the table columns: the terminals of
// the grammar in order of first occurrence, followed by $.
func (t *Table) Columns() []*Symbol {
	return append([]*Symbol(nil), t.columns...)
}

// Size returns the number of occupied cells.
func (t *Table) Size() int {
	return t.matrix.ValueCount()
}

// Lookup returns the rule predicted for non-terminal A and terminal value
// a (a character code, or EOFValue for $).
func (t *Table) Lookup(A *Symbol, a int) (*Rule, bool) {
	i, j, ok := t.cell(A, a)
	if !ok {
		return nil, false
	}
	v := t.matrix.Value(i, j)
	if v == t.matrix.NullValue() {
		return nil, false
	}
	return t.g.Rule(int(v)), true
}

// Entry is an occupied cell of a predictive table.
type Entry struct {
	N    *Symbol // row
	T    *Symbol // column
	Rule *Rule   // predicted rule
}

func (e Entry) String() string {
	return fmt.Sprintf("(%s, %s) : %s", e.N, e.T, e.Rule.Body())
}

// Entries returns all occupied cells, row by row, and within a row by
// terminal value.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, t.matrix.ValueCount())
	t.matrix.Each(func(i, j int, v int32) {
		entries = append(entries, Entry{
			N:    t.rows[i],
			T:    t.g.Terminal(j + t.mincol),
			Rule: t.g.Rule(int(v)),
		})
	})
	return entries
}

func (t *Table) cell(A *Symbol, a int) (int, int, bool) {
	if A == nil || A.IsTerminal() || A.Value < 0 || A.Value >= len(t.rows) || t.rows[A.Value] != A {
		return 0, 0, false
	}
	j := a - t.mincol
	if j < 0 || j >= t.matrix.N() || a == EpsilonValue {
		return 0, 0, false
	}
	return A.Value, j, true
}

// add enters rule r at (A, a). It returns false if the cell is already
// occupied, together with the rule occupying it.
func (t *Table) add(A *Symbol, a int, r *Rule) (bool, *Rule) {
	i, j, ok := t.cell(A, a)
	if !ok {
		panic(fmt.Sprintf("ll.Table.add() for invalid cell (%v, %s)", A, TerminalName(a)))
	}
	if t.matrix.Add(i, j, int32(r.Serial)) {
		return true, r
	}
	return false, t.g.Rule(int(t.matrix.Value(i, j)))
}

// === Conflicts =============================================================

// Conflict is a table cell claimed by more than one rule. Rules[0] is the
// rule which has been entered into the table.
type Conflict struct {
	N     *Symbol
	T     *Symbol
	Rules []*Rule
}

func (c *Conflict) String() string {
	bodies := make([]string, len(c.Rules))
	for i, r := range c.Rules {
		bodies[i] = r.Body()
	}
	return fmt.Sprintf("(%s, %s) : %s", c.N, c.T, strings.Join(bodies, " | "))
}

// conflicts are ordered by row, then by column
func conflictComparator(c1, c2 interface{}) int {
	a, b := c1.(*Conflict), c2.(*Conflict)
	if d := utils.IntComparator(a.N.Value, b.N.Value); d != 0 {
		return d
	}
	return utils.IntComparator(a.T.Value, b.T.Value)
}

type cellKey struct {
	A *Symbol
	a int
}

// === Table Generator =======================================================

// TableGenerator is a generator object to construct a predictive parser
// table for an LL(1) parser. Clients usually create a Grammar G, then an
// LLAnalysis-object for G, and then a table generator.
// TableGenerator.CreateTable() constructs the table.
type TableGenerator struct {
	g            *Grammar
	ga           *LLAnalysis
	table        *Table
	conflicts    *treeset.Set // of *Conflict
	cells        map[cellKey]*Conflict
	HasConflicts bool
}

// NewTableGenerator creates a new TableGenerator for a (previously analysed) grammar.
func NewTableGenerator(ga *LLAnalysis) *TableGenerator {
	gen := &TableGenerator{}
	gen.g = ga.Grammar()
	gen.ga = ga
	return gen
}

// Grammar returns the grammar the table is generated for.
func (gen *TableGenerator) Grammar() *Grammar {
	return gen.g
}

// Analysis returns the analysis the table is generated from.
func (gen *TableGenerator) Analysis() *LLAnalysis {
	return gen.ga
}

// Table returns the predictive table. The table has to be built by calling
// CreateTable() previously.
func (gen *TableGenerator) Table() *Table {
	if gen.table == nil {
		tracer().Errorf("table not yet initialized")
	}
	return gen.table
}

// Conflicts returns the conflicting cells of the table, ordered by row, then
// by column. The table has to be built by calling CreateTable() previously.
func (gen *TableGenerator) Conflicts() []*Conflict {
	if gen.conflicts == nil {
		return nil
	}
	cs := make([]*Conflict, 0, gen.conflicts.Size())
	for _, c := range gen.conflicts.Values() {
		cs = append(cs, c.(*Conflict))
	}
	return cs
}

// CreateTable constructs the predictive table. For every rule A ➞ α, in
// order of definition, an entry is created for every terminal in
// FIRST(α) \ {ε}. If α is nullable, entries are created for every
// terminal in FOLLOW(A), including $.
//
// If a cell is occupied already, the earlier rule keeps it and the cell is
// recorded as a conflict.
func (gen *TableGenerator) CreateTable() *Table {
	gen.table = newTable(gen.g)
	gen.conflicts = treeset.NewWith(conflictComparator)
	gen.cells = make(map[cellKey]*Conflict)
	gen.HasConflicts = false
	for _, r := range gen.g.Rules() {
		F := gen.ga.FirstOfSequence(r.rhs)
		tracer().Debugf("FIRST(%s) = %v", r, F)
		for _, a := range F.Values() {
			if a != EpsilonValue {
				gen.enter(r, a)
			}
		}
		if F.HasEpsilon() {
			follow := gen.ga.Follow(r.LHS)
			tracer().Debugf("    FOLLOW(%v) = %v", r.LHS, follow)
			for _, a := range follow.Values() {
				gen.enter(r, a)
			}
		}
	}
	tracer().Infof("%s: predictive table with %d entries, %d conflicts",
		gen.g.Name, gen.table.Size(), gen.conflicts.Size())
	return gen.table
}

func (gen *TableGenerator) enter(r *Rule, a int) {
	ok, kept := gen.table.add(r.LHS, a, r)
	if ok {
		tracer().Debugf("    M[%v, %s] = %v", r.LHS, TerminalName(a), r)
		return
	}
	if kept == r { // same rule by FIRST and FOLLOW
		return
	}
	tracer().Debugf("    M[%v, %s] = %v is 2nd entry", r.LHS, TerminalName(a), r)
	gen.HasConflicts = true
	key := cellKey{r.LHS, a}
	if c, found := gen.cells[key]; found {
		for _, other := range c.Rules {
			if other == r {
				return
			}
		}
		c.Rules = append(c.Rules, r)
		return
	}
	c := &Conflict{N: r.LHS, T: gen.g.Terminal(a), Rules: []*Rule{kept, r}}
	gen.cells[key] = c
	gen.conflicts.Add(c)
}
