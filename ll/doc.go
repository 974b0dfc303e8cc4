/*
Package ll implements prerequisites for LL(1) parsing: grammars with
single-character symbols, FIRST and FOLLOW sets, and predictive parser
tables.

Building a Grammar

Grammars are either parsed from text or specified using a grammar builder
object. Every symbol is spelled with exactly one character: an upper-case
letter denotes a non-terminal, any other printable ASCII character a
terminal. Grammars may contain epsilon-productions.

Example:

    g, err := ll.ParseString("G", `
        E -> TX
        X -> +TX | ε
        T -> n
    `)

is equivalent to

    b := ll.NewGrammarBuilder("G")
    b.LHS("E").N("T").N("X").End()          // E  ->  T X
    b.LHS("X").T("+").N("T").N("X").End()   // X  ->  + T X
    b.LHS("X").Epsilon()                    // X  ->  ε
    b.LHS("T").T("n").End()                 // T  ->  n
    g, err := b.Grammar()

This results in the following trivial grammar:

   g.Dump()

   0: E ➞ TX
   1: X ➞ +TX
   2: X ➞ ε
   3: T ➞ n

Static Grammar Analysis

After the grammar is complete, it has to be analysed. For this end, the
grammar is subjected to an LLAnalysis object, which computes FIRST and
FOLLOW sets for the grammar.

    ga, err := ll.Analysis(g)  // analyser for grammar above
    ga.Grammar().EachNonTerminal(
        func(A *ll.Symbol) interface{} {                        // ad-hoc mapper function
            fmt.Printf("FIRST(%s) = %v\n", A, ga.First(A))      // get FIRST-set for A
            return nil
        })

    // Output:
    FIRST(E) = {n}
    FIRST(X) = {ε, +}
    FIRST(T) = {n}

Both set families are fixed points, computed by repeated passes over the
rules. The number of passes may be limited by option MaxPasses or by
configuration key "predict.max-passes".

Table Construction

Using grammar analysis as input, a predictive parser table is constructed.
For every rule A ➞ α, the table receives an entry at (A, t) for each
terminal t ∈ FIRST(α), and, if α is nullable, for each t ∈ FOLLOW(A).
If a cell is claimed by more than one rule, the first rule keeps the cell
and a conflict is recorded; the grammar is then not LL(1).

Example:

    gen := ll.NewTableGenerator(ga)   // ga is an LLAnalysis, see above
    gen.CreateTable()                 // construct the predictive table
    if gen.HasConflicts {
        for _, c := range gen.Conflicts() { … }
    }
    rule, ok := gen.Table().Lookup(X, '+')   // X ➞ +TX

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.ll'.
func tracer() tracing.Trace {
	return tracing.Select("predict.ll")
}
