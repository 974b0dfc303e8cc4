/*
Package report renders the results of an LL(1) grammar analysis: FIRST and
FOLLOW sets, the predictive table and its conflicts.

Text output is a block per grammar:

    === expr ===
    ***** FIRST *****
    E : {n}
    X : {ε, +}
    T : {n}

    ***** FOLLOW *****
    E : {$}
    X : {$}
    T : {$, +}

    ***** PREDICTIVE TABLE *****
    (E, n) : TX
    (T, n) : n
    (X, $) : ε
    (X, +) : +TX

Sets are printed in ascending order of terminal values. Sections CONFLICTS
and LEFT RECURSION are appended for grammars which are not LL(1).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/predict/ll"
)

// Text writes the analysis block for the grammar of a table generator.
// gen.CreateTable() must have been called before.
func Text(w io.Writer, gen *ll.TableGenerator) error {
	_, err := io.WriteString(w, String(gen))
	return err
}

// String returns the analysis block for the grammar of a table generator.
// gen.CreateTable() must have been called before.
func String(gen *ll.TableGenerator) string {
	var b strings.Builder
	g, ga := gen.Grammar(), gen.Analysis()
	fmt.Fprintf(&b, "=== %s ===\n", g.Name)
	b.WriteString("***** FIRST *****\n")
	for _, A := range g.NonTerminals() {
		fmt.Fprintf(&b, "%s : %v\n", A, ga.First(A))
	}
	b.WriteString("\n***** FOLLOW *****\n")
	for _, A := range g.NonTerminals() {
		fmt.Fprintf(&b, "%s : %v\n", A, ga.Follow(A))
	}
	b.WriteString("\n***** PREDICTIVE TABLE *****\n")
	if table := gen.Table(); table != nil {
		for _, e := range table.Entries() {
			b.WriteString(e.String())
			b.WriteByte('\n')
		}
	}
	if gen.HasConflicts {
		b.WriteString("\n***** CONFLICTS *****\n")
		for _, c := range gen.Conflicts() {
			b.WriteString(c.String())
			b.WriteByte('\n')
		}
	}
	if cycles := ga.LeftRecursions(); len(cycles) > 0 {
		b.WriteString("\n***** LEFT RECURSION *****\n")
		for _, cycle := range cycles {
			names := make([]string, len(cycle))
			for i, A := range cycle {
				names[i] = A.Name
			}
			b.WriteString(strings.Join(names, " ➞ "))
			b.WriteString(" ➞ …\n")
		}
	}
	return b.String()
}
