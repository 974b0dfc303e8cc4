/*
Package analyzer runs the complete LL(1) analysis for grammar text: parsing,
FIRST and FOLLOW sets, the predictive table and its conflicts.

A single grammar is analysed with

    result, err := analyzer.Analyze("expr", text)
    if err != nil {
        …  // malformed grammar, undefined symbol or budget exceeded
    }
    if !result.IsLL1() {
        fmt.Println(result.Warning())
    }
    fmt.Print(result.Text())

Grammars may be loaded from a Source, e.g. a directory of text files, and be
analysed in batch:

    outcomes, err := analyzer.Batch(ctx, analyzer.DirSource{Dir: "grammars"}, nil)
    fmt.Print(analyzer.Summary(outcomes))

Errors in one grammar never abort the analysis of the others.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package analyzer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.analyzer'.
func tracer() tracing.Trace {
	return tracing.Select("predict.analyzer")
}
