/*
Package llrepl/main provides an interactive command line tool (LL.REPL)
for the analysis of LL(1) grammars. Grammars are typed in line by line,
or loaded from a directory of grammar files, and LL.REPL prints their
FIRST and FOLLOW sets and the predictive parser table.

Usage:

    llrepl [-trace level] [-dir grammars] [-html table.html] [file …]

If grammar files are given as arguments, they are analysed and LL.REPL
exits. Otherwise LL.REPL reads commands and grammar lines; type ':help'
for a list of commands.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.repl'
func tracer() tracing.Trace {
	return tracing.Select("predict.repl")
}
