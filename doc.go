/*
Package predict is a toolbox for static analysis of small context-free grammars
for top-down parsing.

It computes FIRST and FOLLOW sets for every non-terminal of a grammar and builds
the LL(1) predictive parsing table from them, reporting every table cell claimed
by more than one production. Package structure is as follows:

■ ll: Package ll implements the grammar model, the FIRST/FOLLOW analysis and the
construction of predictive tables. Sub-packages provide a scanner for grammar
source text and a sparse matrix for table storage.

■ report: Package report renders analysis results as text blocks or HTML tables.

■ analyzer: Package analyzer is the entry point for clients. It analyses grammar
text in one go and runs batches of grammar files.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package predict
