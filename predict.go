package predict

import "fmt"

// --- Tokens of grammar source text -----------------------------------------

// TokType is a category type for a Token. Scanners define the constants for
// their token categories.
type TokType int

// Token represents a lexical unit of grammar source text, e.g. an arrow
// between left-hand side and alternatives, or a single grammar symbol.
//
//    TokType = Symbol      // category of the token (scanner specific)
//    Lexeme  = "+"         // how it appeared in the input line
//    Span    = 7…8         // byte positions within the input line
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. A span denotes a
// start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// Column returns the 1-based column of the start of the span.
func (s Span) Column() int {
	return int(s[0]) + 1
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
