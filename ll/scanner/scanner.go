/*
Package scanner tokenizes lines of grammar source text.

A grammar line has the form

    E -> TX | ε

and is split into symbols, arrows, bars and epsilons. Whitespace is skipped.
The scanner is backed by a lexmachine DFA, which is compiled once and shared
by all tokenizers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"sync"
	"text/scanner"
	"unicode/utf8"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'predict.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("predict.scanner")
}

// Token categories for grammar source. EOF is identical to text/scanner.EOF.
const (
	EOF     predict.TokType = scanner.EOF
	Illegal predict.TokType = iota
	Arrow                   // ->
	Bar                     // |
	Epsilon                 // ε
	Symbol                  // a single grammar symbol
)

// TokenName returns a readable name for a token category.
func TokenName(t predict.TokType) string {
	switch t {
	case EOF:
		return "EOF"
	case Illegal:
		return "illegal"
	case Arrow:
		return "'->'"
	case Bar:
		return "'|'"
	case Epsilon:
		return "'ε'"
	case Symbol:
		return "symbol"
	}
	return fmt.Sprintf("<token %d>", t)
}

// --- lexmachine DFA --------------------------------------------------------

var (
	lexer      *lexmachine.Lexer
	lexerErr   error
	compileDFA sync.Once
)

// Lexer returns the compiled lexmachine lexer for grammar lines.
// Compilation happens once; the lexer is read-only afterwards.
func Lexer() (*lexmachine.Lexer, error) {
	compileDFA.Do(func() {
		lx := lexmachine.NewLexer()
		lx.Add([]byte("( |\t|\r|\n)+"), skip)
		lx.Add([]byte(`\-\>`), makeToken(Arrow))
		lx.Add([]byte(`\|`), makeToken(Bar))
		lx.Add([]byte("ε"), makeToken(Epsilon))
		lx.Add([]byte(`[!-{}~]`), makeToken(Symbol))
		if err := lx.Compile(); err != nil {
			tracer().Errorf("error compiling DFA: %v", err)
			lexerErr = err
			return
		}
		lexer = lx
	})
	return lexer, lexerErr
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(typ predict.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}

// --- Line tokenizer --------------------------------------------------------

// LineTokenizer splits one line of grammar source into tokens. Create one
// with NewLineTokenizer.
//
// After the first illegal token the tokenizer stops and reports EOF.
type LineTokenizer struct {
	input   []byte
	scanner *lexmachine.Scanner
	Error   func(error) // error handler
	done    bool
}

// Default error reporting function for tokenizers
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NewLineTokenizer creates a tokenizer for a line of grammar text.
func NewLineTokenizer(line string) (*LineTokenizer, error) {
	lx, err := Lexer()
	if err != nil {
		return nil, err
	}
	input := []byte(line)
	s, err := lx.Scanner(input)
	if err != nil {
		return nil, err
	}
	return &LineTokenizer{input: input, scanner: s, Error: logError}, nil
}

// SetErrorHandler sets an error handler for the tokenizer.
func (lt *LineTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		lt.Error = logError
		return
	}
	lt.Error = h
}

// NextToken returns the next token of the line.
func (lt *LineTokenizer) NextToken() predict.Token {
	if lt.done {
		return eofToken(len(lt.input))
	}
	tok, err, eof := lt.scanner.Next()
	if err != nil {
		lt.done = true
		lt.Error(err)
		pos := len(lt.input)
		if ui, ok := err.(*machines.UnconsumedInput); ok {
			pos = ui.StartTC
		}
		return illegalToken(lt.input, pos)
	}
	if eof {
		lt.done = true
		return eofToken(len(lt.input))
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %s %q @%d", TokenName(predict.TokType(token.Type)), token.Lexeme, token.TC)
	return Token{
		kind:   predict.TokType(token.Type),
		lexeme: string(token.Lexeme),
		span:   predict.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	}
}

// Tokens collects all tokens of a line, excluding the final EOF.
func Tokens(line string) ([]predict.Token, error) {
	lt, err := NewLineTokenizer(line)
	if err != nil {
		return nil, err
	}
	lt.SetErrorHandler(func(error) {}) // illegal tokens are returned to the caller
	var toks []predict.Token
	for tok := lt.NextToken(); tok.TokType() != EOF; tok = lt.NextToken() {
		toks = append(toks, tok)
	}
	return toks, nil
}

func eofToken(pos int) Token {
	return Token{kind: EOF, span: predict.Span{uint64(pos), uint64(pos)}}
}

func illegalToken(input []byte, pos int) Token {
	if pos < 0 || pos > len(input) {
		pos = len(input)
	}
	r, size := utf8.DecodeRune(input[pos:])
	lexeme := string(r)
	if size == 0 {
		lexeme = ""
	}
	return Token{
		kind:   Illegal,
		lexeme: lexeme,
		span:   predict.Span{uint64(pos), uint64(pos + size)},
	}
}

// --- Tokens ----------------------------------------------------------------

// Token is the token type produced by line tokenizers.
type Token struct {
	kind   predict.TokType
	lexeme string
	span   predict.Span
}

var _ predict.Token = Token{}

// TokType is part of interface predict.Token.
func (t Token) TokType() predict.TokType {
	return t.kind
}

// Lexeme is part of interface predict.Token.
func (t Token) Lexeme() string {
	return t.lexeme
}

// Span is part of interface predict.Token.
func (t Token) Span() predict.Span {
	return t.span
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q%v", TokenName(t.kind), t.lexeme, t.span)
}
