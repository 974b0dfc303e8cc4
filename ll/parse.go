package ll

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll/scanner"
	"github.com/npillmayer/schuko/gconf"
)

// Parse reads grammar text, one non-terminal per line:
//
//    E -> TX
//    X -> +TX | ε
//    T -> n
//
// Every character of an alternative is a grammar symbol; whitespace is
// ignored. ε on its own denotes the empty alternative. Blank lines are
// skipped, and repeated left-hand sides add alternatives to the non-terminal.
// The non-terminal of the first line is the start symbol.
//
// Parse returns a *MalformedGrammarError for a line which is not of the form
// above, and an *UndefinedSymbolError if a non-terminal is used without
// having rules. Empty input results in an empty grammar.
func Parse(name string, r io.Reader) (*Grammar, error) {
	b := NewGrammarBuilder(name)
	lines := bufio.NewScanner(r)
	lineno := 0
	for lines.Scan() {
		lineno++
		line := lines.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := parseLine(b, name, lineno, line); err != nil {
			tracer().Infof("%v", err)
			return nil, err
		}
	}
	if err := lines.Err(); err != nil {
		return nil, err
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, err
	}
	if gconf.GetBool("predict.dump-grammar") {
		g.Dump()
	}
	return g, nil
}

// ParseString is a shortcut for Parse(name, strings.NewReader(text)).
func ParseString(name, text string) (*Grammar, error) {
	return Parse(name, strings.NewReader(text))
}

// parseLine handles one line A -> α1 | … | αn.
func parseLine(b *GrammarBuilder, name string, lineno int, line string) error {
	malformed := func(tok predict.Token, cause error) error {
		e := &MalformedGrammarError{Source: name, Line: lineno, Err: cause}
		if tok != nil {
			e.Column = tok.Span().Column()
			e.Text = tok.Lexeme()
		} else {
			e.Column = len(line) + 1
		}
		return e
	}
	toks, err := scanner.Tokens(line)
	if err != nil {
		return err
	}
	for _, tok := range toks {
		if tok.TokType() == scanner.Illegal {
			return malformed(tok, ErrIllegalCharacter)
		}
	}
	// left-hand side
	lhs := toks[0]
	if lhs.TokType() != scanner.Symbol || Classify(rune(lhs.Lexeme()[0])) != NonTerminal {
		return malformed(lhs, ErrBadLHS)
	}
	if len(toks) < 2 {
		return malformed(nil, ErrMissingArrow)
	}
	if toks[1].TokType() != scanner.Arrow {
		if toks[1].TokType() == scanner.Symbol {
			return malformed(toks[1], ErrBadLHS)
		}
		return malformed(toks[1], ErrMissingArrow)
	}
	if len(toks) == 2 {
		return malformed(nil, ErrNoAlternative)
	}
	// alternatives
	alts := splitAlternatives(toks[2:])
	for _, alt := range alts {
		if len(alt.symbols) == 0 {
			return malformed(alt.at, ErrEmptyAlternative)
		}
		for _, tok := range alt.symbols {
			if tok.TokType() == scanner.Arrow {
				return malformed(tok, ErrStrayArrow)
			}
		}
	}
	for _, alt := range alts {
		rb := b.LHS(lhs.Lexeme())
		isEps := true
		for _, tok := range alt.symbols {
			if tok.TokType() == scanner.Epsilon {
				continue // ε within a sequence is the identity
			}
			isEps = false
			switch Classify(rune(tok.Lexeme()[0])) {
			case NonTerminal:
				rb.N(tok.Lexeme())
			case Terminal:
				rb.T(tok.Lexeme())
			default:
				return malformed(tok, ErrIllegalCharacter)
			}
		}
		if isEps {
			rb.Epsilon()
		} else {
			rb.End()
		}
	}
	return nil
}

// alternative is a run of tokens between bars. at is the token terminating
// the run (a bar), or nil at end of line.
type alternative struct {
	symbols []predict.Token
	at      predict.Token
}

func splitAlternatives(toks []predict.Token) []alternative {
	var alts []alternative
	var cur alternative
	for _, tok := range toks {
		if tok.TokType() == scanner.Bar {
			cur.at = tok
			alts = append(alts, cur)
			cur = alternative{}
			continue
		}
		cur.symbols = append(cur.symbols, tok)
	}
	return append(alts, cur)
}
