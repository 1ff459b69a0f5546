package terexlang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"sync"

	"github.com/npillmayer/trewrite"
	"github.com/npillmayer/trewrite/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// Token categories of the TeREx language.
const (
	SymbolTok trewrite.TokType = iota + 1
	OpenParen
	CloseParen
	Comma
	Equals
)

// KindString returns a readable name for a token category.
func KindString(k trewrite.TokType) string {
	switch k {
	case SymbolTok:
		return "Symbol"
	case OpenParen:
		return "OpenParen"
	case CloseParen:
		return "CloseParen"
	case Comma:
		return "Comma"
	case Equals:
		return "Equals"
	}
	return fmt.Sprintf("TokType(%d)", int(k))
}

var _ trewrite.TokTypeStringer = KindString

// The tokens representing literal one-char lexemes
var literals = []string{"(", ")", ",", "="}

// tokenIds maps token names to their token types
var tokenIds = map[string]int{
	"ID": int(SymbolTok),
	"(":  int(OpenParen),
	")":  int(CloseParen),
	",":  int(Comma),
	"=":  int(Equals),
}

var lexer *lexmach.LMAdapter
var lexerErr error
var initOnce sync.Once // monitors one-time compilation of the lexer DFA

// Lexer returns the lexmachine lexer for TeREx. The DFA is compiled once, on
// first use.
func Lexer() (*lexmach.LMAdapter, error) {
	initOnce.Do(func() {
		tracer().Infof("Creating lexer")
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`[a-zA-Z_][a-zA-Z0-9_]*`), lexmach.MakeToken("ID", tokenIds["ID"]))
			lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
		}
		lexer, lexerErr = lexmach.NewLMAdapter(init, literals, tokenIds)
	})
	return lexer, lexerErr
}

// Token is a lexical unit of the TeREx language, carrying its category and
// the exact source text it was scanned from.
type Token struct {
	Kind trewrite.TokType
	Text string
	Pos  trewrite.Span // byte offsets into the input
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q", KindString(t.Kind), t.Text)
}

// Scanner produces the tokens of one input string. It is lazy and cannot be
// restarted.
type Scanner struct {
	tokenizer *lexmach.LMScanner
}

// Lex creates a scanner for an input string.
func Lex(input string) (*Scanner, error) {
	lm, err := Lexer()
	if err != nil {
		return nil, err
	}
	sc, err := lm.Scanner(input)
	if err != nil {
		return nil, err
	}
	sc.SetErrorHandler(func(e error) {
		tracer().Debugf("lexer stops: %v", e)
	})
	return &Scanner{tokenizer: sc}, nil
}

// Next returns the next token. At the end of input it returns io.EOF. For
// characters which do not belong to the language it returns a *LexError,
// after which the scanner stays at this error.
func (s *Scanner) Next() (Token, error) {
	t, err := s.tokenizer.NextToken()
	if err != nil {
		var ue *lexmach.UnmatchedInputError
		if errors.As(err, &ue) {
			return Token{}, &LexError{
				Char:   ue.Char,
				Pos:    ue.Span,
				Line:   ue.Line,
				Column: ue.Column,
			}
		}
		return Token{}, err
	}
	return Token{Kind: t.TokType(), Text: t.Lexeme(), Pos: t.Span()}, nil
}

// All returns the remaining tokens as a sequence. A lexical error is
// delivered as the final pair of the sequence; io.EOF is not delivered.
func (s *Scanner) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			t, err := s.Next()
			if err == io.EOF {
				return
			}
			if !yield(t, err) || err != nil {
				return
			}
		}
	}
}

// Tokens scans a complete input string and returns all of its tokens.
func Tokens(input string) ([]Token, error) {
	sc, err := Lex(input)
	if err != nil {
		return nil, err
	}
	var toks []Token
	for t, err := range sc.All() {
		if err != nil {
			return toks, err
		}
		toks = append(toks, t)
	}
	return toks, nil
}
