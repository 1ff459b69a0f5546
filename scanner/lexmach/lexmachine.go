package lexmach

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/trewrite"
	"github.com/npillmayer/trewrite/scanner"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'trewrite.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("trewrite.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('(', ',', …) and a map for translating token strings to their
// values. Every other token has to be set up by init.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: scanner.LogError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
	err     error // sticky: once set, the scanner is exhausted
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner. The handler is
// informed about an error before it is returned from NextToken.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = scanner.LogError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface.
//
// Scanning is a single pass. Input which is not accepted by any pattern
// results in an *UnmatchedInputError, after which the scanner is done.
func (lms *LMScanner) NextToken() (trewrite.Token, error) {
	if lms.err != nil {
		return nil, lms.err
	}
	if lms.scanner == nil {
		lms.err = io.EOF
		return nil, lms.err
	}
	tok, err, eof := lms.scanner.Next()
	if err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			err = unmatched(ui)
		}
		lms.err = err
		lms.Error(err)
		return nil, err
	}
	if eof {
		lms.err = io.EOF
		return nil, io.EOF
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	from := uint64(token.TC)
	return scanner.MakeDefaultToken(
		trewrite.TokType(token.Type),
		string(token.Lexeme),
		trewrite.Span{from, from + uint64(len(token.Lexeme))},
	), nil
}

// ---------------------------------------------------------------------------

// UnmatchedInputError is returned by a scanner if no pattern accepts the input
// at a position. Char is the first character which could not be consumed.
type UnmatchedInputError struct {
	Char   rune
	Span   trewrite.Span // byte offsets of Char
	Line   int
	Column int
}

func (e *UnmatchedInputError) Error() string {
	return fmt.Sprintf("unexpected character %q at line %d:%d", e.Char, e.Line, e.Column)
}

func unmatched(ui *machines.UnconsumedInput) *UnmatchedInputError {
	r, size := utf8.RuneError, 0
	if ui.StartTC < len(ui.Text) {
		r, size = utf8.DecodeRune(ui.Text[ui.StartTC:])
	}
	from := uint64(ui.StartTC)
	return &UnmatchedInputError{
		Char:   r,
		Span:   trewrite.Span{from, from + uint64(size)},
		Line:   ui.StartLine,
		Column: ui.StartColumn,
	}
}

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
