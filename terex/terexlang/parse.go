package terexlang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"io"

	"github.com/npillmayer/trewrite"
	"github.com/npillmayer/trewrite/terex"
)

// --- Grammar ---------------------------------------------------------------

// Expr       ::=  Symbol                     // a
// Expr       ::=  Symbol '(' Args? ')'       // f(a, g(b))
// Args       ::=  Expr ( ',' Expr )*
// Rule       ::=  Expr '=' Expr
//
// An identifier directly followed by '(' starts an application, otherwise
// it is a bare symbol. This is the only decision the parser has to make.

// Parser is a recursive descent parser for TeREx expressions and rules. It
// reads tokens from a Scanner with one token of lookahead.
type Parser struct {
	scan  *Scanner
	la    Token // lookahead token
	laErr error // io.EOF at end of input, or a lexical error
}

// NewParser creates a parser for an input string.
func NewParser(input string) (*Parser, error) {
	scan, err := Lex(input)
	if err != nil {
		return nil, err
	}
	p := &Parser{scan: scan}
	p.advance()
	return p, nil
}

// ParseExpression parses a complete input string as a single expression.
func ParseExpression(input string) (terex.Expression, error) {
	p, err := NewParser(input)
	if err != nil {
		return nil, err
	}
	e, err := p.Expression()
	if err != nil {
		return nil, err
	}
	if err = p.End(); err != nil {
		return nil, err
	}
	tracer().Debugf("parsed expression %s", e)
	return e, nil
}

// ParseRule parses a complete input string as a rule `pattern = body`.
func ParseRule(input string) (*terex.Rule, error) {
	p, err := NewParser(input)
	if err != nil {
		return nil, err
	}
	r, err := p.Rule()
	if err != nil {
		return nil, err
	}
	if err = p.End(); err != nil {
		return nil, err
	}
	tracer().Debugf("parsed rule %s", r)
	return r, nil
}

// Expression parses the next expression from the input.
func (p *Parser) Expression() (terex.Expression, error) {
	name, err := p.expect(SymbolTok, "identifier")
	if err != nil {
		return nil, err
	}
	if p.laErr != nil || p.la.Kind != OpenParen {
		if p.laErr != nil && p.laErr != io.EOF {
			return nil, p.laErr
		}
		return terex.Sym(name.Text), nil
	}
	p.advance() // consume '('
	args, err := p.arguments()
	if err != nil {
		return nil, err
	}
	return terex.App(name.Text, args...), nil
}

// arguments parses `Args? ')'`, with the opening parenthesis already consumed.
func (p *Parser) arguments() ([]terex.Expression, error) {
	var args []terex.Expression
	if p.laErr == nil && p.la.Kind == CloseParen {
		p.advance()
		return args, nil
	}
	for {
		arg, err := p.Expression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.laErr == nil && p.la.Kind == Comma {
			p.advance()
			continue
		}
		if _, err = p.expect(CloseParen, "',' or ')'"); err != nil {
			return nil, err
		}
		return args, nil
	}
}

// Rule parses a rule `pattern = body` from the input.
func (p *Parser) Rule() (*terex.Rule, error) {
	head, err := p.Expression()
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(Equals, "'='"); err != nil {
		return nil, err
	}
	body, err := p.Expression()
	if err != nil {
		return nil, err
	}
	return terex.NewRule(head, body), nil
}

// End checks that the input is exhausted.
func (p *Parser) End() error {
	if p.laErr == io.EOF {
		return nil
	}
	if p.laErr != nil {
		return p.laErr
	}
	return p.mismatch("end of input")
}

// --- Helpers ---------------------------------------------------------------

func (p *Parser) advance() {
	p.la, p.laErr = p.scan.Next()
}

// expect consumes the lookahead token if it is of category kind.
func (p *Parser) expect(kind trewrite.TokType, expected string) (Token, error) {
	if p.laErr == io.EOF {
		tracer().Debugf("input ended, expected %s", expected)
		return Token{}, &ParseError{Expected: expected}
	} else if p.laErr != nil {
		return Token{}, p.laErr
	}
	if p.la.Kind != kind {
		return Token{}, p.mismatch(expected)
	}
	t := p.la
	p.advance()
	return t, nil
}

func (p *Parser) mismatch(expected string) error {
	found := p.la
	tracer().Debugf("expected %s, found %s", expected, found)
	return &ParseError{Expected: expected, Found: &found}
}
