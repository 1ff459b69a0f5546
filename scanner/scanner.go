/*
Package scanner defines an interface for scanners to be used with the parsers
of this module.

A default scanner implementation is provided as an adapter for lexmachine,
living in sub-package `lexmach`.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/trewrite"
)

// tracer traces with key 'trewrite.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("trewrite.scanner")
}

// Tokenizer is a scanner interface.
//
// NextToken returns io.EOF after the last token has been delivered. There is
// no sentinel token for the end of input. After any other error, a tokenizer
// is exhausted and will return the same error on every subsequent call.
type Tokenizer interface {
	NextToken() (trewrite.Token, error)
	SetErrorHandler(func(error))
}

// LogError is the default error reporting function for scanners.
func LogError(e error) {
	tracer().Errorf("scanner error: %s", e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// LexMachine scanner.
type DefaultToken struct {
	kind   trewrite.TokType
	lexeme string
	span   trewrite.Span
}

var _ trewrite.Token = DefaultToken{}

// MakeDefaultToken creates a token from its parts.
func MakeDefaultToken(typ trewrite.TokType, lexeme string, span trewrite.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() trewrite.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() trewrite.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%d:%q@%s", t.kind, t.lexeme, t.span)
}
