package terexlang

import (
	"errors"
	"fmt"

	"github.com/npillmayer/trewrite"
)

// Error kinds of the TeREx front end. Use errors.Is to test for them.
var (
	ErrUnexpectedCharacter  = errors.New("unexpected character")
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
)

// LexError is returned by the scanner for a character which cannot start
// any token.
type LexError struct {
	Char   rune
	Pos    trewrite.Span
	Line   int
	Column int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s %q at offset %d (line %d:%d)",
		ErrUnexpectedCharacter, e.Char, e.Pos.From(), e.Line, e.Column)
}

// Is lets errors.Is match ErrUnexpectedCharacter.
func (e *LexError) Is(target error) bool {
	return target == ErrUnexpectedCharacter
}

// ParseError is returned by the parser if a required token is missing or
// mismatched. Found is nil if the input ended prematurely.
type ParseError struct {
	Expected string
	Found    *Token
}

func (e *ParseError) Error() string {
	if e.Found == nil {
		return fmt.Sprintf("%s, expected %s", ErrUnexpectedEndOfInput, e.Expected)
	}
	return fmt.Sprintf("%s: expected %s, found %s at offset %d",
		ErrUnexpectedToken, e.Expected, e.Found, e.Found.Pos.From())
}

// Is lets errors.Is match ErrUnexpectedToken or ErrUnexpectedEndOfInput.
func (e *ParseError) Is(target error) bool {
	if e.Found == nil {
		return target == ErrUnexpectedEndOfInput
	}
	return target == ErrUnexpectedToken
}
