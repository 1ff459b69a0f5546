/*
Package terexlang provides a lexer and a parser for the textual form of
TeREx expressions and rules.

Expressions are either bare identifiers or applications of an identifier
to a parenthesized, comma-separated list of expressions. A rule is a pattern
and a replacement, separated by '='.

	expr   := Symbol                          // a
	        | Symbol '(' args? ')'            // f(a, g(b))
	args   := expr (',' expr)*
	rule   := expr '=' expr                   // swap(pair(X, Y)) = pair(Y, X)

Identifiers match [A-Za-z_][A-Za-z0-9_]*. Whitespace between tokens is
insignificant. Lexing and parsing stop at the first error; no partial
results are returned.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package terexlang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'trewrite.terex'
func tracer() tracing.Trace {
	return tracing.Select("trewrite.terex")
}
