/*
Package terex provides term rewriting expressions (TeREx). It implements
types for symbolic expressions, which are trees built from two kinds of nodes:

■ Symbol: an atomic identifier, e.g. `a`

■ Application: a named function or constructor applied to an ordered sequence
of zero or more expressions, e.g. `pair(a, f(b))`

Expressions are immutable values. Once constructed, a tree is never changed in
place; every transformation (substitution, rewriting) creates a new tree.
Equality of expressions is structural.

A Rule pairs a head (a pattern) with a body (a replacement template). Symbols
in a pattern act as variables; Bindings map variable names to the
sub-expressions they matched. Matching and rule application live in
sub-package termr, the textual front end in sub-package terexlang.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package terex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'trewrite.terex'.
func tracer() tracing.Trace {
	return tracing.Select("trewrite.terex")
}
