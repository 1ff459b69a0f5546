/*
Package termr implements term rewriting for TeREx expressions: pattern
matching, substitution of bindings and the application of a rule to an
expression tree.

Matching is purely syntactic and positional. Symbols of a pattern are
variables; a variable occuring more than once has to match equal
sub-expressions at every occurence. Function names of a pattern are compared
literally.

ApplyAll performs exactly one outside-in pass over an expression. It is not
a fixpoint iteration: applying a rule to its own output may expose new
redexes.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package termr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'trewrite.terex'.
func tracer() tracing.Trace {
	return tracing.Select("trewrite.terex")
}
