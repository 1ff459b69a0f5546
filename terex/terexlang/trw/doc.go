/*
Command trw is a command line tool for experiments with TeREx term
rewriting. It scans and parses expressions, matches patterns and applies
rewrite rules.

	trw lex   'f(a, b)'
	trw parse --format tree 'foo(pair(a, b), c)'
	trw match 'pair(X, Y)' 'foo(pair(a, b), pair(c, d))'
	trw match --bottom-up 'swap(X)' 'swap(pair(swap(pair(a, b)), c))'
	trw apply 'pair(X, Y) = pair(Y, X)' 'foo(pair(a, b), c)'
	trw run   swap.yaml

Output of expressions may be formatted as plain text (the default), as a
pterm tree or as an ASCII tree. The global flag --trace sets the trace level
(Debug, Info or Error).

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'trewrite.terex'
func tracer() tracing.Trace {
	return tracing.Select("trewrite.terex")
}
