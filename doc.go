/*
Package trewrite is a small term rewriting toolbox.

It represents symbolic expressions as trees of symbols and function
applications, matches a single rewrite rule against such trees and produces
the rewritten tree. Package structure is as follows:

■ terex: Package terex implements the expression trees, rules and bindings.
Sub-packages provide the text front end (terexlang), pattern matching and
rule application (termr) and tree traversals (terex/fp).

■ scanner: Package scanner defines an interface for tokenizers, together with
an adapter for lexmachine.

The base package contains data types which are used throughout all the other packages.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package trewrite
