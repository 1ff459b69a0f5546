package termr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/trewrite/terex"
	"github.com/npillmayer/trewrite/terex/fp"
)

// Match matches a pattern against an expression. If the match succeeds, it
// returns the bindings for the variables of the pattern. On failure it returns
// (nil, false); partial bindings are never returned.
//
// A pattern symbol binds any value on its first occurence. A repeated
// occurence only matches a value equal to the one already bound. A pattern
// application matches an application with the same name and arity, if all
// arguments match pairwise.
func Match(pattern, value terex.Expression) (terex.Bindings, bool) {
	bindings := make(terex.Bindings)
	if !match(pattern, value, bindings) {
		tracer().Debugf("no match: %s %% %s", pattern, value)
		return nil, false
	}
	tracer().Debugf("match: %s %% %s => %s", pattern, value, bindings)
	return bindings, true
}

// match threads a single set of bindings through the recursion. The first
// binding of a variable wins; there is no backtracking.
func match(pattern, value terex.Expression, bindings terex.Bindings) bool {
	switch p := pattern.(type) {
	case *terex.Symbol:
		if bound, ok := bindings[p.Name()]; ok {
			return terex.Equal(bound, value)
		}
		bindings[p.Name()] = value
		return true
	case *terex.Application:
		v, ok := value.(*terex.Application)
		if !ok || p.Name() != v.Name() || p.Arity() != v.Arity() {
			return false
		}
		for i := 0; i < p.Arity(); i++ {
			if !match(p.Arg(i), v.Arg(i), bindings) {
				return false
			}
		}
		return true
	}
	return false
}

// MatchFilter is a node filter which accepts tree nodes matching a pattern.
func MatchFilter(pattern terex.Expression) fp.NodeFilter {
	return func(node fp.Node) bool {
		_, ok := Match(pattern, node.Expr)
		return ok
	}
}

// FindMatches returns every sub-expression of e matching pattern. dir is
// fp.TopDownDir for outer matches first or fp.DepthFirstDir for inner matches
// first. Found nodes are traced at debug level.
func FindMatches(pattern, e terex.Expression, dir int) []fp.Node {
	return fp.Traverse(e, dir).Where(MatchFilter(pattern)).Map(fp.Print()).List()
}

// Redexes returns every sub-expression of e matching the head of rule, in
// top-down order. This includes redexes nested inside other redexes, which
// ApplyAll will not visit.
func Redexes(rule *terex.Rule, e terex.Expression) []fp.Node {
	return FindMatches(rule.Head, e, fp.TopDownDir)
}
