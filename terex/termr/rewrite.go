package termr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/trewrite/terex"
)

// Rewriter is a function
//
//	expr ↦ expr
//
// i.e., a term rewriting function.
type Rewriter func(terex.Expression) (terex.Expression, error)

// RewriteWith returns a rewriter applying rule with ApplyAll. Body variables
// of rule which the head does not bind are traced once, when the rewriter is
// created.
func RewriteWith(rule *terex.Rule) Rewriter {
	traceDangling(rule)
	return func(e terex.Expression) (terex.Expression, error) {
		return ApplyAll(rule, e)
	}
}

// ApplyAll rewrites e with rule in a single top-down pass.
//
// If the head of rule matches e, the result is the body of rule with the
// bindings substituted; the replacement is not visited again. Otherwise a
// symbol is returned unchanged and an application is rebuilt with the same
// name from its rewritten arguments, left to right.
//
// The only error is an *InvalidSubstitutionTargetError, which distinguishes a
// malformed rule from a rule which did not apply.
func ApplyAll(rule *terex.Rule, e terex.Expression) (terex.Expression, error) {
	result, err := applyAll(rule, e)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("%s => %s", e, result)
	return result, nil
}

// traceDangling reports body variables of rule which stay unsubstituted.
// They are not an error.
func traceDangling(rule *terex.Rule) []string {
	dangling := rule.DanglingVars()
	if len(dangling) > 0 {
		tracer().Infof("rule %s: body variables %v are not bound by the head", rule, dangling)
	}
	return dangling
}

func applyAll(rule *terex.Rule, e terex.Expression) (terex.Expression, error) {
	if bindings, ok := Match(rule.Head, e); ok {
		return Substitute(bindings, rule.Body)
	}
	app, ok := e.(*terex.Application)
	if !ok {
		return e, nil
	}
	args := make([]terex.Expression, app.Arity())
	for i := range args {
		arg, err := applyAll(rule, app.Arg(i))
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}
	return terex.App(app.Name(), args...), nil
}
