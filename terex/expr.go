package terex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Expression is a symbolic expression tree. It is a closed union type: the
// only implementations are *Symbol and *Application. Clients distinguish
// them with a type switch.
type Expression interface {
	Name() string   // name of the symbol or of the applied function
	String() string // canonical textual form
	isExpression()
}

// Symbol is an atomic identifier.
type Symbol struct {
	name string
}

// Application is a named function applied to an ordered sequence of arguments.
type Application struct {
	name string
	args []Expression
}

var _ Expression = (*Symbol)(nil)
var _ Expression = (*Application)(nil)

// Sym creates a symbol.
func Sym(name string) *Symbol {
	return &Symbol{name: name}
}

// App creates an application of function name to args. The argument slice
// is copied, therefore callers may re-use it.
func App(name string, args ...Expression) *Application {
	a := &Application{name: name}
	if len(args) > 0 {
		a.args = make([]Expression, len(args))
		copy(a.args, args)
	}
	return a
}

// Name returns the identifier of a symbol.
func (s *Symbol) Name() string {
	return s.name
}

func (s *Symbol) String() string {
	return s.name
}

func (s *Symbol) isExpression() {}

// Name returns the function name of an application.
func (a *Application) Name() string {
	return a.name
}

// Arity returns the number of arguments.
func (a *Application) Arity() int {
	return len(a.args)
}

// Arg returns argument number i, counting from 0.
func (a *Application) Arg(i int) Expression {
	return a.args[i]
}

// Args returns a copy of the argument list.
func (a *Application) Args() []Expression {
	return slices.Clone(a.args)
}

// String returns the canonical form `name(arg0, arg1, …)`. An application
// without arguments is rendered as `name()`.
func (a *Application) String() string {
	var b strings.Builder
	writeExpression(&b, a)
	return b.String()
}

func (a *Application) isExpression() {}

func writeExpression(b *strings.Builder, e Expression) {
	switch x := e.(type) {
	case *Symbol:
		b.WriteString(x.name)
	case *Application:
		b.WriteString(x.name)
		b.WriteByte('(')
		for i, arg := range x.args {
			if i > 0 {
				b.WriteString(", ")
			}
			writeExpression(b, arg)
		}
		b.WriteByte(')')
	}
}

// Equal compares two expressions structurally: both have to be of the same
// kind with the same name and, for applications, pairwise equal arguments.
// A nil expression is only equal to nil.
func Equal(e1, e2 Expression) bool {
	if e1 == nil || e2 == nil {
		return e1 == nil && e2 == nil
	}
	switch x := e1.(type) {
	case *Symbol:
		y, ok := e2.(*Symbol)
		return ok && x.name == y.name
	case *Application:
		y, ok := e2.(*Application)
		return ok && x.name == y.name && slices.EqualFunc(x.args, y.args, Equal)
	}
	return false
}

// Vars returns the distinct symbol names occuring in e, in order of first
// occurence (left to right, depth first). Function names are not included.
func Vars(e Expression) []string {
	var names []string
	seen := make(map[string]struct{})
	var collect func(Expression)
	collect = func(e Expression) {
		switch x := e.(type) {
		case *Symbol:
			if _, ok := seen[x.name]; !ok {
				seen[x.name] = struct{}{}
				names = append(names, x.name)
			}
		case *Application:
			for _, arg := range x.args {
				collect(arg)
			}
		}
	}
	collect(e)
	return names
}

// Depth returns the height of an expression tree. Symbols and applications
// without arguments have depth 1.
func Depth(e Expression) int {
	a, ok := e.(*Application)
	if !ok {
		return 1
	}
	d := 0
	for _, arg := range a.args {
		if da := Depth(arg); da > d {
			d = da
		}
	}
	return d + 1
}
