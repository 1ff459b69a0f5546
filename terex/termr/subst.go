package termr

import (
	"errors"
	"fmt"

	"github.com/npillmayer/trewrite/terex"
)

// ErrInvalidSubstitutionTarget is the error kind for a function name bound
// to a non-symbol. Use errors.Is to test for it.
var ErrInvalidSubstitutionTarget = errors.New("invalid substitution target")

// InvalidSubstitutionTargetError is returned if a variable in function name
// position is bound to an application. Function names can only be replaced
// by symbol names.
type InvalidSubstitutionTargetError struct {
	Name  string           // variable in function name position
	Value terex.Expression // the value it is bound to
}

func (e *InvalidSubstitutionTargetError) Error() string {
	return fmt.Sprintf("%s: function name %s is bound to %s, which is not a symbol",
		ErrInvalidSubstitutionTarget, e.Name, e.Value)
}

// Is lets errors.Is match ErrInvalidSubstitutionTarget.
func (e *InvalidSubstitutionTargetError) Is(target error) bool {
	return target == ErrInvalidSubstitutionTarget
}

// Substitute replaces the variables of e by their bindings and returns a new
// expression.
//
// Symbols are replaced by their bound values; unbound symbols are kept.
// The function name of an application is looked up as well: if it is bound
// to a symbol, the application is renamed. Binding it to an application is
// an error.
func Substitute(bindings terex.Bindings, e terex.Expression) (terex.Expression, error) {
	switch x := e.(type) {
	case *terex.Symbol:
		if value, ok := bindings[x.Name()]; ok {
			return value, nil
		}
		return x, nil
	case *terex.Application:
		name := x.Name()
		if value, ok := bindings[name]; ok {
			sym, isSym := value.(*terex.Symbol)
			if !isSym {
				err := &InvalidSubstitutionTargetError{Name: name, Value: value}
				tracer().Errorf("%v", err)
				return nil, err
			}
			name = sym.Name()
		}
		args := make([]terex.Expression, x.Arity())
		for i := range args {
			arg, err := Substitute(bindings, x.Arg(i))
			if err != nil {
				return nil, err
			}
			args[i] = arg
		}
		return terex.App(name, args...), nil
	}
	return e, nil
}
