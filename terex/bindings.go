package terex

import (
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
)

// Bindings map variable names to the expressions they have been bound to.
// A fresh set of bindings is created for every match attempt.
type Bindings map[string]Expression

// Lookup returns the expression bound to name, if any.
func (b Bindings) Lookup(name string) (Expression, bool) {
	e, ok := b[name]
	return e, ok
}

// Names returns the bound variable names in lexical order.
func (b Bindings) Names() []string {
	names := make([]string, 0, len(b))
	it := b.sorted().Iterator()
	for it.Next() {
		names = append(names, it.Key().(string))
	}
	return names
}

// String renders bindings as `{X: a, Y: f(b)}`, ordered by variable name.
func (b Bindings) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	it := b.sorted().Iterator()
	first := true
	for it.Next() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(it.Key().(string))
		sb.WriteString(": ")
		sb.WriteString(it.Value().(Expression).String())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (b Bindings) sorted() *treemap.Map {
	m := treemap.NewWithStringComparator()
	for k, v := range b {
		m.Put(k, v)
	}
	return m
}
