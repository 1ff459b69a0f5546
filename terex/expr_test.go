package terex

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trewrite.terex")
	defer teardown()
	//
	inputs := []Expression{
		Sym("a"),
		App("f"),
		App("f", Sym("a"), App("g", Sym("b"))),
		App("foo", App("swap", App("pair", App("f", Sym("a")), App("g", Sym("b"))))),
	}
	expected := []string{
		"a",
		"f()",
		"f(a, g(b))",
		"foo(swap(pair(f(a), g(b))))",
	}
	for i, e := range inputs {
		if e.String() != expected[i] {
			t.Errorf("expected #%d to render as %s, is %s", i, expected[i], e.String())
		}
	}
}

func TestEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trewrite.terex")
	defer teardown()
	//
	e1 := App("f", Sym("a"), App("g", Sym("b")))
	e2 := App("f", Sym("a"), App("g", Sym("b")))
	if !Equal(e1, e2) {
		t.Errorf("expected %s to equal %s", e1, e2)
	}
	unequal := []Expression{
		Sym("f"),
		App("f", Sym("a")),
		App("f", Sym("a"), App("g", Sym("c"))),
		App("h", Sym("a"), App("g", Sym("b"))),
		App("f", Sym("a"), Sym("g")),
	}
	for _, e := range unequal {
		if Equal(e1, e) {
			t.Errorf("expected %s to differ from %s", e1, e)
		}
	}
	if !Equal(App("f"), App("f")) {
		t.Errorf("expected f() to equal f()")
	}
	if Equal(App("f"), Sym("f")) {
		t.Errorf("expected application f() to differ from symbol f")
	}
	if Equal(nil, Sym("a")) || !Equal(nil, nil) {
		t.Errorf("nil expressions compare wrongly")
	}
}

func TestArgsAreCopied(t *testing.T) {
	args := []Expression{Sym("a"), Sym("b")}
	e := App("f", args...)
	args[0] = Sym("z")
	if e.Arg(0).Name() != "a" {
		t.Errorf("application changed by modifying constructor input")
	}
	out := e.Args()
	out[1] = Sym("z")
	if e.Arg(1).Name() != "b" {
		t.Errorf("application changed by modifying Args() result")
	}
	if e.Arity() != 2 {
		t.Errorf("expected arity 2, is %d", e.Arity())
	}
}

func TestVarsAndDepth(t *testing.T) {
	e := App("f", Sym("X"), App("g", Sym("Y"), Sym("X")), App("h"))
	vars := Vars(e)
	if len(vars) != 2 || vars[0] != "X" || vars[1] != "Y" {
		t.Errorf("expected vars [X Y], got %v", vars)
	}
	if d := Depth(e); d != 3 {
		t.Errorf("expected depth 3, is %d", d)
	}
	if d := Depth(Sym("a")); d != 1 {
		t.Errorf("expected depth of symbol to be 1, is %d", d)
	}
}

func TestRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trewrite.terex")
	defer teardown()
	//
	r := NewRule(
		App("swap", App("pair", Sym("X"), Sym("Y"))),
		App("pair", Sym("Y"), Sym("X"), Sym("Z")),
	)
	if r.String() != "swap(pair(X, Y)) = pair(Y, X, Z)" {
		t.Errorf("unexpected rule rendering: %s", r)
	}
	d := r.DanglingVars()
	if len(d) != 1 || d[0] != "Z" {
		t.Errorf("expected dangling variable Z, got %v", d)
	}
}

func TestBindingsString(t *testing.T) {
	b := Bindings{
		"Y": App("g", Sym("b")),
		"X": Sym("a"),
	}
	if b.String() != "{X: a, Y: g(b)}" {
		t.Errorf("unexpected bindings rendering: %s", b)
	}
	names := b.Names()
	if len(names) != 2 || names[0] != "X" || names[1] != "Y" {
		t.Errorf("expected names [X Y], got %v", names)
	}
	if (Bindings{}).String() != "{}" {
		t.Errorf("expected empty bindings to render as {}")
	}
	if _, ok := b.Lookup("Z"); ok {
		t.Errorf("Z should not be bound")
	}
}
