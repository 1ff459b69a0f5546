/*
Package fp provides lazy sequences over TeREx expression trees.

Tree walks are driven by an explicit worklist instead of recursion, so the
depth of an expression is not limited by the call stack. Sequences are
non-restartable: once a node has been fetched, the walk moves on.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package fp

import (
	"iter"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/trewrite/terex"
)

// tracer traces with key 'trewrite.terex'.
func tracer() tracing.Trace {
	return tracing.Select("trewrite.terex")
}

// Flags for tree traversal, either depth-first (post-order) or top-down (pre-order).
const (
	DepthFirstDir int = iota
	TopDownDir
)

// A Node is a sub-expression visited during a tree walk.
type Node struct {
	Expr  terex.Expression
	Depth int   // the root has depth 0
	Path  []int // argument positions leading from the root to Expr
}

// PathString renders the path of a node as dot-separated argument positions,
// e.g. "0.1". The root has path ".".
func (n Node) PathString() string {
	if len(n.Path) == 0 {
		return "."
	}
	s := make([]string, len(n.Path))
	for i, p := range n.Path {
		s[i] = strconv.Itoa(p)
	}
	return strings.Join(s, ".")
}

func (n Node) String() string {
	if n.Expr == nil {
		return "<nil>"
	}
	return n.PathString() + " " + n.Expr.String()
}

// --- Trees -----------------------------------------------------------------

// TreeSeq is a type which represents a tree walk as a sequence.
type TreeSeq struct {
	node Node
	seq  TreeGenerator
}

// TreeGenerator is a generator function type to iterate over trees.
type TreeGenerator func() TreeSeq

// Traverse creates a sequence from an expression tree. For TopDownDir, a node
// is visited before its arguments (pre-order); for DepthFirstDir, after them
// (post-order). Arguments are visited left to right.
func Traverse(e terex.Expression, dir int) TreeSeq {
	if e == nil {
		return TreeSeq{}
	}
	w := newWalker(e, dir)
	var T TreeGenerator
	T = func() TreeSeq {
		node, ok := w.next()
		if !ok {
			return TreeSeq{}
		}
		return TreeSeq{node, T}
	}
	return T()
}

// frame is a worklist entry. An application is expanded once: its arguments
// are put onto the worklist. For post-order, the application itself is
// pushed back underneath them.
type frame struct {
	node     Node
	expanded bool
}

type walker struct {
	dir   int
	stack *arraystack.Stack
}

func newWalker(e terex.Expression, dir int) *walker {
	w := &walker{dir: dir, stack: arraystack.New()}
	w.stack.Push(frame{node: Node{Expr: e}})
	return w
}

func (w *walker) next() (Node, bool) {
	for {
		top, ok := w.stack.Pop()
		if !ok {
			return Node{}, false
		}
		f := top.(frame)
		app, isApp := f.node.Expr.(*terex.Application)
		if !isApp || f.expanded {
			return f.node, true
		}
		if w.dir == DepthFirstDir {
			w.stack.Push(frame{node: f.node, expanded: true})
		}
		for i := app.Arity() - 1; i >= 0; i-- {
			w.stack.Push(frame{node: child(f.node, app.Arg(i), i)})
		}
		if w.dir == TopDownDir {
			return f.node, true
		}
	}
}

func child(parent Node, e terex.Expression, pos int) Node {
	path := make([]int, len(parent.Path)+1)
	copy(path, parent.Path)
	path[len(parent.Path)] = pos
	return Node{Expr: e, Depth: parent.Depth + 1, Path: path}
}

// Break stops a traversing sequence.
func (seq *TreeSeq) Break() {
	seq.seq = nil
}

// Done returns true if a traversing sequence is stopped.
func (seq TreeSeq) Done() bool {
	return seq.seq == nil
}

// First returns the first node of a tree traversal.
func (seq TreeSeq) First() (Node, TreeSeq) {
	return seq.node, seq
}

// Next returns the next node of a tree traversal.
func (seq *TreeSeq) Next() Node {
	if seq.Done() {
		return Node{}
	}
	next := seq.seq()
	seq.node, seq.seq = next.node, next.seq
	return seq.node
}

// List returns all the remaining nodes of a tree walk.
func (seq TreeSeq) List() []Node {
	var nodes []Node
	for node, T := seq.First(); !T.Done(); node = T.Next() {
		nodes = append(nodes, node)
	}
	return nodes
}

// All returns the remaining nodes of a tree walk as an iterator.
func (seq TreeSeq) All() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for node, T := seq.First(); !T.Done(); node = T.Next() {
			if !yield(node) {
				return
			}
		}
	}
}

// A NodeFilter filters nodes from a sequence of tree traversal nodes.
type NodeFilter func(node Node) bool

// Where applies a filter to a sequence of tree nodes.
func (seq TreeSeq) Where(filt NodeFilter) TreeSeq {
	inner := seq
	var T TreeGenerator
	T = func() TreeSeq {
		for !inner.Done() {
			node := inner.node
			inner.Next()
			if filt(node) {
				return TreeSeq{node, T}
			}
		}
		return TreeSeq{}
	}
	return T()
}

// NodeMapper is a function returning a node from an input node.
type NodeMapper func(node Node) Node

// Print prints a node to the tracer and returns the input node.
func Print() NodeMapper {
	return func(node Node) Node {
		tracer().Debugf("tree node = %s", node)
		return node
	}
}

// Map applies a mapper to all nodes of a sequence.
func (seq TreeSeq) Map(mapper NodeMapper) TreeSeq {
	inner := seq
	var T TreeGenerator
	T = func() TreeSeq {
		if inner.Done() {
			return TreeSeq{}
		}
		node := mapper(inner.node)
		inner.Next()
		return TreeSeq{node, T}
	}
	return T()
}
