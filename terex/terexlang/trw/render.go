package main

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	asciitree "github.com/thediveo/go-asciitree"
	"golang.org/x/exp/slices"

	"github.com/npillmayer/trewrite/terex"
	"github.com/npillmayer/trewrite/terex/fp"
)

var formats = []string{"text", "tree", "ascii"}

func validFormat(format string) bool {
	return slices.Contains(formats, format)
}

func render(w io.Writer, e terex.Expression, format string) error {
	switch format {
	case "tree":
		s, err := pterm.DefaultTree.WithRoot(leveledTree(e)).Srender()
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, s)
		return err
	case "ascii":
		_, err := fmt.Fprintln(w, asciitree.RenderFancy(asciiTreeFrom(e)))
		return err
	}
	_, err := fmt.Fprintln(w, e.String())
	return err
}

// leveledTree converts an expression into a pterm tree. Tree nodes are
// collected in pre-order, with the depth of a node as its level.
func leveledTree(e terex.Expression) pterm.TreeNode {
	ll := pterm.LeveledList{}
	for node := range fp.Traverse(e, fp.TopDownDir).All() {
		ll = append(ll, pterm.LeveledListItem{
			Level: node.Depth,
			Text:  node.Expr.Name(),
		})
	}
	tracer().Debugf("|ll| = %d", len(ll))
	return pterm.NewTreeFromLeveledList(ll)
}

type asciiNode struct {
	Label    string      `asciitree:"label"`
	Children []asciiNode `asciitree:"children"`
}

func asciiTreeFrom(e terex.Expression) asciiNode {
	node := asciiNode{Label: e.Name()}
	if app, ok := e.(*terex.Application); ok {
		for _, arg := range app.Args() {
			node.Children = append(node.Children, asciiTreeFrom(arg))
		}
	}
	return node
}
