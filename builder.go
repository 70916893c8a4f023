package spex

import (
	"github.com/spexcore/spex/ast"
	"github.com/spexcore/spex/automaton"
	"github.com/spexcore/spex/closure"
)

// build walks an ast.Node bottom-up, mapping each node to an Automaton via
// the C3/C4 constructors in packages automaton and closure, per the
// SYSTEM OVERVIEW's "C5 calls C1/C3 constructors" responsibility split.
func build(n ast.Node, limits *closure.Limits) (*automaton.Automaton, error) {
	switch v := n.(type) {
	case *ast.Leaf:
		return automaton.FromCharSet(v.CS), nil

	case *ast.Not:
		x, err := build(v.X, limits)
		if err != nil {
			return nil, err
		}
		return closure.Complement(x), nil

	case *ast.Or:
		left, err := build(v.Left, limits)
		if err != nil {
			return nil, err
		}
		right, err := build(v.Right, limits)
		if err != nil {
			return nil, err
		}
		return closure.Union(left, right, limits)

	case *ast.And:
		left, err := build(v.Left, limits)
		if err != nil {
			return nil, err
		}
		right, err := build(v.Right, limits)
		if err != nil {
			return nil, err
		}
		return closure.Intersect(left, right, limits)

	case *ast.Plus:
		x, err := build(v.X, limits)
		if err != nil {
			return nil, err
		}
		return closure.Plus(x, limits)

	case *ast.Concat:
		if len(v.Nodes) == 0 {
			return automaton.Empty(), nil
		}
		acc, err := build(v.Nodes[0], limits)
		if err != nil {
			return nil, err
		}
		for _, next := range v.Nodes[1:] {
			nm, err := build(next, limits)
			if err != nil {
				return nil, err
			}
			acc, err = closure.Concat(acc, nm, limits)
			if err != nil {
				return nil, err
			}
		}
		return acc, nil

	default:
		panic("spex: unknown ast node type")
	}
}
