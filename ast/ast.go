// Package ast defines the abstract syntax tree produced by package
// parselang, per spec §4 component C5 and the GLOSSARY's "builder walks
// AST bottom-up, mapping each node to a DFA via C3/C4 constructors."
//
// Unlike the Rust prototype in original_source/src/parser.rs (which keeps
// separate IncChex/ExcChex node kinds carrying raw token lists), every leaf
// node here already carries a resolved chex.CharSet: the parser is the only
// place that needs to know about escape handling, character-class syntax,
// or the '.'-inside-a-class universe upgrade (spec §6.1), so it resolves
// all of that down to the C1 algebra immediately. The builder in package
// spex then has nothing left to do but walk the tree and call C3/C4
// constructors, matching the responsibility split in the SYSTEM OVERVIEW
// table (C5 "calls C1/C3 constructors").
package ast

import "github.com/spexcore/spex/chex"

// Node is any node of the expression AST.
type Node interface {
	node()
}

// Leaf is a single-character class: a literal char, '.', or a bracketed
// character class, all resolved to a CharSet by the parser.
type Leaf struct {
	CS chex.CharSet
}

// Or is A | B (union).
type Or struct{ Left, Right Node }

// And is A & B (intersection).
type And struct{ Left, Right Node }

// Not is !A (complement). The grammar only allows it prefixing a Concat.
type Not struct{ X Node }

// Plus is A+ (one-or-more repetition).
type Plus struct{ X Node }

// Concat is the juxtaposition of two or more atoms.
type Concat struct{ Nodes []Node }

func (*Leaf) node()   {}
func (*Or) node()     {}
func (*And) node()    {}
func (*Not) node()    {}
func (*Plus) node()   {}
func (*Concat) node() {}
