// Package parselang implements the tokenizer and recursive-descent parser
// for the surface expression language of spec §6.1.
//
// Per spec §1 this component is "out of scope... specified only through
// its interface to the core": Parse's only contract with the rest of the
// module is that it returns an ast.Node built entirely from chex.CharSet
// leaves (package ast) or a *parseerr.ParseError. Grounded in
// original_source/src/parser.rs's tokenize/parse_and_or/parse_invert/
// parse_concat/parse_chex functions, translated from Rust's panic-based
// error signaling to Go's returned-error idiom per spec §7, and — per
// spec §9's explicit callout of the Rust prototype's bug — actually
// wired to parse its argument: original_source/src/builder.rs's spex()
// ignores its input string entirely and always parses the hardcoded
// literal "[^a]|..+"; Parse(expr) here parses the expr it is given.
package parselang

import (
	"github.com/spexcore/spex/ast"
	"github.com/spexcore/spex/chex"
	"github.com/spexcore/spex/parseerr"
)

// Parse tokenizes and parses expr into an AST, per the grammar of spec
// §6.1. It is the single entry point external callers (the top-level spex
// package, the CLI) need.
func Parse(expr string) (ast.Node, error) {
	toks := lex(expr)
	p := &parser{toks: toks}
	node, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, parseerr.New(parseerr.KindUnmatchedParen, p.toks[p.pos].pos, tokText(p.toks[p.pos].kind))
	}
	return node, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) endPos() int {
	if len(p.toks) == 0 {
		return 0
	}
	return p.toks[len(p.toks)-1].pos + 1
}

// expr implements `Expr := Expr ('|'|'&') Expr | '!' Concat | Concat`,
// parsed left-associatively: a leading Invert-or-Concat term followed by
// zero or more (operator, term) pairs folded left to right, since '|' and
// '&' share one precedence level (spec §6.1).
func (p *parser) expr() (ast.Node, error) {
	left, err := p.invert()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || (t.kind != tOr && t.kind != tAnd) {
			return left, nil
		}
		p.pos++
		right, err := p.invert()
		if err != nil {
			return nil, dangleOnEmpty(err, t)
		}
		if t.kind == tOr {
			left = &ast.Or{Left: left, Right: right}
		} else {
			left = &ast.And{Left: left, Right: right}
		}
	}
}

// invert implements `'!' Concat | Concat`.
func (p *parser) invert() (ast.Node, error) {
	if t, ok := p.peek(); ok && t.kind == tInvert {
		p.pos++
		x, err := p.concat()
		if err != nil {
			return nil, dangleOnEmpty(err, t)
		}
		return &ast.Not{X: x}, nil
	}
	return p.concat()
}

// dangleOnEmpty rewraps a KindEmptyExpression error raised by parsing the
// right-hand operand of op as a KindDanglingOperator pointing at op, since
// "operator with nothing after it" is a more precise diagnosis than
// "empty expression" at end of input.
func dangleOnEmpty(err error, op token) error {
	pe, ok := err.(*parseerr.ParseError)
	if !ok || pe.Kind != parseerr.KindEmptyExpression {
		return err
	}
	return parseerr.New(parseerr.KindDanglingOperator, op.pos, tokText(op.kind))
}

// concat implements `Atom (Atom)*`.
func (p *parser) concat() (ast.Node, error) {
	var nodes []ast.Node
	for {
		t, ok := p.peek()
		if !ok || t.kind == tOr || t.kind == tAnd || t.kind == tRParen {
			break
		}
		if t.kind == tInvert {
			return nil, parseerr.New(parseerr.KindUnexpectedToken, t.pos, "!")
		}
		node, err := p.atom()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	if len(nodes) == 0 {
		return nil, p.emptyConcatError()
	}
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	return &ast.Concat{Nodes: nodes}, nil
}

func (p *parser) emptyConcatError() error {
	t, ok := p.peek()
	switch {
	case !ok:
		return parseerr.New(parseerr.KindEmptyExpression, p.endPos(), "")
	case t.kind == tRParen:
		return parseerr.New(parseerr.KindUnmatchedParen, t.pos, ")")
	case t.kind == tOr || t.kind == tAnd:
		return parseerr.New(parseerr.KindDanglingOperator, t.pos, tokText(t.kind))
	case t.kind == tRepeat:
		return parseerr.New(parseerr.KindDanglingOperator, t.pos, "+")
	default:
		return parseerr.New(parseerr.KindEmptyExpression, t.pos, "")
	}
}

// atom implements `Atom '+' | '(' Expr ')' | '[' '^'? Chars ']' | '.' | char`.
func (p *parser) atom() (ast.Node, error) {
	node, err := p.atomPrimary()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind != tRepeat {
			return node, nil
		}
		p.pos++
		node = &ast.Plus{X: node}
	}
}

func (p *parser) atomPrimary() (ast.Node, error) {
	t, ok := p.peek()
	if !ok {
		return nil, parseerr.New(parseerr.KindEmptyExpression, p.endPos(), "")
	}

	switch t.kind {
	case tLParen:
		p.pos++
		if next, ok := p.peek(); ok && next.kind == tRParen {
			return nil, parseerr.New(parseerr.KindEmptyExpression, next.pos, "")
		}
		node, err := p.expr()
		if err != nil {
			return nil, err
		}
		close, ok := p.peek()
		if !ok || close.kind != tRParen {
			return nil, parseerr.New(parseerr.KindUnmatchedParen, t.pos, "(")
		}
		p.pos++
		return node, nil

	case tRParen:
		return nil, parseerr.New(parseerr.KindUnmatchedParen, t.pos, ")")

	case tLBracket:
		p.pos++
		return p.charClass(t.pos)

	case tRBracket:
		return nil, parseerr.New(parseerr.KindUnmatchedBracket, t.pos, "]")

	case tDot:
		p.pos++
		return &ast.Leaf{CS: chex.Universe()}, nil

	case tCaret:
		return nil, parseerr.New(parseerr.KindUnexpectedToken, t.pos, "^")

	case tRepeat:
		return nil, parseerr.New(parseerr.KindDanglingOperator, t.pos, "+")

	case tOr, tAnd:
		return nil, parseerr.New(parseerr.KindDanglingOperator, t.pos, tokText(t.kind))

	case tInvert:
		return nil, parseerr.New(parseerr.KindUnexpectedToken, t.pos, "!")

	default: // tChar
		p.pos++
		return &ast.Leaf{CS: chex.Single([]rune{t.ch}, chex.Include)}, nil
	}
}

// charClass implements `'^'? Chars ']'` assuming the opening '[' has
// already been consumed (startPos is its position, for error reporting).
// A literal '.' anywhere in Chars upgrades the whole class to the universe
// (or its complement, if negated), per spec §6.1, "regardless of other
// characters listed."
func (p *parser) charClass(startPos int) (ast.Node, error) {
	polarity := chex.Include
	if t, ok := p.peek(); ok && t.kind == tCaret {
		polarity = chex.Exclude
		p.pos++
	}

	var runes []rune
	sawDot := false
	for {
		t, ok := p.peek()
		if !ok {
			return nil, parseerr.New(parseerr.KindUnmatchedBracket, startPos, "[")
		}
		if t.kind == tRBracket {
			p.pos++
			break
		}
		if t.kind == tDot {
			sawDot = true
			p.pos++
			continue
		}
		if t.kind == tChar {
			runes = append(runes, t.ch)
			p.pos++
			continue
		}
		// Any other metacharacter appearing unescaped inside a bracket
		// expression stands for itself (classic bracket-expression
		// convention; spec §6.1's Chars production admits any char here).
		runes = append(runes, tokRune(t.kind))
		p.pos++
	}

	if sawDot {
		if polarity == chex.Include {
			return &ast.Leaf{CS: chex.Universe()}, nil
		}
		return &ast.Leaf{CS: chex.Complement(chex.Universe())}, nil
	}
	return &ast.Leaf{CS: chex.Single(runes, polarity)}, nil
}
