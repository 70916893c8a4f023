package parselang

import (
	"errors"
	"testing"

	"github.com/spexcore/spex/ast"
	"github.com/spexcore/spex/parseerr"
)

func TestParseLiteralChar(t *testing.T) {
	n, err := Parse("a")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	leaf, ok := n.(*ast.Leaf)
	if !ok {
		t.Fatalf("got %T, want *ast.Leaf", n)
	}
	if !leaf.CS.Matches('a') || leaf.CS.Matches('b') {
		t.Errorf("leaf charset wrong: %s", leaf.CS)
	}
}

func TestParseConcat(t *testing.T) {
	n, err := Parse("ab")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	c, ok := n.(*ast.Concat)
	if !ok {
		t.Fatalf("got %T, want *ast.Concat", n)
	}
	if len(c.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(c.Nodes))
	}
}

func TestParseOrAndAssociateLeft(t *testing.T) {
	n, err := Parse("a|b|c")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	top, ok := n.(*ast.Or)
	if !ok {
		t.Fatalf("got %T, want *ast.Or", n)
	}
	// Left-associative: (a|b)|c, so top.Left is itself an Or, top.Right a Leaf.
	if _, ok := top.Left.(*ast.Or); !ok {
		t.Errorf("expected left-associative tree, Left = %T", top.Left)
	}
	if _, ok := top.Right.(*ast.Leaf); !ok {
		t.Errorf("expected Right to be a Leaf, got %T", top.Right)
	}
}

func TestParseAndBindsSamePrecedenceAsOr(t *testing.T) {
	n, err := Parse("a|b&c")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// Same precedence, left-to-right: (a|b)&c.
	top, ok := n.(*ast.And)
	if !ok {
		t.Fatalf("got %T, want *ast.And", n)
	}
	if _, ok := top.Left.(*ast.Or); !ok {
		t.Errorf("expected Left to be Or, got %T", top.Left)
	}
}

func TestParseNot(t *testing.T) {
	n, err := Parse("!a")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := n.(*ast.Not); !ok {
		t.Fatalf("got %T, want *ast.Not", n)
	}
}

func TestParsePlus(t *testing.T) {
	n, err := Parse("a+")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := n.(*ast.Plus); !ok {
		t.Fatalf("got %T, want *ast.Plus", n)
	}
}

func TestParseParenGroup(t *testing.T) {
	n, err := Parse("(a|b)+")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p, ok := n.(*ast.Plus)
	if !ok {
		t.Fatalf("got %T, want *ast.Plus", n)
	}
	if _, ok := p.X.(*ast.Or); !ok {
		t.Errorf("expected grouped Or underneath Plus, got %T", p.X)
	}
}

func TestParseDotIsUniverse(t *testing.T) {
	n, err := Parse(".")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	leaf := n.(*ast.Leaf)
	if !leaf.CS.IsUniversal() {
		t.Errorf("'.' should be the universe charset, got %s", leaf.CS)
	}
}

func TestParseCharClassInclude(t *testing.T) {
	n, err := Parse("[abc]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	leaf := n.(*ast.Leaf)
	if !leaf.CS.Matches('a') || !leaf.CS.Matches('b') || !leaf.CS.Matches('c') || leaf.CS.Matches('d') {
		t.Errorf("unexpected charset: %s", leaf.CS)
	}
}

func TestParseCharClassNegated(t *testing.T) {
	n, err := Parse("[^abc]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	leaf := n.(*ast.Leaf)
	if leaf.CS.Matches('a') || !leaf.CS.Matches('d') {
		t.Errorf("unexpected charset: %s", leaf.CS)
	}
}

func TestParseCharClassWithDotUpgradesToUniverse(t *testing.T) {
	n, err := Parse("[a.]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	leaf := n.(*ast.Leaf)
	if !leaf.CS.IsUniversal() {
		t.Errorf("a class containing '.' should upgrade to the universe, got %s", leaf.CS)
	}
}

func TestParseCharClassMetacharLiteralInsideBrackets(t *testing.T) {
	n, err := Parse("[(+]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	leaf := n.(*ast.Leaf)
	if !leaf.CS.Matches('(') || !leaf.CS.Matches('+') {
		t.Errorf("metacharacters inside brackets should stand for themselves: %s", leaf.CS)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
		kind parseerr.Kind
	}{
		{"empty expression", "", parseerr.KindEmptyExpression},
		{"unmatched open paren", "(a", parseerr.KindUnmatchedParen},
		{"unmatched close paren", "a)", parseerr.KindUnmatchedParen},
		{"unmatched open bracket", "[ab", parseerr.KindUnmatchedBracket},
		{"unmatched close bracket", "ab]", parseerr.KindUnmatchedBracket},
		{"leading or", "|a", parseerr.KindDanglingOperator},
		{"leading and", "&a", parseerr.KindDanglingOperator},
		{"trailing or", "a|", parseerr.KindDanglingOperator},
		{"leading plus", "+a", parseerr.KindDanglingOperator},
		{"bare caret outside class", "^a", parseerr.KindUnexpectedToken},
		{"empty group", "()", parseerr.KindEmptyExpression},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.expr)
			if err == nil {
				t.Fatalf("Parse(%q) expected an error", tt.expr)
			}
			var pe *parseerr.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse(%q) error is %T, want *parseerr.ParseError", tt.expr, err)
			}
			if pe.Kind != tt.kind {
				t.Errorf("Parse(%q) kind = %v, want %v", tt.expr, pe.Kind, tt.kind)
			}
		})
	}
}
