// Package spex compiles expressions of the surface language (spec §6.1)
// into Set values: string sets closed under union, intersection, and
// complement, backed by the CharSet-labeled automata of packages chex,
// automaton, and closure.
//
// Grounded in the teacher's top-level Compile/MustCompile/Regex API shape
// (regex.go): a package-level Compile returning (*Set, error), a
// MustCompile panicking wrapper for tests and package-level var init, and
// a Config struct with a DefaultConfig constructor for anything beyond the
// zero value.
package spex

import (
	"fmt"

	"github.com/spexcore/spex/automaton"
	"github.com/spexcore/spex/closure"
	"github.com/spexcore/spex/mermaid"
	"github.com/spexcore/spex/parselang"
)

// Config controls limits applied during compilation and during the
// Boolean operations on compiled Sets, per spec §5's optional step/state
// budget.
type Config struct {
	// MaxStates caps the number of composite states any single closure
	// construction (union, intersect, concat, plus, or a containment
	// check's internal complement+intersect) may create. Zero means
	// DefaultMaxStates.
	MaxStates int
}

// DefaultConfig returns the Config used by Compile and MustCompile.
func DefaultConfig() Config {
	return Config{MaxStates: closure.DefaultMaxStates}
}

func (c Config) limits() *closure.Limits {
	return &closure.Limits{MaxStates: c.MaxStates}
}

// Set is a compiled string set: an expression from package parselang's
// grammar, reduced to a deterministic, total CharSet-labeled automaton.
// Set values are immutable and safe for concurrent use.
type Set struct {
	expr string
	a    *automaton.Automaton
	cfg  Config
}

// Compile parses and builds expr into a Set, per spec §1's "[MODULE]
// C5 Surface syntax (out of scope) ... AST, fed to C3/C4 constructors."
func Compile(expr string) (*Set, error) {
	return CompileConfig(expr, DefaultConfig())
}

// CompileConfig is Compile with an explicit Config.
func CompileConfig(expr string, cfg Config) (*Set, error) {
	node, err := parselang.Parse(expr)
	if err != nil {
		return nil, err
	}
	a, err := build(node, cfg.limits())
	if err != nil {
		return nil, fmt.Errorf("spex: compiling %q: %w", expr, err)
	}
	return &Set{expr: expr, a: a, cfg: cfg}, nil
}

// MustCompile is Compile but panics on error, for tests and package-level
// var initializers where a malformed expression is a programming error.
func MustCompile(expr string) *Set {
	s, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return s
}

// String returns the original expression this Set was compiled from.
func (s *Set) String() string { return s.expr }

// Accept reports whether str is a member of s's language.
func (s *Set) Accept(str string) bool {
	return s.a.Accept(str)
}

// IsEmpty reports whether s denotes ∅.
func (s *Set) IsEmpty() bool {
	return closure.IsEmpty(s.a)
}

// IsUniversal reports whether s denotes Σ*.
func (s *Set) IsUniversal() (bool, error) {
	return closure.IsUniversal(s.a, s.cfg.limits())
}

// Contains reports whether other's language is a subset of s's.
func (s *Set) Contains(other *Set) (bool, error) {
	return closure.Contains(s.a, other.a, s.cfg.limits())
}

// Equal reports whether s and other denote the same language.
func (s *Set) Equal(other *Set) (bool, error) {
	return closure.Equal(s.a, other.a, s.cfg.limits())
}

// Union returns a Set denoting s ∪ other.
func (s *Set) Union(other *Set) (*Set, error) {
	a, err := closure.Union(s.a, other.a, s.cfg.limits())
	if err != nil {
		return nil, err
	}
	return &Set{expr: "(" + s.expr + "|" + other.expr + ")", a: a, cfg: s.cfg}, nil
}

// Intersect returns a Set denoting s ∩ other.
func (s *Set) Intersect(other *Set) (*Set, error) {
	a, err := closure.Intersect(s.a, other.a, s.cfg.limits())
	if err != nil {
		return nil, err
	}
	return &Set{expr: "(" + s.expr + "&" + other.expr + ")", a: a, cfg: s.cfg}, nil
}

// Concat returns a Set denoting the concatenation s · other.
func (s *Set) Concat(other *Set) (*Set, error) {
	a, err := closure.Concat(s.a, other.a, s.cfg.limits())
	if err != nil {
		return nil, err
	}
	return &Set{expr: s.expr + other.expr, a: a, cfg: s.cfg}, nil
}

// Complement returns a Set denoting ¬s.
func (s *Set) Complement() *Set {
	a := closure.Complement(s.a)
	return &Set{expr: "!(" + s.expr + ")", a: a, cfg: s.cfg}
}

// Mermaid renders s's underlying automaton as Mermaid graph text, per
// spec §4.8/§6.3.
func (s *Set) Mermaid() string {
	return mermaid.Render(s.a)
}
