// Package chex implements the character-set algebra over Σ, the universe of
// Unicode code points.
//
// A CharSet is either Empty (∅), Universe (Σ), or a finite inclusion set S
// (every code point in S, and nothing else) or its complement, a finite
// exclusion set (every code point except those in S). All four algebraic
// operations — union, intersection, complement, and containment — are closed
// over this representation: they never need to materialize Σ itself, only
// the finite set S.
//
// CharSet values are immutable. Every operation returns a new value; the
// degenerate-case collapses required by the data model (an inclusion set of
// size 0 is Empty, an exclusion set of size 0 is Universe) are enforced at
// construction so callers never observe a malformed Finite variant.
package chex

import (
	"fmt"
	"sort"
	"strings"
)

// Polarity distinguishes a finite inclusion set from its complement.
type Polarity bool

const (
	// Include means the CharSet denotes exactly the listed runes.
	Include Polarity = true
	// Exclude means the CharSet denotes Σ minus the listed runes.
	Exclude Polarity = false
)

func (p Polarity) String() string {
	if p == Include {
		return "include"
	}
	return "exclude"
}

type kind uint8

const (
	kindEmpty kind = iota
	kindUniverse
	kindFinite
)

// CharSet is a finite or co-finite subset of Σ. The zero value is not a
// valid CharSet; use Empty, Universe, or Single to construct one.
type CharSet struct {
	k        kind
	polarity Polarity
	members  map[rune]struct{}
	text     string // canonical form, computed once at construction
}

// Empty returns the CharSet denoting ∅.
func Empty() CharSet {
	return CharSet{k: kindEmpty, text: "[]"}
}

// Universe returns the CharSet denoting Σ.
func Universe() CharSet {
	return CharSet{k: kindUniverse, text: "."}
}

// Single builds a CharSet from a list of runes under the given polarity,
// collapsing to Empty or Universe per the degenerate cases in the data
// model (an empty Include list is ∅; an empty Exclude list is Σ).
// Duplicate runes in chars are deduplicated.
func Single(chars []rune, polarity Polarity) CharSet {
	members := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		members[r] = struct{}{}
	}
	if len(members) == 0 {
		if polarity == Include {
			return Empty()
		}
		return Universe()
	}
	return CharSet{
		k:        kindFinite,
		polarity: polarity,
		members:  members,
		text:     canonicalText(members, polarity),
	}
}

func canonicalText(members map[rune]struct{}, polarity Polarity) string {
	sorted := sortedRunes(members)
	if polarity == Include && len(sorted) == 1 {
		return string(sorted[0])
	}
	var b strings.Builder
	b.WriteByte('[')
	if polarity == Exclude {
		b.WriteByte('^')
	}
	for _, r := range sorted {
		b.WriteRune(r)
	}
	b.WriteByte(']')
	return b.String()
}

func sortedRunes(members map[rune]struct{}) []rune {
	out := make([]rune, 0, len(members))
	for r := range members {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsEmpty reports whether the CharSet denotes ∅.
func (c CharSet) IsEmpty() bool { return c.k == kindEmpty }

// IsUniversal reports whether the CharSet denotes Σ.
func (c CharSet) IsUniversal() bool { return c.k == kindUniverse }

// Polarity returns the polarity of a finite CharSet. It is meaningless for
// Empty or Universe (both return Include).
func (c CharSet) Polarity() Polarity {
	if c.k != kindFinite {
		return Include
	}
	return c.polarity
}

// Runes returns the underlying finite rune set of a Finite CharSet, sorted
// ascending. For Empty and Universe it returns nil.
func (c CharSet) Runes() []rune {
	if c.k != kindFinite {
		return nil
	}
	return sortedRunes(c.members)
}

// String returns the stable canonical text form used as an identity key.
func (c CharSet) String() string { return c.text }

// Equal reports whether a and b denote the same set of code points.
func (c CharSet) Equal(other CharSet) bool {
	if c.k != other.k {
		return false
	}
	if c.k != kindFinite {
		return true
	}
	return c.text == other.text
}

// Contains reports whether b ⊆ a.
func Contains(a, b CharSet) bool {
	switch {
	case a.k == kindEmpty:
		return b.k == kindEmpty
	case a.k == kindUniverse:
		return true
	case b.k == kindEmpty:
		return true
	case b.k == kindUniverse:
		return false // a is Finite, Finite never equals or contains Σ
	case a.polarity == Include && b.polarity == Exclude:
		// a is finite, b is co-finite (infinite unless Σ itself is finite,
		// which it never is here): a cannot contain b.
		return false
	default:
		return Intersect(Complement(a), b).IsEmpty()
	}
}

// Complement returns ¬a.
func Complement(a CharSet) CharSet {
	switch a.k {
	case kindEmpty:
		return Universe()
	case kindUniverse:
		return Empty()
	default:
		return Single(a.Runes(), !a.polarity)
	}
}

// Union returns a ∪ b per the table in the character-set algebra.
func Union(a, b CharSet) CharSet {
	switch {
	case a.k == kindEmpty:
		return b
	case b.k == kindEmpty:
		return a
	case a.k == kindUniverse || b.k == kindUniverse:
		return Universe()
	default:
		return combine(a, b, true)
	}
}

// Intersect returns a ∩ b per the table in the character-set algebra.
func Intersect(a, b CharSet) CharSet {
	switch {
	case a.k == kindEmpty || b.k == kindEmpty:
		return Empty()
	case a.k == kindUniverse:
		return b
	case b.k == kindUniverse:
		return a
	default:
		return combine(a, b, false)
	}
}

// combine implements the Finite×Finite cells of the union/intersect tables.
// Both a and b are guaranteed Finite on entry.
func combine(a, b CharSet, union bool) CharSet {
	if union {
		switch {
		case a.polarity == Include && b.polarity == Include:
			return Single(sortedRunes(setUnion(a.members, b.members)), Include)
		case a.polarity == Include && b.polarity == Exclude:
			return Single(sortedRunes(setDiff(b.members, a.members)), Exclude)
		case a.polarity == Exclude && b.polarity == Include:
			return Single(sortedRunes(setDiff(a.members, b.members)), Exclude)
		default: // both Exclude
			return Single(sortedRunes(setIntersect(a.members, b.members)), Exclude)
		}
	}
	switch {
	case a.polarity == Include && b.polarity == Include:
		return Single(sortedRunes(setIntersect(a.members, b.members)), Include)
	case a.polarity == Include && b.polarity == Exclude:
		return Single(sortedRunes(setDiff(a.members, b.members)), Include)
	case a.polarity == Exclude && b.polarity == Include:
		return Single(sortedRunes(setDiff(b.members, a.members)), Include)
	default: // both Exclude
		return Single(sortedRunes(setUnion(a.members, b.members)), Exclude)
	}
}

func setUnion(a, b map[rune]struct{}) map[rune]struct{} {
	out := make(map[rune]struct{}, len(a)+len(b))
	for r := range a {
		out[r] = struct{}{}
	}
	for r := range b {
		out[r] = struct{}{}
	}
	return out
}

func setIntersect(a, b map[rune]struct{}) map[rune]struct{} {
	out := make(map[rune]struct{})
	for r := range a {
		if _, ok := b[r]; ok {
			out[r] = struct{}{}
		}
	}
	return out
}

func setDiff(a, b map[rune]struct{}) map[rune]struct{} {
	out := make(map[rune]struct{})
	for r := range a {
		if _, ok := b[r]; !ok {
			out[r] = struct{}{}
		}
	}
	return out
}

// Matches reports whether the rune r is a member of the set denoted by c.
func (c CharSet) Matches(r rune) bool {
	switch c.k {
	case kindEmpty:
		return false
	case kindUniverse:
		return true
	default:
		_, ok := c.members[r]
		if c.polarity == Include {
			return ok
		}
		return !ok
	}
}

// GoString supports %#v debug formatting with the canonical text, useful in
// test failure output.
func (c CharSet) GoString() string {
	return fmt.Sprintf("chex.CharSet(%s)", c.text)
}
