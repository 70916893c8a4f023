package closure

import "github.com/spexcore/spex/automaton"

// IsEmpty reports whether m's language is ∅ (spec §4.7). This is exact, not
// a heuristic: every Automaton built by this package only ever contains
// states reachable from the start state, so "zero accepting states" and
// "empty language" coincide precisely — unlike KindUniversal, KindEmpty
// never needs a fallback.
func IsEmpty(m *automaton.Automaton) bool {
	return m.Kind() == automaton.KindEmpty
}

// IsUniversal reports whether m's language is Σ* under this algebra's
// ε-free convention (spec §4.3, §9). Kind() is used only as a cheap
// negative-result short-circuit (if Kind says Empty, it cannot also be
// Universal); KindUniversal is never trusted, and in every other case the
// general containment check runs, per spec §9's "fall back to the
// general contains(universe, M) check when needed."
func IsUniversal(m *automaton.Automaton, limits *Limits) (bool, error) {
	if m.Kind() == automaton.KindEmpty {
		return false, nil
	}
	return Contains(m, automaton.Universal(), limits)
}

// Contains reports whether b ⊆ a, i.e. L(b) is a subset of L(a), computed
// via the identity of spec §4.7: contains(a,b) ≡ isEmpty(intersect(b, ¬a)).
func Contains(a, b *automaton.Automaton, limits *Limits) (bool, error) {
	if a.Kind() == automaton.KindEmpty {
		return b.Kind() == automaton.KindEmpty, nil
	}
	notA := Complement(a)
	inter, err := Intersect(b, notA, limits)
	if err != nil {
		return false, err
	}
	return IsEmpty(inter), nil
}

// Equal reports whether a and b denote the same language: A ⊆ B ∧ B ⊆ A.
func Equal(a, b *automaton.Automaton, limits *Limits) (bool, error) {
	ab, err := Contains(a, b, limits)
	if err != nil || !ab {
		return false, err
	}
	return Contains(b, a, limits)
}
