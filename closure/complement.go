package closure

import "github.com/spexcore/spex/automaton"

// Complement builds ¬M. Because M is total and deterministic, ¬M reuses
// M's exact transition graph; only the accepting set changes, to every
// state except the start state and M's own accepting states.
//
// State 0 is never made accepting, by the convention this whole algebra
// follows (per spec §4.3 and §9: "this codebase never makes state 0
// accepting") — every set built here excludes the empty string from its
// language unconditionally, so complementing never needs to special-case
// ε-acceptance. Grounded directly in the only fully-specified closure
// operation in original_source/src/spex.rs (`impl Not for &Spex`).
func Complement(m *automaton.Automaton) *automaton.Automaton {
	states := m.States()
	var transitions []automaton.Transition
	for _, s := range states {
		transitions = append(transitions, m.Transitions(s)...)
	}
	accepts := make(map[automaton.StateID]struct{})
	for _, s := range states {
		if s != automaton.Start && !m.IsAccepting(s) {
			accepts[s] = struct{}{}
		}
	}
	return automaton.New(transitions, accepts, states)
}
