// Package automaton implements the string-set automaton (C3): a DFA whose
// transitions are labeled by chex.CharSet rather than single characters.
//
// An Automaton is total (every state has outgoing edges covering all of Σ)
// and deterministic by construction — every leaf builder and every closure
// algorithm in package closure preserves those invariants. Automaton values
// are immutable after construction, mirroring the teacher's nfa.State /
// nfa.Transition value shapes (see nfa/nfa.go) generalized from byte-range
// edges to CharSet edges.
package automaton

import (
	"fmt"
	"sort"

	"github.com/spexcore/spex/chex"
)

// StateID uniquely identifies a state within one Automaton.
type StateID uint32

// Start is the id of the unique start state; it must always be present.
const Start StateID = 0

// Kind classifies an Automaton for fast-path decisions. It is a hint: per
// spec §9, Universal is a heuristic (|accepts|+1 == |states|) that can be
// wrong for automata with unreachable non-accepting states, so correctness
// never depends on it being tight — see Set.IsUniversal in the spex package.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindUniversal
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindUniversal:
		return "Universal"
	case KindOther:
		return "Other"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Transition is a labeled edge from one state to another. Label is never
// the Empty CharSet — constructions must drop such edges (spec §3.2).
type Transition struct {
	From  StateID
	To    StateID
	Label chex.CharSet
}

// Automaton is a deterministic, total finite automaton over chex.CharSet
// labeled edges.
type Automaton struct {
	transitions map[StateID][]Transition
	accepts     map[StateID]struct{}
	kind        Kind
}

// New builds an Automaton from a flat transition list and an accepting set,
// deriving its Kind classification. Every state reachable in the
// transitions (either as a source or as a target) must appear as a key of
// the resulting transition map; callers are responsible for that (the leaf
// builders and closure algorithms in this module satisfy it by construction).
func New(transitions []Transition, accepts map[StateID]struct{}, states []StateID) *Automaton {
	byState := make(map[StateID][]Transition, len(states))
	for _, s := range states {
		byState[s] = nil
	}
	for _, t := range transitions {
		if t.Label.IsEmpty() {
			continue
		}
		byState[t.From] = append(byState[t.From], t)
	}
	a := &Automaton{transitions: byState, accepts: copyAccepts(accepts)}
	a.kind = classify(a)
	return a
}

func copyAccepts(accepts map[StateID]struct{}) map[StateID]struct{} {
	out := make(map[StateID]struct{}, len(accepts))
	for s := range accepts {
		out[s] = struct{}{}
	}
	return out
}

func classify(a *Automaton) Kind {
	if len(a.accepts) == 0 {
		return KindEmpty
	}
	if len(a.accepts)+1 == len(a.transitions) {
		return KindUniversal
	}
	return KindOther
}

// FromCharSet builds the 3-state DFA accepting exactly the single-character
// strings matched by cs, per spec §4.2. If cs is Empty, the degenerate
// 2-state form (state 0 --Σ--> 1 --Σ--> 1, no accepting states) is built
// instead. The start state is kept separate from the non-accepting loop so
// that Complement, which never makes state 0 accepting, turns it into the
// set of every non-empty string.
func FromCharSet(cs chex.CharSet) *Automaton {
	if cs.IsEmpty() {
		return New(
			[]Transition{
				{From: 0, To: 1, Label: chex.Universe()},
				{From: 1, To: 1, Label: chex.Universe()},
			},
			map[StateID]struct{}{},
			[]StateID{0, 1},
		)
	}
	comp := chex.Complement(cs)
	trs := []Transition{
		{From: 0, To: 1, Label: cs},
		{From: 1, To: 2, Label: chex.Universe()},
		{From: 2, To: 2, Label: chex.Universe()},
	}
	if !comp.IsEmpty() {
		trs = append(trs, Transition{From: 0, To: 2, Label: comp})
	}
	return New(trs, map[StateID]struct{}{1: {}}, []StateID{0, 1, 2})
}

// Empty builds the 2-state DFA accepting no strings at all.
func Empty() *Automaton {
	return FromCharSet(chex.Empty())
}

// Universal builds the 2-state DFA accepting every non-empty string over Σ
// (spec §4.2); like every automaton here, it never accepts the empty string.
func Universal() *Automaton {
	return New(
		[]Transition{
			{From: 0, To: 1, Label: chex.Universe()},
			{From: 1, To: 1, Label: chex.Universe()},
		},
		map[StateID]struct{}{1: {}},
		[]StateID{0, 1},
	)
}

// Kind returns the cached classification hint.
func (a *Automaton) Kind() Kind { return a.kind }

// IsAccepting reports whether s is an accepting state.
func (a *Automaton) IsAccepting(s StateID) bool {
	_, ok := a.accepts[s]
	return ok
}

// Transitions returns the outgoing edges of state s. The slice is a
// partition of Σ per the core structural invariant (spec §3.3 item 2); it
// must not be mutated by the caller.
func (a *Automaton) Transitions(s StateID) []Transition {
	return a.transitions[s]
}

// States returns every state id, sorted ascending, useful for deterministic
// iteration (e.g. the Mermaid emitter).
func (a *Automaton) States() []StateID {
	out := make([]StateID, 0, len(a.transitions))
	for s := range a.transitions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Accepts returns every accepting state id, sorted ascending.
func (a *Automaton) Accepts() []StateID {
	out := make([]StateID, 0, len(a.accepts))
	for s := range a.accepts {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NumStates returns the number of states.
func (a *Automaton) NumStates() int { return len(a.transitions) }

// Step consumes one rune from state s and returns the resulting state. It
// panics if s has no outgoing edge covering r, which would violate the
// totality invariant — every constructed Automaton in this module satisfies
// it, so this only fires on a hand-built malformed Automaton.
func (a *Automaton) Step(s StateID, r rune) StateID {
	for _, t := range a.transitions[s] {
		if t.Label.Matches(r) {
			return t.To
		}
	}
	panic(fmt.Sprintf("automaton: state %d has no transition covering rune %q — totality invariant violated", s, r))
}

// Walk runs the automaton over s starting from the start state and returns
// the final state reached after consuming every rune of s.
func (a *Automaton) Walk(s string) StateID {
	cur := Start
	for _, r := range s {
		cur = a.Step(cur, r)
	}
	return cur
}

// Accept reports whether the automaton accepts the string s (membership,
// spec §1's "implicitly via DFA walk").
func (a *Automaton) Accept(s string) bool {
	return a.IsAccepting(a.Walk(s))
}
