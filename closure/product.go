package closure

import (
	"github.com/spexcore/spex/automaton"
	"github.com/spexcore/spex/chex"
)

// pairKey identifies a composite product state (p, q) with p a state of the
// first operand and q a state of the second. Both fields share the
// automaton.StateID type even though they come from independent automata.
type pairKey struct {
	P, Q automaton.StateID
}

// product runs the shared worklist for Union and Intersect: spec §4.4's
// "standard DFA product construction" with labels refined to a common
// partition at each composite state before transitions are emitted.
// Grounded in the teacher's nfa.CompositeSequenceDFA.buildDFASubsetConstruction
// (queue + configToState memo + states slice), generalized from a fixed
// bitmask configSet to an arbitrary (p,q) pair.
func product(a, b *automaton.Automaton, limits *Limits, accept func(pAccept, qAccept bool) bool) (*automaton.Automaton, error) {
	limit := resolveLimit(limits)
	ids := map[pairKey]automaton.StateID{}
	var order []pairKey

	assign := func(k pairKey) automaton.StateID {
		id := automaton.StateID(len(order))
		ids[k] = id
		order = append(order, k)
		return id
	}

	start := pairKey{automaton.Start, automaton.Start}
	assign(start)
	queue := []pairKey{start}

	var transitions []automaton.Transition
	accepts := map[automaton.StateID]struct{}{}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curID := ids[cur]

		if accept(a.IsAccepting(cur.P), b.IsAccepting(cur.Q)) {
			accepts[curID] = struct{}{}
		}

		blocks := refineAgainst([]chex.CharSet{chex.Universe()}, a.Transitions(cur.P))
		blocks = refineAgainst(blocks, b.Transitions(cur.Q))

		for _, blk := range blocks {
			pNext, ok1 := destFor(a, cur.P, blk)
			qNext, ok2 := destFor(b, cur.Q, blk)
			if !ok1 || !ok2 {
				continue
			}
			nk := pairKey{pNext, qNext}
			id, ok := ids[nk]
			if !ok {
				if len(order) >= limit {
					return nil, &BudgetError{Limit: limit}
				}
				id = assign(nk)
				queue = append(queue, nk)
			}
			transitions = append(transitions, automaton.Transition{From: curID, To: id, Label: blk})
		}
	}

	return automaton.New(transitions, accepts, idRange(len(order))), nil
}

// Union builds M1 ∪ M2, with the empty-operand fast paths from spec §4.4
// ("∅∪X=X"). The Σ*∪X=Σ* identity is deliberately NOT used as a fast path
// here: Kind()==KindUniversal is only a heuristic hint (spec §9), and using
// it to skip the general construction would make correctness depend on a
// classification that can be loose. See DESIGN.md for the decided Open
// Question.
func Union(a, b *automaton.Automaton, limits *Limits) (*automaton.Automaton, error) {
	if a.Kind() == automaton.KindEmpty {
		return b, nil
	}
	if b.Kind() == automaton.KindEmpty {
		return a, nil
	}
	return product(a, b, limits, func(pAccept, qAccept bool) bool { return pAccept || qAccept })
}

// Intersect builds M1 ∩ M2, with the ∅∩X=∅ fast path (exact: KindEmpty
// is never a false positive because every automaton built by this package
// only ever contains states reachable from the start state).
func Intersect(a, b *automaton.Automaton, limits *Limits) (*automaton.Automaton, error) {
	if a.Kind() == automaton.KindEmpty || b.Kind() == automaton.KindEmpty {
		return automaton.Empty(), nil
	}
	return product(a, b, limits, func(pAccept, qAccept bool) bool { return pAccept && qAccept })
}
