package closure

import (
	"github.com/spexcore/spex/automaton"
	"github.com/spexcore/spex/chex"
)

// concatState is the composite state of spec §4.5: p is the current state
// of M1, Q is the (possibly empty) set of states M2 could be in had every
// accepting state of M1 simultaneously forked into M2's start.
type concatState struct {
	P automaton.StateID
	Q []automaton.StateID
}

func (s concatState) key() pairSetKey { return pairSetKey{P: s.P, QKey: stateSetKey(s.Q)} }

type pairSetKey struct {
	P    automaton.StateID
	QKey string
}

// Concat builds M1 · M2 via the on-the-fly subset construction over M2
// described in spec §4.5, grounded in the same worklist/memo shape as
// product() and nfa.CompositeSequenceDFA.buildDFASubsetConstruction.
//
// Per spec §8 property 6 ("∅·A = A·∅ = ∅" — no atom's language contains the
// empty string under this algebra's convention, spec §4.3), an Empty
// operand short-circuits the whole construction.
func Concat(m1, m2 *automaton.Automaton, limits *Limits) (*automaton.Automaton, error) {
	if m1.Kind() == automaton.KindEmpty || m2.Kind() == automaton.KindEmpty {
		return automaton.Empty(), nil
	}

	limit := resolveLimit(limits)
	ids := map[pairSetKey]automaton.StateID{}
	var order []concatState

	assign := func(s concatState) automaton.StateID {
		id := automaton.StateID(len(order))
		ids[s.key()] = id
		order = append(order, s)
		return id
	}

	start := concatState{P: automaton.Start, Q: nil}
	assign(start)
	queue := []concatState{start}

	var transitions []automaton.Transition
	accepts := map[automaton.StateID]struct{}{}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curID := ids[cur.key()]

		pAccept := m1.IsAccepting(cur.P)
		if anyAccepting(m2, cur.Q) {
			accepts[curID] = struct{}{}
		}

		blocks := refineAgainst([]chex.CharSet{chex.Universe()}, m1.Transitions(cur.P))
		if pAccept {
			blocks = refineAgainst(blocks, m2.Transitions(automaton.Start))
		}
		for _, q := range cur.Q {
			blocks = refineAgainst(blocks, m2.Transitions(q))
		}

		for _, blk := range blocks {
			pNext, ok := destFor(m1, cur.P, blk)
			if !ok {
				continue
			}
			qNextSet := map[automaton.StateID]struct{}{}
			for _, q := range cur.Q {
				if to, ok2 := destFor(m2, q, blk); ok2 {
					qNextSet[to] = struct{}{}
				}
			}
			if pAccept {
				if to, ok2 := destFor(m2, automaton.Start, blk); ok2 {
					qNextSet[to] = struct{}{}
				}
			}
			next := concatState{P: pNext, Q: sortedUnique(qNextSet)}
			nk := next.key()
			id, ok := ids[nk]
			if !ok {
				if len(order) >= limit {
					return nil, &BudgetError{Limit: limit}
				}
				id = assign(next)
				queue = append(queue, next)
			}
			transitions = append(transitions, automaton.Transition{From: curID, To: id, Label: blk})
		}
	}

	return automaton.New(transitions, accepts, idRange(len(order))), nil
}
