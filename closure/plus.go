package closure

import (
	"github.com/spexcore/spex/automaton"
	"github.com/spexcore/spex/chex"
)

// Plus builds M⁺ via the subset construction of spec §4.6: a composite
// state is a non-empty subset of M's states, starting from {start}. Every
// time an active state is accepting, the construction also forks into M's
// start state (the loop-back that models "one more copy").
func Plus(m *automaton.Automaton, limits *Limits) (*automaton.Automaton, error) {
	if m.Kind() == automaton.KindEmpty {
		return automaton.Empty(), nil
	}

	limit := resolveLimit(limits)
	ids := map[string]automaton.StateID{}
	var order [][]automaton.StateID

	assign := func(p []automaton.StateID) automaton.StateID {
		id := automaton.StateID(len(order))
		ids[stateSetKey(p)] = id
		order = append(order, p)
		return id
	}

	start := []automaton.StateID{automaton.Start}
	assign(start)
	queue := [][]automaton.StateID{start}

	var transitions []automaton.Transition
	accepts := map[automaton.StateID]struct{}{}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curID := ids[stateSetKey(cur)]

		curAccepting := anyAccepting(m, cur)
		if curAccepting {
			accepts[curID] = struct{}{}
		}

		blocks := []chex.CharSet{chex.Universe()}
		for _, p := range cur {
			blocks = refineAgainst(blocks, m.Transitions(p))
		}
		if curAccepting {
			blocks = refineAgainst(blocks, m.Transitions(automaton.Start))
		}

		for _, blk := range blocks {
			nextSet := map[automaton.StateID]struct{}{}
			for _, p := range cur {
				if to, ok := destFor(m, p, blk); ok {
					nextSet[to] = struct{}{}
				}
			}
			if curAccepting {
				if to, ok := destFor(m, automaton.Start, blk); ok {
					nextSet[to] = struct{}{}
				}
			}
			if len(nextSet) == 0 {
				continue
			}
			next := sortedUnique(nextSet)
			nk := stateSetKey(next)
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
