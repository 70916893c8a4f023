package closure

import (
	"sort"
	"strings"

	"github.com/spexcore/spex/automaton"
	"github.com/spexcore/spex/chex"
)

// refineAgainst splits each block in blocks by every edge label in edges,
// replacing block B with B∩ℓ and B∖ℓ (dropping empties) for each label ℓ.
// This is the "coarsest mutually-disjoint CharSet refinement" of spec
// §4.4 step 2, generalized from the teacher's ByteClassSet boundary-merge
// idiom (nfa/alphabet.go) from byte boundaries to arbitrary CharSet splits.
func refineAgainst(blocks []chex.CharSet, edges []automaton.Transition) []chex.CharSet {
	out := blocks
	for _, e := range edges {
		comp := chex.Complement(e.Label)
		next := make([]chex.CharSet, 0, len(out)*2)
		for _, b := range out {
			if in := chex.Intersect(b, e.Label); !in.IsEmpty() {
				next = append(next, in)
			}
			if rest := chex.Intersect(b, comp); !rest.IsEmpty() {
				next = append(next, rest)
			}
		}
		out = next
	}
	return out
}

// destFor locates the unique outgoing edge of state s whose label contains
// block, and returns its target. block is assumed to already be a
// refinement of s's own outgoing labels (every caller refines against s's
// edges before calling destFor), and those labels are pairwise disjoint, so
// exactly one edge qualifies. The edge is selected by the containment test,
// not by its position, so the result does not depend on edge ordering.
func destFor(a *automaton.Automaton, s automaton.StateID, block chex.CharSet) (automaton.StateID, bool) {
	for _, t := range a.Transitions(s) {
		if chex.Contains(t.Label, block) {
			return t.To, true
		}
	}
	return 0, false
}

func anyAccepting(a *automaton.Automaton, states []automaton.StateID) bool {
	for _, s := range states {
		if a.IsAccepting(s) {
			return true
		}
	}
	return false
}

// sortedUnique sorts and deduplicates a slice of state ids, producing the
// canonical representative used both as the composite-state payload and
// (via stateSetKey) as its memoization key.
func sortedUnique(ids map[automaton.StateID]struct{}) []automaton.StateID {
	out := make([]automaton.StateID, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// stateSetKey renders a sorted state-id slice as a stable map key.
func stateSetKey(ids []automaton.StateID) string {
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(formatStateID(id))
	}
	return b.String()
}

func formatStateID(id automaton.StateID) string {
	// Small, allocation-free itoa sized for realistic state counts.
	if id == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for id > 0 {
		i--
		buf[i] = byte('0' + id%10)
		id /= 10
	}
	return string(buf[i:])
}

func idRange(n int) []automaton.StateID {
	out := make([]automaton.StateID, n)
	for i := range out {
		out[i] = automaton.StateID(i)
	}
	return out
}
