// Package mermaid renders an automaton.Automaton as Mermaid graph text, per
// spec §4.8/§6.3. Output is deterministic: states and their outgoing edges
// are visited in ascending StateID order, so two calls on the same
// Automaton value always produce byte-identical text — useful for golden
// test files and for diffing compiled expressions.
package mermaid

import (
	"fmt"
	"strings"

	"github.com/spexcore/spex/automaton"
)

// Render returns a's automaton as a fenced Mermaid "graph LR" code block,
// with the start state marked by an incoming arrow from a node labeled
// "start" and drawn filled, and accepting states drawn with a thick red
// border.
func Render(a *automaton.Automaton) string {
	var b strings.Builder
	b.WriteString("```mermaid\n")
	b.WriteString("graph LR\n")

	states := a.States()
	for _, s := range states {
		b.WriteString(fmt.Sprintf("    state%d((%d))\n", s, s))
	}

	b.WriteString(fmt.Sprintf("    start((start)) --> state%d\n", automaton.Start))

	for _, s := range states {
		for _, t := range a.Transitions(s) {
			b.WriteString(fmt.Sprintf("    state%d -->|%s| state%d\n", t.From, escapeLabel(t.Label.String()), t.To))
		}
	}

	b.WriteString(fmt.Sprintf("    style state%d fill:#333,color:#fff\n", automaton.Start))
	for _, s := range a.Accepts() {
		b.WriteString(fmt.Sprintf("    style state%d stroke:#f00,stroke-width:3px\n", s))
	}

	b.WriteString("```\n")
	return b.String()
}

// escapeLabel quotes a CharSet's text form so Mermaid's edge-label syntax
// treats it as a literal string rather than parsing '|', '[', ']' as
// diagram syntax.
func escapeLabel(s string) string {
	return fmt.Sprintf("%q", s)
}
