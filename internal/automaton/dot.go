package automaton

import (
	"fmt"
	"strings"
)

// DOT returns a GraphViz digraph of the transition table. Accepting states are
// drawn as double circles and an invisible node points at the initial state.
// Output order is deterministic.
func (a *Automaton) DOT() string {
	var b strings.Builder
	b.WriteString("digraph {\n")
	b.WriteString("    rankdir=LR;\n")
	b.WriteString("    \"\" [shape=none];\n")
	for _, s := range a.States() {
		shape := "circle"
		if a.IsAccepting(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "    %q [shape=%s];\n", string(s), shape)
	}
	fmt.Fprintf(&b, "    \"\" -> %q;\n", string(a.initial))
	for _, t := range a.Transitions() {
		fmt.Fprintf(&b, "    %q -> %q [label=%q];\n", string(t.From), string(t.To), t.On.String())
	}
	b.WriteString("}\n")
	return b.String()
}
