// Package automaton implements a deterministic finite automaton driven by an
// explicit transition table.
//
// An Automaton is built from a Definition, the classic 5-tuple of states,
// alphabet, transition map, initial state and accepting states. New checks
// every invariant of the tuple up front, so walking the table afterwards can
// only fail on caller input:
//
//   - a symbol outside the alphabet (InvalidSymbolError)
//   - a (state, symbol) pair the table leaves undefined (UndefinedTransitionError)
//
// Partial tables are allowed; IsComplete reports whether the map is total.
//
// # Concurrency
//
// An Automaton holds one mutable field, its current state. It is owned by a
// single caller and is not safe for concurrent use. Give each logical
// computation its own instance, or serialise Process calls externally.
package automaton
