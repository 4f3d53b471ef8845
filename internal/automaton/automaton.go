package automaton

import (
	"cmp"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/slices"
)

// State is an opaque state identifier.
type State string

// String returns the state name.
func (s State) String() string { return string(s) }

// Symbol is a single input character.
type Symbol rune

// String returns the symbol as a one-character string.
func (s Symbol) String() string { return string(rune(s)) }

// Key addresses one cell of the transition table.
type Key struct {
	From State
	On   Symbol
}

// Transition is one row of the transition table.
type Transition struct {
	From State
	On   Symbol
	To   State
}

// Definition is the 5-tuple describing an automaton.
type Definition struct {
	States      []State
	Alphabet    []Symbol
	Transitions map[Key]State
	Initial     State
	Accepting   []State
}

// Option configures an Automaton.
type Option func(*Automaton)

// WithLogger routes the per-transition debug trace to l.
func WithLogger(l *log.Logger) Option {
	return func(a *Automaton) {
		if l != nil {
			a.logger = l
		}
	}
}

// Automaton walks a validated transition table one symbol at a time.
type Automaton struct {
	states      map[State]struct{}
	alphabet    map[Symbol]struct{}
	transitions map[Key]State
	initial     State
	accepting   map[State]struct{}

	current State
	logger  *log.Logger
}

// New validates def and returns an automaton positioned at the initial state.
// Every collection in def is copied; later changes to def have no effect.
func New(def Definition, opts ...Option) (*Automaton, error) {
	if err := Validate(def); err != nil {
		return nil, err
	}

	a := &Automaton{
		states:      toSet(def.States),
		alphabet:    toSet(def.Alphabet),
		transitions: make(map[Key]State, len(def.Transitions)),
		initial:     def.Initial,
		accepting:   toSet(def.Accepting),
		current:     def.Initial,
		logger:      log.New(io.Discard),
	}
	for k, to := range def.Transitions {
		a.transitions[k] = to
	}
	for _, opt := range opts {
		opt(a)
	}

	a.logger.Debug("automaton initialized",
		"states", len(a.states), "symbols", len(a.alphabet), "initial", a.initial)
	return a, nil
}

// Validate checks the invariants of def without building an automaton.
// Transitions are checked in sorted order so the reported violation is stable.
func Validate(def Definition) error {
	if len(def.States) == 0 {
		return &ConfigurationError{Reason: EmptyStates}
	}
	if len(def.Alphabet) == 0 {
		return &ConfigurationError{Reason: EmptyAlphabet}
	}

	states := toSet(def.States)
	alphabet := toSet(def.Alphabet)

	if _, ok := states[def.Initial]; !ok {
		return &ConfigurationError{Reason: UnknownInitial, State: def.Initial}
	}
	for _, s := range def.Accepting {
		if _, ok := states[s]; !ok {
			return &ConfigurationError{Reason: UnknownAccepting, State: s}
		}
	}
	for _, t := range sortedTransitions(def.Transitions) {
		if _, ok := states[t.From]; !ok {
			return &ConfigurationError{Reason: UnknownSource, State: t.From, Symbol: t.On}
		}
		if _, ok := alphabet[t.On]; !ok {
			return &ConfigurationError{Reason: UnknownSymbol, State: t.From, Symbol: t.On}
		}
		if _, ok := states[t.To]; !ok {
			return &ConfigurationError{Reason: UnknownTarget, State: t.To, Symbol: t.On}
		}
	}
	return nil
}

// Step consumes one symbol and returns the new current state. On error the
// current state is left unchanged.
func (a *Automaton) Step(sym Symbol) (State, error) {
	if _, ok := a.alphabet[sym]; !ok {
		return a.current, &InvalidSymbolError{Symbol: sym, Alphabet: a.Alphabet()}
	}
	next, ok := a.transitions[Key{From: a.current, On: sym}]
	if !ok {
		return a.current, &UndefinedTransitionError{State: a.current, Symbol: sym}
	}
	a.logger.Debug("transition", "from", a.current, "symbol", sym.String(), "to", next)
	a.current = next
	return next, nil
}

// Process resets the automaton and consumes input in order, stopping at the
// first failure. The error is annotated with the failing input position and
// still matches its variant through errors.As.
func (a *Automaton) Process(input []Symbol) (State, error) {
	a.Reset()
	for i, sym := range input {
		if _, err := a.Step(sym); err != nil {
			return a.current, fmt.Errorf("input position %d: %w", i, err)
		}
	}
	a.logger.Debug("processing complete", "length", len(input), "final", a.current)
	return a.current, nil
}

// ProcessString is Process over the characters of s.
func (a *Automaton) ProcessString(s string) (State, error) {
	return a.Process(Symbols(s))
}

// Continue consumes input from the current state without resetting first.
func (a *Automaton) Continue(input []Symbol) (State, error) {
	for i, sym := range input {
		if _, err := a.Step(sym); err != nil {
			return a.current, fmt.Errorf("input position %d: %w", i, err)
		}
	}
	return a.current, nil
}

// Accepts reports whether input drives the automaton into an accepting state.
func (a *Automaton) Accepts(input []Symbol) (bool, error) {
	final, err := a.Process(input)
	if err != nil {
		return false, err
	}
	return a.IsAccepting(final), nil
}

// Reset moves the automaton back to its initial state.
func (a *Automaton) Reset() {
	a.current = a.initial
}

// CurrentState returns the state reached so far.
func (a *Automaton) CurrentState() State { return a.current }

// Initial returns the initial state.
func (a *Automaton) Initial() State { return a.initial }

// IsAccepting reports whether s is an accepting state.
func (a *Automaton) IsAccepting(s State) bool {
	_, ok := a.accepting[s]
	return ok
}

// States returns the states in sorted order.
func (a *Automaton) States() []State { return sortedKeys(a.states) }

// Alphabet returns the alphabet in sorted order.
func (a *Automaton) Alphabet() []Symbol { return sortedKeys(a.alphabet) }

// AcceptingStates returns the accepting states in sorted order.
func (a *Automaton) AcceptingStates() []State { return sortedKeys(a.accepting) }

// Transitions returns the table rows sorted by source state, then symbol.
func (a *Automaton) Transitions() []Transition { return sortedTransitions(a.transitions) }

// IsComplete reports whether a transition is defined for every pair in
// states × alphabet.
func (a *Automaton) IsComplete() bool {
	return len(a.transitions) == len(a.states)*len(a.alphabet)
}

func (a *Automaton) String() string {
	return fmt.Sprintf("Automaton(states=%d, alphabet=%d, current=%s)",
		len(a.states), len(a.alphabet), a.current)
}

// Symbols splits s into one symbol per character.
func Symbols(s string) []Symbol {
	out := make([]Symbol, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, Symbol(r))
	}
	return out
}

// ParseSymbol converts a one-character string into a Symbol.
func ParseSymbol(s string) (Symbol, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return 0, &ConfigurationError{Reason: InvalidSymbolText, Text: s}
	}
	return Symbol(r), nil
}

func toSet[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}

func sortedKeys[T cmp.Ordered](set map[T]struct{}) []T {
	out := make([]T, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

func sortedTransitions(m map[Key]State) []Transition {
	out := make([]Transition, 0, len(m))
	for k, to := range m {
		out = append(out, Transition{From: k.From, On: k.On, To: to})
	}
	slices.SortFunc(out, func(x, y Transition) int {
		if c := cmp.Compare(x.From, y.From); c != 0 {
			return c
		}
		return cmp.Compare(x.On, y.On)
	})
	return out
}
