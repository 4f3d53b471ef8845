package modthree

import (
	"errors"
	"fmt"

	"modthree/internal/automaton"
)

const (
	S0 automaton.State = "S0"
	S1 automaton.State = "S1"
	S2 automaton.State = "S2"
)

// ErrInvalidInput is the sentinel wrapped by InvalidInputError.
var ErrInvalidInput = errors.New("invalid binary input")

// InvalidInputError reports the first character of a binary string that is
// not '0' or '1'. Index counts characters, not bytes.
type InvalidInputError struct {
	Char  rune
	Index int
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: character %q at index %d is not a binary digit", ErrInvalidInput, e.Char, e.Index)
}

// Unwrap returns ErrInvalidInput so callers can use errors.Is.
func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

var remainders = map[automaton.State]int{S0: 0, S1: 1, S2: 2}

// Definition returns the mod-3 automaton definition. Each call returns a fresh
// copy.
func Definition() automaton.Definition {
	return automaton.Definition{
		States:   []automaton.State{S0, S1, S2},
		Alphabet: []automaton.Symbol{'0', '1'},
		Transitions: map[automaton.Key]automaton.State{
			{From: S0, On: '0'}: S0, // 2*0+0 = 0
			{From: S0, On: '1'}: S1, // 2*0+1 = 1
			{From: S1, On: '0'}: S2, // 2*1+0 = 2
			{From: S1, On: '1'}: S0, // 2*1+1 = 3 ≡ 0
			{From: S2, On: '0'}: S1, // 2*2+0 = 4 ≡ 1
			{From: S2, On: '1'}: S2, // 2*2+1 = 5 ≡ 2
		},
		Initial:   S0,
		Accepting: []automaton.State{S0, S1, S2},
	}
}

// Computer owns one mod-3 automaton. Like the automaton it is not safe for
// concurrent use.
type Computer struct {
	fsm *automaton.Automaton
}

// New returns a Computer positioned at S0.
func New(opts ...automaton.Option) *Computer {
	fsm, err := automaton.New(Definition(), opts...)
	if err != nil {
		panic(fmt.Sprintf("modthree: static table rejected: %v", err))
	}
	return &Computer{fsm: fsm}
}

// ComputeRemainder returns the value of bits modulo 3. The empty string is 0.
// Input is checked before the automaton is touched, so a rejected call leaves
// the current state as it was.
func (c *Computer) ComputeRemainder(bits string) (int, error) {
	i := 0
	for _, r := range bits {
		if r != '0' && r != '1' {
			return 0, &InvalidInputError{Char: r, Index: i}
		}
		i++
	}
	final, err := c.fsm.ProcessString(bits)
	if err != nil {
		return 0, fmt.Errorf("compute remainder: %w", err)
	}
	return remainders[final], nil
}

// CurrentState returns the state of the underlying automaton.
func (c *Computer) CurrentState() automaton.State { return c.fsm.CurrentState() }

// Reset moves the underlying automaton back to S0.
func (c *Computer) Reset() { c.fsm.Reset() }

// Automaton exposes the underlying automaton for introspection.
func (c *Computer) Automaton() *automaton.Automaton { return c.fsm }

// Remainder maps a state to the remainder it stands for.
func Remainder(s automaton.State) (int, bool) {
	r, ok := remainders[s]
	return r, ok
}

// StateFor maps a remainder back to its state.
func StateFor(remainder int) (automaton.State, bool) {
	for s, r := range remainders {
		if r == remainder {
			return s, true
		}
	}
	return "", false
}

func (c *Computer) String() string {
	return fmt.Sprintf("ModThree(current=%s)", c.fsm.CurrentState())
}
