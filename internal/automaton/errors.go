package automaton

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration is the sentinel wrapped by ConfigurationError.
	ErrConfiguration = errors.New("invalid automaton configuration")
	// ErrInvalidSymbol is the sentinel wrapped by InvalidSymbolError.
	ErrInvalidSymbol = errors.New("symbol not in alphabet")
	// ErrUndefinedTransition is the sentinel wrapped by UndefinedTransitionError.
	ErrUndefinedTransition = errors.New("undefined transition")
)

// Reason classifies why a Definition was rejected.
type Reason int

const (
	EmptyStates Reason = iota + 1
	EmptyAlphabet
	UnknownInitial
	UnknownAccepting
	UnknownSource
	UnknownTarget
	UnknownSymbol
	DuplicateTransition
	InvalidSymbolText
)

func (r Reason) String() string {
	switch r {
	case EmptyStates:
		return "empty states"
	case EmptyAlphabet:
		return "empty alphabet"
	case UnknownInitial:
		return "unknown initial state"
	case UnknownAccepting:
		return "unknown accepting state"
	case UnknownSource:
		return "unknown transition source"
	case UnknownTarget:
		return "unknown transition target"
	case UnknownSymbol:
		return "unknown transition symbol"
	case DuplicateTransition:
		return "duplicate transition"
	case InvalidSymbolText:
		return "symbol is not a single character"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

type (
	// ConfigurationError reports a Definition that violates an automaton
	// invariant. It is only returned by New.
	ConfigurationError struct {
		Reason Reason
		State  State  // offending state, if any
		Symbol Symbol // offending symbol, if any
		Text   string // raw text for InvalidSymbolText
	}

	// InvalidSymbolError reports a symbol outside the declared alphabet.
	InvalidSymbolError struct {
		Symbol   Symbol
		Alphabet []Symbol
	}

	// UndefinedTransitionError reports a symbol in the alphabet for which the
	// table has no move from State.
	UndefinedTransitionError struct {
		State  State
		Symbol Symbol
	}
)

func (e *ConfigurationError) Error() string {
	switch e.Reason {
	case EmptyStates, EmptyAlphabet:
		return fmt.Sprintf("%s: %s", ErrConfiguration, e.Reason)
	case UnknownInitial:
		return fmt.Sprintf("%s: initial state %q not in states", ErrConfiguration, e.State)
	case UnknownAccepting:
		return fmt.Sprintf("%s: accepting state %q not in states", ErrConfiguration, e.State)
	case UnknownSource:
		return fmt.Sprintf("%s: transition from %q: state not in states", ErrConfiguration, e.State)
	case UnknownTarget:
		return fmt.Sprintf("%s: transition target %q not in states", ErrConfiguration, e.State)
	case UnknownSymbol:
		return fmt.Sprintf("%s: transition symbol %q not in alphabet", ErrConfiguration, e.Symbol)
	case DuplicateTransition:
		return fmt.Sprintf("%s: more than one transition from %q on %q", ErrConfiguration, e.State, e.Symbol)
	case InvalidSymbolText:
		return fmt.Sprintf("%s: symbol %q is not a single character", ErrConfiguration, e.Text)
	default:
		return fmt.Sprintf("%s: %s", ErrConfiguration, e.Reason)
	}
}

// Unwrap returns ErrConfiguration so callers can use errors.Is.
func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

func (e *InvalidSymbolError) Error() string {
	parts := make([]string, len(e.Alphabet))
	for i, s := range e.Alphabet {
		parts[i] = s.String()
	}
	return fmt.Sprintf("symbol %q not in alphabet {%s}", e.Symbol, strings.Join(parts, ", "))
}

// Unwrap returns ErrInvalidSymbol so callers can use errors.Is.
func (e *InvalidSymbolError) Unwrap() error { return ErrInvalidSymbol }

func (e *UndefinedTransitionError) Error() string {
	return fmt.Sprintf("no transition defined for state %q with input %q", e.State, e.Symbol)
}

// Unwrap returns ErrUndefinedTransition so callers can use errors.Is.
func (e *UndefinedTransitionError) Unwrap() error { return ErrUndefinedTransition }
