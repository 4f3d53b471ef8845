package types

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidDefinitionName is the sentinel wrapped by InvalidDefinitionNameError.
var ErrInvalidDefinitionName = errors.New("invalid definition name")

// maxDefinitionNameLength bounds names so they stay usable as file names.
const maxDefinitionNameLength = 64

var definitionNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

type (
	// DefinitionName identifies a stored automaton definition.
	DefinitionName string

	// InvalidDefinitionNameError is returned when a DefinitionName is empty,
	// too long, or contains characters outside [a-z0-9._-].
	InvalidDefinitionNameError struct {
		Value DefinitionName
	}

	// Fingerprint is a short digest of a definition presented to users.
	Fingerprint string
)

// String returns the string form of the name.
func (n DefinitionName) String() string { return string(n) }

// Validate returns an error if the name cannot be used as a store key.
func (n DefinitionName) Validate() error {
	if len(n) == 0 || len(n) > maxDefinitionNameLength || !definitionNamePattern.MatchString(string(n)) {
		return &InvalidDefinitionNameError{Value: n}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidDefinitionNameError) Error() string {
	return fmt.Sprintf("invalid definition name %q (want 1-%d characters of [a-z0-9._-], starting with a letter or digit)",
		string(e.Value), maxDefinitionNameLength)
}

// Unwrap returns ErrInvalidDefinitionName so callers can use errors.Is.
func (e *InvalidDefinitionNameError) Unwrap() error { return ErrInvalidDefinitionName }

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
