// Package definition validates, stores and runs user-supplied automaton
// definitions.
//
// A definition document is only stored after it has been turned into a
// working automaton, so everything the store returns is runnable. Run records
// the full state path, which the CLI prints for tracing.
package definition
