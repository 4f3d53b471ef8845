// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (stored documents, results) and contracts
// (interfaces) only; the automaton itself lives in internal/automaton.
package domain
