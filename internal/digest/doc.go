// Package digest derives short, stable fingerprints for automaton definitions.
//
// A fingerprint covers the 5-tuple only (states, alphabet, initial state,
// accepting states, transitions). Name, description and the order in which
// the document lists things do not affect it, so two files describing the
// same machine share a fingerprint.
package digest
