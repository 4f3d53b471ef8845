// Package store provides file-based persistence for automaton definitions.
//
// Each definition is serialised as indented JSON to <dir>/<name>.json and
// written atomically (temp file, then rename). The store stamps every saved
// document with its fingerprint and refuses to return a document whose
// content no longer matches the recorded fingerprint. All methods are
// concurrency-safe via internal locking.
package store
