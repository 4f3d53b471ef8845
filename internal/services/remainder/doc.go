// Package remainder serves mod-3 remainder computations to the CLI.
//
// The service owns a single modthree.Computer and serialises access to it, so
// one request's reset and full pass over its input never interleaves with
// another's.
package remainder
