// Package modthree computes the remainder of a binary number modulo 3 by
// feeding its bits, most significant first, through a three-state automaton.
//
// State Si means "the prefix read so far is congruent to i mod 3". Reading bit
// b after a prefix with remainder r yields remainder (2r + b) mod 3, which
// gives the whole table:
//
//	state | on '0' | on '1'
//	------+--------+-------
//	S0    | S0     | S1
//	S1    | S2     | S0
//	S2    | S1     | S2
//
// Every state is accepting; the answer is read off the final state.
package modthree
