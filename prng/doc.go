// Package prng implements the 48-bit linear congruential generator used by
// the historical java.util.Random, plus an in-place Fisher–Yates shuffle
// built on it. Bit-for-bit compatibility with that specific 1990s Java RNG
// matters only for reproducing a fixed-seed shuffle exactly; nothing here
// depends on java.util.Random's cryptographic properties (it has none).
//
// # Algorithm
//
//	seed, on Seed(s):  seed = (uint64(s) ^ 0x5DEECE66D) & (2^48 - 1)
//	seed, on each step: seed = (seed * 0x5DEECE66D + 0xB) & (2^48 - 1)
//	Uint32() output:    the high 32 bits of the new 48-bit state
//
// A *Source is not safe for concurrent use; give each goroutine (each
// solver worker, in a parallel benchmark harness) its own Source.
package prng
