// Package numbers solves the numbers round of "Des chiffres et des lettres"
// ("Le compte est bon"): given a target integer and a multiset of up to
// eight tiles, it searches for a chain of +, −, ×, ÷ operations over a
// subset of the tiles that reaches the target exactly, or — failing that
// — the closest attainable value, preferring simpler, shorter solutions
// when several reach the same distance.
//
// # What & Why
//
// The search is a breadth-first enumeration over operation-result groups
// indexed by tile-subset bitmask: group G holds every distinct value
// reachable by combining exactly the tiles named by bitmask G. Groups of
// size k are built by pairing two disjoint, already-built groups of
// smaller size and recording every surviving (+, −, ×, ÷) result of every
// pair. A single append-only arena backs every group; a sparse per-group
// result index gives O(1) amortized in-group deduplication.
//
// # Algorithm & Complexity
//
//	Solve (breadth-first group enumeration)
//	  Time:   O(3^N) worst case over N ≤ 8 tiles (partition pairs × operator arity),
//	          pruned in practice by the complexity bound and target-distance rejection.
//	  Memory: O(operationCapacity) for the arena, O(resultIndexCapacity) for the
//	          dedup index, O(2^N) for the group-range table (N ≤ 8 ⇒ ≤ 256 entries).
//
// # Determinism & Stability
//
//   - Solve is deterministic for a fixed (target, tiles, maxComplexity, capacities)
//     tuple; tile order is caller-controlled (see the prng package for shuffling).
//   - A Solver's arena and result index are reused, never reallocated, across
//     repeated calls to Solve; every call overwrites from index 0.
//   - bestDiff is monotonically non-increasing within a single Solve call.
//
// # Errors
//
//	ErrZeroCapacity, ErrTooManyTiles, ErrAborted — see the package-level var block.
//
// See the validate package for independently re-executing a solution byte
// stream, and the prng package for the Fisher–Yates tile shuffle used to
// surface alternate equal-quality solutions.
package numbers
