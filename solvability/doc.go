// Package solvability implements the parity-based solvability predicate for
// the 4×4 fifteen-puzzle: exactly half of all permutations of the 16 cells
// are reachable from the goal by legal slides, and membership is decidable
// in O(n²) from the permutation alone, without any search.
//
// What:
//
//   - IsSolvable: inversion-parity + blank-row-parity test.
//   - Validate: IsSolvable wrapped as an error, for callers that gate a
//     search on it.
//
// Why:
//
//   - IDA* as specified here only terminates because every board it is
//     given is solvable; an unsolvable board must be rejected before the
//     search starts, not discovered by exhausting the state space.
package solvability
