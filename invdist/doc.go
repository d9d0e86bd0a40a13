// Package invdist builds the Inversion-Distance lookup table: a trivial
// per-axis lower bound derived from a raw inversion count, since each
// axis-parallel tile move changes a board's inversion count by at most 3.
//
// What:
//
//   - Table[k]: the minimum number of tile-adjacent swaps needed to sort an
//     axis carrying k inversions, for k in [0, Size).
//
// Why:
//
//   - Walking Distance alone under-counts moves when many tiles sit in the
//     correct row but the wrong order within it; Inversion Distance fills
//     that gap, and heuristic.Evaluator takes the max of the two per axis.
//
// Complexity:
//
//   - Build: O(Size), Size=106.
package invdist
