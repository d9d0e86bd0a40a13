// Package board defines the fixed 4×4 sliding-tile board shared by every
// other package in this module: the flat 16-cell representation, the
// canonical goal layout, the two axis-flip constants that let a single
// Walking-Distance table serve both the vertical and horizontal halves
// of the heuristic, and the plain row-major inversion count used by both
// the solvability predicate and the heuristic evaluator.
//
// What:
//
//   - Board: 16 small integers in [0,15], row-major, 0 is the blank.
//   - Goal: the canonical solved board (1..15, 0).
//   - Conv / ConvP: the fixed permutations used to reuse one Walking-Distance
//     table across both axes (see walkdist and heuristic).
//   - Inversions: the O(n²) row-major inversion count over non-blank tiles.
//
// Why:
//
//   - Keeping the board representation, constants and inversion counting
//     in one small, dependency-free package lets walkdist, heuristic,
//     solvability and idastar all agree on the same layout without
//     import cycles.
//
// Complexity:
//
//   - BlankIndex, RowCol, Index: O(1) / O(n).
//   - Inversions: O(n²) over n=16 cells — 120 comparisons, negligible.
package board
