// Package walkdist builds the Walking-Distance lookup tables used by the
// heuristic and idastar packages: for every reachable goal-row-class
// pattern of the 4×4 board, the minimum number of row-direction moves
// needed to reach it from the solved pattern, plus a transition-link table
// that lets that distance be updated incrementally in O(1) per move
// instead of recomputed from a board scan.
//
// What:
//
//   - Pattern: a 4×4 grid of goal-row-class counts, packed MSB-first into a
//     48-bit word (3 bits per cell, (0,0) most significant).
//   - Tables.Dist[i]: minimum row-swaps from the solved pattern to pattern i.
//   - Tables.Link[i][dir][g]: neighbor of pattern i under direction dir
//     (DirBlankDown or DirBlankUp) for a tile of goal-row-class g, or
//     Sentinel if no such neighbor exists.
//
// Why:
//
//   - The heuristic's vertical/horizontal halves each depend only on which
//     row a tile's goal-class is currently sitting in, not on exact tile
//     identity. Collapsing the 16!/2 board states down to ~25k row-class
//     patterns is what makes the Walking-Distance bound both cheap to
//     maintain and admissible.
//
// Construction:
//
//   - Breadth-first search over pattern space starting from the solved
//     pattern (all tiles in their goal row). Each BFS step simulates
//     sliding one tile from an adjacent row into the row currently short
//     one tile (the "blank row"), which either discovers a new pattern or
//     links back to an already-known one.
//   - A hash index (map[Pattern]int32) resolves "is this pattern already
//     known" in O(1); the original reference implementation this is
//     grounded on performs the equivalent check with a linear scan, which
//     its own documentation notes is tolerable but not essential — Go's
//     map is the natural substitute.
//
// Complexity:
//
//   - Build: O(Size) patterns, O(1) amortized per transition via the hash
//     index; ~200KB for patterns, ~800KB for the link table.
//   - Neighbor lookup at search time: O(1).
package walkdist
