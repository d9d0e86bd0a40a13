// Package idastar implements the iterative-deepening depth-first search
// that drives the solver: an outer loop raising a cost bound by 2 each
// round, around a bounded recursive DFS that mutates one board in place and
// maintains the Walking-Distance/Inversion-Distance indices incrementally
// instead of recomputing them at every node.
//
// What:
//
//   - Engine.Solve: the outer iterative-deepening loop; returns the move
//     list, total expanded-node count, and an error only if the cost bound
//     passes Options.MaxDepth (a defensive bound, default 100, above the
//     puzzle's proven 80-move diameter, so never expected to trigger on a
//     solvable board).
//   - The bounded DFS: depth-first descent with parent-move retraction
//     pruning, incremental index maintenance, and in-place board mutation
//     reverted on backtrack.
//
// Why:
//
//   - Recomputing the heuristic from scratch at every node would make the
//     search quadratically slower than it needs to be; the Walking-Distance
//     link table and the short inversion scans let each move update the
//     indices in O(board width) instead.
package idastar
