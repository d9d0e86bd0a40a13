// Package fifteen solves arbitrary solvable 4×4 sliding-tile puzzles
// optimally: given a start configuration, it returns a minimum-length move
// sequence that reaches the canonical solved layout.
//
// What:
//
//   - Solver: wires table construction, the heuristic evaluator, and the
//     search engine together behind a single Solve call.
//   - Board, Move, Direction: the public vocabulary, re-exported from the
//     board and idastar subpackages so callers need import only this
//     package for ordinary use.
//
// Why:
//
//   - Optimal solving of the 15-puzzle is the practical demonstration of
//     IDA* with an admissible, incrementally-maintained heuristic; that
//     search core lives in idastar, driven by the Walking-Distance and
//     Inversion-Distance tables built in walkdist and invdist.
//
// Under the hood:
//
//	board/       — the fixed 4×4 board type, blank lookup, inversion count
//	walkdist/    — BFS construction of the Walking-Distance pattern table
//	invdist/     — the Inversion-Distance lookup table
//	heuristic/   — the composite admissible heuristic evaluator
//	solvability/ — the parity-based solvability predicate
//	idastar/     — the iterative-deepening search engine
//
// A minimal run:
//
//	s := fifteen.NewSolver(fifteen.Options{})
//	moves, nodes, err := s.Solve(fifteen.Board{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 0, 15})
package fifteen
