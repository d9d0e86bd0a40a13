// Package heuristic combines the Walking-Distance and Inversion-Distance
// tables into the admissible lower bound idastar searches against, and
// provides the full evaluator used once at the start of a search to derive
// the four indices (vertical/horizontal Walking-Distance pattern index,
// vertical/horizontal raw inversion count) that idastar then maintains
// incrementally move by move.
//
// What:
//
//   - Indices: the four numbers that fully determine h for a board.
//   - Evaluator.H: h = max(wd_v,id_v) + max(wd_h,id_h).
//   - Evaluator.Evaluate: computes Indices and h from a board from scratch.
//   - Evaluator.Neighbor: exposes the Walking-Distance link table so idastar
//     can maintain idx_v/idx_h in O(1) per move without holding the
//     walkdist.Tables itself.
//
// Why:
//
//   - Splitting "evaluate once" (this package) from "maintain incrementally"
//     (idastar) mirrors the actual cost structure: the full evaluator runs
//     once per search, the incremental update runs once per explored node.
package heuristic
