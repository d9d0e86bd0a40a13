package idastar

import (
	"errors"

	"github.com/katalvlaran/fifteen/board"
	"github.com/katalvlaran/fifteen/heuristic"
	"github.com/katalvlaran/fifteen/walkdist"
)

// Direction names the four ways the blank can slide.
type Direction int8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String renders a Direction by name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Direction(?)"
	}
}

// Move records one step of a solution as the direction the blank slid.
type Move = Direction

// order fixes the child-expansion order: Up, Down, Left, Right. Since
// several optimal solutions can exist, this order determines which one a
// search returns; it never affects the returned length.
var order = [4]Direction{Up, Down, Left, Right}

// DefaultMaxDepth bounds the outer loop defensively. The 15-puzzle's proven
// diameter is 80 moves, so this is never expected to bind on a solvable
// board; it exists only to stop runaway recursion if that invariant is
// ever violated by a future heuristic change.
const DefaultMaxDepth = 100

// ErrDepthExceeded is returned when the outer loop's cost bound passes
// MaxDepth without finding a solution.
var ErrDepthExceeded = errors.New("idastar: no solution found within max depth")

// Options configures an Engine. The zero value is valid.
type Options struct {
	// MaxDepth caps the outer loop's cost bound. Zero means DefaultMaxDepth.
	MaxDepth int

	// OnIterationComplete, if set, runs after each iteration, including the
	// one that finds a solution, with the cost bound just tried and the
	// nodes it expanded. Instrumentation
	// only; Solve's correctness never depends on it.
	OnIterationComplete func(limit int, nodes uint64)
}

// Engine runs the IDA* search against one Evaluator's tables. An Engine
// holds no mutable state of its own between calls to Solve.
type Engine struct {
	eval *heuristic.Evaluator
	opts Options
}

// New builds an Engine from an Evaluator and Options.
func New(eval *heuristic.Evaluator, opts Options) *Engine {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	return &Engine{eval: eval, opts: opts}
}

// Solve finds a minimum-length move sequence from b to board.Goal, along
// with the total number of nodes expanded across every iteration. b must
// already be known solvable; Solve does not check.
func (e *Engine) Solve(b board.Board) ([]Move, uint64, error) {
	idx, h := e.eval.Evaluate(b)

	blank, err := b.BlankIndex()
	if err != nil {
		panic("idastar: Solve called on a board with no blank")
	}

	s := &searcher{eng: e, board: b}

	var totalNodes uint64
	for limit := h; limit <= e.opts.MaxDepth; limit += 2 {
		s.moves = s.moves[:0]
		s.nodes = 0

		found := s.run(blank, -1, 0, limit, idx)
		totalNodes += s.nodes

		if e.opts.OnIterationComplete != nil {
			e.opts.OnIterationComplete(limit, s.nodes)
		}

		if found {
			out := make([]Move, len(s.moves))
			copy(out, s.moves)

			return out, totalNodes, nil
		}
	}

	return nil, totalNodes, ErrDepthExceeded
}

// searcher holds the single mutable board and move stack shared by every
// recursive call within one Solve invocation; the DFS mutates board in
// place and reverts on unwind rather than copying it per node.
type searcher struct {
	eng   *Engine
	board board.Board
	moves []Move
	nodes uint64
}

// run performs one bounded DFS step. blank is the blank's current position;
// prevBlank is the position it occupied one move ago, or -1 at the root.
// idx holds the four heuristic indices consistent with the board's current
// (already-applied) state.
func (s *searcher) run(blank, prevBlank, g, limit int, idx heuristic.Indices) bool {
	s.nodes++

	h := s.eng.eval.H(idx)
	if h == 0 {
		return true
	}
	if g+h > limit {
		return false
	}

	row, col := board.RowCol(blank)

	for _, dir := range order {
		child, ok := childBlank(blank, row, col, dir)
		if !ok || child == prevBlank {
			continue
		}

		tile := s.board[child]
		nextIdx := s.eng.step(idx, s.board, blank, child, tile, dir)

		s.board[blank], s.board[child] = s.board[child], s.board[blank]
		s.moves = append(s.moves, dir)

		if s.run(child, blank, g+1, limit, nextIdx) {
			return true
		}

		s.moves = s.moves[:len(s.moves)-1]
		s.board[blank], s.board[child] = s.board[child], s.board[blank]
	}

	return false
}

// childBlank returns the position the blank reaches by sliding in dir, or
// false if dir would leave the board.
func childBlank(blank, row, col int, dir Direction) (int, bool) {
	switch dir {
	case Up:
		if row == 0 {
			return 0, false
		}

		return blank - board.Width, true
	case Down:
		if row == board.Height-1 {
			return 0, false
		}

		return blank + board.Width, true
	case Left:
		if col == 0 {
			return 0, false
		}

		return blank - 1, true
	case Right:
		if col == board.Width-1 {
			return 0, false
		}

		return blank + 1, true
	default:
		panic("idastar: invalid Direction")
	}
}

// step computes the post-move heuristic indices incrementally. blank and
// child are the positions before the swap; the caller applies the swap to
// the board separately. tile is the value currently at child, the one that
// slides into blank.
func (e *Engine) step(idx heuristic.Indices, b board.Board, blank, child int, tile int8, dir Direction) heuristic.Indices {
	switch dir {
	case Up:
		return e.stepVertical(idx, b, child, blank, tile, walkdist.DirBlankUp)
	case Down:
		return e.stepVertical(idx, b, blank, child, tile, walkdist.DirBlankDown)
	case Left:
		return e.stepHorizontal(idx, b, blank, child, tile, walkdist.DirBlankUp)
	case Right:
		return e.stepHorizontal(idx, b, blank, child, tile, walkdist.DirBlankDown)
	default:
		panic("idastar: invalid Direction")
	}
}

// stepVertical updates idx_v/inv_v for a vertical move. lo and hi are the
// blank and child positions in increasing flat-index order; tile is the
// value sliding into the blank. The inversion delta is computed once over
// the cells strictly between lo and hi in row-major order, then negated for
// a Down move (its sign convention is the mirror of Up's).
func (e *Engine) stepVertical(idx heuristic.Indices, b board.Board, lo, hi int, tile int8, dir walkdist.Direction) heuristic.Indices {
	delta := 0
	for j := lo + 1; j < hi; j++ {
		if b[j] > tile {
			delta++
		} else {
			delta--
		}
	}
	if dir == walkdist.DirBlankDown {
		delta = -delta
	}

	idx.InvV += int32(delta)
	idx.WDV = e.eval.Neighbor(idx.WDV, dir, int((tile-1)/4))

	return idx
}

// stepHorizontal updates idx_h/inv_h for a horizontal move. blank and child
// are the positions before the swap (same row, adjacent columns). For a Left
// move the scan walks child's column downward and blank's column upward; for
// a Right move, blank's column downward and child's column upward. Either
// way the row they share is excluded, each tile's CONV-mapped value is
// compared against the moving tile's, and a Right move negates the sign
// convention established for Left.
func (e *Engine) stepHorizontal(idx heuristic.Indices, b board.Board, blank, child int, tile int8, dir walkdist.Direction) heuristic.Indices {
	conv := board.Conv[tile]

	var belowStart, aboveStart int
	if dir == walkdist.DirBlankUp { // Left move
		belowStart = child + board.Width
		aboveStart = blank - board.Width
	} else { // Right move
		belowStart = blank + board.Width
		aboveStart = child - board.Width
	}

	delta := 0
	for j := belowStart; j < board.Size; j += board.Width {
		if board.Conv[b[j]] > conv {
			delta++
		} else {
			delta--
		}
	}
	for j := aboveStart; j >= 0; j -= board.Width {
		if board.Conv[b[j]] > conv {
			delta++
		} else {
			delta--
		}
	}
	if dir == walkdist.DirBlankDown {
		delta = -delta
	}

	idx.InvH += int32(delta)
	idx.WDH = e.eval.Neighbor(idx.WDH, dir, int((conv-1)/4))

	return idx
}
