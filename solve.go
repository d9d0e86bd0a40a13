package fifteen

import (
	"github.com/katalvlaran/fifteen/board"
	"github.com/katalvlaran/fifteen/heuristic"
	"github.com/katalvlaran/fifteen/idastar"
	"github.com/katalvlaran/fifteen/solvability"
	"github.com/katalvlaran/fifteen/walkdist"
)

// Board is a flat, row-major snapshot of the 4×4 puzzle, 0 denoting the
// blank.
type Board = board.Board

// Goal is the canonical solved board: tiles 1..15 in row-major order, blank
// in the lower-right cell.
var Goal = board.Goal

// Direction names the four ways the blank can slide.
type Direction = idastar.Direction

// Move records one step of a solution as the direction the blank slid.
type Move = idastar.Move

// The four directions a solution's moves are drawn from.
const (
	Up    = idastar.Up
	Down  = idastar.Down
	Left  = idastar.Left
	Right = idastar.Right
)

// Options configures a Solver's search engine.
type Options = idastar.Options

// Solver holds the Walking-Distance and Inversion-Distance tables and the
// configured search engine built from them. Table construction happens
// once, in NewSolver; a Solver is safe to reuse across any number of calls
// to Solve.
type Solver struct {
	engine *idastar.Engine
}

// NewSolver builds the heuristic tables and returns a Solver configured
// with opts. Table construction is the expensive one-time cost described
// in walkdist.Build; every subsequent Solve call reuses it.
func NewSolver(opts Options) *Solver {
	eval := heuristic.New(walkdist.Build())

	return &Solver{engine: idastar.New(eval, opts)}
}

// Solve validates b against the solvability predicate and, if solvable,
// returns the minimum-length move sequence to Goal along with the total
// number of search nodes expanded. Returns ErrUnsolvable without searching
// if b fails the parity test.
func (s *Solver) Solve(b Board) ([]Move, uint64, error) {
	if err := solvability.Validate(b); err != nil {
		return nil, 0, err
	}

	return s.engine.Solve(b)
}
