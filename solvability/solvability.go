package solvability

import (
	"errors"

	"github.com/katalvlaran/fifteen/board"
)

// ErrUnsolvable indicates a board fails the parity-based solvability test
// and must be rejected before a search is started.
var ErrUnsolvable = errors.New("solvability: configuration is not solvable")

// IsSolvable applies the canonical parity rule for 4-wide boards: letting I
// be the row-major inversion count and r the row of the blank (0-indexed
// from the top), a board is solvable iff (4-r) and I have opposite parity —
// equivalently, iff (I + r) is odd.
func IsSolvable(b board.Board) bool {
	inv := board.Inversions(b)

	blankIdx, err := b.BlankIndex()
	if err != nil {
		return false
	}
	row, _ := board.RowCol(blankIdx)

	rowFromBottomOdd := (board.Height-row)%2 == 1
	invEven := inv%2 == 0

	if rowFromBottomOdd {
		return invEven
	}

	return !invEven
}

// Validate returns ErrUnsolvable if b fails IsSolvable, nil otherwise.
func Validate(b board.Board) error {
	if !IsSolvable(b) {
		return ErrUnsolvable
	}

	return nil
}
