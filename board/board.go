package board

import "errors"

// Dimensions of the fixed 4×4 fifteen-puzzle board.
const (
	Width  = 4
	Height = 4
	Size   = Width * Height

	// Blank is the tile value representing the empty cell.
	Blank = 0
)

// ErrBlankNotFound indicates a Board has no cell holding the blank value.
// A well-formed Board always has exactly one; seeing this error means a
// caller constructed or mutated a Board outside the invariants this
// module relies on.
var ErrBlankNotFound = errors.New("board: blank tile not found")

// Board is a flat, row-major snapshot of the 4×4 puzzle: Board[row*Width+col]
// holds the tile at (row, col), with 0 denoting the blank. Values 1..15 each
// appear exactly once in a well-formed Board.
type Board [Size]int8

// Goal is the canonical solved board: tiles 1..15 in row-major order, blank
// in the lower-right cell.
var Goal = Board{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0}

// Conv permutes tile values so that a Walking-Distance table built for the
// vertical axis can be reused for the horizontal axis: Conv[t] is the tile
// value t would carry if the puzzle's goal were transposed. Conv[0]=0 so the
// blank maps to itself.
var Conv = [Size]int8{
	0,
	1, 5, 9, 13,
	2, 6, 10, 14,
	3, 7, 11, 15,
	4, 8, 12,
}

// ConvP permutes board *positions* to produce the transposed board:
// position i of the transposed board holds the tile at position ConvP[i] of
// the original. ConvP and Conv are not interchangeable: Conv acts on tile
// values, ConvP on positions.
var ConvP = [Size]int8{
	0, 4, 8, 12,
	1, 5, 9, 13,
	2, 6, 10, 14,
	3, 7, 11, 15,
}

// RowCol decomposes a row-major position into (row, col).
func RowCol(pos int) (row, col int) {
	return pos / Width, pos % Width
}

// Index composes a (row, col) pair into a row-major position.
func Index(row, col int) int {
	return row*Width + col
}

// BlankIndex returns the unique position holding the blank value.
// Returns ErrBlankNotFound if no cell is blank, which signals a malformed
// Board rather than a recoverable input error.
func (b Board) BlankIndex() (int, error) {
	for i, v := range b {
		if v == Blank {
			return i, nil
		}
	}

	return -1, ErrBlankNotFound
}

// Inversions counts the unordered pairs (i,j), i<j, in row-major order whose
// non-blank values are inverted (b[j] < b[i]). Used directly for the
// vertical axis and, after an axis flip, for the horizontal axis.
func Inversions(b Board) int {
	count := 0
	for i := 0; i < Size; i++ {
		vi := b[i]
		if vi == Blank {
			continue
		}
		for j := i + 1; j < Size; j++ {
			vj := b[j]
			if vj != Blank && vj < vi {
				count++
			}
		}
	}

	return count
}

// Flipped returns the axis-flipped board used to compute the horizontal half
// of the heuristic: Flipped(b)[i] = Conv[b[ConvP[i]]], with the blank mapping
// to itself.
func Flipped(b Board) Board {
	var out Board
	for i := 0; i < Size; i++ {
		out[i] = Conv[b[ConvP[i]]]
	}

	return out
}
