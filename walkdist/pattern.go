package walkdist

import "github.com/katalvlaran/fifteen/board"

// Pattern is a packed 4×4 grid of goal-row-class counts: for (i,j) iterated
// i=0..3 outer, j=0..3 inner, the count at (i,j) occupies a 3-bit field,
// with (0,0) the most significant field of the 48 bits used.
type Pattern uint64

// Counts is the unpacked form of a Pattern: Counts[i][j] is the number of
// tiles currently sitting in row i whose goal row-class is j.
type Counts [board.Height][board.Width]int

// Pack encodes Counts into a Pattern.
func Pack(c Counts) Pattern {
	var p Pattern
	for i := 0; i < board.Height; i++ {
		for j := 0; j < board.Width; j++ {
			p = (p << 3) | Pattern(c[i][j])
		}
	}

	return p
}

// Unpack decodes a Pattern back into Counts.
func Unpack(p Pattern) Counts {
	var c Counts
	for i := board.Height - 1; i >= 0; i-- {
		for j := board.Width - 1; j >= 0; j-- {
			c[i][j] = int(p & 7)
			p >>= 3
		}
	}

	return c
}
