package fifteen

import (
	"github.com/katalvlaran/fifteen/idastar"
	"github.com/katalvlaran/fifteen/solvability"
)

// ErrUnsolvable is returned by Solve when the start configuration fails the
// parity-based solvability test; the search is never started for such a
// board, since IDA* would never terminate.
var ErrUnsolvable = solvability.ErrUnsolvable

// ErrDepthExceeded is returned by Solve if the search's defensive depth cap
// is reached without finding a solution. A solvable 4×4 board is always
// within 80 moves of the goal, so this signals an engine-level problem
// rather than an expected outcome.
var ErrDepthExceeded = idastar.ErrDepthExceeded
