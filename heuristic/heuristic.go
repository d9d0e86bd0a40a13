package heuristic

import (
	"fmt"

	"github.com/katalvlaran/fifteen/board"
	"github.com/katalvlaran/fifteen/invdist"
	"github.com/katalvlaran/fifteen/walkdist"
)

// Indices are the four numbers that fully determine a board's heuristic
// value: the Walking-Distance pattern index and raw inversion count, one
// pair per axis.
type Indices struct {
	WDV, WDH   int32 // Walking-Distance pattern indices, vertical/horizontal
	InvV, InvH int32 // raw inversion counts, vertical/horizontal
}

// Evaluator combines a Walking-Distance Tables with an Inversion-Distance
// Table into the composite heuristic. An Evaluator is immutable after
// construction and safe to share across any number of concurrent searches.
type Evaluator struct {
	wd *walkdist.Tables
	id invdist.Table
}

// New builds an Evaluator from a Walking-Distance Tables, building its own
// Inversion-Distance table alongside it.
func New(wd *walkdist.Tables) *Evaluator {
	return &Evaluator{wd: wd, id: invdist.Build()}
}

// H returns the admissible lower bound for a set of Indices:
// h = max(WD_v, ID_v) + max(WD_h, ID_h).
func (e *Evaluator) H(idx Indices) int {
	wdv := int(e.wd.Dist[idx.WDV])
	wdh := int(e.wd.Dist[idx.WDH])
	idv := int(e.id[idx.InvV])
	idh := int(e.id[idx.InvH])

	return max(wdv, idv) + max(wdh, idh)
}

// Neighbor looks up the Walking-Distance link table: the pattern reached
// from idx under direction dir by moving a tile of the given goal-row-class.
// Exposed so idastar can maintain idx_v/idx_h incrementally without holding
// the walkdist.Tables itself.
func (e *Evaluator) Neighbor(idx int32, dir walkdist.Direction, class int) int32 {
	return e.wd.Neighbor(idx, dir, class)
}

// Evaluate computes the full Indices and h value for a board from scratch.
// Used once at the start of a search; idastar maintains the result
// incrementally from then on.
func (e *Evaluator) Evaluate(b board.Board) (Indices, int) {
	wdv := e.patternIndex(rowClassCounts(b))
	wdh := e.patternIndex(rowClassCounts(board.Flipped(b)))
	invv := int32(board.Inversions(b))
	invh := int32(board.Inversions(board.Flipped(b)))

	idx := Indices{WDV: wdv, WDH: wdh, InvV: invv, InvH: invh}

	return idx, e.H(idx)
}

// patternIndex packs counts and looks it up in the Walking-Distance table.
// A miss means the caller built a Counts the table construction could never
// reach, which is a programmer error rather than a recoverable one.
func (e *Evaluator) patternIndex(c walkdist.Counts) int32 {
	idx, ok := e.wd.IndexOf(walkdist.Pack(c))
	if !ok {
		panic(fmt.Sprintf("heuristic: pattern %v has no Walking-Distance index", c))
	}

	return idx
}

// rowClassCounts tallies, per board row, how many tiles currently sitting in
// that row belong (by goal row) elsewhere — or here: counts[i][g] is the
// number of tiles in row i whose goal row-class is g. The blank contributes
// nothing.
func rowClassCounts(b board.Board) walkdist.Counts {
	var c walkdist.Counts
	for i := 0; i < board.Height; i++ {
		for j := 0; j < board.Width; j++ {
			v := b[board.Index(i, j)]
			if v == board.Blank {
				continue
			}
			g := (int(v) - 1) / board.Width
			c[i][g]++
		}
	}

	return c
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}
