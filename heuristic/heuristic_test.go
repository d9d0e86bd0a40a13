package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fifteen/board"
	"github.com/katalvlaran/fifteen/walkdist"
)

func newTestEvaluator(t *testing.T) *Evaluator {
	t.Helper()

	return New(walkdist.Build())
}

// TestEvaluateGoalIsZero checks that the solved board's indices are all
// zero and h=0.
func TestEvaluateGoalIsZero(t *testing.T) {
	e := newTestEvaluator(t)

	idx, h := e.Evaluate(board.Goal)
	assert.Equal(t, Indices{}, idx)
	assert.Zero(t, h)
}

// TestEvaluateOneMove checks that a board one slide away from solved has
// h=1.
func TestEvaluateOneMove(t *testing.T) {
	e := newTestEvaluator(t)

	b := board.Board{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 0, 15}
	_, h := e.Evaluate(b)
	assert.Equal(t, 1, h)
}

// TestEvaluateIsAdmissibleOnKnownInstances compares h against known-optimal
// solution lengths, including Korf's classic hard instance #1: h must never
// exceed the true optimum, and must share its parity.
func TestEvaluateIsAdmissibleOnKnownInstances(t *testing.T) {
	e := newTestEvaluator(t)

	cases := []struct {
		name    string
		b       board.Board
		optimal int
	}{
		{"solved", board.Goal, 0},
		{"oneMove", board.Board{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 0, 15}, 1},
		{"twoMove", board.Board{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 0, 14, 15}, 2},
		{"shortScramble", board.Board{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 0, 13, 14, 15}, 3},
		// Korf's instance #1, rotated 180° with tiles relabeled t→16−t to fit
		// this module's goal (blank lower-right instead of upper-left).
		{"korf1", board.Board{13, 6, 8, 12, 15, 14, 0, 10, 11, 7, 4, 5, 9, 1, 3, 2}, 57},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, h := e.Evaluate(tc.b)
			assert.LessOrEqualf(t, h, tc.optimal, "h exceeds known optimal")
			assert.Equalf(t, 0, (tc.optimal-h)%2, "h and optimal differ in parity")
		})
	}
}

// TestNeighborReversible checks that the Walking-Distance link table is
// bidirectional at the evaluator's call surface: moving a tile one way and
// its reverse the other returns to the starting pattern.
func TestNeighborReversible(t *testing.T) {
	e := newTestEvaluator(t)

	// From the solved pattern, the blank occupies row 3 (short one tile), so
	// the only adjacent row in bounds is row 2, reached via DirBlankUp for
	// goal-class 2 (row 2's tiles).
	idx, _ := e.Evaluate(board.Goal)
	next := e.Neighbor(idx.WDV, walkdist.DirBlankUp, 2)
	require.NotEqual(t, walkdist.Sentinel, next, "Neighbor from solved pattern, class 2, must exist")

	back := e.Neighbor(next, walkdist.DirBlankDown, 2)
	assert.Equal(t, idx.WDV, back)
}
