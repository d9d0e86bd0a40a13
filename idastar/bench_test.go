package idastar

import (
	"testing"

	"github.com/katalvlaran/fifteen/board"
	"github.com/katalvlaran/fifteen/heuristic"
	"github.com/katalvlaran/fifteen/walkdist"
)

// BenchmarkSolveKorf1 measures end-to-end search time on Korf's classic hard
// instance #1 (optimal length 57), the table construction excluded from the
// timed region since a real caller builds it once per process. The instance
// is rotated 180° with tiles relabeled t→16−t to fit this module's goal
// (blank lower-right instead of upper-left).
func BenchmarkSolveKorf1(b *testing.B) {
	eng := New(heuristic.New(walkdist.Build()), Options{})
	start := board.Board{13, 6, 8, 12, 15, 14, 0, 10, 11, 7, 4, 5, 9, 1, 3, 2}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = eng.Solve(start)
	}
}

// BenchmarkSolveShortScramble measures search time on a three-move scramble,
// representative of the shallow end of the search space.
func BenchmarkSolveShortScramble(b *testing.B) {
	eng := New(heuristic.New(walkdist.Build()), Options{})
	start := board.Board{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 0, 13, 14, 15}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = eng.Solve(start)
	}
}
