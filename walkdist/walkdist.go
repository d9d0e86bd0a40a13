package walkdist

import (
	"fmt"

	"github.com/katalvlaran/fifteen/board"
)

// Size is the number of reachable goal-row-class patterns: the fixed point
// of the breadth-first search below, starting from the solved pattern.
const Size = 24964

// Sentinel marks "no such neighbor exists from this pattern" in Tables.Link.
const Sentinel = Size

// Direction indexes the first dimension of Tables.Link. DirBlankDown means a
// tile moved up into the blank row, i.e. the blank itself moves down;
// DirBlankUp is the reverse.
type Direction int

const (
	DirBlankDown Direction = iota
	DirBlankUp
)

// Tables holds the fully-populated Walking-Distance lookup tables. Once
// returned by Build, Tables is read-only for the remainder of the process
// and safe to share by reference across any number of concurrent searches.
type Tables struct {
	// Pattern[i] is the packed pattern at index i; Pattern[0] is the solved
	// pattern.
	Pattern []Pattern
	// Dist[i] is the minimum number of row-direction moves from the solved
	// pattern to Pattern[i].
	Dist []uint8
	// Link[i][dir][g] is the neighbor of pattern i under direction dir for a
	// tile of goal-row-class g, or Sentinel.
	Link [][2][board.Width]int32

	index map[Pattern]int32
}

// Neighbor returns the link-table entry for pattern i, direction dir and
// goal-row-class g. Returns Sentinel if no such transition exists.
func (t *Tables) Neighbor(i int32, dir Direction, class int) int32 {
	return t.Link[i][dir][class]
}

// IndexOf returns the table index of pattern p, if known.
func (t *Tables) IndexOf(p Pattern) (int32, bool) {
	i, ok := t.index[p]

	return i, ok
}

// solvedCounts is the goal-row-class distribution of the solved board: every
// tile sits in its own goal row, and the blank row holds three tiles rather
// than four (the fourth cell there is the blank itself).
func solvedCounts() Counts {
	var c Counts
	c[0][0] = board.Width
	c[1][1] = board.Width
	c[2][2] = board.Width
	c[3][3] = board.Width - 1

	return c
}

func blankSentinelLinks() [2][board.Width]int32 {
	var links [2][board.Width]int32
	for d := 0; d < 2; d++ {
		for g := 0; g < board.Width; g++ {
			links[d][g] = Sentinel
		}
	}

	return links
}

// blankRow returns the unique row whose tile-count sums to one less than the
// other rows (Width-1 rather than Width) — the row currently short a tile
// because that tile is the blank.
func blankRow(c Counts) int {
	for i := 0; i < board.Height; i++ {
		sum := 0
		for j := 0; j < board.Width; j++ {
			sum += c[i][j]
		}
		if sum == board.Width-1 {
			return i
		}
	}

	return -1
}

// Build runs the one-time breadth-first construction of the Walking-Distance
// tables: starting from the solved pattern, it repeatedly simulates sliding
// a tile from a row adjacent to the blank row into the blank row, under
// every goal-row-class, discovering new patterns and recording bidirectional
// transitions between them.
//
// The pattern space is fully determined by the board dimensions, so landing
// on anything but exactly Size patterns means the construction itself is
// broken; Build panics rather than returning a recoverable error, the same
// way idastar panics on a broken search invariant.
func Build() *Tables {
	p0 := Pack(solvedCounts())

	t := &Tables{
		Pattern: make([]Pattern, 1, Size),
		Dist:    make([]uint8, 1, Size),
		Link:    make([][2][board.Width]int32, 1, Size),
		index:   make(map[Pattern]int32, Size),
	}
	t.Pattern[0] = p0
	t.Dist[0] = 0
	t.Link[0] = blankSentinelLinks()
	t.index[p0] = 0

	for top := 0; top < len(t.Pattern); top++ {
		counts := Unpack(t.Pattern[top])
		nextDist := t.Dist[top] + 1
		b := blankRow(counts)
		if b < 0 {
			panic("walkdist: pattern has no row short a tile")
		}

		for _, r := range [2]int{b + 1, b - 1} {
			if r < 0 || r >= board.Height {
				continue
			}
			dir := DirBlankDown
			if r == b-1 {
				dir = DirBlankUp
			}

			for g := 0; g < board.Width; g++ {
				if counts[r][g] == 0 {
					continue
				}
				counts[r][g]--
				counts[b][g]++
				next := Pack(counts)

				j, ok := t.index[next]
				if !ok {
					j = int32(len(t.Pattern))
					t.index[next] = j
					t.Pattern = append(t.Pattern, next)
					t.Dist = append(t.Dist, nextDist)
					t.Link = append(t.Link, blankSentinelLinks())
				}

				t.Link[top][dir][g] = j
				t.Link[j][dir^1][g] = int32(top)

				counts[b][g]--
				counts[r][g]++
			}
		}
	}

	if len(t.Pattern) != Size {
		panic(fmt.Sprintf("walkdist: breadth-first construction reached %d patterns, want %d", len(t.Pattern), Size))
	}

	return t
}
