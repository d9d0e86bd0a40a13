package invdist

// Size bounds the raw inversion counts this table covers: 15 tiles admit at
// most 15·14/2 = 105 inversions along one axis, so valid indices are
// [0, Size).
const Size = 106

// Table holds IDTBL: Table[k] is the minimum number of tile-adjacent swaps
// needed to sort an axis carrying k inversions.
type Table [Size]uint8

// Build fills Table[k] = ⌊k/3⌋ + (k mod 3): each adjacent swap along the axis
// reduces the inversion count by at most 3, so this is the cheapest way to
// account for the remainder once full-3 reductions are exhausted.
func Build() Table {
	var t Table
	for k := 0; k < Size; k++ {
		t[k] = uint8(k/3 + k%3)
	}

	return t
}
