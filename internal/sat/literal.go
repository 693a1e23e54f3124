package sat

// The CNF variable space treats the grid as a size×size×size cube:
// one boolean variable per (row, col, digit) triple meaning "the cell
// at (row, col) holds digit+1". Index is the only place this layout is
// defined; encoder and decoder both go through it.

// Index maps a zero-based (row, col, digit) triple to its dense
// variable index in 0..size³. The mapping is bijective over the cube.
func Index(row, col, digit, size int) int {
	return digit + size*(col+size*row)
}

// Triple inverts Index.
func Triple(index, size int) (row, col, digit int) {
	digit = index % size
	index /= size
	col = index % size
	row = index / size
	return
}

// Pos and Neg build signed DIMACS-style literals (1-based, sign is
// polarity) from a variable index.
func Pos(index int) int { return index + 1 }
func Neg(index int) int { return -(index + 1) }
