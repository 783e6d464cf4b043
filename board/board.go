package board

// New constructs an empty size×size Board with every cell unvisited.
// Returns ErrBoardSize if size < 1.
// Complexity: O(N²) time and memory.
func New(size int) (*Board, error) {
	if size < 1 {
		return nil, ErrBoardSize
	}
	cells := make([][]int, size)
	for r := 0; r < size; r++ {
		cells[r] = make([]int, size)
	}

	return &Board{size: size, cells: cells}, nil
}

// Size returns the board dimension N.
func (b *Board) Size() int {
	return b.size
}

// Squares returns the total number of squares, N².
func (b *Board) Squares() int {
	return b.size * b.size
}

// InBounds reports whether p lies within the board boundaries.
// Complexity: O(1).
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// At returns the visit mark at p: 0 if unvisited, otherwise the 1-based
// visit order. The caller must ensure p is in bounds.
// Complexity: O(1).
func (b *Board) At(p Position) int {
	return b.cells[p.Row][p.Col]
}

// Visited reports whether the square at p carries a visit mark.
// Complexity: O(1).
func (b *Board) Visited(p Position) bool {
	return b.cells[p.Row][p.Col] != 0
}

// Mark records p as the k-th square visited. The caller must ensure p is in
// bounds; solvers maintain the single-path invariant themselves.
// Complexity: O(1).
func (b *Board) Mark(p Position, k int) {
	b.cells[p.Row][p.Col] = k
}

// Unmark resets the square at p to unvisited. Used by the backtracking
// solver to roll back a failed branch before control returns to the caller.
// Complexity: O(1).
func (b *Board) Unmark(p Position) {
	b.cells[p.Row][p.Col] = 0
}

// Grid returns a deep copy of the cell matrix, so callers can inspect or
// display the board without aliasing solver-owned state.
// Complexity: O(N²) time and memory.
func (b *Board) Grid() [][]int {
	out := make([][]int, b.size)
	for r := 0; r < b.size; r++ {
		out[r] = make([]int, b.size)
		copy(out[r], b.cells[r])
	}

	return out
}

// Path reconstructs the visit sequence from the marks: element i is the
// square marked i+1. For a partially filled board (a stuck Las Vegas walk),
// the returned slice covers exactly the squares visited so far.
// Complexity: O(N²) time, O(N²) memory.
func (b *Board) Path() []Position {
	// First pass: find the highest mark present.
	last := 0
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.cells[r][c] > last {
				last = b.cells[r][c]
			}
		}
	}
	if last == 0 {
		return nil
	}
	// Second pass: place each marked square at its visit index.
	path := make([]Position, last)
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if k := b.cells[r][c]; k > 0 {
				path[k-1] = Position{Row: r, Col: c}
			}
		}
	}

	return path
}
