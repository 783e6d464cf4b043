package board

// LegalMoves returns the squares reachable from p by one knight move that
// are in bounds and unvisited, in KnightMoves table order. Callers that need
// a different ordering (the Warnsdorff heuristic does) re-sort the result;
// the table order itself is the canonical tie-break.
// Pure with respect to the board snapshot; no side effects.
// Complexity: O(1) time (8 candidates), O(1) memory (≤8-entry slice).
func (b *Board) LegalMoves(p Position) []Position {
	moves := make([]Position, 0, len(KnightMoves))
	var q Position
	for _, d := range KnightMoves {
		q = Position{Row: p.Row + d.DR, Col: p.Col + d.DC}
		if b.InBounds(q) && !b.Visited(q) {
			moves = append(moves, q)
		}
	}

	return moves
}

// CountMoves counts the legal onward moves from p without allocating.
// This is the Warnsdorff degree used to order candidates.
// Complexity: O(1).
func (b *Board) CountMoves(p Position) int {
	count := 0
	var q Position
	for _, d := range KnightMoves {
		q = Position{Row: p.Row + d.DR, Col: p.Col + d.DC}
		if b.InBounds(q) && !b.Visited(q) {
			count++
		}
	}

	return count
}

// Closes reports whether current is exactly one knight move away from start,
// so a full path ending at current can close into a cycle. This is a pure
// geometric predicate over the two positions: it must not consult any board,
// since the start square is always occupied by mark 1.
// Complexity: O(1).
func Closes(start, current Position) bool {
	for _, d := range KnightMoves {
		if current.Row+d.DR == start.Row && current.Col+d.DC == start.Col {
			return true
		}
	}

	return false
}
