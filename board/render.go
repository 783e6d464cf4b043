package board

import (
	"fmt"
	"strings"
)

// String renders the board as a table of visit marks with row and column
// headers. Unvisited squares print as 0. Intended for CLI display and
// debugging; the format is stable so tests may rely on it.
// Complexity: O(N²).
func (b *Board) String() string {
	var sb strings.Builder

	// Column headers.
	sb.WriteString("    ")
	for c := 0; c < b.size; c++ {
		fmt.Fprintf(&sb, "%3d ", c)
	}
	sb.WriteByte('\n')
	sb.WriteString("    " + strings.Repeat("-", b.size*4+1) + "\n")

	// Rows with visit marks.
	for r := 0; r < b.size; r++ {
		fmt.Fprintf(&sb, "%2d |", r)
		for c := 0; c < b.size; c++ {
			fmt.Fprintf(&sb, "%3d ", b.cells[r][c])
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("    " + strings.Repeat("-", b.size*4+1) + "\n")

	return sb.String()
}
