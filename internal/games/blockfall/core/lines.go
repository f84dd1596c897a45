package core

// ClearLines removes full rows and returns how many were removed.
//
// Rows are evaluated bottom to top, each index once per call. When a row is
// cleared everything above it moves down one row and row 0 becomes Empty;
// the row that lands in the cleared index is not re-checked until the next
// call, which happens on the following frame.
func ClearLines(g *Grid) int {
	cleared := 0
	for y := g.H - 1; y >= 0; y-- {
		if !g.RowFull(y) {
			continue
		}
		collapseRow(g, y)
		cleared++
	}
	return cleared
}

// collapseRow shifts rows 0..y-1 down by one, overwriting row y.
func collapseRow(g *Grid, y int) {
	for row := y; row > 0; row-- {
		copy(g.Cells[row*g.W:(row+1)*g.W], g.Cells[(row-1)*g.W:row*g.W])
	}
	for x := 0; x < g.W; x++ {
		g.Cells[x] = Empty
	}
}
