package core

import (
	"fmt"
	"strings"
)

// Default playfield dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// View is read-only access to a grid, handed to renderers.
type View interface {
	Width() int
	Height() int
	At(x, y int) Cell
}

// Grid is the playfield. Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	Cells []Cell
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]Cell, w*h),
	}
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Get returns the cell at c, or Wall if c is off-grid.
func (g *Grid) Get(c Coord) Cell {
	if !g.InBounds(c) {
		return Wall
	}
	return g.Cells[g.index(c)]
}

// Look returns the neighbor of c in direction d, or Wall off-grid.
func (g *Grid) Look(c Coord, d Dir) Cell {
	return g.Get(c.Step(d))
}

// Set stores cell at c. Off-grid coordinates and the Wall sentinel are ignored.
func (g *Grid) Set(c Coord, cell Cell) {
	if !g.InBounds(c) || cell == Wall {
		return
	}
	g.Cells[g.index(c)] = cell
}

// Width implements View.
func (g *Grid) Width() int { return g.W }

// Height implements View.
func (g *Grid) Height() int { return g.H }

// At implements View.
func (g *Grid) At(x, y int) Cell { return g.Get(C(x, y)) }

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{W: g.W, H: g.H, Cells: cells}
}

// CopyFrom overwrites g with the contents of src. Dimensions must match.
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.Cells, src.Cells)
}

// Equal returns true if both grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}

// Count returns the number of cells in the given state.
func (g *Grid) Count(state Cell) int {
	n := 0
	for _, cell := range g.Cells {
		if cell == state {
			n++
		}
	}
	return n
}

// ActiveCount returns the number of cells belonging to the falling piece.
func (g *Grid) ActiveCount() int {
	return g.Count(ActiveCore) + g.Count(ActiveAux)
}

// ActiveCoords returns the falling piece's cells in row-major order.
func (g *Grid) ActiveCoords() []Coord {
	var coords []Coord
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Cells[y*g.W+x].Active() {
				coords = append(coords, C(x, y))
			}
		}
	}
	return coords
}

// RowFull reports whether every cell of row y is Locked.
func (g *Grid) RowFull(y int) bool {
	if y < 0 || y >= g.H {
		return false
	}
	for x := 0; x < g.W; x++ {
		if g.Cells[y*g.W+x] != Locked {
			return false
		}
	}
	return true
}

// Reset clears every cell.
func (g *Grid) Reset() {
	for i := range g.Cells {
		g.Cells[i] = Empty
	}
}

// String renders the grid one row per line using Cell.Rune.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			sb.WriteRune(g.Cells[y*g.W+x].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseGrid builds a grid from the ASCII form produced by String.
// Blank lines and surrounding whitespace are ignored; all rows must have the
// same width.
func ParseGrid(s string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse grid: no rows")
	}

	w := len(rows[0])
	g := NewGrid(w, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("parse grid: row %d has width %d, expected %d", y, len(row), w)
		}
		for x, r := range row {
			cell, ok := cellFromRune(r)
			if !ok {
				return nil, fmt.Errorf("parse grid: unknown cell %q at (%d,%d)", r, x, y)
			}
			g.Cells[y*w+x] = cell
		}
	}
	return g, nil
}
