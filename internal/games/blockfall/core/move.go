package core

import "sort"

// Rotation is a quarter-turn direction.
type Rotation uint8

const (
	Clockwise Rotation = iota
	CounterClockwise
)

// String returns "CW" or "CCW".
func (r Rotation) String() string {
	if r == Clockwise {
		return "CW"
	}
	return "CCW"
}

// Shift moves the falling piece one column left or right.
// The move is all-or-nothing: it happens only if every active cell's
// destination is inside the grid and either Empty or part of the piece.
func Shift(g *Grid, d Dir) bool {
	if d != DirLeft && d != DirRight {
		return false
	}
	cells := g.ActiveCoords()
	if !canTranslate(g, cells, d) {
		return false
	}
	translate(g, cells, d)
	return true
}

// SideContact reports whether any active cell has a Locked cell directly to
// its left or right. Walls do not count.
func SideContact(g *Grid) bool {
	for _, c := range g.ActiveCoords() {
		if g.Look(c, DirLeft) == Locked || g.Look(c, DirRight) == Locked {
			return true
		}
	}
	return false
}

// canTranslate checks every destination of a one-cell move.
func canTranslate(g *Grid, cells []Coord, d Dir) bool {
	if len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		dst := g.Look(c, d)
		if dst != Empty && !dst.Active() {
			return false
		}
	}
	return true
}

// translate moves cells one step in d. Cells are processed from the leading
// edge of the motion backwards, so each destination is already vacated.
func translate(g *Grid, cells []Coord, d Dir) {
	ordered := make([]Coord, len(cells))
	copy(ordered, cells)

	delta := d.Delta()
	sort.Slice(ordered, func(i, j int) bool {
		// Larger projection onto the motion vector goes first.
		pi := ordered[i].X*delta.X + ordered[i].Y*delta.Y
		pj := ordered[j].X*delta.X + ordered[j].Y*delta.Y
		return pi > pj
	})

	for _, c := range ordered {
		cell := g.Get(c)
		g.Set(c, Empty)
		g.Set(c.Step(d), cell)
	}
}

// pivot picks the rotation center. Clockwise turns about the first active
// cell in row-major order; counterclockwise about the top-most cell of the
// right-most column. A clockwise turn leaves its pivot as the top of the
// right-most column and vice versa, so CW and CCW undo each other.
func pivot(cells []Coord, r Rotation) Coord {
	p := cells[0]
	if r == Clockwise {
		return p
	}
	for _, c := range cells[1:] {
		if c.X > p.X || (c.X == p.X && c.Y < p.Y) {
			p = c
		}
	}
	return p
}

// rotateOffset applies a quarter turn to an offset. Y grows downward, so
// clockwise maps (dx,dy) to (-dy,dx).
func rotateOffset(d Coord, r Rotation) Coord {
	if r == Clockwise {
		return Coord{X: -d.Y, Y: d.X}
	}
	return Coord{X: d.Y, Y: -d.X}
}

// Rotate turns the falling piece a quarter turn about its pivot.
// The turn is built in a scratch grid and committed only if every
// destination is on the grid. A destination on a Locked cell aborts the turn
// unless intoLocked is set, in which case the locked block is overwritten.
func Rotate(g *Grid, r Rotation, intoLocked bool) bool {
	cells := g.ActiveCoords()
	if len(cells) == 0 {
		return false
	}
	p := pivot(cells, r)

	scratch := g.Clone()
	for _, c := range cells {
		scratch.Set(c, Empty)
	}

	for _, c := range cells {
		dst := p.Add(rotateOffset(c.Sub(p), r))
		if !g.InBounds(dst) {
			return false
		}
		if scratch.Get(dst) == Locked && !intoLocked {
			return false
		}
		scratch.Set(dst, g.Get(c))
	}

	g.CopyFrom(scratch)
	return true
}
