package core

// GravityResult reports what one gravity pass did.
type GravityResult struct {
	Detached int  // aux cells dropped on contact with the stack
	Locked   bool // the piece locked on contact with the stack
	Fell     bool // the piece dropped one row
	Stalled  bool // nothing changed; the settle pass ran and a spawn is due
}

// Gravity runs one gravity pass over g: detach, lock trigger, free fall and,
// when none of those changed the grid, the settle pass. The caller spawns
// the next piece when Stalled is set.
func Gravity(g *Grid) GravityResult {
	before := g.Clone()

	var res GravityResult
	res.Detached = detachAux(g)
	res.Locked = lockOnContact(g)
	if !res.Locked {
		res.Fell = fall(g)
	}

	if g.Equal(before) {
		res.Stalled = true
		settle(g)
	}
	return res
}

// detachAux clears aux cells resting on the stack. Scanned bottom-up.
func detachAux(g *Grid) int {
	n := 0
	for y := g.H - 1; y >= 0; y-- {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			if g.Get(c) == ActiveAux && g.Look(c, DirDown) == Locked {
				g.Set(c, Empty)
				n++
			}
		}
	}
	return n
}

// lockOnContact locks the whole piece when any core cell rests on the stack.
func lockOnContact(g *Grid) bool {
	for y := g.H - 1; y >= 0; y-- {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			if g.Get(c) == ActiveCore && g.Look(c, DirDown) == Locked {
				lockPiece(g)
				return true
			}
		}
	}
	return false
}

// lockPiece turns every core cell into Locked and drops every aux cell.
func lockPiece(g *Grid) {
	for i, cell := range g.Cells {
		switch cell {
		case ActiveCore:
			g.Cells[i] = Locked
		case ActiveAux:
			g.Cells[i] = Empty
		case Empty, Locked, Wall:
		}
	}
}

// fall drops the piece one row if nothing below any of its cells blocks it.
// The floor is a Wall, so a piece on the floor does not fall and the pass
// stalls instead.
func fall(g *Grid) bool {
	cells := g.ActiveCoords()
	if !canTranslate(g, cells, DirDown) {
		return false
	}
	translate(g, cells, DirDown)
	return true
}

// settle converts a piece that can no longer fall. Three stages:
//  1. bottom-up, an aux directly above a core is dropped unless the cell
//     above the aux is also a core;
//  2. every core with a core or Locked 4-neighbor locks (neighbors are read
//     from the grid as it was before this stage);
//  3. every aux with a Locked 4-neighbor is dropped.
func settle(g *Grid) {
	for y := g.H - 1; y >= 0; y-- {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			if g.Get(c) != ActiveCore {
				continue
			}
			above := c.Step(DirUp)
			if g.Get(above) == ActiveAux && g.Look(above, DirUp) != ActiveCore {
				g.Set(above, Empty)
			}
		}
	}

	snap := g.Clone()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			if snap.Get(c) == ActiveCore && (hasNeighbor(snap, c, ActiveCore) || hasNeighbor(snap, c, Locked)) {
				g.Set(c, Locked)
			}
		}
	}

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			if g.Get(c) == ActiveAux && hasNeighbor(g, c, Locked) {
				g.Set(c, Empty)
			}
		}
	}
}

func hasNeighbor(g *Grid, c Coord, state Cell) bool {
	for _, d := range neighbors4 {
		if g.Look(c, d) == state {
			return true
		}
	}
	return false
}
