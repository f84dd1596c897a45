package core_test

import (
	"testing"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/core"
)

// place writes a template's active cells with its top-left at (x, y).
func place(g *core.Grid, tmpl core.Template, x, y int) {
	for _, off := range tmpl.Cells() {
		g.Set(core.C(x+off.X, y+off.Y), tmpl[off.Y][off.X])
	}
}

func TestShiftMovesWholePiece(t *testing.T) {
	g := mustParse(t,
		"..........",
		"....CC....",
		"....CC....",
	)

	if !core.Shift(g, core.DirRight) {
		t.Fatal("Shift(Right) should succeed")
	}
	assertGrid(t, g,
		"..........",
		".....CC...",
		".....CC...",
	)

	if !core.Shift(g, core.DirLeft) || !core.Shift(g, core.DirLeft) {
		t.Fatal("Shift(Left) should succeed twice")
	}
	assertGrid(t, g,
		"..........",
		"...CC.....",
		"...CC.....",
	)
}

func TestShiftRejectsVerticalDirections(t *testing.T) {
	g := mustParse(t, "..C..", ".....")
	if core.Shift(g, core.DirDown) || core.Shift(g, core.DirUp) {
		t.Error("Shift should only accept Left and Right")
	}
}

func TestShiftBoundaries(t *testing.T) {
	testCases := []struct {
		name string
		dir  core.Dir
		edge int
	}{
		{"left wall", core.DirLeft, 0},
		{"right wall", core.DirRight, core.DefaultWidth - 1},
	}

	for _, tc := range testCases {
		for _, set := range []*core.PieceSet{&core.StandardSet, &core.ReferenceSet} {
			for _, k := range core.AllKinds {
				t.Run(tc.name+"/"+set.Name+"/"+k.String(), func(t *testing.T) {
					g := core.NewGrid(core.DefaultWidth, core.DefaultHeight)
					place(g, set.Template(k), core.SpawnColumn(core.DefaultWidth), 0)

					for iter := 0; iter < core.DefaultWidth; iter++ {
						if !core.Shift(g, tc.dir) {
							break
						}
					}

					touching := false
					for _, c := range g.ActiveCoords() {
						if c.X == tc.edge {
							touching = true
						}
					}
					if !touching {
						t.Fatalf("piece never reached column %d:\n%s", tc.edge, g)
					}

					before := g.Clone()
					if core.Shift(g, tc.dir) {
						t.Error("shift past the wall should be rejected")
					}
					if !g.Equal(before) {
						t.Errorf("rejected shift changed the grid:\n%s", g)
					}
				})
			}
		}
	}
}

func TestShiftBlockedByLocked(t *testing.T) {
	g := mustParse(t,
		"...C#.....",
		"..CCC.....",
	)
	before := g.Clone()

	if core.Shift(g, core.DirRight) {
		t.Error("shift into a locked cell should be rejected")
	}
	if !g.Equal(before) {
		t.Error("rejected shift changed the grid")
	}
}

func TestShiftEmptyGrid(t *testing.T) {
	g := core.NewGrid(4, 4)
	if core.Shift(g, core.DirLeft) {
		t.Error("shift without a piece should report no move")
	}
}

func TestSideContact(t *testing.T) {
	testCases := []struct {
		name     string
		rows     []string
		expected bool
	}{
		{"free", []string{"..CC..", "..CC.."}, false},
		{"locked right", []string{"..CC#.", "..CC.."}, true},
		{"locked left", []string{"......", ".#CC.."}, true},
		{"locked below only", []string{"..CC..", "..##.."}, false},
		{"wall only", []string{"CC....", "CC...."}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParse(t, tc.rows...)
			if got := core.SideContact(g); got != tc.expected {
				t.Errorf("SideContact() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRotateClockwiseI(t *testing.T) {
	g := mustParse(t,
		"........",
		"..CCCC..",
		"........",
		"........",
		"........",
	)

	if !core.Rotate(g, core.Clockwise, false) {
		t.Fatal("Rotate(CW) should succeed")
	}
	assertGrid(t, g,
		"........",
		"..C.....",
		"..C.....",
		"..C.....",
		"..C.....",
	)
}

func TestRotateCounterClockwiseT(t *testing.T) {
	// Pivot for CCW is the top of the right-most column: (4,2).
	g := mustParse(t,
		"......",
		"...C..",
		"..CCC.",
		"......",
		"......",
	)

	if !core.Rotate(g, core.CounterClockwise, false) {
		t.Fatal("Rotate(CCW) should succeed")
	}
	assertGrid(t, g,
		"......",
		"......",
		"....C.",
		"...CC.",
		"....C.",
	)
}

func TestRotateRoundTrip(t *testing.T) {
	orders := []struct {
		name        string
		first, then core.Rotation
	}{
		{"cw-ccw", core.Clockwise, core.CounterClockwise},
		{"ccw-cw", core.CounterClockwise, core.Clockwise},
	}

	for _, order := range orders {
		for _, set := range []*core.PieceSet{&core.StandardSet, &core.ReferenceSet} {
			for _, k := range core.AllKinds {
				t.Run(order.name+"/"+set.Name+"/"+k.String(), func(t *testing.T) {
					g := core.NewGrid(core.DefaultWidth, core.DefaultHeight)
					place(g, set.Template(k), 3, 8)
					original := g.Clone()

					if !core.Rotate(g, order.first, false) {
						t.Fatalf("first rotation aborted:\n%s", g)
					}
					if !core.Rotate(g, order.then, false) {
						t.Fatalf("second rotation aborted:\n%s", g)
					}
					if !g.Equal(original) {
						t.Errorf("round trip changed the piece:\nwant\n%sgot\n%s", original, g)
					}
				})
			}
		}
	}
}

func TestRotateKeepsCells(t *testing.T) {
	for _, set := range []*core.PieceSet{&core.StandardSet, &core.ReferenceSet} {
		for _, k := range core.AllKinds {
			g := core.NewGrid(30, 30)
			place(g, set.Template(k), 13, 13)
			cores := g.Count(core.ActiveCore)
			aux := g.Count(core.ActiveAux)

			for i := 0; i < 4; i++ {
				if !core.Rotate(g, core.Clockwise, false) {
					t.Fatalf("%s/%v: rotation %d aborted", set.Name, k, i)
				}
				if g.Count(core.ActiveCore) != cores || g.Count(core.ActiveAux) != aux {
					t.Fatalf("%s/%v: rotation %d changed the cell mix:\n%s", set.Name, k, i, g)
				}
			}
		}
	}
}

func TestRotateOutOfBoundsAborts(t *testing.T) {
	g := mustParse(t,
		"........",
		"........",
		"..CCCC..",
	)
	before := g.Clone()

	if core.Rotate(g, core.Clockwise, false) {
		t.Error("rotation below the floor should abort")
	}
	if !g.Equal(before) {
		t.Errorf("aborted rotation changed the grid:\n%s", g)
	}
}

func TestRotateIntoLocked(t *testing.T) {
	rows := []string{
		"........",
		"..CCCC..",
		"........",
		"..#.....",
		"........",
	}

	t.Run("rejected", func(t *testing.T) {
		g := mustParse(t, rows...)
		before := g.Clone()
		if core.Rotate(g, core.Clockwise, false) {
			t.Error("rotation into a locked cell should abort")
		}
		if !g.Equal(before) {
			t.Error("aborted rotation changed the grid")
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		g := mustParse(t, rows...)
		if !core.Rotate(g, core.Clockwise, true) {
			t.Fatal("rotation should overwrite when allowed")
		}
		if g.Count(core.Locked) != 0 {
			t.Errorf("locked cell should have been overwritten, grid:\n%s", g)
		}
		if g.Get(core.C(2, 3)) != core.ActiveCore {
			t.Errorf("(2,3) = %v, expected ActiveCore", g.Get(core.C(2, 3)))
		}
	})
}

func TestRotateWithoutPiece(t *testing.T) {
	g := mustParse(t, "####", "....")
	if core.Rotate(g, core.Clockwise, true) {
		t.Error("rotation without a piece should report no change")
	}
}
