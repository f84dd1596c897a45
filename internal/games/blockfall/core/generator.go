package core

import "fmt"

// Lookahead policy names.
const (
	// LookaheadPromote spawns the kind shown in the lookahead slot.
	LookaheadPromote = "promote"
	// LookaheadReroll discards the queued kind on every spawn after the
	// first and draws a fresh one, as the legacy game did.
	LookaheadReroll = "reroll"
)

// SpawnResult describes one spawn.
type SpawnResult struct {
	Kind      Kind
	ToppedOut bool // spawn region held Locked cells before it was overwritten
}

// Generator owns the current kind and the lookahead slot and writes new
// pieces into the grid.
type Generator struct {
	set       *PieceSet
	rand      Randomizer
	lookahead string
	spawnCol  int

	current Kind
	next    Kind
	spawns  int
}

// NewGenerator creates a generator for a grid of the given width.
// The lookahead slot is filled immediately.
func NewGenerator(set *PieceSet, r Randomizer, lookahead string, width int) (*Generator, error) {
	switch lookahead {
	case "":
		lookahead = LookaheadPromote
	case LookaheadPromote, LookaheadReroll:
	default:
		return nil, fmt.Errorf("unknown lookahead policy %q", lookahead)
	}
	return &Generator{
		set:       set,
		rand:      r,
		lookahead: lookahead,
		spawnCol:  SpawnColumn(width),
		next:      r.Next(),
	}, nil
}

// SpawnColumn returns the left column of the spawn region.
func SpawnColumn(width int) int {
	return width/2 - 2
}

// Current returns the kind of the most recently spawned piece.
func (g *Generator) Current() Kind { return g.current }

// Next returns the kind in the lookahead slot.
func (g *Generator) Next() Kind { return g.next }

// Spawns returns how many pieces have been spawned.
func (g *Generator) Spawns() int { return g.spawns }

// SpawnCol returns the left column of the spawn region.
func (g *Generator) SpawnCol() int { return g.spawnCol }

// Spawn promotes the lookahead to current, refills the lookahead and writes
// the current template into rows 0-3 at the spawn column. The whole 4x4
// region is overwritten, empty template cells included.
func (g *Generator) Spawn(grid *Grid) SpawnResult {
	if g.lookahead == LookaheadReroll && g.spawns > 0 {
		g.next = g.rand.Next()
	}
	g.current = g.next
	g.next = g.rand.Next()
	g.spawns++

	res := SpawnResult{Kind: g.current}
	tmpl := g.set.Template(g.current)
	for y := 0; y < TemplateSize; y++ {
		for x := 0; x < TemplateSize; x++ {
			c := C(g.spawnCol+x, y)
			if grid.Get(c) == Locked {
				res.ToppedOut = true
			}
			grid.Set(c, tmpl[y][x])
		}
	}
	return res
}
