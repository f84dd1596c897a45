package core_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/core"
)

func newGenerator(t *testing.T, set *core.PieceSet, lookahead string, kinds ...core.Kind) *core.Generator {
	t.Helper()
	gen, err := core.NewGenerator(set, core.NewSequenceRandomizer(kinds...), lookahead, core.DefaultWidth)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	return gen
}

func TestSpawnColumn(t *testing.T) {
	testCases := []struct {
		width    int
		expected int
	}{
		{10, 3},
		{4, 0},
		{12, 4},
		{11, 3},
	}

	for _, tc := range testCases {
		if got := core.SpawnColumn(tc.width); got != tc.expected {
			t.Errorf("SpawnColumn(%d) = %d, expected %d", tc.width, got, tc.expected)
		}
	}
}

func TestSpawnPlacesFourCellsInRegion(t *testing.T) {
	for _, k := range core.AllKinds {
		t.Run(k.String(), func(t *testing.T) {
			g := core.NewGrid(core.DefaultWidth, core.DefaultHeight)
			gen := newGenerator(t, &core.StandardSet, core.LookaheadPromote, k)

			res := gen.Spawn(g)
			if res.Kind != k {
				t.Errorf("spawned %v, expected %v", res.Kind, k)
			}
			if res.ToppedOut {
				t.Error("spawn into empty grid reported top-out")
			}

			cells := g.ActiveCoords()
			if len(cells) != 4 {
				t.Fatalf("expected 4 active cells, got %d", len(cells))
			}
			col := core.SpawnColumn(core.DefaultWidth)
			for _, c := range cells {
				if c.X < col || c.X >= col+core.TemplateSize || c.Y >= core.TemplateSize {
					t.Errorf("cell %v outside spawn region", c)
				}
			}
		})
	}
}

func TestSpawnO(t *testing.T) {
	g := core.NewGrid(core.DefaultWidth, 6)
	gen := newGenerator(t, &core.StandardSet, core.LookaheadPromote, core.KindO)

	gen.Spawn(g)

	assertGrid(t, g,
		"..........",
		"....CC....",
		"....CC....",
		"..........",
		"..........",
		"..........",
	)
}

func TestSpawnOverwritesRegion(t *testing.T) {
	g := mustParse(t,
		"##########",
		"##########",
		"##########",
		"##########",
		"..........",
	)
	gen := newGenerator(t, &core.StandardSet, core.LookaheadPromote, core.KindI)

	res := gen.Spawn(g)

	if !res.ToppedOut {
		t.Error("spawn over locked cells should report top-out")
	}
	assertGrid(t, g,
		"###....###",
		"###....###",
		"###CCCC###",
		"###....###",
		"..........",
	)
}

func TestLookaheadPromote(t *testing.T) {
	gen := newGenerator(t, &core.StandardSet, core.LookaheadPromote,
		core.KindT, core.KindS, core.KindZ, core.KindL)

	if gen.Next() != core.KindT {
		t.Fatalf("initial lookahead = %v, expected T", gen.Next())
	}

	g := core.NewGrid(core.DefaultWidth, core.DefaultHeight)
	for i, want := range []core.Kind{core.KindT, core.KindS, core.KindZ} {
		shown := gen.Next()
		res := gen.Spawn(g)
		if res.Kind != shown || res.Kind != want {
			t.Errorf("spawn %d: got %v, lookahead showed %v, expected %v", i, res.Kind, shown, want)
		}
		g.Reset()
	}
	if gen.Spawns() != 3 {
		t.Errorf("Spawns() = %d, expected 3", gen.Spawns())
	}
}

func TestLookaheadReroll(t *testing.T) {
	// Sequence: initial lookahead T; first spawn draws S as next.
	// Second spawn discards S, draws Z as current and L as next.
	gen := newGenerator(t, &core.StandardSet, core.LookaheadReroll,
		core.KindT, core.KindS, core.KindZ, core.KindL)
	g := core.NewGrid(core.DefaultWidth, core.DefaultHeight)

	first := gen.Spawn(g)
	if first.Kind != core.KindT {
		t.Errorf("first spawn = %v, expected T", first.Kind)
	}
	if gen.Next() != core.KindS {
		t.Errorf("lookahead = %v, expected S", gen.Next())
	}

	g.Reset()
	second := gen.Spawn(g)
	if second.Kind != core.KindZ {
		t.Errorf("second spawn = %v, expected Z (lookahead discarded)", second.Kind)
	}
	if gen.Next() != core.KindL {
		t.Errorf("lookahead = %v, expected L", gen.Next())
	}
}

func TestNewGeneratorRejectsUnknownPolicy(t *testing.T) {
	_, err := core.NewGenerator(&core.StandardSet, core.NewSequenceRandomizer(core.KindO), "sometimes", 10)
	if err == nil {
		t.Error("unknown lookahead policy should fail")
	}
}

func TestUniformRandomizerCoversAllKinds(t *testing.T) {
	r := core.NewUniformRandomizer(rand.New(rand.NewSource(7)))
	counts := make(map[core.Kind]int)
	const draws = 7000
	for iter := 0; iter < draws; iter++ {
		counts[r.Next()]++
	}

	for _, k := range core.AllKinds {
		// Expect 1000 each; allow a wide margin.
		if counts[k] < 800 || counts[k] > 1200 {
			t.Errorf("kind %v drawn %d times out of %d", k, counts[k], draws)
		}
	}
}

func TestUniformRandomizerDeterministic(t *testing.T) {
	a := core.NewUniformRandomizer(rand.New(rand.NewSource(42)))
	b := core.NewUniformRandomizer(rand.New(rand.NewSource(42)))
	for i := 0; i < 50; i++ {
		if ka, kb := a.Next(), b.Next(); ka != kb {
			t.Fatalf("draw %d differs: %v vs %v", i, ka, kb)
		}
	}
}

func TestBagRandomizerDealsEveryKind(t *testing.T) {
	r := core.NewBagRandomizer(rand.New(rand.NewSource(99)))

	for bag := 0; bag < 5; bag++ {
		seen := make(map[core.Kind]bool)
		for iter := 0; iter < core.NumKinds; iter++ {
			k := r.Next()
			if seen[k] {
				t.Fatalf("bag %d dealt %v twice", bag, k)
			}
			seen[k] = true
		}
		if len(seen) != core.NumKinds {
			t.Errorf("bag %d dealt %d kinds, expected %d", bag, len(seen), core.NumKinds)
		}
	}
}

func TestNewRandomizer(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if r, err := core.NewRandomizer("uniform", rng); err != nil {
		t.Errorf("uniform: %v", err)
	} else if _, ok := r.(*core.UniformRandomizer); !ok {
		t.Errorf("uniform returned %T", r)
	}

	if r, err := core.NewRandomizer("bag", rng); err != nil {
		t.Errorf("bag: %v", err)
	} else if _, ok := r.(*core.BagRandomizer); !ok {
		t.Errorf("bag returned %T", r)
	}

	if _, err := core.NewRandomizer("shuffle", rng); err == nil {
		t.Error("unknown policy should fail")
	}
}
