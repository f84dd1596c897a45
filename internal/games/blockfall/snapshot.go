package blockfall

// Snapshot captures the game state for determinism tests and debugging.
type Snapshot struct {
	Tick     uint64
	Variant  string
	Seed     int64
	Current  string
	Next     string
	Pieces   int
	Lines    int
	Paused   bool
	Debug    bool
	GameOver bool
	Grid     string // one text row per grid row, see core.Grid.String
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:    g.tick,
		Variant: string(g.variant),
		Seed:    g.seed,
		Paused:  g.paused,
		Debug:   g.debug,
	}
	if g.engine == nil {
		s.GameOver = true
		return s
	}
	s.Current = g.engine.Current().String()
	s.Next = g.engine.Next().String()
	s.Pieces = g.engine.Pieces()
	s.Lines = g.engine.Lines()
	s.GameOver = g.engine.ToppedOut()
	s.Grid = g.engine.Snapshot().String()
	return s
}
