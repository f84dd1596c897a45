// Package blockfall adapts the falling-block engine to the terminal platform:
// registration, input, pause and restart, and rendering.
package blockfall

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	bfcore "github.com/vovakirdan/blockfall/internal/games/blockfall/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Variant selects a registered flavor of the game.
type Variant string

const (
	VariantClassic Variant = "blockfall"     // uniform randomizer
	VariantBag     Variant = "blockfall_bag" // 7-bag randomizer
)

// Package-level settings applied on the next Reset.
var (
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets the config file path used by Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger routes game events (locks, clears, top-outs) to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game for blockfall.
type Game struct {
	variant  Variant
	cfg      config.BlockfallConfig
	fixedCfg bool // cfg was supplied by the caller; skip loading

	engine *bfcore.Engine
	clock  core.Clock
	seed   int64
	tick   uint64

	// Time spent paused or too small is cut out of the engine clock.
	frozen    bool
	frozeAt   float64
	frozenFor float64

	screenW int
	screenH int
	layout  layout

	paused   bool
	debug    bool
	tooSmall bool
	err      error
}

// New creates a game that loads its configuration on Reset.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// NewWithConfig creates a game with a fixed configuration.
func NewWithConfig(v Variant, cfg config.BlockfallConfig) *Game {
	return &Game{variant: v, cfg: cfg, fixedCfg: true}
}

func init() {
	registry.Register(string(VariantClassic), func() registry.Game {
		return New(VariantClassic)
	})
	registry.Register(string(VariantBag), func() registry.Game {
		return New(VariantBag)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantBag {
		return "Blockfall (7-bag)"
	}
	return "Blockfall"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.paused = false
	g.frozen = false
	g.frozeAt = 0
	g.frozenFor = 0
	g.err = nil
	g.seed = cfg.Seed
	g.clock = cfg.Clock
	if g.clock == nil {
		g.clock = core.NewSystemClock()
	}

	if !g.fixedCfg {
		loaded, err := config.LoadBlockfall(configPath)
		if err != nil {
			logger.Warn("using default config", "err", err)
			loaded = config.DefaultBlockfallConfig()
		}
		g.cfg = loaded
	}

	opts := g.cfg.ToOptions(cfg.Seed)
	if g.variant == VariantBag {
		opts.Randomizer = bfcore.RandomBag
	}
	engine, err := bfcore.NewEngine(opts, nil)
	if err != nil {
		logger.Error("cannot start engine", "err", err)
		g.engine = nil
		g.err = err
		return
	}
	g.engine = engine

	g.Resize(cfg.ScreenW, cfg.ScreenH)
	spawn := g.engine.Start(g.now())
	logger.Debug("game started", "variant", g.variant, "seed", cfg.Seed, "first", spawn.Kind)
}

// Resize updates the layout without touching the simulation.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.engine == nil {
		return
	}
	opts := g.engine.Options()
	g.layout = computeLayout(w, opts.Width, opts.Height)
	g.tooSmall = w < g.layout.width || h < g.layout.height
}

func (g *Game) restart() {
	g.Reset(core.RuntimeConfig{
		Seed:    g.seed + 1,
		ScreenW: g.screenW,
		ScreenH: g.screenH,
		Clock:   g.clock,
	})
}

// now is the engine clock: wall clock minus frozen time.
func (g *Game) now() float64 {
	return g.clock.Now() - g.frozenFor
}

func (g *Game) updateFreeze() {
	frozen := g.paused || g.tooSmall
	switch {
	case frozen && !g.frozen:
		g.frozeAt = g.clock.Now()
	case !frozen && g.frozen:
		g.frozenFor += g.clock.Now() - g.frozeAt
	}
	g.frozen = frozen
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	over := g.engine.ToppedOut()
	if input.Has(core.ActionRestart) && (over || g.paused) {
		g.restart()
		return core.StepResult{State: g.State()}
	}
	if input.Has(core.ActionPause) && !over {
		g.paused = !g.paused
	}
	if input.Has(core.ActionDebug) {
		g.debug = !g.debug
	}

	g.updateFreeze()
	if g.frozen || over {
		return core.StepResult{State: g.State()}
	}

	res := g.engine.Step(engineInput(input), g.now())
	g.logStep(res)
	return core.StepResult{State: g.State()}
}

// engineInput converts platform actions. Shifts follow the held state,
// rotations follow presses.
func engineInput(in core.InputFrame) bfcore.Input {
	return bfcore.Input{
		Left:      in.Has(core.ActionLeft) || in.Holding(core.ActionLeft),
		Right:     in.Has(core.ActionRight) || in.Holding(core.ActionRight),
		RotateCW:  in.Has(core.ActionRotateCW),
		RotateCCW: in.Has(core.ActionRotateCCW),
	}
}

func (g *Game) logStep(res bfcore.StepResult) {
	if res.Gravity.Locked || res.Gravity.Stalled {
		logger.Debug("piece locked", "tick", g.tick, "pieces", g.engine.Pieces())
	}
	if res.RowsCleared > 0 {
		logger.Debug("rows cleared", "tick", g.tick, "rows", res.RowsCleared, "total", g.engine.Lines())
	}
	if res.Spawned && res.Spawn.ToppedOut {
		logger.Info("topped out", "pieces", g.engine.Pieces(), "lines", g.engine.Lines())
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Lines:    g.engine.Lines(),
		Pieces:   g.engine.Pieces(),
		GameOver: g.engine.ToppedOut(),
		Paused:   g.paused,
	}
}

// Engine exposes the simulation for tests and tooling.
func (g *Game) Engine() *bfcore.Engine {
	return g.engine
}
