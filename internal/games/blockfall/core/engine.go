package core

import (
	"fmt"
	"math/rand"
)

// Input is one frame of player intent. Movement is level-triggered (the key
// is down this frame); rotation is edge-triggered (the key went down this
// frame).
type Input struct {
	Left      bool
	Right     bool
	RotateCW  bool
	RotateCCW bool
}

// Options configures an Engine.
type Options struct {
	Width            int
	Height           int
	GravityInterval  float64 // seconds between gravity passes
	ShiftInterval    float64 // seconds between repeated shifts while held; 0 shifts every frame
	Pieces           string  // piece set name
	Randomizer       string  // randomizer policy name
	Lookahead        string  // lookahead policy name
	RotateIntoLocked bool    // let rotations overwrite locked blocks
	Seed             int64
}

// DefaultOptions returns the stock 10x20 configuration.
func DefaultOptions() Options {
	return Options{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		GravityInterval: DefaultGravityInterval,
		Pieces:          SetStandard,
		Randomizer:      RandomUniform,
		Lookahead:       LookaheadPromote,
	}
}

// Validate checks that the options describe a playable engine.
func (o Options) Validate() error {
	if o.Width < TemplateSize {
		return fmt.Errorf("width %d is smaller than %d", o.Width, TemplateSize)
	}
	if o.Height < TemplateSize {
		return fmt.Errorf("height %d is smaller than %d", o.Height, TemplateSize)
	}
	if o.GravityInterval <= 0 {
		return fmt.Errorf("gravity interval must be positive, got %v", o.GravityInterval)
	}
	if o.ShiftInterval < 0 {
		return fmt.Errorf("shift interval must not be negative, got %v", o.ShiftInterval)
	}
	return nil
}

// StepResult reports what one frame did.
type StepResult struct {
	Rotated     bool
	Shifted     bool
	GravityRan  bool
	Gravity     GravityResult
	Spawned     bool
	Spawn       SpawnResult
	RowsCleared int
}

// Engine runs the simulation: one grid, one generator and the pace timers.
type Engine struct {
	opts Options
	grid *Grid
	gen  *Generator

	gravity    Timer
	shift      Timer
	shiftDir   Dir
	shiftArmed bool

	started   bool
	toppedOut bool
	lines     int
}

// NewEngine creates an engine. A nil randomizer is built from
// opts.Randomizer seeded with opts.Seed.
func NewEngine(opts Options, r Randomizer) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	set, err := LookupSet(opts.Pieces)
	if err != nil {
		return nil, err
	}
	if r == nil {
		r, err = NewRandomizer(opts.Randomizer, rand.New(rand.NewSource(opts.Seed)))
		if err != nil {
			return nil, err
		}
	}
	gen, err := NewGenerator(set, r, opts.Lookahead, opts.Width)
	if err != nil {
		return nil, err
	}
	return &Engine{
		opts: opts,
		grid: NewGrid(opts.Width, opts.Height),
		gen:  gen,
	}, nil
}

// Start spawns the first piece and arms the gravity timer at now.
// Calling Start on a started engine does nothing.
func (e *Engine) Start(now float64) SpawnResult {
	if e.started {
		return SpawnResult{Kind: e.gen.Current()}
	}
	e.started = true
	res := e.gen.Spawn(e.grid)
	e.toppedOut = res.ToppedOut
	e.gravity.Start(now, e.opts.GravityInterval)
	return res
}

// Step advances one frame.
//
// A frame changes the piece by at most one transition: a pressed rotation
// wins, then a due gravity pass, then a held shift. A gravity pass skipped
// for a rotation runs on the next frame because its timer stays expired.
// Line clearing runs every frame.
func (e *Engine) Step(in Input, now float64) StepResult {
	var res StepResult
	if !e.started {
		res.Spawn = e.Start(now)
		res.Spawned = true
	}
	if e.toppedOut {
		return res
	}

	switch {
	case in.RotateCW && !in.RotateCCW:
		res.Rotated = Rotate(e.grid, Clockwise, e.opts.RotateIntoLocked)
	case in.RotateCCW && !in.RotateCW:
		res.Rotated = Rotate(e.grid, CounterClockwise, e.opts.RotateIntoLocked)
	}

	if !res.Rotated {
		if e.gravity.Done(now) {
			e.runGravity(now, &res)
		} else {
			res.Shifted = e.applyShift(in, now)
		}
	}

	res.RowsCleared = ClearLines(e.grid)
	e.lines += res.RowsCleared
	return res
}

func (e *Engine) runGravity(now float64, res *StepResult) {
	res.GravityRan = true
	res.Gravity = Gravity(e.grid)
	if res.Gravity.Stalled {
		res.Spawn = e.gen.Spawn(e.grid)
		res.Spawned = true
		e.toppedOut = res.Spawn.ToppedOut
	}
	e.gravity.Start(now, e.opts.GravityInterval)
}

// applyShift moves the piece for a held direction. The first frame of a hold
// shifts immediately; while held, further shifts wait for ShiftInterval.
func (e *Engine) applyShift(in Input, now float64) bool {
	var dir Dir
	switch {
	case in.Left && !in.Right:
		dir = DirLeft
	case in.Right && !in.Left:
		dir = DirRight
	default:
		e.shiftArmed = false
		return false
	}

	if e.shiftArmed && dir == e.shiftDir && !e.shift.Done(now) {
		return false
	}
	if SideContact(e.grid) {
		return false
	}
	if !Shift(e.grid, dir) {
		return false
	}

	e.shiftDir = dir
	e.shiftArmed = true
	e.shift.Start(now, e.opts.ShiftInterval)
	return true
}

// View returns read-only access to the grid.
func (e *Engine) View() View { return e.grid }

// Snapshot returns a copy of the grid.
func (e *Engine) Snapshot() *Grid { return e.grid.Clone() }

// Load replaces the grid contents. Dimensions must match.
func (e *Engine) Load(g *Grid) error {
	if g.W != e.grid.W || g.H != e.grid.H {
		return fmt.Errorf("load: grid is %dx%d, engine is %dx%d", g.W, g.H, e.grid.W, e.grid.H)
	}
	e.grid.CopyFrom(g)
	return nil
}

// Current returns the kind of the falling piece.
func (e *Engine) Current() Kind { return e.gen.Current() }

// Next returns the lookahead kind.
func (e *Engine) Next() Kind { return e.gen.Next() }

// Pieces returns the number of pieces spawned so far.
func (e *Engine) Pieces() int { return e.gen.Spawns() }

// Lines returns the number of rows cleared so far.
func (e *Engine) Lines() int { return e.lines }

// ToppedOut reports whether a spawn landed on the stack. The engine stops
// advancing once this is set.
func (e *Engine) ToppedOut() bool { return e.toppedOut }

// Started reports whether the first piece has spawned.
func (e *Engine) Started() bool { return e.started }

// Options returns the engine configuration.
func (e *Engine) Options() Options { return e.opts }

// SpawnCol returns the left column of the spawn region.
func (e *Engine) SpawnCol() int { return e.gen.SpawnCol() }
