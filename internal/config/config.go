// Package config loads the YAML game configuration.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/core"
)

// BlockfallConfig contains all configuration for the blockfall game.
type BlockfallConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Pieces PiecesConfig `yaml:"pieces"`
	Rules  RulesConfig  `yaml:"rules"`
}

// BoardConfig sets the grid size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig holds the pace parameters, all in seconds.
type TimingConfig struct {
	GravityInterval float64 `yaml:"gravity_interval"`
	ShiftInterval   float64 `yaml:"shift_interval"` // 0 shifts every frame while held
	HoldWindow      float64 `yaml:"hold_window"`    // how long a key press counts as held
}

// PiecesConfig selects the piece set and how pieces are drawn.
type PiecesConfig struct {
	Set        string `yaml:"set"`        // "standard" or "reference"
	Randomizer string `yaml:"randomizer"` // "uniform" or "bag"
	Lookahead  string `yaml:"lookahead"`  // "promote" or "reroll"
}

// RulesConfig toggles rule variants.
type RulesConfig struct {
	RotateIntoLocked bool `yaml:"rotate_into_locked"`
}

// Validate rejects values the engine cannot run with. All problems are
// reported together.
func (c BlockfallConfig) Validate() error {
	var errs []error
	if c.Timing.HoldWindow < 0 {
		errs = append(errs, fmt.Errorf("timing.hold_window must not be negative, got %v", c.Timing.HoldWindow))
	}
	if err := c.ToOptions(0).Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := core.LookupSet(c.Pieces.Set); err != nil {
		errs = append(errs, err)
	}
	switch c.Pieces.Randomizer {
	case "", core.RandomUniform, core.RandomBag:
	default:
		errs = append(errs, fmt.Errorf("unknown randomizer %q", c.Pieces.Randomizer))
	}
	switch c.Pieces.Lookahead {
	case "", core.LookaheadPromote, core.LookaheadReroll:
	default:
		errs = append(errs, fmt.Errorf("unknown lookahead policy %q", c.Pieces.Lookahead))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ToOptions converts the config into engine options.
func (c BlockfallConfig) ToOptions(seed int64) core.Options {
	opts := core.Options{
		Width:            c.Board.Width,
		Height:           c.Board.Height,
		GravityInterval:  c.Timing.GravityInterval,
		ShiftInterval:    c.Timing.ShiftInterval,
		Pieces:           c.Pieces.Set,
		Randomizer:       c.Pieces.Randomizer,
		Lookahead:        c.Pieces.Lookahead,
		RotateIntoLocked: c.Rules.RotateIntoLocked,
		Seed:             seed,
	}
	if opts.Randomizer == "" {
		opts.Randomizer = core.RandomUniform
	}
	if opts.Lookahead == "" {
		opts.Lookahead = core.LookaheadPromote
	}
	return opts
}
