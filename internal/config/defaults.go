package config

import (
	_ "embed"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/core"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the built-in configuration. It matches the
// embedded defaults/blockfall.yaml.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Board: BoardConfig{
			Width:  core.DefaultWidth,
			Height: core.DefaultHeight,
		},
		Timing: TimingConfig{
			GravityInterval: core.DefaultGravityInterval,
			ShiftInterval:   0.1,
			HoldWindow:      0.15,
		},
		Pieces: PiecesConfig{
			Set:        core.SetStandard,
			Randomizer: core.RandomUniform,
			Lookahead:  core.LookaheadPromote,
		},
	}
}
