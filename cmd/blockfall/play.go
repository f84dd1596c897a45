package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: blockfall).

Controls:
  Left/H, Right/L  - Move (hold to keep moving)
  Down/J/X         - Rotate clockwise
  Up/K/Z           - Rotate counterclockwise
  P/Space          - Pause
  R                - Restart (when paused or after game over)
  D                - Show cell codes
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Examples:
  blockfall play
  blockfall play blockfall_bag
  blockfall play --seed 42 --config ./my-blockfall.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := string(blockfall.VariantClassic)
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'blockfall list' to see available variants)", err)
	}

	hold, err := holdWindow()
	if err != nil {
		return err
	}

	if _, err := tui.Run(game, runtimeConfig(), hold); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig sizes the screen from the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// holdWindow reads the key hold window from the effective config.
func holdWindow() (time.Duration, error) {
	cfg, err := config.LoadBlockfall(flagConfig)
	if err != nil {
		return 0, err
	}
	return secondsToDuration(cfg.Timing.HoldWindow), nil
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
