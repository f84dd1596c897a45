package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Press B or Esc in a game to return to the menu.

Examples:
  blockfall menu
  blockfall menu --fps 30`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	hold, err := holdWindow()
	if err != nil {
		return err
	}

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = res.Config
		if res.Quit || res.GameID == "" {
			return nil
		}

		game, err := registry.Create(res.GameID)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error creating game: %v\n", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, cfg, hold)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !back {
			return nil
		}
	}
}
