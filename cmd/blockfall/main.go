// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall list              - List available variants
//	blockfall play [variant]    - Play a variant (default: blockfall)
//	blockfall menu              - Pick variants interactively
//	blockfall serve             - Start SSH server for remote play
//	blockfall config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible games
//	--config <path>  - Use a custom config YAML
//	--log <path>     - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

var (
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogPath string
)

// logFile is closed by main after the command returns.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - falling blocks in your terminal",
	Long: `Blockfall is a falling-block puzzle game for the terminal.

Pieces fall on a fixed timer. Move them sideways, rotate them, and fill
rows to clear them. The game ends when a new piece cannot spawn.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  blockfall play
  blockfall play blockfall_bag --seed 42
  blockfall menu --config ./blockfall.yaml
  blockfall serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies the global flags to the game package. The terminal belongs
// to Bubble Tea, so logs only go to a file.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	blockfall.SetConfigPath(flagConfig)

	if flagLogPath == "" {
		return nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f
	blockfall.SetLogger(log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "blockfall",
	}))
	return nil
}
