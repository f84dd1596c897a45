package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would use, as YAML.

The file is looked up in this order:
  1. --config <path>
  2. ~/.blockfall/configs/blockfall.yaml
  3. ./configs/blockfall.yaml
  4. built-in defaults

Save the output to one of those paths to customize it.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadBlockfall(flagConfig)
	if err != nil {
		return err
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
