package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/matchthree/internal/config"
)

var flagPreset string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the same way play does and prints it as YAML.
The output is a complete file that can be saved to
~/.matchthree/configs/matchthree.yaml and edited.

Examples:
  matchthree config > ~/.matchthree/configs/matchthree.yaml
  matchthree config --preset wide
  matchthree config --config ./my-board.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagPreset, "preset", "", "Apply a preset: classic, mini, wide")
}

// loadConfig loads the config and applies --preset.
func loadConfig(preset string) (config.MatchThreeConfig, error) {
	cfg, err := config.LoadMatchThree(flagConfig)
	if err != nil {
		return cfg, err
	}
	if preset != "" {
		p, err := config.ParsePreset(preset)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, p)
	}
	return cfg, nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagPreset)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
