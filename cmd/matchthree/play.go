package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/matchthree/internal/core"
	"github.com/vovakirdan/matchthree/internal/games/matchthree"
	"github.com/vovakirdan/matchthree/internal/platform/tui"
	"github.com/vovakirdan/matchthree/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing the specified board. Without a board name a menu
lets you pick a preset.

Controls:
  Mouse      - Press on a piece and drag onto a neighbor to swap
  Arrows     - Move the cursor
  Space      - Pick the piece under the cursor, then an arrow swaps
  Esc        - Drop the picked piece
  P          - Pause
  R          - New board
  Ctrl+S     - Save a text screenshot to ~/.matchthree/screenshots
  Q/Ctrl+C   - Quit

Logs are discarded while playing unless --log-file is given.

Examples:
  matchthree play
  matchthree play matchthree_wide
  matchthree play --config ./my-board.yaml --log-file play.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size early for the preset menu
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var gameID string
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown board %q, run 'matchthree list' to see available boards", gameID)
		}
	} else {
		preset, ok, selErr := tui.RunPresetSelector(cfg)
		if selErr != nil {
			return selErr
		}
		// User pressed back or quit
		if !ok {
			return nil
		}
		gameID = matchthree.IDForPreset(preset)
	}

	// Set config path and logger before creation
	matchthree.SetConfigPath(flagConfig)
	matchthree.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating board: %w", err)
	}

	logger.Info("starting", "board", gameID, "width", width, "height", height, "fps", flagFPS)
	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running board: %w", err)
	}
	return nil
}
