package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puyo/internal/games/puyo"
	"github.com/vovakirdan/tui-puyo/internal/platform/tui"
	"github.com/vovakirdan/tui-puyo/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode. Without an argument the two-player
duel starts.

Controls:
  Player 1   - A/D move, S drop, W up, Space rotate
  Player 2   - Left/Right move, Down drop, Up up, Enter rotate
  P          - Pause
  R          - Restart (after game over)
  Esc/B      - Back (while paused or after game over)
  Q/Ctrl+C   - Quit

In solo mode both key sets steer the single board.

Difficulty options:
  easy   - Start at the base drop speed, speeds up over time
  normal - Start at 30% difficulty, speeds up over time
  hard   - Start at 70% difficulty, speeds up over time
  fixed  - No progression, stays at config's initial level

Examples:
  puyo play
  puyo play puyo_solo
  puyo play --difficulty hard
  puyo play --seed 42
  puyo play --config ./my-puyo.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := puyo.DuelID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'puyo list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := mustLogger(io.Discard)
	store := openStore(logger)

	_, runErr := tui.Run(game, store, runtimeConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
