package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puyo/internal/core"
	"github.com/vovakirdan/tui-puyo/internal/games/puyo"
	"github.com/vovakirdan/tui-puyo/internal/registry"
	"github.com/vovakirdan/tui-puyo/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show scores and duel results",
	Long: `Display the top 10 scores for the specified mode, its play statistics
and, for the duel, the win tally and most recent matches.

Examples:
  puyo scores
  puyo scores puyo_solo
  puyo scores --all`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var flagAllStats bool

func init() {
	scoresCmd.Flags().BoolVar(&flagAllStats, "all", false, "Show statistics for every mode")
}

func runScores(cmd *cobra.Command, args []string) {
	if flagAllStats {
		runAllStats()
		return
	}

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

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'puyo play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}

		if stats, err := store.GetGameStats(gameID); err == nil {
			fmt.Println()
			fmt.Printf("Best: %d  Games: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
		}
	}

	if _, versus := game.(registry.Versus); versus {
		printDuels(store, gameID)
	}
}

// printDuels shows the win tally and the latest matches of a duel mode.
func printDuels(store *storage.Store, gameID string) {
	tally, err := store.Tally(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving duel tally: %v\n", err)
		return
	}
	duels, err := store.RecentDuels(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving duels: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("Duels")
	fmt.Println()
	fmt.Printf("P1 wins: %d  P2 wins: %d  Draws: %d\n", tally.Player1Wins, tally.Player2Wins, tally.Draws)
	if len(duels) == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("  %-16s  %-6s  %-8s  %-8s  %-7s  %s\n", "Date", "Winner", "P1", "P2", "Ticks", "End")
	fmt.Printf("  %-16s  %-6s  %-8s  %-8s  %-7s  %s\n", "----", "------", "--", "--", "-----", "---")
	for _, d := range duels {
		winner := "draw"
		if d.Winner != 0 {
			winner = core.PlayerID(d.Winner).String()
		}
		fmt.Printf("  %-16s  %-6s  %-8d  %-8d  %-7d  %s\n",
			d.CreatedAt.Format("2006-01-02 15:04"), winner, d.Score1, d.Score2, d.Ticks, d.EndReason)
	}
}

// runAllStats prints one statistics line per mode that has been played.
func runAllStats() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		return
	}

	fmt.Printf("  %-12s  %-6s  %-8s  %-8s  %s\n", "Mode", "Games", "Best", "Average", "Last played")
	fmt.Printf("  %-12s  %-6s  %-8s  %-8s  %s\n", "----", "-----", "----", "-------", "-----------")
	for _, info := range registry.List() {
		stats, ok := all[info.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-12s  %-6d  %-8d  %-8.0f  %s\n",
			info.ID, stats.GamesCount, stats.HighScore, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
