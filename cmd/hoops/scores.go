package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hoops/internal/registry"
	"github.com/vovakirdan/tui-hoops/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top 10 sessions and the stored high score for the
specified game (hoops if none is given).

The high score comes from the backend chosen with --store; the session
list always comes from the scores database.

Examples:
  hoops scores
  hoops scores --store file`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := gameArg(args)
	title := registry.Title(gameID)

	logger, closeLog, err := newLogger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	stores, err := storage.OpenStores(flagStore, storage.Options{
		DBPath:        flagDBPath,
		HighScoreFile: flagHighScoreFile,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores: %v\n", err)
		os.Exit(1)
	}
	defer stores.Close()

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if stores.Board != nil {
		printTopScores(stores.Board, gameID)
	}

	best, err := stores.HighScores.LoadHighScore(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading high score: %v\n", err)
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d\n", best)
}

func printTopScores(store *storage.Store, gameID string) {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	if len(scores) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'hoops play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}
}
