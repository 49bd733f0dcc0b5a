// hoops is a small terminal arcade built around a basketball toss game.
//
// Usage:
//
//	hoops list              - List available games
//	hoops play [game]       - Play a game in the terminal (default: hoops)
//	hoops window            - Play hoops in a desktop window
//	hoops menu              - Start menu to pick games interactively
//	hoops serve             - Start SSH server for remote play
//	hoops scores [game]     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>              - Set tick rate (default: 60)
//	--seed <value>            - Set RNG seed
//	--db <path>               - Set database path (default: ~/.arcade/scores.db)
//	--store <backend>         - High score backend: sqlite, file or gdata
//	--highscore-file <path>   - Single text file for the file backend
//	--log-level <level>       - debug, info, warn or error
//	--config <path>           - Custom game config YAML
//	--difficulty <preset>     - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-hoops/internal/games/hoops"
	_ "github.com/vovakirdan/tui-hoops/internal/games/specular"
)

var (
	// Global flags
	flagFPS           int
	flagSeed          int64
	flagDBPath        string
	flagStore         string
	flagHighScoreFile string
	flagLogLevel      string
	flagConfig        string
	flagDifficulty    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hoops",
	Short: "Hoops - shoot baskets in your terminal",
	Long: `Hoops is a basketball toss game for the terminal. Launch the ball at a
basket sliding across the top of the court and sink as many shots as you
can in 60 seconds. The clock starts with your first shot.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  window   - Play in a desktop window
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  hoops play
  hoops play --store file
  hoops window
  hoops play specular
  hoops serve --ssh :2222
  hoops scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "sqlite", "High score backend: sqlite, file, gdata")
	rootCmd.PersistentFlags().StringVar(&flagHighScoreFile, "highscore-file", "", "Text file for the file backend (default: ~/.arcade/highscore-<game>.txt)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
