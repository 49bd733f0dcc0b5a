package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hoops/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (hoops if none is given).

Controls (hoops):
  Space/Up/W/click - Shoot
  P                - Pause
  R                - Restart (after time is up)
  B/Esc            - Leave the game
  Q/Ctrl+C         - Quit

Controls (specular):
  1-9              - Pick a light intensity
  +/-, Up/Down     - Raise or lower the intensity

Difficulty options:
  easy   - Wider basket, the basket speeds up as you score
  normal - Starts at 30% difficulty and speeds up as you score
  hard   - Narrower basket, starts at 70% difficulty
  fixed  - No progression, constant basket speed

Examples:
  hoops play
  hoops play --difficulty hard
  hoops play --store file --highscore-file ./highscore.txt
  hoops play specular
  hoops play --config ./my-hoops.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := gameArg(args)

	svc, cleanup, err := openServices(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := svc.CreateGame(gameID)
	if err != nil {
		cleanup()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	res, runErr := tui.Run(game, svc, runtimeConfig())

	// Close stores before potential exit
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	printSessionEnd(game, res.State)
}
