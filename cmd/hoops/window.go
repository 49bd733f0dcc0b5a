package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hoops/internal/core"
	"github.com/vovakirdan/tui-hoops/internal/games/hoops"
	"github.com/vovakirdan/tui-hoops/internal/platform/gfx"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play hoops in a desktop window",
	Long: `Open hoops in a desktop window instead of the terminal.

Controls:
  Space/Up/W/click - Shoot
  P                - Pause
  R                - Restart (after time is up)
  Q/Esc            - Quit

Examples:
  hoops window
  hoops window --width 1024 --height 768`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 800, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", 600, "Window height in pixels")
}

func runWindow(_ *cobra.Command, _ []string) {
	svc, cleanup, err := openServices(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := hoops.New(svc.Env())
	if err != nil {
		cleanup()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	state, runErr := gfx.Run(game, gfx.Options{
		Width:  flagWidth,
		Height: flagHeight,
		TPS:    flagFPS,
		Logger: svc.Logger,
		OnGameOver: func(s core.GameState) {
			svc.RecordSession(hoops.ID, s.Score)
		},
	})
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	printSessionEnd(game, state)
}
