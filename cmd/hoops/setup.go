package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hoops/internal/config"
	"github.com/vovakirdan/tui-hoops/internal/core"
	"github.com/vovakirdan/tui-hoops/internal/platform/tui"
	"github.com/vovakirdan/tui-hoops/internal/registry"
	"github.com/vovakirdan/tui-hoops/internal/storage"
)

// logFile is where logs go while a terminal UI owns the screen.
const logFile = "~/.arcade/hoops.log"

// newLogger builds the process logger. With toFile set it appends to logFile
// so log lines do not tear the alternate screen; the returned func closes it.
func newLogger(toFile bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	if toFile {
		path, err := storage.ExpandHome(logFile)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "hoops",
		Level:           level,
	})
	log.SetDefault(logger)
	return logger, closeFn, nil
}

// openServices sets up logging and storage for a frontend. Storage failures
// are logged and the games run without persistence.
func openServices(logToFile bool) (tui.Services, func(), error) {
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return tui.Services{}, nil, err
	}

	logger, closeLog, err := newLogger(logToFile)
	if err != nil {
		return tui.Services{}, nil, err
	}

	stores, err := storage.OpenStores(flagStore, storage.Options{
		DBPath:        flagDBPath,
		HighScoreFile: flagHighScoreFile,
	}, logger)
	if err != nil {
		logger.Warn("could not open score storage, scores will not be kept", "store", flagStore, "error", err)
	}

	svc := tui.ServicesFromStores(stores, logger)
	svc.ConfigPath = flagConfig
	svc.Difficulty = preset

	cleanup := func() {
		if err := stores.Close(); err != nil {
			logger.Warn("could not close score storage", "error", err)
		}
		closeLog()
	}
	return svc, cleanup, nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// gameArg returns the requested game, defaulting to hoops, and exits on an
// unknown ID.
func gameArg(args []string) string {
	gameID := "hoops"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'hoops list' to see available games.")
		os.Exit(1)
	}
	return gameID
}

// printSessionEnd prints the end-of-session summary for scored games.
func printSessionEnd(game registry.Game, state core.GameState) {
	if _, ok := game.(registry.Finalizer); !ok {
		return
	}
	fmt.Printf("Your score: %d\n", state.Score)
	fmt.Printf("High score: %d\n", state.HighScore)
}
