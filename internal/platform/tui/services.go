package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hoops/internal/config"
	"github.com/vovakirdan/tui-hoops/internal/core"
	"github.com/vovakirdan/tui-hoops/internal/registry"
	"github.com/vovakirdan/tui-hoops/internal/storage"
)

// Services are the shared resources handed to every game a frontend starts.
type Services struct {
	// HighScores is passed to games through registry.Env. May be nil.
	HighScores core.HighScoreStore
	// Board is the leaderboard that records finished sessions. May be nil.
	Board *storage.Store

	Logger     *log.Logger
	Clock      core.Clock
	ConfigPath string
	Difficulty config.DifficultyPreset
}

// ServicesFromStores fills the storage fields from opened stores.
func ServicesFromStores(stores storage.Stores, logger *log.Logger) Services {
	svc := Services{Board: stores.Board, Logger: logger}
	if stores.HighScores != nil {
		svc.HighScores = stores.HighScores
	}
	return svc
}

// Env builds the registry environment for a new game.
func (s Services) Env() registry.Env {
	return registry.Env{
		Scores:     s.HighScores,
		Logger:     s.Logger,
		Clock:      s.Clock,
		ConfigPath: s.ConfigPath,
		Difficulty: s.Difficulty,
	}.WithDefaults()
}

// CreateGame instantiates a registered game wired to these services.
func (s Services) CreateGame(id string) (registry.Game, error) {
	return registry.Create(id, s.Env())
}

// logger returns the configured logger or the package default.
func (s Services) logger() *log.Logger {
	if s.Logger == nil {
		return log.Default()
	}
	return s.Logger
}

// RecordSession stores a finished session on the leaderboard.
// Failures are logged; the session itself is already over.
func (s Services) RecordSession(gameID string, score int) {
	if s.Board == nil || score <= 0 {
		return
	}
	if _, err := s.Board.SaveScore(gameID, score); err != nil {
		s.logger().Warn("could not record session", "game", gameID, "score", score, "error", err)
	}
}
