package hoops

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hoops/internal/core"
)

// ScoreKeeper counts baskets for the current session and tracks the best
// score seen across sessions. The best score is loaded from the store once
// and written back only when a session beats it.
type ScoreKeeper struct {
	gameID    string
	score     int
	highScore int
	finalized bool

	store  core.HighScoreStore
	logger *log.Logger
}

// NewScoreKeeper loads the stored high score for gameID.
// A nil store keeps scores in memory only. A failed load is logged and the
// high score starts at 0.
func NewScoreKeeper(gameID string, store core.HighScoreStore, logger *log.Logger) *ScoreKeeper {
	if logger == nil {
		logger = log.Default()
	}
	k := &ScoreKeeper{
		gameID: gameID,
		store:  store,
		logger: logger,
	}

	if store == nil {
		return k
	}
	high, err := store.LoadHighScore(gameID)
	if err != nil {
		logger.Warn("could not load high score, starting from zero", "game", gameID, "error", err)
		return k
	}
	k.highScore = high
	logger.Debug("loaded high score", "game", gameID, "high", high)
	return k
}

// RecordScore adds points to the session score. Negative points are ignored.
func (k *ScoreKeeper) RecordScore(points int) {
	if points <= 0 {
		return
	}
	k.score += points
}

// Score returns the session score.
func (k *ScoreKeeper) Score() int {
	return k.score
}

// HighScore returns the best score known, including a finalized session.
func (k *ScoreKeeper) HighScore() int {
	return k.highScore
}

// Finalized reports whether Finalize has run for the current session.
func (k *ScoreKeeper) Finalized() bool {
	return k.finalized
}

// Finalize ends the session. If the session beat the high score, the high
// score is raised and persisted. A persist failure is logged and otherwise
// ignored. Only the first call per session has any effect; it reports whether
// a new high score was set.
func (k *ScoreKeeper) Finalize() bool {
	if k.finalized {
		return false
	}
	k.finalized = true

	// Another session sharing the store may have raised it since we loaded
	if k.store != nil {
		if stored, err := k.store.LoadHighScore(k.gameID); err == nil {
			k.highScore = core.Max(k.highScore, stored)
		} else {
			k.logger.Debug("could not reload high score", "game", k.gameID, "error", err)
		}
	}

	if k.score <= k.highScore {
		return false
	}
	k.highScore = k.score

	if k.store == nil {
		return true
	}
	if err := k.store.SaveHighScore(k.gameID, k.highScore); err != nil {
		k.logger.Warn("could not save high score", "game", k.gameID, "score", k.highScore, "error", err)
		return true
	}
	k.logger.Info("new high score", "game", k.gameID, "score", k.highScore)
	return true
}

// NewSession zeroes the session score and keeps the high score.
func (k *ScoreKeeper) NewSession() {
	k.score = 0
	k.finalized = false
}
