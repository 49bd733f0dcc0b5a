package storage

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hoops/internal/core"
)

// Backend names accepted by OpenHighScores.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendGData  = "gdata"
)

// ErrUnknownBackend is returned for a backend name OpenHighScores does not know.
var ErrUnknownBackend = errors.New("storage: unknown backend")

// HighScores is a high score store that may hold resources.
type HighScores interface {
	core.HighScoreStore
	Close() error
}

// SessionRecorder is implemented by stores that keep every finished session,
// not just the best one.
type SessionRecorder interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Options selects where each backend keeps its data.
type Options struct {
	// DBPath is the sqlite database (sqlite backend).
	DBPath string
	// HighScoreFile, if set, is the single text file used by the file backend.
	// Otherwise the file backend writes highscore-<game>.txt next to DBPath.
	HighScoreFile string
	// AppName names the gdata save-data area.
	AppName string
}

// OpenHighScores opens the named backend.
func OpenHighScores(backend string, opts Options) (HighScores, error) {
	switch backend {
	case BackendSQLite, "":
		return Open(opts.DBPath)
	case BackendFile:
		if opts.HighScoreFile != "" {
			return NewSingleFileStore(opts.HighScoreFile)
		}
		return NewFileStore(filepath.Dir(opts.DBPath))
	case BackendGData:
		name := opts.AppName
		if name == "" {
			name = "tui-hoops"
		}
		return OpenGData(name)
	default:
		return nil, fmt.Errorf("%w %q (want sqlite, file or gdata)", ErrUnknownBackend, backend)
	}
}

// Stores bundles the leaderboard database with the high score backend.
type Stores struct {
	// Board keeps every finished session. Nil if the database is unavailable.
	Board *Store
	// HighScores holds the best score per game.
	HighScores HighScores
}

// OpenStores opens the leaderboard database at opts.DBPath and the named high
// score backend. The sqlite backend shares the leaderboard database. With
// another backend, a leaderboard that cannot be opened is logged and left nil
// so games still run.
func OpenStores(backend string, opts Options, logger *log.Logger) (Stores, error) {
	var s Stores

	board, err := Open(opts.DBPath)
	if backend == BackendSQLite || backend == "" {
		if err != nil {
			return Stores{}, err
		}
		return Stores{Board: board, HighScores: board}, nil
	}

	if err != nil {
		logger.Warn("could not open scores database", "path", opts.DBPath, "error", err)
	} else {
		s.Board = board
	}

	hs, err := OpenHighScores(backend, opts)
	if err != nil {
		s.Close()
		return Stores{}, err
	}
	s.HighScores = hs
	return s, nil
}

// Recorder returns the session recorder, or nil without a leaderboard.
func (s Stores) Recorder() SessionRecorder {
	if s.Board == nil {
		return nil
	}
	return s.Board
}

// Close releases both stores. A shared sqlite store is closed once.
func (s Stores) Close() error {
	var errs []error
	if s.HighScores != nil && s.HighScores != HighScores(s.Board) {
		errs = append(errs, s.HighScores.Close())
	}
	if s.Board != nil {
		errs = append(errs, s.Board.Close())
	}
	return errors.Join(errs...)
}
