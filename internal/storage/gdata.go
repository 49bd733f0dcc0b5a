package storage

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/quasilyte/gdata"

	"github.com/vovakirdan/tui-hoops/internal/core"
)

// GDataStore keeps high scores in the per-user save-data directory managed by
// gdata (XDG data dir on Linux, AppData on Windows, and so on).
type GDataStore struct {
	mu sync.Mutex
	m  *gdata.Manager
}

var _ core.HighScoreStore = (*GDataStore)(nil)

// OpenGData opens (creating if needed) the save-data area for appName.
func OpenGData(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open save data for %s: %w", appName, err)
	}
	return &GDataStore{m: m}, nil
}

func gdataKey(gameID string) string {
	return "highscore-" + gameID
}

// LoadHighScore reads the stored score. A missing item yields 0 and no error.
func (g *GDataStore) LoadHighScore(gameID string) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.load(gameID)
}

func (g *GDataStore) load(gameID string) (int, error) {
	data, err := g.m.LoadItem(gdataKey(gameID))
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load %s: %w", gdataKey(gameID), err)
	}
	if data == nil {
		return 0, nil
	}
	return parseScore(gdataKey(gameID), data)
}

// SaveHighScore stores score unless the saved item is already at least as
// high. An unreadable item is overwritten.
func (g *GDataStore) SaveHighScore(gameID string, score int) error {
	if score < 0 {
		return fmt.Errorf("storage: refusing to save negative score %d", score)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if current, err := g.load(gameID); err == nil && current >= score {
		return nil
	}
	if err := g.m.SaveItem(gdataKey(gameID), []byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("storage: cannot save %s: %w", gdataKey(gameID), err)
	}
	return nil
}

// Close is a no-op; gdata writes each item synchronously.
func (g *GDataStore) Close() error {
	return nil
}
