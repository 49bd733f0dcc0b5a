package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-hoops/internal/core"
)

// FileStore keeps each game's high score as a decimal integer in a small text
// file, e.g. a file containing just "42".
type FileStore struct {
	mu     sync.Mutex
	pathOf func(gameID string) string
}

var _ core.HighScoreStore = (*FileStore)(nil)

// NewFileStore stores one file per game, named highscore-<game>.txt, under dir.
func NewFileStore(dir string) (*FileStore, error) {
	dir, err := ExpandHome(dir)
	if err != nil {
		return nil, err
	}
	return &FileStore{
		pathOf: func(gameID string) string {
			return filepath.Join(dir, "highscore-"+gameID+".txt")
		},
	}, nil
}

// NewSingleFileStore stores every game's score in the one file at path.
// This matches a standalone game that only ever tracks itself.
func NewSingleFileStore(path string) (*FileStore, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{
		pathOf: func(string) string { return path },
	}, nil
}

// Path returns the file that holds gameID's score.
func (f *FileStore) Path(gameID string) string {
	return f.pathOf(gameID)
}

// LoadHighScore reads the stored score. A missing file yields 0 and no error.
func (f *FileStore) LoadHighScore(gameID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return readScoreFile(f.pathOf(gameID))
}

func readScoreFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %s: %w", path, err)
	}

	return parseScore(path, data)
}

// SaveHighScore stores score unless the file already holds a score at least as
// high, so sessions sharing the file never lower it. An unreadable file is
// overwritten. The write goes through a temp file and a rename so a crash
// never leaves a half-written number behind.
func (f *FileStore) SaveHighScore(gameID string, score int) error {
	if score < 0 {
		return fmt.Errorf("storage: refusing to save negative score %d", score)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	path := f.pathOf(gameID)
	if current, err := readScoreFile(path); err == nil && current >= score {
		return nil
	}
	if err := ensureDir(path); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".highscore-*")
	if err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot replace %s: %w", path, err)
	}
	return nil
}

// Close is a no-op; FileStore holds no open handles.
func (f *FileStore) Close() error {
	return nil
}

// parseScore decodes the stored text. Surrounding whitespace is ignored.
func parseScore(source string, data []byte) (int, error) {
	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, nil
	}
	score, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("storage: %s does not hold a score: %w", source, err)
	}
	if score < 0 {
		return 0, fmt.Errorf("storage: %s holds negative score %d", source, score)
	}
	return score, nil
}
