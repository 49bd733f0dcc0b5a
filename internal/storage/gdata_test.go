package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestGData(t *testing.T) (*GDataStore, string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))

	g, err := OpenGData("tui-hoops-test")
	if err != nil {
		t.Fatalf("OpenGData() failed: %v", err)
	}
	return g, home
}

func TestGDataStoreMissingItemIsZero(t *testing.T) {
	g, _ := openTestGData(t)

	high, err := g.LoadHighScore("hoops")
	if err != nil {
		t.Fatalf("LoadHighScore() on missing item failed: %v", err)
	}
	if high != 0 {
		t.Errorf("LoadHighScore() = %d, expected 0", high)
	}
}

func TestGDataStoreRoundTrip(t *testing.T) {
	g, home := openTestGData(t)

	if err := g.SaveHighScore("hoops", 23); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	high, err := g.LoadHighScore("hoops")
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if high != 23 {
		t.Errorf("LoadHighScore() = %d, expected 23", high)
	}

	// Kept under the temp home, in the one-integer format
	path := filepath.Join(home, ".local", "share", "tui-hoops-test", "highscore-hoops")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("save data not written under temp home: %v", err)
	}
	if string(data) != "23" {
		t.Errorf("item contents = %q, expected \"23\"", data)
	}

	if other, _ := g.LoadHighScore("specular"); other != 0 {
		t.Errorf("specular high score = %d, expected 0", other)
	}
}

func TestGDataStoreRejectsNegative(t *testing.T) {
	g, _ := openTestGData(t)

	if err := g.SaveHighScore("hoops", -1); err == nil {
		t.Error("negative scores should be rejected")
	}
	if high, _ := g.LoadHighScore("hoops"); high != 0 {
		t.Errorf("rejected save changed the score to %d", high)
	}
}

func TestHighScoreBackendsNeverDecrease(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	file, err := NewSingleFileStore(filepath.Join(dir, "highscore.txt"))
	if err != nil {
		t.Fatal(err)
	}
	db, err := Open(filepath.Join(dir, "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	save, err := OpenGData("tui-hoops-test")
	if err != nil {
		t.Fatal(err)
	}

	backends := []struct {
		name  string
		store HighScores
	}{
		{"file", file},
		{"sqlite", db},
		{"gdata", save},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			for _, score := range []int{10, 15, 12} {
				if err := b.store.SaveHighScore("hoops", score); err != nil {
					t.Fatalf("SaveHighScore(%d) failed: %v", score, err)
				}
			}
			high, err := b.store.LoadHighScore("hoops")
			if err != nil {
				t.Fatalf("LoadHighScore() failed: %v", err)
			}
			if high != 15 {
				t.Errorf("after saving 10, 15, 12: LoadHighScore() = %d, expected 15", high)
			}
		})
	}
}
