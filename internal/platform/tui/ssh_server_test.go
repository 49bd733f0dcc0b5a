package tui

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hoops/internal/storage"
)

func TestSSHServerShutdownKeepsStoresForDrainingSessions(t *testing.T) {
	logger := log.New(io.Discard)
	stores, err := storage.OpenStores(storage.BackendSQLite, storage.Options{
		DBPath: filepath.Join(t.TempDir(), "scores.db"),
	}, logger)
	if err != nil {
		t.Fatalf("OpenStores: %v", err)
	}

	var drainSaveErr error
	srv := &SSHServer{
		stores: stores,
		svc:    ServicesFromStores(stores, logger),
		logger: logger,
	}
	// A session that ends while the server drains still records its score
	srv.drain = func(context.Context) error {
		_, drainSaveErr = stores.Board.SaveScore("hoops", 9)
		return nil
	}

	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if drainSaveErr != nil {
		t.Errorf("score saved during drain failed: %v", drainSaveErr)
	}

	if _, err := stores.Board.SaveScore("hoops", 1); err == nil {
		t.Error("stores should be closed once Shutdown returns")
	}
}
