package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hoops/internal/core"
	"github.com/vovakirdan/tui-hoops/internal/registry"
)

var boardGames = []registry.GameInfo{
	{ID: "hoops", Title: "Hoops"},
	{ID: "other", Title: "Other"},
}

// scoredServices records three hoops sessions with 30 second matches.
func scoredServices(t *testing.T) Services {
	t.Helper()
	svc, store := testServices(t)

	cfgPath := filepath.Join(t.TempDir(), "hoops.yaml")
	if err := os.WriteFile(cfgPath, []byte("match:\n  duration_seconds: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	svc.ConfigPath = cfgPath

	for _, score := range []int{12, 30, 6} {
		if _, err := store.SaveScore("hoops", score); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}
	if err := store.SaveHighScore("hoops", 30); err != nil {
		t.Fatalf("SaveHighScore: %v", err)
	}
	return svc
}

func TestScoreboardRows(t *testing.T) {
	m := newScoreboard(scoredServices(t), boardGames, 80, 30)

	if m.board.match != 30*time.Second {
		t.Fatalf("match length = %v, want 30s", m.board.match)
	}

	rows := m.board.rows()
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	tests := []struct {
		row   int
		rank  string
		score string
		pace  string
		mark  string
	}{
		{0, "#1", "30", "60.0/min", "★"},
		{1, "#2", "12", "24.0/min", ""},
		{2, "#3", "6", "12.0/min", ""},
	}
	for _, tt := range tests {
		r := rows[tt.row]
		if r[0] != tt.rank || r[1] != tt.score || r[2] != tt.pace || r[4] != tt.mark {
			t.Errorf("row %d = %v, want %s %s %s %q", tt.row, r, tt.rank, tt.score, tt.pace, tt.mark)
		}
	}
}

func TestScoreboardSummary(t *testing.T) {
	m := newScoreboard(scoredServices(t), boardGames, 80, 30)

	summary := m.board.summary()
	for _, want := range []string{"best 30", "30 s matches", "3 played", "average 16.0"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary %q missing %q", summary, want)
		}
	}
	if view := m.View(); !strings.Contains(view, "LEADERBOARD - Hoops") {
		t.Errorf("view missing title:\n%s", view)
	}
}

func TestScoreboardCyclesGames(t *testing.T) {
	m := newScoreboard(scoredServices(t), boardGames, 80, 30)

	tests := []struct {
		wantID   string
		wantRows int
	}{
		{"other", 0},
		{"hoops", 3},
	}
	for _, tt := range tests {
		next, _ := m.Update(keyMsg("tab"))
		m = next.(ScoreboardModel)
		if m.board.info.ID != tt.wantID {
			t.Fatalf("selected %q, want %q", m.board.info.ID, tt.wantID)
		}
		if got := len(m.board.rows()); got != tt.wantRows {
			t.Errorf("%s: %d rows, want %d", tt.wantID, got, tt.wantRows)
		}
	}

	if m.board.pace(10) == "-" {
		t.Error("hoops sessions should have a pace")
	}
	m.selectGame(1)
	if got := m.board.pace(10); got != "-" {
		t.Errorf("untimed game pace = %q, want -", got)
	}
}

func TestScoreboardWithoutHistory(t *testing.T) {
	m := newScoreboard(Services{}, boardGames, 80, 30)
	if view := m.View(); !strings.Contains(view, "Session history is unavailable") {
		t.Errorf("view should explain the missing database:\n%s", view)
	}

	m = newScoreboard(Services{}, nil, 80, 30)
	if view := m.View(); !strings.Contains(view, "No scored games") {
		t.Errorf("view should explain the empty registry:\n%s", view)
	}
}

func TestSessionOpensScoreboard(t *testing.T) {
	svc, _ := testServices(t)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60}

	tests := []struct {
		name     string
		leave    tea.KeyMsg
		quitting bool
	}{
		{"back", keyMsg("esc"), false},
		{"quit", keyMsg("q"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = NewSessionModel(svc, cfg, "tester")

			m, _ = m.Update(keyMsg("tab"))
			if m.(SessionModel).board == nil {
				t.Fatal("tab should open the scoreboard")
			}

			m, _ = m.Update(tt.leave)
			s := m.(SessionModel)
			if s.board != nil {
				t.Error("scoreboard should be closed")
			}
			if s.quitting != tt.quitting {
				t.Errorf("quitting = %v, want %v", s.quitting, tt.quitting)
			}
		})
	}
}
