package tui

import (
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hoops/internal/core"
	"github.com/vovakirdan/tui-hoops/internal/storage"
)

// stubGame ends after a fixed number of steps and counts platform calls.
type stubGame struct {
	steps     int
	endAfter  int
	score     int
	resets    int
	resizes   int
	finalizes int
	shots     int

	// endOnFinalize makes Finalize end the game, as leaving a hoops match does
	endOnFinalize bool
	ended         bool
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	if in.Has(core.ActionShoot) {
		g.shots++
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }

func (g *stubGame) State() core.GameState {
	over := g.ended || (g.endAfter > 0 && g.steps >= g.endAfter)
	return core.GameState{Score: g.score, GameOver: over}
}

func (g *stubGame) Finalize() {
	g.finalizes++
	g.ended = g.ended || g.endOnFinalize
}

func (g *stubGame) Resize(w, h int) { g.resizes++ }

func testServices(t *testing.T) (Services, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return Services{HighScores: store, Board: store, Logger: log.New(io.Discard)}, store
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func TestModelGameOverRecordsOnce(t *testing.T) {
	svc, store := testServices(t)
	g := &stubGame{endAfter: 3, score: 7}
	m := NewModel(g, svc, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60})
	m.Init()

	for i := 0; i < 10; i++ {
		m = tick(t, m)
	}

	if g.finalizes != 1 {
		t.Errorf("Finalize called %d times, want 1", g.finalizes)
	}
	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 7 {
		t.Errorf("recorded sessions = %+v, want one score of 7", scores)
	}
}

func TestModelRestartAllowsNewSession(t *testing.T) {
	svc, _ := testServices(t)
	g := &stubGame{endAfter: 2, score: 1}
	m := NewModel(g, svc, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60})
	m.Init()

	m = tick(t, m)
	m = tick(t, m)
	if !m.gameState.GameOver {
		t.Fatal("stub should be over")
	}

	next, _ := m.Update(keyMsg("r"))
	m = tick(t, next.(Model))
	if g.resets != 2 {
		t.Errorf("expected a reset on restart, got %d resets", g.resets)
	}

	m = tick(t, m)
	m = tick(t, m)
	if g.finalizes != 2 {
		t.Errorf("second session should finalize too, got %d", g.finalizes)
	}
}

func TestModelBackFinalizes(t *testing.T) {
	svc, _ := testServices(t)
	g := &stubGame{}
	m := NewModel(g, svc, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60})
	m.Init()
	m = tick(t, m)

	next, cmd := m.Update(keyMsg("esc"))
	m = next.(Model)

	if !m.BackToMenu() {
		t.Error("esc should go back to the menu")
	}
	if cmd != nil {
		t.Error("inside a session, back should not quit the program")
	}
	if g.finalizes != 1 {
		t.Errorf("Finalize called %d times, want 1", g.finalizes)
	}
}

func TestModelQuitFinalizes(t *testing.T) {
	svc, _ := testServices(t)
	g := &stubGame{}
	m := NewModel(g, svc, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60})

	next, cmd := m.Update(keyMsg("q"))

	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if g.finalizes != 1 {
		t.Errorf("Finalize called %d times, want 1", g.finalizes)
	}
}

func TestModelLeavingMidMatchIsNotRecorded(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"quit", "q"},
		{"back", "esc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := testServices(t)
			g := &stubGame{score: 5, endOnFinalize: true}
			m := NewModel(g, svc, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60})
			m.Init()
			m = tick(t, m)

			m.Update(keyMsg(tt.key))

			if g.finalizes != 1 {
				t.Errorf("Finalize called %d times, want 1", g.finalizes)
			}
			scores, err := store.TopScores("stub", 10)
			if err != nil {
				t.Fatalf("TopScores: %v", err)
			}
			if len(scores) != 0 {
				t.Errorf("unfinished match recorded: %+v", scores)
			}
		})
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	svc, _ := testServices(t)
	g := &stubGame{}
	m := NewModel(g, svc, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60})
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if g.resizes != 1 || g.resets != 1 {
		t.Errorf("resizes=%d resets=%d, want a resize and no extra reset", g.resizes, g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen is %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelInputReachesGame(t *testing.T) {
	svc, _ := testServices(t)
	g := &stubGame{}
	m := NewModel(g, svc, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60})
	m.Init()

	next, _ := m.Update(keyMsg(" "))
	m = tick(t, next.(Model))
	next, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	tick(t, next.(Model))

	if g.shots != 2 {
		t.Errorf("game saw %d shots, want 2", g.shots)
	}
}
