package hoops

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-hoops/internal/core"
	"github.com/vovakirdan/tui-hoops/internal/registry"
)

func newTestGame(store core.HighScoreStore) (*Game, *core.ManualClock) {
	clock := core.NewManualClock(t0)
	g := NewWithConfig(straightShotConfig(), registry.Env{
		Scores: store,
		Logger: quietLogger(),
		Clock:  clock,
	})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g, clock
}

func shoot() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionShoot)
	return in
}

func TestGameShootAndScore(t *testing.T) {
	g, clock := newTestGame(newMemStore())

	scored := 0
	g.Step(shoot())
	for i := 0; i < 40; i++ {
		clock.Advance(time.Second / 60)
		scored += g.Step(core.NewInputFrame()).Scored
	}

	if scored != 1 {
		t.Errorf("expected 1 basket, got %d", scored)
	}
	if g.State().Score != 1 {
		t.Errorf("score = %d, want 1", g.State().Score)
	}
}

func TestGamePauseStopsClock(t *testing.T) {
	g, clock := newTestGame(nil)
	g.Step(shoot())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	clock.Advance(5 * time.Minute)
	pos := g.Sim().Ball.Pos
	g.Step(core.NewInputFrame())
	if g.Sim().Ball.Pos != pos {
		t.Error("ball moved while paused")
	}

	g.Step(pause)
	if g.State().Paused || g.State().GameOver {
		t.Error("game should resume without expiring")
	}
}

func TestGameOverPersistsHighScore(t *testing.T) {
	store := newMemStore()
	g, clock := newTestGame(store)

	g.Step(shoot())
	for g.Sim().Ball.InFlight {
		g.Step(core.NewInputFrame())
	}
	clock.Advance(61 * time.Second)
	res := g.Step(core.NewInputFrame())

	if !res.State.GameOver {
		t.Fatal("match should be over")
	}
	if store.scores[ID] != 1 {
		t.Errorf("stored high score = %d, want 1", store.scores[ID])
	}
}

func TestGameResetFinalizesRunningMatch(t *testing.T) {
	store := newMemStore()
	g, _ := newTestGame(store)

	g.Step(shoot())
	for g.Sim().Ball.InFlight {
		g.Step(core.NewInputFrame())
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})

	if store.scores[ID] != 1 {
		t.Errorf("restart should save the abandoned score, stored %d", store.scores[ID])
	}
	if g.State().Score != 0 || g.State().HighScore != 1 {
		t.Errorf("after reset: %+v", g.State())
	}
}

func TestGameFinalizeIdempotent(t *testing.T) {
	store := newMemStore()
	g, _ := newTestGame(store)
	g.Step(shoot())
	for g.Sim().Ball.InFlight {
		g.Step(core.NewInputFrame())
	}

	g.Finalize()
	g.Finalize()

	if store.saves != 1 {
		t.Errorf("expected 1 save, got %d", store.saves)
	}
}

func TestGameRender(t *testing.T) {
	g, _ := newTestGame(nil)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing score: %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "Time: 1:00") {
		t.Errorf("HUD missing timer: %q", screen.Row(0))
	}
	if !strings.ContainsRune(screen.String(), BallChar) {
		t.Error("ball not drawn")
	}
}

func TestGameRenderTinyScreen(t *testing.T) {
	g, _ := newTestGame(nil)
	screen := core.NewScreen(4, 2)

	g.Render(screen) // must not panic
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("%q not registered", ID)
	}
	g, err := registry.Create(ID, registry.Env{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "Hoops" {
		t.Errorf("title = %q", g.Title())
	}
	if _, ok := g.(registry.Finalizer); !ok {
		t.Error("hoops should implement Finalizer")
	}
}
