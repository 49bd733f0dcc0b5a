package specular

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hoops/internal/config"
	"github.com/vovakirdan/tui-hoops/internal/core"
	"github.com/vovakirdan/tui-hoops/internal/registry"
)

func newTestGame() *Game {
	return NewWithConfig(config.DefaultSpecularConfig(), registry.Env{Logger: log.New(io.Discard)})
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestSetLightIntensity(t *testing.T) {
	g := newTestGame()

	tests := []struct {
		level   float64
		applied bool
		want    float64
	}{
		{2.0, true, 2.0},
		{2.6, true, 2.5},
		{5.0, false, 2.5}, // out of range, unchanged
		{0.0, false, 2.5}, // out of range, unchanged
		{1.0, true, 1.0},
	}

	for _, tt := range tests {
		if got := g.SetLightIntensity(tt.level); got != tt.applied {
			t.Errorf("SetLightIntensity(%v) = %v, want %v", tt.level, got, tt.applied)
		}
		if !near(g.LightIntensity(), tt.want) {
			t.Errorf("after SetLightIntensity(%v): intensity %v, want %v", tt.level, g.LightIntensity(), tt.want)
		}
	}
}

func TestStepKeys(t *testing.T) {
	g := newTestGame()

	g.Step(input(core.LevelAction(5)))
	if !near(g.LightIntensity(), 2.0) {
		t.Errorf("key 5: intensity %v, want 2.0", g.LightIntensity())
	}

	g.Step(input(core.ActionUp))
	if !near(g.LightIntensity(), 2.25) {
		t.Errorf("up: intensity %v, want 2.25", g.LightIntensity())
	}

	g.Step(input(core.ActionDown))
	g.Step(input(core.ActionDown))
	if !near(g.LightIntensity(), 1.75) {
		t.Errorf("down twice: intensity %v, want 1.75", g.LightIntensity())
	}

	g.Step(input(core.LevelAction(1)))
	g.Step(input(core.ActionDown))
	if !near(g.LightIntensity(), 1.0) {
		t.Errorf("down at the bottom should stay at 1.0, got %v", g.LightIntensity())
	}

	res := g.Step(input(core.LevelAction(9)))
	if res.State.Score != 9 || res.State.GameOver {
		t.Errorf("state = %+v, want score 9 and never game over", res.State)
	}
}

func TestPauseIgnoresSelection(t *testing.T) {
	g := newTestGame()
	g.Step(input(core.ActionPause))

	g.Step(input(core.LevelAction(3)))

	if !near(g.LightIntensity(), 1.0) || !g.State().Paused {
		t.Error("selection should be ignored while paused")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame()
	screen := core.NewScreen(96, 20)

	g.Render(screen)

	if !strings.Contains(screen.Row(0), "1.00") {
		t.Errorf("HUD missing intensity: %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(1), "2.75") {
		t.Errorf("pane labels missing: %q", screen.Row(1))
	}
	if got := screen.GetCell(0, 1).Color; got != core.ColorBrightYellow {
		t.Errorf("selected pane border color = %v", got)
	}

	// Selecting level 9 scrolls the panes
	g.Step(input(core.LevelAction(9)))
	g.Render(screen)
	if !strings.Contains(screen.Row(1), "3.00") {
		t.Errorf("level 9 pane not visible: %q", screen.Row(1))
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newTestGame()
	g.Render(core.NewScreen(10, 3)) // must not panic
}

func TestPaneCount(t *testing.T) {
	levels := len(newTestGame().Levels())

	tests := []struct {
		panes int
		want  int
	}{
		{0, 1},
		{-2, 1},
		{3, 3},
		{levels + 5, levels},
	}

	for _, tt := range tests {
		cfg := config.DefaultSpecularConfig()
		cfg.Panes = tt.panes
		g := NewWithConfig(cfg, registry.Env{Logger: log.New(io.Discard)})
		if g.panes != tt.want {
			t.Errorf("Panes %d: got %d panes, want %d", tt.panes, g.panes, tt.want)
		}

		screen := core.NewScreen(96, 20)
		g.Render(screen)
		if got := screen.GetCell(0, 1).Color; got != core.ColorBrightYellow {
			t.Errorf("Panes %d: selected pane border color = %v", tt.panes, got)
		}
	}
}
