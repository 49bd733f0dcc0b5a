package hoops

import (
	"github.com/vovakirdan/tui-hoops/internal/config"
	"github.com/vovakirdan/tui-hoops/internal/core"
	"github.com/vovakirdan/tui-hoops/internal/registry"
)

// ID is the registry and score-storage key of the game.
const ID = "hoops"

// Game adapts Sim to the arcade platform: it maps input frames to launches
// and pauses, reads the clock, and renders to the terminal screen.
type Game struct {
	env     registry.Env
	sim     *Sim
	runtime core.RuntimeConfig
	paused  bool

	// flash counts down the ticks left to show the basket banner.
	flash int
}

// New creates a game using env's services and config.
func New(env registry.Env) (*Game, error) {
	env = env.WithDefaults()

	cfg, err := config.LoadHoops(env.ConfigPath)
	if err != nil {
		return nil, err
	}
	config.ApplyHoopsPreset(&cfg, env.Difficulty)

	return NewWithConfig(cfg, env), nil
}

// NewWithConfig creates a game from an already loaded config.
func NewWithConfig(cfg config.HoopsConfig, env registry.Env) *Game {
	env = env.WithDefaults()
	keeper := NewScoreKeeper(ID, env.Scores, env.Logger.WithPrefix(ID))
	return &Game{
		env:     env,
		sim:     NewSim(cfg, keeper),
		runtime: core.DefaultConfig(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Hoops"
}

// Reset starts a new match. A match still in progress is finalized first so
// its score is not lost.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.sim.Ticks() > 0 || g.sim.Clock.Started() {
		g.sim.Finish()
	}
	g.sim.Reset()
	g.paused = false
	g.flash = 0
}

// Resize records new screen dimensions without touching the match.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim.GameOver() {
		return core.StepResult{State: g.State()}
	}

	now := g.env.Clock.Now()

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		if g.paused {
			g.sim.Pause(now)
		} else {
			g.sim.Resume(now)
		}
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionShoot) {
		g.sim.Launch(now)
	}

	report := g.sim.Step(now)

	result := core.StepResult{}
	if report.Scored {
		result.Scored = 1
		g.flash = g.flashTicks()
	} else if g.flash > 0 {
		g.flash--
	}
	if report.Expired {
		g.env.Logger.Debug("match over", "game", ID, "score", g.sim.Scores.Score())
	}

	result.State = g.State()
	return result
}

func (g *Game) flashTicks() int {
	if g.runtime.TickRate > 0 {
		return g.runtime.TickRate / 2
	}
	return 30
}

// Finalize ends the match and persists a new high score.
func (g *Game) Finalize() {
	g.sim.Finish()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.sim.Scores.Score(),
		HighScore: core.Max(g.sim.Scores.HighScore(), g.sim.Scores.Score()),
		GameOver:  g.sim.GameOver(),
		Paused:    g.paused,
	}
}

// Snapshot returns the render state for the current instant.
func (g *Game) Snapshot() Snapshot {
	snap := g.sim.Snapshot(g.env.Clock.Now())
	snap.Paused = g.paused
	return snap
}

// Sim exposes the underlying simulation, for tooling and tests.
func (g *Game) Sim() *Sim {
	return g.sim
}

// Register the game with the registry
func init() {
	registry.Register(registry.GameInfo{ID: ID, Title: "Hoops"}, func(env registry.Env) (registry.Game, error) {
		return New(env)
	})
}
