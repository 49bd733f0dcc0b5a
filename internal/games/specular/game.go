package specular

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-hoops/internal/config"
	"github.com/vovakirdan/tui-hoops/internal/core"
	"github.com/vovakirdan/tui-hoops/internal/registry"
)

// ID is the registry key of the demo.
const ID = "specular"

// ramp orders shading characters from dark to bright.
const ramp = " .:-=+*#%@"

// Game is the lighting demo. It has no score and never ends; the player only
// changes the light intensity.
type Game struct {
	env     registry.Env
	cfg     config.SpecularConfig
	scene   Scene
	levels  []float64
	level   int
	panes   int
	paused  bool
	runtime core.RuntimeConfig
}

// New creates the demo using env's config path.
func New(env registry.Env) (*Game, error) {
	env = env.WithDefaults()
	cfg, err := config.LoadSpecular(env.ConfigPath)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg, env), nil
}

// NewWithConfig creates the demo from an already loaded config.
func NewWithConfig(cfg config.SpecularConfig, env registry.Env) *Game {
	g := &Game{
		env:    env.WithDefaults(),
		cfg:    cfg,
		levels: IntensityLevels(cfg.Light.MinLevel, cfg.Light.MaxLevel, cfg.Light.Step),
	}
	// At least one pane, and never more panes than levels
	g.panes = core.Clamp(cfg.Panes, 1, len(g.levels))
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Specular Lighting"
}

// Reset returns the light to the lowest intensity.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.scene = NewScene(g.cfg)
	g.level = 0
	g.scene.Light.Intensity = g.levels[0]
	g.paused = false
}

// Resize records new screen dimensions.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// Levels returns the selectable intensities.
func (g *Game) Levels() []float64 {
	out := make([]float64, len(g.levels))
	copy(out, g.levels)
	return out
}

// LightIntensity returns the selected intensity.
func (g *Game) LightIntensity() float64 {
	return g.levels[g.level]
}

// SetLightIntensity selects the listed level nearest to level. Values outside
// the listed range are ignored; it reports whether the selection was applied.
func (g *Game) SetLightIntensity(level float64) bool {
	i := nearestLevel(g.levels, level)
	if i < 0 {
		return false
	}
	g.selectLevel(i)
	return true
}

func (g *Game) selectLevel(i int) {
	if i < 0 || i >= len(g.levels) || i == g.level {
		return
	}
	g.level = i
	g.scene.Light.Intensity = g.levels[i]
	g.env.Logger.Debug("light intensity", "game", ID, "level", g.levels[i])
}

// Step applies the player's input. Nothing moves on its own.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if !g.paused {
		if n := in.Level(); n > 0 {
			g.selectLevel(n - 1)
		}
		if in.Has(core.ActionUp) {
			g.selectLevel(g.level + 1)
		}
		if in.Has(core.ActionDown) {
			g.selectLevel(g.level - 1)
		}
	}
	return core.StepResult{State: g.State()}
}

// State reports the selected level (1-based) as the score.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.level + 1,
		Paused: g.paused,
	}
}

// Render draws one pane per intensity, highlighting the selected one.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()

	hud := fmt.Sprintf(" Light intensity: %.2f  [1-9] select  +/- adjust  Q quit", g.LightIntensity())
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)

	paneW := w / g.panes
	paneH := h - 2
	if paneW < 4 || paneH < 4 {
		dst.DrawText(0, 1, "too small")
		return
	}

	// Scroll so the selected level stays visible when there are more
	// levels than panes
	first := core.Clamp(g.level-g.panes+1, 0, len(g.levels)-g.panes)

	for p := 0; p < g.panes; p++ {
		idx := first + p
		box := core.NewRect(p*paneW, 1, paneW, paneH)
		g.renderPane(dst, box, g.levels[idx], idx == g.level)
	}

	if g.paused {
		dst.DrawTextCentered(h-1, "PAUSED - press P to resume")
	} else {
		info := fmt.Sprintf("light (%.1f, %.1f, %.1f)  view (%.1f, %.1f, %.1f)",
			g.scene.Light.Position.X, g.scene.Light.Position.Y, g.scene.Light.Position.Z,
			g.scene.View.X, g.scene.View.Y, g.scene.View.Z)
		dst.DrawTextColor(1, h-1, info, core.ColorGray)
	}
}

// renderPane shades the unit quad into box's interior at the given intensity.
func (g *Game) renderPane(dst *core.Screen, box core.Rect, intensity float64, selected bool) {
	border := core.ColorDarkGray
	if selected {
		border = core.ColorBrightYellow
	}
	dst.DrawBoxColor(box, border)
	label := fmt.Sprintf("%.2f", intensity)
	dst.DrawTextColor(box.X+(box.W-len(label))/2, box.Y, label, border)

	scene := g.scene
	scene.Light.Intensity = intensity
	normal := Vec3{0, 0, 1}

	iw, ih := box.W-2, box.H-2
	for y := 0; y < ih; y++ {
		for x := 0; x < iw; x++ {
			frag := Vec3{
				X: (float64(x)+0.5)/float64(iw) - 0.5,
				Y: 0.5 - (float64(y)+0.5)/float64(ih),
			}
			c := scene.Shade(frag, normal, scene.View).Clamp()
			ch, col := shadeGlyph(c.Luminance())
			dst.SetColor(box.X+1+x, box.Y+1+y, ch, col)
		}
	}
}

// shadeGlyph maps a luminance in [0, 1] onto the ramp.
func shadeGlyph(lum float64) (rune, core.Color) {
	i := int(math.Round(lum * float64(len(ramp)-1)))
	i = core.Clamp(i, 0, len(ramp)-1)
	col := core.ColorOrange
	if i >= len(ramp)-2 {
		col = core.ColorBeige
	}
	return rune(ramp[i]), col
}

// Register the demo with the registry
func init() {
	registry.Register(registry.GameInfo{ID: ID, Title: "Specular Lighting"}, func(env registry.Env) (registry.Game, error) {
		return New(env)
	})
}
