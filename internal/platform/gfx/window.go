// Package gfx runs hoops in a desktop window using Ebitengine.
package gfx

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-hoops/internal/core"
	"github.com/vovakirdan/tui-hoops/internal/games/hoops"
)

// Options configures the window.
type Options struct {
	Width  int
	Height int
	TPS    int
	Logger *log.Logger

	// OnGameOver, if set, is called once each time a match runs out of time.
	OnGameOver func(state core.GameState)
}

// DefaultOptions returns an 800x600 window at 60 ticks per second.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 600, TPS: 60}
}

var (
	colorBackground = color.RGBA{0x10, 0x12, 0x1a, 0xff}
	colorFloor      = color.RGBA{0x3a, 0x2a, 0x1a, 0xff}
	colorBoard      = color.RGBA{0x1e, 0x50, 0xc8, 0xff}
	colorBorder     = color.RGBA{0x90, 0x90, 0x90, 0xff}
	colorTarget     = color.RGBA{0xd0, 0x20, 0x20, 0xff}
	colorRim        = color.RGBA{0xff, 0x40, 0x20, 0xff}
	colorNet        = color.RGBA{0xee, 0xee, 0xee, 0xff}
	colorBall       = color.RGBA{0xff, 0x80, 0x00, 0xff}
	colorOverlay    = color.RGBA{0x00, 0x00, 0x00, 0xa0}
)

// Window is an ebiten.Game that drives a hoops match.
type Window struct {
	game   *hoops.Game
	opts   Options
	logger *log.Logger
	frame  core.InputFrame
	ended  bool
}

// NewWindow wraps game for display.
func NewWindow(game *hoops.Game, opts Options) *Window {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = DefaultOptions().Width, DefaultOptions().Height
	}
	if opts.TPS <= 0 {
		opts.TPS = DefaultOptions().TPS
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Window{
		game:   game,
		opts:   opts,
		logger: logger,
		frame:  core.NewInputFrame(),
	}
}

// Update reads input and steps the match once.
func (w *Window) Update() error {
	w.frame.Clear()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		w.frame.Set(core.ActionShoot)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		w.frame.Set(core.ActionPause)
	}

	if w.game.State().GameOver {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			w.game.Reset(core.RuntimeConfig{ScreenW: w.opts.Width, ScreenH: w.opts.Height, TickRate: w.opts.TPS})
			w.ended = false
		}
		return nil
	}

	res := w.game.Step(w.frame)
	if res.Scored > 0 {
		w.logger.Debug("basket", "score", res.State.Score)
	}
	if res.State.GameOver && !w.ended {
		w.ended = true
		if w.opts.OnGameOver != nil {
			w.opts.OnGameOver(res.State)
		}
	}
	return nil
}

// Draw renders the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.game.Snapshot()
	fw, fh := float64(w.opts.Width), float64(w.opts.Height)

	screen.Fill(colorBackground)

	// Floor below the court
	_, floorY := hoops.Project(core.Vec2{Y: snap.Court.MinY}, fw, fh)
	vector.FillRect(screen, 0, float32(floorY), float32(fw), float32(fh-floorY), colorFloor, false)

	board, border, target := snap.Backboard()
	w.fillBounds(screen, border, colorBorder)
	w.fillBounds(screen, board, colorBoard)
	w.fillBounds(screen, target, colorTarget)

	x0, x1, rimY := snap.Rim()
	ax, ay := hoops.Project(core.Vec2{X: x0, Y: rimY}, fw, fh)
	bx, _ := hoops.Project(core.Vec2{X: x1, Y: rimY}, fw, fh)
	vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(ay), 4, colorRim, true)

	if snap.NetCaptured {
		w.fillBounds(screen, snap.NetBounds(), colorNet)
	}

	scale := fw / hoops.ViewBounds.Width()

	// Oldest first so the ball sits on top of its trail
	for i := len(snap.Trail) - 1; i >= 0; i-- {
		tp := snap.Trail[i]
		x, y := hoops.Project(tp.Pos, fw, fh)
		c := colorBall
		c.A = uint8(tp.Weight * 0xff)
		// Alpha-premultiplied
		c.R = uint8(float64(c.R) * tp.Weight)
		c.G = uint8(float64(c.G) * tp.Weight)
		c.B = uint8(float64(c.B) * tp.Weight)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(tp.Radius*scale), c, true)
	}

	x, y := hoops.Project(snap.Ball, fw, fh)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(snap.BallRadius*scale), colorBall, true)

	secs := int(snap.Remaining.Seconds() + 0.999)
	hud := fmt.Sprintf("Score: %d   Best: %d   Time: %d:%02d",
		snap.Score, core.Max(snap.Score, snap.HighScore), secs/60, secs%60)
	if !snap.Started {
		hud += "\nSPACE or click to shoot, P pause, Q quit"
	}
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)

	switch {
	case snap.GameOver:
		w.drawOverlay(screen, fmt.Sprintf("TIME UP\n\nYour score: %d\nHigh score: %d\n\nR restart  Q quit",
			snap.Score, core.Max(snap.Score, snap.HighScore)))
	case snap.Paused:
		w.drawOverlay(screen, "PAUSED\n\nP to resume")
	}
}

func (w *Window) fillBounds(screen *ebiten.Image, b core.Bounds, c color.Color) {
	fw, fh := float64(w.opts.Width), float64(w.opts.Height)
	x0, y0 := hoops.Project(core.Vec2{X: b.MinX, Y: b.MaxY}, fw, fh)
	x1, y1 := hoops.Project(core.Vec2{X: b.MaxX, Y: b.MinY}, fw, fh)
	vector.FillRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), c, false)
}

func (w *Window) drawOverlay(screen *ebiten.Image, text string) {
	vector.FillRect(screen, 0, 0, float32(w.opts.Width), float32(w.opts.Height), colorOverlay, false)
	ebitenutil.DebugPrintAt(screen, text, w.opts.Width/2-60, w.opts.Height/2-40)
}

// Layout keeps a fixed logical resolution; ebiten scales it to the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.opts.Width, w.opts.Height
}

// Run opens the window and blocks until the player closes it. The match is
// finalized on exit and its final state returned.
func Run(game *hoops.Game, opts Options) (core.GameState, error) {
	w := NewWindow(game, opts)

	ebiten.SetWindowSize(w.opts.Width, w.opts.Height)
	ebiten.SetWindowTitle("Hoops")
	ebiten.SetTPS(w.opts.TPS)

	game.Reset(core.RuntimeConfig{ScreenW: w.opts.Width, ScreenH: w.opts.Height, TickRate: w.opts.TPS})

	err := ebiten.RunGame(w)
	game.Finalize()
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	if err != nil {
		return game.State(), fmt.Errorf("gfx: %w", err)
	}
	return game.State(), nil
}
