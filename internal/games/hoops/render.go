package hoops

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-hoops/internal/core"
)

// Visual characters for rendering
const (
	BallChar      = '●'
	BoardChar     = '█'
	BoardEdgeChar = '▒'
	RimChar       = '═'
	NetChar       = '╳'
	FloorChar     = '▁'
)

// projector maps world coordinates onto the play area below the HUD row.
type projector struct {
	w, h int
}

func (p projector) col(x float64) int {
	px, _ := Project(core.Vec2{X: x}, float64(p.w-1), 1)
	return int(math.Round(px))
}

func (p projector) row(y float64) int {
	_, py := Project(core.Vec2{Y: y}, 1, float64(p.h-2))
	return 1 + int(math.Round(py))
}

// fill draws the world-space box b with ch.
func (p projector) fill(dst *core.Screen, b core.Bounds, ch rune, c core.Color) {
	c0, c1 := p.col(b.MinX), p.col(b.MaxX)
	r0, r1 := p.row(b.MaxY), p.row(b.MinY)
	dst.DrawRectColor(core.NewRect(c0, r0, c1-c0+1, r1-r0+1), ch, c)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 10 || dst.Height() < 6 {
		dst.DrawText(0, 0, "too small")
		return
	}

	snap := g.Snapshot()
	p := projector{w: dst.Width(), h: dst.Height()}

	// Floor
	floorY := dst.Height() - 1
	for x := 0; x < dst.Width(); x++ {
		dst.SetColor(x, floorY, FloorChar, core.ColorDarkGray)
	}

	drawBackboard(dst, p, snap)

	if snap.NetCaptured {
		p.fill(dst, snap.NetBounds(), NetChar, core.ColorWhite)
	}

	// Trail, oldest first so newer entries win overlaps
	for i := len(snap.Trail) - 1; i >= 0; i-- {
		tp := snap.Trail[i]
		ch, c := trailGlyph(tp.Weight)
		dst.SetColor(p.col(tp.Pos.X), p.row(tp.Pos.Y), ch, c)
	}

	dst.SetColor(p.col(snap.Ball.X), p.row(snap.Ball.Y), BallChar, core.ColorOrange)

	g.drawHUD(dst, snap)

	if g.flash > 0 && !snap.GameOver {
		dst.DrawTextColor((dst.Width()-len(" SWISH! "))/2, dst.Height()/2, " SWISH! ", core.ColorBrightYellow)
	}

	if snap.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if snap.GameOver {
		subtitle := fmt.Sprintf("Score: %d  Best: %d  |  R restart  B menu", snap.Score, core.Max(snap.Score, snap.HighScore))
		drawCenteredMessage(dst, "TIME UP", subtitle)
	}
}

func drawBackboard(dst *core.Screen, p projector, snap Snapshot) {
	board, border, target := snap.Backboard()
	p.fill(dst, border, BoardEdgeChar, core.ColorGray)
	p.fill(dst, board, BoardChar, core.ColorBlue)
	p.fill(dst, target, BoardChar, core.ColorRed)

	x0, x1, y := snap.Rim()
	row := p.row(y)
	for x := p.col(x0); x <= p.col(x1); x++ {
		dst.SetColor(x, row, RimChar, core.ColorBrightRed)
	}
}

// trailGlyph picks a smaller, dimmer glyph as the entry fades.
func trailGlyph(weight float64) (rune, core.Color) {
	switch {
	case weight > 0.9:
		return '•', core.ColorOrange
	case weight > 0.6:
		return '∙', core.ColorOrange
	case weight > 0.3:
		return '·', core.ColorYellow
	default:
		return '·', core.ColorDarkGray
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	secs := int(math.Ceil(snap.Remaining.Seconds()))
	hud := fmt.Sprintf(" Score: %d   Best: %d   Time: %d:%02d ", snap.Score, core.Max(snap.Score, snap.HighScore), secs/60, secs%60)
	dst.DrawTextColor(1, 0, hud, core.ColorBrightWhite)

	if !snap.Started {
		hint := "SPACE shoot  P pause  Q quit"
		dst.DrawTextColor(dst.Width()-len(hint)-2, 0, hint, core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
