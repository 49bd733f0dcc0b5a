package hoops

import (
	"time"

	"github.com/vovakirdan/tui-hoops/internal/core"
)

// TrailPoint is one trail entry ready to draw.
type TrailPoint struct {
	Pos    core.Vec2
	Weight float64 // Opacity in [0, 1]
	Radius float64 // World units
}

// Snapshot is everything a renderer needs to draw one frame.
// It is a copy; mutating it does not affect the simulation.
type Snapshot struct {
	Court core.Bounds

	Ball       core.Vec2
	BallRadius float64
	InFlight   bool
	Trail      []TrailPoint

	BasketX     float64
	RimY        float64
	Net         Net
	NetCaptured bool

	Score     int
	HighScore int
	Remaining time.Duration
	Started   bool
	GameOver  bool
	Paused    bool
}

// Snapshot captures the current state at time now.
func (s *Sim) Snapshot(now time.Time) Snapshot {
	bound := s.cfg.Court.Bound
	snap := Snapshot{
		Court:       core.Bounds{MinX: -bound, MinY: -bound, MaxX: bound, MaxY: bound},
		Ball:        s.Ball.Pos,
		BallRadius:  s.cfg.Ball.Radius,
		InFlight:    s.Ball.InFlight,
		BasketX:     s.Hoop.X,
		RimY:        s.cfg.Basket.RimY,
		Net:         s.Hoop.Net,
		NetCaptured: s.Hoop.Captured,
		Score:       s.Scores.Score(),
		HighScore:   s.Scores.HighScore(),
		Remaining:   s.Clock.Remaining(now),
		Started:     s.Clock.Started(),
		GameOver:    s.over,
	}

	if n := s.Trail.Len(); n > 0 {
		snap.Trail = make([]TrailPoint, n)
		for i := 0; i < n; i++ {
			snap.Trail[i] = TrailPoint{
				Pos:    s.Trail.At(i),
				Weight: s.Trail.Weight(i),
				Radius: s.cfg.Ball.Radius * s.Trail.Scale(i),
			}
		}
	}

	return snap
}

// Backboard geometry relative to the basket, in world units.
const (
	boardHalfW  = 0.5
	boardTop    = 1.4
	boardBottom = 0.8
	boardBorder = 0.025
	targetHalfW = 0.12
	rimHalfW    = 0.2
)

// ViewBounds is the world rectangle frontends should show. It is wider than
// the court so the backboard stays visible when the basket overshoots.
var ViewBounds = core.Bounds{MinX: -2.6, MinY: -1.1, MaxX: 2.6, MaxY: 1.6}

// Backboard returns the board, its border and the target square above the
// rim, all centered on the basket.
func (s Snapshot) Backboard() (board, border, target core.Bounds) {
	bx := s.BasketX
	board = core.Bounds{MinX: bx - boardHalfW, MinY: boardBottom, MaxX: bx + boardHalfW, MaxY: boardTop}
	border = core.Bounds{
		MinX: board.MinX - boardBorder, MinY: board.MinY - boardBorder,
		MaxX: board.MaxX + boardBorder, MaxY: board.MaxY + boardBorder,
	}
	target = core.Bounds{MinX: bx - targetHalfW, MinY: boardBottom, MaxX: bx + targetHalfW, MaxY: s.RimY}
	return board, border, target
}

// Rim returns the rim segment's end x coordinates and its height.
func (s Snapshot) Rim() (x0, x1, y float64) {
	return s.BasketX - rimHalfW, s.BasketX + rimHalfW, s.RimY
}

// NetBounds returns the world rectangle covered by the net.
func (s Snapshot) NetBounds() core.Bounds {
	n := s.Net
	return core.Bounds{MinX: n.X - n.Width/2, MinY: n.Y - n.Height, MaxX: n.X + n.Width/2, MaxY: n.Y}
}

// Project maps a world point into a w x h viewport showing ViewBounds, with
// y growing downward.
func Project(p core.Vec2, w, h float64) (x, y float64) {
	x = (p.X - ViewBounds.MinX) / ViewBounds.Width() * w
	y = (ViewBounds.MaxY - p.Y) / ViewBounds.Height() * h
	return x, y
}
