package hoops

import (
	"math"

	"github.com/vovakirdan/tui-hoops/internal/config"
	"github.com/vovakirdan/tui-hoops/internal/core"
)

// Net is the capture region under the rim. Y is the top edge; the region
// spans [X-Width/2, X+Width/2] x [Y-Height, Y].
type Net struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether p is inside the net, edges included.
func (n Net) Contains(p core.Vec2) bool {
	return p.X >= n.X-n.Width/2 && p.X <= n.X+n.Width/2 &&
		p.Y <= n.Y && p.Y >= n.Y-n.Height
}

// Hoop is the basket sliding left and right along the top of the court,
// plus the net that drops away after a capture.
type Hoop struct {
	X     float64
	Speed float64

	Net      Net
	Captured bool

	limit     float64
	restY     float64
	fallSpeed float64
	floor     float64
}

// NewHoop creates a hoop at x=0 moving right at the configured speed.
func NewHoop(basket config.HoopsBasket, net config.HoopsNet) *Hoop {
	return &Hoop{
		X:     0,
		Speed: basket.Speed,
		Net: Net{
			X:      net.X,
			Y:      net.Y,
			Width:  net.Width,
			Height: net.Height,
		},
		limit:     basket.Limit,
		restY:     net.Y,
		fallSpeed: net.FallSpeed,
		floor:     net.Floor,
	}
}

// Advance slides the basket one tick. The direction flips after the move
// that reaches the limit, so X may overshoot it by at most one step.
func (h *Hoop) Advance() {
	h.X += h.Speed
	if h.X >= h.limit || h.X <= -h.limit {
		h.Speed = -h.Speed
	}
}

// SetSpeed changes how fast the basket moves without changing its direction.
func (h *Hoop) SetSpeed(magnitude float64) {
	h.Speed = math.Copysign(math.Abs(magnitude), h.Speed)
}

// AnimateNet drops a captured net one tick. Once it falls below the floor it
// returns to its resting height and the capture ends.
func (h *Hoop) AnimateNet() {
	if !h.Captured {
		return
	}
	h.Net.Y -= h.fallSpeed
	if h.Net.Y < h.floor {
		h.Net.Y = h.restY
		h.Captured = false
	}
}

// CheckNetEntry marks the net captured if ball is inside it.
// It reports whether this call started a new capture.
func (h *Hoop) CheckNetEntry(ball core.Vec2) bool {
	if !h.Net.Contains(ball) {
		return false
	}
	started := !h.Captured
	h.Captured = true
	return started
}
