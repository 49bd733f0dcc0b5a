package hoops

import (
	"math"

	"github.com/vovakirdan/tui-hoops/internal/config"
	"github.com/vovakirdan/tui-hoops/internal/core"
)

// Projectile is the ball. It travels in a straight line at a fixed speed and
// angle once launched, and snaps back to the launch point when the shot ends.
type Projectile struct {
	Pos      core.Vec2
	InFlight bool

	launch    core.Vec2
	velocity  core.Vec2
	court     core.Bounds
	rimY      float64
	tolerance float64
}

// NewProjectile creates a ball resting at the launch point.
func NewProjectile(ball config.HoopsBall, court config.HoopsCourt, basket config.HoopsBasket) *Projectile {
	launch := core.Vec2{X: ball.LaunchX, Y: ball.LaunchY}
	return &Projectile{
		Pos:       launch,
		launch:    launch,
		velocity:  core.FromAngle(ball.Speed, ball.LaunchAngle),
		court:     core.Bounds{MinX: -court.Bound, MinY: -court.Bound, MaxX: court.Bound, MaxY: court.Bound},
		rimY:      basket.RimY,
		tolerance: basket.Tolerance,
	}
}

// SetTolerance changes the scoring window half-size.
func (p *Projectile) SetTolerance(t float64) {
	p.tolerance = t
}

// Tolerance returns the scoring window half-size.
func (p *Projectile) Tolerance() float64 {
	return p.tolerance
}

// LaunchPoint returns where the ball rests between shots.
func (p *Projectile) LaunchPoint() core.Vec2 {
	return p.launch
}

// Launch puts the ball in flight. It returns false, and changes nothing, if a
// shot is already in flight.
func (p *Projectile) Launch() bool {
	if p.InFlight {
		return false
	}
	p.InFlight = true
	return true
}

// Advance moves an in-flight ball one tick and resolves the shot.
// The basket check runs before the bounds check, so a position that satisfies
// both counts as a basket. It reports whether the shot scored.
func (p *Projectile) Advance(basketX float64) (scored bool) {
	if !p.InFlight {
		return false
	}

	p.Pos = p.Pos.Add(p.velocity)

	if p.inBasket(basketX) {
		p.rest()
		return true
	}

	if !p.court.Contains(p.Pos) {
		p.rest()
	}
	return false
}

func (p *Projectile) inBasket(basketX float64) bool {
	return math.Abs(p.Pos.X-basketX) < p.tolerance && math.Abs(p.Pos.Y-p.rimY) < p.tolerance
}

// rest ends the shot and returns the ball to the launch point.
func (p *Projectile) rest() {
	p.InFlight = false
	p.Pos = p.launch
}
