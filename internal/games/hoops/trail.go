package hoops

import (
	"math"

	"github.com/vovakirdan/tui-hoops/internal/core"
)

// Trail is the bounded history of recent ball positions, newest first.
// It only holds positions while the ball is in flight.
type Trail struct {
	points  []core.Vec2
	max     int
	fadeExp float64
}

// NewTrail creates an empty trail holding at most maxLen positions.
func NewTrail(maxLen int, fadeExp float64) *Trail {
	if maxLen < 0 {
		maxLen = 0
	}
	return &Trail{
		points:  make([]core.Vec2, 0, maxLen+1),
		max:     maxLen,
		fadeExp: fadeExp,
	}
}

// OnStep records pos while in flight and empties the trail otherwise.
func (t *Trail) OnStep(pos core.Vec2, inFlight bool) {
	if !inFlight {
		t.Clear()
		return
	}
	if t.max == 0 {
		return
	}

	// Prepend, then drop the oldest entry past the limit
	t.points = append(t.points, core.Vec2{})
	copy(t.points[1:], t.points)
	t.points[0] = pos
	if len(t.points) > t.max {
		t.points = t.points[:t.max]
	}
}

// Clear empties the trail.
func (t *Trail) Clear() {
	t.points = t.points[:0]
}

// Len returns the number of stored positions.
func (t *Trail) Len() int {
	return len(t.points)
}

// Cap returns the maximum number of stored positions.
func (t *Trail) Cap() int {
	return t.max
}

// At returns the i-th newest position.
func (t *Trail) At(i int) core.Vec2 {
	return t.points[i]
}

// Points returns a copy of the stored positions, newest first.
func (t *Trail) Points() []core.Vec2 {
	out := make([]core.Vec2, len(t.points))
	copy(out, t.points)
	return out
}

// Weight is the render opacity of entry i: 1 - (i/len)^fadeExp.
// It stays near 1 for most of the trail and drops off at the tail.
func (t *Trail) Weight(i int) float64 {
	n := len(t.points)
	if n == 0 || i < 0 || i >= n {
		return 0
	}
	return 1 - math.Pow(float64(i)/float64(n), t.fadeExp)
}

// Scale is the render size factor of entry i: 1 - i/len.
func (t *Trail) Scale(i int) float64 {
	n := len(t.points)
	if n == 0 || i < 0 || i >= n {
		return 0
	}
	return 1 - float64(i)/float64(n)
}
