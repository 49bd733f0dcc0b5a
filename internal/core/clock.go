package core

import "time"

// Clock supplies wall-clock time to the simulation.
// Games never call time.Now directly so tests can drive elapsed time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock that only moves when told to.
// It is used by tests and by replay tooling.
type ManualClock struct {
	t time.Time
}

// NewManualClock creates a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{t: start}
}

// Now returns the current frozen instant.
func (c *ManualClock) Now() time.Time {
	return c.t
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}
