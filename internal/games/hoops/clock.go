package hoops

import "time"

// MatchClock times a session from its first shot.
// It starts once, on the first launch, and later launches do not restart it.
type MatchClock struct {
	duration time.Duration
	started  bool
	start    time.Time

	paused   bool
	pausedAt time.Time
}

// NewMatchClock creates a clock for a session of the given length.
func NewMatchClock(duration time.Duration) *MatchClock {
	return &MatchClock{duration: duration}
}

// OnShotLaunched starts the clock at now if it has not started yet.
func (c *MatchClock) OnShotLaunched(now time.Time) {
	if c.started {
		return
	}
	c.started = true
	c.start = now
}

// Started reports whether the first shot has been taken.
func (c *MatchClock) Started() bool {
	return c.started
}

// Elapsed returns the running time since the first shot, excluding pauses.
func (c *MatchClock) Elapsed(now time.Time) time.Duration {
	if !c.started {
		return 0
	}
	if c.paused {
		now = c.pausedAt
	}
	return now.Sub(c.start)
}

// IsExpired reports whether the full duration has run since the first shot.
func (c *MatchClock) IsExpired(now time.Time) bool {
	return c.started && c.Elapsed(now) >= c.duration
}

// Remaining returns the time left, or the whole duration before the first shot.
func (c *MatchClock) Remaining(now time.Time) time.Duration {
	left := c.duration - c.Elapsed(now)
	if left < 0 {
		return 0
	}
	return left
}

// Pause stops the clock at now. Time spent paused is not counted.
func (c *MatchClock) Pause(now time.Time) {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = now
}

// Resume restarts a paused clock.
func (c *MatchClock) Resume(now time.Time) {
	if !c.paused {
		return
	}
	c.paused = false
	if c.started {
		c.start = c.start.Add(now.Sub(c.pausedAt))
	}
}
