// Package hoops implements a basketball toss game: the player launches a ball
// at a basket sliding across the top of the court and scores as many baskets
// as possible in a timed match.
//
// The simulation (Sim) is pure state plus arithmetic. Wall-clock time is passed
// in on every call so tests can run a full match without sleeping.
package hoops

import (
	"time"

	"github.com/vovakirdan/tui-hoops/internal/config"
)

// StepReport describes what happened during one Sim.Step.
type StepReport struct {
	Scored   bool // The shot went in
	Missed   bool // The shot left the court
	Captured bool // The ball entered the net and started the net drop
	Expired  bool // The match clock ran out on this step
}

// Sim is the complete simulation context of one match.
type Sim struct {
	Ball   *Projectile
	Trail  *Trail
	Hoop   *Hoop
	Clock  *MatchClock
	Scores *ScoreKeeper

	cfg        config.HoopsConfig
	difficulty *config.DifficultyManager
	ticks      int
	over       bool
}

// NewSim creates a match in its initial state. The keeper carries the high
// score across matches.
func NewSim(cfg config.HoopsConfig, scores *ScoreKeeper) *Sim {
	s := &Sim{
		cfg:    cfg,
		Scores: scores,
	}
	s.build()
	return s
}

func (s *Sim) build() {
	s.Ball = NewProjectile(s.cfg.Ball, s.cfg.Court, s.cfg.Basket)
	s.Trail = NewTrail(s.cfg.Trail.Length, s.cfg.Trail.FadeExponent)
	s.Hoop = NewHoop(s.cfg.Basket, s.cfg.Net)
	s.Clock = NewMatchClock(time.Duration(s.cfg.Match.DurationSeconds) * time.Second)
	s.difficulty = config.NewDifficultyManager(s.cfg.Difficulty)
	s.ticks = 0
	s.over = false
}

// Reset starts a new match. The previous match should be finalized first.
func (s *Sim) Reset() {
	s.build()
	s.Scores.NewSession()
}

// Config returns the configuration the match was built from.
func (s *Sim) Config() config.HoopsConfig {
	return s.cfg
}

// Ticks returns the number of steps taken this match.
func (s *Sim) Ticks() int {
	return s.ticks
}

// GameOver reports whether the match clock has expired.
func (s *Sim) GameOver() bool {
	return s.over
}

// Launch shoots the ball. It is ignored while a shot is in flight or after the
// match has ended. The first launch of a match starts the clock.
func (s *Sim) Launch(now time.Time) bool {
	if s.over {
		return false
	}
	if !s.Ball.Launch() {
		return false
	}
	s.Clock.OnShotLaunched(now)
	return true
}

// Step advances the match by one frame. After the match is over it does nothing.
func (s *Sim) Step(now time.Time) StepReport {
	var report StepReport
	if s.over {
		return report
	}
	s.ticks++

	if s.difficulty.IsEnabled() {
		tune := s.difficulty.Tune(s.cfg.Basket, s.Scores.Score(), s.ticks)
		s.Hoop.SetSpeed(tune.Speed)
		s.Ball.SetTolerance(tune.Tolerance)
	}
	s.Hoop.Advance()

	if s.Ball.InFlight {
		if s.Ball.Advance(s.Hoop.X) {
			s.Scores.RecordScore(1)
			report.Scored = true
		} else if !s.Ball.InFlight {
			report.Missed = true
		}
	}

	s.Trail.OnStep(s.Ball.Pos, s.Ball.InFlight)
	s.Hoop.AnimateNet()

	if s.Clock.IsExpired(now) {
		s.over = true
		report.Expired = true
		s.Scores.Finalize()
		return report
	}

	if s.Ball.InFlight {
		report.Captured = s.Hoop.CheckNetEntry(s.Ball.Pos)
	}

	return report
}

// Finish ends the match early, e.g. when the player quits.
// It finalizes the score once; later calls do nothing.
func (s *Sim) Finish() {
	s.over = true
	s.Scores.Finalize()
}

// Pause freezes the match clock.
func (s *Sim) Pause(now time.Time) {
	s.Clock.Pause(now)
}

// Resume restarts the match clock after Pause.
func (s *Sim) Resume(now time.Time) {
	s.Clock.Resume(now)
}
