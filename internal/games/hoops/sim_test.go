package hoops

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-hoops/internal/config"
)

// straightShotConfig fires the ball straight up under a parked basket, so a
// launch always scores on step 36 and passes through the net on step 30.
func straightShotConfig() config.HoopsConfig {
	cfg := config.DefaultHoopsConfig()
	cfg.Ball.LaunchAngle = math.Pi / 2
	cfg.Ball.LaunchY = -0.875
	cfg.Basket.Speed = 0
	return cfg
}

func TestSimScoresAndCaptures(t *testing.T) {
	store := newMemStore()
	s := NewSim(straightShotConfig(), NewScoreKeeper(ID, store, quietLogger()))

	if !s.Launch(t0) {
		t.Fatal("launch should take effect")
	}

	var captureStep, scoreStep int
	for k := 1; k <= 36; k++ {
		r := s.Step(t0)
		if r.Captured {
			captureStep = k
		}
		if r.Scored {
			scoreStep = k
		}
		if r.Missed {
			t.Fatalf("unexpected miss on step %d", k)
		}
	}

	if captureStep != 30 {
		t.Errorf("net capture on step %d, want 30", captureStep)
	}
	if scoreStep != 36 {
		t.Errorf("basket on step %d, want 36", scoreStep)
	}
	if s.Scores.Score() != 1 {
		t.Errorf("score = %d, want 1", s.Scores.Score())
	}
	if s.Ball.InFlight || s.Ball.Pos != s.Ball.LaunchPoint() {
		t.Error("ball should be back at the launch point")
	}
	if s.Trail.Len() != 0 {
		t.Errorf("trail should clear on the landing step, has %d", s.Trail.Len())
	}
	if !s.Hoop.Captured {
		t.Error("net should still be dropping")
	}
}

func TestSimTrailFollowsFlight(t *testing.T) {
	s := NewSim(config.DefaultHoopsConfig(), NewScoreKeeper(ID, nil, quietLogger()))
	s.Launch(t0)

	for k := 1; k <= 25; k++ {
		s.Step(t0)
		if s.Trail.At(0) != s.Ball.Pos {
			t.Fatalf("step %d: newest trail entry %+v != ball %+v", k, s.Trail.At(0), s.Ball.Pos)
		}
	}
	if s.Trail.Len() != 20 {
		t.Errorf("trail length %d, want 20", s.Trail.Len())
	}
}

func TestSimClockStartsOnFirstLaunch(t *testing.T) {
	s := NewSim(config.DefaultHoopsConfig(), NewScoreKeeper(ID, nil, quietLogger()))

	// Idle for a long time before shooting
	for i := 0; i < 100; i++ {
		s.Step(t0.Add(time.Duration(i) * time.Second))
	}
	if s.GameOver() {
		t.Fatal("match cannot end before the first shot")
	}

	start := t0.Add(100 * time.Second)
	s.Launch(start)
	s.Step(start.Add(59 * time.Second))
	if s.GameOver() {
		t.Fatal("match ended early")
	}

	r := s.Step(start.Add(60 * time.Second))
	if !r.Expired || !s.GameOver() {
		t.Error("match should end 60s after the first shot")
	}
}

func TestSimExpiryFinalizesScore(t *testing.T) {
	store := newMemStore()
	store.scores[ID] = 0
	s := NewSim(straightShotConfig(), NewScoreKeeper(ID, store, quietLogger()))

	now := t0
	for shot := 0; shot < 3; shot++ {
		s.Launch(now)
		for s.Ball.InFlight {
			s.Step(now)
			now = now.Add(100 * time.Millisecond)
		}
	}
	if s.Scores.Score() != 3 {
		t.Fatalf("score = %d, want 3", s.Scores.Score())
	}

	s.Step(t0.Add(61 * time.Second))

	if !s.GameOver() {
		t.Fatal("match should be over")
	}
	if store.scores[ID] != 3 {
		t.Errorf("stored high score = %d, want 3", store.scores[ID])
	}
	if s.Launch(t0.Add(62 * time.Second)) {
		t.Error("launch after game over should be ignored")
	}

	before := s.Ball.Pos
	s.Step(t0.Add(63 * time.Second))
	if s.Ball.Pos != before || s.Ticks() == 0 {
		t.Error("step after game over should do nothing")
	}
}

func TestSimResetKeepsHighScore(t *testing.T) {
	store := newMemStore()
	s := NewSim(straightShotConfig(), NewScoreKeeper(ID, store, quietLogger()))
	s.Launch(t0)
	for s.Ball.InFlight {
		s.Step(t0)
	}
	s.Finish()

	s.Reset()

	if s.Scores.Score() != 0 || s.GameOver() || s.Clock.Started() || s.Ticks() != 0 {
		t.Error("reset should start a fresh match")
	}
	if s.Scores.HighScore() != 1 {
		t.Errorf("high score = %d, want 1", s.Scores.HighScore())
	}
}

func TestSimDefaultConfigMissesFromCenter(t *testing.T) {
	// Basket is at 0.74 by the time the ball reaches the rim, far from the
	// ball's x of about 0.13.
	s := NewSim(config.DefaultHoopsConfig(), NewScoreKeeper(ID, nil, quietLogger()))
	s.Launch(t0)

	missed := false
	for i := 0; i < 100 && !missed; i++ {
		r := s.Step(t0)
		if r.Scored {
			t.Fatalf("unexpected basket on step %d", i+1)
		}
		missed = r.Missed
	}
	if !missed {
		t.Error("shot should leave the court")
	}
}

func TestSimDifficultyTunesBasket(t *testing.T) {
	cfg := config.DefaultHoopsConfig()
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.Progression = config.ProgressionConfig{Type: "score", MaxAt: 4}
	cfg.Difficulty.Scaling = config.ScalingConfig{SpeedMultiplier: 1.5, ToleranceShrink: 0.5}
	s := NewSim(cfg, NewScoreKeeper(ID, nil, quietLogger()))

	s.Step(t0)
	if math.Abs(s.Hoop.Speed-0.02) > 1e-12 || math.Abs(s.Ball.Tolerance()-0.1) > 1e-12 {
		t.Errorf("at score 0: speed %v tolerance %v, want 0.02 / 0.1", s.Hoop.Speed, s.Ball.Tolerance())
	}

	s.Scores.RecordScore(4)
	s.Step(t0)
	if math.Abs(s.Hoop.Speed-0.05) > 1e-12 {
		t.Errorf("at max level: speed %v, want 0.05", s.Hoop.Speed)
	}
	if math.Abs(s.Ball.Tolerance()-0.05) > 1e-12 {
		t.Errorf("at max level: tolerance %v, want 0.05", s.Ball.Tolerance())
	}
}
