package config

import "math"

// minToleranceFactor is the narrowest the scoring window may get, as a
// fraction of the configured tolerance.
const minToleranceFactor = 0.25

// BasketTuning is the basket's behavior at one difficulty level.
type BasketTuning struct {
	Speed     float64 // Magnitude; the hoop keeps its own direction
	Tolerance float64 // Scoring window half-size
}

// DifficultyManager ramps the basket up over a match: it slides faster and
// the scoring window narrows as the score (or tick count) grows.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a manager for one match.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = clampF(cfg.InitialLevel, 0, 1)
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty in [0, 1]. It starts at the initial level and
// reaches 1 at Progression.MaxAt baskets (or ticks).
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.cfg.InitialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.cfg.InitialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.cfg.InitialLevel + progress*(1.0-d.cfg.InitialLevel)
}

// Tune returns the basket's speed and scoring window for the current match
// state. At level 0 both equal the configured values.
func (d *DifficultyManager) Tune(basket HoopsBasket, score int, ticks int) BasketTuning {
	level := d.Level(score, ticks)
	shrink := clampF(level*d.cfg.Scaling.ToleranceShrink, 0, 1-minToleranceFactor)
	return BasketTuning{
		Speed:     math.Abs(basket.Speed) * (1.0 + level*d.cfg.Scaling.SpeedMultiplier),
		Tolerance: basket.Tolerance * (1 - shrink),
	}
}

// hoopsPreset is what a --difficulty preset changes.
type hoopsPreset struct {
	initialLevel float64
	tolerance    float64 // 0 keeps the configured window
}

var hoopsPresets = map[DifficultyPreset]hoopsPreset{
	DifficultyEasy:   {initialLevel: 0.0, tolerance: 0.15},
	DifficultyNormal: {initialLevel: 0.3},
	DifficultyHard:   {initialLevel: 0.7, tolerance: 0.08},
}

// ApplyHoopsPreset modifies the config based on a difficulty preset.
// The empty preset leaves cfg as loaded; fixed turns progression off.
func ApplyHoopsPreset(cfg *HoopsConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	p, ok := hoopsPresets[preset]
	if !ok {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = p.initialLevel
	if p.tolerance > 0 {
		cfg.Basket.Tolerance = p.tolerance
	}
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
