// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// HoopsConfig contains all configuration for the basketball toss game.
// Coordinates are world units: the court spans [-Bound, Bound] on both axes.
type HoopsConfig struct {
	Ball       HoopsBall        `yaml:"ball"`
	Court      HoopsCourt       `yaml:"court"`
	Basket     HoopsBasket      `yaml:"basket"`
	Net        HoopsNet         `yaml:"net"`
	Trail      HoopsTrail       `yaml:"trail"`
	Match      HoopsMatch       `yaml:"match"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// HoopsBall defines the projectile.
type HoopsBall struct {
	Speed       float64 `yaml:"speed"`        // World units per tick
	LaunchAngle float64 `yaml:"launch_angle"` // Radians from +x
	LaunchX     float64 `yaml:"launch_x"`
	LaunchY     float64 `yaml:"launch_y"`
	Radius      float64 `yaml:"radius"` // Render only
}

// HoopsCourt defines the play area. A ball outside it is a miss.
type HoopsCourt struct {
	Bound float64 `yaml:"bound"`
}

// HoopsBasket defines the moving hoop and the scoring window around the rim.
type HoopsBasket struct {
	Speed     float64 `yaml:"speed"`     // World units per tick
	Limit     float64 `yaml:"limit"`     // Direction flips at +/-Limit
	RimY      float64 `yaml:"rim_y"`     // Height of the rim
	Tolerance float64 `yaml:"tolerance"` // Max |dx| and |dy| that counts as a basket
}

// HoopsNet defines the falling-net capture region.
type HoopsNet struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"` // Top edge; the region extends Height below it
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	FallSpeed float64 `yaml:"fall_speed"` // Drop per tick while captured
	Floor     float64 `yaml:"floor"`      // Net resets once it falls below this
}

// HoopsTrail defines the ball's motion trail.
type HoopsTrail struct {
	Length       int     `yaml:"length"`
	FadeExponent float64 `yaml:"fade_exponent"`
}

// HoopsMatch defines the session timer.
type HoopsMatch struct {
	DurationSeconds int `yaml:"duration_seconds"`
}

// Validate reports the first setting that would make the game unplayable.
func (c HoopsConfig) Validate() error {
	switch {
	case c.Ball.Speed <= 0:
		return errors.New("config: ball.speed must be positive")
	case c.Court.Bound <= 0:
		return errors.New("config: court.bound must be positive")
	case c.Basket.Limit <= 0:
		return errors.New("config: basket.limit must be positive")
	case c.Basket.Tolerance <= 0:
		return errors.New("config: basket.tolerance must be positive")
	case c.Net.Width < 0 || c.Net.Height < 0:
		return errors.New("config: net dimensions must not be negative")
	case c.Trail.Length < 0:
		return fmt.Errorf("config: trail.length %d must not be negative", c.Trail.Length)
	case c.Match.DurationSeconds <= 0:
		return errors.New("config: match.duration_seconds must be positive")
	case c.Difficulty.Scaling.ToleranceShrink < 0 || c.Difficulty.Scaling.ToleranceShrink > 1:
		return errors.New("config: difficulty.scaling.tolerance_shrink must be within [0, 1]")
	}
	return nil
}

// SpecularConfig contains all configuration for the specular lighting demo.
type SpecularConfig struct {
	Light    SpecularLight    `yaml:"light"`
	Material SpecularMaterial `yaml:"material"`
	View     SpecularView     `yaml:"view"`
	Panes    int              `yaml:"panes"` // Side-by-side views, one per level
}

// SpecularLight defines the point light and its selectable intensities.
type SpecularLight struct {
	Position [3]float64 `yaml:"position"`
	Color    [3]float64 `yaml:"color"`
	MinLevel float64    `yaml:"min_level"`
	MaxLevel float64    `yaml:"max_level"`
	Step     float64    `yaml:"step"`
}

// SpecularMaterial defines the lit surface.
type SpecularMaterial struct {
	Color     [3]float64 `yaml:"color"`
	Ambient   float64    `yaml:"ambient"`
	Shininess float64    `yaml:"shininess"`
}

// SpecularView defines the camera.
type SpecularView struct {
	Position [3]float64 `yaml:"position"`
}

// Validate reports settings that would leave no selectable level.
func (c SpecularConfig) Validate() error {
	switch {
	case c.Light.Step <= 0:
		return errors.New("config: light.step must be positive")
	case c.Light.MaxLevel < c.Light.MinLevel:
		return errors.New("config: light.max_level must not be below light.min_level")
	case c.Panes < 1:
		return errors.New("config: panes must be at least 1")
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to basket speed at max difficulty
	ToleranceShrink float64 `yaml:"tolerance_shrink"` // Fraction the scoring window narrows at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name from the command line.
// The empty string is accepted and leaves the config untouched.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
