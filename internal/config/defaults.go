package config

import (
	_ "embed"
)

//go:embed defaults/hoops.yaml
var defaultHoopsYAML []byte

//go:embed defaults/specular.yaml
var defaultSpecularYAML []byte

// DefaultHoopsConfig returns the default basketball toss configuration.
// It mirrors defaults/hoops.yaml and is used if the embedded file fails to parse.
func DefaultHoopsConfig() HoopsConfig {
	return HoopsConfig{
		Ball: HoopsBall{
			Speed:       0.05,
			LaunchAngle: 1.5,
			LaunchX:     0.0,
			LaunchY:     -0.9,
			Radius:      0.05,
		},
		Court: HoopsCourt{
			Bound: 2.0,
		},
		Basket: HoopsBasket{
			Speed:     0.02,
			Limit:     2.0,
			RimY:      1.0,
			Tolerance: 0.1,
		},
		Net: HoopsNet{
			X:         0.0,
			Y:         0.8,
			Width:     0.2,
			Height:    0.2,
			FallSpeed: 0.01,
			Floor:     -1.0,
		},
		Trail: HoopsTrail{
			Length:       20,
			FadeExponent: 5,
		},
		Match: HoopsMatch{
			DurationSeconds: 60,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
				ToleranceShrink: 0.4,
			},
		},
	}
}

// DefaultSpecularConfig returns the default lighting demo configuration.
func DefaultSpecularConfig() SpecularConfig {
	return SpecularConfig{
		Light: SpecularLight{
			Position: [3]float64{1.2, 1.0, 2.0},
			Color:    [3]float64{1.0, 1.0, 1.0},
			MinLevel: 1.0,
			MaxLevel: 3.0,
			Step:     0.25,
		},
		Material: SpecularMaterial{
			Color:     [3]float64{1.0, 0.5, 0.31},
			Ambient:   0.2,
			Shininess: 32,
		},
		View: SpecularView{
			Position: [3]float64{0.0, 0.0, 3.0},
		},
		Panes: 8,
	}
}
