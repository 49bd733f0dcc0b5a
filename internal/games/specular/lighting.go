// Package specular implements a Phong lighting demo: a flat quad lit by a
// point light, shown side by side at several light intensities.
package specular

import (
	"math"

	"github.com/vovakirdan/tui-hoops/internal/config"
)

// Vec3 is a 3D vector or an RGB color in [0, 1].
type Vec3 struct {
	X, Y, Z float64
}

// V3 converts a config triple.
func V3(a [3]float64) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Mul multiplies component-wise.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Len returns the Euclidean length.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The zero vector is returned as is.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Reflect reflects the incident vector v about the unit normal n.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * n.Dot(v)))
}

// Luminance returns the perceived brightness of an RGB color.
func (v Vec3) Luminance() float64 {
	return 0.2126*v.X + 0.7152*v.Y + 0.0722*v.Z
}

// Clamp limits every channel to [0, 1].
func (v Vec3) Clamp() Vec3 {
	c := func(f float64) float64 { return math.Max(0, math.Min(1, f)) }
	return Vec3{c(v.X), c(v.Y), c(v.Z)}
}

// Light is a point light.
type Light struct {
	Position  Vec3
	Color     Vec3
	Intensity float64
}

// Material describes how a surface reflects light.
type Material struct {
	Color     Vec3
	Ambient   float64
	Shininess float64
}

// Scene is everything needed to shade a fragment.
type Scene struct {
	Light    Light
	Material Material
	View     Vec3
}

// NewScene builds a scene from config at the lowest intensity.
func NewScene(cfg config.SpecularConfig) Scene {
	return Scene{
		Light: Light{
			Position:  V3(cfg.Light.Position),
			Color:     V3(cfg.Light.Color),
			Intensity: cfg.Light.MinLevel,
		},
		Material: Material{
			Color:     V3(cfg.Material.Color),
			Ambient:   cfg.Material.Ambient,
			Shininess: cfg.Material.Shininess,
		},
		View: V3(cfg.View.Position),
	}
}

// Shade returns the unclamped Phong color of the fragment at fragPos with
// surface normal normal, seen from viewPos:
// (ambient + diffuse + specular) * material color, each term scaled by the
// light color and intensity.
func (s Scene) Shade(fragPos, normal, viewPos Vec3) Vec3 {
	light := s.Light.Color.Scale(s.Light.Intensity)

	ambient := light.Scale(s.Material.Ambient)

	norm := normal.Normalize()
	lightDir := s.Light.Position.Sub(fragPos).Normalize()
	diffuse := light.Scale(math.Max(norm.Dot(lightDir), 0))

	viewDir := viewPos.Sub(fragPos).Normalize()
	reflectDir := lightDir.Scale(-1).Reflect(norm)
	spec := math.Pow(math.Max(viewDir.Dot(reflectDir), 0), s.Material.Shininess)
	specular := light.Scale(spec)

	return ambient.Add(diffuse).Add(specular).Mul(s.Material.Color)
}

// IntensityLevels lists the selectable intensities from min to max in step
// increments, inclusive.
func IntensityLevels(min, max, step float64) []float64 {
	if step <= 0 || max < min {
		return []float64{min}
	}
	n := int(math.Floor((max-min)/step+1e-9)) + 1
	levels := make([]float64, n)
	for i := range levels {
		levels[i] = min + float64(i)*step
	}
	return levels
}

// nearestLevel returns the index of the level closest to v, or -1 if v lies
// outside [levels[0], levels[len-1]].
func nearestLevel(levels []float64, v float64) int {
	const eps = 1e-9
	if len(levels) == 0 || v < levels[0]-eps || v > levels[len(levels)-1]+eps {
		return -1
	}
	best := 0
	for i, l := range levels {
		if math.Abs(l-v) < math.Abs(levels[best]-v) {
			best = i
		}
	}
	return best
}
