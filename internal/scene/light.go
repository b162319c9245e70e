package scene

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/wave-spheres/internal/palette"
)

// LightKind selects how a Light contributes to Shade.
type LightKind int

const (
	AmbientLight LightKind = iota
	PointLight
	DirectionalLight
)

// Light is an ambient, point or directional light. Position is the light's
// location for point lights and the direction it shines from for
// directional ones. Range bounds a point light's linear falloff; zero means
// no falloff.
type Light struct {
	Kind      LightKind
	Color     colorful.Color
	Intensity float64
	Position  Vec3
	Range     float64
}

// Material is a Phong-style surface description.
type Material struct {
	Color     colorful.Color
	Emissive  colorful.Color
	Specular  colorful.Color
	Shininess float64
}

// DefaultLights returns the scene rig: dim ambient fill, a point light up and
// to the right, a directional light from the upper left.
func DefaultLights() []Light {
	white := colorful.Color{R: 1, G: 1, B: 1}
	ambient, _ := colorful.Hex("#404040")
	return []Light{
		{Kind: AmbientLight, Color: ambient, Intensity: 1},
		{Kind: PointLight, Color: white, Intensity: 1, Position: V(10, 10, 10), Range: 100},
		{Kind: DirectionalLight, Color: white, Intensity: 1, Position: V(-10, 10, 5)},
	}
}

// Shade returns the Blinn-Phong colour of a surface point with unit normal n
// seen from eye.
func Shade(m Material, lights []Light, p, n, eye Vec3) colorful.Color {
	out := m.Emissive
	view := unit(eye.Sub(p))
	for _, l := range lights {
		lc := palette.Scale(l.Color, l.Intensity)
		if l.Kind == AmbientLight {
			out = palette.Add(out, palette.Mul(m.Color, lc))
			continue
		}

		var dir Vec3
		atten := 1.0
		switch l.Kind {
		case PointLight:
			toLight := l.Position.Sub(p)
			dir = unit(toLight)
			if l.Range > 0 {
				atten = math.Max(0, 1-toLight.Len()/l.Range)
			}
		case DirectionalLight:
			dir = l.Position.Normalize()
		}

		diffuse := math.Max(0, n.Dot(dir)) * atten
		if diffuse == 0 {
			continue
		}
		out = palette.Add(out, palette.Scale(palette.Mul(m.Color, lc), diffuse))

		half := unit(dir.Add(view))
		spec := math.Pow(math.Max(0, n.Dot(half)), math.Max(m.Shininess, 1)) * atten
		out = palette.Add(out, palette.Scale(palette.Mul(m.Specular, lc), spec))
	}
	return out.Clamped()
}
