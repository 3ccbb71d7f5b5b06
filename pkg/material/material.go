package material

import (
	"github.com/EstebanZG999/RaytracingGraficas/pkg/core"
)

// Albedo component indices
const (
	DiffuseK = iota
	SpecularK
	ReflectK
	RefractK
)

// Material describes how a surface responds to light. Albedo holds the
// diffuse, specular, reflection and refraction weights; the weights are not
// required to sum to 1, but New guarantees ReflectK+RefractK <= 1 so the
// local-light blend weight stays non-negative.
type Material struct {
	Diffuse         core.Color
	SpecularExp     float32
	Albedo          [4]float32
	RefractiveIndex float32
	Texture         *Texture
}

// New creates a material, scaling the reflection and refraction weights
// down proportionally if their sum exceeds 1.
func New(diffuse core.Color, specularExp float32, albedo [4]float32, refractiveIndex float32, texture *Texture) Material {
	if sum := albedo[ReflectK] + albedo[RefractK]; sum > 1.0 {
		albedo[ReflectK] /= sum
		albedo[RefractK] /= sum
	}
	return Material{
		Diffuse:         diffuse,
		SpecularExp:     specularExp,
		Albedo:          albedo,
		RefractiveIndex: refractiveIndex,
		Texture:         texture,
	}
}

// Flat creates a textureless material with the given diffuse color
func Flat(diffuse core.Color, specularExp float32, albedo [4]float32, refractiveIndex float32) Material {
	return New(diffuse, specularExp, albedo, refractiveIndex, nil)
}

// Black returns the inert material carried by non-hits: black diffuse,
// zero albedo, refractive index 1.
func Black() Material {
	return Material{
		Diffuse:         core.NewColor(0, 0, 0),
		RefractiveIndex: 1.0,
	}
}

// DiffuseAt returns the diffuse color at surface coordinates (u, v),
// sampling the texture when one is present.
func (m *Material) DiffuseAt(u, v float32) core.Color {
	if m.Texture != nil {
		return m.Texture.Sample(u, v)
	}
	return m.Diffuse
}
