package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Light is a point light source. Lights with intensity at or below the
// configured ambient threshold contribute a flat ambient term with no
// shadowing or specular highlight; their position is ignored.
type Light struct {
	Position  mgl32.Vec3
	Color     Color
	Intensity float32
}

// NewLight creates a new light
func NewLight(position mgl32.Vec3, color Color, intensity float32) Light {
	return Light{Position: position, Color: color, Intensity: intensity}
}

// IsAmbient reports whether the light is treated as ambient under the
// given intensity threshold.
func (l Light) IsAmbient(threshold float32) bool {
	return l.Intensity <= threshold
}
