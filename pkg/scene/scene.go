package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/EstebanZG999/RaytracingGraficas/pkg/core"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/geometry"
)

// CameraPose is the suggested starting pose for a scene.
type CameraPose struct {
	Eye    mgl32.Vec3
	Center mgl32.Vec3
	Up     mgl32.Vec3
}

// waterEntry tracks an animated cube and its rest position. Animated cubes
// live in their own typed list so animation never has to type-inspect the
// primitive collection.
type waterEntry struct {
	cube *geometry.Cube
	base mgl32.Vec3
}

// Scene holds the primitive and light collections consumed by the shading
// engine, plus the water-animation list. The primitive list is read-only
// during a render pass; Animate must only run between passes.
type Scene struct {
	Pose CameraPose

	WaterAmplitude float32
	WaterFrequency float32

	objects []geometry.Primitive
	lights  []core.Light
	water   []waterEntry
}

// New creates an empty scene with default water-animation parameters
func New(pose CameraPose) *Scene {
	return &Scene{
		Pose:           pose,
		WaterAmplitude: 0.5,
		WaterFrequency: 1.0,
	}
}

// Add appends primitives to the scene
func (s *Scene) Add(primitives ...geometry.Primitive) {
	s.objects = append(s.objects, primitives...)
}

// AddWater appends a cube that oscillates vertically during animation
func (s *Scene) AddWater(cube *geometry.Cube) {
	s.objects = append(s.objects, cube)
	s.water = append(s.water, waterEntry{cube: cube, base: cube.Center})
}

// AddLight appends a light to the scene
func (s *Scene) AddLight(lights ...core.Light) {
	s.lights = append(s.lights, lights...)
}

// Primitives returns the primitive list
func (s *Scene) Primitives() []geometry.Primitive {
	return s.objects
}

// Lights returns the light list
func (s *Scene) Lights() []core.Light {
	return s.lights
}

// Animate advances the water animation to the given elapsed time in seconds
// and reports whether any primitive moved.
func (s *Scene) Animate(elapsed float32) bool {
	offset := s.WaterAmplitude * math32.Sin(s.WaterFrequency*elapsed)
	for _, entry := range s.water {
		entry.cube.Center = mgl32.Vec3{entry.base.X(), entry.base.Y() + offset, entry.base.Z()}
	}
	return len(s.water) > 0
}
