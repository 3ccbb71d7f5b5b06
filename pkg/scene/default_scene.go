package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/EstebanZG999/RaytracingGraficas/pkg/core"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/geometry"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/material"
)

// NewDefaultScene builds a small demo scene: a matte sphere, a mirror
// sphere and a glass cube over a checkered-ish cube floor. It exercises
// every material path (diffuse, specular, reflection, refraction).
func NewDefaultScene() *Scene {
	s := New(CameraPose{
		Eye:    mgl32.Vec3{0, 4, 12},
		Center: mgl32.Vec3{0, 1, 0},
		Up:     mgl32.Vec3{0, 1, 0},
	})

	s.AddLight(
		core.NewLight(mgl32.Vec3{0, 0, 0}, core.NewColor(255, 255, 255), 0.2),
		core.NewLight(mgl32.Vec3{-6, 10, 6}, core.NewColor(255, 255, 255), 1.4),
	)

	matte := material.Flat(core.NewColor(200, 70, 70), 30, [4]float32{0.8, 0.2, 0, 0}, 1.0)
	mirror := material.Flat(core.NewColor(240, 240, 240), 125, [4]float32{0.1, 0.9, 0.8, 0}, 1.0)
	glass := material.Flat(core.NewColor(220, 235, 245), 125, [4]float32{0.1, 0.5, 0.1, 0.8}, 1.5)
	floorA := material.Flat(core.NewColor(180, 180, 180), 10, [4]float32{0.9, 0.1, 0, 0}, 1.0)
	floorB := material.Flat(core.NewColor(90, 90, 90), 10, [4]float32{0.9, 0.1, 0, 0}, 1.0)

	s.Add(
		geometry.NewSphere(mgl32.Vec3{-2.5, 1, 0}, 1.0, matte),
		geometry.NewSphere(mgl32.Vec3{2.5, 1.2, -1}, 1.2, mirror),
		geometry.NewCube(mgl32.Vec3{0, 1, 2}, 2.0, [6]material.Material{
			glass, glass, glass, glass, glass, glass,
		}),
	)

	// Floor: alternating tiles on a 2-unit grid
	for x := -4; x <= 4; x++ {
		for z := -4; z <= 4; z++ {
			mat := floorA
			if (x+z)%2 != 0 {
				mat = floorB
			}
			s.Add(geometry.NewUniformCube(mgl32.Vec3{float32(x * 2), -1, float32(z * 2)}, 2.0, mat))
		}
	}

	return s
}
