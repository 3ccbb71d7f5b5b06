package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/EstebanZG999/RaytracingGraficas/pkg/core"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/material"
)

func testMaterial() material.Material {
	return material.Flat(core.NewColor(200, 200, 200), 10.0, [4]float32{0.9, 0.1, 0, 0}, 1.0)
}

func TestSphere_Intersect_FrontHit(t *testing.T) {
	sphere := NewSphere(mgl32.Vec3{0, 0, 0}, 1.0, testMaterial())
	ray := core.NewRay(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, -1})

	hit, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if math32.Abs(hit.Distance-4.0) > 1e-5 {
		t.Errorf("Expected distance 4, got %f", hit.Distance)
	}
	expectedNormal := mgl32.Vec3{0, 0, 1}
	if !vecNear(hit.Normal, expectedNormal, 1e-5) {
		t.Errorf("Expected normal %v, got %v", expectedNormal, hit.Normal)
	}
	if !vecNear(hit.Point, mgl32.Vec3{0, 0, 1}, 1e-5) {
		t.Errorf("Expected point (0 0 1), got %v", hit.Point)
	}
}

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(mgl32.Vec3{0, 0, 0}, 1.0, testMaterial())

	tests := []struct {
		name      string
		origin    mgl32.Vec3
		direction mgl32.Vec3
	}{
		{"parallel offset ray", mgl32.Vec3{2, 0, 5}, mgl32.Vec3{0, 0, -1}},
		{"tangent ray", mgl32.Vec3{1, 0, 5}, mgl32.Vec3{0, 0, -1}},
		{"sphere behind origin", mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hit, ok := sphere.Intersect(core.NewRay(tt.origin, tt.direction)); ok {
				t.Errorf("Expected miss, got hit at distance %f", hit.Distance)
			}
		})
	}
}

func TestSphere_Intersect_SmallerRoot(t *testing.T) {
	// A ray through the center crosses the surface twice; the near
	// crossing must win.
	sphere := NewSphere(mgl32.Vec3{0, 0, -10}, 2.0, testMaterial())
	ray := core.NewRay(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1})

	hit, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if math32.Abs(hit.Distance-8.0) > 1e-5 {
		t.Errorf("Expected distance 8, got %f", hit.Distance)
	}
}

func TestSphere_Intersect_UV(t *testing.T) {
	sphere := NewSphere(mgl32.Vec3{0, 0, 0}, 1.0, testMaterial())

	tests := []struct {
		name      string
		origin    mgl32.Vec3
		direction mgl32.Vec3
		expectedU float32
		expectedV float32
	}{
		// Normal (1,0,0): theta=0, phi=0
		{"+X equator", mgl32.Vec3{5, 0, 0}, mgl32.Vec3{-1, 0, 0}, 0.5, 0.5},
		// Normal (0,0,1): theta=pi/2
		{"+Z equator", mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, -1}, 0.75, 0.5},
		// Normal (0,1,0): phi=pi/2, pole
		{"north pole", mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, -1, 0}, 0.5, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := sphere.Intersect(core.NewRay(tt.origin, tt.direction))
			if !ok {
				t.Fatal("Expected hit, got miss")
			}
			if math32.Abs(hit.U-tt.expectedU) > 1e-3 {
				t.Errorf("Expected u=%f, got u=%f", tt.expectedU, hit.U)
			}
			if math32.Abs(hit.V-tt.expectedV) > 1e-3 {
				t.Errorf("Expected v=%f, got v=%f", tt.expectedV, hit.V)
			}
		})
	}
}

func vecNear(a, b mgl32.Vec3, tolerance float32) bool {
	return a.Sub(b).Len() <= tolerance
}
