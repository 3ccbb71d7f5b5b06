package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/EstebanZG999/RaytracingGraficas/pkg/core"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/material"
)

// faceMaterials returns six materials whose red channel encodes the face
// index, so tests can tell which face a hit was assigned to.
func faceMaterials() [6]material.Material {
	var mats [6]material.Material
	for i := range mats {
		mats[i] = material.Flat(core.NewColor(uint8(i), 0, 0), 10.0, [4]float32{0.9, 0.1, 0, 0}, 1.0)
	}
	return mats
}

func TestCube_Intersect_Faces(t *testing.T) {
	cube := NewCube(mgl32.Vec3{0, 0, 0}, 2.0, faceMaterials())

	tests := []struct {
		name           string
		origin         mgl32.Vec3
		direction      mgl32.Vec3
		expectedFace   int
		expectedNormal mgl32.Vec3
	}{
		{"right face", mgl32.Vec3{5, 0, 0}, mgl32.Vec3{-1, 0, 0}, FaceRight, mgl32.Vec3{1, 0, 0}},
		{"left face", mgl32.Vec3{-5, 0, 0}, mgl32.Vec3{1, 0, 0}, FaceLeft, mgl32.Vec3{-1, 0, 0}},
		{"top face", mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, -1, 0}, FaceTop, mgl32.Vec3{0, 1, 0}},
		{"bottom face", mgl32.Vec3{0, -5, 0}, mgl32.Vec3{0, 1, 0}, FaceBottom, mgl32.Vec3{0, -1, 0}},
		{"front face", mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, -1}, FaceFront, mgl32.Vec3{0, 0, 1}},
		{"back face", mgl32.Vec3{0, 0, -5}, mgl32.Vec3{0, 0, 1}, FaceBack, mgl32.Vec3{0, 0, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := cube.Intersect(core.NewRay(tt.origin, tt.direction))
			if !ok {
				t.Fatal("Expected hit, got miss")
			}
			if math32.Abs(hit.Distance-4.0) > 1e-5 {
				t.Errorf("Expected distance 4, got %f", hit.Distance)
			}
			if got := int(hit.Material.Diffuse.R); got != tt.expectedFace {
				t.Errorf("Expected face %d, got %d", tt.expectedFace, got)
			}
			if !vecNear(hit.Normal, tt.expectedNormal, 1e-5) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestCube_Intersect_Miss(t *testing.T) {
	cube := NewCube(mgl32.Vec3{0, 0, 0}, 2.0, faceMaterials())

	tests := []struct {
		name      string
		origin    mgl32.Vec3
		direction mgl32.Vec3
	}{
		{"ray passes beside the box", mgl32.Vec3{5, 3, 0}, mgl32.Vec3{-1, 0, 0}},
		{"box behind origin", mgl32.Vec3{5, 0, 0}, mgl32.Vec3{1, 0, 0}},
		{"axis-parallel outside slab", mgl32.Vec3{0, 3, 5}, mgl32.Vec3{0, 0, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hit, ok := cube.Intersect(core.NewRay(tt.origin, tt.direction)); ok {
				t.Errorf("Expected miss, got hit at distance %f", hit.Distance)
			}
		})
	}
}

func TestCube_Intersect_OriginInside(t *testing.T) {
	cube := NewCube(mgl32.Vec3{0, 0, 0}, 2.0, faceMaterials())
	ray := core.NewRay(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0})

	hit, ok := cube.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if math32.Abs(hit.Distance-1.0) > 1e-5 {
		t.Errorf("Expected exit at distance 1, got %f", hit.Distance)
	}
	if got := int(hit.Material.Diffuse.R); got != FaceRight {
		t.Errorf("Expected face %d, got %d", FaceRight, got)
	}
}

func TestCube_Intersect_EdgeLastAxisWins(t *testing.T) {
	cube := NewCube(mgl32.Vec3{0, 0, 0}, 2.0, faceMaterials())

	// Diagonal ray landing on the edge shared by the right and top faces.
	// Both slab planes match; the later axis keeps the assignment.
	direction := mgl32.Vec3{-1, -1, 0}.Normalize()
	hit, ok := cube.Intersect(core.NewRay(mgl32.Vec3{3, 3, 0}, direction))
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if got := int(hit.Material.Diffuse.R); got != FaceTop {
		t.Errorf("Expected face %d, got %d", FaceTop, got)
	}
}

func TestCube_Intersect_FaceCenterUV(t *testing.T) {
	cube := NewCube(mgl32.Vec3{0, 0, 0}, 2.0, faceMaterials())

	tests := []struct {
		name      string
		origin    mgl32.Vec3
		direction mgl32.Vec3
	}{
		{"front center", mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, -1}},
		{"right center", mgl32.Vec3{5, 0, 0}, mgl32.Vec3{-1, 0, 0}},
		{"top center", mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, -1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := cube.Intersect(core.NewRay(tt.origin, tt.direction))
			if !ok {
				t.Fatal("Expected hit, got miss")
			}
			if math32.Abs(hit.U-0.5) > 1e-3 || math32.Abs(hit.V-0.5) > 1e-3 {
				t.Errorf("Expected face-center uv (0.5 0.5), got (%f %f)", hit.U, hit.V)
			}
		})
	}
}

func TestCube_Intersect_UVOrientation(t *testing.T) {
	cube := NewCube(mgl32.Vec3{0, 0, 0}, 2.0, faceMaterials())

	// Front face, hit above center: -local.Y maps upward hits to smaller v
	hit, ok := cube.Intersect(core.NewRay(mgl32.Vec3{0, 0.5, 5}, mgl32.Vec3{0, 0, -1}))
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if hit.V >= 0.5 {
		t.Errorf("Expected v < 0.5 above face center, got %f", hit.V)
	}

	// Front face, hit right of center: +local.X maps rightward hits to larger u
	hit, ok = cube.Intersect(core.NewRay(mgl32.Vec3{0.5, 0, 5}, mgl32.Vec3{0, 0, -1}))
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if hit.U <= 0.5 {
		t.Errorf("Expected u > 0.5 right of face center, got %f", hit.U)
	}
}

func TestNewUniformCube_SharesMaterial(t *testing.T) {
	mat := material.Flat(core.NewColor(42, 0, 0), 10.0, [4]float32{0.9, 0.1, 0, 0}, 1.0)
	cube := NewUniformCube(mgl32.Vec3{0, 0, 0}, 2.0, mat)
	for i, m := range cube.Materials {
		if m.Diffuse != mat.Diffuse {
			t.Errorf("Expected face %d to share the material, got %v", i, m.Diffuse)
		}
	}
}
