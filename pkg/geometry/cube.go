package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/EstebanZG999/RaytracingGraficas/pkg/core"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/material"
)

// Cube face indices, one material and UV projection per face
const (
	FaceLeft   = iota // X-
	FaceRight         // X+
	FaceTop           // Y+
	FaceBottom        // Y-
	FaceFront         // Z+
	FaceBack          // Z-
)

// faceEpsilon bounds how far a hit point may sit from a slab plane and
// still be assigned to that face.
const faceEpsilon = 1e-4

// Cube is an axis-aligned box with an independent material per face.
type Cube struct {
	Center    mgl32.Vec3
	Size      float32
	Materials [6]material.Material
}

// NewCube creates a cube of the given edge length centered at center
func NewCube(center mgl32.Vec3, size float32, materials [6]material.Material) *Cube {
	return &Cube{
		Center:    center,
		Size:      size,
		Materials: materials,
	}
}

// NewUniformCube creates a cube with the same material on all six faces
func NewUniformCube(center mgl32.Vec3, size float32, mat material.Material) *Cube {
	return NewCube(center, size, [6]material.Material{mat, mat, mat, mat, mat, mat})
}

// Intersect runs the slab test against the box. Division by a zero
// direction component yields infinities, which the min/max folding
// handles without special cases.
func (c *Cube) Intersect(ray core.Ray) (*HitRecord, bool) {
	half := c.Size / 2.0
	boxMin := c.Center.Sub(mgl32.Vec3{half, half, half})
	boxMax := c.Center.Add(mgl32.Vec3{half, half, half})

	tEnter := math32.Inf(-1)
	tExit := math32.Inf(1)
	for i := 0; i < 3; i++ {
		invDir := 1.0 / ray.Direction[i]
		t0 := (boxMin[i] - ray.Origin[i]) * invDir
		t1 := (boxMax[i] - ray.Origin[i]) * invDir
		tEnter = math32.Max(tEnter, math32.Min(t0, t1))
		tExit = math32.Min(tExit, math32.Max(t0, t1))
	}

	if tEnter > tExit || tExit < 0 {
		return nil, false
	}

	// Origin inside the box: the entry plane is behind us, use the exit
	tHit := tEnter
	if tHit < 0 {
		tHit = tExit
	}
	point := ray.At(tHit)

	// Assign the face whose slab plane the hit point lies on. Near an edge
	// or corner more than one axis matches; the last axis wins.
	var normal mgl32.Vec3
	faceIndex := 0
	minFaces := [3]int{FaceLeft, FaceBottom, FaceBack}
	maxFaces := [3]int{FaceRight, FaceTop, FaceFront}
	for i := 0; i < 3; i++ {
		if math32.Abs(point[i]-boxMin[i]) < faceEpsilon {
			normal[i] = -1.0
			faceIndex = minFaces[i]
		} else if math32.Abs(point[i]-boxMax[i]) < faceEpsilon {
			normal[i] = 1.0
			faceIndex = maxFaces[i]
		}
	}

	local := point.Sub(c.Center).Mul(1.0 / half)
	u, v := faceUV(faceIndex, local)

	return &HitRecord{
		Point:    point,
		Normal:   normal,
		Distance: tHit,
		Material: c.Materials[faceIndex],
		U:        u,
		V:        v,
	}, true
}

// faceUV projects the two non-face axes of a point (in local coordinates
// scaled to [-1, 1]) onto [0, 1). The per-face axis and sign choices fix
// texture orientation; flipping any sign mirrors that face's texture.
func faceUV(faceIndex int, local mgl32.Vec3) (float32, float32) {
	switch faceIndex {
	case FaceFront:
		return mapUV(local.X(), -local.Y())
	case FaceBack:
		return mapUV(-local.X(), -local.Y())
	case FaceLeft:
		return mapUV(local.Z(), -local.Y())
	case FaceRight:
		return mapUV(-local.Z(), -local.Y())
	case FaceTop:
		return mapUV(local.X(), local.Z())
	case FaceBottom:
		return mapUV(local.X(), -local.Z())
	}
	return 0, 0
}

// mapUV remaps coordinates from [-1, 1] to [0, 1) with fractional wrap
func mapUV(u, v float32) (float32, float32) {
	u = (u + 1.0) * 0.5
	v = (v + 1.0) * 0.5
	return fract(u), fract(v)
}

func fract(f float32) float32 {
	return f - math32.Floor(f)
}
