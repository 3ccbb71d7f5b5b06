package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/EstebanZG999/RaytracingGraficas/pkg/core"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/material"
)

// HitRecord describes a ray-surface intersection. Normal is unit length and
// points out of the surface at exit faces; Distance is the positive ray
// parameter at the hit point. U and V are surface coordinates in [0, 1).
type HitRecord struct {
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
	Material material.Material
	U, V     float32
}

// Primitive is the intersection capability shared by all scene geometry.
// Implementations return (nil, false) when the ray misses or the
// intersection lies at a non-positive parametric distance.
type Primitive interface {
	Intersect(ray core.Ray) (*HitRecord, bool)
}
