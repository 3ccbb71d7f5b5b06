package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/EstebanZG999/RaytracingGraficas/pkg/core"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/material"
)

// Sphere represents a sphere primitive
type Sphere struct {
	Center   mgl32.Vec3
	Radius   float32
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center mgl32.Vec3, radius float32, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Intersect tests the ray against the sphere.
// Tangent rays (discriminant exactly zero) count as misses.
func (s *Sphere) Intersect(ray core.Ray) (*HitRecord, bool) {
	// Quadratic coefficients: a*t^2 + b*t + c = 0
	oc := ray.Origin.Sub(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4.0*a*c
	if discriminant <= 0 {
		return nil, false
	}

	// Smaller root only; a hit behind the origin is a miss
	t := (-b - math32.Sqrt(discriminant)) / (2.0 * a)
	if t <= 0 {
		return nil, false
	}

	point := ray.At(t)
	normal := point.Sub(s.Center).Normalize()
	u, v := s.uv(normal)

	return &HitRecord{
		Point:    point,
		Normal:   normal,
		Distance: t,
		Material: s.Material,
		U:        u,
		V:        v,
	}, true
}

// uv maps a unit normal to spherical surface coordinates
func (s *Sphere) uv(normal mgl32.Vec3) (float32, float32) {
	theta := math32.Atan2(normal.Z(), normal.X())
	phi := math32.Asin(normal.Y())

	u := 0.5 + theta/(2.0*math32.Pi)
	v := 0.5 - phi/math32.Pi
	return u, v
}
