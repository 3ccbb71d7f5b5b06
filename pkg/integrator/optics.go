package integrator

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Reflect mirrors an incident direction about a surface normal
func Reflect(incident, normal mgl32.Vec3) mgl32.Vec3 {
	return incident.Sub(normal.Mul(2.0 * incident.Dot(normal)))
}

// Refract bends an incident direction through a surface with relative
// refractive index etaT, handling both entering and exiting rays. On total
// internal reflection the reflected direction is returned instead.
func Refract(incident, normal mgl32.Vec3, etaT float32) mgl32.Vec3 {
	cosi := clamp(-incident.Dot(normal), -1.0, 1.0)

	var nCosi, eta float32
	var n mgl32.Vec3
	if cosi < 0 {
		// Ray is entering the object
		nCosi = -cosi
		eta = 1.0 / etaT
		n = normal.Mul(-1)
	} else {
		// Ray is leaving the object
		nCosi = cosi
		eta = etaT
		n = normal
	}

	k := 1.0 - eta*eta*(1.0-nCosi*nCosi)
	if k < 0 {
		return Reflect(incident, n)
	}
	return incident.Mul(eta).Add(n.Mul(eta*nCosi - math32.Sqrt(k)))
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
