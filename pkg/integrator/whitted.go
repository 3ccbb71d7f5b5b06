package integrator

import (
	"github.com/chewxy/math32"

	"github.com/EstebanZG999/RaytracingGraficas/pkg/core"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/geometry"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/material"
)

// Whitted is a recursive ray-casting integrator: Lambertian diffuse plus
// Phong specular direct lighting, distance-attenuated shadows, and
// recursive reflection/refraction up to a fixed depth. It never fails;
// every ray resolves to a color.
type Whitted struct {
	config core.RenderConfig
}

// NewWhitted creates an integrator with the given configuration
func NewWhitted(config core.RenderConfig) *Whitted {
	return &Whitted{config: config}
}

// Config returns the integrator configuration
func (w *Whitted) Config() core.RenderConfig {
	return w.config
}

// RayColor traces a ray into the scene and returns its color. Depth counts
// recursion levels; callers start at 0. Once depth exceeds the configured
// maximum the background color is returned without touching the geometry.
func (w *Whitted) RayColor(ray core.Ray, objects []geometry.Primitive, lights []core.Light, depth int) core.Color {
	if depth > w.config.MaxDepth {
		return w.config.Background
	}

	// Brute-force nearest hit over the whole scene
	var closest *geometry.HitRecord
	closestDistance := math32.Inf(1)
	for _, obj := range objects {
		if hit, ok := obj.Intersect(ray); ok && hit.Distance < closestDistance {
			closestDistance = hit.Distance
			closest = hit
		}
	}
	if closest == nil {
		return w.config.Background
	}

	diffuseColor := closest.Material.DiffuseAt(closest.U, closest.V)
	finalColor := core.NewColor(0, 0, 0)

	for _, light := range lights {
		if light.IsAmbient(w.config.AmbientThreshold) {
			finalColor = finalColor.Add(diffuseColor.Scale(light.Intensity))
			continue
		}

		lightDir := light.Position.Sub(closest.Point).Normalize()
		lambert := math32.Max(0, closest.Normal.Dot(lightDir))

		shadow := w.castShadow(closest, light, objects)
		lightIntensity := light.Intensity * (1.0 - shadow)

		// Phong specular about the reflected light direction
		viewDir := ray.Origin.Sub(closest.Point).Normalize()
		reflectDir := Reflect(lightDir.Mul(-1), closest.Normal).Normalize()
		specular := math32.Pow(math32.Max(0, viewDir.Dot(reflectDir)), closest.Material.SpecularExp)

		diffuse := diffuseColor.Scale(closest.Material.Albedo[material.DiffuseK] * lambert * lightIntensity)
		highlight := light.Color.Scale(closest.Material.Albedo[material.SpecularK] * specular * lightIntensity)
		finalColor = finalColor.Add(diffuse).Add(highlight)
	}

	reflectivity := closest.Material.Albedo[material.ReflectK]
	reflectColor := core.NewColor(0, 0, 0)
	if reflectivity > 0 {
		reflectOrigin := closest.Point.Add(closest.Normal.Mul(w.config.SurfaceBias))
		reflectDir := Reflect(ray.Direction, closest.Normal).Normalize()
		reflectColor = w.RayColor(core.NewRay(reflectOrigin, reflectDir), objects, lights, depth+1)
	}

	transparency := closest.Material.Albedo[material.RefractK]
	refractColor := core.NewColor(0, 0, 0)
	if transparency > 0 {
		// Offset into the surface so the refracted ray starts inside
		refractOrigin := closest.Point.Sub(closest.Normal.Mul(w.config.SurfaceBias))
		refractDir := Refract(ray.Direction, closest.Normal, closest.Material.RefractiveIndex).Normalize()
		refractColor = w.RayColor(core.NewRay(refractOrigin, refractDir), objects, lights, depth+1)
	}

	local := finalColor.Scale(1.0 - reflectivity - transparency)
	return local.Add(reflectColor.Scale(reflectivity)).Add(refractColor.Scale(transparency))
}

// castShadow returns the shadow attenuation in [0, 1] for a surface point
// relative to a light: 0 fully lit, approaching 1 as the nearest occluder
// between the point and the light closes in on the surface.
func (w *Whitted) castShadow(hit *geometry.HitRecord, light core.Light, objects []geometry.Primitive) float32 {
	lightDir := light.Position.Sub(hit.Point).Normalize()
	shadowOrigin := hit.Point.Add(hit.Normal.Mul(w.config.SurfaceBias))
	shadowRay := core.NewRay(shadowOrigin, lightDir)
	distanceToLight := light.Position.Sub(hit.Point).Len()

	nearest := math32.Inf(1)
	for _, obj := range objects {
		occluder, ok := obj.Intersect(shadowRay)
		if !ok {
			continue
		}
		distance := occluder.Point.Sub(hit.Point).Len()
		if distance < distanceToLight && distance < nearest {
			nearest = distance
		}
	}

	if math32.IsInf(nearest, 1) {
		return 0
	}
	return 1.0 - math32.Min(nearest/distanceToLight, 1.0)
}
