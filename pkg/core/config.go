package core

// RenderConfig contains the shading engine configuration. The zero value is
// not useful; use DefaultRenderConfig and override fields as needed.
type RenderConfig struct {
	MaxDepth         int     // Maximum recursion depth for reflection/refraction rays
	Background       Color   // Color returned for rays that miss every primitive
	AmbientThreshold float32 // Lights with intensity <= threshold are ambient-only
	SurfaceBias      float32 // Offset along the normal to avoid self-intersection
}

// DefaultRenderConfig returns the standard configuration
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		MaxDepth:         3,
		Background:       NewColor(4, 12, 36),
		AmbientThreshold: 0.3,
		SurfaceBias:      1e-3,
	}
}
