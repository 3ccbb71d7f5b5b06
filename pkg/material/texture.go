package material

import (
	"github.com/EstebanZG999/RaytracingGraficas/pkg/core"
)

// Texture is a decoded 2D image used for diffuse sampling.
// Pixels are row-major with row 0 at the top of the image.
type Texture struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewTexture creates a new texture from row-major pixel data
func NewTexture(width, height int, pixels []core.Color) *Texture {
	return &Texture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// At returns the pixel at integer coordinates (x, y)
func (t *Texture) At(x, y int) core.Color {
	return t.Pixels[y*t.Width+x]
}

// Sample returns the nearest-neighbor texel for UV coordinates.
// U and V wrap to [0, 1); V is flipped so v=0 samples the bottom row.
func (t *Texture) Sample(u, v float32) core.Color {
	u = u - float32(int(u))
	v = v - float32(int(v))
	if u < 0 {
		u += 1.0
	}
	if v < 0 {
		v += 1.0
	}

	x := int(u * float32(t.Width))
	y := int((1.0 - v) * float32(t.Height))

	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	return t.At(x, y)
}
