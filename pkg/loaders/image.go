package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"path/filepath"

	"github.com/EstebanZG999/RaytracingGraficas/pkg/core"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/material"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/scene"
)

// LoadTexture loads a PNG or JPEG image into a texture. Rows are flipped
// vertically during the copy so row 0 of the texture is the top of the
// image, matching the sampler's V-flip convention.
func LoadTexture(filename string) (*material.Texture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", filename, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		srcY := bounds.Min.Y + (height - 1 - y)
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, srcY).RGBA()
			// RGBA returns uint32 in [0, 65535]; keep the high byte
			pixels[y*width+x] = core.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}

	return material.NewTexture(width, height, pixels), nil
}

// LoadIslandTextures loads the island texture set from a directory,
// leaving entries nil (flat-color fallback) for files that are missing.
func LoadIslandTextures(dir string) scene.IslandTextures {
	load := func(names ...string) *material.Texture {
		for _, name := range names {
			tex, err := LoadTexture(filepath.Join(dir, name))
			if err == nil {
				return tex
			}
		}
		return nil
	}

	return scene.IslandTextures{
		Grass:   load("grass.png", "grass.jpeg"),
		Dirt:    load("dirt.png", "dirt.jpeg"),
		DirtAlt: load("dirt_alt.png", "dirt_alt.jpeg"),
		Sand:    load("sand.png", "sand.jpeg"),
		Water:   load("water.png", "water.jpeg"),
		Wood:    load("wood.png", "wood.jpeg"),
		Leaf:    load("leaf.png", "leaf.jpeg"),
		Cactus:  load("cactus.png", "cactus.jpeg"),
	}
}
