package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/EstebanZG999/RaytracingGraficas/pkg/core"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/geometry"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/material"
)

// IslandTextures holds the optional textures for the island scene. Nil
// entries fall back to flat colors.
type IslandTextures struct {
	Grass   *material.Texture
	Dirt    *material.Texture
	DirtAlt *material.Texture
	Sand    *material.Texture
	Water   *material.Texture
	Wood    *material.Texture
	Leaf    *material.Texture
	Cactus  *material.Texture
}

const cubeSize = 2.0

// NewIslandScene builds the voxel island: layered dirt columns with grass
// tops, a sand shelf, an animated water pool, a tree, and a cactus.
func NewIslandScene(textures IslandTextures) *Scene {
	s := New(CameraPose{
		Eye:    mgl32.Vec3{8, 12, -25},
		Center: mgl32.Vec3{0, 0, -1},
		Up:     mgl32.Vec3{0, 1, 0},
	})

	s.AddLight(
		// Dim ambient fill; position is irrelevant below the threshold
		core.NewLight(mgl32.Vec3{0, 0, 0}, core.NewColor(255, 255, 255), 0.2),
		// Key light above and behind the tree
		core.NewLight(mgl32.Vec3{0, 8, 8}, core.NewColor(255, 255, 255), 1.5),
	)

	dirt := islandMaterial(core.NewColor(134, 96, 67), textures.Dirt, 50, [4]float32{0.6, 0.3, 0.1, 0.1})
	dirtAlt := islandMaterial(core.NewColor(110, 80, 55), textures.DirtAlt, 50, [4]float32{0.6, 0.3, 0.1, 0.1})
	grass := islandMaterial(core.NewColor(95, 159, 53), textures.Grass, 50, [4]float32{0.6, 0.3, 0.1, 0.1})
	sand := islandMaterial(core.NewColor(219, 202, 105), textures.Sand, 5, [4]float32{0.9, 0.1, 0, 0})
	water := islandMaterial(core.NewColor(63, 118, 228), textures.Water, 50, [4]float32{0.6, 0.3, 0.1, 0.1})
	wood := islandMaterial(core.NewColor(109, 85, 50), textures.Wood, 10, [4]float32{0.6, 0.3, 0, 0})
	leaf := islandMaterial(core.NewColor(60, 130, 50), textures.Leaf, 20, [4]float32{0.7, 0.2, 0, 0.1})
	cactus := islandMaterial(core.NewColor(58, 111, 60), textures.Cactus, 15, [4]float32{0.6, 0.2, 0, 0})

	for _, p := range floorPositions {
		center := mgl32.Vec3{p[0], p[1], p[2]}
		if p[1] == 4 || (p[1] == 2 && p[2] == -8) || (p[0] == 8 && p[1] == 0) {
			// Exposed tiles get a grass top over dirt sides
			s.Add(geometry.NewCube(center, cubeSize, [6]material.Material{
				dirt, dirt, grass, dirtAlt, dirt, dirt,
			}))
		} else {
			s.Add(geometry.NewUniformCube(center, cubeSize, dirtAlt))
		}
	}
	for _, p := range sandPositions {
		s.Add(geometry.NewUniformCube(mgl32.Vec3{p[0], p[1], p[2]}, cubeSize, sand))
	}
	for _, p := range waterPositions {
		s.AddWater(geometry.NewUniformCube(mgl32.Vec3{p[0], p[1], p[2]}, cubeSize, water))
	}
	for _, p := range trunkPositions {
		s.Add(geometry.NewUniformCube(mgl32.Vec3{p[0], p[1], p[2]}, cubeSize, wood))
	}
	for _, p := range leafPositions {
		s.Add(geometry.NewUniformCube(mgl32.Vec3{p[0], p[1], p[2]}, cubeSize, leaf))
	}
	for _, p := range cactusPositions {
		s.Add(geometry.NewUniformCube(mgl32.Vec3{p[0], p[1], p[2]}, cubeSize, cactus))
	}

	return s
}

// islandMaterial pairs a flat fallback color with an optional texture.
// Textured faces use a white base so the texture is not tinted.
func islandMaterial(flat core.Color, tex *material.Texture, specularExp float32, albedo [4]float32) material.Material {
	diffuse := flat
	if tex != nil {
		diffuse = core.NewColor(255, 255, 255)
	}
	return material.New(diffuse, specularExp, albedo, 1.5, tex)
}

// Cube centers for each terrain layer, on a 2-unit grid.
var floorPositions = [][3]float32{
	{0, 0, 0}, {0, 2, 0}, {0, 4, 0},
	{2, 0, 0}, {2, 2, 0}, {2, 4, 0},
	{0, 0, -2}, {0, 2, -2}, {0, 4, -2},
	{2, 0, -2}, {2, 2, -2}, {2, 4, -2},
	{0, 0, -4}, {0, 2, -4}, {0, 4, -4},
	{2, 0, -4}, {2, 2, -4}, {2, 4, -4},
	{4, 0, 0}, {4, 2, 0}, {4, 4, 0},
	{4, 0, -2}, {4, 2, -2}, {4, 4, -2},
	{0, 0, -6}, {0, 2, -6}, {0, 4, -6},
	{2, 0, -6}, {2, 2, -6}, {2, 4, -6},
	{6, 0, 0}, {6, 2, 0}, {6, 4, 0},
	{4, 0, -4}, {4, 2, -4}, {4, 4, -4},
	{0, 0, -8}, {0, 2, -8},
	{8, 0, 0},
}

var sandPositions = [][3]float32{
	{6, 0, -2}, {6, 2, -2},
	{2, 0, -6}, {2, 2, -6},
	{4, 0, -4}, {4, 2, -4},
	{0, 0, -10},
	{10, 0, 0},
	{8, 0, -2},
	{2, 0, -8},
	{4, 0, -6},
	{6, 0, -4},
	{12, 0, 0},
	{0, 0, -12},
	{4, 0, -8},
	{8, 0, -4},
	{0, 0, -14},
	{14, 0, 0},
	{0, 0, -16}, {2, 0, -16}, {4, 0, -16}, {6, 0, -16},
	{8, 0, -16}, {10, 0, -16}, {12, 0, -16}, {14, 0, -16},
	{16, 0, 0}, {16, 0, -2}, {16, 0, -4}, {16, 0, -6},
	{16, 0, -8}, {16, 0, -10}, {16, 0, -12}, {16, 0, -14}, {16, 0, -16},
}

var waterPositions = [][3]float32{
	{6, 0, -6}, {8, 0, -6}, {10, 0, -6},
	{6, 0, -8}, {8, 0, -8}, {10, 0, -8},
	{6, 0, -10}, {8, 0, -10}, {10, 0, -10},
	{2, 0, -10}, {4, 0, -10},
	{10, 0, -2}, {10, 0, -4},
	{2, 0, -12}, {4, 0, -12}, {6, 0, -12}, {8, 0, -12}, {10, 0, -12},
	{12, 0, -2}, {12, 0, -4}, {12, 0, -6}, {12, 0, -8}, {12, 0, -10}, {12, 0, -12},
	{14, 0, -2}, {14, 0, -4}, {14, 0, -6}, {14, 0, -8}, {14, 0, -10}, {14, 0, -12}, {14, 0, -14},
	{2, 0, -14}, {4, 0, -14}, {6, 0, -14}, {8, 0, -14}, {10, 0, -14}, {12, 0, -14},
}

var trunkPositions = [][3]float32{
	{0, 6, 0}, {0, 8, 0}, {0, 10, 0}, {0, 12, 0},
}

var leafPositions = [][3]float32{
	{-4, 14, -4}, {-2, 14, -4}, {0, 14, -4}, {2, 14, -4}, {4, 14, -4},
	{-4, 14, -2}, {-2, 14, -2}, {0, 14, -2}, {2, 14, -2}, {4, 14, -2},
	{-4, 14, 0}, {-2, 14, 0}, {0, 14, 0}, {2, 14, 0}, {4, 14, 0},
	{-4, 14, 2}, {-2, 14, 2}, {0, 14, 2}, {2, 14, 2}, {4, 14, 2},
	{-4, 14, 4}, {-2, 14, 4}, {0, 14, 4}, {2, 14, 4}, {4, 14, 4},
	{-2, 16, -2}, {0, 16, -2}, {2, 16, -2},
	{-2, 16, 0}, {0, 16, 0}, {2, 16, 0},
	{-2, 16, 2}, {0, 16, 2}, {2, 16, 2},
	{0, 18, 0},
}

var cactusPositions = [][3]float32{
	{16, 2, -16}, {16, 4, -16}, {16, 6, -16},
}
