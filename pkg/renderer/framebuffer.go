package renderer

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/EstebanZG999/RaytracingGraficas/pkg/core"
)

// Framebuffer is a row-major packed-pixel image, top row first, with
// channel order 0x00RRGGBB.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []uint32
}

// NewFramebuffer creates a zeroed framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint32, width*height),
	}
}

// Set writes a color at pixel coordinates (x, y)
func (f *Framebuffer) Set(x, y int, c core.Color) {
	f.Pix[y*f.Width+x] = c.Pack()
}

// At returns the packed pixel at (x, y)
func (f *Framebuffer) At(x, y int) uint32 {
	return f.Pix[y*f.Width+x]
}

// ToRGBA converts the framebuffer to an opaque RGBA image
func (f *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for i, p := range f.Pix {
		img.Pix[i*4+0] = uint8(p >> 16)
		img.Pix[i*4+1] = uint8(p >> 8)
		img.Pix[i*4+2] = uint8(p)
		img.Pix[i*4+3] = 0xff
	}
	return img
}

// UpscaleFrom fills the framebuffer with a nearest-neighbor upscale of a
// lower-resolution render, used by the interactive fast path.
func (f *Framebuffer) UpscaleFrom(src *Framebuffer) {
	srcImg := src.ToRGBA()
	dstImg := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	draw.NearestNeighbor.Scale(dstImg, dstImg.Bounds(), srcImg, srcImg.Bounds(), draw.Src, nil)

	for i := range f.Pix {
		r := uint32(dstImg.Pix[i*4+0])
		g := uint32(dstImg.Pix[i*4+1])
		b := uint32(dstImg.Pix[i*4+2])
		f.Pix[i] = r<<16 | g<<8 | b
	}
}
