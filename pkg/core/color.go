package core

// Color is an 8-bit-per-channel RGB color with saturating arithmetic.
type Color struct {
	R, G, B uint8
}

// NewColor creates a new Color
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the channel-wise sum of two colors, saturating at 255
func (c Color) Add(other Color) Color {
	return Color{
		R: saturateU32(uint32(c.R) + uint32(other.R)),
		G: saturateU32(uint32(c.G) + uint32(other.G)),
		B: saturateU32(uint32(c.B) + uint32(other.B)),
	}
}

// Scale returns the color scaled by a factor, with each channel
// clamped to [0, 255]. Negative factors clamp to black.
func (c Color) Scale(factor float32) Color {
	return Color{
		R: saturateF32(float32(c.R) * factor),
		G: saturateF32(float32(c.G) * factor),
		B: saturateF32(float32(c.B) * factor),
	}
}

// Pack encodes the color as a 32-bit pixel in 0x00RRGGBB order.
func (c Color) Pack() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// UnpackColor decodes a 0x00RRGGBB pixel back into a Color.
func UnpackColor(pixel uint32) Color {
	return Color{
		R: uint8(pixel >> 16),
		G: uint8(pixel >> 8),
		B: uint8(pixel),
	}
}

func saturateU32(v uint32) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func saturateF32(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
