// Package color implements the canonical sRGB color model that every
// supported format converts through, plus the colorspace math and WCAG
// contrast calculations built on top of it.
package color

import "math"

// Color is the canonical representation. R, G and B are gamma-encoded
// sRGB channels and A is the alpha channel, all normalized to [0, 1].
// Construction clamps floating-point drift so stored channels always
// stay inside their closed ranges; rejecting genuinely out-of-range
// user input is the parser's job, not this package's.
type Color struct {
	R, G, B, A float64
}

// New returns an opaque color from sRGB channels in [0, 1].
func New(r, g, b float64) Color {
	return NewAlpha(r, g, b, 1)
}

// NewAlpha returns a color from sRGB channels and an alpha value, each
// clamped to [0, 1].
func NewAlpha(r, g, b, a float64) Color {
	return Color{
		R: clamp01(r),
		G: clamp01(g),
		B: clamp01(b),
		A: clamp01(a),
	}
}

// FromBytes returns an opaque color from 8-bit sRGB channels.
func FromBytes(r, g, b uint8) Color {
	return New(float64(r)/255, float64(g)/255, float64(b)/255)
}

// Bytes returns the 8-bit channel values, rounded half to even so that
// repeated round trips through integer formats stay stable.
func (c Color) Bytes() (r, g, b uint8) {
	return uint8(math.RoundToEven(c.R * 255)),
		uint8(math.RoundToEven(c.G * 255)),
		uint8(math.RoundToEven(c.B * 255))
}

// Quantize snaps each RGB channel to the nearest 1/255 step, rounding
// half to even like Bytes. Colors derived from HSL/HSV input are
// quantized so they land on the same grid as colors parsed from hex or
// rgb() strings.
func (c Color) Quantize() Color {
	return Color{
		R: math.RoundToEven(c.R*255) / 255,
		G: math.RoundToEven(c.G*255) / 255,
		B: math.RoundToEven(c.B*255) / 255,
		A: c.A,
	}
}

// Opaque reports whether the color has a fully opaque alpha channel.
func (c Color) Opaque() bool {
	return c.A == 1
}

// WithAlpha returns the same color with a different alpha value.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// Over composites c onto an opaque background using the standard
// source-over formula. The result is always opaque.
func (c Color) Over(bg Color) Color {
	inv := 1 - c.A
	return New(
		c.A*c.R+inv*bg.R,
		c.A*c.G+inv*bg.G,
		c.A*c.B+inv*bg.B,
	)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
