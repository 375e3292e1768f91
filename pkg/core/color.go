package core

import "math"

// Gamma value applied when converting to 8-bit output
const gammaValue = 2.2

// Color represents an RGB color. Channels are nominally in [0,1] but may
// exceed 1 while contributions accumulate; clamping happens only at output.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// NewGray creates a gray Color with all channels equal
func NewGray(v float64) Color {
	return Color{R: v, G: v, B: v}
}

// Black returns the black color
func Black() Color {
	return Color{}
}

// White returns the white color
func White() Color {
	return Color{R: 1, G: 1, B: 1}
}

// Add returns the component-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Mul returns the component-wise product of two colors
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Scale returns the color scaled by a scalar
func (c Color) Scale(s float64) Color {
	return Color{s * c.R, s * c.G, s * c.B}
}

// Luminance returns the perceptual luminance of the color
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// AlphaColor is a color with a transparency accumulator. A is the fraction
// of the ray's energy that escaped to the background: 1 means fully
// transparent, 0 means fully opaque. For a background color b the displayed
// color is C + A*b.
type AlphaColor struct {
	C Color
	A float64
}

// NewAlphaColor creates an opaque AlphaColor from RGB channels
func NewAlphaColor(r, g, b float64) AlphaColor {
	return AlphaColor{C: Color{R: r, G: g, B: b}}
}

// Transparent returns a fully transparent AlphaColor
func Transparent() AlphaColor {
	return AlphaColor{A: 1}
}

// Opaque wraps a Color as an opaque AlphaColor
func Opaque(c Color) AlphaColor {
	return AlphaColor{C: c}
}

// Add returns the component-wise sum, accumulating alpha as well
func (ac AlphaColor) Add(other AlphaColor) AlphaColor {
	return AlphaColor{C: ac.C.Add(other.C), A: ac.A + other.A}
}

// Scale scales both the color and the alpha accumulator
func (ac AlphaColor) Scale(s float64) AlphaColor {
	return AlphaColor{C: ac.C.Scale(s), A: s * ac.A}
}

// RGBA converts the accumulated color to 8-bit RGBA with gamma correction.
// Clamping to the valid range happens here and nowhere else.
func (ac AlphaColor) RGBA() (r, g, b, a uint8) {
	if ac.A >= 1 {
		return 0, 0, 0, 0
	}
	opacity := 1 - ac.A
	c := ac.C.Scale(opacity)
	return toByte(gammaCorrect(c.R)), toByte(gammaCorrect(c.G)), toByte(gammaCorrect(c.B)), toByte(opacity)
}

// toByte converts a value in [0,1] to an integer in [0,255], clamping out-of-range input
func toByte(x float64) uint8 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 255
	}
	return uint8(x * 255.0)
}

// gammaCorrect applies standard gamma correction to a single channel
func gammaCorrect(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Pow(x, 1.0/gammaValue)
}
