package renderer

import (
	"image"
	"image/color"

	"github.com/raydiancy/go-whitted-raytracer/pkg/core"
)

// Framebuffer is the in-memory pixel buffer the tracer renders into.
// Pixels hold unclamped accumulated colors; clamping and gamma correction
// happen only in ToImage.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.AlphaColor
}

// NewFramebuffer creates a framebuffer of the given dimensions, initialized
// to fully transparent pixels
func NewFramebuffer(width, height int) *Framebuffer {
	pixels := make([]core.AlphaColor, width*height)
	for i := range pixels {
		pixels[i] = core.Transparent()
	}
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Set stores the color for pixel (x, y)
func (fb *Framebuffer) Set(x, y int, c core.AlphaColor) {
	fb.Pixels[y*fb.Width+x] = c
}

// At returns the color of pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.AlphaColor {
	return fb.Pixels[y*fb.Width+x]
}

// ToImage converts the framebuffer to an 8-bit NRGBA image. This is the
// single point where channels are clamped and gamma corrected; pixels whose
// rays never hit anything come out fully transparent.
func (fb *Framebuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b, a := fb.At(x, y).RGBA()
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
		}
	}
	return img
}
