package renderer

import (
	"bytes"
	"image"

	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/core"
)

// Frame is a raster of RGB byte triples stored row-major. Row 0 is the
// bottom row of the picture, matching glDrawPixels-style displays.
type Frame struct {
	Width  int
	Height int
	Pix    []uint8 // 3 bytes per pixel: R, G, B
}

// NewFrame creates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

func (f *Frame) offset(x, y int) int {
	return (y*f.Width + x) * 3
}

// Set writes the color of pixel (x, y)
func (f *Frame) Set(x, y int, c core.Color) {
	i := f.offset(x, y)
	f.Pix[i+0] = c.R
	f.Pix[i+1] = c.G
	f.Pix[i+2] = c.B
}

// At returns the color of pixel (x, y)
func (f *Frame) At(x, y int) core.Color {
	i := f.offset(x, y)
	return core.Color{R: f.Pix[i+0], G: f.Pix[i+1], B: f.Pix[i+2]}
}

// Equal reports whether two frames have the same size and bytes
func (f *Frame) Equal(other *Frame) bool {
	return f.Width == other.Width && f.Height == other.Height && bytes.Equal(f.Pix, other.Pix)
}

// ToRGBA converts the frame to an image with row 0 at the top
func (f *Frame) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		row := f.Height - 1 - y
		for x := 0; x < f.Width; x++ {
			img.SetRGBA(x, row, f.At(x, y).ToRGBA())
		}
	}
	return img
}

// Bounds returns the pixel rectangle covered by the frame
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}
