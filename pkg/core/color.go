package core

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an 8-bit-per-channel RGB value. Every constructor and
// combination clamps its channels into [0, 255].
type Color struct {
	R, G, B uint8
}

// Black is the background color
var Black = Color{}

// NewColor creates a color from real-valued channels, clamping each into [0, 255].
// Fractions are truncated.
func NewColor(r, g, b float64) Color {
	return Color{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

// NewColorInt creates a color from integer channels, clamping each into [0, 255]
func NewColorInt(r, g, b int) Color {
	return Color{R: clampInt(r), G: clampInt(g), B: clampInt(b)}
}

// Add returns the saturating per-channel sum of two colors
func (c Color) Add(other Color) Color {
	return NewColorInt(int(c.R)+int(other.R), int(c.G)+int(other.G), int(c.B)+int(other.B))
}

// Scale returns the color multiplied by a scalar, clamped
func (c Color) Scale(factor float64) Color {
	return NewColor(float64(c.R)*factor, float64(c.G)*factor, float64(c.B)*factor)
}

// Vec returns the channels as a real-valued vector for intermediate arithmetic
func (c Color) Vec() Vec3 {
	return Vec3{X: float64(c.R), Y: float64(c.G), Z: float64(c.B)}
}

// ToRGBA converts to an opaque image/color value
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// IsBlack reports whether all channels are zero
func (c Color) IsBlack() bool {
	return c == Black
}

func (c Color) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B)
}

// ColorFromVec clamps a real-valued RGB vector into a Color
func ColorFromVec(v Vec3) Color {
	return NewColor(v.X, v.Y, v.Z)
}

// Average returns the per-channel arithmetic mean with integer truncation.
// The average of no colors is black.
func Average(colors ...Color) Color {
	if len(colors) == 0 {
		return Black
	}
	var r, g, b int
	for _, c := range colors {
		r += int(c.R)
		g += int(c.G)
		b += int(c.B)
	}
	n := len(colors)
	return NewColorInt(r/n, g/n, b/n)
}

func clampChannel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

func clampInt(v int) uint8 {
	return uint8(max(0, min(255, v)))
}
