package renderer

import (
	"bytes"
	"image/gif"
	"image/png"
	"testing"

	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/core"
)

func TestFrame_SetAt(t *testing.T) {
	frame := NewFrame(4, 3)
	red := core.NewColorInt(255, 0, 0)
	frame.Set(3, 2, red)

	if got := frame.At(3, 2); got != red {
		t.Errorf("Expected %v, got %v", red, got)
	}
	if got := frame.At(0, 0); got != core.Black {
		t.Errorf("Expected untouched pixel to be black, got %v", got)
	}
	if len(frame.Pix) != 4*3*3 {
		t.Errorf("Expected %d bytes, got %d", 4*3*3, len(frame.Pix))
	}
}

func TestFrame_ToRGBAFlipsRows(t *testing.T) {
	frame := NewFrame(2, 2)
	frame.Set(0, 0, core.NewColorInt(10, 20, 30)) // bottom left

	img := frame.ToRGBA()
	r, g, b, a := img.At(0, 1).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 || a>>8 != 255 {
		t.Errorf("Expected bottom-left pixel in the last image row, got (%d,%d,%d,%d)", r>>8, g>>8, b>>8, a>>8)
	}
	if r, _, _, _ := img.At(0, 0).RGBA(); r != 0 {
		t.Errorf("Expected top-left image pixel to be black, got r=%d", r>>8)
	}
}

func TestFrame_Equal(t *testing.T) {
	a := NewFrame(2, 2)
	b := NewFrame(2, 2)
	if !a.Equal(b) {
		t.Error("Expected two black frames to be equal")
	}

	b.Set(1, 1, core.NewColorInt(1, 0, 0))
	if a.Equal(b) {
		t.Error("Expected frames with different pixels to differ")
	}
	if a.Equal(NewFrame(2, 3)) {
		t.Error("Expected frames with different sizes to differ")
	}
}

func TestEncodePNG(t *testing.T) {
	frame := NewFrame(8, 5)
	frame.Set(2, 2, core.NewColorInt(200, 100, 50))

	var buf bytes.Buffer
	if err := EncodePNG(&buf, frame); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 5 {
		t.Errorf("Expected 8x5 image, got %v", img.Bounds())
	}
	r, _, _, _ := img.At(2, 2).RGBA()
	if r>>8 != 200 {
		t.Errorf("Expected red 200 at the middle row, got %d", r>>8)
	}
}

func TestEncodeGIF(t *testing.T) {
	frames := []*Frame{NewFrame(6, 6), NewFrame(6, 6), NewFrame(6, 6)}
	frames[1].Set(3, 3, core.NewColorInt(255, 255, 255))

	var buf bytes.Buffer
	if err := EncodeGIF(&buf, frames, 5); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	decoded, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("Failed to decode GIF: %v", err)
	}
	if len(decoded.Image) != 3 {
		t.Errorf("Expected 3 frames, got %d", len(decoded.Image))
	}
	for i, d := range decoded.Delay {
		if d != 5 {
			t.Errorf("Frame %d: expected delay 5, got %d", i, d)
		}
	}

	if err := EncodeGIF(&buf, nil, 5); err == nil {
		t.Error("Expected error for empty frame list")
	}
}
