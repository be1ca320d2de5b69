package renderer

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
)

// EncodePNG writes the frame as a PNG with row 0 at the bottom of the picture
func EncodePNG(w io.Writer, frame *Frame) error {
	if err := png.Encode(w, frame.ToRGBA()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// EncodeGIF writes frames as a looping animated GIF.
// delay is in 100ths of a second (e.g., 5 => 20 fps).
func EncodeGIF(w io.Writer, frames []*Frame, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("encode gif: no frames")
	}

	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}

	for _, frame := range frames {
		rgba := frame.ToRGBA()

		// Quantize to paletted for GIF
		pimg := image.NewPaletted(rgba.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})

		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}

	if err := gif.EncodeAll(w, out); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}
