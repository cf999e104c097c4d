// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package surface

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"image/png"
	"io"

	"honnef.co/go/color"

	"github.com/gviegas/stereo/linear"
)

// Encode converts the layer of t at slot into an 8-bit
// sRGB image. Values are clamped to [0, 1] only here.
func (t *Layered) Encode(slot int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, t.width, t.height))
	for y := range t.height {
		for x := range t.width {
			img.SetNRGBA(x, y, ToSRGB(t.At(slot, x, y)))
		}
	}
	return img
}

// ToSRGB encodes a linear color into 8-bit sRGB.
// Alpha is stored linearly.
func ToSRGB(c linear.V4) stdcolor.NRGBA {
	lin := color.Make(color.LinearSRGB,
		float64(linear.Saturate(c[0])),
		float64(linear.Saturate(c[1])),
		float64(linear.Saturate(c[2])),
		float64(linear.Saturate(c[3])))
	s := lin.Convert(color.SRGB)
	return stdcolor.NRGBA{
		R: quantize(s.Values[0]),
		G: quantize(s.Values[1]),
		B: quantize(s.Values[2]),
		A: quantize(s.Alpha),
	}
}

func quantize(x float64) uint8 {
	return uint8(linear.Clamp(x*255+0.5, 0, 255))
}

// WritePNG encodes the layer of t at slot as PNG into w.
func (t *Layered) WritePNG(w io.Writer, slot int) error {
	if slot < 0 || slot >= len(t.layers) {
		return newErr("slot out of range")
	}
	if err := png.Encode(w, t.Encode(slot)); err != nil {
		return fmt.Errorf("%sPNG encoding failed: %w", prefix, err)
	}
	return nil
}
