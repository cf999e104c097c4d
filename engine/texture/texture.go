// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package texture provides images and samplers for
// use by materials.
package texture

import (
	"errors"
	"image"
	stdcolor "image/color"

	"github.com/chewxy/math32"
	"honnef.co/go/color"

	"github.com/gviegas/stereo/linear"
)

const prefix = "texture: "

func newErr(reason string) error { return errors.New(prefix + reason) }

// Default values returned by Ref.Sample when no
// image is bound.
var (
	// White is the default of color, emission,
	// metallic-roughness and occlusion slots.
	White = linear.V4{1, 1, 1, 1}

	// FlatNormal is the default of normal slots
	// (a +Z tangent-space normal, packed).
	FlatNormal = linear.V4{0.5, 0.5, 1, 1}
)

// Image is a 2D image of linear RGBA values.
// It is not safe to modify an Image while it is
// being sampled.
type Image struct {
	width  int
	height int
	data   []linear.V4
}

// New creates a new width by height image whose
// texels are transparent black.
func New(width, height int) (*Image, error) {
	if width < 1 || height < 1 {
		return nil, newErr("invalid image size")
	}
	return &Image{
		width:  width,
		height: height,
		data:   make([]linear.V4, width*height),
	}, nil
}

// Width returns the width of img in texels.
func (img *Image) Width() int { return img.width }

// Height returns the height of img in texels.
func (img *Image) Height() int { return img.height }

// At returns the texel at (x, y).
func (img *Image) At(x, y int) linear.V4 { return img.data[y*img.width+x] }

// Set sets the texel at (x, y).
func (img *Image) Set(x, y int, c linear.V4) { img.data[y*img.width+x] = c }

// Solid creates a 1x1 image of color c.
func Solid(c linear.V4) *Image {
	return &Image{width: 1, height: 1, data: []linear.V4{c}}
}

// Checker creates a width by height image of
// alternating a/b squares, with n squares along
// each axis.
func Checker(width, height, n int, a, b linear.V4) (*Image, error) {
	if n < 1 {
		return nil, newErr("invalid checker count")
	}
	img, err := New(width, height)
	if err != nil {
		return nil, err
	}
	for y := range height {
		for x := range width {
			if (x*n/width+y*n/height)%2 == 0 {
				img.Set(x, y, a)
			} else {
				img.Set(x, y, b)
			}
		}
	}
	return img, nil
}

// FromImage converts src into an Image.
// If srgb is set, color channels are decoded from
// the sRGB transfer function into linear values;
// alpha is always taken as linear.
func FromImage(src image.Image, srgb bool) *Image {
	r := src.Bounds()
	img := &Image{
		width:  r.Dx(),
		height: r.Dy(),
		data:   make([]linear.V4, r.Dx()*r.Dy()),
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			n := stdcolor.NRGBA64Model.Convert(src.At(x, y)).(stdcolor.NRGBA64)
			v := [4]float64{
				float64(n.R) / 0xffff,
				float64(n.G) / 0xffff,
				float64(n.B) / 0xffff,
				float64(n.A) / 0xffff,
			}
			if srgb {
				c := color.Make(color.SRGB, v[0], v[1], v[2], v[3])
				l := c.Convert(color.LinearSRGB)
				v[0], v[1], v[2] = l.Values[0], l.Values[1], l.Values[2]
			}
			img.Set(x-r.Min.X, y-r.Min.Y, linear.V4{
				float32(v[0]),
				float32(v[1]),
				float32(v[2]),
				float32(v[3]),
			})
		}
	}
	return img
}

// Filter is the type of texture filters.
type Filter int

// Filters.
const (
	FNearest Filter = iota
	FLinear
)

// AddrMode is the type of texture addressing modes.
type AddrMode int

// Address modes.
const (
	AWrap AddrMode = iota
	AMirror
	AClamp
)

// Sampler describes how an Image is sampled.
// The zero value is a nearest, wrapping sampler.
type Sampler struct {
	Filter Filter
	AddrU  AddrMode
	AddrV  AddrMode
}

// Validate checks that s uses defined constants.
func (s *Sampler) Validate() error {
	switch s.Filter {
	case FNearest, FLinear:
	default:
		return newErr("undefined filter constant")
	}
	for _, a := range [2]AddrMode{s.AddrU, s.AddrV} {
		switch a {
		case AWrap, AMirror, AClamp:
		default:
			return newErr("undefined address mode constant")
		}
	}
	return nil
}

// address maps the integer coordinate i into [0, n).
func address(i, n int, mode AddrMode) int {
	switch mode {
	case AClamp:
		return linear.Clamp(i, 0, n-1)
	case AMirror:
		p := 2 * n
		i %= p
		if i < 0 {
			i += p
		}
		if i >= n {
			i = p - 1 - i
		}
		return i
	default:
		i %= n
		if i < 0 {
			i += n
		}
		return i
	}
}

// Sample samples img at the normalized coordinates uv.
func (s *Sampler) Sample(img *Image, uv linear.V2) linear.V4 {
	w, h := img.width, img.height
	x := uv[0] * float32(w)
	y := uv[1] * float32(h)
	if s.Filter == FNearest {
		ix := address(int(math32.Floor(x)), w, s.AddrU)
		iy := address(int(math32.Floor(y)), h, s.AddrV)
		return img.At(ix, iy)
	}
	x -= 0.5
	y -= 0.5
	fx, fy := math32.Floor(x), math32.Floor(y)
	tx, ty := x-fx, y-fy
	x0 := address(int(fx), w, s.AddrU)
	x1 := address(int(fx)+1, w, s.AddrU)
	y0 := address(int(fy), h, s.AddrV)
	y1 := address(int(fy)+1, h, s.AddrV)
	var c linear.V4
	for i := range c {
		top := linear.Lerp(img.At(x0, y0)[i], img.At(x1, y0)[i], tx)
		bot := linear.Lerp(img.At(x0, y1)[i], img.At(x1, y1)[i], tx)
		c[i] = linear.Lerp(top, bot, ty)
	}
	return c
}

// Ref binds an Image to a Sampler.
// The zero value is an unbound reference.
type Ref struct {
	Image   *Image
	Sampler Sampler
}

// Bound returns whether r refers to an image.
func (r *Ref) Bound() bool { return r.Image != nil }

// Sample samples r at uv, or returns dfl if r is
// unbound.
func (r *Ref) Sample(uv linear.V2, dfl linear.V4) linear.V4 {
	if r.Image == nil {
		return dfl
	}
	return r.Sampler.Sample(r.Image, uv)
}
