// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package light implements the lighting environment
// used to estimate incoming light at a surface.
//
// The environment is stored as 9 spherical harmonics
// coefficients (bands 0 to 2) which are already
// convolved with a clamped cosine lobe, so that
// evaluating them for a normal yields irradiance.
package light

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/stereo/linear"
)

// Basis constants of the real spherical harmonics.
const (
	y00 = 0.282095
	y1m = 0.488603
	y2a = 1.092548
	y20 = 0.315392
	y22 = 0.546274
)

// Cosine lobe convolution weights per band.
const (
	a0 = math32.Pi
	a1 = 2 * math32.Pi / 3
	a2 = math32.Pi / 4
)

// SH is a set of RGB spherical harmonics coefficients.
// The zero value is a valid, unlit environment.
type SH [9]linear.V3

// basis evaluates the 9 basis functions for direction n.
func basis(n *linear.V3) [9]float32 {
	x, y, z := n[0], n[1], n[2]
	return [9]float32{
		y00,
		y1m * y,
		y1m * z,
		y1m * x,
		y2a * x * y,
		y2a * y * z,
		y20 * (3*z*z - 1),
		y2a * x * z,
		y22 * (x*x - y*y),
	}
}

// Irradiance returns the irradiance estimate for the
// given world-space normal.
// n should be a unit vector; it is not normalized.
// The result is not clamped.
func (sh *SH) Irradiance(n *linear.V3) (e linear.V3) {
	b := basis(n)
	for i := range sh {
		var c linear.V3
		c.Scale(b[i], &sh[i])
		e.Add(&e, &c)
	}
	return
}

// Ambient adds uniform irradiance to sh.
func (sh *SH) Ambient(color *linear.V3) {
	var c linear.V3
	c.Scale(1/y00, color)
	sh[0].Add(&sh[0], &c)
}

// Directional describes a distant light source.
type Directional struct {
	// Direction towards which the light travels.
	// It need not be normalized.
	Dir linear.V3
	// Linear RGB color.
	Color     linear.V3
	Intensity float32
}

// Add projects the directional light l into sh.
func (sh *SH) Add(l *Directional) {
	var d linear.V3
	d.Scale(-1, &l.Dir)
	d.Norm(&d)
	var c linear.V3
	c.Scale(l.Intensity, &l.Color)
	b := basis(&d)
	for i := range sh {
		var w float32
		switch {
		case i == 0:
			w = a0
		case i < 4:
			w = a1
		default:
			w = a2
		}
		var s linear.V3
		s.Scale(b[i]*w, &c)
		sh[i].Add(&sh[i], &s)
	}
}

// Scale multiplies every coefficient of sh by s.
func (sh *SH) Scale(s float32) {
	for i := range sh {
		sh[i].Scale(s, &sh[i])
	}
}

// luma returns the Rec. 709 luminance of c.
func luma(c *linear.V3) float32 {
	return 0.2126*c[0] + 0.7152*c[1] + 0.0722*c[2]
}

// Dominant returns the unit direction pointing towards
// the dominant incoming light, as implied by the linear
// band of sh.
// If sh has no directional component, it returns +Y.
func (sh *SH) Dominant() linear.V3 {
	d := linear.V3{luma(&sh[3]), luma(&sh[1]), luma(&sh[2])}
	if d.Dot(&d) < 1e-12 {
		return linear.V3{0, 1, 0}
	}
	d.Norm(&d)
	return d
}

// Default returns the environment used when none is
// provided: a white sky light from above plus a dim
// ambient term.
func Default() SH {
	var sh SH
	sh.Ambient(&linear.V3{0.18, 0.2, 0.24})
	sh.Add(&Directional{
		Dir:       linear.V3{-0.3, -1, -0.2},
		Color:     linear.V3{1, 0.97, 0.92},
		Intensity: 0.9,
	})
	return sh
}
