// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package material

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/stereo/linear"
	"github.com/gviegas/stereo/surface"
)

// Water is a translucent PBR material whose texture
// coordinates ripple and scroll over time.
type Water struct {
	base
	lit
	speed  float32
	ripple linear.V4
	scroll linear.V2
}

func newWater(base base, b block) *Water {
	return &Water{
		base:   base,
		lit:    newLit(b),
		speed:  b.float("time"),
		ripple: b.v4("ripple"),
		scroll: b.v2("scroll"),
	}
}

// distort returns the coordinates used to sample the
// diffuse/emission images and the metallic-roughness/
// occlusion images at time t.
// Both equal uv when t is zero.
func (m *Water) distort(uv linear.V2, t float32) (linear.V2, linear.V2) {
	s := math32.Sin(t)
	d := linear.V2{
		m.ripple[0] * s * math32.Sin(m.ripple[2]*uv[1]+t),
		m.ripple[1] * s * math32.Cos(m.ripple[3]*uv[0]+t),
	}
	uv.Add(&uv, &d)
	var off linear.V2
	off.Scale(t, &m.scroll)
	off.Add(&off, &uv)
	return uv, off
}

// Shade implements Material.
// The alpha of the material color controls translucency.
func (m *Water) Shade(clock float32, f *Fragment) surface.Output {
	uv := transformUV(f.UV, m.texTrans)
	uv, uvMR := m.distort(uv, clock*m.speed)
	in := m.sample(&m.tex, f, uv, uvMR)
	return surface.Output{Color: in.shade(f), Blend: surface.BAlpha}
}
