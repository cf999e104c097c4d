// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package material

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/stereo/engine/texture"
	"github.com/gviegas/stereo/linear"
	"github.com/gviegas/stereo/surface"
)

// Cutout is an unlit material that discards fragments
// whose diffuse alpha is below a cutoff.
// Fragments that pass are written with depth zero.
type Cutout struct {
	base
	color    linear.V4
	texTrans linear.V4
	cutoff   float32
}

func newCutout(base base, b block) *Cutout {
	return &Cutout{
		base:     base,
		color:    b.v4("color"),
		texTrans: b.v4("tex_trans"),
		cutoff:   b.float("cutoff"),
	}
}

// Shade implements Material.
// A sample equal to the cutoff passes.
func (m *Cutout) Shade(_ float32, f *Fragment) surface.Output {
	uv := transformUV(f.UV, m.texTrans)
	s := m.tex.Diffuse.Sample(uv, texture.White)
	if s[3] < m.cutoff {
		return surface.Output{Discard: true}
	}
	return surface.Output{
		Color:    tint(tint(s, f.Color), m.color),
		Blend:    surface.BOpaque,
		Depth:    0,
		DepthSet: true,
	}
}

// blinkPeriod bounds the phase of Blink.
const blinkPeriod = 100

// Blink is an unlit, additive material whose intensity
// pulses with |sin(clock mod 100 * time)|.
type Blink struct {
	base
	color    linear.V4
	texTrans linear.V4
	speed    float32
}

func newBlink(base base, b block) *Blink {
	return &Blink{
		base:     base,
		color:    b.v4("color"),
		texTrans: b.v4("tex_trans"),
		speed:    b.float("time"),
	}
}

// Intensity returns the pulse factor at the given clock.
func (m *Blink) Intensity(clock float32) float32 {
	return math32.Abs(math32.Sin(linear.Mod(clock, blinkPeriod) * m.speed))
}

// Shade implements Material.
func (m *Blink) Shade(clock float32, f *Fragment) surface.Output {
	uv := transformUV(f.UV, m.texTrans)
	c := tint(tint(m.tex.Diffuse.Sample(uv, texture.White), f.Color), m.color)
	k := m.Intensity(clock)
	c[0] *= k
	c[1] *= k
	c[2] *= k
	return surface.Output{Color: c, Blend: surface.BAdd}
}
