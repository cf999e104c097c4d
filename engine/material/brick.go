// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package material

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/stereo/linear"
	"github.com/gviegas/stereo/surface"
)

// mortarWidth is the width of vertical lines, as a
// fraction of a brick.
const mortarWidth = 0.01

// Brick is a PBR material whose albedo and normal come
// from a procedural running-bond brick pattern.
// Metallic, roughness and occlusion are still sampled
// from textures.
type Brick struct {
	base
	lit
	bump      float32
	edgeLimit linear.V2
	size      linear.V2
	noise     float32
	step      float32
	line      linear.V3
	useOcc    bool
}

func newBrick(base base, b block) *Brick {
	sf := b.v4("size_factors")
	return &Brick{
		base:      base,
		lit:       newLit(b),
		bump:      b.float("edge_pos"),
		edgeLimit: b.v2("edge_limit"),
		size:      linear.V2{sf[0], sf[1]},
		noise:     sf[2],
		step:      sf[3],
		line:      b.v3("line_color"),
		useOcc:    b.boolean("use_occlusion"),
	}
}

// pattern computes the procedural color at uv.
// Pixels on a vertical edge, or outside the edge_limit
// band of a row, are set to the line color.
func (m *Brick) pattern(uv linear.V2) linear.V3 {
	p := linear.V2{uv[0] * m.size[0], uv[1] * m.size[1]}
	row := math32.Floor(p[1])
	if linear.Mod(row, 2) == 1 {
		p[0] += 0.5
	}
	cell := linear.V2{math32.Floor(p[0]), row}
	fx := p[0] - cell[0]
	fy := p[1] - cell[1]
	if fx >= 1-mortarWidth || fy < m.edgeLimit[0] || fy > m.edgeLimit[1] {
		return m.line
	}
	// Higher frequencies contribute less.
	n := 0.5*math32.Sin(cell[0]*1.7+cell[1]*3.1) +
		0.3*math32.Cos(cell[0]*5.3-cell[1]*2.9) +
		0.2*math32.Sin((cell[0]+cell[1])*11.7)
	c := m.color.XYZ()
	c.Scale(1+m.noise*n, &c)
	return c
}

func luma(c linear.V3) float32 { return 0.299*c[0] + 0.587*c[1] + 0.114*c[2] }

// normal derives a packed tangent-space normal from
// finite differences of the pattern's luminance.
// The result is in [0, 1] per component (n*0.5+0.5)
// and is used as is by Shade.
func (m *Brick) normal(uv linear.V2) linear.V3 {
	h := m.step
	l := luma(m.pattern(linear.V2{uv[0] - h, uv[1]}))
	r := luma(m.pattern(linear.V2{uv[0] + h, uv[1]}))
	d := luma(m.pattern(linear.V2{uv[0], uv[1] - h}))
	u := luma(m.pattern(linear.V2{uv[0], uv[1] + h}))
	n := linear.V3{(l - r) * m.bump, (d - u) * m.bump, 1}
	n.Norm(&n)
	flat := linear.V3{0, 0, 1}
	n.Lerp(&n, &flat, 0.5)
	n.Norm(&n)
	half := linear.V3{0.5, 0.5, 0.5}
	n.Hadamard(&n, &half)
	n.Add(&n, &half)
	return n
}

// Shade implements Material.
func (m *Brick) Shade(_ float32, f *Fragment) surface.Output {
	uv := transformUV(f.UV, m.texTrans)
	in := m.sample(&m.tex, f, uv, uv)
	c := m.pattern(uv)
	in.albedo = linear.V4{c[0] * f.Color[0], c[1] * f.Color[1], c[2] * f.Color[2], m.color[3] * f.Color[3]}
	in.normal = m.normal(uv)
	if !m.useOcc {
		in.ao = 1
	}
	return surface.Output{Color: in.shade(f), Blend: surface.BOpaque}
}
