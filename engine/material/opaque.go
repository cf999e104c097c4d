// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package material

import (
	"github.com/gviegas/stereo/engine/texture"
	"github.com/gviegas/stereo/linear"
	"github.com/gviegas/stereo/pbr"
	"github.com/gviegas/stereo/surface"
)

// lit holds the parameters common to PBR kinds.
type lit struct {
	color    linear.V4
	texTrans linear.V4
	metallic float32
	rough    float32
	emission linear.V3
}

func newLit(b block) lit {
	return lit{
		color:    b.v4("color"),
		texTrans: b.v4("tex_trans"),
		metallic: b.float("metallic"),
		rough:    b.float("roughness"),
		emission: b.v3("emission_factor"),
	}
}

// litInput are the inputs of the PBR kernel for one
// fragment, plus alpha and emission.
type litInput struct {
	albedo    linear.V4
	metallic  float32
	roughness float32
	ao        float32
	normal    linear.V3
	emission  linear.V3
}

// sample derives the PBR inputs from textures.
// uv addresses the diffuse and emission images, while
// uvMR addresses the metallic-roughness and occlusion
// images.
func (l *lit) sample(tex *Textures, f *Fragment, uv, uvMR linear.V2) (in litInput) {
	in.albedo = tint(tint(tex.Diffuse.Sample(uv, texture.White), f.Color), l.color)
	mr := tex.MetalRough.Sample(uvMR, texture.White)
	in.metallic = mr[2] * l.metallic
	in.roughness = mr[1] * l.rough
	in.ao = tex.Occlusion.Sample(uvMR, texture.White)[0]
	in.normal = f.Normal
	em := tex.Emission.Sample(uv, texture.White)
	in.emission = em.XYZ()
	in.emission.Hadamard(&in.emission, &l.emission)
	return
}

// shade evaluates the PBR kernel and adds emission.
func (in *litInput) shade(f *Fragment) linear.V4 {
	c := pbr.Shade(in.albedo, f.Irradiance, in.ao, in.metallic, in.roughness, f.View, in.normal, f.Light)
	c.Add(&c, &in.emission)
	return linear.V4{c[0], c[1], c[2], in.albedo[3]}
}

// Opaque is a metallic-roughness PBR material.
type Opaque struct {
	base
	lit
}

// Shade implements Material.
func (m *Opaque) Shade(_ float32, f *Fragment) surface.Output {
	uv := transformUV(f.UV, m.texTrans)
	in := m.sample(&m.tex, f, uv, uv)
	return surface.Output{Color: in.shade(f), Blend: surface.BOpaque}
}
