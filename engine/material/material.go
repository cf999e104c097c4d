// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package material implements the material model used in
// the engine.
package material

import (
	"errors"

	"github.com/gviegas/stereo/engine/texture"
	"github.com/gviegas/stereo/linear"
	"github.com/gviegas/stereo/surface"
)

const matPrefix = "material: "

func newMatErr(reason string) error { return errors.New(matPrefix + reason) }

// Kind is the type of material kinds.
type Kind int

// Material kinds.
const (
	// Metallic-roughness PBR.
	KOpaque Kind = iota
	// PBR with scrolling ripples and alpha blending.
	KWater
	// PBR whose albedo and normal are computed from
	// a procedural brick pattern.
	KBrick
	// Unlit, alpha-tested, with depth forced to zero.
	KCutout
	// Unlit, additive, pulsing with time.
	KBlink
)

var kindNames = [...]string{
	KOpaque: "opaque",
	KWater:  "water",
	KBrick:  "brick",
	KCutout: "cutout",
	KBlink:  "blink",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, error) {
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}
	return -1, newMatErr("unknown kind: " + s)
}

// Render queues.
// Batches are drawn in increasing queue order, so
// translucent kinds blend over everything opaque.
const (
	QOpaque      = 0
	QTranslucent = 1000
)

// Queue returns the render queue of kind k.
func (k Kind) Queue() int {
	switch k {
	case KWater, KBlink:
		return QTranslucent
	}
	return QOpaque
}

// Cull is the type of face culling modes.
type Cull int

// Cull modes.
const (
	CullNone Cull = iota
	CullBack
	CullFront
)

// Textures are the images bound to a material.
// Unbound slots sample as texture.White.
type Textures struct {
	Diffuse    texture.Ref
	Emission   texture.Ref
	MetalRough texture.Ref
	Occlusion  texture.Ref
}

// Fragment is the interpolated data of a single covered
// pixel.
type Fragment struct {
	World  linear.V3
	Normal linear.V3
	UV     linear.V2
	// Color is the vertex color times the instance tint.
	Color linear.V4
	// Irradiance is evaluated per vertex and
	// interpolated.
	Irradiance linear.V3
	// View points from the surface towards the eye
	// and is not normalized.
	View linear.V3
	// Light points towards the dominant light.
	Light linear.V3
}

// Material is the interface that material kinds
// implement.
// Shade must not modify the material, so a Material can
// be shared by concurrent shading calls.
type Material interface {
	Kind() Kind
	Cull() Cull
	// Queue is the render queue of the material: its
	// kind's queue plus the queue offset.
	Queue() int
	// Depth returns the depth state of the material.
	Depth() (surface.DepthTest, surface.DepthWrite)
	// Shade computes the output of f at the given
	// animation clock, in seconds.
	Shade(clock float32, f *Fragment) surface.Output
}

// Desc describes a material to be created by New.
type Desc struct {
	Kind     Kind
	Params   Params
	Textures Textures
	Cull     Cull
	// QueueOffset moves the material within the render
	// queue. Positive values draw later.
	QueueOffset int
	DepthTest   surface.DepthTest
	DepthWrite  surface.DepthWrite
}

// New creates a new material of kind d.Kind.
// Parameters that d.Params does not set take the
// defaults listed by Kind.Decls.
func New(d *Desc) (Material, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	b := resolve(d.Kind, &d.Params)
	base := base{
		kind:  d.Kind,
		cull:  d.Cull,
		queue: d.Kind.Queue() + d.QueueOffset,
		test:  d.DepthTest,
		write: d.DepthWrite,
		tex:   d.Textures,
	}
	switch d.Kind {
	case KOpaque:
		return &Opaque{base, newLit(b)}, nil
	case KWater:
		return newWater(base, b), nil
	case KBrick:
		return newBrick(base, b), nil
	case KCutout:
		return newCutout(base, b), nil
	default:
		return newBlink(base, b), nil
	}
}

// Validate checks that d describes a valid material.
// Shading never validates, so this is the only place
// where parameter ranges are enforced.
func (d *Desc) Validate() error {
	if d.Kind < KOpaque || d.Kind > KBlink {
		return newMatErr("undefined Kind constant")
	}
	if d.Cull < CullNone || d.Cull > CullFront {
		return newMatErr("undefined Cull constant")
	}
	if d.DepthTest < surface.DLess || d.DepthTest > surface.DNever {
		return newMatErr("undefined DepthTest constant")
	}
	if d.DepthWrite < surface.DWAuto || d.DepthWrite > surface.DWOff {
		return newMatErr("undefined DepthWrite constant")
	}
	for _, r := range [...]*texture.Ref{
		&d.Textures.Diffuse,
		&d.Textures.Emission,
		&d.Textures.MetalRough,
		&d.Textures.Occlusion,
	} {
		if err := r.Sampler.Validate(); err != nil {
			return err
		}
	}
	for _, dc := range d.Kind.Decls() {
		id := ParamID(dc.Name)
		if v, ok := d.Params.m[id]; ok && v.typ != dc.Type {
			return newMatErr(dc.Name + " must be of type " + dc.Type.String())
		}
	}
	b := resolve(d.Kind, &d.Params)
	for _, s := range [...]string{"metallic", "cutoff"} {
		if _, ok := b[s]; !ok {
			continue
		}
		if x := b.float(s); !(x >= 0 && x <= 1) {
			return newMatErr(s + " not in [0.0, 1.0]")
		}
	}
	if _, ok := b["roughness"]; ok {
		if x := b.float("roughness"); !(x > 0 && x <= 1) {
			return newMatErr("roughness not in (0.0, 1.0]")
		}
	}
	if tt := b.v4("tex_trans"); !(tt[2] >= 0 && tt[3] >= 0) {
		return newMatErr("negative tex_trans scale")
	}
	if _, ok := b["edge_limit"]; ok {
		if el := b.v2("edge_limit"); !(el[0] >= 0 && el[0] <= el[1] && el[1] <= 1) {
			return newMatErr("edge_limit not ordered within [0.0, 1.0]")
		}
	}
	if _, ok := b["size_factors"]; ok {
		if sf := b.v4("size_factors"); !(sf[0] > 0 && sf[1] > 0) {
			return newMatErr("size_factors.xy must be positive")
		}
	}
	return nil
}

type base struct {
	kind  Kind
	cull  Cull
	queue int
	test  surface.DepthTest
	write surface.DepthWrite
	tex   Textures
}

func (b *base) Kind() Kind { return b.kind }
func (b *base) Cull() Cull { return b.cull }
func (b *base) Queue() int { return b.queue }

func (b *base) Depth() (surface.DepthTest, surface.DepthWrite) { return b.test, b.write }

// transformUV applies a tex_trans value (xy offset,
// zw scale) to uv.
func transformUV(uv linear.V2, tt linear.V4) linear.V2 {
	return linear.V2{uv[0]*tt[2] + tt[0], uv[1]*tt[3] + tt[1]}
}

func tint(a, b linear.V4) (c linear.V4) {
	for i := range c {
		c[i] = a[i] * b[i]
	}
	return
}
