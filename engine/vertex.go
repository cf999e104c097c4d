// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"github.com/gviegas/stereo/engine/internal/shader"
	"github.com/gviegas/stereo/engine/mesh"
	"github.com/gviegas/stereo/light"
	"github.com/gviegas/stereo/linear"
)

// layouts is the packed form of a Frame, as read by the
// vertex stage.
type layouts struct {
	frame shader.FrameLayout
	views []shader.ViewLayout
	insts []shader.InstanceLayout
}

// pack packs f into layouts.
func pack(f *Frame) *layouts {
	l := &layouts{
		views: make([]shader.ViewLayout, len(f.Views)),
		insts: make([]shader.InstanceLayout, len(f.Instances)),
	}
	l.frame.SetSH((*[shader.NSH]linear.V3)(&f.Light))
	l.frame.SetClock(f.Clock)
	l.frame.SetViewCount(int32(len(f.Views)))
	d := f.Light.Dominant()
	l.frame.SetLight(&d)
	for i := range f.Views {
		v := &f.Views[i]
		l.views[i].SetVP(&v.ViewProj)
		l.views[i].SetCamera(&v.CamPos)
		l.views[i].SetSlot(int32(v.Slot))
	}
	for i := range f.Instances {
		inst := &f.Instances[i]
		l.insts[i].SetWorld(&inst.World)
		l.insts[i].SetTint(&inst.Color)
	}
	return l
}

// varying is the output of the vertex stage for one
// vertex.
type varying struct {
	clip   linear.V4
	world  linear.V3
	normal linear.V3
	uv     linear.V2
	color  linear.V4
	irr    linear.V3
	view   linear.V3
}

// vertex runs the vertex stage of batch b for the
// combined index k, writing one varying per element of
// verts into out. It returns the decoded view index.
func (l *layouts) vertex(b *Batch, k int, verts []mesh.Vertex, out []varying) int {
	i, v := Demux(k, int(l.frame.ViewCount()))
	inst := &l.insts[b.Instances[i]]
	view := &l.views[v]
	world := inst.World()
	vp := view.VP()
	cam := view.Camera()
	tint := inst.Tint()
	sh := light.SH(l.frame.SH())
	for j := range verts {
		vert := &verts[j]
		o := &out[j]
		o.world = ToWorld(&vert.Pos, &world)
		o.clip = ToClip(&o.world, &vp)
		o.normal = TransformNormal(&vert.Norm, &world)
		o.uv = vert.UV
		o.color.Hadamard(&vert.Color, &tint)
		o.irr = sh.Irradiance(&o.normal)
		o.view = ViewDirection(&o.world, &cam)
	}
	return v
}
