// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gviegas/stereo/linear"
)

// View is one simultaneous viewpoint of a frame.
// Slot selects the target layer that receives the
// view's fragments.
type View struct {
	ViewProj linear.M4
	CamPos   linear.V3
	Slot     int
}

// Eye slots produced by StereoRig.
const (
	LeftSlot = iota
	RightSlot
)

// StereoRig describes a pair of parallel eye cameras.
// Position and Target are the midpoint between the eyes
// and what it looks at. IPD is the distance between the
// eyes and FovY is the vertical field of view in radians.
type StereoRig struct {
	Position linear.V3
	Target   linear.V3
	Up       linear.V3
	IPD      float32
	FovY     float32
	Aspect   float32
	Near     float32
	Far      float32
}

// Views returns the left (LeftSlot) and right
// (RightSlot) views of r.
func (r *StereoRig) Views() []View {
	var fwd, right linear.V3
	fwd.Sub(&r.Target, &r.Position)
	right.Cross(&fwd, &r.Up)
	right.Norm(&right)
	proj := mgl32.Perspective(r.FovY, r.Aspect, r.Near, r.Far)
	views := make([]View, 2)
	for i, s := range [2]float32{-0.5, 0.5} {
		var off, eye, tgt linear.V3
		off.Scale(s*r.IPD, &right)
		eye.Add(&r.Position, &off)
		tgt.Add(&r.Target, &off)
		views[i] = newView(&proj, &eye, &tgt, &r.Up, i)
	}
	return views
}

// MonoView returns a single view at eye looking towards
// target, for previews.
func MonoView(eye, target, up linear.V3, fovY, aspect, near, far float32, slot int) View {
	proj := mgl32.Perspective(fovY, aspect, near, far)
	return newView(&proj, &eye, &target, &up, slot)
}

func newView(proj *mgl32.Mat4, eye, target, up *linear.V3, slot int) View {
	look := mgl32.LookAtV(vec3(eye), vec3(target), vec3(up))
	vp := proj.Mul4(look)
	return View{
		ViewProj: fromMat4(&vp),
		CamPos:   *eye,
		Slot:     slot,
	}
}

func vec3(v *linear.V3) mgl32.Vec3 { return mgl32.Vec3{v[0], v[1], v[2]} }

// fromMat4 converts a column-major mgl32.Mat4 into
// a linear.M4.
func fromMat4(m *mgl32.Mat4) (n linear.M4) {
	for i := range n {
		for j := range n[i] {
			n[i][j] = m[i*4+j]
		}
	}
	return
}
