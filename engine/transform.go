// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"github.com/gviegas/stereo/linear"
)

// ToWorld transforms a position in object space into
// world space. World matrices are assumed to be affine,
// so the w of the result is dropped.
func ToWorld(local *linear.V3, world *linear.M4) linear.V3 {
	p := linear.V4{local[0], local[1], local[2], 1}
	p.Mul(world, &p)
	return p.XYZ()
}

// ToClip transforms a position in world space into the
// clip space of a view.
func ToClip(world *linear.V3, viewProj *linear.M4) linear.V4 {
	p := linear.V4{world[0], world[1], world[2], 1}
	p.Mul(viewProj, &p)
	return p
}

// TransformNormal transforms a normal in object space
// by the upper 3x3 of world and renormalizes it.
// The result is unit length for any invertible world
// matrix. Singular matrices produce non-finite values.
func TransformNormal(local *linear.V3, world *linear.M4) linear.V3 {
	var u linear.M3
	u.Upper(world)
	var n linear.V3
	n.Mul(&u, local)
	n.Norm(&n)
	return n
}

// ViewDirection returns the vector from a position in
// world space to the camera. It is not normalized.
func ViewDirection(world, camPos *linear.V3) linear.V3 {
	var d linear.V3
	d.Sub(camPos, world)
	return d
}

// ToWorld transforms local by inst.World.
func (inst *Instance) ToWorld(local *linear.V3) linear.V3 { return ToWorld(local, &inst.World) }

// TransformNormal transforms local by the rotational
// part of inst.World.
func (inst *Instance) TransformNormal(local *linear.V3) linear.V3 {
	return TransformNormal(local, &inst.World)
}

// ToClip transforms world by v.ViewProj.
func (v *View) ToClip(world *linear.V3) linear.V4 { return ToClip(world, &v.ViewProj) }

// ViewDirection returns the vector from world to
// v.CamPos.
func (v *View) ViewDirection(world *linear.V3) linear.V3 { return ViewDirection(world, &v.CamPos) }
