// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/stereo/engine/material"
	"github.com/gviegas/stereo/linear"
)

type viewport struct {
	width  int
	height int
}

// fragFunc receives every fragment that rasterize
// produces. f is only valid during the call.
type fragFunc func(x, y int, depth float32, f *material.Fragment)

// edge is the edge function of the directed edge a→b
// at p.
func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// topLeft reports whether the edge a→b of a triangle
// that is clockwise on screen is a top or a left edge.
func topLeft(ax, ay, bx, by float32) bool {
	return (ay == by && bx > ax) || by < ay
}

// rasterize scan-converts a triangle in clip space,
// calling fn for each covered pixel center.
// Triangles with any vertex at w <= 0 are dropped.
// Counter-clockwise triangles (in normalized device
// coordinates) are front facing.
// It returns the number of fragments produced.
func rasterize(tri *[3]*varying, vp viewport, cull material.Cull, light linear.V3, fn fragFunc) int {
	var sx, sy, sz, iw [3]float32
	for i, v := range tri {
		w := v.clip[3]
		if !(w > 0) {
			return 0
		}
		iw[i] = 1 / w
		sx[i] = (v.clip[0]*iw[i]*0.5 + 0.5) * float32(vp.width)
		sy[i] = (0.5 - v.clip[1]*iw[i]*0.5) * float32(vp.height)
		sz[i] = v.clip[2]*iw[i]*0.5 + 0.5
	}
	area := edge(sx[0], sy[0], sx[1], sy[1], sx[2], sy[2])
	if !(area > 0 || area < 0) || math32.IsInf(area, 0) {
		return 0
	}
	front := area < 0
	switch cull {
	case material.CullBack:
		if !front {
			return 0
		}
	case material.CullFront:
		if front {
			return 0
		}
	}
	o := [3]int{0, 1, 2}
	if area < 0 {
		o[1], o[2] = 2, 1
		area = -area
	}

	fw, fh := float32(vp.width-1), float32(vp.height-1)
	x0 := int(linear.Clamp(math32.Floor(min(sx[0], sx[1], sx[2])), 0, fw))
	x1 := int(linear.Clamp(math32.Ceil(max(sx[0], sx[1], sx[2])), 0, fw))
	y0 := int(linear.Clamp(math32.Floor(min(sy[0], sy[1], sy[2])), 0, fh))
	y1 := int(linear.Clamp(math32.Ceil(max(sy[0], sy[1], sy[2])), 0, fh))

	var f material.Fragment
	f.Light = light
	n := 0
	for y := y0; y <= y1; y++ {
		py := float32(y) + 0.5
	pixel:
		for x := x0; x <= x1; x++ {
			px := float32(x) + 0.5
			var b [3]float32
			for e := range 3 {
				a, c := o[(e+1)%3], o[(e+2)%3]
				w := edge(sx[a], sy[a], sx[c], sy[c], px, py)
				if w < 0 || (w == 0 && !topLeft(sx[a], sy[a], sx[c], sy[c])) {
					continue pixel
				}
				b[o[e]] = w / area
			}
			z := b[0]*sz[0] + b[1]*sz[1] + b[2]*sz[2]
			if z < 0 || z > 1 {
				continue
			}
			// Perspective-correct weights.
			var s float32
			for i := range b {
				b[i] *= iw[i]
				s += b[i]
			}
			for i := range b {
				b[i] /= s
			}
			interpolate(&f, tri, &b)
			fn(x, y, z, &f)
			n++
		}
	}
	return n
}

// interpolate sets the attributes of f from the
// vertices of tri weighted by b.
func interpolate(f *material.Fragment, tri *[3]*varying, b *[3]float32) {
	f.World = linear.V3{}
	f.Normal = linear.V3{}
	f.UV = linear.V2{}
	f.Color = linear.V4{}
	f.Irradiance = linear.V3{}
	f.View = linear.V3{}
	for i, v := range tri {
		w := b[i]
		for j := range 3 {
			f.World[j] += v.world[j] * w
			f.Normal[j] += v.normal[j] * w
			f.Irradiance[j] += v.irr[j] * w
			f.View[j] += v.view[j] * w
		}
		f.UV[0] += v.uv[0] * w
		f.UV[1] += v.uv[1] * w
		for j := range 4 {
			f.Color[j] += v.color[j] * w
		}
	}
}
