// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package light

import (
	"testing"

	"github.com/gviegas/stereo/linear"
)

func near(a, b, eps float32) bool { return a-b <= eps && b-a <= eps }

func TestAmbient(t *testing.T) {
	var sh SH
	c := linear.V3{0.25, 0.5, 1}
	sh.Ambient(&c)
	for _, n := range [...]linear.V3{
		{1, 0, 0},
		{0, -1, 0},
		{0, 0, 1},
		{0.6, 0.8, 0},
	} {
		e := sh.Irradiance(&n)
		for i := range e {
			if !near(e[i], c[i], 1e-5) {
				t.Fatalf("SH.Irradiance(%v)\nhave %v\nwant %v", n, e, c)
			}
		}
	}
	if d := sh.Dominant(); d != (linear.V3{0, 1, 0}) {
		t.Fatalf("SH.Dominant\nhave %v\nwant [0 1 0]", d)
	}
}

func TestDirectional(t *testing.T) {
	var sh SH
	sh.Add(&Directional{
		Dir:       linear.V3{0, 0, -2},
		Color:     linear.V3{1, 1, 1},
		Intensity: 1,
	})
	toward := linear.V3{0, 0, 1}
	away := linear.V3{0, 0, -1}
	side := linear.V3{1, 0, 0}
	et := sh.Irradiance(&toward)
	ea := sh.Irradiance(&away)
	es := sh.Irradiance(&side)
	// The order-2 projection of a clamped cosine peaks
	// at 1/4 + 1/2 + 5/16.
	if !near(et[0], 1.0625, 1e-3) {
		t.Fatalf("SH.Irradiance facing the light\nhave %v\nwant ≈1.0625", et[0])
	}
	if !(et[0] > es[0] && es[0] > ea[0]) {
		t.Fatalf("SH.Irradiance: expected falloff away from the light\nhave %v, %v, %v", et, es, ea)
	}
	d := sh.Dominant()
	if !near(d[0], 0, 1e-5) || !near(d[1], 0, 1e-5) || !near(d[2], 1, 1e-5) {
		t.Fatalf("SH.Dominant\nhave %v\nwant [0 0 1]", d)
	}

	sh.Scale(0)
	if e := sh.Irradiance(&toward); e != (linear.V3{}) {
		t.Fatalf("SH.Scale(0)\nhave %v\nwant zero irradiance", e)
	}
}

func TestDefault(t *testing.T) {
	sh := Default()
	up := linear.V3{0, 1, 0}
	down := linear.V3{0, -1, 0}
	eu := sh.Irradiance(&up)
	ed := sh.Irradiance(&down)
	if eu[1] <= ed[1] {
		t.Fatalf("Default: sky should be brighter than ground\nhave %v (up), %v (down)", eu, ed)
	}
	if d := sh.Dominant(); d[1] <= 0 {
		t.Fatalf("Default: SH.Dominant should point up\nhave %v", d)
	}
}
