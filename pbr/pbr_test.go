// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package pbr

import (
	"math"
	"testing"

	"github.com/gviegas/stereo/linear"
)

func near(a, b, eps float32) bool { return a-b <= eps && b-a <= eps }

var (
	up    = linear.V3{0, 1, 0}
	slant = linear.V3{0.3, 1, 0.1}
	white = linear.V3{1, 1, 1}
)

func TestOcclusion(t *testing.T) {
	albedo := linear.V4{0.6, 0.5, 0.4, 1}
	d, s := Eval(albedo, white, 1, 0.3, 0.5, slant, up, up)
	var sum linear.V3
	sum.Add(&d, &s)
	if c := Shade(albedo, white, 1, 0.3, 0.5, slant, up, up); c != sum {
		t.Fatalf("Shade(ao=1)\nhave %v\nwant %v", c, sum)
	}
	// Values above 1 are clamped.
	if c := Shade(albedo, white, 7, 0.3, 0.5, slant, up, up); c != sum {
		t.Fatalf("Shade(ao=7)\nhave %v\nwant %v", c, sum)
	}
	half := Shade(albedo, white, 0.5, 0.3, 0.5, slant, up, up)
	for i := range half {
		if !near(half[i], sum[i]/2, 1e-6) {
			t.Fatalf("Shade(ao=0.5)\nhave %v\nwant %v/2", half, sum)
		}
	}
	if c := Shade(albedo, white, 0, 0.3, 0.5, slant, up, up); c != (linear.V3{}) {
		t.Fatalf("Shade(ao=0)\nhave %v\nwant [0 0 0]", c)
	}
}

func TestMetallic(t *testing.T) {
	albedo := linear.V4{0.8, 0.2, 0.1, 1}
	prev, _ := Eval(albedo, white, 1, 0, 0.4, up, up, up)
	for _, m := range [...]float32{0.25, 0.5, 0.75, 1} {
		d, _ := Eval(albedo, white, 1, m, 0.4, up, up, up)
		for i := range d {
			if d[i] > prev[i] {
				t.Fatalf("Eval: diffuse should not increase with metallic\nhave %v at %v\nprev %v", d, m, prev)
			}
		}
		prev = d
	}
	if prev != (linear.V3{}) {
		t.Fatalf("Eval(metallic=1): diffuse\nhave %v\nwant [0 0 0]", prev)
	}

	// With V = L = N the Fresnel term equals F0.
	_, s0 := Eval(albedo, white, 1, 0, 0.4, up, up, up)
	if s0[0] != s0[1] || s0[1] != s0[2] {
		t.Fatalf("Eval(metallic=0): specular should be untinted\nhave %v", s0)
	}
	_, s1 := Eval(albedo, white, 1, 1, 0.4, up, up, up)
	if r := s1[0] / s1[1]; !near(r, 4, 1e-4) {
		t.Fatalf("Eval(metallic=1): specular ratio r/g\nhave %v\nwant 4", r)
	}
	if r := s1[1] / s1[2]; !near(r, 2, 1e-4) {
		t.Fatalf("Eval(metallic=1): specular ratio g/b\nhave %v\nwant 2", r)
	}
}

func TestRoughness(t *testing.T) {
	albedo := linear.V4{1, 1, 1, 1}
	c0 := Shade(albedo, white, 1, 0, 0, up, up, up)
	cm := Shade(albedo, white, 1, 0, MinRoughness, up, up, up)
	if c0 != cm {
		t.Fatalf("Shade(roughness=0)\nhave %v\nwant %v", c0, cm)
	}
	for i := range c0 {
		if math.IsInf(float64(c0[i]), 0) || math.IsNaN(float64(c0[i])) {
			t.Fatalf("Shade(roughness=0)\nhave %v\nwant finite", c0)
		}
	}
	// A mirror-like highlight exceeds 1 and is
	// left unclamped.
	if c0[0] <= 1 {
		t.Fatalf("Shade: highlight\nhave %v\nwant > 1", c0[0])
	}
	rough := Shade(albedo, white, 1, 0, 1, up, up, up)
	if rough[0] >= c0[0] {
		t.Fatalf("Shade: rough highlight should be dimmer\nhave %v\nsmooth %v", rough, c0)
	}
}

func TestBackLit(t *testing.T) {
	albedo := linear.V4{0.5, 0.5, 0.5, 1}
	below := linear.V3{0.2, -1, 0}
	_, s := Eval(albedo, white, 1, 0.5, 0.5, up, up, below)
	if s != (linear.V3{}) {
		t.Fatalf("Eval: light behind the surface\nhave %v\nwant no specular", s)
	}
}

func TestDegenerate(t *testing.T) {
	albedo := linear.V4{0.5, 0.5, 0.5, 1}
	c := Shade(albedo, white, 1, 0.5, 0.5, up, linear.V3{}, up)
	if !math.IsNaN(float64(c[0])) {
		t.Fatalf("Shade(zero normal)\nhave %v\nwant NaN", c)
	}
}
