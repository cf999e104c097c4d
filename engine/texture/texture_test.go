// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package texture

import (
	"image"
	stdcolor "image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gviegas/stereo/linear"
)

func near(a, b, eps float32) bool { return a-b <= eps && b-a <= eps }

// ramp creates a 4x1 image whose red channel is
// 0, 1, 2 and 3.
func ramp(t *testing.T) *Image {
	img, err := New(4, 1)
	if err != nil {
		t.Fatalf("New failed:\n%#v", err)
	}
	for x := range 4 {
		img.Set(x, 0, linear.V4{float32(x), 0, 0, 1})
	}
	return img
}

func TestNew(t *testing.T) {
	for _, c := range [...][2]int{{0, 1}, {1, 0}, {-1, 4}} {
		img, err := New(c[0], c[1])
		if err == nil || img != nil {
			t.Fatalf("New(%d, %d)\nhave %v, %v\nwant nil, error", c[0], c[1], img, err)
		}
		if !strings.HasPrefix(err.Error(), prefix) {
			t.Fatalf("New: error should be prefixed with %q", prefix)
		}
	}
	img, err := New(3, 2)
	if err != nil {
		t.Fatalf("New failed:\n%#v", err)
	}
	if img.Width() != 3 || img.Height() != 2 {
		t.Fatalf("Image size\nhave %dx%d\nwant 3x2", img.Width(), img.Height())
	}
	if c := img.At(2, 1); c != (linear.V4{}) {
		t.Fatalf("Image.At\nhave %v\nwant zero", c)
	}
}

func TestNearest(t *testing.T) {
	img := ramp(t)
	for _, c := range [...]struct {
		mode AddrMode
		u    float32
		want float32
	}{
		{AWrap, 0.125, 0},
		{AWrap, 0.875, 3},
		{AWrap, 1.125, 0},
		{AWrap, -0.125, 3},
		{AClamp, 1.5, 3},
		{AClamp, -3, 0},
		{AMirror, 1.125, 3},
		{AMirror, 1.875, 0},
		{AMirror, -0.125, 0},
	} {
		s := Sampler{Filter: FNearest, AddrU: c.mode}
		if have := s.Sample(img, linear.V2{c.u, 0.5}); have[0] != c.want {
			t.Fatalf("Sampler.Sample(mode %d, u %v)\nhave %v\nwant %v", c.mode, c.u, have[0], c.want)
		}
	}
}

func TestLinear(t *testing.T) {
	img := ramp(t)
	s := Sampler{Filter: FLinear, AddrU: AClamp, AddrV: AClamp}
	// Texel centers reproduce texel values.
	for x := range 4 {
		u := (float32(x) + 0.5) / 4
		if have := s.Sample(img, linear.V2{u, 0.5}); !near(have[0], float32(x), 1e-5) {
			t.Fatalf("Sampler.Sample at texel %d\nhave %v\nwant %v", x, have[0], x)
		}
	}
	// Halfway between texels 1 and 2.
	if have := s.Sample(img, linear.V2{0.5, 0.5}); !near(have[0], 1.5, 1e-5) {
		t.Fatalf("Sampler.Sample(0.5)\nhave %v\nwant 1.5", have[0])
	}
	// Wrapping blends the last texel with the first.
	s.AddrU = AWrap
	if have := s.Sample(img, linear.V2{1, 0.5}); !near(have[0], 1.5, 1e-5) {
		t.Fatalf("Sampler.Sample(1) wrapping\nhave %v\nwant 1.5", have[0])
	}
}

func TestRef(t *testing.T) {
	var r Ref
	if r.Bound() {
		t.Fatal("Ref.Bound: zero Ref should be unbound")
	}
	if c := r.Sample(linear.V2{0.3, 0.7}, White); c != White {
		t.Fatalf("Ref.Sample (unbound)\nhave %v\nwant %v", c, White)
	}
	if c := r.Sample(linear.V2{0.3, 0.7}, FlatNormal); c != FlatNormal {
		t.Fatalf("Ref.Sample (unbound)\nhave %v\nwant %v", c, FlatNormal)
	}
	red := linear.V4{1, 0, 0, 1}
	r.Image = Solid(red)
	for _, uv := range [...]linear.V2{{0, 0}, {0.5, 0.5}, {-3.2, 9.1}} {
		if c := r.Sample(uv, White); c != red {
			t.Fatalf("Ref.Sample(%v)\nhave %v\nwant %v", uv, c, red)
		}
	}
}

func TestSamplerValidate(t *testing.T) {
	if err := (&Sampler{}).Validate(); err != nil {
		t.Fatalf("Sampler.Validate (zero)\nhave %#v\nwant nil", err)
	}
	for _, s := range [...]Sampler{
		{Filter: -1},
		{Filter: FLinear + 1},
		{AddrU: AClamp + 1},
		{AddrV: -1},
	} {
		if err := s.Validate(); err == nil {
			t.Fatalf("Sampler.Validate(%+v)\nhave nil\nwant error", s)
		}
	}
}

func TestChecker(t *testing.T) {
	a := linear.V4{1, 1, 1, 1}
	b := linear.V4{0, 0, 0, 1}
	img, err := Checker(8, 8, 2, a, b)
	if err != nil {
		t.Fatalf("Checker failed:\n%#v", err)
	}
	for _, c := range [...]struct {
		x, y int
		want linear.V4
	}{
		{0, 0, a},
		{3, 3, a},
		{4, 0, b},
		{0, 4, b},
		{7, 7, a},
	} {
		if have := img.At(c.x, c.y); have != c.want {
			t.Fatalf("Checker At(%d, %d)\nhave %v\nwant %v", c.x, c.y, have, c.want)
		}
	}
	if _, err := Checker(8, 8, 0, a, b); err == nil {
		t.Fatal("Checker(n=0)\nhave nil\nwant error")
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 12, 21))
	src.SetNRGBA(10, 20, stdcolor.NRGBA{255, 255, 255, 255})
	src.SetNRGBA(11, 20, stdcolor.NRGBA{188, 0, 255, 128})

	img := FromImage(src, false)
	if img.Width() != 2 || img.Height() != 1 {
		t.Fatalf("FromImage size\nhave %dx%d\nwant 2x1", img.Width(), img.Height())
	}
	if c := img.At(0, 0); c != (linear.V4{1, 1, 1, 1}) {
		t.Fatalf("FromImage(linear) At(0, 0)\nhave %v\nwant [1 1 1 1]", c)
	}
	c := img.At(1, 0)
	if !near(c[0], 188.0/255, 1e-4) || c[1] != 0 || !near(c[3], 128.0/255, 1e-4) {
		t.Fatalf("FromImage(linear) At(1, 0)\nhave %v", c)
	}

	img = FromImage(src, true)
	if c := img.At(0, 0); !near(c[0], 1, 1e-4) || !near(c[3], 1, 1e-4) {
		t.Fatalf("FromImage(sRGB) At(0, 0)\nhave %v\nwant ≈[1 1 1 1]", c)
	}
	// sRGB 188/255 decodes to roughly 0.5 linear.
	c = img.At(1, 0)
	if !near(c[0], 0.5, 0.01) || !near(c[1], 0, 1e-6) || !near(c[3], 128.0/255, 1e-4) {
		t.Fatalf("FromImage(sRGB) At(1, 0)\nhave %v\nwant ≈[0.5 0 1 0.5]", c)
	}
}

func TestLoad(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(2, 1, stdcolor.NRGBA{0, 255, 0, 255})
	path := filepath.Join(t.TempDir(), "green.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("os.Create failed:\n%#v", err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatalf("png.Encode failed:\n%#v", err)
	}
	f.Close()

	img, err := Load(path, false)
	if err != nil {
		t.Fatalf("Load failed:\n%#v", err)
	}
	if img.Width() != 3 || img.Height() != 2 {
		t.Fatalf("Load: size\nhave %dx%d\nwant 3x2", img.Width(), img.Height())
	}
	if c := img.At(2, 1); c != (linear.V4{0, 1, 0, 1}) {
		t.Fatalf("Load: At(2, 1)\nhave %v\nwant [0 1 0 1]", c)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png"), false); err == nil {
		t.Fatal("Load(missing)\nhave nil\nwant error")
	}
}
