// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package surface defines the output of material shading
// and the layered render targets that receive it.
package surface

import (
	"errors"

	"github.com/gviegas/stereo/internal/bitvec"
	"github.com/gviegas/stereo/linear"
)

const prefix = "surface: "

func newErr(reason string) error { return errors.New(prefix + reason) }

// Blend is the type of blend modes.
type Blend int

// Blend modes.
const (
	// Replace the destination color.
	BOpaque Blend = iota
	// Composite over the destination using the
	// source alpha.
	BAlpha
	// Add the source color, weighted by its alpha,
	// to the destination.
	BAdd
)

// WritesDepth returns whether fragments using b update
// the depth of a layer.
func (b Blend) WritesDepth() bool { return b == BOpaque }

// DepthTest is the type of depth comparisons.
// A fragment passes when its depth compares as stated
// against the depth stored in the layer.
type DepthTest int

// Depth tests.
const (
	DLess DepthTest = iota
	DLessOrEqual
	DGreater
	DGreaterOrEqual
	DEqual
	DNotEqual
	DAlways
	DNever
)

// Pass reports whether a fragment at depth src passes
// the test against the stored depth dst.
// NaN depths pass only DAlways and DNotEqual.
func (d DepthTest) Pass(src, dst float32) bool {
	switch d {
	case DLess:
		return src < dst
	case DLessOrEqual:
		return src <= dst
	case DGreater:
		return src > dst
	case DGreaterOrEqual:
		return src >= dst
	case DEqual:
		return src == dst
	case DNotEqual:
		return src != dst
	case DAlways:
		return true
	}
	return false
}

// DepthWrite is the type of depth write modes.
type DepthWrite int

// Depth write modes.
const (
	// Write depth when the blend mode is BOpaque.
	DWAuto DepthWrite = iota
	DWOn
	DWOff
)

// Writes returns whether fragments blended with b
// update the depth of a layer under mode w.
func (w DepthWrite) Writes(b Blend) bool {
	switch w {
	case DWOn:
		return true
	case DWOff:
		return false
	}
	return b.WritesDepth()
}

// Output is the result of shading a single fragment.
type Output struct {
	// Color is linear RGB plus alpha.
	// It is not clamped.
	Color linear.V4
	Blend Blend
	// Depth replaces the rasterized depth when
	// DepthSet is true.
	Depth    float32
	DepthSet bool
	// Discard drops the fragment entirely.
	Discard bool
	// DepthTest and DepthWrite are the depth state of
	// the material that produced the fragment.
	// The zero values are DLess and DWAuto.
	DepthTest  DepthTest
	DepthWrite DepthWrite
}

// Sink is the interface that receives shaded fragments.
// Put must be safe to call concurrently for distinct
// slots. Calls for the same slot are never concurrent.
type Sink interface {
	// Put writes out at pixel (x, y) of the given slot.
	// depth is the rasterized depth of the fragment.
	// It reports whether the fragment was written.
	Put(slot, x, y int, depth float32, out *Output) bool
}

// Layered is an array of equally sized color/depth
// layers, one per target slot.
// It implements Sink.
type Layered struct {
	width  int
	height int
	layers []layer
}

type layer struct {
	color []linear.V4
	depth []float32
	cover *bitvec.V[uint64]
}

// NewLayered creates a new render target with the given
// size and number of layers. Every layer is cleared to
// transparent black with depth 1.
func NewLayered(width, height, layers int) (*Layered, error) {
	if width < 1 || height < 1 {
		return nil, newErr("invalid target size")
	}
	if layers < 1 {
		return nil, newErr("invalid layer count")
	}
	t := &Layered{
		width:  width,
		height: height,
		layers: make([]layer, layers),
	}
	n := width * height
	for i := range t.layers {
		t.layers[i] = layer{
			color: make([]linear.V4, n),
			depth: make([]float32, n),
			cover: bitvec.New[uint64](n),
		}
	}
	t.Clear(linear.V4{}, 1)
	return t, nil
}

// Width returns the width of t in pixels.
func (t *Layered) Width() int { return t.width }

// Height returns the height of t in pixels.
func (t *Layered) Height() int { return t.height }

// Layers returns the number of layers in t.
func (t *Layered) Layers() int { return len(t.layers) }

// Clear resets every layer of t to the given color and
// depth and forgets coverage.
func (t *Layered) Clear(color linear.V4, depth float32) {
	for i := range t.layers {
		t.ClearLayer(i, color, depth)
	}
}

// ClearLayer is like Clear but only affects one slot.
func (t *Layered) ClearLayer(slot int, color linear.V4, depth float32) {
	l := &t.layers[slot]
	for i := range l.color {
		l.color[i] = color
		l.depth[i] = depth
	}
	l.cover.Clear()
}

// Put implements Sink.
// Fragments are depth tested with out.DepthTest against
// the layer's depth, after applying any depth override.
func (t *Layered) Put(slot, x, y int, depth float32, out *Output) bool {
	if out.Discard {
		return false
	}
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return false
	}
	if out.DepthSet {
		depth = out.Depth
	}
	l := &t.layers[slot]
	i := y*t.width + x
	if !out.DepthTest.Pass(depth, l.depth[i]) {
		return false
	}
	src := out.Color
	dst := &l.color[i]
	switch out.Blend {
	case BAlpha:
		a := src[3]
		for j := range 3 {
			dst[j] = src[j]*a + dst[j]*(1-a)
		}
		dst[3] = a + dst[3]*(1-a)
	case BAdd:
		a := src[3]
		for j := range 3 {
			dst[j] += src[j] * a
		}
		dst[3] = min(dst[3]+a, 1)
	default:
		*dst = src
	}
	if out.DepthWrite.Writes(out.Blend) {
		l.depth[i] = depth
	}
	l.cover.Set(i)
	return true
}

// At returns the color stored at pixel (x, y) of slot.
func (t *Layered) At(slot, x, y int) linear.V4 {
	return t.layers[slot].color[y*t.width+x]
}

// Depth returns the depth stored at pixel (x, y) of slot.
func (t *Layered) Depth(slot, x, y int) float32 {
	return t.layers[slot].depth[y*t.width+x]
}

// Covered returns the number of pixels of slot that were
// written since it was last cleared.
func (t *Layered) Covered(slot int) int { return t.layers[slot].cover.Count() }

// IsCovered returns whether pixel (x, y) of slot was
// written since it was last cleared.
func (t *Layered) IsCovered(slot, x, y int) bool {
	return t.layers[slot].cover.IsSet(y*t.width + x)
}
