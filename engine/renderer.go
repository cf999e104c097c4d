// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"cmp"
	"context"
	"errors"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gviegas/stereo/engine/material"
	"github.com/gviegas/stereo/linear"
	"github.com/gviegas/stereo/surface"
)

func newRendErr(s string) error { return errors.New("renderer: " + s) }

// Renderer is a multi-view software renderer.
// Every view of a frame is rendered by its own
// goroutine, which is the only writer of the view's
// target slot.
type Renderer struct {
	log   *zap.Logger
	clear linear.V4
}

// NewRenderer creates a new renderer that clears to
// transparent black and does not log.
func NewRenderer() *Renderer { return &Renderer{log: zap.NewNop()} }

// SetLogger sets the logger used by r.
// A nil logger disables logging.
func (r *Renderer) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	r.log = log
}

// SetClearColor sets the color to which target slots
// are cleared before rendering.
func (r *Renderer) SetClearColor(c linear.V4) { r.clear = c }

// Stats are the counters of a Render call.
type Stats struct {
	Views     int
	Instances int
	Triangles int
	Fragments int
	Discarded int
	Written   int
}

func (s *Stats) add(t *Stats) {
	s.Triangles += t.Triangles
	s.Fragments += t.Fragments
	s.Discarded += t.Discarded
	s.Written += t.Written
}

// Render renders f into t.
// Each view of f is written to the layer of t given by
// its Slot, which is cleared first. Layers that no view
// refers to are left untouched.
// If ctx is done before every view completes, Render
// returns ctx.Err() and the contents of the slots are
// undefined.
func (r *Renderer) Render(ctx context.Context, f *Frame, t *surface.Layered) (Stats, error) {
	if t == nil {
		return Stats{}, newRendErr("nil target in call to Render")
	}
	if err := f.Validate(t.Layers()); err != nil {
		return Stats{}, err
	}
	l := pack(f)
	order := drawOrder(f.Batches)
	vp := viewport{t.Width(), t.Height()}
	stats := make([]Stats, len(f.Views))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for v := range f.Views {
		eg.Go(func() error {
			t.ClearLayer(int(l.views[v].Slot()), r.clear, cfg.ClearDepth)
			return r.renderView(ctx, f, l, order, v, vp, t, &stats[v])
		})
	}
	err := eg.Wait()

	var s Stats
	s.Views = len(f.Views)
	s.Instances = len(f.Instances)
	for i := range stats {
		s.add(&stats[i])
	}
	if err != nil {
		r.log.Warn("frame dropped", zap.Error(err), zap.Float32("clock", f.Clock))
		return s, err
	}
	r.log.Debug("frame rendered",
		zap.Float32("clock", f.Clock),
		zap.Int("views", s.Views),
		zap.Int("triangles", s.Triangles),
		zap.Int("fragments", s.Fragments),
		zap.Int("written", s.Written))
	return s, nil
}

// drawOrder returns the indices of batches sorted by
// material queue. Batches in the same queue keep their
// relative order.
func drawOrder(batches []Batch) []int {
	order := make([]int, len(batches))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(batches[a].Material.Queue(), batches[b].Material.Queue())
	})
	return order
}

// renderView renders every instance of every batch of
// f as seen by view v, in the given batch order.
func (r *Renderer) renderView(ctx context.Context, f *Frame, l *layouts, order []int, v int, vp viewport, sink surface.Sink, s *Stats) error {
	nv := len(f.Views)
	slot := int(l.views[v].Slot())
	light := l.frame.Light()
	clock := l.frame.Clock()
	var vary []varying
	for _, i := range order {
		b := &f.Batches[i]
		verts := b.Mesh.Vertices()
		tris := b.Mesh.Triangles()
		if cap(vary) < len(verts) {
			vary = make([]varying, len(verts))
		}
		vary = vary[:len(verts)]
		mat := b.Material
		test, write := mat.Depth()
		frag := func(x, y int, depth float32, fr *material.Fragment) {
			out := mat.Shade(clock, fr)
			if out.Discard {
				s.Discarded++
				return
			}
			out.DepthTest, out.DepthWrite = test, write
			if sink.Put(slot, x, y, depth, &out) {
				s.Written++
			}
		}
		for k := v; k < b.DrawCount(nv); k += nv {
			if err := ctx.Err(); err != nil {
				return err
			}
			l.vertex(b, k, verts, vary)
			for _, tri := range tris {
				t := [3]*varying{&vary[tri[0]], &vary[tri[1]], &vary[tri[2]]}
				s.Fragments += rasterize(&t, vp, mat.Cull(), light, frag)
				s.Triangles++
			}
		}
	}
	return nil
}

// Offscreen is a Renderer that owns its render target.
type Offscreen struct {
	Renderer
	rt *surface.Layered
}

// NewOffscreen creates a new offscreen renderer whose
// target has the given size and number of layers.
func NewOffscreen(width, height, layers int) (*Offscreen, error) {
	rt, err := surface.NewLayered(width, height, layers)
	if err != nil {
		return nil, err
	}
	return &Offscreen{Renderer: *NewRenderer(), rt: rt}, nil
}

// Target returns the render target of r.
func (r *Offscreen) Target() *surface.Layered { return r.rt }

// Draw renders f into r's target.
func (r *Offscreen) Draw(ctx context.Context, f *Frame) (Stats, error) {
	return r.Render(ctx, f, r.rt)
}
