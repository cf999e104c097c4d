// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/gviegas/stereo/light"
)

const framePrefix = "frame: "

func newFrameErr(reason string) error { return errors.New(framePrefix + reason) }

// Frame is everything needed to render one frame.
// It is written once by its Source and must not be
// modified while being rendered.
type Frame struct {
	// Clock is the animation clock in seconds.
	Clock     float32
	Instances []Instance
	Views     []View
	Batches   []Batch
	// Light is the irradiance of the scene.
	Light light.SH
}

// Source is the interface that supplies frames.
type Source interface {
	// Frame returns the next frame.
	// The returned Frame is owned by the caller until
	// the next call to Frame.
	Frame(ctx context.Context) (*Frame, error)
}

// Validate checks that f can be rendered into a target
// with the given number of layers.
func (f *Frame) Validate(layers int) error {
	nv := len(f.Views)
	switch {
	case nv == 0:
		return newFrameErr("no views")
	case nv > cfg.MaxView:
		return newFrameErr(fmt.Sprintf("too many views (%d > %d)", nv, cfg.MaxView))
	case len(f.Instances) > cfg.MaxInstance:
		return newFrameErr(fmt.Sprintf("too many instances (%d > %d)", len(f.Instances), cfg.MaxInstance))
	}
	used := make(map[int]bool, nv)
	for i := range f.Views {
		s := f.Views[i].Slot
		if s < 0 || s >= layers {
			return newFrameErr(fmt.Sprintf("view %d: slot %d out of range", i, s))
		}
		if used[s] {
			return newFrameErr(fmt.Sprintf("view %d: slot %d already in use", i, s))
		}
		used[s] = true
	}
	for i := range f.Batches {
		b := &f.Batches[i]
		switch {
		case b.Mesh == nil:
			return newFrameErr(fmt.Sprintf("batch %v: nil Mesh", b.ID))
		case b.Material == nil:
			return newFrameErr(fmt.Sprintf("batch %v: nil Material", b.ID))
		}
		for _, j := range b.Instances {
			if j < 0 || j >= len(f.Instances) {
				return newFrameErr(fmt.Sprintf("batch %v: instance %d out of range", b.ID, j))
			}
			if f.Instances[j].Batch != b.ID {
				return newFrameErr(fmt.Sprintf("batch %v: instance %d belongs to batch %v", b.ID, j, f.Instances[j].Batch))
			}
		}
	}
	return nil
}
